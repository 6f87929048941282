package catalog_test

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soundboard/internal/catalog"
	"soundboard/internal/services"
)

func TestAppendUsesMonotonicRank(t *testing.T) {
	c := catalog.New()
	for _, entry := range []catalog.SoundEntry{
		{ID: "a", Label: "Airhorn", Category: catalog.Classic, AddedRank: 1},
		{ID: "b", Label: "Bruh", Category: catalog.Comedy, AddedRank: 2},
	} {
		if err := c.Insert(entry); err != nil {
			t.Fatalf("Insert(%s): %v", entry.ID, err)
		}
	}

	added, err := c.Append("custom-1", "  Boing ", catalog.Music, "")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if added.AddedRank != 3 {
		t.Fatalf("expected rank 3, got %d", added.AddedRank)
	}
	if added.Label != "Boing" {
		t.Fatalf("expected trimmed label, got %q", added.Label)
	}
	entries := c.Entries()
	if len(entries) != 3 || entries[2].ID != "custom-1" {
		t.Fatalf("expected appended entry last, got %+v", entries)
	}
	if added.Color == "" {
		t.Fatal("expected default colour assigned")
	}
}

func TestRankCounterIgnoresListLength(t *testing.T) {
	c := catalog.New()
	if err := c.Insert(catalog.SoundEntry{ID: "old", Label: "Old", Category: catalog.Anime, AddedRank: 40}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	added, err := c.Append("new", "New", catalog.Anime, "blue")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if added.AddedRank != 41 {
		t.Fatalf("expected rank above max seen, got %d", added.AddedRank)
	}
}

func TestAppendNearRankCeiling(t *testing.T) {
	c := catalog.New()
	if err := c.Insert(catalog.SoundEntry{ID: "a", Label: "A", Category: catalog.Classic, AddedRank: 5}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := c.Insert(catalog.SoundEntry{ID: "z", Label: "Z", Category: catalog.Classic, AddedRank: math.MaxInt - 1}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	added, err := c.Append("b", "B", catalog.Classic, "")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if added.AddedRank != math.MaxInt {
		t.Fatalf("expected rank MaxInt, got %d", added.AddedRank)
	}
	if _, err := c.Append("c", "C", catalog.Classic, ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected exhausted counter error, got %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("failed append must not mutate, len=%d", c.Len())
	}
}

func TestInsertRejectsDuplicatesAndBlankFields(t *testing.T) {
	c := catalog.New()
	if err := c.Insert(catalog.SoundEntry{ID: "a", Label: "A", Category: catalog.Classic}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	cases := []catalog.SoundEntry{
		{ID: "a", Label: "Again", Category: catalog.Classic},
		{ID: " ", Label: "Blank", Category: catalog.Classic},
		{ID: "b", Label: "  ", Category: catalog.Classic},
		{ID: "c", Label: "C", Category: ""},
	}
	for _, entry := range cases {
		err := c.Insert(entry)
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("Insert(%+v) = %v, want validation error", entry, err)
		}
	}
	if c.Len() != 1 {
		t.Fatalf("failed inserts must not mutate, len=%d", c.Len())
	}
}

func TestCategoriesIncludeManifestTags(t *testing.T) {
	c := catalog.New()
	_ = c.Insert(catalog.SoundEntry{ID: "x", Label: "X", Category: "Retro", AddedRank: 1})
	_ = c.Insert(catalog.SoundEntry{ID: "y", Label: "Y", Category: "gaming", AddedRank: 2})

	cats := c.Categories()
	if len(cats) != 6 || cats[5] != "retro" {
		t.Fatalf("unexpected categories %v", cats)
	}
	if !c.HasCategory("retro") || !c.HasCategory(catalog.Music) || c.HasCategory("polka") {
		t.Fatal("unexpected HasCategory result")
	}
	if got := catalog.DisplayName(catalog.Music); got != "Music & SFX" {
		t.Fatalf("unexpected display name %q", got)
	}
	if got := catalog.DisplayName("retro"); got != "retro" {
		t.Fatalf("expected raw tag for unknown category, got %q", got)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "catalog.toml")
	content := `
[[sound]]
id = "vine-boom"
label = "Vine Boom"
category = "Classic"
added = 4
file = "vine-boom.mp3"
color = "RED"

[[sound]]
id = "oof"
label = "Oof"
category = "gaming"
file = "/srv/clips/oof.wav"
color = "mauve"
`
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	clips, exists, err := catalog.LoadManifest(manifest, dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if !exists || len(clips) != 2 {
		t.Fatalf("unexpected result exists=%v clips=%d", exists, len(clips))
	}
	first := clips[0]
	if first.Path != filepath.Join(dir, "vine-boom.mp3") || first.Entry.Category != catalog.Classic || first.Entry.Color != "red" {
		t.Fatalf("unexpected first clip %+v", first)
	}
	second := clips[1]
	if second.Path != "/srv/clips/oof.wav" || second.Entry.AddedRank != 2 || second.Entry.Color != "" {
		t.Fatalf("unexpected second clip %+v", second)
	}

	c, err := catalog.FromClips(clips)
	if err != nil {
		t.Fatalf("FromClips: %v", err)
	}
	if c.NextRank() != 5 {
		t.Fatalf("expected next rank 5, got %d", c.NextRank())
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	clips, exists, err := catalog.LoadManifest(filepath.Join(t.TempDir(), "nope.toml"), "")
	if err != nil || exists || len(clips) != 0 {
		t.Fatalf("expected empty result for missing manifest, got clips=%v exists=%v err=%v", clips, exists, err)
	}
}

func TestLoadManifestRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "catalog.toml")
	content := "[[sound]]\nid = \"a\"\nlabel = \"A\"\ncategory = \"classic\"\nfile = \"a.mp3\"\n\n" +
		"[[sound]]\nid = \"a\"\nlabel = \"A2\"\ncategory = \"classic\"\nfile = \"a2.mp3\"\n"
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	_, _, err := catalog.LoadManifest(manifest, dir)
	if !errors.Is(err, services.ErrConfiguration) || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestLoadManifestRejectsRankAtCeiling(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "catalog.toml")
	content := fmt.Sprintf("[[sound]]\nid = \"a\"\nlabel = \"A\"\ncategory = \"classic\"\nadded = %d\nfile = \"a.mp3\"\n", math.MaxInt)
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	_, _, err := catalog.LoadManifest(manifest, dir)
	if !errors.Is(err, services.ErrConfiguration) || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out of range error, got %v", err)
	}
}
