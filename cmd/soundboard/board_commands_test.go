package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soundboard/internal/api"
	"soundboard/internal/testsupport"
)

func TestCLIListAndFilters(t *testing.T) {
	env := setupCLITestEnv(t)

	out := env.run(t, "list")
	requireContains(t, out, "2 of 2 sounds")
	requireContains(t, out, "VINE BOOM")
	requireContains(t, out, "ROBLOX OOF")

	out = env.run(t, "search", "oof")
	requireContains(t, out, "ROBLOX OOF")
	requireNotContains(t, out, "VINE BOOM")

	out = env.run(t, "search", "zzz")
	requireContains(t, out, "No sounds found. Try a different search or category.")

	out = env.run(t, "clear")
	requireContains(t, out, "VINE BOOM")

	out = env.run(t, "category", "gaming")
	requireContains(t, out, "Showing: Gaming")
	requireNotContains(t, out, "VINE BOOM")

	out = env.run(t, "home")
	requireNotContains(t, out, "Showing:")
	requireContains(t, out, "2 of 2 sounds")
}

func TestCLIJustAddedOrdersNewestFirst(t *testing.T) {
	env := setupCLITestEnv(t)

	out := env.run(t, "just-added", "--json")
	var view api.BoardView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode board: %v\n%s", err, out)
	}
	if view.Filter.Mode != "just-added" {
		t.Fatalf("expected just-added mode, got %q", view.Filter.Mode)
	}
	if len(view.Sounds) != 2 || view.Sounds[0].ID != "oof" || view.Sounds[1].ID != "vine" {
		t.Fatalf("unexpected order %+v", view.Sounds)
	}
}

func TestCLIPlay(t *testing.T) {
	env := setupCLITestEnv(t)

	out := env.run(t, "play", "vine", "nope")
	requireContains(t, out, "Playing vine (1s)")
	requireContains(t, out, "Ignored nope")

	out = env.run(t, "list")
	requireContains(t, out, "playing")
}

func TestRenderPlayResultsDistinguishesFailures(t *testing.T) {
	var out bytes.Buffer
	renderPlayResults(&out, []api.PlayResponse{
		{ID: "vine", Status: "started", WindowMS: 1500},
		{ID: "oof", Status: "failed", Reason: "exec: \"ffplay\": executable file not found"},
		{ID: "nope", Status: "ignored", Reason: "no playable resource"},
	})
	got := out.String()
	requireContains(t, got, "Playing vine (1.5s)")
	requireContains(t, got, "Failed oof: exec:")
	requireContains(t, got, "Ignored nope: no playable resource")
	requireNotContains(t, got, "Ignored oof")
}

func TestCLIUpload(t *testing.T) {
	env := setupCLITestEnv(t)

	src := filepath.Join(env.baseDir, "boing.mp3")
	testsupport.WriteFile(t, src, 128)

	out := env.run(t, "upload", "--name", "Boing", "--category", "comedy", src)
	requireContains(t, out, `Sound "Boing" uploaded successfully!`)
	requireContains(t, out, "rank: 3")

	out = env.run(t, "just-added")
	first := strings.Index(out, "BOING")
	vine := strings.Index(out, "VINE BOOM")
	if first < 0 || vine < 0 || first > vine {
		t.Fatalf("expected BOING before VINE BOOM:\n%s", out)
	}

	_, _, err := runCLI(t, []string{"upload", "--name", "Nothing", "--category", "comedy"}, env.socketPath, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "please select an audio file") {
		t.Fatalf("expected missing file error, got %v", err)
	}
	out = env.run(t, "list", "--json")
	var view api.BoardView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode board: %v", err)
	}
	if view.Total != 3 {
		t.Fatalf("expected failed upload to leave 3 sounds, got %d", view.Total)
	}
}

func TestCLIUploadRelativePath(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := filepath.Join(env.baseDir, "incoming")
	testsupport.WriteFile(t, filepath.Join(dir, "bruh.wav"), 64)
	t.Chdir(dir)

	out := env.run(t, "upload", "--name", "Bruh", "--category", "classic", "bruh.wav")
	requireContains(t, out, `Sound "Bruh" uploaded successfully!`)
	if _, err := os.Stat(filepath.Join(dir, "bruh.wav")); err != nil {
		t.Fatalf("expected source file untouched: %v", err)
	}
}
