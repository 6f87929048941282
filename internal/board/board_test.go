package board_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"soundboard/internal/board"
	"soundboard/internal/catalog"
	"soundboard/internal/logging"
	"soundboard/internal/playback"
	"soundboard/internal/services"
	"soundboard/internal/testsupport"
	"soundboard/internal/upload"
)

type nopPlayer struct{}

func (nopPlayer) Start(context.Context, string, string) error { return nil }
func (nopPlayer) Stop(string)                                 {}
func (nopPlayer) Close() error                                { return nil }

type fixture struct {
	board *board.Board
	clock *testsupport.FakeClock
	now   time.Time
	spool *upload.Spool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := catalog.New()
	for _, entry := range []catalog.SoundEntry{
		{ID: "a", Label: "Oof", Category: catalog.Gaming, AddedRank: 1},
		{ID: "b", Label: "Rimshot", Category: catalog.Comedy, AddedRank: 2},
	} {
		if err := c.Insert(entry); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	clock := testsupport.NewFakeClock()
	registry := playback.NewRegistry(nil, logging.NewNop())
	registry.Add(playback.Resource{ID: "a", Path: "/clips/a.mp3", Duration: time.Second, DurationKnown: true})
	registry.Add(playback.Resource{ID: "b", Path: "/clips/b.mp3"})
	tracker := playback.NewTracker(registry, nopPlayer{}, clock, playback.DefaultWindows(), logging.NewNop())

	spool, err := upload.Open(t.TempDir(), upload.Options{MaxBytes: 1 << 20, AllowedExtensions: []string{".mp3", ".wav"}}, logging.NewNop())
	if err != nil {
		t.Fatalf("upload.Open: %v", err)
	}

	f := &fixture{clock: clock, now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), spool: spool}
	seq := 0
	f.board = board.New(board.Options{
		Catalog: c,
		Tracker: tracker,
		Storage: spool,
		Logger:  logging.NewNop(),
		Now:     func() time.Time { return f.now },
		NewID: func() string {
			seq++
			return "custom-" + string(rune('0'+seq))
		},
	})
	t.Cleanup(func() {
		_ = f.board.Close()
		_ = spool.Close()
	})
	return f
}

func clip(name string) *upload.Source {
	return &upload.Source{FileName: name, Reader: strings.NewReader("RIFF....WAVE")}
}

func TestInitialViewShowsEverything(t *testing.T) {
	f := newFixture(t)
	view := f.board.View()
	if !slices.Equal(view.IDs(), []string{"a", "b"}) {
		t.Fatalf("unexpected ids %v", view.IDs())
	}
	if view.FilterBarVisible || view.FilterLabel != "" || !view.AnyVisible {
		t.Fatalf("unexpected initial view %+v", view)
	}
	if view.Total != 2 || len(view.Categories) != 5 {
		t.Fatalf("unexpected totals: total=%d categories=%d", view.Total, len(view.Categories))
	}
}

func TestScenarios(t *testing.T) {
	f := newFixture(t)

	view := f.board.SetQuery("oo")
	if !slices.Equal(view.IDs(), []string{"a"}) {
		t.Fatalf("query oo: expected [a], got %v", view.IDs())
	}

	view = f.board.SelectJustAdded()
	if !slices.Equal(view.IDs(), []string{"b", "a"}) {
		t.Fatalf("just added: expected [b a], got %v", view.IDs())
	}
	if view.State.Query != "" {
		t.Fatalf("just added must clear the query, got %q", view.State.Query)
	}

	view = f.board.SetQuery("zzz")
	if view.AnyVisible || len(view.Items) != 0 {
		t.Fatalf("expected no results, got %v", view.IDs())
	}

	view = f.board.GoHome()
	if !slices.Equal(view.IDs(), []string{"a", "b"}) || view.State.Query != "" {
		t.Fatalf("home: unexpected view %+v", view)
	}
}

func TestSelectCategoryAndClear(t *testing.T) {
	f := newFixture(t)

	f.board.SetQuery("o")
	view := f.board.SelectCategory("comedy")
	if !slices.Equal(view.IDs(), []string{"b"}) {
		t.Fatalf("expected [b], got %v", view.IDs())
	}
	if view.FilterLabel != "Showing: Comedy" || !view.FilterBarVisible {
		t.Fatalf("unexpected filter bar %q visible=%v", view.FilterLabel, view.FilterBarVisible)
	}
	if view.State.Query != "o" {
		t.Fatal("selecting a category must keep the query")
	}

	again := f.board.SelectCategory("comedy")
	if !slices.Equal(again.IDs(), view.IDs()) {
		t.Fatalf("re-selecting changed the view: %v vs %v", again.IDs(), view.IDs())
	}

	view = f.board.Clear()
	if view.FilterBarVisible || view.State.Query != "" || len(view.Items) != 2 {
		t.Fatalf("clear: unexpected view %+v", view)
	}
}

func TestAddEntryValidationLeavesCatalogUnchanged(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		label, category string
		src             *upload.Source
		want            string
	}{
		{"", "comedy", clip("boing.mp3"), "please enter a sound name"},
		{"   ", "comedy", clip("boing.mp3"), "please enter a sound name"},
		{"Boing", "comedy", nil, "please select an audio file"},
		{"Boing", "polka", clip("boing.mp3"), "unknown category"},
		{"Boing", "", clip("boing.mp3"), "please choose a category"},
		{"Boing", "comedy", clip("boing.txt"), "unsupported audio file type"},
	}
	for _, tc := range tests {
		_, err := f.board.AddEntry(context.Background(), tc.label, tc.category, tc.src)
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("AddEntry(%q, %q) = %v, want validation error", tc.label, tc.category, err)
		}
		if msg := services.UserMessage(err); !strings.Contains(msg, tc.want) {
			t.Fatalf("AddEntry(%q, %q) message %q, want %q", tc.label, tc.category, msg, tc.want)
		}
		if total := f.board.View().Total; total != 2 {
			t.Fatalf("failed upload mutated the catalog: total=%d", total)
		}
	}
}

func TestAddEntryAppendsWithNextRank(t *testing.T) {
	f := newFixture(t)

	entry, err := f.board.AddEntry(context.Background(), "Boing", "comedy", clip("boing.wav"))
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if entry.AddedRank != 3 || entry.ID != "custom-1" || entry.Category != catalog.Comedy {
		t.Fatalf("unexpected entry %+v", entry)
	}

	view := f.board.View()
	if !slices.Equal(view.IDs(), []string{"a", "b", "custom-1"}) {
		t.Fatalf("expected appended last, got %v", view.IDs())
	}
	if view.Notice != `Sound "Boing" uploaded successfully!` {
		t.Fatalf("unexpected notice %q", view.Notice)
	}

	view = f.board.SelectJustAdded()
	if view.IDs()[0] != "custom-1" {
		t.Fatalf("expected new entry first under just added, got %v", view.IDs())
	}

	outcome := f.board.Play(context.Background(), "custom-1")
	if outcome.Status != playback.StatusStarted || outcome.Window != 1500*time.Millisecond {
		t.Fatalf("expected new entry immediately playable with fallback window, got %+v", outcome)
	}
}

func TestPlayReflectsInView(t *testing.T) {
	f := newFixture(t)

	if got := f.board.Play(context.Background(), "missing"); got.Status != playback.StatusIgnored {
		t.Fatalf("expected ignored, got %+v", got)
	}
	f.board.Play(context.Background(), "a")
	item := f.board.View().Items[0]
	if !item.Playing || !item.Pressed {
		t.Fatalf("expected a playing and pressed, got %+v", item)
	}
	f.clock.Advance(time.Second)
	item = f.board.View().Items[0]
	if item.Playing || item.Pressed {
		t.Fatalf("expected a cleared after its duration, got %+v", item)
	}
}

func TestLoginAndNoticeExpiry(t *testing.T) {
	f := newFixture(t)

	if _, err := f.board.Login(context.Background(), "", "pw", false); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.board.View().Session != nil {
		t.Fatal("failed login must not set a session")
	}

	session, err := f.board.Login(context.Background(), "ana@example.com", "pw", false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	view := f.board.View()
	if view.Session == nil || view.Session.DisplayName != session.DisplayName {
		t.Fatalf("expected session in view, got %+v", view.Session)
	}
	if view.Notice != "Welcome back, ana!" {
		t.Fatalf("unexpected notice %q", view.Notice)
	}

	if _, err := f.board.Login(context.Background(), "bo@example.com", "pw", true); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if got := f.board.View().Notice; got != "Welcome, bo!" {
		t.Fatalf("unexpected sign-up notice %q", got)
	}

	f.now = f.now.Add(board.NoticeTTL)
	if got := f.board.View().Notice; got != "" {
		t.Fatalf("expected notice expired, got %q", got)
	}

	if hint := f.board.Install(); hint != board.InstallFallback {
		t.Fatalf("unexpected install hint %q", hint)
	}
	if got := f.board.View().Notice; got != board.InstallFallback {
		t.Fatalf("expected install notice, got %q", got)
	}
}
