package playback_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"soundboard/internal/logging"
	"soundboard/internal/playback"
	"soundboard/internal/services"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestExecPlayerSubstitutesFileAndReaps(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "played")
	player := playback.NewExecPlayer("/bin/sh", []string{"-c", `echo "$1" > "` + marker + `"`, "player", "{file}"}, logging.NewNop())
	defer player.Close()

	if err := player.Start(context.Background(), "boom", "/clips/boom.mp3"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitFor(t, func() bool { return player.Active() == 0 })

	content, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if string(content) != "/clips/boom.mp3\n" {
		t.Fatalf("expected clip path substituted, got %q", content)
	}
}

func TestExecPlayerRetriggerReplacesProcess(t *testing.T) {
	player := playback.NewExecPlayer("/bin/sh", []string{"-c", "sleep 30", "{file}"}, logging.NewNop())

	if err := player.Start(context.Background(), "a", "/clips/a.mp3"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := player.Start(context.Background(), "a", "/clips/a.mp3"); err != nil {
		t.Fatalf("re-trigger Start: %v", err)
	}
	if err := player.Start(context.Background(), "b", "/clips/b.mp3"); err != nil {
		t.Fatalf("Start b: %v", err)
	}
	if got := player.Active(); got != 2 {
		t.Fatalf("expected one process per id, got %d", got)
	}

	player.Stop("b")
	if got := player.Active(); got != 1 {
		t.Fatalf("expected b stopped, got %d active", got)
	}

	done := make(chan struct{})
	go func() {
		_ = player.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not reap running players")
	}
	if err := player.Start(context.Background(), "a", "/clips/a.mp3"); !errors.Is(err, services.ErrPlayback) {
		t.Fatalf("expected start after close to fail, got %v", err)
	}
}

func TestExecPlayerStartFailure(t *testing.T) {
	player := playback.NewExecPlayer(filepath.Join(t.TempDir(), "missing-player"), []string{"{file}"}, logging.NewNop())
	defer player.Close()

	err := player.Start(context.Background(), "a", "/clips/a.mp3")
	if !errors.Is(err, services.ErrPlayback) {
		t.Fatalf("expected playback error, got %v", err)
	}
	if player.Active() != 0 {
		t.Fatal("failed start must not be tracked")
	}
}
