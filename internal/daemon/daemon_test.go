package daemon

import (
	"context"
	"testing"
	"time"

	"soundboard/internal/config"
	"soundboard/internal/logging"
	"soundboard/internal/testsupport"
)

const testManifest = `
[[sound]]
id = "vine"
label = "Vine Boom"
category = "classic"
added = 1
file = "vine.mp3"

[[sound]]
id = "oof"
label = "Roblox Oof"
category = "gaming"
added = 2
file = "oof.mp3"
`

func newTestDaemon(t *testing.T, opts ...testsupport.ConfigOption) (*Daemon, *config.Config) {
	t.Helper()
	opts = append([]testsupport.ConfigOption{
		testsupport.WithStubbedBinaries(),
		testsupport.WithCatalog(testManifest, "vine.mp3", "oof.mp3"),
	}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	return newDaemonFromConfig(t, cfg), cfg
}

func newDaemonFromConfig(t *testing.T, cfg *config.Config) *Daemon {
	t.Helper()
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	rt, err := Boot(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}
	d, err := New(cfg, rt, logging.NewNop(), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestBootLoadsManifest(t *testing.T) {
	d, cfg := newTestDaemon(t)
	status := d.Status()
	if status.Sounds != 2 {
		t.Fatalf("expected 2 sounds, got %d", status.Sounds)
	}
	if status.CatalogPath != cfg.Paths.CatalogPath {
		t.Fatalf("unexpected catalog path %q", status.CatalogPath)
	}
	if status.Running {
		t.Fatal("daemon must not report running before Start")
	}
}

func TestBootMissingManifestStartsEmpty(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	d := newDaemonFromConfig(t, cfg)
	if got := d.Status().Sounds; got != 0 {
		t.Fatalf("expected empty board, got %d sounds", got)
	}
}

func TestBootRejectsDuplicateIDs(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCatalog(testManifest+testManifest, "vine.mp3", "oof.mp3"))
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	if _, err := Boot(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatal("expected duplicate ids to fail boot")
	}
}

func TestDaemonStartStop(t *testing.T) {
	d, cfg := newTestDaemon(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !d.Running() {
		t.Fatal("expected running after Start")
	}
	if d.APIAddress() == "" {
		t.Fatal("expected bound HTTP address")
	}
	if err := d.Start(ctx); err == nil {
		t.Fatal("expected second Start to fail")
	}

	other := newDaemonFromConfig(t, cfg)
	if err := other.Start(ctx); err == nil {
		t.Fatal("expected lock contention for a second instance")
	}

	status := d.Status()
	if status.LockFilePath != cfg.LockPath() || len(status.Dependencies) != 2 {
		t.Fatalf("unexpected status %+v", status)
	}

	d.Stop()
	if d.Running() {
		t.Fatal("expected stopped")
	}
	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatal("expected Done closed after Stop")
	}
	if d.APIAddress() != "" {
		t.Fatal("expected HTTP listener closed")
	}

	if err := other.Start(ctx); err != nil {
		t.Fatalf("expected lock released, got %v", err)
	}
	other.Stop()
}

func TestStatusDTOReportsPlaying(t *testing.T) {
	d, _ := newTestDaemon(t)
	if dto := d.Status().DTO(); dto.Playing == nil || len(dto.Playing) != 0 {
		t.Fatalf("expected empty playing list, got %#v", dto.Playing)
	}
	d.Service().Play(context.Background(), "vine")
	dto := d.Status().DTO()
	if len(dto.Playing) != 1 || dto.Playing[0] != "vine" {
		t.Fatalf("expected vine playing, got %v", dto.Playing)
	}
}
