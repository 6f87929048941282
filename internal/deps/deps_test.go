package deps

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeStub(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	writeStub(t, present)
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  ", Optional: true},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" || results[0].Path != present {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Path != "" || results[1].Detail == "" {
		t.Fatalf("expected missing binary with detail, got %#v", results[1])
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for empty command: %q", results[2].Detail)
	}

	if got := MissingRequired(results); !slices.Equal(got, []string{"Missing"}) {
		t.Fatalf("MissingRequired = %v", got)
	}
}

func TestResolveCompanionBesidePlayer(t *testing.T) {
	tmp := t.TempDir()
	player := filepath.Join(tmp, executableName("ffplay"))
	probe := filepath.Join(tmp, executableName("ffprobe"))
	writeStub(t, player)
	writeStub(t, probe)
	t.Setenv("PATH", "")

	if got := ResolveCompanion("ffprobe", player); got != probe {
		t.Fatalf("expected companion %q, got %q", probe, got)
	}
}

func TestResolveCompanionPrefersPath(t *testing.T) {
	binDir := t.TempDir()
	probe := filepath.Join(binDir, executableName("ffprobe"))
	writeStub(t, probe)
	t.Setenv("PATH", binDir)

	if got := ResolveCompanion("ffprobe", "/nonexistent/ffplay"); got != "ffprobe" {
		t.Fatalf("expected PATH lookup to win, got %q", got)
	}
}

func TestResolveCompanionNotFound(t *testing.T) {
	t.Setenv("PATH", "")
	if got := ResolveCompanion("ffprobe", "/nonexistent/ffplay"); got != "ffprobe" {
		t.Fatalf("expected configured name back, got %q", got)
	}
	if got := ResolveCompanion("", "ffplay"); got != "" {
		t.Fatalf("expected empty command to stay empty, got %q", got)
	}
}
