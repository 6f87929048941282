package ffprobe

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video"},
			{CodecType: "audio"},
			{CodecType: "audio"},
		},
		Format: Format{Duration: "2.5"},
	}
	if result.AudioStreamCount() != 2 {
		t.Fatalf("expected 2 audio streams, got %d", result.AudioStreamCount())
	}
	if result.DurationSeconds() != 2.5 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	d, ok := result.Duration()
	if !ok || d != 2500*time.Millisecond {
		t.Fatalf("unexpected Duration: %v %v", d, ok)
	}
}

func TestDurationFallsBackToAudioStream(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio", Duration: "0.8"},
			{CodecType: "audio", Duration: "1.2"},
		},
		Format: Format{Duration: "N/A"},
	}
	if got := result.DurationSeconds(); got != 1.2 {
		t.Fatalf("expected longest audio stream, got %v", got)
	}
}

func TestDurationUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "bad", "-1", "0"} {
		result := Result{Format: Format{Duration: raw}}
		if _, ok := result.Duration(); ok {
			t.Fatalf("expected unknown duration for %q", raw)
		}
	}
	if !math.IsNaN(Result{Format: Format{Duration: "bad"}}.DurationSeconds()) {
		t.Fatal("expected NaN for unparsable duration")
	}
}

func TestProberDurationUsesBinary(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-ffprobe")
	body := "#!/bin/sh\necho '{\"streams\":[{\"codec_type\":\"audio\"}],\"format\":{\"duration\":\"3.000000\"}}'\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	prober := Prober{Binary: script, Timeout: 5 * time.Second}
	d, ok, err := prober.Duration(context.Background(), "/clips/boom.mp3")
	if err != nil {
		t.Fatalf("Duration: %v", err)
	}
	if !ok || d != 3*time.Second {
		t.Fatalf("unexpected duration %v ok=%v", d, ok)
	}
}

func TestProberReportsFailure(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-ffprobe")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho 'bad file' >&2\nexit 1\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	_, ok, err := Prober{Binary: script}.Duration(context.Background(), "/clips/missing.mp3")
	if err == nil || ok {
		t.Fatalf("expected probe failure, got ok=%v err=%v", ok, err)
	}
}
