package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// id3Header is a minimal ID3v2.4 tag header so fixture clips sniff as audio.
var id3Header = []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0}

// WriteFile creates a placeholder clip of exactly size bytes (at least one)
// at path, creating parent directories. Files larger than the header start
// with an ID3 tag and are padded with silence bytes.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	var content []byte
	if size > int64(len(id3Header)) {
		content = append(content, id3Header...)
	}
	content = append(content, bytes.Repeat([]byte{0}, int(size)-len(content))...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
