package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"soundboard/internal/fileutil"
	"soundboard/internal/logging"
	"soundboard/internal/media/ffprobe"
	"soundboard/internal/services"
	"soundboard/internal/textutil"
)

// Source is an uploaded file: either a stream with its original name (HTTP
// multipart) or a path on the daemon host (CLI).
type Source struct {
	FileName  string
	Reader    io.Reader
	LocalPath string
}

// Present reports whether the source names any file at all.
func (s *Source) Present() bool {
	if s == nil {
		return false
	}
	if strings.TrimSpace(s.LocalPath) != "" {
		return true
	}
	return s.Reader != nil && strings.TrimSpace(s.FileName) != ""
}

// Name returns the file's base name for extension checks and logs.
func (s *Source) Name() string {
	if s == nil {
		return ""
	}
	if strings.TrimSpace(s.LocalPath) != "" {
		return filepath.Base(s.LocalPath)
	}
	return filepath.Base(strings.TrimSpace(s.FileName))
}

// Prober inspects a spooled file.
type Prober interface {
	Probe(ctx context.Context, path string) (ffprobe.Result, error)
}

// Options bounds what the spool accepts.
type Options struct {
	MaxBytes          int64
	AllowedExtensions []string
	// Prober, when set, rejects files ffprobe reads but finds no audio in.
	Prober Prober
}

// Spool stores uploads as <id><ext> under a session directory.
type Spool struct {
	dir    string
	opts   Options
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Open creates a fresh session directory under baseDir.
func Open(baseDir string, opts Options, logger *slog.Logger) (*Spool, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "upload", "open spool", baseDir, err)
	}
	dir, err := os.MkdirTemp(baseDir, "session-")
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "upload", "open spool", baseDir, err)
	}
	return &Spool{dir: dir, opts: opts, logger: logging.NewComponentLogger(logger, "upload")}, nil
}

// Dir returns the session directory.
func (s *Spool) Dir() string {
	return s.dir
}

// Store validates src and writes it into the spool, returning the stored path.
func (s *Spool) Store(ctx context.Context, id string, src *Source) (string, error) {
	if !src.Present() {
		return "", services.Validation("upload", "please select an audio file")
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return "", services.Wrap(services.ErrConfiguration, "upload", "store", "spool closed", nil)
	}

	name := textutil.SanitizeFileName(src.Name())
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || !slices.Contains(s.opts.AllowedExtensions, ext) {
		return "", services.Validation("upload", fmt.Sprintf("unsupported audio file type %q", textutil.ExtOrName(ext, name)))
	}

	target := filepath.Join(s.dir, id+ext)
	if err := s.write(target, src); err != nil {
		return "", err
	}

	if s.opts.Prober != nil {
		result, err := s.opts.Prober.Probe(ctx, target)
		switch {
		case err != nil:
			logging.WarnWithContext(s.logger, "upload probe failed; accepting file unchecked", "upload_probe_failed",
				logging.String(logging.FieldSoundID, id),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "install ffprobe or set playback.ffprobe_binary"),
				logging.String(logging.FieldImpact, "a non-audio file may have been accepted"),
			)
		case result.AudioStreamCount() == 0:
			_ = os.Remove(target)
			return "", services.Validation("upload", fmt.Sprintf("%s contains no audio", name))
		}
	}

	s.logger.Info("upload stored",
		logging.String(logging.FieldSoundID, id),
		logging.String(logging.FieldEventType, "upload_stored"),
		logging.String("original_name", name),
		logging.String("path", target),
	)
	return target, nil
}

func (s *Spool) write(target string, src *Source) error {
	if path := strings.TrimSpace(src.LocalPath); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return services.Validation("upload", fmt.Sprintf("file %s does not exist", path))
			}
			return services.Wrap(services.ErrValidation, "upload", "stat source", path, err)
		}
		if info.IsDir() {
			return services.Validation("upload", "please select an audio file")
		}
		if s.opts.MaxBytes > 0 && info.Size() > s.opts.MaxBytes {
			return services.Validation("upload", s.tooLargeMessage())
		}
		if info.Size() == 0 {
			return services.Validation("upload", "please select an audio file")
		}
		if err := fileutil.CopyFileVerified(path, target); err != nil {
			return services.Wrap(services.ErrTransient, "upload", "copy", path, err)
		}
		return nil
	}

	written, err := fileutil.WriteLimited(target, src.Reader, s.opts.MaxBytes)
	if errors.Is(err, fileutil.ErrTooLarge) {
		return services.Validation("upload", s.tooLargeMessage())
	}
	if err != nil {
		return services.Wrap(services.ErrTransient, "upload", "write", target, err)
	}
	if written == 0 {
		_ = os.Remove(target)
		return services.Validation("upload", "please select an audio file")
	}
	return nil
}

func (s *Spool) tooLargeMessage() string {
	return fmt.Sprintf("audio files are limited to %.1f MiB", float64(s.opts.MaxBytes)/(1<<20))
}

// Discard removes a stored file after a later step failed.
func (s *Spool) Discard(path string) {
	if path == "" || filepath.Dir(path) != s.dir {
		return
	}
	_ = os.Remove(path)
}

// Close removes the session directory and everything in it.
func (s *Spool) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return os.RemoveAll(s.dir)
}
