package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gofrs/flock"

	"soundboard/internal/api"
	"soundboard/internal/config"
	"soundboard/internal/deps"
	"soundboard/internal/logging"
	"soundboard/internal/preflight"
)

// Daemon owns the board and enforces single-instance execution.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	runtime *Runtime
	service *api.BoardService
	logPath string

	lockPath string
	lock     *flock.Flock

	http *apiServer

	running  atomic.Bool
	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once

	depsMu       sync.RWMutex
	dependencies []deps.Status
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	PID          int
	APIBind      string
	SocketPath   string
	LockFilePath string
	LogPath      string
	CatalogPath  string
	UploadDir    string
	Sounds       int
	Playing      []string
	Dependencies []deps.Status
}

// New constructs a daemon around a booted runtime.
func New(cfg *config.Config, rt *Runtime, logger *slog.Logger, logPath string) (*Daemon, error) {
	if cfg == nil || rt == nil || rt.Board == nil {
		return nil, errors.New("daemon requires config and board runtime")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	d := &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		runtime:  rt,
		service:  api.NewBoardService(rt.Board),
		logPath:  logPath,
		lockPath: cfg.LockPath(),
		lock:     flock.New(cfg.LockPath()),
		done:     make(chan struct{}),
	}
	d.http = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the daemon lock and begins serving HTTP.
func (d *Daemon) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another soundboard daemon instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	if err := d.http.start(runCtx); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return fmt.Errorf("start http: %w", err)
	}
	d.cancel = cancel

	d.refreshDependencies()
	d.running.Store(true)
	d.logger.Info("soundboard daemon started",
		logging.String(logging.FieldEventType, "daemon_started"),
		logging.String("lock", d.lockPath),
		logging.String("api", d.http.address()),
	)
	return nil
}

// Stop stops serving, releases the lock, and signals Done. Playback state is
// kept until Close.
func (d *Daemon) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer d.doneOnce.Do(func() { close(d.done) })
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.http.stop()
	if err := d.lock.Unlock(); err != nil {
		logging.WarnWithContext(d.logger, "failed to release daemon lock", "lock_release_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove "+d.lockPath+" if the next start reports a running instance"),
		)
	}
	d.running.Store(false)
	d.logger.Info("soundboard daemon stopped", logging.String(logging.FieldEventType, "daemon_stopped"))
}

// Done is closed once Stop has run.
func (d *Daemon) Done() <-chan struct{} {
	return d.done
}

// Close stops the daemon and releases the board runtime.
func (d *Daemon) Close() error {
	d.Stop()
	return d.runtime.Close()
}

// Service exposes board operations as API DTOs.
func (d *Daemon) Service() *api.BoardService {
	return d.service
}

// Running reports whether Start succeeded and Stop has not run.
func (d *Daemon) Running() bool {
	return d.running.Load()
}

// LogPath returns the path to the daemon log file.
func (d *Daemon) LogPath() string {
	return d.logPath
}

// APIAddress returns the bound HTTP address, or "" when HTTP is disabled or stopped.
func (d *Daemon) APIAddress() string {
	return d.http.address()
}

// Status returns the current daemon status.
func (d *Daemon) Status() Status {
	view := d.runtime.Board.View()
	d.depsMu.RLock()
	dependencies := append([]deps.Status(nil), d.dependencies...)
	d.depsMu.RUnlock()
	uploadDir := d.cfg.Paths.UploadDir
	if d.runtime.Spool != nil {
		uploadDir = d.runtime.Spool.Dir()
	}
	return Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		APIBind:      d.http.address(),
		SocketPath:   d.cfg.SocketPath(),
		LockFilePath: d.lockPath,
		LogPath:      d.logPath,
		CatalogPath:  d.cfg.Paths.CatalogPath,
		UploadDir:    uploadDir,
		Sounds:       view.Total,
		Playing:      d.runtime.Board.Playing(),
		Dependencies: dependencies,
	}
}

func (d *Daemon) refreshDependencies() {
	statuses := preflight.CheckSystemDeps(d.cfg)
	for _, status := range statuses {
		if status.Available {
			continue
		}
		impact := "clips cannot be played"
		if status.Optional {
			impact = "clip durations unknown; fallback highlight window used"
		}
		logging.WarnWithContext(d.logger, "dependency unavailable", "dependency_missing",
			logging.String("dependency", status.Name),
			logging.String("command", status.Command),
			logging.String(logging.FieldImpact, impact),
			logging.String(logging.FieldErrorHint, status.Detail),
		)
	}
	d.depsMu.Lock()
	d.dependencies = statuses
	d.depsMu.Unlock()
}

// DTO converts the status for HTTP and IPC callers.
func (s Status) DTO() api.DaemonStatus {
	playing := s.Playing
	if playing == nil {
		playing = []string{}
	}
	return api.DaemonStatus{
		Running:      s.Running,
		PID:          s.PID,
		APIBind:      s.APIBind,
		SocketPath:   s.SocketPath,
		LockFilePath: s.LockFilePath,
		LogPath:      s.LogPath,
		CatalogPath:  s.CatalogPath,
		UploadDir:    s.UploadDir,
		Sounds:       s.Sounds,
		Playing:      playing,
		Dependencies: api.FromDependencies(s.Dependencies),
	}
}
