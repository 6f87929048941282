package playback

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"soundboard/internal/logging"
	"soundboard/internal/services"
)

// Player starts clip playback on the host.
type Player interface {
	// Start plays path from the beginning, stopping any earlier playback of id.
	Start(ctx context.Context, id, path string) error
	// Stop halts playback of id if it is sounding.
	Stop(id string)
	Close() error
}

// ExecPlayer plays clips by spawning an external player binary, one process
// per sound id.
type ExecPlayer struct {
	binary string
	args   []string
	logger *slog.Logger

	mu     sync.Mutex
	procs  map[string]*exec.Cmd
	closed bool
	wg     sync.WaitGroup
}

// NewExecPlayer builds a player. args must contain "{file}", which is
// replaced with the clip path on every start.
func NewExecPlayer(binary string, args []string, logger *slog.Logger) *ExecPlayer {
	return &ExecPlayer{
		binary: binary,
		args:   append([]string(nil), args...),
		logger: logging.NewComponentLogger(logger, "player"),
		procs:  make(map[string]*exec.Cmd),
	}
}

// Start launches the player for path. The process outlives ctx; it is reaped
// in the background and killed by Stop, a re-trigger, or Close.
func (p *ExecPlayer) Start(ctx context.Context, id, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return services.Wrap(services.ErrPlayback, "player", "start", "player closed", nil)
	}
	if err := ctx.Err(); err != nil {
		return services.Wrap(services.ErrPlayback, "player", "start", id, err)
	}
	p.stopLocked(id)

	args := make([]string, len(p.args))
	for i, arg := range p.args {
		args[i] = strings.ReplaceAll(arg, "{file}", path)
	}
	cmd := exec.Command(p.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return services.Wrap(services.ErrPlayback, "player", "start", p.binary, err)
	}
	p.procs[id] = cmd

	p.wg.Add(1)
	go p.reap(id, cmd, &stderr)
	return nil
}

func (p *ExecPlayer) reap(id string, cmd *exec.Cmd, stderr *bytes.Buffer) {
	defer p.wg.Done()
	err := cmd.Wait()

	p.mu.Lock()
	current := p.procs[id] == cmd
	if current {
		delete(p.procs, id)
	}
	p.mu.Unlock()

	if err == nil || !current {
		return
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return
		}
	}
	logging.WarnWithContext(p.logger, "player exited with error", "player_exit_failed",
		logging.String(logging.FieldSoundID, id),
		logging.Error(err),
		logging.String("stderr", strings.TrimSpace(stderr.String())),
		logging.String(logging.FieldErrorHint, "check the clip format and player_binary setting"),
		logging.String(logging.FieldImpact, "clip may have been silent"),
	)
}

// Stop kills the process playing id, if any.
func (p *ExecPlayer) Stop(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked(id)
}

func (p *ExecPlayer) stopLocked(id string) {
	cmd, ok := p.procs[id]
	if !ok {
		return
	}
	delete(p.procs, id)
	if cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}

// Active returns the number of running player processes.
func (p *ExecPlayer) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.procs)
}

// Close kills every running process and waits for them to be reaped.
func (p *ExecPlayer) Close() error {
	p.mu.Lock()
	p.closed = true
	for id := range p.procs {
		p.stopLocked(id)
	}
	p.mu.Unlock()
	p.wg.Wait()
	return nil
}
