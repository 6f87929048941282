package playback

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"soundboard/internal/logging"
	"soundboard/internal/services"
)

// Status is the result of a play request.
type Status string

const (
	StatusStarted Status = "started"
	StatusFailed  Status = "failed"
	// StatusIgnored means no resource is bound to the id; nothing changed.
	StatusIgnored Status = "ignored"
)

// Outcome reports what Play did.
type Outcome struct {
	Status Status
	Reason string
	// Window is how long the sound stays marked as playing.
	Window time.Duration
}

// Windows holds the visual timing configuration.
type Windows struct {
	MaxVisual      time.Duration
	FallbackVisual time.Duration
	PressPulse     time.Duration
}

// DefaultWindows returns the 5s cap, 1.5s fallback, and 120ms pulse.
func DefaultWindows() Windows {
	return Windows{
		MaxVisual:      5000 * time.Millisecond,
		FallbackVisual: 1500 * time.Millisecond,
		PressPulse:     120 * time.Millisecond,
	}
}

// Snapshot is the visual state of every control at one instant.
type Snapshot struct {
	Playing []string
	Pressed []string
}

// IsPlaying reports whether id is in the snapshot's playing set.
func (s Snapshot) IsPlaying(id string) bool {
	return contains(s.Playing, id)
}

// IsPressed reports whether id is in the snapshot's pressed set.
func (s Snapshot) IsPressed(id string) bool {
	return contains(s.Pressed, id)
}

type clearHandle struct {
	timer Timer
}

// Tracker owns per-id playing and pressed state.
type Tracker struct {
	registry *Registry
	player   Player
	clock    Clock
	windows  Windows
	logger   *slog.Logger

	mu      sync.Mutex
	playing map[string]*clearHandle
	pressed map[string]struct{}
	pulses  map[Timer]struct{}
	closed  bool
}

// NewTracker wires a tracker. A nil clock uses real timers.
func NewTracker(registry *Registry, player Player, clock Clock, windows Windows, logger *slog.Logger) *Tracker {
	if clock == nil {
		clock = RealClock()
	}
	defaults := DefaultWindows()
	if windows.MaxVisual <= 0 {
		windows.MaxVisual = defaults.MaxVisual
	}
	if windows.FallbackVisual <= 0 {
		windows.FallbackVisual = defaults.FallbackVisual
	}
	if windows.PressPulse <= 0 {
		windows.PressPulse = defaults.PressPulse
	}
	return &Tracker{
		registry: registry,
		player:   player,
		clock:    clock,
		windows:  windows,
		logger:   logging.NewComponentLogger(logger, "playback"),
		playing:  make(map[string]*clearHandle),
		pressed:  make(map[string]struct{}),
		pulses:   make(map[Timer]struct{}),
	}
}

// Registry exposes the resource registry backing the tracker.
func (t *Tracker) Registry() *Registry {
	return t.registry
}

// Play triggers the clip bound to id.
func (t *Tracker) Play(ctx context.Context, id string) Outcome {
	logger := logging.WithContext(services.WithSoundID(ctx, id), t.logger)

	res, ok := t.registry.Get(id)
	if !ok {
		logger.Debug("play ignored; no resource bound", logging.String(logging.FieldEventType, "playback_ignored"))
		return Outcome{Status: StatusIgnored, Reason: "no playable resource"}
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return Outcome{Status: StatusIgnored, Reason: "tracker closed"}
	}
	t.pulseLocked(id)
	t.mu.Unlock()

	if err := t.player.Start(ctx, id, res.Path); err != nil {
		logging.WarnWithContext(logger, "playback failed", "playback_failed",
			logging.String("path", res.Path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check player_binary and that the clip is readable"),
			logging.String(logging.FieldImpact, "sound was not played"),
		)
		return Outcome{Status: StatusFailed, Reason: err.Error()}
	}

	window := t.window(res)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		t.player.Stop(id)
		return Outcome{Status: StatusIgnored, Reason: "tracker closed"}
	}
	if prior, ok := t.playing[id]; ok {
		prior.timer.Stop()
	}
	handle := &clearHandle{}
	handle.timer = t.clock.AfterFunc(window, func() { t.expire(id, handle) })
	t.playing[id] = handle
	t.mu.Unlock()

	logger.Info("playback started",
		logging.String(logging.FieldEventType, "playback_started"),
		logging.Duration("window", window),
		logging.Bool("duration_known", res.DurationKnown),
	)
	return Outcome{Status: StatusStarted, Window: window}
}

func (t *Tracker) window(res Resource) time.Duration {
	if !res.DurationKnown || res.Duration <= 0 {
		return t.windows.FallbackVisual
	}
	return min(res.Duration, t.windows.MaxVisual)
}

// pulseLocked marks id pressed and schedules an unconditional release.
func (t *Tracker) pulseLocked(id string) {
	t.pressed[id] = struct{}{}
	var timer Timer
	timer = t.clock.AfterFunc(t.windows.PressPulse, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.pulses, timer)
		delete(t.pressed, id)
	})
	t.pulses[timer] = struct{}{}
}

// expire clears id only if handle is still the current one; a superseded
// handle that fires late is a no-op.
func (t *Tracker) expire(id string, handle *clearHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.playing[id] != handle {
		return
	}
	delete(t.playing, id)
	t.logger.Debug("playing indicator cleared",
		logging.String(logging.FieldSoundID, id),
		logging.String(logging.FieldEventType, "playback_cleared"),
	)
}

// Snapshot returns sorted playing and pressed id sets.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := Snapshot{
		Playing: make([]string, 0, len(t.playing)),
		Pressed: make([]string, 0, len(t.pressed)),
	}
	for id := range t.playing {
		snap.Playing = append(snap.Playing, id)
	}
	for id := range t.pressed {
		snap.Pressed = append(snap.Pressed, id)
	}
	sort.Strings(snap.Playing)
	sort.Strings(snap.Pressed)
	return snap
}

// PendingClears reports how many auto-clear handles are pending for id.
func (t *Tracker) PendingClears(id string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.playing[id]; ok {
		return 1
	}
	return 0
}

// Close cancels all timers and stops the player.
func (t *Tracker) Close() error {
	t.mu.Lock()
	t.closed = true
	for id, handle := range t.playing {
		handle.timer.Stop()
		delete(t.playing, id)
	}
	for timer := range t.pulses {
		timer.Stop()
	}
	clear(t.pulses)
	clear(t.pressed)
	t.mu.Unlock()
	if t.player == nil {
		return nil
	}
	return t.player.Close()
}

func contains(ids []string, id string) bool {
	idx := sort.SearchStrings(ids, id)
	return idx < len(ids) && ids[idx] == id
}
