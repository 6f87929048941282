package board

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"soundboard/internal/account"
	"soundboard/internal/catalog"
	"soundboard/internal/filter"
	"soundboard/internal/logging"
	"soundboard/internal/playback"
	"soundboard/internal/services"
	"soundboard/internal/upload"
)

// InstallFallback is shown when the client cannot offer a native install.
const InstallFallback = `Bookmark this page or use your browser's "Add to Home Screen" option!`

// NoticeTTL is how long a notice stays in the view.
const NoticeTTL = 3 * time.Second

// Storage persists uploaded files for the session.
type Storage interface {
	Store(ctx context.Context, id string, src *upload.Source) (string, error)
	Discard(path string)
}

// Options wires a Board. Catalog, Tracker, and Storage are required.
type Options struct {
	Catalog  *catalog.Catalog
	Tracker  *playback.Tracker
	Storage  Storage
	Accounts account.Service
	Logger   *slog.Logger
	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// Notice is a transient message for the user.
type Notice struct {
	Text string
	At   time.Time
}

// Board is the owned UI controller state.
type Board struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	tracker  *playback.Tracker
	storage  Storage
	accounts account.Service
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string

	state   filter.State
	session *account.Session
	notice  Notice
}

// New builds a board in the initial All state.
func New(opts Options) *Board {
	b := &Board{
		catalog:  opts.Catalog,
		tracker:  opts.Tracker,
		storage:  opts.Storage,
		accounts: opts.Accounts,
		logger:   logging.NewComponentLogger(opts.Logger, "board"),
		now:      opts.Now,
		newID:    opts.NewID,
		state:    filter.Initial(),
	}
	if b.catalog == nil {
		b.catalog = catalog.New()
	}
	if b.accounts == nil {
		b.accounts = account.Simulated{}
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.newID == nil {
		b.newID = func() string { return "custom-" + uuid.NewString() }
	}
	return b
}

// View derives the current board view.
func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.viewLocked()
}

// State returns the filter state.
func (b *Board) State() filter.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// SetQuery updates the search text.
func (b *Board) SetQuery(query string) View {
	return b.transition(func(s filter.State) filter.State { return s.SetQuery(query) })
}

// SelectCategory filters to one category ("all" clears the filter).
func (b *Board) SelectCategory(category string) View {
	return b.transition(func(s filter.State) filter.State { return s.SelectCategory(category) })
}

// SelectJustAdded switches to newest-first ordering across all categories.
func (b *Board) SelectJustAdded() View {
	return b.transition(filter.State.SelectJustAdded)
}

// Clear dismisses the filter bar.
func (b *Board) Clear() View {
	return b.transition(filter.State.Clear)
}

// GoHome resets the board to its initial state.
func (b *Board) GoHome() View {
	return b.transition(filter.State.GoHome)
}

// Apply runs next against the filter state under a single lock, so composite
// requests are never observed half-applied.
func (b *Board) Apply(next func(filter.State) filter.State) View {
	return b.transition(next)
}

func (b *Board) transition(next func(filter.State) filter.State) View {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.state
	b.state = next(b.state)
	if prev != b.state {
		b.logger.Debug("filter changed",
			logging.String(logging.FieldEventType, "filter_changed"),
			logging.String("query", b.state.Query),
			logging.String("category", b.state.Category),
			logging.String("mode", string(b.state.Mode)),
		)
	}
	return b.viewLocked()
}

// Play triggers a sound. Unknown ids are ignored.
func (b *Board) Play(ctx context.Context, id string) playback.Outcome {
	if b.tracker == nil {
		return playback.Outcome{Status: playback.StatusIgnored, Reason: "playback unavailable"}
	}
	return b.tracker.Play(ctx, strings.TrimSpace(id))
}

// AddEntry uploads a clip and appends it to the catalog. On any failure the
// catalog is left unchanged.
func (b *Board) AddEntry(ctx context.Context, label, category string, src *upload.Source) (catalog.SoundEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return catalog.SoundEntry{}, services.Validation("board", "please enter a sound name")
	}
	if !src.Present() {
		return catalog.SoundEntry{}, services.Validation("board", "please select an audio file")
	}
	cat := catalog.NormalizeCategory(category)
	b.mu.Lock()
	known := b.catalog.HasCategory(cat)
	b.mu.Unlock()
	if !known {
		if cat == "" {
			return catalog.SoundEntry{}, services.Validation("board", "please choose a category")
		}
		return catalog.SoundEntry{}, services.Validation("board", fmt.Sprintf("unknown category %q", cat))
	}
	if b.storage == nil || b.tracker == nil {
		return catalog.SoundEntry{}, services.Wrap(services.ErrConfiguration, "board", "add entry", "uploads unavailable", nil)
	}

	id := b.newID()
	logger := logging.WithContext(services.WithSoundID(ctx, id), b.logger)

	path, err := b.storage.Store(ctx, id, src)
	if err != nil {
		return catalog.SoundEntry{}, err
	}
	registry := b.tracker.Registry()
	registry.Register(ctx, id, path)

	b.mu.Lock()
	entry, err := b.catalog.Append(id, label, cat, catalog.Palette[rand.IntN(len(catalog.Palette))])
	if err == nil {
		b.setNoticeLocked(UploadNotice(entry.Label))
	}
	b.mu.Unlock()
	if err != nil {
		registry.Remove(id)
		b.storage.Discard(path)
		return catalog.SoundEntry{}, err
	}

	logger.Info("sound uploaded",
		logging.String(logging.FieldEventType, "sound_uploaded"),
		logging.String("label", entry.Label),
		logging.String("category", string(entry.Category)),
		logging.Int("rank", entry.AddedRank),
	)
	return entry, nil
}

// Login signs in (or signs up) through the account service.
func (b *Board) Login(ctx context.Context, email, password string, signUp bool) (account.Session, error) {
	var (
		session account.Session
		err     error
	)
	if signUp {
		session, err = b.accounts.SignUp(ctx, email, password)
	} else {
		session, err = b.accounts.Login(ctx, email, password)
	}
	if err != nil {
		return account.Session{}, err
	}

	b.mu.Lock()
	b.session = &session
	b.setNoticeLocked(LoginNotice(session.DisplayName, signUp))
	b.mu.Unlock()

	b.logger.Info("user signed in",
		logging.String(logging.FieldEventType, "user_signed_in"),
		logging.String("display_name", session.DisplayName),
		logging.Bool("sign_up", signUp),
	)
	return session, nil
}

// Install records the install fallback notice and returns its text.
func (b *Board) Install() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setNoticeLocked(InstallFallback)
	return InstallFallback
}

// UploadNotice is the confirmation shown after a successful upload.
func UploadNotice(label string) string {
	return `Sound "` + label + `" uploaded successfully!`
}

// LoginNotice greets a user after login or sign-up.
func LoginNotice(name string, signUp bool) string {
	if signUp {
		return fmt.Sprintf("Welcome, %s!", name)
	}
	return fmt.Sprintf("Welcome back, %s!", name)
}

func (b *Board) setNoticeLocked(text string) {
	b.notice = Notice{Text: text, At: b.now()}
}

// Close stops playback and timers.
func (b *Board) Close() error {
	if b.tracker == nil {
		return nil
	}
	return b.tracker.Close()
}

// Playing returns the ids currently in the playing state.
func (b *Board) Playing() []string {
	if b.tracker == nil {
		return nil
	}
	return b.tracker.Snapshot().Playing
}
