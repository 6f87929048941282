package playback

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"soundboard/internal/logging"
)

// Resource is a playable clip bound to a sound id.
type Resource struct {
	ID            string
	Path          string
	Duration      time.Duration
	DurationKnown bool
}

// DurationProber reports a clip's length. ok=false means unknown.
type DurationProber interface {
	Duration(ctx context.Context, path string) (time.Duration, bool, error)
}

// Registry maps sound ids to playable resources.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]Resource
	prober    DurationProber
	logger    *slog.Logger
}

// NewRegistry builds a registry. A nil prober leaves every duration unknown.
func NewRegistry(prober DurationProber, logger *slog.Logger) *Registry {
	return &Registry{
		resources: make(map[string]Resource),
		prober:    prober,
		logger:    logging.NewComponentLogger(logger, "registry"),
	}
}

// Register probes the clip's duration and binds it to id, replacing any
// previous binding. Probe failures are logged and leave the duration unknown.
func (r *Registry) Register(ctx context.Context, id, path string) Resource {
	res := Resource{ID: strings.TrimSpace(id), Path: path}
	if r.prober != nil {
		d, ok, err := r.prober.Duration(ctx, path)
		switch {
		case err != nil:
			logging.WarnWithContext(r.logger, "duration probe failed", "probe_failed",
				logging.String(logging.FieldSoundID, res.ID),
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "verify the clip exists and ffprobe is installed"),
				logging.String(logging.FieldImpact, "playing indicator uses the fallback window"),
			)
		case ok:
			res.Duration = d
			res.DurationKnown = true
		}
	}
	r.Add(res)
	return res
}

// Add binds a resource without probing.
func (r *Registry) Add(res Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[res.ID] = res
}

// Get returns the resource bound to id.
func (r *Registry) Get(id string) (Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resources[id]
	return res, ok
}

// Remove drops the binding for id.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resources, id)
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.resources))
	for id := range r.resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
