package catalog

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"soundboard/internal/services"
)

// Palette lists the dome button colours a sound may be rendered with.
var Palette = []string{"red", "green", "orange", "yellow", "pink", "brown", "blue", "black"}

// SoundEntry is one playable catalog item. Entries are immutable once added.
type SoundEntry struct {
	ID        string
	Label     string
	Category  Category
	AddedRank int
	Color     string
}

// Catalog is an insertion-ordered set of sound entries keyed by ID.
// It is not safe for concurrent use; the board serializes access.
type Catalog struct {
	entries []SoundEntry
	index   map[string]int
	maxRank int
	extra   []Category
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Insert adds an entry with a caller-assigned rank. The rank counter advances
// past the entry's rank so later appends always sort newer.
func (c *Catalog) Insert(entry SoundEntry) error {
	entry.ID = strings.TrimSpace(entry.ID)
	entry.Label = strings.TrimSpace(entry.Label)
	entry.Category = NormalizeCategory(string(entry.Category))
	if entry.ID == "" {
		return services.Wrap(services.ErrValidation, "catalog", "insert", "sound id must not be empty", nil)
	}
	if entry.Label == "" {
		return services.Wrap(services.ErrValidation, "catalog", "insert", fmt.Sprintf("sound %q has no label", entry.ID), nil)
	}
	if entry.Category == "" {
		return services.Wrap(services.ErrValidation, "catalog", "insert", fmt.Sprintf("sound %q has no category", entry.ID), nil)
	}
	if _, exists := c.index[entry.ID]; exists {
		return services.Wrap(services.ErrValidation, "catalog", "insert", fmt.Sprintf("duplicate sound id %q", entry.ID), nil)
	}
	if entry.Color == "" {
		entry.Color = Palette[len(c.entries)%len(Palette)]
	}
	c.index[entry.ID] = len(c.entries)
	c.entries = append(c.entries, entry)
	if entry.AddedRank > c.maxRank {
		c.maxRank = entry.AddedRank
	}
	if !slices.Contains(builtinCategories, entry.Category) && !slices.Contains(c.extra, entry.Category) {
		c.extra = append(c.extra, entry.Category)
	}
	return nil
}

// Append adds a runtime entry at the end of insertion order with the next rank.
func (c *Catalog) Append(id, label string, category Category, color string) (SoundEntry, error) {
	if c.maxRank == math.MaxInt {
		return SoundEntry{}, services.Wrap(services.ErrValidation, "catalog", "append", "rank counter exhausted", nil)
	}
	entry := SoundEntry{
		ID:        id,
		Label:     label,
		Category:  category,
		AddedRank: c.NextRank(),
		Color:     color,
	}
	if err := c.Insert(entry); err != nil {
		return SoundEntry{}, err
	}
	return c.entries[len(c.entries)-1], nil
}

// NextRank returns the rank the next appended entry will receive.
func (c *Catalog) NextRank() int {
	return c.maxRank + 1
}

// Entries returns a copy of the entries in insertion order.
func (c *Catalog) Entries() []SoundEntry {
	return append([]SoundEntry(nil), c.entries...)
}

// Get looks up an entry by ID.
func (c *Catalog) Get(id string) (SoundEntry, bool) {
	idx, ok := c.index[id]
	if !ok {
		return SoundEntry{}, false
	}
	return c.entries[idx], true
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Categories returns the built-in categories followed by any extra tags seen
// in the catalog, in first-seen order.
func (c *Catalog) Categories() []Category {
	out := BuiltinCategories()
	return append(out, c.extra...)
}

// HasCategory reports whether cat is a built-in or catalog-provided tag.
func (c *Catalog) HasCategory(cat Category) bool {
	return slices.Contains(builtinCategories, cat) || slices.Contains(c.extra, cat)
}
