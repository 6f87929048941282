package filter

import (
	"fmt"
	"strings"

	"soundboard/internal/catalog"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Mode selects the display ordering.
type Mode string

const (
	// ModeNormal keeps catalog insertion order.
	ModeNormal Mode = "normal"
	// ModeJustAdded orders by rank, newest first.
	ModeJustAdded Mode = "just-added"
)

// ParseMode accepts the wire spellings of a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "normal", "all":
		return ModeNormal, nil
	case "just-added", "justadded", "just_added":
		return ModeJustAdded, nil
	default:
		return "", fmt.Errorf("unknown mode %q", value)
	}
}

// State is the board's filter configuration.
type State struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Mode     Mode   `json:"mode"`
}

// Initial returns the state a fresh board starts in.
func Initial() State {
	return State{Category: CategoryAll, Mode: ModeNormal}
}

// SetQuery replaces the search text only.
func (s State) SetQuery(query string) State {
	s.Query = query
	return s
}

// SelectCategory shows one category in natural order. The query is kept.
func (s State) SelectCategory(category string) State {
	s.Category = normalizeCategory(category)
	s.Mode = ModeNormal
	return s
}

// SelectJustAdded shows every category newest first and clears the query.
func (s State) SelectJustAdded() State {
	s.Category = CategoryAll
	s.Mode = ModeJustAdded
	s.Query = ""
	return s
}

// Clear drops the category, ordering, and query. It is the filter bar's
// dismiss action and lands in the same state as GoHome.
func (s State) Clear() State {
	return Initial()
}

// GoHome resets to the initial state.
func (s State) GoHome() State {
	return Initial()
}

// IsAll reports whether no category filter applies.
func (s State) IsAll() bool {
	return s.Category == "" || s.Category == CategoryAll
}

// FilterBarVisible reports whether the "Showing: ..." bar should be shown.
func (s State) FilterBarVisible() bool {
	return !s.IsAll() || s.Mode == ModeJustAdded
}

// Describe returns the filter bar label, or "" when the bar is hidden.
func (s State) Describe() string {
	switch {
	case s.Mode == ModeJustAdded:
		return "Showing: Just Added (newest first)"
	case !s.IsAll():
		return "Showing: " + catalog.DisplayName(catalog.Category(s.Category))
	default:
		return ""
	}
}

func normalizeCategory(value string) string {
	normalized := string(catalog.NormalizeCategory(value))
	if normalized == "" {
		return CategoryAll
	}
	return normalized
}
