package filter

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"soundboard/internal/catalog"
)

// Result is the derived display list.
type Result struct {
	Entries    []catalog.SoundEntry
	AnyVisible bool
}

// ComputeVisible filters entries by query and category, then orders them for
// the state's mode. The input slice is not modified.
func ComputeVisible(entries []catalog.SoundEntry, state State) Result {
	lower := cases.Lower(language.Und)
	query := lower.String(strings.TrimSpace(state.Query))
	all := state.IsAll()
	category := catalog.Category(state.Category)

	visible := make([]catalog.SoundEntry, 0, len(entries))
	for _, entry := range entries {
		if !all && entry.Category != category {
			continue
		}
		if query != "" && !strings.Contains(lower.String(entry.Label), query) {
			continue
		}
		visible = append(visible, entry)
	}

	if state.Mode == ModeJustAdded {
		slices.SortStableFunc(visible, func(a, b catalog.SoundEntry) int {
			return cmp.Compare(b.AddedRank, a.AddedRank)
		})
	}

	return Result{Entries: visible, AnyVisible: len(visible) > 0}
}
