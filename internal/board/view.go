package board

import (
	"soundboard/internal/account"
	"soundboard/internal/catalog"
	"soundboard/internal/filter"
	"soundboard/internal/playback"
)

// Item is one visible sound with its visual state.
type Item struct {
	Entry   catalog.SoundEntry
	Playing bool
	Pressed bool
}

// CategoryOption is a selectable category with its display name.
type CategoryOption struct {
	Tag   catalog.Category
	Label string
}

// View is everything a client needs to render the board.
type View struct {
	State            filter.State
	Items            []Item
	AnyVisible       bool
	FilterLabel      string
	FilterBarVisible bool
	Categories       []CategoryOption
	Total            int
	Session          *account.Session
	Notice           string
}

func (b *Board) viewLocked() View {
	entries := b.catalog.Entries()
	result := filter.ComputeVisible(entries, b.state)

	var snap playback.Snapshot
	if b.tracker != nil {
		snap = b.tracker.Snapshot()
	}
	items := make([]Item, 0, len(result.Entries))
	for _, entry := range result.Entries {
		items = append(items, Item{
			Entry:   entry,
			Playing: snap.IsPlaying(entry.ID),
			Pressed: snap.IsPressed(entry.ID),
		})
	}

	cats := b.catalog.Categories()
	options := make([]CategoryOption, 0, len(cats))
	for _, cat := range cats {
		options = append(options, CategoryOption{Tag: cat, Label: catalog.DisplayName(cat)})
	}

	view := View{
		State:            b.state,
		Items:            items,
		AnyVisible:       result.AnyVisible,
		FilterLabel:      b.state.Describe(),
		FilterBarVisible: b.state.FilterBarVisible(),
		Categories:       options,
		Total:            len(entries),
	}
	if b.session != nil {
		session := *b.session
		view.Session = &session
	}
	if b.notice.Text != "" && b.now().Sub(b.notice.At) < NoticeTTL {
		view.Notice = b.notice.Text
	}
	return view
}

// IDs returns the ids of the visible items in display order.
func (v View) IDs() []string {
	ids := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		ids = append(ids, item.Entry.ID)
	}
	return ids
}
