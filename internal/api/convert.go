package api

import (
	"soundboard/internal/account"
	"soundboard/internal/board"
	"soundboard/internal/catalog"
	"soundboard/internal/deps"
	"soundboard/internal/filter"
	"soundboard/internal/playback"
)

// FromEntry converts a catalog entry without visual state.
func FromEntry(entry catalog.SoundEntry) Sound {
	return Sound{
		ID:            entry.ID,
		Label:         entry.Label,
		Category:      string(entry.Category),
		CategoryLabel: catalog.DisplayName(entry.Category),
		AddedRank:     entry.AddedRank,
		Color:         entry.Color,
	}
}

// FromItem converts a visible board item.
func FromItem(item board.Item) Sound {
	sound := FromEntry(item.Entry)
	sound.Playing = item.Playing
	sound.Pressed = item.Pressed
	return sound
}

// FromFilterState converts the filter state.
func FromFilterState(state filter.State) FilterState {
	category := state.Category
	if category == "" {
		category = filter.CategoryAll
	}
	return FilterState{Query: state.Query, Category: category, Mode: string(state.Mode)}
}

// FromSession converts an account session.
func FromSession(session account.Session) Session {
	return Session{Email: session.Email, DisplayName: session.DisplayName}
}

// FromView converts a full board view.
func FromView(view board.View) BoardView {
	dto := BoardView{
		Filter:           FromFilterState(view.State),
		Sounds:           make([]Sound, 0, len(view.Items)),
		AnyVisible:       view.AnyVisible,
		FilterLabel:      view.FilterLabel,
		FilterBarVisible: view.FilterBarVisible,
		Categories:       make([]CategoryOption, 0, len(view.Categories)),
		Total:            view.Total,
		Notice:           view.Notice,
	}
	for _, item := range view.Items {
		dto.Sounds = append(dto.Sounds, FromItem(item))
	}
	for _, option := range view.Categories {
		dto.Categories = append(dto.Categories, CategoryOption{Tag: string(option.Tag), Label: option.Label})
	}
	if view.Session != nil {
		session := FromSession(*view.Session)
		dto.Session = &session
	}
	return dto
}

// FromOutcome converts a playback outcome.
func FromOutcome(id string, outcome playback.Outcome) PlayResponse {
	return PlayResponse{
		ID:       id,
		Status:   string(outcome.Status),
		Reason:   outcome.Reason,
		WindowMS: outcome.Window.Milliseconds(),
	}
}

// FromDependencies converts dependency checks.
func FromDependencies(statuses []deps.Status) []DependencyStatus {
	out := make([]DependencyStatus, 0, len(statuses))
	for _, dep := range statuses {
		out = append(out, DependencyStatus{
			Name:        dep.Name,
			Command:     dep.Command,
			Description: dep.Description,
			Optional:    dep.Optional,
			Available:   dep.Available,
			Path:        dep.Path,
			Detail:      dep.Detail,
		})
	}
	return out
}
