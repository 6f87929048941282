package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"soundboard/internal/api"
)

// renderBoard prints the filter bar, notice, and sound table for view.
func renderBoard(out io.Writer, view api.BoardView) {
	if view.FilterBarVisible && view.FilterLabel != "" {
		fmt.Fprintln(out, view.FilterLabel)
	}
	if view.Notice != "" {
		fmt.Fprintln(out, view.Notice)
	}
	if !view.AnyVisible || len(view.Sounds) == 0 {
		fmt.Fprintln(out, "No sounds found. Try a different search or category.")
		return
	}

	rows := make([][]string, 0, len(view.Sounds))
	for i, sound := range view.Sounds {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			sound.ID,
			strings.ToUpper(sound.Label),
			sound.CategoryLabel,
			strconv.Itoa(sound.AddedRank),
			soundState(sound),
		})
	}
	title := fmt.Sprintf("%d of %d sounds", len(view.Sounds), view.Total)
	fmt.Fprint(out, renderTable(title,
		[]string{"#", "ID", "Label", "Category", "Rank", "State"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
}

func soundState(sound api.Sound) string {
	switch {
	case sound.Playing:
		return "playing"
	case sound.Pressed:
		return "pressed"
	default:
		return ""
	}
}
