package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the board view.
type Styles struct {
	Title     lipgloss.Style
	FilterBar lipgloss.Style
	Notice    lipgloss.Style
	Error     lipgloss.Style
	Button    lipgloss.Style
	Selected  lipgloss.Style
	Playing   lipgloss.Style
	Pressed   lipgloss.Style
	Empty     lipgloss.Style
	Help      lipgloss.Style
	Colors    map[string]lipgloss.Color
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	button := lipgloss.NewStyle().
		Width(buttonWidth).
		Padding(0, 1).
		Margin(0, 1, 1, 0).
		Border(lipgloss.RoundedBorder()).
		Align(lipgloss.Center)
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		FilterBar: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Button:    button,
		Selected:  button.BorderForeground(lipgloss.Color("226")).Bold(true),
		Playing:   lipgloss.NewStyle().Reverse(true),
		Pressed:   lipgloss.NewStyle().Underline(true),
		Empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Colors: map[string]lipgloss.Color{
			"red":    lipgloss.Color("203"),
			"green":  lipgloss.Color("78"),
			"orange": lipgloss.Color("215"),
			"yellow": lipgloss.Color("221"),
			"pink":   lipgloss.Color("218"),
			"brown":  lipgloss.Color("137"),
			"blue":   lipgloss.Color("75"),
			"black":  lipgloss.Color("245"),
		},
	}
}
