package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive board and blocks until the user quits.
func Run(client BoardClient) error {
	program := tea.NewProgram(New(client), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
