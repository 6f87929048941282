package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"soundboard/internal/api"
	"soundboard/internal/ipc"
)

const (
	buttonWidth     = 18
	defaultColumns  = 4
	refreshInterval = 250 * time.Millisecond
	categoryAll     = "all"
)

// BoardClient is the subset of the IPC client the terminal board drives.
type BoardClient interface {
	Board() (*ipc.BoardResponse, error)
	SetQuery(query string) (*ipc.BoardResponse, error)
	SelectCategory(category string) (*ipc.BoardResponse, error)
	JustAdded() (*ipc.BoardResponse, error)
	Clear() (*ipc.BoardResponse, error)
	Home() (*ipc.BoardResponse, error)
	Play(id string) (*ipc.PlayResponse, error)
}

type boardMsg struct{ view api.BoardView }

type playMsg struct{ resp api.PlayResponse }

type errMsg struct{ err error }

type tickMsg time.Time

// Model is the bubbletea model for the terminal board.
type Model struct {
	client BoardClient
	keys   KeyMap
	styles Styles

	view      api.BoardView
	cursor    int
	search    textinput.Model
	searching bool
	status    string
	err       error
	width     int
}

// New builds a model over client.
func New(client BoardClient) Model {
	search := textinput.New()
	search.Placeholder = "Search sounds..."
	search.Prompt = "/ "
	search.CharLimit = 80
	search.Width = 40
	return Model{
		client: client,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		search: search,
	}
}

// Init fetches the board and starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.client.Board), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) fetch(fn func() (*ipc.BoardResponse, error)) tea.Cmd {
	return func() tea.Msg {
		resp, err := fn()
		if err != nil {
			return errMsg{err: err}
		}
		return boardMsg{view: resp.View}
	}
}

func (m Model) play(id string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.Play(id)
		if err != nil {
			return errMsg{err: err}
		}
		return playMsg{resp: *resp}
	}
}

// Update applies one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case boardMsg:
		m.view = msg.view
		m.err = nil
		m.clampCursor()
		return m, nil
	case playMsg:
		if msg.resp.Status == "started" {
			m.status = fmt.Sprintf("Playing %s", msg.resp.ID)
		} else {
			m.status = fmt.Sprintf("Ignored %s", msg.resp.ID)
		}
		return m, m.fetch(m.client.Board)
	case errMsg:
		m.err = msg.err
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.fetch(m.client.Board), tick())
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.searching = false
		m.search.Blur()
		query := m.search.Value()
		return m, m.fetch(func() (*ipc.BoardResponse, error) { return m.client.SetQuery(query) })
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.view.Filter.Query)
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.columns()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.view.Filter.Query)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Play):
		if m.cursor < len(m.view.Sounds) {
			return m, m.play(m.view.Sounds[m.cursor].ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Category):
		next := m.nextCategory()
		return m, m.fetch(func() (*ipc.BoardResponse, error) { return m.client.SelectCategory(next) })
	case key.Matches(msg, m.keys.JustAdded):
		return m, m.fetch(m.client.JustAdded)
	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		return m, m.fetch(m.client.Clear)
	case key.Matches(msg, m.keys.Home):
		m.search.SetValue("")
		m.cursor = 0
		return m, m.fetch(m.client.Home)
	case key.Matches(msg, m.keys.Up):
		m.move(-cols)
	case key.Matches(msg, m.keys.Down):
		m.move(cols)
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	}
	return m, nil
}

func (m *Model) move(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.view.Sounds) {
		return
	}
	m.cursor = next
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view.Sounds) {
		m.cursor = max(len(m.view.Sounds)-1, 0)
	}
}

// nextCategory cycles all -> each category -> all.
func (m Model) nextCategory() string {
	current := m.view.Filter.Category
	if current == "" || current == categoryAll {
		if len(m.view.Categories) == 0 {
			return categoryAll
		}
		return m.view.Categories[0].Tag
	}
	for i, option := range m.view.Categories {
		if option.Tag == current && i+1 < len(m.view.Categories) {
			return m.view.Categories[i+1].Tag
		}
	}
	return categoryAll
}

func (m Model) columns() int {
	if m.width <= 0 {
		return defaultColumns
	}
	cell := buttonWidth + 5
	return max(m.width/cell, 1)
}

// View renders the board.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("SOUNDBOARD"))
	if m.view.Session != nil {
		b.WriteString("  " + m.styles.Help.Render(m.view.Session.DisplayName))
	}
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View() + "\n")
	}
	if m.view.FilterBarVisible && m.view.FilterLabel != "" {
		b.WriteString(m.styles.FilterBar.Render(m.view.FilterLabel) + "\n")
	}
	if m.view.Notice != "" {
		b.WriteString(m.styles.Notice.Render(m.view.Notice) + "\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n")

	if !m.view.AnyVisible || len(m.view.Sounds) == 0 {
		b.WriteString(m.styles.Empty.Render("No sounds found. Try a different search or category.") + "\n")
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Help.Render(m.status) + "\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) renderGrid() string {
	cols := m.columns()
	rows := make([]string, 0, len(m.view.Sounds)/cols+1)
	cells := make([]string, 0, cols)
	for i, sound := range m.view.Sounds {
		cells = append(cells, m.renderButton(sound, i == m.cursor))
		if len(cells) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) renderButton(sound api.Sound, selected bool) string {
	style := m.styles.Button
	if selected {
		style = m.styles.Selected
	}
	if color, ok := m.styles.Colors[sound.Color]; ok {
		style = style.Foreground(color)
	}
	label := strings.ToUpper(sound.Label)
	if sound.Playing {
		label = m.styles.Playing.Render("♪ " + label)
	} else if sound.Pressed {
		label = m.styles.Pressed.Render(label)
	}
	return style.Render(label + "\n" + m.styles.Help.Render(sound.CategoryLabel))
}

func (m Model) helpView() string {
	parts := make([]string, 0, len(m.keys.helpLine()))
	for _, binding := range m.keys.helpLine() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}
