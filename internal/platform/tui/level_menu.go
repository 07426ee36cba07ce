package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LevelMenuModel lets the player pick the first level to play.
type LevelMenuModel struct {
	names    []string
	cursor   int
	width    int
	keys     MenuKeyMap
	help     help.Model
	chosen   bool
	quitting bool
}

// NewLevelMenuModel creates a picker over the given level names.
func NewLevelMenuModel(names []string, width int) LevelMenuModel {
	return LevelMenuModel{
		names: names,
		width: width,
		keys:  DefaultMenuKeyMap(),
		help:  help.New(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, len(m.names)-1)
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, name := range m.names {
		line := fmt.Sprintf("  %2d. %s", i+1, name)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %2d. %s", i+1, name))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(footerStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Selected returns the chosen level index, or false if the player backed out.
func (m LevelMenuModel) Selected() (int, bool) {
	return m.cursor, m.chosen
}

// RunLevelMenu asks for a starting level. With fewer than two levels there
// is nothing to choose and it returns 0 immediately.
func RunLevelMenu(names []string, width int) (int, bool, error) {
	if len(names) < 2 {
		return 0, true, nil
	}

	p := tea.NewProgram(NewLevelMenuModel(names, width), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("level menu: %w", err)
	}
	m, ok := final.(LevelMenuModel)
	if !ok {
		return 0, false, nil
	}
	index, chosen := m.Selected()
	return index, chosen, nil
}
