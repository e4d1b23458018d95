package footer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"collapsehead/collapse"
)

// Model holds the footer's state
type Model struct {
	width    int
	offsetY  float64
	position collapse.Position

	keys help.KeyMap
	help help.Model
}

// New creates a new footer model showing help for keys
func New(keys help.KeyMap) Model {
	return Model{
		width: 80, // Default
		keys:  keys,
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetScroll allows the parent model to update the readout
func (m *Model) SetScroll(offsetY float64, p collapse.Position) {
	m.offsetY = offsetY
	m.position = p
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width // Just store the width
		m.help.Width = msg.Width
	}
	return m, nil
}

// Status is the left-hand readout
func (m Model) Status() string {
	return fmt.Sprintf("offset %.0f | header %.0f | %s",
		unsigned(m.offsetY), unsigned(m.position.HeaderOffset), m.position.State())
}

// unsigned drops the sign from negative zero so it prints as "0"
func unsigned(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func (m Model) View() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Padding(0, 1)

	footerLeft := footerStyle.Render(m.Status())

	// Use the component's width
	footerRight := footerStyle.Width(max(m.width-lipgloss.Width(footerLeft)-1, 0)).
		Align(lipgloss.Right).
		MaxHeight(1).
		Render(m.help.ShortHelpView(m.keys.ShortHelp()) + " • q quit")

	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(1).
		Render(lipgloss.JoinHorizontal(lipgloss.Left, footerLeft, footerRight))
}
