package header

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"collapsehead/collapse"
)

// Options configures the header's text and colors
type Options struct {
	Title          string
	ExpandedColor  string
	CollapsedColor string
	Foreground     string
}

// Model holds the header's state
type Model struct {
	width    int
	height   int // expanded height in rows
	title    string
	position collapse.Position

	expandedStyle  lipgloss.Style
	collapsedStyle lipgloss.Style
}

// New creates a new header model for the given geometry
func New(opts Options, g collapse.Geometry) Model {
	base := lipgloss.NewStyle().
		Padding(0, 1). // Left/Right padding
		Bold(true).
		Foreground(lipgloss.Color(opts.Foreground))

	return Model{
		width:          80, // default
		height:         int(math.Round(g.ExpandedHeight)),
		title:          opts.Title,
		position:       collapse.Position{Collapsed: g.MaxScrollAmount() == 0},
		expandedStyle:  base.Background(lipgloss.Color(opts.ExpandedColor)),
		collapsedStyle: base.Background(lipgloss.Color(opts.CollapsedColor)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetPosition applies the controller's latest position
func (m *Model) SetPosition(p collapse.Position) {
	m.position = p
}

// Position returns the position the header is drawn at
func (m Model) Position() collapse.Position {
	return m.position
}

// Style returns the style for the current state
func (m Model) Style() lipgloss.Style {
	if m.position.Collapsed {
		return m.collapsedStyle
	}
	return m.expandedStyle
}

// hidden is the number of rows translated offscreen
func (m Model) hidden() int {
	return min(max(int(math.Round(-m.position.HeaderOffset)), 0), m.height)
}

// VisibleHeight is how many header rows remain on screen
func (m Model) VisibleHeight() int {
	return m.height - m.hidden()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width // Store the width
	}
	return m, nil
}

// View renders the visible part of the header. The title sits on the last
// row so it stays visible while collapsed.
func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}

	lines := make([]string, m.height)
	lines[m.height-1] = m.title
	if m.height > 1 {
		lines[m.height-2] = m.position.State().String()
	}

	style := m.Style().Width(m.width)
	rendered := make([]string, 0, m.VisibleHeight())
	for _, l := range lines[m.hidden():] {
		rendered = append(rendered, style.Render(l))
	}
	return strings.Join(rendered, "\n")
}
