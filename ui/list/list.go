// Package list is the scrollable row list that drives the collapsing header.
//
// The list keeps a top content inset equal to the header's travel, so at rest
// its offset is -inset and the first row sits just below the expanded header.
// Every offset change is reported to a collapse.Observer.
package list

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"collapsehead/collapse"
)

// Options configures the list.
type Options struct {
	Rows           int           // number of rows
	Step           int           // rows per line/wheel scroll
	Overscroll     int           // how far past either end the list may be pulled
	SettleInterval time.Duration // delay between settle steps after overscroll
}

// Model holds the list's state
type Model struct {
	width  int
	height int

	rows    []string
	inset   float64
	offsetY float64

	step           float64
	overscroll     float64
	settleInterval time.Duration
	settling       bool

	// not owned; the container outlives the list
	observer collapse.Observer

	keys     KeyMap
	rowStyle lipgloss.Style
	altStyle lipgloss.Style
}

// New creates a list at rest and reports that position to observer.
func New(opts Options, contentInsetTop float64, observer collapse.Observer) Model {
	rows := make([]string, max(opts.Rows, 0))
	for i := range rows {
		rows[i] = strconv.Itoa(i)
	}

	m := Model{
		width:          80, // default
		height:         20,
		rows:           rows,
		inset:          contentInsetTop,
		step:           float64(max(opts.Step, 1)),
		overscroll:     float64(max(opts.Overscroll, 0)),
		settleInterval: opts.SettleInterval,
		observer:       observer,
		keys:           DefaultKeyMap(),
		rowStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")),
		altStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235")),
	}
	if m.settleInterval <= 0 {
		m.settleInterval = 50 * time.Millisecond
	}
	m.setOffset(m.minOffset())
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Keys returns the list's key bindings
func (m Model) Keys() KeyMap {
	return m.keys
}

// OffsetY is the current scroll offset. At rest it equals -ContentInsetTop.
func (m Model) OffsetY() float64 {
	return m.offsetY
}

// ContentInsetTop returns the top inset reserved for the header.
func (m Model) ContentInsetTop() float64 {
	return m.inset
}

// Height returns the viewport height in rows.
func (m Model) Height() int {
	return m.height
}

// Settling reports whether the list is springing back from an overscroll.
func (m Model) Settling() bool {
	return m.settling
}

// Reset returns the list to rest.
func (m *Model) Reset() {
	m.settling = false
	m.setOffset(m.minOffset())
}

func (m Model) minOffset() float64 {
	return -m.inset
}

func (m Model) maxOffset() float64 {
	return math.Max(m.minOffset(), float64(len(m.rows)-m.height))
}

func (m Model) pageSize() float64 {
	return float64(max(m.height-1, 1))
}

func (m Model) overscrolled() bool {
	return m.offsetY < m.minOffset() || m.offsetY > m.maxOffset()
}

// setOffset stores the offset and notifies the observer
func (m *Model) setOffset(y float64) {
	m.offsetY = y
	if m.observer != nil {
		m.observer.DidScroll(collapse.ScrollEvent{OffsetY: m.offsetY, ContentInsetTop: m.inset})
	}
}

// scrollBy moves the offset by delta. With overscroll allowed the list may be
// pulled past its bounds, after which it settles back on its own.
func (m *Model) scrollBy(delta float64, allowOverscroll bool) tea.Cmd {
	lo, hi := m.minOffset(), m.maxOffset()
	if allowOverscroll {
		lo -= m.overscroll
		hi += m.overscroll
	}
	target := math.Min(hi, math.Max(lo, m.offsetY+delta))
	if target == m.offsetY {
		return nil
	}
	m.setOffset(target)
	return m.startSettling()
}

func (m *Model) startSettling() tea.Cmd {
	if !m.overscrolled() || m.settling {
		return nil
	}
	m.settling = true
	return settleCmd(m.settleInterval)
}

func (m *Model) settle() tea.Cmd {
	if !m.overscrolled() {
		m.settling = false
		return nil
	}
	m.setOffset(settleStep(m.offsetY, m.minOffset(), m.maxOffset()))
	if !m.overscrolled() {
		m.settling = false
		return nil
	}
	return settleCmd(m.settleInterval)
}

// Update handles key, mouse and window messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height, 1)
		if !m.settling {
			clamped := math.Min(m.maxOffset(), math.Max(m.minOffset(), m.offsetY))
			m.setOffset(clamped)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.LineUp):
			return m, m.scrollBy(-m.step, true)
		case key.Matches(msg, m.keys.LineDown):
			return m, m.scrollBy(m.step, true)
		case key.Matches(msg, m.keys.PageUp):
			return m, m.scrollBy(-m.pageSize(), false)
		case key.Matches(msg, m.keys.PageDown):
			return m, m.scrollBy(m.pageSize(), false)
		case key.Matches(msg, m.keys.Top):
			return m, m.scrollBy(m.minOffset()-m.offsetY, false)
		case key.Matches(msg, m.keys.Bottom):
			return m, m.scrollBy(m.maxOffset()-m.offsetY, false)
		case key.Matches(msg, m.keys.Reset):
			m.Reset()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, m.scrollBy(-m.step, true)
		case tea.MouseButtonWheelDown:
			return m, m.scrollBy(m.step, true)
		}

	case settleMsg:
		return m, m.settle()
	}

	return m, nil
}

// View renders exactly Height() lines. Line v shows row v+OffsetY; lines
// over the inset or past the last row are blank.
func (m Model) View() string {
	width := max(m.width, 1)
	blank := strings.Repeat(" ", width)
	first := int(math.Floor(m.offsetY))

	lines := make([]string, m.height)
	for v := range lines {
		idx := first + v
		if idx < 0 || idx >= len(m.rows) {
			lines[v] = blank
			continue
		}
		style := m.rowStyle
		if idx%2 == 1 {
			style = m.altStyle
		}
		lines[v] = style.Width(width).Render(m.rows[idx])
	}
	return strings.Join(lines, "\n")
}
