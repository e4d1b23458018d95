package list

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collapsehead/collapse"
)

type recorder struct {
	events []collapse.ScrollEvent
}

func (r *recorder) DidScroll(ev collapse.ScrollEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) last() collapse.ScrollEvent {
	return r.events[len(r.events)-1]
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newSized(t *testing.T, opts Options, inset float64, height int) (Model, *recorder) {
	t.Helper()
	rec := &recorder{}
	m := New(opts, inset, rec)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: height})
	return m, rec
}

func TestNewStartsAtRest(t *testing.T) {
	rec := &recorder{}
	m := New(Options{Rows: 10}, 4, rec)

	assert.Equal(t, -4.0, m.OffsetY())
	assert.Equal(t, 4.0, m.ContentInsetTop())
	require.Len(t, rec.events, 1)
	assert.Equal(t, collapse.ScrollEvent{OffsetY: -4, ContentInsetTop: 4}, rec.last())
}

func TestLineScrollNotifiesObserver(t *testing.T) {
	m, rec := newSized(t, Options{Rows: 50, Overscroll: 2}, 4, 10)
	start := len(rec.events)

	for i := 0; i < 3; i++ {
		m, _ = m.Update(keyMsg("down"))
	}
	assert.Equal(t, -1.0, m.OffsetY())
	assert.Len(t, rec.events, start+3)
	assert.Equal(t, -1.0, rec.last().OffsetY)

	m, _ = m.Update(keyMsg("k"))
	assert.Equal(t, -2.0, m.OffsetY())
}

func TestScrollStep(t *testing.T) {
	m, _ := newSized(t, Options{Rows: 50, Step: 3}, 4, 10)
	m, _ = m.Update(keyMsg("j"))
	assert.Equal(t, -1.0, m.OffsetY())
}

func TestPageAndJumpStayInBounds(t *testing.T) {
	m, _ := newSized(t, Options{Rows: 30, Overscroll: 5}, 4, 10)

	m, cmd := m.Update(keyMsg("G"))
	assert.Nil(t, cmd)
	assert.Equal(t, 20.0, m.OffsetY())

	m, cmd = m.Update(keyMsg("pgdown"))
	assert.Nil(t, cmd)
	assert.Equal(t, 20.0, m.OffsetY())

	m, _ = m.Update(keyMsg("pgup"))
	assert.Equal(t, 11.0, m.OffsetY())

	m, _ = m.Update(keyMsg("g"))
	assert.Equal(t, -4.0, m.OffsetY())
}

func TestOverscrollSettlesBack(t *testing.T) {
	m, rec := newSized(t, Options{Rows: 30, Overscroll: 2, SettleInterval: time.Millisecond}, 4, 10)

	m, cmd := m.Update(keyMsg("up"))
	require.NotNil(t, cmd)
	assert.True(t, m.Settling())
	assert.Equal(t, -5.0, m.OffsetY())

	// already settling, no second tick chain
	m, cmd = m.Update(keyMsg("up"))
	assert.Nil(t, cmd)
	assert.Equal(t, -6.0, m.OffsetY())

	// overscroll limit
	m, _ = m.Update(keyMsg("up"))
	assert.Equal(t, -6.0, m.OffsetY())

	m, cmd = m.Update(settleMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, -5.0, m.OffsetY())

	m, cmd = m.Update(settleMsg{})
	assert.Nil(t, cmd)
	assert.False(t, m.Settling())
	assert.Equal(t, -4.0, m.OffsetY())
	assert.Equal(t, -4.0, rec.last().OffsetY)
}

func TestOverscrollAtBottom(t *testing.T) {
	m, _ := newSized(t, Options{Rows: 30, Overscroll: 1}, 4, 10)
	m, _ = m.Update(keyMsg("G"))

	m, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.NotNil(t, cmd)
	assert.Equal(t, 21.0, m.OffsetY())

	m, _ = m.Update(settleMsg{})
	assert.Equal(t, 20.0, m.OffsetY())
	assert.False(t, m.Settling())
}

func TestNoOverscroll(t *testing.T) {
	m, rec := newSized(t, Options{Rows: 30}, 4, 10)
	before := len(rec.events)

	m, cmd := m.Update(keyMsg("up"))
	assert.Nil(t, cmd)
	assert.Equal(t, -4.0, m.OffsetY())
	assert.Len(t, rec.events, before)
}

func TestMouseWheel(t *testing.T) {
	m, _ := newSized(t, Options{Rows: 30}, 4, 10)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, -3.0, m.OffsetY())

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, -3.0, m.OffsetY())

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, -4.0, m.OffsetY())
}

func TestReset(t *testing.T) {
	m, rec := newSized(t, Options{Rows: 30}, 4, 10)
	m, _ = m.Update(keyMsg("G"))

	m, _ = m.Update(keyMsg("r"))
	assert.Equal(t, -4.0, m.OffsetY())
	assert.Equal(t, -4.0, rec.last().OffsetY)
}

func TestShortListCannotScrollPastInset(t *testing.T) {
	m, _ := newSized(t, Options{Rows: 3}, 4, 10)

	m, _ = m.Update(keyMsg("G"))
	assert.Equal(t, -4.0, m.OffsetY())
}

func TestResizeClampsOffset(t *testing.T) {
	m, rec := newSized(t, Options{Rows: 30}, 4, 10)
	m, _ = m.Update(keyMsg("G"))
	require.Equal(t, 20.0, m.OffsetY())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 25})
	assert.Equal(t, 5.0, m.OffsetY())
	assert.Equal(t, 5.0, rec.last().OffsetY)
}

func TestViewRendersInsetThenRows(t *testing.T) {
	m, _ := newSized(t, Options{Rows: 100}, 4, 8)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 8)
	for _, l := range lines[:4] {
		assert.Empty(t, strings.TrimSpace(l))
	}
	assert.Equal(t, "0", strings.TrimSpace(lines[4]))
	assert.Equal(t, "3", strings.TrimSpace(lines[7]))

	for i := 0; i < 6; i++ {
		m, _ = m.Update(keyMsg("down"))
	}
	lines = strings.Split(m.View(), "\n")
	assert.Equal(t, "2", strings.TrimSpace(lines[0]))
	assert.Equal(t, "9", strings.TrimSpace(lines[7]))
}

func TestSettleStep(t *testing.T) {
	assert.Equal(t, -4.0, settleStep(-4.5, -4, 10))
	assert.Equal(t, -5.0, settleStep(-6, -4, 10))
	assert.Equal(t, 11.0, settleStep(12, -4, 10))
	assert.Equal(t, 3.0, settleStep(3, -4, 10))
}
