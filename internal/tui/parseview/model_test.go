package parseview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/langext/core/log"
	"github.com/msto63/langext/utils/parsex"
)

func newTestModel() Model {
	return New(parsex.New(
		parsex.WithReference(time.Date(1985, time.December, 3, 0, 0, 0, 0, time.UTC)),
		parsex.WithLocation(time.UTC),
		parsex.WithUTCOffset(0),
		parsex.WithLogger(log.Discard()),
	))
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func TestTypingReparses(t *testing.T) {
	m := typeText(newTestModel(), "8.5")

	assert.Equal(t, []int64{8, 5}, m.Tokens())
	view := m.View()
	assert.Contains(t, view, "8/5/1985")
	assert.Contains(t, view, "08:05:00.000")
	assert.Contains(t, view, "+00:00")
}

func TestInvalidInputIsShown(t *testing.T) {
	m := typeText(newTestModel(), "25:61")
	assert.Contains(t, m.View(), "ungültig: hour out of range")
}

func TestSubmitAndClear(t *testing.T) {
	m := typeText(newTestModel(), "1pm")
	m, _ = press(m, tea.KeyEnter)

	require.Len(t, m.History(), 1)
	assert.True(t, strings.HasPrefix(m.History()[0], "1pm → "))
	assert.Contains(t, m.History()[0], "13:00:00.000")
	assert.Empty(t, m.Tokens(), "input is cleared after submit")

	m, _ = press(m, tea.KeyEnter)
	assert.Len(t, m.History(), 1, "blank input is not submitted")

	for i := 0; i < maxHistory+3; i++ {
		m = typeText(m, "1")
		m, _ = press(m, tea.KeyEnter)
	}
	assert.Len(t, m.History(), maxHistory)

	m, _ = press(m, tea.KeyCtrlL)
	assert.Empty(t, m.History())
}

func TestQuit(t *testing.T) {
	_, cmd := press(newTestModel(), tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowResize(t *testing.T) {
	next, _ := newTestModel().Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m := next.(Model)
	assert.Equal(t, 92, m.input.Width)
}
