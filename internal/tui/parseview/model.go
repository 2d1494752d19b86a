// ============================================================================
// langext - Language Extensions
// ============================================================================
//
// Package:     parseview
// Description: Bubbletea model that parses typed text live as date and time
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package parseview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/langext/utils/parsex"
	"github.com/msto63/langext/utils/stringx"
)

// maxHistory is the number of submitted inputs kept on screen
const maxHistory = 8

// Model is the Bubbletea model for ParseView
type Model struct {
	// State
	width  int
	height int

	// Components
	input textinput.Model

	// Parse state
	parser  *parsex.Parser
	tokens  []int64
	date    parsex.Result[parsex.CalendarDate]
	time    parsex.Result[parsex.TimeOfDay]
	history []string
}

// New creates a ParseView model using parser
func New(parser *parsex.Parser) Model {
	ti := textinput.New()
	ti.Placeholder = "z.B. 6-15-84 oder 1:15pm"
	ti.Prompt = "› "
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()

	if parser == nil {
		parser = parsex.New()
	}

	m := Model{
		input:  ti,
		parser: parser,
	}
	m.reparse()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+l":
			m.input.SetValue("")
			m.history = nil
			m.reparse()
			return m, nil
		case "enter":
			m.submit()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 10)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

func (m *Model) reparse() {
	text := m.input.Value()
	m.tokens = parsex.ExtractNumbers(text)
	m.date = m.parser.Date(text)
	m.time = m.parser.Time(text)
}

func (m *Model) submit() {
	text := m.input.Value()
	if stringx.IsBlank(text) {
		return
	}

	line := fmt.Sprintf("%s → %s | %s", text, describe(m.date), describe(m.time))
	m.history = append([]string{line}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
	m.input.SetValue("")
	m.reparse()
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render("langext parse"))
	b.WriteString("  ")
	b.WriteString(SubHeaderStyle.Render(fmt.Sprintf("Referenz %s, Offset %s",
		parsex.NewCalendarDate(m.parser.Reference()), formatOffset(m.parser.Offset()))))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	rows := []string{
		row("Zahlen", ValueStyle.Render(fmt.Sprint(m.tokens))),
		row("Datum", styled(m.date)),
		row("Zeit", styled(m.time)),
	}
	b.WriteString(PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	if len(m.history) > 0 {
		b.WriteString("\n")
		for _, line := range m.history {
			b.WriteString("\n")
			b.WriteString(HistoryStyle.Render(line))
		}
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Enter übernehmen • Ctrl+L leeren • Esc beenden"))
	return b.String()
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value)
}

func styled[T fmt.Stringer](res parsex.Result[T]) string {
	if res.Valid() {
		return ValidStyle.Render(describe(res))
	}
	return InvalidStyle.Render(describe(res))
}

func describe[T fmt.Stringer](res parsex.Result[T]) string {
	if v, ok := res.Value(); ok {
		return v.String()
	}
	return "ungültig: " + res.Err().Error()
}

func formatOffset(d time.Duration) string {
	minutes := int(d.Minutes())
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// Tokens returns the numbers extracted from the current input
func (m Model) Tokens() []int64 {
	return m.tokens
}

// History returns the submitted lines, newest first
func (m Model) History() []string {
	return m.history
}
