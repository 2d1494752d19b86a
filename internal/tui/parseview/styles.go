// ============================================================================
// langext - Language Extensions
// ============================================================================
//
// Package:     parseview
// Description: Styles for the ParseView TUI
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package parseview

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - same as the other TUI components
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Result panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Width(8)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	InvalidStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	HistoryStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
