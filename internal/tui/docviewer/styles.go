// ============================================================================
// parsex - Parser Combinator Toolkit
// ============================================================================
//
// Package:     docviewer
// Description: Styles for the document viewer TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-08-21
// License:     MIT
// ============================================================================

package docviewer

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, matching the other msto63 TUI components
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorText       = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted  = lipgloss.Color("#94A3B8") // Slate 400
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted)

	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorBgSelected).
				Bold(false)
)
