// ============================================================================
// parsex - Parser Combinator Toolkit
// ============================================================================
//
// Package:     docviewer
// Description: Bubbletea model for interactively viewing a parsed document
// Author:      Mike Stoffels with Claude
// Created:     2026-08-21
// License:     MIT
// ============================================================================

package docviewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/parsex/pkg/csv"
)

// Config holds viewer configuration
type Config struct {
	// Title shown above the table, typically the file name
	Title string

	// UseHeader renders the first record as column titles
	UseHeader bool

	// MaxColumnWidth bounds the rendered width per column
	MaxColumnWidth int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Title:          "document",
		MaxColumnWidth: 32,
	}
}

// Model is the Bubbletea model for the document viewer
type Model struct {
	title  string
	table  table.Model
	width  int
	height int
	ready  bool
	rows   int
	cols   int
}

// New creates a viewer model for the given document
func New(doc csv.Document, cfg Config) Model {
	columns, rows := buildTable(doc, cfg)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = HeaderCellStyle
	styles.Selected = SelectedRowStyle
	t.SetStyles(styles)

	return Model{
		title: cfg.Title,
		table: t,
		rows:  len(rows),
		cols:  len(columns),
	}
}

// buildTable converts a document into bubbles table columns and rows
func buildTable(doc csv.Document, cfg Config) ([]table.Column, []table.Row) {
	if len(doc) == 0 {
		return nil, nil
	}

	arity := len(doc[0])
	widths := make([]int, arity)
	for _, rec := range doc {
		for i, field := range rec {
			if len(field) > widths[i] {
				widths[i] = len(field)
			}
		}
	}

	titles := make([]string, arity)
	body := doc
	if cfg.UseHeader {
		copy(titles, doc[0])
		body = doc[1:]
	} else {
		for i := range titles {
			titles[i] = fmt.Sprintf("col%d", i+1)
		}
	}

	columns := make([]table.Column, arity)
	for i, title := range titles {
		width := widths[i]
		if len(title) > width {
			width = len(title)
		}
		if cfg.MaxColumnWidth > 0 && width > cfg.MaxColumnWidth {
			width = cfg.MaxColumnWidth
		}
		if width < 3 {
			width = 3
		}
		columns[i] = table.Column{Title: title, Width: width}
	}

	rows := make([]table.Row, len(body))
	for i, rec := range body {
		rows[i] = table.Row(rec)
	}
	return columns, rows
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.table.SetHeight(maxInt(3, msg.Height-6))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := TitleStyle.Render("parsex: " + m.title)
	status := StatusStyle.Render(fmt.Sprintf(
		"%d rows, %d columns | up/down scroll, q quit", m.rows, m.cols))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		BorderStyle.Render(m.table.View()),
		status,
	)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
