package ui

// base_model.go provides common TUI functionality for Bubble Tea models.

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// InitTable creates and configures a table with standard styling and
// dimensions. Use this instead of calling table.New() directly.
func InitTable(columns []table.Column, rows []table.Row, layout Layout) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)
	t.GotoTop()
	return t
}

// StandardInit returns the standard Init command for table models.
func StandardInit() tea.Cmd {
	return tea.WindowSize()
}

// HandleQuitKeys returns true and a Quit cmd for q/esc/ctrl+c keys.
func HandleQuitKeys(key string) (bool, tea.Cmd) {
	switch key {
	case "q", "esc", "ctrl+c":
		return true, tea.Quit
	}
	return false, nil
}

// HandleQuitKeysNoEsc returns true and a Quit cmd for q/ctrl+c keys.
// Use when esc has special meaning (e.g., leaving a drill-down view).
func HandleQuitKeysNoEsc(key string) (bool, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return true, tea.Quit
	}
	return false, nil
}
