package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants - single source of truth for all viewport dimensions
const (
	MinViewportWidth = 100
	MaxViewportWidth = 150
	DefaultWidth     = 110 // Used when terminal size is unknown
	DefaultHeight    = 32
	MinTableHeight   = 8
	MaxTableHeight   = 24
	// Rows consumed outside the table: borders, header, divider, footer box
	ChromeHeight = 10
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // clamped terminal height
	ContentWidth   int // ViewportWidth - border chars
	TableWidth     int // width available to table columns
	TableHeight    int // visible data rows
	InnerWidth     int // exact width for content inside borders
}

// NewLayout creates a Layout from the terminal size, clamping to sane bounds
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	height := terminalHeight
	if height <= 0 {
		height = DefaultHeight
	}
	return Layout{
		ViewportWidth:  width,
		ViewportHeight: height,
		ContentWidth:   width - 2, // minus border chars
		TableWidth:     width - 4, // minus border + padding
		TableHeight:    clamp(height-ChromeHeight, MinTableHeight, MaxTableHeight),
		InnerWidth:     width - 2,
	}
}

// DefaultLayout returns a layout using the default dimensions
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("39")  // blue
	ColorHighlight = lipgloss.Color("24")  // dark blue background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("86")  // cyan
	ColorWarn      = lipgloss.Color("220") // yellow
	ColorTextDim   = lipgloss.Color("241") // gray
	ColorError     = lipgloss.Color("196") // red
	ColorSuccess   = lipgloss.Color("82")  // green
)

// Common styles - reusable style definitions
var (
	// Border style for main viewport
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Selected row/item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Normal text style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Hint/help text style
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	// Accent style for highlighted text
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Dim style for subtitles and secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Warning style for missing-anchor counts
	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarn).
			Bold(true)

	// Tab styles
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true).
			Padding(0, 2)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Padding(0, 2)

	// Stats footer style
	StatsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)
)

// ApplyTableStyles configures a bubbles table for the app look.
// The built-in Selected style stays neutral; RenderTableWithSelection
// applies the visible highlight.
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(ColorAccent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(false)
	s.Selected = lipgloss.NewStyle()
	s.Cell = s.Cell.Foreground(ColorText)
	t.SetStyles(s)
}

// NewAppSpinner creates the standard spinner for blocking operations
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return s
}

// NewAppTheme creates a huh theme matching the app's style guide
// White text, blue highlights/selection
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Base = t.Focused.Base

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.UnselectedOption = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorBorder)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBorder)

	return t
}
