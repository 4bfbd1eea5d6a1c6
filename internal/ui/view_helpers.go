package ui

// view_helpers.go provides common View() rendering helpers.
// Use these to build consistent two-box layouts across all TUI models.

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripEscapeCodes removes ANSI color sequences so a line can be
// restyled without embedded resets killing the background.
func stripEscapeCodes(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// StringWidth returns the display width of a string, ANSI-aware.
func StringWidth(s string) int {
	return lipgloss.Width(s)
}

// truncateToWidth cuts a plain string to the given display width.
func truncateToWidth(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

// RenderTitle renders a section title.
func RenderTitle(s string) string {
	return TitleStyle.Render(s)
}

// RenderDim renders secondary text.
func RenderDim(s string) string {
	return DimStyle.Render(s)
}

// RenderNormal renders body text.
func RenderNormal(s string) string {
	return NormalStyle.Render(s)
}

// RenderError renders an error line.
func RenderError(s string) string {
	return ErrorStyle.Render(s)
}

// RenderTabActive renders the active tab label.
func RenderTabActive(s string) string {
	return TabActiveStyle.Render(s)
}

// RenderTabInactive renders an inactive tab label.
func RenderTabInactive(s string) string {
	return TabInactiveStyle.Render(s)
}

// ViewHeader renders title + full-width divider + spacing.
// Use at the start of all View() content to ensure consistent headers.
func ViewHeader(title string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// ViewHeaderWithSubtitle renders title + subtitle + divider + spacing.
func ViewHeaderWithSubtitle(title, subtitle string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	if subtitle != "" {
		b.WriteString(RenderDim(subtitle))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("─", innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// CenterText centers text within given width, ANSI-aware.
func CenterText(text string, width int) string {
	textW := StringWidth(text)
	if textW >= width {
		return text
	}
	padding := (width - textW) / 2
	return strings.Repeat(" ", padding) + text
}

// BuildTwoBoxView constructs the standard two-box layout: a bordered
// main content box over a one-row bordered help footer.
func BuildTwoBoxView(content, helpText string, layout Layout) string {
	mainBox := BorderStyle.
		Width(layout.ViewportWidth).
		Padding(0, 1).
		Render(content)

	footer := BorderStyle.
		Width(layout.ViewportWidth).
		Render(CenterText(HintStyle.Render(helpText), layout.InnerWidth))

	return mainBox + "\n" + footer
}

// TwoBoxView is an alias for BuildTwoBoxView for API consistency.
func TwoBoxView(content, helpText string, layout Layout) string {
	return BuildTwoBoxView(content, helpText, layout)
}

// FullWidthDivider returns a horizontal divider spanning the inner width.
func FullWidthDivider(innerWidth int) string {
	return strings.Repeat("─", innerWidth)
}

// RenderTableWithSelection renders a bubbles table with full-width
// selection highlight. The table's Selected style must stay neutral
// (see ApplyTableStyles) and this function applies the visible styling.
//
// bubbles/table View() output: line 0 is the header row, lines 1+ are
// the visible data rows. The visible cursor position is recomputed here
// to match the table's internal viewport scrolling.
func RenderTableWithSelection(t table.Model, layout Layout) string {
	tableOutput := t.View()
	lines := strings.Split(tableOutput, "\n")
	var result []string

	cursor := t.Cursor()
	height := t.Height()
	totalRows := len(t.Rows())

	// Scroll offset: when the cursor moves past the visible area the
	// viewport follows, clamped so the last row stays at the bottom.
	start := 0
	if totalRows > height {
		if cursor >= height {
			start = cursor - height + 1
		}
		maxStart := totalRows - height
		if start > maxStart {
			start = maxStart
		}
	}

	visibleCursorIndex := cursor - start

	for i, line := range lines {
		if i == 0 {
			result = append(result, NormalStyle.Render(line))
			result = append(result, strings.Repeat("─", layout.InnerWidth))
			continue
		}

		dataRowIndex := i - 1
		if dataRowIndex == visibleCursorIndex {
			cleanLine := stripEscapeCodes(line)
			if StringWidth(cleanLine) < layout.InnerWidth {
				cleanLine = cleanLine + strings.Repeat(" ", layout.InnerWidth-StringWidth(cleanLine))
			} else if StringWidth(cleanLine) > layout.InnerWidth {
				cleanLine = truncateToWidth(cleanLine, layout.InnerWidth)
			}
			result = append(result, SelectedStyle.Render(cleanLine))
			continue
		}

		result = append(result, NormalStyle.Render(line))
	}

	return strings.Join(result, "\n")
}
