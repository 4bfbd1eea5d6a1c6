package ui

import (
	"fmt"
	"strings"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				MarginBottom(1)

	reportSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	reportHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	reportBorderStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	reportStatStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// PrintSessionHeader prints a styled header for the report.
func PrintSessionHeader(sourceName, subdomain string, summary models.SessionSummary) {
	fmt.Println()
	fmt.Println(reportTitleStyle.Render(fmt.Sprintf("Internal Link Report: %s", sourceName)))
	fmt.Println(reportSubtitleStyle.Render(fmt.Sprintf(
		"Scope: %s | Rows: %s | Unique URLs: %s | Anchor rows: %s",
		subdomain,
		reportStatStyle.Render(fmt.Sprintf("%d", summary.LinkRows)),
		reportStatStyle.Render(fmt.Sprintf("%d", summary.UniqueURLs)),
		reportStatStyle.Render(fmt.Sprintf("%d", summary.AnchorRows)),
	)))
	fmt.Println()
}

// PrintHistogram prints the variability histogram with inline bars.
//
// This is a CLI report (non-interactive), so lipgloss is used only for
// coloring; the table structure is built with string formatting.
func PrintHistogram(hist []models.BucketCount) {
	fmt.Println(reportTitleStyle.Render("Anchor Variability"))

	total := 0
	maxCount := 0
	for _, b := range hist {
		total += b.Count
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	for _, b := range hist {
		share := 0.0
		if total > 0 {
			share = float64(b.Count) / float64(total) * 100
		}
		line := fmt.Sprintf("  %-8s %6d  %5.1f%%  %s",
			b.Bucket, b.Count, share, histogramBar(b.Count, maxCount))
		fmt.Println(NormalStyle.Render(line))
	}
	fmt.Println()
}

// PrintComponentTable prints a path-component breakdown for one bucket.
func PrintComponentTable(title string, stats []models.ComponentStat, total int) {
	if len(stats) == 0 {
		fmt.Println(reportSubtitleStyle.Render(title + ": no data"))
		fmt.Println()
		return
	}

	fmt.Println(reportTitleStyle.Render(fmt.Sprintf("%s (%d rows)", title, total)))

	colWidths := []int{40, 8, 8}
	totalWidth := 2
	for _, w := range colWidths {
		totalWidth += w + 3
	}
	totalWidth -= 1

	separator := strings.Repeat("─", totalWidth-2)

	fmt.Println(reportBorderStyle.Render("┌" + separator + "┐"))

	headerRow := fmt.Sprintf("│ %-*s │ %-*s │ %-*s │",
		colWidths[0], "Path Component",
		colWidths[1], "Rows",
		colWidths[2], "%")
	fmt.Println(reportHeaderStyle.Render(headerRow))

	fmt.Println(reportBorderStyle.Render("├" + separator + "┤"))

	for _, s := range stats {
		component := s.Component
		if len(component) > colWidths[0] {
			component = component[:colWidths[0]-3] + "..."
		}
		rowText := fmt.Sprintf("│ %-*s │ %-*d │ %-*s │",
			colWidths[0], component,
			colWidths[1], s.Count,
			colWidths[2], fmt.Sprintf("%.2f%%", s.Percentage))
		fmt.Println(NormalStyle.Render(rowText))
	}

	fmt.Println(reportBorderStyle.Render("└" + separator + "┘"))
	fmt.Println()
}

// PrintMissingSummary prints the missing-anchor count for the scope.
func PrintMissingSummary(count int) {
	if count == 0 {
		fmt.Println(reportSubtitleStyle.Render("No links with missing anchor text."))
	} else {
		fmt.Println(WarnStyle.Render(fmt.Sprintf("%d links with missing anchor text.", count)))
	}
	fmt.Println()
}

// PrintSuccess prints a success message.
func PrintSuccess(message string) {
	successStyle := lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	fmt.Println(successStyle.Render(message))
}

// PrintError prints an error message.
func PrintError(message string) {
	fmt.Println(ErrorStyle.Render("Error: " + message))
}
