package ui

// columns.go provides generic column width calculation for bubbles/table.
// Use ColumnSpec and CalculateColumns() instead of duplicating
// percentage-based math.

import (
	"github.com/charmbracelet/bubbles/table"
)

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal
// width, FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // Minimum width (0 = no minimum)
	FixedWidth int // If > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // Relative ratio for flexible columns (0 = fixed-only)
}

// CalculateColumns computes column widths from specs. Flexible columns
// split remaining space by ratio after fixed columns are allocated.
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 50 {
		totalWidth = 50
	}

	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	remaining := totalWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// HistogramColumns returns column specs for the variability histogram.
func HistogramColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Anchor Variability", FlexRatio: 40, MinWidth: 20},
		{Title: "Unique URLs", FixedWidth: 14},
		{Title: "Share", FixedWidth: 10},
		{Title: "", FlexRatio: 60, MinWidth: 20}, // bar
	}
}

// ComponentColumns returns column specs for path-component breakdowns.
func ComponentColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Path Component", FlexRatio: 100, MinWidth: 25},
		{Title: "Rows", FixedWidth: 10},
		{Title: "%", FixedWidth: 10},
	}
}

// SearchColumns returns column specs for expanded anchor search results.
func SearchColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Target URL", FlexRatio: 45, MinWidth: 30},
		{Title: "Anchor Text", FlexRatio: 30, MinWidth: 15},
		{Title: "Found At", FlexRatio: 35, MinWidth: 20},
		{Title: "Uses", FixedWidth: 6},
		{Title: "Count", FixedWidth: 7},
	}
}

// MissingColumns returns column specs for the missing-anchor report.
func MissingColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Target URL", FlexRatio: 50, MinWidth: 30},
		{Title: "Found At", FlexRatio: 50, MinWidth: 25},
		{Title: "Bucket", FixedWidth: 10},
	}
}

// SingleColumnSpec returns a column spec for single-column selectors.
func SingleColumnSpec(title string) []ColumnSpec {
	return []ColumnSpec{
		{Title: title, FlexRatio: 100},
	}
}
