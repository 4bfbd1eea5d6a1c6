package linkgraph

import (
	"strconv"
	"strings"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// VariabilityOf classifies a raw unique-anchor-count value into its
// bucket. Missing or non-numeric values map to Unknown; everything else
// is bucketed with inclusive upper bounds (3, 5, 8).
func VariabilityOf(raw string) models.Variability {
	n, ok := coerceCount(raw)
	if !ok {
		return models.VariabilityUnknown
	}
	switch {
	case n <= 3:
		return models.Variability1to3
	case n <= 5:
		return models.Variability4to5
	case n <= 8:
		return models.Variability6to8
	default:
		return models.Variability8Plus
	}
}

// coerceCount parses a count field that may arrive as an integer or a
// float-formatted integer ("7", "7.0"). Exports that pass through
// spreadsheet tools render counts as floats whenever the column has
// gaps, so both spellings must coerce to the same bucket.
func coerceCount(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
