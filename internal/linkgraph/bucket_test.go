package linkgraph

import (
	"testing"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// TestVariabilityOf verifies bucket boundaries and the Unknown fallback
func TestVariabilityOf(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.Variability
	}{
		{"missing", "", models.VariabilityUnknown},
		{"whitespace", "   ", models.VariabilityUnknown},
		{"non-numeric", "lots", models.VariabilityUnknown},
		{"zero", "0", models.Variability1to3},
		{"upper bound 1-3", "3", models.Variability1to3},
		{"lower bound 4-5", "4", models.Variability4to5},
		{"upper bound 4-5", "5", models.Variability4to5},
		{"lower bound 6-8", "6", models.Variability6to8},
		{"upper bound 6-8", "8", models.Variability6to8},
		{"lower bound 8+", "9", models.Variability8Plus},
		{"large", "1200", models.Variability8Plus},
		{"float formatted", "7.0", models.Variability6to8},
		{"float with padding", " 2.0 ", models.Variability1to3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VariabilityOf(tt.raw); got != tt.want {
				t.Errorf("VariabilityOf(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// TestCoerceCount verifies the shared count coercion used by search
func TestCoerceCount(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"12", 12, true},
		{"12.0", 12, true},
		{"", 0, false},
		{"n/a", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := coerceCount(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("coerceCount(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
