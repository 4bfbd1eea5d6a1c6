package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/CaVaRT/internal-linking-dashboard/internal/loader"
	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// DefaultReportFilename returns the timestamped default name for a
// missing-anchor report, scoped to the subdomain when one is selected.
func DefaultReportFilename(subdomain string) string {
	timestamp := time.Now().Format("2006-01-02")
	if subdomain == "" || subdomain == models.AllSubdomains {
		return fmt.Sprintf("missing-anchors-%s.csv", timestamp)
	}
	return fmt.Sprintf("missing-anchors-%s-%s.csv", subdomain, timestamp)
}

// ExportMissingAnchors writes the missing-anchor rows to a CSV file and
// returns the filename written.
func ExportMissingAnchors(rows []models.ExpandedAnchorRecord, filename string) (string, error) {
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := loader.WriteMissingAnchorCSV(f, rows); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return filename, nil
}
