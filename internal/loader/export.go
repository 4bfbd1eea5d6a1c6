package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// WriteMissingAnchorCSV writes the missing-anchor-text report. The
// simple three-column form matches the expanded-row report policy: one
// row per anchor occurrence whose anchor text is empty.
func WriteMissingAnchorCSV(w io.Writer, rows []models.ExpandedAnchorRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{ColTargetURL, ColFoundAt, "anchor_text"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.TargetURL, row.FoundAt, row.AnchorText}); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", row.TargetURL, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}
