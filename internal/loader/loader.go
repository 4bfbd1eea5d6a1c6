package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// Column names of the input file. target_url, anchor_texts and found_at
// are required; the count columns are optional and coerce to sentinel
// values downstream when absent.
const (
	ColTargetURL         = "target_url"
	ColAnchorTexts       = "anchor_texts"
	ColUniqueAnchorCount = "unique_anchor_text_count"
	ColTotalInlinks      = "total_inlinks"
	ColFoundAt           = "found_at"
)

var requiredColumns = []string{ColTargetURL, ColAnchorTexts, ColFoundAt}

type sourceKind int

const (
	sourcePath sourceKind = iota
	sourceReader
	sourceRecords
)

// Source selects where link records come from: a file on disk, an
// already-open reader, or records that are already in memory. Dispatch
// is explicit; there is no duck typing on the input value.
type Source struct {
	kind    sourceKind
	path    string
	reader  io.Reader
	records []models.RawLinkRecord
}

// FromPath loads records from a CSV file on disk.
func FromPath(path string) Source {
	return Source{kind: sourcePath, path: path}
}

// FromReader loads records from an open CSV stream.
func FromReader(r io.Reader) Source {
	return Source{kind: sourceReader, reader: r}
}

// FromRecords wraps records that are already in memory.
func FromRecords(records []models.RawLinkRecord) Source {
	return Source{kind: sourceRecords, records: records}
}

// Load reads raw link records from the source. A missing required
// column or an unreadable input is a fatal load error: callers must
// halt rather than operate on a partial table. The logger may be nil.
func Load(src Source, logger *log.Logger) ([]models.RawLinkRecord, error) {
	switch src.kind {
	case sourcePath:
		f, err := os.Open(src.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		return parseCSV(f, logger)

	case sourceReader:
		return parseCSV(src.reader, logger)

	case sourceRecords:
		out := make([]models.RawLinkRecord, len(src.records))
		copy(out, src.records)
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported input source")
	}
}

func parseCSV(r io.Reader, logger *log.Logger) ([]models.RawLinkRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("input file is missing required columns: %s", strings.Join(missing, ", "))
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []models.RawLinkRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+2, err)
		}
		records = append(records, models.RawLinkRecord{
			TargetURL:            field(row, ColTargetURL),
			AnchorTexts:          field(row, ColAnchorTexts),
			UniqueAnchorCountRaw: field(row, ColUniqueAnchorCount),
			TotalInlinksRaw:      field(row, ColTotalInlinks),
			FoundAt:              field(row, ColFoundAt),
		})
	}

	if logger != nil {
		logger.Info("loaded link records", "rows", len(records))
	}

	return records, nil
}
