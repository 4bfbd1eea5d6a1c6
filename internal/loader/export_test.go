package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// TestWriteMissingAnchorCSV verifies the report columns and quoting
func TestWriteMissingAnchorCSV(t *testing.T) {
	rows := []models.ExpandedAnchorRecord{
		{TargetURL: "https://shop.example.com/a/b/", FoundAt: "https://example.com/p2", AnchorText: ""},
		{TargetURL: "https://example.com/with,comma/", FoundAt: "https://example.com/p3", AnchorText: ""},
	}

	var buf bytes.Buffer
	if err := WriteMissingAnchorCSV(&buf, rows); err != nil {
		t.Fatalf("WriteMissingAnchorCSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("wrote %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "target_url,found_at,anchor_text" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "https://shop.example.com/a/b/,https://example.com/p2," {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], `"https://example.com/with,comma/"`) {
		t.Errorf("row 2 not quoted: %q", lines[2])
	}
}

// TestWriteMissingAnchorCSVEmpty verifies an empty report still writes a header
func TestWriteMissingAnchorCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMissingAnchorCSV(&buf, nil); err != nil {
		t.Fatalf("WriteMissingAnchorCSV() failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "target_url,found_at,anchor_text" {
		t.Errorf("output = %q, want header only", buf.String())
	}
}
