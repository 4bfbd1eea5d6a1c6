package loader

import (
	"strings"
	"testing"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

const sampleCSV = `target_url,anchor_texts,unique_anchor_text_count,total_inlinks,found_at
https://shop.example.com/a/b/,Buy Now; ,2,10,https://example.com/p1;https://example.com/p2
https://blog.example.com/posts/,Read More,1,3,https://example.com/p3
`

// TestLoadFromReader verifies header-driven column mapping
func TestLoadFromReader(t *testing.T) {
	records, err := Load(FromReader(strings.NewReader(sampleCSV)), nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("loaded %d records, want 2", len(records))
	}

	first := records[0]
	if first.TargetURL != "https://shop.example.com/a/b/" {
		t.Errorf("target url = %q", first.TargetURL)
	}
	if first.AnchorTexts != "Buy Now; " {
		t.Errorf("anchor texts = %q, want raw field preserved", first.AnchorTexts)
	}
	if first.UniqueAnchorCountRaw != "2" || first.TotalInlinksRaw != "10" {
		t.Errorf("count fields = (%q, %q)", first.UniqueAnchorCountRaw, first.TotalInlinksRaw)
	}
}

// TestLoadColumnOrderIndependent verifies columns are matched by name
func TestLoadColumnOrderIndependent(t *testing.T) {
	shuffled := `found_at,target_url,anchor_texts
https://example.com/p1,https://shop.example.com/x/,Home
`
	records, err := Load(FromReader(strings.NewReader(shuffled)), nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if records[0].TargetURL != "https://shop.example.com/x/" {
		t.Errorf("target url = %q", records[0].TargetURL)
	}
	if records[0].FoundAt != "https://example.com/p1" {
		t.Errorf("found at = %q", records[0].FoundAt)
	}
	// Optional columns absent from the file come back empty
	if records[0].UniqueAnchorCountRaw != "" || records[0].TotalInlinksRaw != "" {
		t.Errorf("optional columns = (%q, %q), want empty",
			records[0].UniqueAnchorCountRaw, records[0].TotalInlinksRaw)
	}
}

// TestLoadMissingRequiredColumn verifies a fatal load error
func TestLoadMissingRequiredColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no target_url", "anchor_texts,found_at\nHome,https://example.com/p1\n"},
		{"no anchor_texts", "target_url,found_at\nhttps://example.com/,p1\n"},
		{"no found_at", "target_url,anchor_texts\nhttps://example.com/,Home\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(FromReader(strings.NewReader(tt.header)), nil)
			if err == nil {
				t.Fatal("Load() succeeded, want missing-column error")
			}
			if !strings.Contains(err.Error(), "missing required columns") {
				t.Errorf("error = %q, want missing-column message", err)
			}
		})
	}
}

// TestLoadEmptyInput verifies an empty stream is a fatal load error
func TestLoadEmptyInput(t *testing.T) {
	if _, err := Load(FromReader(strings.NewReader("")), nil); err == nil {
		t.Fatal("Load() succeeded on empty input, want error")
	}
}

// TestLoadUnreadablePath verifies a nonexistent file is a fatal load error
func TestLoadUnreadablePath(t *testing.T) {
	if _, err := Load(FromPath("testdata/does-not-exist.csv"), nil); err == nil {
		t.Fatal("Load() succeeded on nonexistent path, want error")
	}
}

// TestLoadFromRecords verifies the in-memory variant copies its input
func TestLoadFromRecords(t *testing.T) {
	in := []models.RawLinkRecord{{TargetURL: "https://example.com/", AnchorTexts: "Home", FoundAt: "p1"}}

	records, err := Load(FromRecords(in), nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 1 || records[0].TargetURL != in[0].TargetURL {
		t.Fatalf("records = %+v", records)
	}

	records[0].TargetURL = "mutated"
	if in[0].TargetURL != "https://example.com/" {
		t.Error("Load() aliased the caller's slice")
	}
}
