package linkgraph

import (
	"reflect"
	"testing"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// TestPrepareWorkedExample walks the canonical row through preparation
func TestPrepareWorkedExample(t *testing.T) {
	raws := []models.RawLinkRecord{{
		TargetURL:            "https://shop.example.com/a/b/",
		AnchorTexts:          "Buy Now; ",
		UniqueAnchorCountRaw: "2",
		FoundAt:              "https://example.com/p1;https://example.com/p2",
	}}

	recs := Prepare(raws)
	if len(recs) != 1 {
		t.Fatalf("Prepare() returned %d records, want 1", len(recs))
	}

	rec := recs[0]
	if rec.Subdomain != "shop" {
		t.Errorf("subdomain = %q, want \"shop\"", rec.Subdomain)
	}
	if rec.RootDomain != "example.com" {
		t.Errorf("root domain = %q, want \"example.com\"", rec.RootDomain)
	}
	if rec.Variability != models.Variability1to3 {
		t.Errorf("variability = %q, want \"1-3\"", rec.Variability)
	}
	if rec.Component1 != "/a/" || rec.Component2 != "/b/" {
		t.Errorf("components = (%q, %q), want (\"/a/\", \"/b/\")", rec.Component1, rec.Component2)
	}
	if rec.UniqueAnchorCount != 2 {
		t.Errorf("unique anchor count = %d, want 2", rec.UniqueAnchorCount)
	}
}

// TestPrepareSentinels verifies malformed rows are kept, not dropped
func TestPrepareSentinels(t *testing.T) {
	recs := Prepare([]models.RawLinkRecord{{
		TargetURL:            "https://exa mple.com/%zz",
		AnchorTexts:          "Home",
		UniqueAnchorCountRaw: "n/a",
		FoundAt:              "",
	}})

	rec := recs[0]
	if rec.Subdomain != "unknown" {
		t.Errorf("subdomain = %q, want \"unknown\"", rec.Subdomain)
	}
	if rec.Variability != models.VariabilityUnknown {
		t.Errorf("variability = %q, want Unknown", rec.Variability)
	}
	if rec.Component1 != "" || rec.Component2 != "" {
		t.Errorf("components = (%q, %q), want both empty", rec.Component1, rec.Component2)
	}
	if rec.UniqueAnchorCount != 0 {
		t.Errorf("unique anchor count = %d, want 0 for invalid raw value", rec.UniqueAnchorCount)
	}
}

// TestPrepareDeterministic verifies derived fields are pure functions of
// the raw fields
func TestPrepareDeterministic(t *testing.T) {
	raws := []models.RawLinkRecord{
		{TargetURL: "https://shop.example.com/a/b/", AnchorTexts: "Buy", UniqueAnchorCountRaw: "4", FoundAt: "p1"},
		{TargetURL: "https://example.com/", AnchorTexts: "", UniqueAnchorCountRaw: "", FoundAt: ""},
	}

	first := Prepare(raws)
	second := Prepare(raws)
	if !reflect.DeepEqual(first, second) {
		t.Error("Prepare() is not deterministic for identical input")
	}
}
