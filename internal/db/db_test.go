package db

import (
	"testing"

	"github.com/CaVaRT/internal-linking-dashboard/internal/linkgraph"
	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

func sessionFixture(t *testing.T) *DB {
	t.Helper()

	raws := []models.RawLinkRecord{
		{
			TargetURL:            "https://shop.example.com/products/widget/",
			AnchorTexts:          "Buy Now; ",
			UniqueAnchorCountRaw: "2",
			TotalInlinksRaw:      "7",
			FoundAt:              "https://example.com/p1/; https://example.com/p2/",
		},
		{
			TargetURL:            "https://shop.example.com/products/gadget/",
			AnchorTexts:          "Gadget; Best Gadget; Gadget",
			UniqueAnchorCountRaw: "4",
			TotalInlinksRaw:      "12",
			FoundAt:              "https://example.com/p1/; https://example.com/p3/; https://example.com/p4/",
		},
		{
			// Duplicate target URL with a different bucket: the histogram
			// must count it once, keeping the first occurrence's bucket.
			TargetURL:            "https://shop.example.com/products/widget/",
			AnchorTexts:          "Widget",
			UniqueAnchorCountRaw: "6",
			TotalInlinksRaw:      "3",
			FoundAt:              "https://example.com/p5/",
		},
		{
			TargetURL:            "https://blog.example.com/guides/seo/",
			AnchorTexts:          "SEO Guide",
			UniqueAnchorCountRaw: "9",
			TotalInlinksRaw:      "20",
			FoundAt:              "https://example.com/p6/",
		},
		{
			TargetURL:            "https://blog.example.com/",
			AnchorTexts:          "Home",
			UniqueAnchorCountRaw: "",
			TotalInlinksRaw:      "",
			FoundAt:              "https://example.com/p7/",
		},
	}

	links := linkgraph.Prepare(raws)
	anchors := linkgraph.ExpandAll(links)

	database, err := BuildSession(links, anchors)
	if err != nil {
		t.Fatalf("BuildSession failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestVariabilityHistogram(t *testing.T) {
	database := sessionFixture(t)

	hist, err := database.VariabilityHistogram(models.AllSubdomains)
	if err != nil {
		t.Fatalf("VariabilityHistogram failed: %v", err)
	}

	want := map[models.Variability]int{
		models.Variability1to3:    1, // widget counted once, first occurrence's bucket
		models.Variability4to5:    1,
		models.Variability6to8:    0,
		models.Variability8Plus:   1,
		models.VariabilityUnknown: 1,
	}
	if len(hist) != 5 {
		t.Fatalf("expected 5 buckets (fixed order plus Unknown), got %d: %v", len(hist), hist)
	}
	for i, bucket := range models.VariabilityOrder {
		if hist[i].Bucket != bucket {
			t.Errorf("position %d: expected bucket %q, got %q", i, bucket, hist[i].Bucket)
		}
		if hist[i].Count != want[bucket] {
			t.Errorf("bucket %q: expected count %d, got %d", bucket, want[bucket], hist[i].Count)
		}
	}
	if hist[4].Bucket != models.VariabilityUnknown || hist[4].Count != 1 {
		t.Errorf("expected trailing Unknown bucket with count 1, got %v", hist[4])
	}
}

func TestVariabilityHistogramSubdomainFilter(t *testing.T) {
	database := sessionFixture(t)

	hist, err := database.VariabilityHistogram("blog")
	if err != nil {
		t.Fatalf("VariabilityHistogram failed: %v", err)
	}

	var total int
	for _, b := range hist {
		total += b.Count
	}
	if total != 2 {
		t.Errorf("expected 2 unique blog URLs, got %d: %v", total, hist)
	}
	for _, b := range hist {
		if b.Bucket == models.Variability8Plus && b.Count != 1 {
			t.Errorf("expected one 8+ URL in blog, got %d", b.Count)
		}
	}
}

func TestVariabilityHistogramOmitsUnknownWhenAbsent(t *testing.T) {
	database := sessionFixture(t)

	hist, err := database.VariabilityHistogram("shop")
	if err != nil {
		t.Fatalf("VariabilityHistogram failed: %v", err)
	}
	if len(hist) != len(models.VariabilityOrder) {
		t.Fatalf("expected only the fixed buckets, got %v", hist)
	}
}

func TestComponent1Breakdown(t *testing.T) {
	database := sessionFixture(t)

	stats, total, err := database.Component1Breakdown(models.AllSubdomains, string(models.Variability1to3))
	if err != nil {
		t.Fatalf("Component1Breakdown failed: %v", err)
	}

	// Breakdowns are over rows, not unique URLs: only the first widget
	// row lands in 1-3 (the duplicate is 6-8, the blog home Unknown).
	if total != 1 {
		t.Fatalf("expected 1 row in bucket 1-3, got %d", total)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 component, got %v", stats)
	}
	if stats[0].Component != "/products/" {
		t.Errorf("expected /products/, got %q", stats[0].Component)
	}
	if stats[0].Percentage != 100 {
		t.Errorf("expected 100%%, got %v", stats[0].Percentage)
	}
}

func TestComponentBreakdownDenominators(t *testing.T) {
	// The root-path row has no components: it belongs to component_1's
	// denominator but not component_2's.
	raws := []models.RawLinkRecord{
		{TargetURL: "https://blog.example.com/", AnchorTexts: "Home", UniqueAnchorCountRaw: "2", FoundAt: "https://example.com/a/"},
		{TargetURL: "https://blog.example.com/guides/seo/", AnchorTexts: "SEO", UniqueAnchorCountRaw: "3", FoundAt: "https://example.com/b/"},
		{TargetURL: "https://blog.example.com/guides/links/", AnchorTexts: "Links", UniqueAnchorCountRaw: "1", FoundAt: "https://example.com/c/"},
		{TargetURL: "https://blog.example.com/news/", AnchorTexts: "News", UniqueAnchorCountRaw: "2", FoundAt: "https://example.com/d/"},
	}
	links := linkgraph.Prepare(raws)
	database, err := BuildSession(links, linkgraph.ExpandAll(links))
	if err != nil {
		t.Fatalf("BuildSession failed: %v", err)
	}
	defer database.Close()

	stats1, total1, err := database.Component1Breakdown(models.AllSubdomains, string(models.Variability1to3))
	if err != nil {
		t.Fatalf("Component1Breakdown failed: %v", err)
	}
	if total1 != 4 {
		t.Fatalf("component_1 denominator should include the rootless row, got %d", total1)
	}
	if len(stats1) != 2 {
		t.Fatalf("expected 2 first components, got %v", stats1)
	}
	if stats1[0].Component != "/guides/" || stats1[0].Count != 2 || stats1[0].Percentage != 50 {
		t.Errorf("expected /guides/ 2 rows 50%%, got %+v", stats1[0])
	}
	if stats1[1].Component != "/news/" || stats1[1].Percentage != 25 {
		t.Errorf("expected /news/ 25%%, got %+v", stats1[1])
	}

	stats2, total2, err := database.Component2Breakdown(models.AllSubdomains, string(models.Variability1to3))
	if err != nil {
		t.Fatalf("Component2Breakdown failed: %v", err)
	}
	if total2 != 2 {
		t.Fatalf("component_2 denominator should exclude rows without one, got %d", total2)
	}
	for _, s := range stats2 {
		if s.Percentage != 50 {
			t.Errorf("expected 50%% for %q, got %v", s.Component, s.Percentage)
		}
	}
}

func TestComponentBreakdownOrdering(t *testing.T) {
	raws := []models.RawLinkRecord{
		{TargetURL: "https://www.example.com/b/x/", AnchorTexts: "a", UniqueAnchorCountRaw: "1", FoundAt: "https://example.com/1/"},
		{TargetURL: "https://www.example.com/a/y/", AnchorTexts: "a", UniqueAnchorCountRaw: "1", FoundAt: "https://example.com/2/"},
		{TargetURL: "https://www.example.com/b/z/", AnchorTexts: "a", UniqueAnchorCountRaw: "1", FoundAt: "https://example.com/3/"},
	}
	links := linkgraph.Prepare(raws)
	database, err := BuildSession(links, linkgraph.ExpandAll(links))
	if err != nil {
		t.Fatalf("BuildSession failed: %v", err)
	}
	defer database.Close()

	stats, _, err := database.Component1Breakdown(models.AllSubdomains, string(models.Variability1to3))
	if err != nil {
		t.Fatalf("Component1Breakdown failed: %v", err)
	}
	if len(stats) != 2 || stats[0].Component != "/b/" || stats[1].Component != "/a/" {
		t.Errorf("expected count-desc then name-asc ordering, got %v", stats)
	}
}

func TestSearchAnchorsSubstring(t *testing.T) {
	database := sessionFixture(t)

	rows, err := database.SearchAnchors(models.SearchFilter{
		Subdomain:        models.AllSubdomains,
		Substring:        "WIDGET",
		MinUniqueAnchors: models.NoThreshold,
	})
	if err != nil {
		t.Fatalf("SearchAnchors failed: %v", err)
	}
	// widget has two link rows: one with 2 anchors, one with 1.
	if len(rows) != 3 {
		t.Fatalf("expected 3 widget anchor rows (case-insensitive), got %d", len(rows))
	}

	rows, err = database.SearchAnchors(models.SearchFilter{
		Subdomain:        models.AllSubdomains,
		Substring:        "WIDGET",
		CaseSensitive:    true,
		MinUniqueAnchors: models.NoThreshold,
	})
	if err != nil {
		t.Fatalf("SearchAnchors failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no case-sensitive matches for WIDGET, got %d", len(rows))
	}
}

func TestSearchAnchorsThreshold(t *testing.T) {
	database := sessionFixture(t)

	rows, err := database.SearchAnchors(models.SearchFilter{
		Subdomain:        models.AllSubdomains,
		Substring:        "widget",
		MinUniqueAnchors: 1,
	})
	if err != nil {
		t.Fatalf("SearchAnchors failed: %v", err)
	}
	// Strictly greater: the count-2 row survives, the count-6 row too,
	// count-1 rows would not. Both widget link rows have count > 1.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows above threshold 1, got %d", len(rows))
	}

	rows, err = database.SearchAnchors(models.SearchFilter{
		Subdomain:        models.AllSubdomains,
		Substring:        "widget",
		MinUniqueAnchors: 5,
	})
	if err != nil {
		t.Fatalf("SearchAnchors failed: %v", err)
	}
	for _, r := range rows {
		if r.UniqueAnchorCount <= 5 {
			t.Errorf("row %q with count %d should have been filtered", r.TargetURL, r.UniqueAnchorCount)
		}
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the count-6 row above threshold 5, got %d", len(rows))
	}
}

func TestSearchAnchorsEmptySubstringMatchesAll(t *testing.T) {
	database := sessionFixture(t)

	rows, err := database.SearchAnchors(models.SearchFilter{
		Subdomain:        "shop",
		MinUniqueAnchors: models.NoThreshold,
	})
	if err != nil {
		t.Fatalf("SearchAnchors failed: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected all 6 shop anchor rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Subdomain != "shop" {
			t.Errorf("unexpected subdomain %q in filtered results", r.Subdomain)
		}
	}
}

func TestMissingAnchors(t *testing.T) {
	database := sessionFixture(t)

	rows, err := database.MissingAnchors(models.AllSubdomains)
	if err != nil {
		t.Fatalf("MissingAnchors failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 missing-anchor row, got %d", len(rows))
	}
	r := rows[0]
	if r.TargetURL != "https://shop.example.com/products/widget/" {
		t.Errorf("unexpected target URL %q", r.TargetURL)
	}
	if r.AnchorText != "" {
		t.Errorf("missing-anchor row must have empty anchor, got %q", r.AnchorText)
	}
	if r.FoundAt != "https://example.com/p2/" {
		t.Errorf("expected the aligned second found-at page, got %q", r.FoundAt)
	}

	rows, err = database.MissingAnchors("blog")
	if err != nil {
		t.Fatalf("MissingAnchors failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no missing anchors under blog, got %d", len(rows))
	}
}

func TestSubdomains(t *testing.T) {
	database := sessionFixture(t)

	subs, err := database.Subdomains()
	if err != nil {
		t.Fatalf("Subdomains failed: %v", err)
	}
	if len(subs) != 2 || subs[0] != "blog" || subs[1] != "shop" {
		t.Errorf("expected sorted [blog shop], got %v", subs)
	}
}

func TestSummary(t *testing.T) {
	database := sessionFixture(t)

	summary, err := database.Summary(models.AllSubdomains)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.LinkRows != 5 {
		t.Errorf("expected 5 link rows, got %d", summary.LinkRows)
	}
	if summary.UniqueURLs != 4 {
		t.Errorf("expected 4 unique URLs, got %d", summary.UniqueURLs)
	}
	if summary.AnchorRows != 8 {
		t.Errorf("expected 8 anchor rows, got %d", summary.AnchorRows)
	}

	summary, err = database.Summary("shop")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.LinkRows != 3 || summary.UniqueURLs != 2 {
		t.Errorf("unexpected shop summary %+v", summary)
	}
}
