package models

// Variability buckets a target URL's distinct anchor-text count into a
// fixed set of ordered groups.
type Variability string

const (
	Variability1to3    Variability = "1-3"
	Variability4to5    Variability = "4-5"
	Variability6to8    Variability = "6-8"
	Variability8Plus   Variability = "8+"
	VariabilityUnknown Variability = "Unknown"
)

// VariabilityOrder is the fixed display order for histograms and
// selectors. Unknown is appended separately, and only when present.
var VariabilityOrder = []Variability{
	Variability1to3,
	Variability4to5,
	Variability6to8,
	Variability8Plus,
}

// AllSubdomains is the sentinel selector value meaning "no subdomain filter".
const AllSubdomains = "ALL"

// NoThreshold disables the minimum-unique-anchor-count filter in SearchFilter.
const NoThreshold = -1

// RawLinkRecord is one row of the input file, untouched. Count fields
// stay strings here: they may be empty or non-numeric and coercion
// happens during preparation.
type RawLinkRecord struct {
	TargetURL            string // destination page receiving inbound links
	AnchorTexts          string // ";"-joined anchor texts
	UniqueAnchorCountRaw string
	TotalInlinksRaw      string
	FoundAt              string // ";"-joined source pages, aligned to AnchorTexts by position
}

// LinkRecord is a raw row decorated with derived fields. Derived fields
// are pure functions of the raw fields and are computed exactly once.
type LinkRecord struct {
	TargetURL            string
	AnchorTexts          string
	UniqueAnchorCountRaw string
	TotalInlinksRaw      string
	FoundAt              string

	Subdomain         string      // first host label, "www", or "unknown"
	RootDomain        string      // registrable domain, display only
	Variability       Variability // bucketed UniqueAnchorCountRaw
	Component1        string      // first path segment as "/seg/", "" when absent
	Component2        string      // second path segment as "/seg/", "" when absent
	UniqueAnchorCount int         // coerced count, 0 when raw is missing/non-numeric
}

// ExpandedAnchorRecord is one row per individual anchor occurrence,
// produced by splitting a LinkRecord's delimited fields. Every expanded
// row traces back to exactly one LinkRecord; a record with zero parsed
// anchors still yields one row with an empty AnchorText.
type ExpandedAnchorRecord struct {
	TargetURL         string
	Subdomain         string
	RootDomain        string
	Variability       Variability
	Component1        string
	Component2        string
	UniqueAnchorCount int
	TotalInlinksRaw   string

	AnchorText string // single trimmed anchor, "" means missing
	FoundAt    string // single aligned source URL, "" when alignment ran short
}

// AnnotatedAnchorRecord attaches the occurrence count of the
// (TargetURL, AnchorText) pair within a result set.
type AnnotatedAnchorRecord struct {
	ExpandedAnchorRecord
	AnchorCount int
}

// BucketCount is one histogram bar: URLs per variability bucket.
type BucketCount struct {
	Bucket Variability
	Count  int
}

// ComponentStat is one row of a path-component breakdown.
type ComponentStat struct {
	Component  string
	Count      int
	Percentage float64 // rounded to 2 decimals
}

// SearchFilter holds the parameters for an expanded-record search.
type SearchFilter struct {
	Subdomain        string // "" or AllSubdomains = all subdomains
	Substring        string // matched against target_url; "" = match all
	CaseSensitive    bool
	MinUniqueAnchors int // keep rows with count strictly greater; NoThreshold = keep all
}

// SessionSummary holds row counts for the current loaded file.
type SessionSummary struct {
	LinkRows   int
	UniqueURLs int
	AnchorRows int
}
