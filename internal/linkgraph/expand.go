package linkgraph

import (
	"strings"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// Delimiters of the input file format. Both the anchor-text and the
// found-at fields are ";"-joined and aligned by position: the i-th
// found-at entry is the page where the i-th anchor text occurs. The
// semicolon is the canonical delimiter for this file format; splitting
// on anything else would silently mangle legitimate anchor text.
const (
	AnchorDelimiter  = ";"
	FoundAtDelimiter = ";"
)

// Expand splits a record's delimited anchor-text and found-at fields
// into one row per anchor occurrence. Anchor tokens are trimmed but an
// empty token survives as a missing-anchor slot, keeping the positional
// alignment with the found-at list intact; the found-at list pads with
// "" when it runs short. When every anchor token is empty the record
// has no anchors at all and exactly one row with an empty anchor text
// is emitted, so the URL never disappears from downstream reports.
func Expand(rec models.LinkRecord) []models.ExpandedAnchorRecord {
	anchors := splitAnchors(rec.AnchorTexts)
	foundAts := splitTrim(rec.FoundAt, FoundAtDelimiter)

	if len(anchors) == 0 {
		return []models.ExpandedAnchorRecord{newExpanded(rec, "", rec.FoundAt)}
	}

	out := make([]models.ExpandedAnchorRecord, 0, len(anchors))
	for i, anchor := range anchors {
		foundAt := ""
		if i < len(foundAts) {
			foundAt = foundAts[i]
		}
		out = append(out, newExpanded(rec, anchor, foundAt))
	}
	return out
}

// ExpandAll expands every record in input order. The output order is
// stable: all rows of record i precede all rows of record i+1.
func ExpandAll(recs []models.LinkRecord) []models.ExpandedAnchorRecord {
	var out []models.ExpandedAnchorRecord
	for _, rec := range recs {
		out = append(out, Expand(rec)...)
	}
	return out
}

func newExpanded(rec models.LinkRecord, anchorText, foundAt string) models.ExpandedAnchorRecord {
	return models.ExpandedAnchorRecord{
		TargetURL:         rec.TargetURL,
		Subdomain:         rec.Subdomain,
		RootDomain:        rec.RootDomain,
		Variability:       rec.Variability,
		Component1:        rec.Component1,
		Component2:        rec.Component2,
		UniqueAnchorCount: rec.UniqueAnchorCount,
		TotalInlinksRaw:   rec.TotalInlinksRaw,
		AnchorText:        anchorText,
		FoundAt:           foundAt,
	}
}

// splitAnchors splits the anchor-text field and trims each token.
// Empty tokens are kept so positional alignment holds, unless the whole
// list is empty after trimming, in which case nil is returned and the
// caller treats the record as having zero anchors.
func splitAnchors(s string) []string {
	tokens := strings.Split(s, AnchorDelimiter)
	allEmpty := true
	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
		if tokens[i] != "" {
			allEmpty = false
		}
	}
	if allEmpty {
		return nil
	}
	return tokens
}

// splitTrim splits on delim, trims each token, and drops tokens that
// are empty after trimming. Order is preserved.
func splitTrim(s, delim string) []string {
	var out []string
	for _, tok := range strings.Split(s, delim) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
