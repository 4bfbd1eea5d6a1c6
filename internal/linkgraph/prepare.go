package linkgraph

import (
	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// Prepare decorates raw input rows with their derived fields. Every
// derived field is a pure function of the raw fields, so preparing the
// same input twice always yields identical output. Rows with malformed
// URLs or count fields are kept with sentinel values rather than
// dropped.
func Prepare(raws []models.RawLinkRecord) []models.LinkRecord {
	out := make([]models.LinkRecord, 0, len(raws))
	for _, r := range raws {
		component1, component2 := PathComponentsOf(r.TargetURL)
		count, ok := coerceCount(r.UniqueAnchorCountRaw)
		if !ok {
			count = 0
		}
		out = append(out, models.LinkRecord{
			TargetURL:            r.TargetURL,
			AnchorTexts:          r.AnchorTexts,
			UniqueAnchorCountRaw: r.UniqueAnchorCountRaw,
			TotalInlinksRaw:      r.TotalInlinksRaw,
			FoundAt:              r.FoundAt,
			Subdomain:            SubdomainOf(r.TargetURL),
			RootDomain:           RootDomainOf(r.TargetURL),
			Variability:          VariabilityOf(r.UniqueAnchorCountRaw),
			Component1:           component1,
			Component2:           component2,
			UniqueAnchorCount:    count,
		})
	}
	return out
}

// AnnotateFrequencies attaches to each row the occurrence count of its
// (TargetURL, AnchorText) pair within the given result set. The input
// is expected to be already filtered; counts are relative to it, not to
// the whole session.
func AnnotateFrequencies(rows []models.ExpandedAnchorRecord) []models.AnnotatedAnchorRecord {
	type pair struct {
		url, anchor string
	}
	counts := make(map[pair]int, len(rows))
	for _, r := range rows {
		counts[pair{r.TargetURL, r.AnchorText}]++
	}

	out := make([]models.AnnotatedAnchorRecord, len(rows))
	for i, r := range rows {
		out[i] = models.AnnotatedAnchorRecord{
			ExpandedAnchorRecord: r,
			AnchorCount:          counts[pair{r.TargetURL, r.AnchorText}],
		}
	}
	return out
}
