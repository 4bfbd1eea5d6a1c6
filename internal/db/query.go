package db

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
)

// VariabilityHistogram counts unique target URLs per variability bucket
// for the given subdomain ("" or models.AllSubdomains for all). The
// fixed buckets are always present, zero-filled; Unknown is appended
// only when it actually occurred.
func (db *DB) VariabilityHistogram(subdomain string) ([]models.BucketCount, error) {
	sub := normalizeSubdomain(subdomain)

	rows, err := db.conn.Query(selectVariabilityHistogram, sub, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to query variability histogram: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Variability]int)
	for rows.Next() {
		var bucket string
		var n int
		if err := rows.Scan(&bucket, &n); err != nil {
			return nil, fmt.Errorf("failed to scan histogram row: %w", err)
		}
		counts[models.Variability(bucket)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read histogram rows: %w", err)
	}

	result := make([]models.BucketCount, 0, len(models.VariabilityOrder)+1)
	for _, bucket := range models.VariabilityOrder {
		result = append(result, models.BucketCount{Bucket: bucket, Count: counts[bucket]})
	}
	if n := counts[models.VariabilityUnknown]; n > 0 {
		result = append(result, models.BucketCount{Bucket: models.VariabilityUnknown, Count: n})
	}
	return result, nil
}

// Component1Breakdown returns first-path-component counts within one
// variability bucket, with percentages over all rows in the bucket
// (rows with no first component are part of the denominator but never
// listed). The second return value is that denominator.
func (db *DB) Component1Breakdown(subdomain, bucket string) ([]models.ComponentStat, int, error) {
	sub := normalizeSubdomain(subdomain)

	var total int
	if err := db.conn.QueryRow(selectBucketTotal, bucket, sub, sub).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bucket rows: %w", err)
	}

	stats, err := db.componentCounts(selectComponent1Counts, bucket, sub, total)
	if err != nil {
		return nil, 0, err
	}
	return stats, total, nil
}

// Component2Breakdown returns second-path-component counts within one
// variability bucket. Unlike Component1Breakdown, percentages are over
// rows that actually have a second component.
func (db *DB) Component2Breakdown(subdomain, bucket string) ([]models.ComponentStat, int, error) {
	sub := normalizeSubdomain(subdomain)

	var total int
	if err := db.conn.QueryRow(selectComponent2Total, bucket, sub, sub).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count component rows: %w", err)
	}

	stats, err := db.componentCounts(selectComponent2Counts, bucket, sub, total)
	if err != nil {
		return nil, 0, err
	}
	return stats, total, nil
}

func (db *DB) componentCounts(query, bucket, sub string, total int) ([]models.ComponentStat, error) {
	rows, err := db.conn.Query(query, bucket, sub, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to query component counts: %w", err)
	}
	defer rows.Close()

	var stats []models.ComponentStat
	for rows.Next() {
		var s models.ComponentStat
		if err := rows.Scan(&s.Component, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan component row: %w", err)
		}
		if total > 0 {
			s.Percentage = math.Round(float64(s.Count)/float64(total)*100*100) / 100
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read component rows: %w", err)
	}
	return stats, nil
}

// SearchAnchors returns expanded anchor rows matching the filter, in
// load order. An empty Substring matches everything; MinUniqueAnchors
// uses strictly-greater comparison, so models.NoThreshold keeps all rows.
func (db *DB) SearchAnchors(filter models.SearchFilter) ([]models.ExpandedAnchorRecord, error) {
	sub := normalizeSubdomain(filter.Subdomain)

	query := selectAnchorsFiltered
	if filter.CaseSensitive {
		query = selectAnchorsFilteredCaseSensitive
	}

	rows, err := db.conn.Query(query, sub, sub, filter.Substring, filter.Substring, filter.MinUniqueAnchors)
	if err != nil {
		return nil, fmt.Errorf("failed to query anchors: %w", err)
	}
	defer rows.Close()

	return scanAnchorRows(rows)
}

// MissingAnchors returns every expanded row whose anchor text is empty,
// in load order.
func (db *DB) MissingAnchors(subdomain string) ([]models.ExpandedAnchorRecord, error) {
	sub := normalizeSubdomain(subdomain)

	rows, err := db.conn.Query(selectMissingAnchors, sub, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to query missing anchors: %w", err)
	}
	defer rows.Close()

	return scanAnchorRows(rows)
}

// Subdomains lists the distinct subdomains present in the session,
// sorted alphabetically.
func (db *DB) Subdomains() ([]string, error) {
	rows, err := db.conn.Query(selectSubdomains)
	if err != nil {
		return nil, fmt.Errorf("failed to query subdomains: %w", err)
	}
	defer rows.Close()

	var subdomains []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan subdomain: %w", err)
		}
		subdomains = append(subdomains, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subdomains: %w", err)
	}
	return subdomains, nil
}

// Summary reports row counts for the given subdomain scope.
func (db *DB) Summary(subdomain string) (models.SessionSummary, error) {
	sub := normalizeSubdomain(subdomain)

	var summary models.SessionSummary
	err := db.conn.QueryRow(selectLinkSummary, sub, sub).Scan(&summary.LinkRows, &summary.UniqueURLs)
	if err != nil {
		return models.SessionSummary{}, fmt.Errorf("failed to query link summary: %w", err)
	}
	err = db.conn.QueryRow(selectAnchorCount, sub, sub).Scan(&summary.AnchorRows)
	if err != nil {
		return models.SessionSummary{}, fmt.Errorf("failed to query anchor count: %w", err)
	}
	return summary, nil
}

func scanAnchorRows(rows *sql.Rows) ([]models.ExpandedAnchorRecord, error) {
	var records []models.ExpandedAnchorRecord
	for rows.Next() {
		var r models.ExpandedAnchorRecord
		var variability string
		err := rows.Scan(
			&r.TargetURL,
			&r.Subdomain,
			&r.RootDomain,
			&variability,
			&r.Component1,
			&r.Component2,
			&r.UniqueAnchorCount,
			&r.TotalInlinksRaw,
			&r.AnchorText,
			&r.FoundAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan anchor row: %w", err)
		}
		r.Variability = models.Variability(variability)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read anchor rows: %w", err)
	}
	return records, nil
}
