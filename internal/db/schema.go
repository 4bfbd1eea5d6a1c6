package db

// links holds one row per target URL as loaded, decorated with derived
// fields. Insertion order is preserved through the rowid so
// "first occurrence" queries stay deterministic.
const createLinksTable = `
CREATE TABLE IF NOT EXISTS links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    target_url TEXT NOT NULL,
    anchor_texts TEXT NOT NULL DEFAULT '',
    unique_anchor_count_raw TEXT NOT NULL DEFAULT '',
    unique_anchor_count INTEGER NOT NULL DEFAULT 0,
    total_inlinks_raw TEXT NOT NULL DEFAULT '',
    found_at TEXT NOT NULL DEFAULT '',
    subdomain TEXT NOT NULL,
    root_domain TEXT NOT NULL DEFAULT '',
    variability TEXT NOT NULL,
    component_1 TEXT NOT NULL DEFAULT '',
    component_2 TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_links_subdomain ON links(subdomain);
CREATE INDEX IF NOT EXISTS idx_links_variability ON links(variability);
CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_url);
`

// anchors holds one row per expanded anchor occurrence.
const createAnchorsTable = `
CREATE TABLE IF NOT EXISTS anchors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    target_url TEXT NOT NULL,
    subdomain TEXT NOT NULL,
    root_domain TEXT NOT NULL DEFAULT '',
    variability TEXT NOT NULL,
    component_1 TEXT NOT NULL DEFAULT '',
    component_2 TEXT NOT NULL DEFAULT '',
    unique_anchor_count INTEGER NOT NULL DEFAULT 0,
    total_inlinks_raw TEXT NOT NULL DEFAULT '',
    anchor_text TEXT NOT NULL DEFAULT '',
    found_at TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_anchors_subdomain ON anchors(subdomain);
CREATE INDEX IF NOT EXISTS idx_anchors_target ON anchors(target_url);
`

const insertLink = `
INSERT INTO links (
    target_url, anchor_texts, unique_anchor_count_raw, unique_anchor_count,
    total_inlinks_raw, found_at, subdomain, root_domain, variability,
    component_1, component_2
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertAnchor = `
INSERT INTO anchors (
    target_url, subdomain, root_domain, variability, component_1, component_2,
    unique_anchor_count, total_inlinks_raw, anchor_text, found_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Histogram over unique target URLs: duplicated URLs count once, keeping
// the first occurrence's bucket.
const selectVariabilityHistogram = `
SELECT l.variability, COUNT(*) AS url_count
FROM links l
JOIN (
    SELECT MIN(id) AS first_id
    FROM links
    WHERE (? = '' OR subdomain = ?)
    GROUP BY target_url
) f ON l.id = f.first_id
GROUP BY l.variability
`

const selectBucketTotal = `
SELECT COUNT(*) FROM links
WHERE variability = ? AND (? = '' OR subdomain = ?)
`

const selectComponent1Counts = `
SELECT component_1, COUNT(*) AS n
FROM links
WHERE variability = ? AND (? = '' OR subdomain = ?) AND component_1 <> ''
GROUP BY component_1
ORDER BY n DESC, component_1 ASC
`

const selectComponent2Total = `
SELECT COUNT(*) FROM links
WHERE variability = ? AND (? = '' OR subdomain = ?) AND component_2 <> ''
`

const selectComponent2Counts = `
SELECT component_2, COUNT(*) AS n
FROM links
WHERE variability = ? AND (? = '' OR subdomain = ?) AND component_2 <> ''
GROUP BY component_2
ORDER BY n DESC, component_2 ASC
`

const anchorColumns = `
target_url, subdomain, root_domain, variability, component_1, component_2,
unique_anchor_count, total_inlinks_raw, anchor_text, found_at
`

const selectAnchorsFiltered = `
SELECT ` + anchorColumns + `
FROM anchors
WHERE (? = '' OR subdomain = ?)
  AND (? = '' OR instr(lower(target_url), lower(?)) > 0)
  AND unique_anchor_count > ?
ORDER BY id ASC
`

const selectAnchorsFilteredCaseSensitive = `
SELECT ` + anchorColumns + `
FROM anchors
WHERE (? = '' OR subdomain = ?)
  AND (? = '' OR instr(target_url, ?) > 0)
  AND unique_anchor_count > ?
ORDER BY id ASC
`

const selectMissingAnchors = `
SELECT ` + anchorColumns + `
FROM anchors
WHERE (? = '' OR subdomain = ?) AND anchor_text = ''
ORDER BY id ASC
`

const selectSubdomains = `
SELECT DISTINCT subdomain FROM links ORDER BY subdomain ASC
`

const selectLinkSummary = `
SELECT COUNT(*), COUNT(DISTINCT target_url) FROM links
WHERE (? = '' OR subdomain = ?)
`

const selectAnchorCount = `
SELECT COUNT(*) FROM anchors
WHERE (? = '' OR subdomain = ?)
`
