package db

import (
	"database/sql"
	"fmt"

	"github.com/CaVaRT/internal-linking-dashboard/internal/models"

	_ "modernc.org/sqlite"
)

// DB wraps the in-memory SQLite index for one loaded-file session. It
// is rebuilt from scratch on every load and never touches disk.
type DB struct {
	conn *sql.DB
}

// New opens a fresh in-memory database and initializes the schema.
func New() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection would get its own empty :memory: database,
	// so the pool must stay at a single connection.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(createLinksTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create links schema: %w", err)
	}
	if _, err := conn.Exec(createAnchorsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create anchors schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection, discarding the session.
func (db *DB) Close() error {
	return db.conn.Close()
}

// BuildSession creates a new session database and indexes both tables.
func BuildSession(links []models.LinkRecord, anchors []models.ExpandedAnchorRecord) (*DB, error) {
	database, err := New()
	if err != nil {
		return nil, err
	}
	if err := database.InsertLinks(links); err != nil {
		database.Close()
		return nil, err
	}
	if err := database.InsertAnchors(anchors); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// InsertLinks indexes prepared link records in input order.
func (db *DB) InsertLinks(records []models.LinkRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertLink)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.TargetURL,
			r.AnchorTexts,
			r.UniqueAnchorCountRaw,
			r.UniqueAnchorCount,
			r.TotalInlinksRaw,
			r.FoundAt,
			r.Subdomain,
			r.RootDomain,
			string(r.Variability),
			r.Component1,
			r.Component2,
		)
		if err != nil {
			return fmt.Errorf("failed to insert link %s: %w", r.TargetURL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// InsertAnchors indexes expanded anchor records in input order.
func (db *DB) InsertAnchors(records []models.ExpandedAnchorRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertAnchor)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.TargetURL,
			r.Subdomain,
			r.RootDomain,
			string(r.Variability),
			r.Component1,
			r.Component2,
			r.UniqueAnchorCount,
			r.TotalInlinksRaw,
			r.AnchorText,
			r.FoundAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert anchor for %s: %w", r.TargetURL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// normalizeSubdomain maps the "ALL" selector sentinel to the empty
// string the SQL guards treat as "no filter".
func normalizeSubdomain(subdomain string) string {
	if subdomain == models.AllSubdomains {
		return ""
	}
	return subdomain
}
