// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive owns the durable item dataset. The store is a keyed
// upsert over canonical links: one row per identity, first-seen date
// permanent, display fields refreshable under the merge policy.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/universalbeat/evidence-engine/internal/dedupe"
	"github.com/universalbeat/evidence-engine/internal/normalize"
	"github.com/universalbeat/evidence-engine/pkg/types"
)

const (
	dataDir    = "data"
	archiveDir = "archive"
	indexDir   = "index"
	dbFile     = "evidence.db"
)

// Store manages the archive SQLite database under outputDir/index/.
type Store struct {
	db          *sql.DB
	outputDir   string
	latestLimit int
}

// NewStore opens or creates the archive database at
// outputDir/index/evidence.db, creating the schema if needed.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.OutputDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dbDir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	limit := cfg.LatestLimit
	if limit <= 0 {
		limit = 25
	}

	s := &Store{db: db, outputDir: cfg.OutputDir, latestLimit: limit}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS items (
			link TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			summary TEXT,
			image TEXT,
			source TEXT,
			date TEXT NOT NULL,
			first_seen TEXT NOT NULL,
			last_seen TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_date ON items(date)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// UpsertSummary holds counts from one archive upsert pass.
type UpsertSummary struct {
	Inserted int
	Enriched int
	Seen     int
}

// Upsert folds a merged batch into the archive. New identities are
// inserted; re-sighted identities keep their archived date and gain any
// display fields the archived row lacked, per the merge policy. Feeding
// the same batch twice leaves the archive unchanged.
func (s *Store) Upsert(ctx context.Context, items []types.Item, policy dedupe.Policy, now time.Time) (UpsertSummary, error) {
	var sum UpsertSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return sum, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	nowStr := now.UTC().Format(normalize.DateFormat)

	for _, it := range items {
		var existing types.Item
		err := tx.QueryRowContext(ctx,
			`SELECT title, summary, image, source, date FROM items WHERE link = ?`, it.Link,
		).Scan(&existing.Title, &existing.Summary, &existing.Image, &existing.Source, &existing.Date)

		switch {
		case err == sql.ErrNoRows:
			_, err = tx.ExecContext(ctx,
				`INSERT INTO items (link, title, summary, image, source, date, first_seen, last_seen)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				it.Link, it.Title, it.Summary, it.Image, it.Source, it.Date, nowStr, nowStr,
			)
			if err != nil {
				return sum, fmt.Errorf("inserting %s: %w", it.Link, err)
			}
			sum.Inserted++
		case err != nil:
			return sum, fmt.Errorf("looking up %s: %w", it.Link, err)
		default:
			existing.Link = it.Link
			before := existing
			dedupe.MergeInto(&existing, it, policy)
			if existing.Summary != before.Summary || existing.Image != before.Image ||
				existing.Source != before.Source || existing.Title != before.Title {
				sum.Enriched++
			}
			_, err = tx.ExecContext(ctx,
				`UPDATE items SET title = ?, summary = ?, image = ?, source = ?, last_seen = ? WHERE link = ?`,
				existing.Title, existing.Summary, existing.Image, existing.Source, nowStr, it.Link,
			)
			if err != nil {
				return sum, fmt.Errorf("updating %s: %w", it.Link, err)
			}
			sum.Seen++
		}
	}
	return sum, tx.Commit()
}

// itemOrder sorts newest first with the canonical link as a deterministic
// tie-break for equal dates.
const itemOrder = `ORDER BY date DESC, link ASC`

// All returns every archived item, newest first.
func (s *Store) All(ctx context.Context) ([]types.Item, error) {
	return s.queryItems(ctx,
		`SELECT link, title, summary, image, source, date FROM items `+itemOrder)
}

// Latest returns the limit most recent items; limit <= 0 uses the
// configured default. This backs the unfiltered landing view; filtered
// views read the full dataset instead.
func (s *Store) Latest(ctx context.Context, limit int) ([]types.Item, error) {
	if limit <= 0 {
		limit = s.latestLimit
	}
	return s.queryItems(ctx,
		`SELECT link, title, summary, image, source, date FROM items `+itemOrder+` LIMIT ?`, limit)
}

// Months returns the distinct YYYY-MM partitions present, newest first.
func (s *Store) Months(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT substr(date, 1, 7) FROM items ORDER BY 1 DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying months: %w", err)
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, rows.Err()
}

// ByMonth returns the items of one YYYY-MM partition, newest first.
func (s *Store) ByMonth(ctx context.Context, month string) ([]types.Item, error) {
	return s.queryItems(ctx,
		`SELECT link, title, summary, image, source, date FROM items WHERE substr(date, 1, 7) = ? `+itemOrder,
		month)
}

// Count returns the number of archived identities.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM items`).Scan(&n)
	return n, err
}

func (s *Store) queryItems(ctx context.Context, query string, args ...any) ([]types.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var it types.Item
		if err := rows.Scan(&it.Link, &it.Title, &it.Summary, &it.Image, &it.Source, &it.Date); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
