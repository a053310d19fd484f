// Package store persists the page cache and export history in SQLite.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store wraps the local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and configures WAL mode.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "store: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS page_cache (
	url_hash   TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	html       TEXT NOT NULL,
	fetched_at INTEGER NOT NULL,
	expires_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS exports (
	id          TEXT PRIMARY KEY,
	url         TEXT NOT NULL,
	list_name   TEXT NOT NULL,
	place_count INTEGER NOT NULL,
	format      TEXT NOT NULL,
	path        TEXT NOT NULL,
	created_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_page_cache_expires_at ON page_cache(expires_at);
CREATE INDEX IF NOT EXISTS idx_exports_url ON exports(url);
`

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// urlKey returns SHA-256 hex of the URL for cache lookup.
func urlKey(url string) string {
	h := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", h)
}

// GetPage returns the cached HTML for url if a non-expired row exists.
func (s *Store) GetPage(ctx context.Context, url string) (string, bool, error) {
	var html string
	err := s.db.QueryRowContext(ctx,
		`SELECT html FROM page_cache WHERE url_hash = ? AND expires_at > ?`,
		urlKey(url), time.Now().UTC().Unix(),
	).Scan(&html)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, eris.Wrap(err, "store: get page")
	}
	zap.L().Debug("page cache hit", zap.String("url", url))
	return html, true, nil
}

// PutPage stores (or refreshes) the cached HTML for url with the given TTL.
func (s *Store) PutPage(ctx context.Context, url, html string, ttl time.Duration) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_cache (url_hash, url, html, fetched_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (url_hash) DO UPDATE SET
			html = excluded.html,
			fetched_at = excluded.fetched_at,
			expires_at = excluded.expires_at`,
		urlKey(url), url, html, now.Unix(), now.Add(ttl).Unix(),
	)
	return eris.Wrap(err, "store: put page")
}

// PurgeExpired removes expired cache rows and returns how many were dropped.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM page_cache WHERE expires_at <= ?`, time.Now().UTC().Unix(),
	)
	if err != nil {
		return 0, eris.Wrap(err, "store: purge expired")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, eris.Wrap(err, "store: purge rows affected")
	}
	return n, nil
}

// ExportRecord is one row of the export history.
type ExportRecord struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	ListName   string    `json:"list_name"`
	PlaceCount int       `json:"place_count"`
	Format     string    `json:"format"`
	Path       string    `json:"path"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordExport appends a history row for a completed export and returns it
// with the generated id.
func (s *Store) RecordExport(ctx context.Context, rec ExportRecord) (*ExportRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exports (id, url, list_name, place_count, format, path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.URL, rec.ListName, rec.PlaceCount, rec.Format, rec.Path, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, eris.Wrap(err, "store: record export")
	}
	return &rec, nil
}

// ListExports returns the most recent export rows, newest first.
func (s *Store) ListExports(ctx context.Context, limit int) ([]ExportRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, list_name, place_count, format, path, created_at
		 FROM exports ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "store: list exports")
	}
	defer rows.Close() //nolint:errcheck

	var recs []ExportRecord
	for rows.Next() {
		var rec ExportRecord
		var created int64
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.ListName, &rec.PlaceCount, &rec.Format, &rec.Path, &created); err != nil {
			return nil, eris.Wrap(err, "store: scan export")
		}
		rec.CreatedAt = time.Unix(created, 0).UTC()
		recs = append(recs, rec)
	}
	return recs, eris.Wrap(rows.Err(), "store: iterate exports")
}
