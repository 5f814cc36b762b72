// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists fetched CrossRef records in a local SQLite
// database. Caching is strictly opt-in: the tools run stateless unless a
// cache path is configured, and a cache miss or storage error never fails
// a lookup — the caller just goes to the network.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/crossref-mcp/pkg/types"
)

// Store manages the lookup cache database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS works (
			doi TEXT PRIMARY KEY,
			record TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS queries (
			query TEXT PRIMARY KEY,
			doi TEXT NOT NULL REFERENCES works(doi)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// WorkByDOI returns the cached record for a DOI, or (nil, false) on a miss.
func (s *Store) WorkByDOI(ctx context.Context, doi string) (*types.Work, bool, error) {
	var record string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM works WHERE doi = ?`, doi,
	).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached work: %w", err)
	}
	return decodeWork(record)
}

// WorkByQuery returns the cached record previously matched for a search
// query, or (nil, false) on a miss.
func (s *Store) WorkByQuery(ctx context.Context, query string) (*types.Work, bool, error) {
	var record string
	err := s.db.QueryRowContext(ctx,
		`SELECT w.record FROM queries q JOIN works w ON w.doi = q.doi WHERE q.query = ?`, query,
	).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached query: %w", err)
	}
	return decodeWork(record)
}

// PutWork stores a record under its DOI. Records without a DOI are not
// cacheable and are ignored.
func (s *Store) PutWork(ctx context.Context, w *types.Work) error {
	if w == nil || w.DOI == "" {
		return nil
	}
	record, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encoding work for cache: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO works (doi, record, fetched_at) VALUES (?, ?, ?)`,
		w.DOI, string(record), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing cached work: %w", err)
	}
	return nil
}

// PutQuery links a search query to the DOI it matched. The work must have
// been stored first.
func (s *Store) PutQuery(ctx context.Context, query, doi string) error {
	if query == "" || doi == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO queries (query, doi) VALUES (?, ?)`, query, doi,
	)
	if err != nil {
		return fmt.Errorf("writing cached query: %w", err)
	}
	return nil
}

func decodeWork(record string) (*types.Work, bool, error) {
	var w types.Work
	if err := json.Unmarshal([]byte(record), &w); err != nil {
		return nil, false, fmt.Errorf("decoding cached work: %w", err)
	}
	return &w, true, nil
}
