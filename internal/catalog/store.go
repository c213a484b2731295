// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists one linkage run's merged collection into a
// queryable SQLite database. The database is an output sink: build always
// rebuilds from scratch, so no match decision survives between runs.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bookvault/pkg/types"
)

const defaultMaxResults = 50

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at path.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "catalog.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	return &Store{db: db, maxResults: maxResults}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Rebuild drops and reloads the books table from the given pairs, one row
// per matched pair. List fields are stored comma-joined.
func (s *Store) Rebuild(ctx context.Context, pairs []types.MatchedPair) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rebuild: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DROP TABLE IF EXISTS books`,
		`CREATE TABLE books (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			isbn TEXT,
			authors TEXT,
			shelves TEXT,
			series TEXT,
			read_status TEXT,
			goodreads_rating TEXT,
			story_graph_rating TEXT,
			match_method TEXT NOT NULL
		)`,
		`CREATE INDEX idx_books_isbn ON books(isbn)`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("rebuilding schema: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO books
		(title, isbn, authors, shelves, series, read_status,
		 goodreads_rating, story_graph_rating, match_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	for _, p := range pairs {
		rec := types.Merge(p)

		title := rec.StoryGraphTitle
		if title == "" {
			title = rec.GoodreadsTitle
		}
		isbn := rec.GoodreadsISBN
		if isbn == "" {
			isbn = rec.StoryGraphISBN
		}

		authors := joinDistinct(rec.GoodreadsAuthors, rec.StoryGraphAuthors)
		shelves := joinDistinct(rec.GoodreadsShelves, rec.StoryGraphTags)

		_, err := insert.ExecContext(ctx,
			title, isbn, authors, shelves, rec.GoodreadsSeries,
			rec.StoryGraphReadStatus, rec.GoodreadsRating,
			rec.StoryGraphRating, string(rec.MatchMethod))
		if err != nil {
			return fmt.Errorf("inserting %q: %w", title, err)
		}
	}

	return tx.Commit()
}

// Row is one catalog query result.
type Row struct {
	Title            string `json:"title"`
	ISBN             string `json:"isbn,omitempty"`
	Authors          string `json:"authors,omitempty"`
	Shelves          string `json:"shelves,omitempty"`
	Series           string `json:"series,omitempty"`
	ReadStatus       string `json:"read_status,omitempty"`
	GoodreadsRating  string `json:"goodreads_rating,omitempty"`
	StoryGraphRating string `json:"story_graph_rating,omitempty"`
	MatchMethod      string `json:"match_method"`
}

// QueryOptions filter a catalog query. Empty fields do not constrain.
type QueryOptions struct {
	Title  string // substring match
	Author string // substring match against the joined author list
	Shelf  string // substring match against shelves and tags
	Method string // exact match: "exact" or "fuzzy"
}

// Query returns catalog rows matching opts, capped at the configured
// maximum, ordered by title.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]Row, error) {
	where := []string{"1=1"}
	var args []any
	if opts.Title != "" {
		where = append(where, "title LIKE ?")
		args = append(args, "%"+opts.Title+"%")
	}
	if opts.Author != "" {
		where = append(where, "authors LIKE ?")
		args = append(args, "%"+opts.Author+"%")
	}
	if opts.Shelf != "" {
		where = append(where, "shelves LIKE ?")
		args = append(args, "%"+opts.Shelf+"%")
	}
	if opts.Method != "" {
		where = append(where, "match_method = ?")
		args = append(args, opts.Method)
	}
	args = append(args, s.maxResults)

	query := `SELECT title, isbn, authors, shelves, series, read_status,
		goodreads_rating, story_graph_rating, match_method
		FROM books WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY title LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Title, &r.ISBN, &r.Authors, &r.Shelves,
			&r.Series, &r.ReadStatus, &r.GoodreadsRating,
			&r.StoryGraphRating, &r.MatchMethod); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// joinDistinct merges the lists into one comma-joined string without
// duplicates, preserving first-seen order.
func joinDistinct(lists ...[]string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, v := range list {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return strings.Join(out, ", ")
}
