package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps recipe documents in a local SQLite database, keyed by
// (owner, filename). Safe for concurrent use through database/sql.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the recipe store at the given path.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS recipes (
		owner      TEXT NOT NULL,
		filename   TEXT NOT NULL,
		title      TEXT NOT NULL,
		body       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (owner, filename)
	)`); err != nil {
		return nil, fmt.Errorf("storage: init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Save stores a finished document under the owner's namespace.
func (s *SQLiteStore) Save(filename, body, title, owner string) bool {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO recipes (owner, filename, title, body, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(owner, filename) DO UPDATE SET title=excluded.title, body=excluded.body`,
		owner, filename, title, body, now,
	)
	if err != nil {
		slog.Error("storage: save failed",
			slog.String("filename", filename), slog.Any("error", err))
		return false
	}
	return true
}

// Get returns the stored body, or ("", false) when absent or on error.
func (s *SQLiteStore) Get(filename, owner string) (string, bool) {
	var body string
	err := s.db.QueryRow(
		`SELECT body FROM recipes WHERE owner = ? AND filename = ?`,
		owner, filename,
	).Scan(&body)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Error("storage: get failed",
				slog.String("filename", filename), slog.Any("error", err))
		}
		return "", false
	}
	return body, true
}

// List returns the owner's recipes, newest first. Errors yield an empty
// listing.
func (s *SQLiteStore) List(owner string) []Entry {
	rows, err := s.db.Query(
		`SELECT filename, title, created_at FROM recipes
		 WHERE owner = ? ORDER BY created_at DESC`,
		owner,
	)
	if err != nil {
		slog.Error("storage: list failed", slog.Any("error", err))
		return nil
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Filename, &e.Name, &e.Created); err != nil {
			slog.Error("storage: list scan failed", slog.Any("error", err))
			continue
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("storage: list rows failed", slog.Any("error", err))
	}
	return entries
}

// Delete removes a stored recipe. Deleting a missing recipe reports false.
func (s *SQLiteStore) Delete(filename, owner string) bool {
	res, err := s.db.Exec(
		`DELETE FROM recipes WHERE owner = ? AND filename = ?`,
		owner, filename,
	)
	if err != nil {
		slog.Error("storage: delete failed",
			slog.String("filename", filename), slog.Any("error", err))
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false
	}
	return n > 0
}

var _ Store = (*SQLiteStore)(nil)
