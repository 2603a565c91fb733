// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists conversion results in a local SQLite database
// so repeated conversions of unchanged documents skip the external
// tool. Entries are keyed by the input's content hash together with
// the page selection and the tool used, so a changed file, a different
// page spec, or a different tool each miss.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"
)

const dbFile = "convert.db"

// Store manages the conversion cache database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database under dir, creating the
// schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		key TEXT PRIMARY KEY,
		input_path TEXT NOT NULL,
		mime_type TEXT NOT NULL,
		tool TEXT NOT NULL,
		pages TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// FileKey derives the cache key for converting the file at input with
// the given page selection and tool.
func FileKey(input, pageSpec, tool string) (string, error) {
	f, err := os.Open(input)
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", input, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", input, err)
	}
	return fmt.Sprintf("%x:%s:%s", h.Sum(nil), pageSpec, tool), nil
}

// Entry is one cached conversion.
type Entry struct {
	Key       string    `yaml:"key"`
	InputPath string    `yaml:"input_path"`
	MimeType  string    `yaml:"mime_type"`
	Tool      string    `yaml:"tool"`
	Pages     string    `yaml:"pages,omitempty"`
	Text      string    `yaml:"text"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Lookup returns the cached text for key and whether it was found.
func (s *Store) Lookup(key string) (string, bool, error) {
	var text string
	err := s.db.QueryRow(`SELECT text FROM conversions WHERE key = ?`, key).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup: %w", err)
	}
	return text, true, nil
}

// Put stores a conversion result, replacing any previous entry for the
// same key.
func (s *Store) Put(e Entry) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO conversions (key, input_path, mime_type, tool, pages, text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Key, e.InputPath, e.MimeType, e.Tool, e.Pages, e.Text,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("cache store: %w", err)
	}
	return nil
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries   int
	TextBytes int64
}

// Stats reports the number of cached conversions and the total size of
// the stored text.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT count(*), coalesce(sum(length(text)), 0) FROM conversions`,
	).Scan(&st.Entries, &st.TextBytes)
	if err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	return st, nil
}

// ExportYAML writes every cached entry to w as YAML, oldest first.
func (s *Store) ExportYAML(w io.Writer) error {
	rows, err := s.db.Query(
		`SELECT key, input_path, mime_type, tool, pages, text, created_at
		 FROM conversions ORDER BY created_at, key`)
	if err != nil {
		return fmt.Errorf("cache export: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.Key, &e.InputPath, &e.MimeType, &e.Tool, &e.Pages, &e.Text, &createdAt); err != nil {
			return fmt.Errorf("cache export: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("cache export: %w", err)
	}

	doc := struct {
		Conversions []Entry `yaml:"conversions"`
	}{Conversions: entries}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}

// Clear removes every cached entry and returns how many were deleted.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM conversions`)
	if err != nil {
		return 0, fmt.Errorf("cache clear: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cache clear: %w", err)
	}
	return n, nil
}
