// Package uploadstore implements the opaque upload registry spec.md §6
// describes: a random id maps to a file copied into a per-process tempdir.
// It persists nothing about a parsed questionnaire — only that
// association — matching the module's "no model persistence" non-goal
// (SPEC_FULL.md §4.L).
package uploadstore

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps a modernc.org/sqlite database holding one table mapping a
// minted id to the path of a copied-in file (SPEC_FULL.md §4.L).
type Store struct {
	db   *sql.DB
	root string
}

// Open creates (or reuses) the sqlite database at dbPath and ensures
// tempRoot exists as the destination for Put's file copies.
func Open(dbPath, tempRoot string) (*Store, error) {
	if err := os.MkdirAll(tempRoot, 0o755); err != nil {
		return nil, fmt.Errorf("uploadstore: create tempdir %s: %w", tempRoot, err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("uploadstore: open %s: %w", dbPath, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS uploads (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("uploadstore: create schema: %w", err)
	}
	return &Store{db: db, root: tempRoot}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put copies srcPath's contents into the store's tempdir under a freshly
// minted id and records the association. It returns the new id.
func (s *Store) Put(srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("uploadstore: open source %s: %w", srcPath, err)
	}
	defer src.Close()

	id := uuid.NewString()
	destPath := filepath.Join(s.root, id+filepath.Ext(srcPath))
	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("uploadstore: create %s: %w", destPath, err)
	}
	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return "", fmt.Errorf("uploadstore: copy into %s: %w", destPath, err)
	}
	if err := dest.Close(); err != nil {
		return "", fmt.Errorf("uploadstore: close %s: %w", destPath, err)
	}

	_, err = s.db.Exec(`INSERT INTO uploads (id, path, created_at) VALUES (?, ?, ?)`,
		id, destPath, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("uploadstore: record %s: %w", id, err)
	}
	return id, nil
}

// Resolve returns the path previously associated with id.
func (s *Store) Resolve(id string) (string, error) {
	var path string
	err := s.db.QueryRow(`SELECT path FROM uploads WHERE id = ?`, id).Scan(&path)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("uploadstore: unknown id %q", id)
	}
	if err != nil {
		return "", fmt.Errorf("uploadstore: resolve %q: %w", id, err)
	}
	return path, nil
}
