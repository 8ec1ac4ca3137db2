// Package sqlitestore persists query templates in a single SQLite database,
// one row per template with the document stored as JSON.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/queryforge/queryforge"
)

//go:embed schema.sql
var schemaSQL string

// Store is a SQLite-backed template store.
type Store struct {
	db *sql.DB
}

var _ queryforge.TemplateStore = (*Store)(nil)

// Open creates or opens the database at path and applies the schema.
//
// The connection is configured with WAL mode, NORMAL synchronous writes, a
// 5-second busy timeout, and a single connection since SQLite allows one
// writer at a time.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores the document under the sanitized name, replacing any previous
// template with that name.
func (s *Store) Put(name string, doc queryforge.Document) error {
	safe, err := safeName(name)
	if err != nil {
		return err
	}

	data, err := doc.JSON()
	if err != nil {
		return fmt.Errorf("storing template %q: %w", name, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO templates (id, name, document, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(name) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at
	`, uuid.Must(uuid.NewV7()).String(), safe, string(data))
	if err != nil {
		return fmt.Errorf("storing template %q: %w", name, err)
	}
	return nil
}

// Get loads the named template.
func (s *Store) Get(name string) (queryforge.Document, error) {
	safe, err := safeName(name)
	if err != nil {
		return queryforge.Document{}, err
	}

	var data string
	err = s.db.QueryRow(`SELECT document FROM templates WHERE name = ?`, safe).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return queryforge.Document{}, queryforge.ErrTemplateNotFound
	}
	if err != nil {
		return queryforge.Document{}, fmt.Errorf("loading template %q: %w", name, err)
	}

	doc, err := queryforge.DocumentFromJSON([]byte(data))
	if err != nil {
		return queryforge.Document{}, fmt.Errorf("loading template %q: %w", name, err)
	}
	return doc, nil
}

// Delete removes the named template, reporting whether it existed.
func (s *Store) Delete(name string) (bool, error) {
	safe, err := safeName(name)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(`DELETE FROM templates WHERE name = ?`, safe)
	if err != nil {
		return false, fmt.Errorf("deleting template %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting template %q: %w", name, err)
	}
	return n > 0, nil
}

// List enumerates stored templates in name order.
func (s *Store) List() ([]queryforge.TemplateInfo, error) {
	rows, err := s.db.Query(`SELECT name FROM templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var infos []queryforge.TemplateInfo
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		infos = append(infos, queryforge.TemplateInfo{Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return infos, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("executing %q: %w", pragma, err)
		}
	}
	return nil
}

func safeName(name string) (string, error) {
	safe := queryforge.SanitizeTemplateName(name)
	if safe == "" {
		return "", fmt.Errorf("template name %q is empty after sanitizing", name)
	}
	return safe, nil
}
