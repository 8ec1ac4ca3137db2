// Package fsstore persists query templates as JSON files in a directory.
//
// Each template is one pretty-printed file named after the sanitized
// template name, carrying the name alongside the document fields so the
// listing survives renames of the file itself.
package fsstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/queryforge/queryforge"
)

// Store is a directory of template files.
type Store struct {
	dir string
}

var _ queryforge.TemplateStore = (*Store)(nil)

// templateFile is the on-disk shape: the template name plus the document
// fields flattened beside it.
type templateFile struct {
	Name string `json:"name"`
	queryforge.Document
}

// New opens a template directory, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating template directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Put writes the document under the sanitized name, replacing any previous
// template with that name.
func (s *Store) Put(name string, doc queryforge.Document) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	payload := templateFile{Name: name, Document: doc}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding template %q: %w", name, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing template %q: %w", name, err)
	}
	return nil
}

// Get loads the named template.
func (s *Store) Get(name string) (queryforge.Document, error) {
	path, err := s.path(name)
	if err != nil {
		return queryforge.Document{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return queryforge.Document{}, queryforge.ErrTemplateNotFound
	}
	if err != nil {
		return queryforge.Document{}, fmt.Errorf("reading template %q: %w", name, err)
	}

	var payload templateFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return queryforge.Document{}, fmt.Errorf("decoding template %q: %w", name, err)
	}
	return payload.Document, nil
}

// Delete removes the named template, reporting whether it existed.
func (s *Store) Delete(name string) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}

	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("deleting template %q: %w", name, err)
	}
	return true, nil
}

// List enumerates templates in the directory. Files that cannot be read or
// decoded are skipped; a file without a recorded name falls back to its
// stem.
func (s *Store) List() ([]queryforge.TemplateInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var infos []queryforge.TemplateInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var payload templateFile
		if err := json.Unmarshal(data, &payload); err != nil {
			continue
		}

		name := payload.Name
		if name == "" {
			name = strings.TrimSuffix(entry.Name(), ".json")
		}
		infos = append(infos, queryforge.TemplateInfo{Name: name})
	}
	return infos, nil
}

// path maps a template name to its file, rejecting names that sanitize to
// nothing.
func (s *Store) path(name string) (string, error) {
	safe := queryforge.SanitizeTemplateName(name)
	if safe == "" {
		return "", fmt.Errorf("template name %q is empty after sanitizing", name)
	}
	return filepath.Join(s.dir, safe+".json"), nil
}
