package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/queryforge/queryforge"
)

// loadDocument reads a query document from disk. The extension picks the
// codec: .yaml/.yml decode as YAML, everything else as JSON.
func loadDocument(path string) (queryforge.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return queryforge.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return queryforge.DocumentFromYAML(data)
	default:
		return queryforge.DocumentFromJSON(data)
	}
}

// loadQuery reads a document and replays it into a Query.
func loadQuery(path string) (*queryforge.Query, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	q, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("building query from %s: %w", path, err)
	}
	return q, nil
}
