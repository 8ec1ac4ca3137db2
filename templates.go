package queryforge

import (
	"errors"
	"strings"
	"unicode"
)

// ErrTemplateNotFound reports a Get for a name no template carries.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateInfo identifies one stored template.
type TemplateInfo struct {
	Name string
}

// TemplateStore persists named query documents. Implementations live under
// providers/; the core never touches storage itself.
//
// Names pass through SanitizeTemplateName before use, so two names that
// sanitize identically address the same template.
type TemplateStore interface {
	// Put stores the document under the name, replacing any previous
	// document with that name.
	Put(name string, doc Document) error

	// Get loads the named document. A missing name reports
	// ErrTemplateNotFound.
	Get(name string) (Document, error)

	// Delete removes the named template, reporting whether it existed.
	Delete(name string) (bool, error)

	// List enumerates stored templates. Entries that cannot be read are
	// skipped, not reported.
	List() ([]TemplateInfo, error)
}

// SanitizeTemplateName reduces a template name to a storage-safe form:
// letters, digits, spaces, hyphens, and underscores survive, everything else
// is dropped, and surrounding whitespace is trimmed.
func SanitizeTemplateName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
