package queryforge

import "github.com/queryforge/queryforge/internal/render"

// Render produces the SQL statement for the configuration.
//
// Rendering is a single deterministic pass over the collections in insertion
// order and never fails: whatever is missing from the configuration is simply
// missing from the statement. An empty Query renders "SELECT\n  ;". Use Lint
// or Validate to surface the gaps.
func Render(q *Query) string {
	return render.SQL(q)
}
