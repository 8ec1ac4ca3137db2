package queryforge

import "github.com/queryforge/queryforge/internal/render"

// Lint reports configuration defects that Render silently tolerates:
// a missing driving table, an empty select list, negative limit or offset,
// duplicate table aliases, references to aliases no table declares, and
// filter values whose shape does not match their operator.
//
// Problems are ordered by collection (tables, limit, joins, filters,
// grouping, conditional columns, window functions, ordering) so output is
// stable across calls. An empty slice means the configuration is coherent;
// it does not promise the SQL is meaningful to any particular engine.
func Lint(q *Query) []Problem {
	return render.Lint(q)
}
