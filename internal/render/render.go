// Package render turns a query aggregate into SQL text.
//
// Rendering is a single deterministic pass that never fails: missing or
// malformed configuration degrades the output (an absent FROM clause, an
// empty select list) instead of raising errors. Lint reports those gaps as
// data for callers that want diagnostics before rendering.
package render

import (
	"strconv"
	"strings"

	"github.com/queryforge/queryforge/internal/types"
)

// SQL renders the aggregate into a single SELECT statement terminated by a
// semicolon. Clause order is fixed: select list, FROM, joins, WHERE,
// GROUP BY/HAVING, ORDER BY, LIMIT/OFFSET.
func SQL(q *types.Query) string {
	var lines []string

	if q.Distinct {
		lines = append(lines, "SELECT DISTINCT")
	} else {
		lines = append(lines, "SELECT")
	}

	// Select list: table fields in table order, then CASE blocks, then
	// window expressions. Window items carry their own two-space prefix, so
	// after the join below they sit at four spaces; CASE blocks start at
	// four and keep their interior indentation.
	var items []string
	for _, t := range q.Tables {
		items = append(items, t.QualifiedFields()...)
	}
	for _, c := range q.CaseWhens {
		items = append(items, caseBlock(c))
	}
	for _, w := range q.WindowFunctions {
		items = append(items, "  "+windowExpr(w))
	}
	lines = append(lines, "  "+strings.Join(items, ",\n  "))

	if len(q.Tables) > 0 {
		driving := q.Tables[0]
		lines = append(lines, "FROM "+driving.Name+" AS "+driving.Alias)
	}

	for _, j := range q.Joins {
		lines = append(lines, joinLine(j))
	}

	if len(q.Filters) > 0 {
		lines = append(lines, "WHERE")
		preds := make([]string, len(q.Filters))
		for i, f := range q.Filters {
			if i == 0 {
				// The first condition has no predecessor; its Logic is ignored.
				preds[i] = "  " + Predicate(f)
			} else {
				preds[i] = "  " + string(f.Logic) + " " + Predicate(f)
			}
		}
		lines = append(lines, strings.Join(preds, "\n"))
	}

	if q.GroupBy != nil {
		lines = append(lines, "GROUP BY "+strings.Join(q.GroupBy.Fields, ", "))

		if len(q.GroupBy.Having) > 0 {
			having := make([]string, len(q.GroupBy.Having))
			for i, h := range q.GroupBy.Having {
				having[i] = Predicate(h)
			}
			// HAVING conditions combine with AND regardless of their Logic.
			lines = append(lines, "HAVING "+strings.Join(having, " AND "))
		}
	}

	if len(q.OrderBys) > 0 {
		sorts := make([]string, len(q.OrderBys))
		for i, s := range q.OrderBys {
			sorts[i] = sortExpr(s)
		}
		lines = append(lines, "ORDER BY "+strings.Join(sorts, ", "))
	}

	if q.Limit > 0 {
		clause := "LIMIT " + strconv.Itoa(q.Limit)
		if q.Offset > 0 {
			clause += " OFFSET " + strconv.Itoa(q.Offset)
		}
		lines = append(lines, clause)
	}

	return strings.Join(lines, "\n") + ";"
}

// Predicate renders one filter condition. The same form is reused for WHERE
// lines, HAVING conditions, and CASE WHEN branches.
func Predicate(f types.FilterCondition) string {
	field := f.QualifiedField()

	switch f.Operator {
	case types.IsNull, types.IsNotNull:
		return field + " " + f.Operator.SQL()

	case types.In, types.NotIn:
		var values string
		if seq, ok := types.Sequence(f.Value); ok {
			parts := make([]string, len(seq))
			for i, v := range seq {
				parts[i] = Literal(v)
			}
			values = strings.Join(parts, ", ")
		} else {
			// A non-sequence value lands inside the parens untouched.
			values = Bare(f.Value)
		}
		return field + " " + f.Operator.SQL() + " (" + values + ")"

	case types.Between:
		lo, hi := boundsOf(f.Value)
		return field + " BETWEEN " + Bare(lo) + " AND " + Bare(hi)

	case types.Regexp:
		return field + " REGEXP '" + Bare(f.Value) + "'"

	default:
		return field + " " + f.Operator.SQL() + " " + Literal(f.Value)
	}
}

func joinLine(j types.JoinSpec) string {
	return j.Kind.SQL() + " " + j.Right.Name + " AS " + j.Right.Alias +
		" ON " + j.LeftAlias + "." + j.LeftField + " = " + j.Right.Alias + "." + j.RightField
}

func sortExpr(s types.SortSpec) string {
	return s.TableAlias + "." + s.Field + " " + string(s.Direction)
}

// caseBlock renders a CASE expression with a two-space base indent and
// four-space branch lines. Else renders only when present; an empty string
// is present.
func caseBlock(c types.CaseWhenSpec) string {
	lines := []string{"  CASE"}
	for _, b := range c.Branches {
		lines = append(lines, "    WHEN "+Predicate(b.When)+" THEN "+Literal(b.Then))
	}
	if c.Else != nil {
		lines = append(lines, "    ELSE "+Literal(c.Else))
	}
	lines = append(lines, "  END AS "+c.Alias)
	return strings.Join(lines, "\n")
}

// windowExpr renders FUNC(arg) OVER (...). The partition clause keeps a
// trailing space before ORDER BY or the closing paren; both clauses absent
// still yields OVER ().
func windowExpr(w types.WindowFunctionSpec) string {
	expr := w.Function + "("
	if w.Field != "" {
		expr += w.TableAlias + "." + w.Field
	}
	expr += ")"

	over := " OVER ("
	if len(w.PartitionBy) > 0 {
		over += "PARTITION BY " + strings.Join(w.PartitionBy, ", ") + " "
	}
	if len(w.OrderBy) > 0 {
		sorts := make([]string, len(w.OrderBy))
		for i, s := range w.OrderBy {
			sorts[i] = sortExpr(s)
		}
		over += "ORDER BY " + strings.Join(sorts, ", ")
	}
	over += ")"

	out := expr + over
	if w.Alias != "" {
		out += " AS " + w.Alias
	}
	return out
}

// boundsOf extracts the BETWEEN bounds: the first two elements of a
// sequence value, or the value itself and nil when it is not a sequence.
func boundsOf(v any) (lo, hi any) {
	seq, ok := types.Sequence(v)
	if !ok {
		return v, nil
	}
	if len(seq) > 0 {
		lo = seq[0]
	}
	if len(seq) > 1 {
		hi = seq[1]
	}
	return lo, hi
}
