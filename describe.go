package queryforge

import (
	"fmt"
	"strings"

	"github.com/queryforge/queryforge/internal/render"
	"github.com/queryforge/queryforge/internal/types"
)

// operatorPhrase gives each filter operator a human reading for narrative
// output. Unknown operators fall back to their raw name.
var operatorPhrase = map[FilterOperator]string{
	Equals:       "equals",
	NotEquals:    "does not equal",
	GreaterThan:  "greater than",
	LessThan:     "less than",
	GreaterEqual: "greater than or equal to",
	LessEqual:    "less than or equal to",
	In:           "in",
	NotIn:        "not in",
	Like:         "contains",
	NotLike:      "does not contain",
	IsNull:       "is null",
	IsNotNull:    "is not null",
	Between:      "between",
	Regexp:       "matches pattern",
}

// joinPhrase gives each join kind a human reading.
var joinPhrase = map[JoinKind]string{
	InnerJoin:     "inner joined",
	LeftJoin:      "left joined",
	RightJoin:     "right joined",
	FullOuterJoin: "full outer joined",
}

func phraseFor(op FilterOperator) string {
	if p, ok := operatorPhrase[op]; ok {
		return p
	}
	return string(op)
}

func joinPhraseFor(kind JoinKind) string {
	if p, ok := joinPhrase[kind]; ok {
		return p
	}
	return string(kind)
}

func directionWord(d Direction) string {
	if d == Ascending {
		return "ascending"
	}
	return "descending"
}

// Describe turns the configuration into a prose summary of query intent.
//
// Sections appear in a fixed order (intent, primary table, joins, filters,
// grouping, conditional columns, window functions, sort, row limit); a
// section whose source collection is empty is omitted along with its
// separators. The text derives from the configuration alone, never from
// rendered SQL, and always ends with a period. An empty configuration
// yields "Query the data."
func Describe(q *Query) string {
	var parts []string

	if q.Distinct {
		parts = append(parts, "Query the deduplicated data")
	} else {
		parts = append(parts, "Query the data")
	}

	if len(q.Tables) > 0 {
		main := q.Tables[0]
		parts = append(parts, fmt.Sprintf(", from the **%s** table", main.Name))
		if len(main.Fields) > 0 {
			parts = append(parts, fmt.Sprintf(" (fields: %s)", strings.Join(main.Fields, ", ")))
		}
	}

	if len(q.Joins) > 0 {
		items := make([]string, 0, len(q.Joins))
		for _, j := range q.Joins {
			items = append(items, fmt.Sprintf("%s with the **%s** table (ON %s.%s = %s.%s)",
				joinPhraseFor(j.Kind), j.Right.Name,
				j.LeftAlias, j.LeftField, j.Right.Alias, j.RightField))
		}
		parts = append(parts, ", "+strings.Join(items, ", "))
	}

	if len(q.Filters) > 0 {
		parts = append(parts, ".\n\n**Filters**:")
		items := make([]string, 0, len(q.Filters))
		for i, f := range q.Filters {
			logic := ""
			if i > 0 {
				logic = fmt.Sprintf(" **%s** ", f.Logic)
			}
			item := logic + f.QualifiedField() + " " + phraseFor(f.Operator)
			if v := narrativeValue(f.Value); v != "" {
				item += " " + v
			}
			items = append(items, item)
		}
		parts = append(parts, "\n- "+strings.Join(items, "\n- "))
	}

	if q.GroupBy != nil {
		parts = append(parts, fmt.Sprintf("\n\n**Grouping**: grouped by %s",
			strings.Join(q.GroupBy.Fields, ", ")))
		if len(q.GroupBy.Having) > 0 {
			parts = append(parts, ", applying HAVING conditions")
		}
	}

	if len(q.CaseWhens) > 0 {
		parts = append(parts, "\n\n**Conditional columns**:")
		for _, c := range q.CaseWhens {
			parts = append(parts, fmt.Sprintf("\n- %s (%d conditional branches)", c.Alias, len(c.Branches)))
		}
	}

	if len(q.WindowFunctions) > 0 {
		parts = append(parts, "\n\n**Window functions**:")
		for _, w := range q.WindowFunctions {
			parts = append(parts, fmt.Sprintf("\n- %s: %s", w.Alias, w.Function))
			if len(w.PartitionBy) > 0 {
				parts = append(parts, " PARTITION BY "+strings.Join(w.PartitionBy, ", "))
			}
		}
	}

	if len(q.OrderBys) > 0 {
		items := make([]string, 0, len(q.OrderBys))
		for _, s := range q.OrderBys {
			items = append(items, fmt.Sprintf("%s.%s %s", s.TableAlias, s.Field, directionWord(s.Direction)))
		}
		parts = append(parts, "\n\n**Sort**: by "+strings.Join(items, ", "))
	}

	if q.Limit > 0 {
		text := fmt.Sprintf("\n\n**Row limit**: return %d rows", q.Limit)
		if q.Offset > 0 {
			text += fmt.Sprintf(" (skipping the first %d)", q.Offset)
		}
		parts = append(parts, text)
	}

	result := strings.Join(parts, "")
	if !strings.HasSuffix(result, ".") {
		result += "."
	}
	return result
}

// Requirements turns the configuration into a requirements transcript: the
// same information as Describe, phrased as instructions for producing the
// query rather than a description of it. Section order and omission rules
// match Describe; the header and footer lines are always present.
func Requirements(q *Query) string {
	var parts []string

	parts = append(parts, "I need a SQL query with the following requirements:\n")

	parts = append(parts, "**Data sources**:")
	for i, t := range q.Tables {
		if i == 0 {
			parts = append(parts, fmt.Sprintf("\n- Primary table: %s (alias: %s)", t.Name, t.Alias))
		} else {
			parts = append(parts, fmt.Sprintf("\n- Related table: %s (alias: %s)", t.Name, t.Alias))
		}
		if len(t.Fields) > 0 {
			parts = append(parts, "\n  Required fields: "+strings.Join(t.Fields, ", "))
		}
	}

	if len(q.Joins) > 0 {
		parts = append(parts, "\n\n**Table relationships**:")
		for _, j := range q.Joins {
			parts = append(parts, fmt.Sprintf("\n- table %s %s with table %s\n  Join condition: %s.%s = %s.%s",
				j.LeftAlias, joinPhraseFor(j.Kind), j.Right.Alias,
				j.LeftAlias, j.LeftField, j.Right.Alias, j.RightField))
		}
	}

	if len(q.Filters) > 0 {
		parts = append(parts, "\n\n**Filters**:")
		for i, f := range q.Filters {
			logic := ""
			if i > 0 {
				logic = string(f.Logic) + " "
			}
			item := "\n- " + logic + f.QualifiedField() + " " + phraseFor(f.Operator)
			if v := requirementValue(f); v != "" {
				item += " " + v
			}
			parts = append(parts, item)
		}
	}

	if q.GroupBy != nil {
		parts = append(parts, "\n\n**Grouping**: group the results by "+strings.Join(q.GroupBy.Fields, ", "))
	}

	if len(q.CaseWhens) > 0 {
		parts = append(parts, "\n\n**Conditional columns**:")
		for _, c := range q.CaseWhens {
			parts = append(parts, fmt.Sprintf("\n- Create a column %s assigned by these rules:", c.Alias))
			for i, b := range c.Branches {
				parts = append(parts, fmt.Sprintf("\n  Rule %d: when %s, the value is %s",
					i+1, render.Predicate(b.When), render.Bare(b.Then)))
			}
			if truthy(c.Else) {
				parts = append(parts, "\n  Otherwise the value is "+render.Bare(c.Else))
			}
		}
	}

	if len(q.WindowFunctions) > 0 {
		parts = append(parts, "\n\n**Window calculations**:")
		for _, w := range q.WindowFunctions {
			desc := "\n- Compute " + w.Function
			if w.Field != "" {
				desc += "(" + w.Field + ")"
			}
			desc += ", naming the result " + w.Alias
			if len(w.PartitionBy) > 0 {
				desc += "\n  Partitioned by " + strings.Join(w.PartitionBy, ", ")
			}
			if len(w.OrderBy) > 0 {
				items := make([]string, 0, len(w.OrderBy))
				for _, s := range w.OrderBy {
					items = append(items, s.Field+" "+directionWord(s.Direction))
				}
				desc += "\n  Ordered by " + strings.Join(items, ", ")
			}
			parts = append(parts, desc)
		}
	}

	if len(q.OrderBys) > 0 {
		parts = append(parts, "\n\n**Result ordering**:")
		items := make([]string, 0, len(q.OrderBys))
		for _, s := range q.OrderBys {
			items = append(items, fmt.Sprintf("%s.%s %s", s.TableAlias, s.Field, directionWord(s.Direction)))
		}
		parts = append(parts, "\n- By "+strings.Join(items, ", "))
	}

	if q.Distinct {
		parts = append(parts, "\n\n**Deduplication**: remove duplicate rows from the results")
	}

	if q.Limit > 0 {
		text := fmt.Sprintf("\n\n**Row limit**: return only %d rows", q.Limit)
		if q.Offset > 0 {
			text += fmt.Sprintf(", skipping the first %d", q.Offset)
		}
		parts = append(parts, text)
	}

	parts = append(parts, "\n\nGenerate the SQL query for these requirements.")

	return strings.Join(parts, "")
}

// narrativeValue formats a filter value for Describe: sequences bracketed,
// absent values empty, scalars bare.
func narrativeValue(v any) string {
	if v == nil {
		return ""
	}
	if seq, ok := types.Sequence(v); ok {
		items := make([]string, 0, len(seq))
		for _, e := range seq {
			items = append(items, render.Bare(e))
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return render.Bare(v)
}

// requirementValue formats a filter value for Requirements: BETWEEN reads
// "v0 and v1", other sequences join bare with commas, scalars stay bare.
func requirementValue(f FilterCondition) string {
	if f.Value == nil {
		return ""
	}
	if seq, ok := types.Sequence(f.Value); ok {
		if f.Operator == Between && len(seq) >= 2 {
			return render.Bare(seq[0]) + " and " + render.Bare(seq[1])
		}
		items := make([]string, 0, len(seq))
		for _, e := range seq {
			items = append(items, render.Bare(e))
		}
		return strings.Join(items, ", ")
	}
	return render.Bare(f.Value)
}

// truthy mirrors the loose presence test used for optional narrative values:
// nil, empty strings, zero numbers, and false all read as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case float32:
		return t != 0
	default:
		return true
	}
}
