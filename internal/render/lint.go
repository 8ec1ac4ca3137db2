package render

import (
	"fmt"
	"strings"

	"github.com/queryforge/queryforge/internal/types"
)

// Lint runs the deferred consistency checks the mutation operations skip:
// alias uniqueness, alias references, operand arity, and range sanity.
// Problems are advisory and never block rendering; they come back in a
// stable order (aggregate-level first, then per-collection in insertion
// order).
func Lint(q *types.Query) []types.Problem {
	var problems []types.Problem

	if len(q.Tables) == 0 {
		problems = append(problems, types.Problem{
			Kind:    types.ProblemNoDrivingTable,
			Message: "no tables configured; the FROM clause will be omitted",
		})
	}
	if emptySelectList(q) {
		problems = append(problems, types.Problem{
			Kind:    types.ProblemEmptySelect,
			Message: "select list renders empty: no fields, CASE expressions, or window functions",
		})
	}
	if q.Limit < 0 || q.Offset < 0 {
		problems = append(problems, types.Problem{
			Kind:    types.ProblemNegativeRange,
			Message: fmt.Sprintf("limit/offset must not be negative (limit=%d, offset=%d)", q.Limit, q.Offset),
		})
	}

	aliases := make(map[string]bool, len(q.Tables))
	for _, t := range q.Tables {
		if aliases[t.Alias] {
			problems = append(problems, types.Problem{
				Kind:    types.ProblemDuplicateAlias,
				Subject: t.Alias,
				Message: fmt.Sprintf("alias %q is used by more than one table", t.Alias),
			})
			continue
		}
		aliases[t.Alias] = true
	}

	known := func(alias string) bool { return aliases[alias] }

	for _, j := range q.Joins {
		if !known(j.LeftAlias) {
			problems = append(problems, unknownAlias(j.LeftAlias, "join"))
		}
	}
	for _, f := range q.Filters {
		problems = append(problems, lintCondition(f, "filter", known)...)
	}
	if q.GroupBy != nil {
		for _, field := range q.GroupBy.Fields {
			if p, bad := qualifierProblem(field, "group by", known); bad {
				problems = append(problems, p)
			}
		}
		for _, h := range q.GroupBy.Having {
			problems = append(problems, lintCondition(h, "having", known)...)
		}
	}
	for _, c := range q.CaseWhens {
		for _, b := range c.Branches {
			problems = append(problems, lintCondition(b.When, "case "+c.Alias, known)...)
		}
	}
	for _, w := range q.WindowFunctions {
		if w.Field != "" && !known(w.TableAlias) {
			problems = append(problems, unknownAlias(w.TableAlias, "window function"))
		}
		for _, field := range w.PartitionBy {
			if p, bad := qualifierProblem(field, "partition by", known); bad {
				problems = append(problems, p)
			}
		}
		for _, s := range w.OrderBy {
			if !known(s.TableAlias) {
				problems = append(problems, unknownAlias(s.TableAlias, "window order"))
			}
		}
	}
	for _, s := range q.OrderBys {
		if !known(s.TableAlias) {
			problems = append(problems, unknownAlias(s.TableAlias, "order by"))
		}
	}

	return problems
}

func emptySelectList(q *types.Query) bool {
	for _, t := range q.Tables {
		if len(t.Fields) > 0 {
			return false
		}
	}
	return len(q.CaseWhens) == 0 && len(q.WindowFunctions) == 0
}

func unknownAlias(alias, where string) types.Problem {
	return types.Problem{
		Kind:    types.ProblemUnknownAlias,
		Subject: alias,
		Message: fmt.Sprintf("%s references alias %q, which no table defines", where, alias),
	}
}

// qualifierProblem checks the alias prefix of an "alias.field" string.
// Unqualified strings pass: they render as written.
func qualifierProblem(field, where string, known func(string) bool) (types.Problem, bool) {
	dot := strings.IndexByte(field, '.')
	if dot <= 0 {
		return types.Problem{}, false
	}
	alias := field[:dot]
	if known(alias) {
		return types.Problem{}, false
	}
	return unknownAlias(alias, where), true
}

func lintCondition(f types.FilterCondition, where string, known func(string) bool) []types.Problem {
	var problems []types.Problem

	if !known(f.TableAlias) {
		problems = append(problems, unknownAlias(f.TableAlias, where))
	}

	subject := f.QualifiedField()
	switch f.Operator.Arity() {
	case types.ArityNone:
		if f.Value != nil {
			problems = append(problems, arityProblem(subject, "%s ignores its value", f.Operator))
		}
	case types.ArityPair:
		seq, ok := types.Sequence(f.Value)
		if !ok || len(seq) < 2 {
			problems = append(problems, arityProblem(subject, "%s needs a sequence of at least two values", f.Operator))
		}
	case types.AritySequence:
		seq, ok := types.Sequence(f.Value)
		if !ok || len(seq) == 0 {
			problems = append(problems, arityProblem(subject, "%s needs a non-empty sequence value", f.Operator))
		}
	case types.ArityOne:
		if f.Value == nil {
			problems = append(problems, arityProblem(subject, "%s needs a value", f.Operator))
		}
	}

	return problems
}

func arityProblem(subject, format string, op types.FilterOperator) types.Problem {
	return types.Problem{
		Kind:    types.ProblemOperandArity,
		Subject: subject,
		Message: fmt.Sprintf(format, op),
	}
}
