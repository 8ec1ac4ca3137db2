package types

// Query is the mutable aggregate holding all configuration for one SELECT
// statement. Populate it through the Add*/Set* operations only; external
// code must not reach into the collections.
//
// Two ordering invariants are load-bearing:
//
//   - Tables[0] is the FROM driving table. Nothing marks it; insertion
//     order decides.
//   - Each filter's Logic describes its link to the predecessor condition,
//     so reordering Filters changes meaning.
//
// Limit and Offset use 0 to mean unset: a LIMIT clause is emitted only for
// a positive limit, and OFFSET only alongside it for a positive offset.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type Query struct {
	Tables          []TableReference
	Joins           []JoinSpec
	Filters         []FilterCondition
	CaseWhens       []CaseWhenSpec
	WindowFunctions []WindowFunctionSpec
	OrderBys        []SortSpec
	GroupBy         *GroupBySpec
	Distinct        bool
	Limit           int
	Offset          int
}

// NewQuery returns an empty aggregate.
func NewQuery() *Query {
	return &Query{}
}

// AddTable appends a table reference and returns it. No input is rejected:
// malformed names or duplicate aliases surface downstream, not here.
func (q *Query) AddTable(name, alias string, fields []string) TableReference {
	t := TableReference{Name: name, Alias: alias, Fields: fields}
	q.Tables = append(q.Tables, t)
	return t
}

// AddJoin appends a join and, as a side effect, appends the right-hand
// table to the table list.
func (q *Query) AddJoin(leftAlias, rightTable, rightAlias, leftField, rightField string, kind JoinKind, rightFields []string) JoinSpec {
	right := TableReference{Name: rightTable, Alias: rightAlias, Fields: rightFields}
	q.Tables = append(q.Tables, right)

	j := JoinSpec{
		LeftAlias:  leftAlias,
		Right:      right,
		Kind:       kind,
		LeftField:  leftField,
		RightField: rightField,
	}
	q.Joins = append(q.Joins, j)
	return j
}

// AddFilter appends a filter condition. The value is not checked against
// the operator's arity here; rendering consumes or ignores it per operator.
func (q *Query) AddFilter(tableAlias, field string, op FilterOperator, value any, logic LogicOperator) FilterCondition {
	f := FilterCondition{
		TableAlias: tableAlias,
		Field:      field,
		Operator:   op,
		Value:      value,
		Logic:      logic,
	}
	q.Filters = append(q.Filters, f)
	return f
}

// AddCaseWhen appends a CASE expression to the select list.
func (q *Query) AddCaseWhen(alias string, branches []CaseBranch, elseValue any) CaseWhenSpec {
	c := CaseWhenSpec{Alias: alias, Branches: branches, Else: elseValue}
	q.CaseWhens = append(q.CaseWhens, c)
	return c
}

// AddWindowFunction appends a window-function expression to the select list.
func (q *Query) AddWindowFunction(function, tableAlias, field string, partitionBy []string, orderBy []SortSpec, alias string) WindowFunctionSpec {
	w := WindowFunctionSpec{
		Function:    function,
		TableAlias:  tableAlias,
		Field:       field,
		PartitionBy: partitionBy,
		OrderBy:     orderBy,
		Alias:       alias,
	}
	q.WindowFunctions = append(q.WindowFunctions, w)
	return w
}

// SetGroupBy replaces the grouping specification.
func (q *Query) SetGroupBy(fields []string, having []FilterCondition) {
	q.GroupBy = &GroupBySpec{Fields: fields, Having: having}
}

// AddOrderBy appends a sort and returns it.
func (q *Query) AddOrderBy(tableAlias, field string, dir Direction) SortSpec {
	s := SortSpec{TableAlias: tableAlias, Field: field, Direction: dir}
	q.OrderBys = append(q.OrderBys, s)
	return s
}

// SetLimit sets row limiting. Zero means unset for both values.
func (q *Query) SetLimit(limit, offset int) {
	q.Limit = limit
	q.Offset = offset
}

// SetDistinct toggles SELECT DISTINCT.
func (q *Query) SetDistinct(on bool) {
	q.Distinct = on
}
