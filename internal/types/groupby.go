package types

// GroupBySpec groups results by alias-qualified fields. Having conditions
// are always AND-combined when rendered, regardless of each condition's own
// Logic. A query holds at most one GroupBySpec; setting a new one replaces
// the old.
type GroupBySpec struct {
	Fields []string
	Having []FilterCondition
}
