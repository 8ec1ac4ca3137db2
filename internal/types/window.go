package types

// WindowFunctionSpec adds a window-function expression to the select list.
// Field carries the aggregate's argument and stays empty for ranking
// functions such as ROW_NUMBER or RANK. PartitionBy holds alias-qualified
// field strings. An empty Alias suppresses the AS clause.
type WindowFunctionSpec struct {
	Function    string
	TableAlias  string
	Field       string
	PartitionBy []string
	OrderBy     []SortSpec
	Alias       string
}
