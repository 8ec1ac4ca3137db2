package types

// TableReference names a table, the alias used to address it everywhere else
// in the query, and the fields selected from it. Field order is preserved and
// becomes output column order. Alias uniqueness across a query is the
// caller's responsibility; nothing here enforces it.
type TableReference struct {
	Name   string
	Alias  string
	Fields []string
}

// QualifiedFields returns the selected fields prefixed with the table alias,
// in selection order.
func (t TableReference) QualifiedFields() []string {
	qualified := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		qualified[i] = t.Alias + "." + f
	}
	return qualified
}
