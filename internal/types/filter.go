package types

// FilterCondition is one predicate over an alias-qualified field. Logic
// describes how the condition combines with the PREVIOUS condition in
// sequence; the first condition's Logic is stored and serialized but ignored
// when rendering a WHERE clause.
//
// Value is untyped on purpose: any shape is accepted at mutation time and
// interpreted per the operator's rules at render time. Sequences are
// expressed as []any.
type FilterCondition struct {
	TableAlias string
	Field      string
	Operator   FilterOperator
	Value      any
	Logic      LogicOperator
}

// QualifiedField returns the alias-qualified field the condition applies to.
func (f FilterCondition) QualifiedField() string {
	return f.TableAlias + "." + f.Field
}
