package types

// CaseBranch pairs a predicate with the value produced when it matches.
type CaseBranch struct {
	When FilterCondition
	Then any
}

// CaseWhenSpec adds a CASE expression to the select list. Branches evaluate
// top to bottom with first-match-wins semantics; rendering preserves their
// stored order literally. Else is absent when nil; an empty string still
// renders an ELSE '' arm.
type CaseWhenSpec struct {
	Alias    string
	Branches []CaseBranch
	Else     any
}
