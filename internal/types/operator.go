package types

import "fmt"

// FilterOperator identifies a comparison in a filter predicate. The constant
// value is the operator's enumeration name as it appears in serialized
// documents; SQL() yields the token written into rendered text.
type FilterOperator string

const (
	Equals       FilterOperator = "EQUALS"
	NotEquals    FilterOperator = "NOT_EQUALS"
	GreaterThan  FilterOperator = "GREATER"
	LessThan     FilterOperator = "LESS"
	GreaterEqual FilterOperator = "GREATER_EQUAL"
	LessEqual    FilterOperator = "LESS_EQUAL"
	In           FilterOperator = "IN"
	NotIn        FilterOperator = "NOT_IN"
	Like         FilterOperator = "LIKE"
	NotLike      FilterOperator = "NOT_LIKE"
	Between      FilterOperator = "BETWEEN"
	IsNull       FilterOperator = "IS_NULL"
	IsNotNull    FilterOperator = "IS_NOT_NULL"
	Regexp       FilterOperator = "REGEXP"
)

var operatorSQL = map[FilterOperator]string{
	Equals:       "=",
	NotEquals:    "!=",
	GreaterThan:  ">",
	LessThan:     "<",
	GreaterEqual: ">=",
	LessEqual:    "<=",
	In:           "IN",
	NotIn:        "NOT IN",
	Like:         "LIKE",
	NotLike:      "NOT LIKE",
	Between:      "BETWEEN",
	IsNull:       "IS NULL",
	IsNotNull:    "IS NOT NULL",
	Regexp:       "REGEXP",
}

// OperandArity describes how many operand values an operator consumes.
type OperandArity int

const (
	// ArityNone takes no operand (IS NULL, IS NOT NULL).
	ArityNone OperandArity = iota
	// ArityOne takes exactly one scalar operand.
	ArityOne
	// ArityPair takes exactly the first two elements of a sequence (BETWEEN).
	ArityPair
	// AritySequence takes a sequence of one or more values (IN, NOT IN).
	AritySequence
)

// SQL returns the SQL token for the operator, or the raw name if the
// operator is not one of the closed set.
func (op FilterOperator) SQL() string {
	if tok, ok := operatorSQL[op]; ok {
		return tok
	}
	return string(op)
}

// Valid reports whether op is a member of the closed operator set.
func (op FilterOperator) Valid() bool {
	_, ok := operatorSQL[op]
	return ok
}

// Arity returns the operand arity for the operator. Arity is advisory:
// nothing checks it at mutation time, and rendering consumes whatever value
// is present per the operator's rules.
func (op FilterOperator) Arity() OperandArity {
	switch op {
	case IsNull, IsNotNull:
		return ArityNone
	case Between:
		return ArityPair
	case In, NotIn:
		return AritySequence
	default:
		return ArityOne
	}
}

// ParseFilterOperator converts an enumeration name into a FilterOperator.
func ParseFilterOperator(name string) (FilterOperator, error) {
	op := FilterOperator(name)
	if !op.Valid() {
		return "", fmt.Errorf("unknown filter operator: %q", name)
	}
	return op, nil
}

// MustFilterOperator is ParseFilterOperator that panics on unknown names.
func MustFilterOperator(name string) FilterOperator {
	op, err := ParseFilterOperator(name)
	if err != nil {
		panic(err)
	}
	return op
}

// LogicOperator joins a filter condition to its predecessor in sequence.
type LogicOperator string

const (
	And LogicOperator = "AND"
	Or  LogicOperator = "OR"
)

// Valid reports whether l is AND or OR.
func (l LogicOperator) Valid() bool {
	return l == And || l == Or
}

// ParseLogicOperator converts an enumeration name into a LogicOperator.
func ParseLogicOperator(name string) (LogicOperator, error) {
	l := LogicOperator(name)
	if !l.Valid() {
		return "", fmt.Errorf("unknown logic operator: %q", name)
	}
	return l, nil
}
