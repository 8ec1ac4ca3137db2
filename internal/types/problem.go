package types

// ProblemKind classifies a consistency problem found by the pre-render
// check.
type ProblemKind string

const (
	ProblemDuplicateAlias ProblemKind = "duplicate_alias"
	ProblemUnknownAlias   ProblemKind = "unknown_alias"
	ProblemOperandArity   ProblemKind = "operand_arity"
	ProblemEmptySelect    ProblemKind = "empty_select"
	ProblemNoDrivingTable ProblemKind = "no_driving_table"
	ProblemNegativeRange  ProblemKind = "negative_range"
)

// Problem is one consistency finding. Problems never block rendering; they
// exist so callers can surface configuration gaps the mutation operations
// deliberately accept.
type Problem struct {
	Kind    ProblemKind
	Subject string
	Message string
}

func (p Problem) String() string {
	return string(p.Kind) + ": " + p.Message
}
