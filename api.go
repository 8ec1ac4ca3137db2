// Package queryforge builds SQL SELECT statements from a declarative
// configuration model.
//
// A Query is an ordered collection of tables, joins, filters, conditional
// columns, window functions, grouping, ordering, and limit settings. Mutation
// operations append to those collections without validation; Render walks them
// in a single deterministic pass and produces the statement text. The same
// configuration always renders the same bytes.
//
// # Basic Usage
//
//	q := queryforge.NewQuery()
//	products := q.AddTable("products", "p", []string{"product_id", "product_name", "price"})
//	q.AddJoin(products.Alias, "categories", "c", "category_id", "category_id",
//		queryforge.LeftJoin, []string{"category_name"})
//	q.AddFilter("p", "price", queryforge.GreaterThan, 100, queryforge.And)
//	q.AddOrderBy("p", "price", queryforge.Descending)
//
//	sql := queryforge.Render(q)
//
// # Checking the Output
//
// Render never fails: incomplete configurations degrade to incomplete SQL.
// Two complementary checks cover the gap. Lint inspects the configuration
// itself (unknown aliases, duplicate aliases, operand arity). Validate
// tokenizes the rendered text and reports structural problems such as
// unbalanced parentheses or a non-SELECT statement, alongside a reformatted
// copy of the statement:
//
//	report := queryforge.Validate(q)
//	if !report.Valid {
//		// report.Errors explains what broke
//	}
//
// # Literals
//
// Values are interpolated directly into the statement text. Strings are
// single-quoted without escaping, so a value containing a quote produces SQL
// that will not survive a round trip. The output is a reviewable artifact,
// not a parameterized query; treat value provenance accordingly.
//
// # Persistence
//
// Snapshot captures a Query as a Document that round-trips through JSON or
// YAML and rebuilds via Build. TemplateStore implementations under providers/
// persist named documents on the filesystem or in SQLite.
package queryforge

import "github.com/queryforge/queryforge/internal/types"

// Query is the configuration aggregate all operations act on.
// This is re-exported from internal/types for use by consumers.
type Query = types.Query

// TableReference names a table, its alias, and the fields selected from it.
type TableReference = types.TableReference

// JoinSpec links a previously added table to a new one.
type JoinSpec = types.JoinSpec

// FilterCondition is one predicate in WHERE, HAVING, or a CASE branch.
type FilterCondition = types.FilterCondition

// SortSpec is one ORDER BY term.
type SortSpec = types.SortSpec

// WindowFunctionSpec describes one windowed computation in the select list.
type WindowFunctionSpec = types.WindowFunctionSpec

// CaseWhenSpec describes one CASE expression column.
type CaseWhenSpec = types.CaseWhenSpec

// CaseBranch is one WHEN/THEN pair inside a CaseWhenSpec.
type CaseBranch = types.CaseBranch

// GroupBySpec holds GROUP BY fields and HAVING conditions.
type GroupBySpec = types.GroupBySpec

// FilterOperator identifies a comparison in a FilterCondition.
type FilterOperator = types.FilterOperator

// Re-export filter operator constants for public API.
const (
	Equals       = types.Equals
	NotEquals    = types.NotEquals
	GreaterThan  = types.GreaterThan
	GreaterEqual = types.GreaterEqual
	LessThan     = types.LessThan
	LessEqual    = types.LessEqual
	Like         = types.Like
	NotLike      = types.NotLike
	In           = types.In
	NotIn        = types.NotIn
	IsNull       = types.IsNull
	IsNotNull    = types.IsNotNull
	Between      = types.Between
	Regexp       = types.Regexp
)

// LogicOperator links a filter to the one before it.
type LogicOperator = types.LogicOperator

// Re-export logic operator constants for public API.
const (
	And = types.And
	Or  = types.Or
)

// JoinKind identifies how a join combines rows.
type JoinKind = types.JoinKind

// Re-export join kind constants for public API.
const (
	InnerJoin     = types.InnerJoin
	LeftJoin      = types.LeftJoin
	RightJoin     = types.RightJoin
	FullOuterJoin = types.FullOuterJoin
)

// Direction is a sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	Ascending  = types.Ascending
	Descending = types.Descending
)

// OperandArity describes the value shape a FilterOperator consumes.
type OperandArity = types.OperandArity

// Re-export arity constants for public API.
const (
	ArityNone     = types.ArityNone
	ArityOne      = types.ArityOne
	ArityPair     = types.ArityPair
	AritySequence = types.AritySequence
)

// Problem is one configuration defect reported by Lint.
type Problem = types.Problem

// ProblemKind classifies a Problem.
type ProblemKind = types.ProblemKind

// Re-export problem kind constants for public API.
const (
	ProblemDuplicateAlias = types.ProblemDuplicateAlias
	ProblemUnknownAlias   = types.ProblemUnknownAlias
	ProblemOperandArity   = types.ProblemOperandArity
	ProblemEmptySelect    = types.ProblemEmptySelect
	ProblemNoDrivingTable = types.ProblemNoDrivingTable
	ProblemNegativeRange  = types.ProblemNegativeRange
)

// Token is one lexical unit of a scanned SQL statement.
type Token = types.Token

// TokenKind classifies a Token.
type TokenKind = types.TokenKind

// Re-export token kind constants for public API.
const (
	TokenKeyword    = types.TokenKeyword
	TokenIdentifier = types.TokenIdentifier
	TokenNumber     = types.TokenNumber
	TokenString     = types.TokenString
	TokenOperator   = types.TokenOperator
	TokenPunct      = types.TokenPunct
	TokenComment    = types.TokenComment
)

// StatementKind is the statement class a tokenizer detected.
type StatementKind = types.StatementKind

// Re-export statement kind constants for public API.
const (
	StmtSelect  = types.StmtSelect
	StmtInsert  = types.StmtInsert
	StmtUpdate  = types.StmtUpdate
	StmtDelete  = types.StmtDelete
	StmtCreate  = types.StmtCreate
	StmtDrop    = types.StmtDrop
	StmtAlter   = types.StmtAlter
	StmtWith    = types.StmtWith
	StmtUnknown = types.StmtUnknown
)

// TokenizedStatement is the result of scanning statement text.
type TokenizedStatement = types.TokenizedStatement

// NewQuery returns an empty configuration.
func NewQuery() *Query {
	return types.NewQuery()
}

// ParseFilterOperator converts an enum name like "EQUALS" to a FilterOperator.
func ParseFilterOperator(name string) (FilterOperator, error) {
	return types.ParseFilterOperator(name)
}

// MustFilterOperator is ParseFilterOperator that panics on unknown names.
func MustFilterOperator(name string) FilterOperator {
	return types.MustFilterOperator(name)
}

// ParseLogicOperator converts "AND" or "OR" to a LogicOperator.
func ParseLogicOperator(name string) (LogicOperator, error) {
	return types.ParseLogicOperator(name)
}

// ParseJoinKind converts an enum name like "LEFT" to a JoinKind.
func ParseJoinKind(name string) (JoinKind, error) {
	return types.ParseJoinKind(name)
}

// MustJoinKind is ParseJoinKind that panics on unknown names.
func MustJoinKind(name string) JoinKind {
	return types.MustJoinKind(name)
}

// ParseDirection converts "ASC" or "DESC" to a Direction.
func ParseDirection(name string) (Direction, error) {
	return types.ParseDirection(name)
}
