package queryforge

import (
	"fmt"
	"strings"

	"github.com/queryforge/queryforge/sqlscan"
)

// ValidationReport is the outcome of checking one SQL statement.
//
// Errors mark structural faults that make the statement unusable; Warnings
// flag suspicious but survivable findings and never flip Valid. Formatted
// holds a cosmetic reformatting of the input and is populated whenever the
// text could be tokenized, even when errors follow.
type ValidationReport struct {
	Formatted string
	Errors    []string
	Warnings  []string
	Valid     bool
}

// Validator checks SQL text through a Tokenizer.
type Validator struct {
	tok Tokenizer
}

// NewValidator returns a Validator using the given Tokenizer.
// A nil Tokenizer selects the sqlscan default.
func NewValidator(tok Tokenizer) *Validator {
	if tok == nil {
		tok = sqlscan.New()
	}
	return &Validator{tok: tok}
}

// Query renders the configuration and validates the resulting text.
func (v *Validator) Query(q *Query) ValidationReport {
	return v.SQL(Render(q))
}

// SQL validates statement text.
//
// The checks run in a fixed order: tokenize (failure is fatal and ends the
// run), reformat, statement-kind sanity, parenthesis balance over the token
// stream, quote balance over the raw text, and a SELECT * style check. Valid
// is true when the text tokenized and the parentheses settled at zero.
func (v *Validator) SQL(sql string) ValidationReport {
	report := ValidationReport{Valid: true}

	stmt, err := v.scan(sql)
	if err != nil {
		report.Valid = false
		report.Errors = append(report.Errors, fmt.Sprintf("parse error: %v", err))
		return report
	}

	report.Formatted = stmt.Formatted

	if stmt.Kind != StmtSelect {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("non-SELECT statement detected: %s", stmt.Kind))
	}

	if !parensBalanced(stmt.Tokens) {
		report.Valid = false
		report.Errors = append(report.Errors, "unbalanced parentheses")
	}

	if strings.Count(sql, "'")%2 != 0 {
		report.Warnings = append(report.Warnings, "possibly unterminated single quote")
	}

	lower := strings.ToLower(sql)
	if strings.Contains(lower, "select *") || strings.Contains(lower, "select  *") {
		report.Warnings = append(report.Warnings, "SELECT * used; consider listing fields explicitly")
	}

	return report
}

// scan shields the report from a misbehaving Tokenizer: a panic surfaces as
// an ordinary scan error instead of unwinding through the caller.
func (v *Validator) scan(sql string) (stmt *TokenizedStatement, err error) {
	defer func() {
		if r := recover(); r != nil {
			stmt, err = nil, fmt.Errorf("tokenizer panicked: %v", r)
		}
	}()
	return v.tok.Scan(sql)
}

// parensBalanced walks the token stream keeping a running count of
// parenthesis punctuation. The walk stops at the first negative excursion;
// either that or a nonzero final count reports imbalance.
func parensBalanced(toks []Token) bool {
	count := 0
	for _, t := range toks {
		switch {
		case t.IsPunct("("):
			count++
		case t.IsPunct(")"):
			count--
		}
		if count < 0 {
			return false
		}
	}
	return count == 0
}

// Validate renders the configuration and checks the result with the default
// tokenizer.
func Validate(q *Query) ValidationReport {
	return NewValidator(nil).Query(q)
}

// ValidateSQL checks statement text with the default tokenizer.
func ValidateSQL(sql string) ValidationReport {
	return NewValidator(nil).SQL(sql)
}
