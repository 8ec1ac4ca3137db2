package queryforge_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/queryforge/queryforge"
)

func TestValidateSQL_CleanSelect(t *testing.T) {
	report := queryforge.ValidateSQL("SELECT name FROM users WHERE age > 21;")

	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
	if len(report.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", report.Warnings)
	}

	expected := "SELECT name\nFROM users\nWHERE age > 21;"
	if report.Formatted != expected {
		t.Errorf("Expected formatted:\n%s\nGot:\n%s", expected, report.Formatted)
	}
}

func TestValidate_RenderedQuery(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"user_id", "name"})
	q.AddFilter("u", "age", queryforge.GreaterThan, 21, queryforge.And)

	report := queryforge.Validate(q)
	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
	if report.Formatted == "" {
		t.Error("Expected formatted output")
	}
}

func TestValidate_EmptyQuery(t *testing.T) {
	// An empty configuration still renders scannable text, so validation
	// passes even though the statement selects nothing.
	report := queryforge.Validate(queryforge.NewQuery())

	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", report.Warnings)
	}
}

func TestValidateSQL_Empty(t *testing.T) {
	report := queryforge.ValidateSQL("")

	if report.Valid {
		t.Error("Expected invalid")
	}
	if len(report.Errors) != 1 || !strings.HasPrefix(report.Errors[0], "parse error:") {
		t.Errorf("Expected single parse error, got %v", report.Errors)
	}
	if report.Formatted != "" {
		t.Errorf("Expected empty formatted output, got %q", report.Formatted)
	}
}

func TestValidateSQL_UnbalancedParens(t *testing.T) {
	report := queryforge.ValidateSQL("SELECT x FROM t WHERE id IN (1, 2;")

	if report.Valid {
		t.Error("Expected invalid")
	}
	if len(report.Errors) != 1 || report.Errors[0] != "unbalanced parentheses" {
		t.Errorf("Expected unbalanced parentheses error, got %v", report.Errors)
	}
	if report.Formatted == "" {
		t.Error("Expected formatted output despite the error")
	}
}

func TestValidateSQL_EarlyCloseParen(t *testing.T) {
	// The running count dips negative before recovering, which counts as
	// unbalanced even though opens and closes tally up.
	report := queryforge.ValidateSQL("SELECT a) FROM (t;")

	if report.Valid {
		t.Error("Expected invalid")
	}
	if len(report.Errors) != 1 || report.Errors[0] != "unbalanced parentheses" {
		t.Errorf("Expected unbalanced parentheses error, got %v", report.Errors)
	}
}

func TestValidateSQL_OddQuoteWarning(t *testing.T) {
	report := queryforge.ValidateSQL("SELECT name FROM users WHERE name = 'O'Brien';")

	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 || report.Warnings[0] != "possibly unterminated single quote" {
		t.Errorf("Expected odd quote warning, got %v", report.Warnings)
	}
}

func TestValidate_EmbeddedQuoteSurfacesAsWarning(t *testing.T) {
	// String values interpolate without escaping, so a value containing a
	// quote renders odd-quoted SQL; the validator flags it but does not
	// reject it.
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})
	q.AddFilter("u", "name", queryforge.Equals, "O'Brien", queryforge.And)

	report := queryforge.Validate(q)
	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 || report.Warnings[0] != "possibly unterminated single quote" {
		t.Errorf("Expected odd quote warning, got %v", report.Warnings)
	}
}

func TestValidateSQL_SelectStarWarning(t *testing.T) {
	report := queryforge.ValidateSQL("SELECT * FROM logs;")

	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 || report.Warnings[0] != "SELECT * used; consider listing fields explicitly" {
		t.Errorf("Expected SELECT * warning, got %v", report.Warnings)
	}
}

func TestValidateSQL_NonSelectWarning(t *testing.T) {
	report := queryforge.ValidateSQL("DELETE FROM t;")

	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 || report.Warnings[0] != "non-SELECT statement detected: DELETE" {
		t.Errorf("Expected non-SELECT warning, got %v", report.Warnings)
	}
}

type panicTokenizer struct{}

func (panicTokenizer) Scan(string) (*queryforge.TokenizedStatement, error) {
	panic("boom")
}

func TestValidator_PanickingTokenizer(t *testing.T) {
	v := queryforge.NewValidator(panicTokenizer{})
	report := v.SQL("SELECT 1;")

	if report.Valid {
		t.Error("Expected invalid")
	}
	if len(report.Errors) != 1 || report.Errors[0] != "parse error: tokenizer panicked: boom" {
		t.Errorf("Expected panic to surface as parse error, got %v", report.Errors)
	}
}

type cannedTokenizer struct {
	stmt *queryforge.TokenizedStatement
	err  error
}

func (c cannedTokenizer) Scan(string) (*queryforge.TokenizedStatement, error) {
	return c.stmt, c.err
}

func TestValidator_TokenizerError(t *testing.T) {
	v := queryforge.NewValidator(cannedTokenizer{err: errors.New("bad input")})
	report := v.SQL("SELECT 1;")

	if report.Valid {
		t.Error("Expected invalid")
	}
	if len(report.Errors) != 1 || report.Errors[0] != "parse error: bad input" {
		t.Errorf("Expected wrapped tokenizer error, got %v", report.Errors)
	}
}

func TestValidator_CustomTokenizer(t *testing.T) {
	stmt := &queryforge.TokenizedStatement{
		Formatted: "SELECT 1;",
		Kind:      queryforge.StmtSelect,
		Tokens: []queryforge.Token{
			{Kind: queryforge.TokenKeyword, Text: "SELECT"},
			{Kind: queryforge.TokenNumber, Text: "1"},
			{Kind: queryforge.TokenPunct, Text: ";"},
		},
	}

	v := queryforge.NewValidator(cannedTokenizer{stmt: stmt})
	report := v.SQL("select 1;")

	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
	if report.Formatted != "SELECT 1;" {
		t.Errorf("Expected formatted text from the tokenizer, got %q", report.Formatted)
	}
}

func TestValidator_NilTokenizerUsesDefault(t *testing.T) {
	report := queryforge.NewValidator(nil).SQL("SELECT 1;")
	if !report.Valid {
		t.Fatalf("Expected valid, got errors: %v", report.Errors)
	}
}
