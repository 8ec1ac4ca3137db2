package types

// TokenKind classifies one token of scanned SQL text.
type TokenKind int

const (
	TokenKeyword TokenKind = iota
	TokenIdentifier
	TokenNumber
	TokenString
	TokenOperator
	TokenPunct
	TokenComment
)

// Token is one element of a flattened token stream.
type Token struct {
	Kind TokenKind
	Text string
}

// IsPunct reports whether the token is the given punctuation literal. The
// validator uses it to spot parenthesis tokens.
func (t Token) IsPunct(lit string) bool {
	return t.Kind == TokenPunct && t.Text == lit
}

// StatementKind is the coarse statement classification a tokenizer reports.
type StatementKind string

const (
	StmtSelect  StatementKind = "SELECT"
	StmtInsert  StatementKind = "INSERT"
	StmtUpdate  StatementKind = "UPDATE"
	StmtDelete  StatementKind = "DELETE"
	StmtCreate  StatementKind = "CREATE"
	StmtDrop    StatementKind = "DROP"
	StmtAlter   StatementKind = "ALTER"
	StmtWith    StatementKind = "WITH"
	StmtUnknown StatementKind = "UNKNOWN"
)

// TokenizedStatement is everything a tokenizer collaborator reports for one
// piece of SQL text: a cosmetically reformatted rendition, the coarse
// statement kind, and the flattened token stream (whitespace omitted).
type TokenizedStatement struct {
	Formatted string
	Kind      StatementKind
	Tokens    []Token
}
