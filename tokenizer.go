package queryforge

// Tokenizer defines the interface for breaking SQL text into classified
// tokens. Implementations report the detected statement kind and a
// reformatted copy of the text alongside the token stream.
//
// The default implementation lives in package sqlscan; Validator falls back
// to it when constructed with a nil Tokenizer.
type Tokenizer interface {
	// Scan tokenizes statement text. It returns an error only when the
	// text cannot be scanned at all; lexical oddities such as an
	// unterminated string degrade into tokens rather than failing.
	Scan(sql string) (*TokenizedStatement, error)
}
