// Package sqlscan is the default tokenizer/formatter collaborator for SQL
// validation. It flattens SQL text into a token stream, labels the coarse
// statement kind, and produces a cosmetically reformatted rendition with
// uppercase keywords.
//
// The scanner is deliberately lenient: unterminated strings and comments
// run to end of input instead of failing, so downstream heuristics (odd
// quote counts) stay warnings rather than hard errors. Scanning fails only
// when there is nothing to scan.
package sqlscan

import (
	"errors"
	"strings"
	"text/scanner"

	"github.com/queryforge/queryforge/internal/types"
)

// ErrEmptyStatement is returned when the input contains no tokens.
var ErrEmptyStatement = errors.New("sqlscan: empty statement")

// Scanner tokenizes and reformats SQL text. The zero value is usable; it
// holds no state across calls.
type Scanner struct{}

// New returns a Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan tokenizes the text and returns the flattened stream, the detected
// statement kind, and the reformatted rendition.
func (sc *Scanner) Scan(sql string) (*types.TokenizedStatement, error) {
	tokens := scan(sql)
	if len(tokens) == 0 {
		return nil, ErrEmptyStatement
	}

	return &types.TokenizedStatement{
		Formatted: format(tokens),
		Kind:      detectKind(tokens),
		Tokens:    tokens,
	}, nil
}

// scan walks the text with a text/scanner tuned for SQL: identifiers may
// contain underscores, single-quoted strings and both comment styles are
// consumed by hand, and scanner-level errors are swallowed so malformed
// input still yields a stream.
func scan(sql string) []types.Token {
	var s scanner.Scanner
	s.Init(strings.NewReader(sql))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats
	s.Error = func(*scanner.Scanner, string) {}
	s.IsIdentRune = func(ch rune, i int) bool {
		if ch == '_' {
			return true
		}
		if ch >= '0' && ch <= '9' {
			return i > 0
		}
		return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch > 0x7f
	}

	var tokens []types.Token
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		switch tok {
		case scanner.Ident:
			text := s.TokenText()
			if keywords[strings.ToUpper(text)] {
				tokens = append(tokens, types.Token{Kind: types.TokenKeyword, Text: strings.ToUpper(text)})
			} else {
				tokens = append(tokens, types.Token{Kind: types.TokenIdentifier, Text: text})
			}
		case scanner.Int, scanner.Float:
			tokens = append(tokens, types.Token{Kind: types.TokenNumber, Text: s.TokenText()})
		case '\'':
			tokens = append(tokens, types.Token{Kind: types.TokenString, Text: scanUntil(&s, '\'')})
		case '"':
			tokens = append(tokens, types.Token{Kind: types.TokenIdentifier, Text: scanUntil(&s, '"')})
		case '(', ')', ',', ';', '.':
			tokens = append(tokens, types.Token{Kind: types.TokenPunct, Text: string(tok)})
		case '-':
			if s.Peek() == '-' {
				tokens = append(tokens, types.Token{Kind: types.TokenComment, Text: scanLineComment(&s)})
			} else {
				tokens = append(tokens, types.Token{Kind: types.TokenOperator, Text: "-"})
			}
		case '/':
			if s.Peek() == '*' {
				tokens = append(tokens, types.Token{Kind: types.TokenComment, Text: scanBlockComment(&s)})
			} else {
				tokens = append(tokens, types.Token{Kind: types.TokenOperator, Text: "/"})
			}
		case '!', '<', '>', '|':
			tokens = append(tokens, types.Token{Kind: types.TokenOperator, Text: scanOperator(&s, tok)})
		default:
			tokens = append(tokens, types.Token{Kind: types.TokenOperator, Text: s.TokenText()})
		}
	}
	return tokens
}

// scanUntil consumes runes up to the closing delimiter or end of input and
// returns the enclosed text. The delimiter is not part of the result.
func scanUntil(s *scanner.Scanner, delim rune) string {
	var sb strings.Builder
	for {
		ch := s.Next()
		if ch == scanner.EOF || ch == delim {
			return sb.String()
		}
		sb.WriteRune(ch)
	}
}

// scanLineComment consumes the rest of the line after a leading "-". The
// second dash is still pending in the scanner.
func scanLineComment(s *scanner.Scanner) string {
	var sb strings.Builder
	sb.WriteString("-")
	for {
		ch := s.Next()
		if ch == scanner.EOF || ch == '\n' {
			return sb.String()
		}
		sb.WriteRune(ch)
	}
}

// scanBlockComment consumes through the closing "*/" or end of input. The
// leading "/" has been scanned; the "*" is pending.
func scanBlockComment(s *scanner.Scanner) string {
	var sb strings.Builder
	sb.WriteString("/")
	var prev rune
	for {
		ch := s.Next()
		if ch == scanner.EOF {
			return sb.String()
		}
		sb.WriteRune(ch)
		if prev == '*' && ch == '/' {
			return sb.String()
		}
		prev = ch
	}
}

// scanOperator extends two-character operators: != <= >= <> ||.
func scanOperator(s *scanner.Scanner, first rune) string {
	next := s.Peek()
	switch {
	case first == '!' && next == '=',
		first == '<' && next == '=',
		first == '<' && next == '>',
		first == '>' && next == '=',
		first == '|' && next == '|':
		s.Next()
		return string(first) + string(next)
	default:
		return string(first)
	}
}

// detectKind labels the statement by its first keyword token. Comments are
// skipped; anything else up front means the kind is unknown.
func detectKind(tokens []types.Token) types.StatementKind {
	for _, t := range tokens {
		switch t.Kind {
		case types.TokenComment:
			continue
		case types.TokenKeyword:
			if kind, ok := statementKinds[t.Text]; ok {
				return kind
			}
			return types.StmtUnknown
		default:
			return types.StmtUnknown
		}
	}
	return types.StmtUnknown
}
