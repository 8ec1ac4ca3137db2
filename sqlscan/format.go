package sqlscan

import (
	"strings"

	"github.com/queryforge/queryforge/internal/types"
)

// format joins the token stream back into text with normalized spacing:
// keywords uppercased, one clause per line, AND/OR continuations indented
// two spaces. The output is cosmetic; it is never fed back into rendering.
func format(tokens []types.Token) string {
	var sb strings.Builder
	var prev types.Token
	started := false

	for _, t := range tokens {
		sb.WriteString(separator(prev, t, started))

		if t.Kind == types.TokenString {
			sb.WriteString("'")
			sb.WriteString(t.Text)
			sb.WriteString("'")
		} else {
			sb.WriteString(t.Text)
		}

		prev = t
		started = true
	}
	return sb.String()
}

// separator decides what goes between the previous token and the current
// one: nothing, a space, or a line break.
func separator(prev, cur types.Token, started bool) string {
	if !started {
		return ""
	}

	if cur.Kind == types.TokenPunct {
		switch cur.Text {
		case ",", ";", ")", ".":
			return ""
		case "(":
			// Calls stay tight: RANK() but IN (...).
			if prev.Kind == types.TokenIdentifier {
				return ""
			}
			return " "
		}
	}

	if prev.Kind == types.TokenPunct && (prev.Text == "(" || prev.Text == ".") {
		return ""
	}

	if cur.Kind == types.TokenKeyword {
		switch {
		case clauseStarters[cur.Text]:
			return "\n"
		case joinStarters[cur.Text]:
			return "\n"
		case cur.Text == "JOIN" && !continuesJoin(prev):
			return "\n"
		case cur.Text == "AND" || cur.Text == "OR":
			return "\n  "
		}
	}

	return " "
}

// continuesJoin reports whether prev already opened the join clause.
func continuesJoin(prev types.Token) bool {
	if prev.Kind != types.TokenKeyword {
		return false
	}
	return joinStarters[prev.Text] || prev.Text == "OUTER"
}
