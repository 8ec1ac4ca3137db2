package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal formats a value for SQL text. Strings are single-quoted with no
// escaping of embedded quotes; callers needing safe text must sanitize
// upstream. Everything else renders bare.
func Literal(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return Bare(v)
}

// Bare formats a value without quoting. JSON-decoded numbers arrive as
// float64 and render in shortest decimal form, so 100 never becomes 100.0.
func Bare(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Bare(e)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
