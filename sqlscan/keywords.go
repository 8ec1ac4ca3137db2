package sqlscan

import "github.com/queryforge/queryforge/internal/types"

// keywords is the set of words the scanner classifies as keywords rather
// than identifiers. Function names are deliberately absent so the formatter
// keeps calls tight against their parenthesis (RANK() but IN (...)).
var keywords = map[string]bool{
	"SELECT": true, "DISTINCT": true, "FROM": true, "WHERE": true,
	"GROUP": true, "BY": true, "HAVING": true, "ORDER": true,
	"LIMIT": true, "OFFSET": true, "AS": true, "ON": true,
	"AND": true, "OR": true, "NOT": true, "IN": true, "IS": true,
	"NULL": true, "LIKE": true, "BETWEEN": true, "REGEXP": true,
	"CASE": true, "WHEN": true, "THEN": true, "ELSE": true, "END": true,
	"JOIN": true, "INNER": true, "LEFT": true, "RIGHT": true,
	"FULL": true, "OUTER": true, "CROSS": true,
	"UNION": true, "ALL": true, "INTERSECT": true, "EXCEPT": true,
	"INSERT": true, "INTO": true, "VALUES": true,
	"UPDATE": true, "SET": true, "DELETE": true,
	"CREATE": true, "TABLE": true, "DROP": true, "ALTER": true,
	"WITH": true, "OVER": true, "PARTITION": true,
	"ASC": true, "DESC": true, "EXISTS": true,
	"TRUE": true, "FALSE": true,
}

// statementKinds maps a leading keyword to the coarse statement label.
var statementKinds = map[string]types.StatementKind{
	"SELECT": types.StmtSelect,
	"INSERT": types.StmtInsert,
	"UPDATE": types.StmtUpdate,
	"DELETE": types.StmtDelete,
	"CREATE": types.StmtCreate,
	"DROP":   types.StmtDrop,
	"ALTER":  types.StmtAlter,
	"WITH":   types.StmtWith,
}

// clauseStarters force a line break before the keyword when formatting.
var clauseStarters = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "GROUP": true,
	"HAVING": true, "ORDER": true, "LIMIT": true,
	"UNION": true, "INTERSECT": true, "EXCEPT": true,
	"INSERT": true, "UPDATE": true, "DELETE": true, "SET": true,
	"VALUES": true, "CREATE": true, "DROP": true, "ALTER": true,
	"WITH": true,
}

// joinStarters begin a join clause; a bare JOIN keyword only starts a line
// when none of these (or OUTER) directly precedes it.
var joinStarters = map[string]bool{
	"INNER": true, "LEFT": true, "RIGHT": true, "FULL": true, "CROSS": true,
}
