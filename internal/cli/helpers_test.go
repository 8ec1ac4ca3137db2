package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// validDocJSON renders to a two-field SELECT with a filter and ordering.
const validDocJSON = `{
  "tables": [
    {"name": "users", "alias": "u", "fields": ["user_id", "name"]}
  ],
  "filters": [
    {"tableAlias": "u", "field": "age", "operator": "GREATER", "value": 21, "logic": "AND"}
  ],
  "orderBys": [
    {"tableAlias": "u", "field": "name", "direction": "ASC"}
  ],
  "distinct": false,
  "limitConfig": {"limit": 0, "offset": 0}
}`

const validDocYAML = `tables:
  - name: users
    alias: u
    fields:
      - user_id
      - name
filters:
  - tableAlias: u
    field: age
    operator: GREATER
    value: 21
    logic: AND
orderBys:
  - tableAlias: u
    field: name
    direction: ASC
`

// usersSQL is what validDocJSON and validDocYAML render to.
const usersSQL = "SELECT\n" +
	"  u.user_id,\n" +
	"  u.name\n" +
	"FROM users AS u\n" +
	"WHERE\n" +
	"  u.age > 21\n" +
	"ORDER BY u.name ASC;"

// badOperatorDocJSON fails document replay with a strict enum error.
const badOperatorDocJSON = `{
  "tables": [
    {"name": "users", "alias": "u", "fields": ["name"]}
  ],
  "filters": [
    {"tableAlias": "u", "field": "age", "operator": "BOGUS", "value": 21}
  ]
}`

// unknownAliasDocJSON replays fine but lints with one problem.
const unknownAliasDocJSON = `{
  "tables": [
    {"name": "users", "alias": "u", "fields": ["name"]}
  ],
  "filters": [
    {"tableAlias": "x", "field": "age", "operator": "EQUALS", "value": 1}
  ]
}`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
