// Package integration runs rendered queries against live database engines.
// Every test drives the full pipeline a stored document travels: decode,
// replay into a query, lint, validate, render, execute.
package integration

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"

	"github.com/queryforge/queryforge"
)

// Containers are started once per engine and shared by every test in the
// package; TestMain tears down whichever ones the run started.
var (
	postgresOnce    sync.Once
	postgresShared  *postgresDatabase
	postgresStarted bool

	mysqlOnce    sync.Once
	mysqlShared  *mysqlDatabase
	mysqlStarted bool

	mariadbOnce    sync.Once
	mariadbShared  *mariadbDatabase
	mariadbStarted bool

	mssqlOnce    sync.Once
	mssqlShared  *mssqlDatabase
	mssqlStarted bool
)

func TestMain(m *testing.M) {
	// We can't check testing.Short() here because flag.Parse() hasn't been
	// called yet; containers start lazily from the tests that need them.
	code := m.Run()

	ctx := context.Background()
	if postgresStarted {
		postgresShared.terminate(ctx)
	}
	if mysqlStarted {
		mysqlShared.terminate(ctx)
	}
	if mariadbStarted {
		mariadbShared.terminate(ctx)
	}
	if mssqlStarted {
		mssqlShared.terminate(ctx)
	}

	os.Exit(code)
}

// activeAdultsDocument selects active users over 26, ordered by name.
// The boolean comparison renders as "= true", which T-SQL rejects; the
// mssql tests carry their own variant with a 1/0 value.
const activeAdultsDocument = `{
  "tables": [
    {"name": "users", "alias": "u", "fields": ["id", "username", "email"]}
  ],
  "filters": [
    {"tableAlias": "u", "field": "age", "operator": "GREATER", "value": 26, "logic": "AND"},
    {"tableAlias": "u", "field": "active", "operator": "EQUALS", "value": true, "logic": "AND"}
  ],
  "orderBys": [
    {"tableAlias": "u", "field": "username", "direction": "ASC"}
  ]
}`

// orderHistoryDocument joins users to their orders, keeping orderless users.
const orderHistoryDocument = `{
  "tables": [
    {"name": "users", "alias": "u", "fields": ["username"]}
  ],
  "joins": [
    {"leftAlias": "u", "rightTable": "orders", "rightAlias": "o", "joinType": "LEFT", "onLeft": "id", "onRight": "user_id", "rightFields": ["total", "status"]}
  ],
  "orderBys": [
    {"tableAlias": "u", "field": "username", "direction": "ASC"}
  ]
}`

// statusRollupDocument aggregates orders per status, dropping the orphan row.
const statusRollupDocument = `{
  "tables": [
    {"name": "orders", "alias": "o", "fields": ["status"]}
  ],
  "groupBy": {
    "fields": ["o.status"],
    "having": [
      {"tableAlias": "o", "field": "status", "operator": "NOT_EQUALS", "value": "orphan", "logic": "AND"}
    ]
  }
}`

// orderRanksDocument numbers each user's orders from most to least expensive.
const orderRanksDocument = `{
  "tables": [
    {"name": "orders", "alias": "o", "fields": ["user_id", "total"]}
  ],
  "windowFunctions": [
    {"function": "ROW_NUMBER", "tableAlias": "", "field": "", "partitionBy": ["o.user_id"], "orderBy": [{"tableAlias": "o", "field": "total", "direction": "DESC"}], "alias": "rn"}
  ]
}`

// topOrdersDocument pages through order totals, skipping the most expensive.
// Renders a LIMIT/OFFSET tail, so the mssql tests leave it alone.
const topOrdersDocument = `{
  "tables": [
    {"name": "orders", "alias": "o", "fields": ["total"]}
  ],
  "orderBys": [
    {"tableAlias": "o", "field": "total", "direction": "DESC"}
  ],
  "limitConfig": {"limit": 2, "offset": 1}
}`

// buildSQL replays a JSON document through every pipeline stage and returns
// the rendered statement, failing the test at the first stage that objects.
func buildSQL(t *testing.T, docJSON string) string {
	t.Helper()

	doc, err := queryforge.DocumentFromJSON([]byte(docJSON))
	if err != nil {
		t.Fatalf("Failed to decode document: %v", err)
	}
	q, err := doc.Build()
	if err != nil {
		t.Fatalf("Failed to build query: %v", err)
	}
	if problems := queryforge.Lint(q); len(problems) != 0 {
		t.Fatalf("Lint found problems: %v", problems)
	}
	report := queryforge.Validate(q)
	if !report.Valid {
		t.Fatalf("Validation failed: %v", report.Errors)
	}
	return queryforge.Render(q)
}

func countRows(t *testing.T, db *sql.DB, query string) int {
	t.Helper()

	rows, err := db.Query(query)
	if err != nil {
		t.Fatalf("Query failed: %v\nSQL: %s", err, query)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Row iteration failed: %v", err)
	}
	return count
}

func totalsOf(t *testing.T, db *sql.DB, query string) []float64 {
	t.Helper()

	rows, err := db.Query(query)
	if err != nil {
		t.Fatalf("Query failed: %v\nSQL: %s", err, query)
	}
	defer rows.Close()

	var totals []float64
	for rows.Next() {
		var total float64
		if err := rows.Scan(&total); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Row iteration failed: %v", err)
	}
	return totals
}
