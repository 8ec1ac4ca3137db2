// Package testing provides shared helpers for queryforge tests: a
// schema-backed catalog, prebuilt queries, and assertion utilities.
package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/queryforge/queryforge"
)

// TestCatalog creates a catalog over a small commerce schema with users,
// posts, comments, orders, and products tables.
func TestCatalog(t *testing.T) *queryforge.Catalog {
	t.Helper()

	project := dbml.NewProject("test")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	users.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("body", "text"))
	posts.AddColumn(dbml.NewColumn("published", "boolean"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	posts.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(posts)

	comments := dbml.NewTable("comments")
	comments.AddColumn(dbml.NewColumn("id", "bigint"))
	comments.AddColumn(dbml.NewColumn("post_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("user_id", "bigint"))
	comments.AddColumn(dbml.NewColumn("body", "text"))
	comments.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(comments)

	orders := dbml.NewTable("orders")
	orders.AddColumn(dbml.NewColumn("id", "bigint"))
	orders.AddColumn(dbml.NewColumn("user_id", "bigint"))
	orders.AddColumn(dbml.NewColumn("total", "numeric"))
	orders.AddColumn(dbml.NewColumn("status", "varchar"))
	orders.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	project.AddTable(orders)

	products := dbml.NewTable("products")
	products.AddColumn(dbml.NewColumn("id", "bigint"))
	products.AddColumn(dbml.NewColumn("name", "varchar"))
	products.AddColumn(dbml.NewColumn("price", "numeric"))
	products.AddColumn(dbml.NewColumn("category", "varchar"))
	products.AddColumn(dbml.NewColumn("stock", "int"))
	project.AddTable(products)

	catalog, err := queryforge.NewCatalog(project)
	if err != nil {
		t.Fatalf("Failed to create test catalog: %v", err)
	}
	return catalog
}

// SampleUserQuery builds a filtered, ordered selection over users.
func SampleUserQuery() *queryforge.Query {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"id", "username", "email"})
	q.AddFilter("u", "active", queryforge.Equals, true, queryforge.And)
	q.AddOrderBy("u", "username", queryforge.Ascending)
	return q
}

// SampleOrderReport builds a join-heavy query that touches most clauses.
func SampleOrderReport() *queryforge.Query {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"id", "username"})
	q.AddJoin("u", "orders", "o", "id", "user_id", queryforge.LeftJoin, []string{"total", "status"})
	q.AddFilter("o", "status", queryforge.In, []any{"completed", "pending"}, queryforge.And)
	q.AddOrderBy("o", "total", queryforge.Descending)
	q.SetLimit(20, 0)
	return q
}

// AssertSQL checks that rendered SQL matches the expected string exactly.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertValid fails the test when the query's rendered SQL does not pass
// validation.
func AssertValid(t *testing.T, q *queryforge.Query) {
	t.Helper()
	report := queryforge.Validate(q)
	if !report.Valid {
		t.Fatalf("Expected valid SQL, got errors: %v", report.Errors)
	}
}

// AssertClean fails the test when lint reports any problem with the
// configuration.
func AssertClean(t *testing.T, q *queryforge.Query) {
	t.Helper()
	for _, p := range queryforge.Lint(q) {
		t.Errorf("Unexpected lint problem: %s", p.String())
	}
}

// AssertNoError fails the test if an error occurred.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if no error occurred.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got none")
	}
}

// AssertErrorContains checks that an error occurred and its message
// contains the given substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got none", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics checks that the given function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but none occurred")
		}
	}()
	fn()
}

// AssertPanicsWithMessage checks that the given function panics and the
// panic message contains the given substring.
func AssertPanicsWithMessage(t *testing.T, fn func(), message string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Error("Expected panic but none occurred")
			return
		}
		var msg string
		switch v := r.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		default:
			msg = fmt.Sprintf("%v", v)
		}
		if !strings.Contains(msg, message) {
			t.Errorf("Expected panic message containing %q, got: %s", message, msg)
		}
	}()
	fn()
}
