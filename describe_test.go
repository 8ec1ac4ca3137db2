package queryforge_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/queryforge/queryforge"
)

// buildNarrativeQuery is the shared scenario for the narrative goldens: one
// join, mixed filter logic, grouping with HAVING, a CASE column, a window
// function, ordering, and pagination.
func buildNarrativeQuery() *queryforge.Query {
	q := queryforge.NewQuery()
	q.AddTable("products", "p", []string{"product_id", "product_name", "price"})
	q.AddJoin("p", "categories", "c", "category_id", "category_id", queryforge.LeftJoin, []string{"category_name"})
	q.AddFilter("p", "price", queryforge.GreaterThan, 100, queryforge.And)
	q.AddFilter("p", "stock", queryforge.LessThan, 50, queryforge.Or)
	q.SetGroupBy([]string{"p.category_id"}, []queryforge.FilterCondition{
		{TableAlias: "p", Field: "price", Operator: queryforge.GreaterThan, Value: 20, Logic: queryforge.And},
	})
	q.AddCaseWhen("price_tier", []queryforge.CaseBranch{
		{
			When: queryforge.FilterCondition{TableAlias: "p", Field: "price", Operator: queryforge.GreaterThan, Value: 100, Logic: queryforge.And},
			Then: "expensive",
		},
		{
			When: queryforge.FilterCondition{TableAlias: "p", Field: "price", Operator: queryforge.GreaterThan, Value: 50, Logic: queryforge.And},
			Then: "moderate",
		},
	}, "cheap")
	q.AddWindowFunction("ROW_NUMBER", "", "", []string{"p.category_id"},
		[]queryforge.SortSpec{{TableAlias: "p", Field: "price", Direction: queryforge.Descending}}, "price_rank")
	q.AddOrderBy("p", "price", queryforge.Descending)
	q.SetLimit(10, 5)
	return q
}

func TestDescribe_FullQuery(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "describe_full", []byte(queryforge.Describe(buildNarrativeQuery())))
}

func TestRequirements_FullQuery(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "requirements_full", []byte(queryforge.Requirements(buildNarrativeQuery())))
}

func TestDescribe_Empty(t *testing.T) {
	expected := "Query the data."
	if got := queryforge.Describe(queryforge.NewQuery()); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestDescribe_SingleTable(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})

	expected := "Query the data, from the **users** table (fields: name)."
	if got := queryforge.Describe(q); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestDescribe_TableWithoutFields(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", nil)

	expected := "Query the data, from the **users** table."
	if got := queryforge.Describe(q); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestDescribe_Distinct(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})
	q.SetDistinct(true)

	if got := queryforge.Describe(q); !strings.HasPrefix(got, "Query the deduplicated data") {
		t.Errorf("Expected deduplicated intent, got %q", got)
	}
}

func TestDescribe_OmitsEmptySections(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})

	got := queryforge.Describe(q)
	for _, section := range []string{"**Filters**", "**Grouping**", "**Conditional columns**", "**Window functions**", "**Sort**", "**Row limit**"} {
		if strings.Contains(got, section) {
			t.Errorf("Expected %s section to be omitted, got %q", section, got)
		}
	}
}

func TestDescribe_SequenceBracketed(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})
	q.AddFilter("u", "age", queryforge.Between, []int{18, 65}, queryforge.And)

	if got := queryforge.Describe(q); !strings.Contains(got, "u.age between [18, 65]") {
		t.Errorf("Expected bracketed sequence, got %q", got)
	}
}

func TestDescribe_NullOperatorWithoutValue(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})
	q.AddFilter("u", "deleted_at", queryforge.IsNull, nil, queryforge.And)

	if got := queryforge.Describe(q); !strings.Contains(got, "- u.deleted_at is null") {
		t.Errorf("Expected bare null phrase, got %q", got)
	}
}

func TestRequirements_Empty(t *testing.T) {
	expected := "I need a SQL query with the following requirements:\n" +
		"**Data sources**:" +
		"\n\nGenerate the SQL query for these requirements."
	if got := queryforge.Requirements(queryforge.NewQuery()); got != expected {
		t.Errorf("Expected:\n%q\nGot:\n%q", expected, got)
	}
}

func TestRequirements_BetweenReadsAsRange(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})
	q.AddFilter("u", "age", queryforge.Between, []int{18, 65}, queryforge.And)

	if got := queryforge.Requirements(q); !strings.Contains(got, "u.age between 18 and 65") {
		t.Errorf("Expected range phrasing, got %q", got)
	}
}

func TestRequirements_SequenceJoinsWithCommas(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})
	q.AddFilter("u", "city", queryforge.In, []string{"NY", "LA"}, queryforge.And)

	if got := queryforge.Requirements(q); !strings.Contains(got, "u.city in NY, LA") {
		t.Errorf("Expected comma-joined sequence, got %q", got)
	}
}

func TestRequirements_Distinct(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("users", "u", []string{"name"})
	q.SetDistinct(true)

	if got := queryforge.Requirements(q); !strings.Contains(got, "**Deduplication**: remove duplicate rows from the results") {
		t.Errorf("Expected deduplication section, got %q", got)
	}
}

func TestRequirements_FalsyElseOmitted(t *testing.T) {
	q := queryforge.NewQuery()
	q.AddTable("things", "t", []string{"x"})
	q.AddCaseWhen("flag", []queryforge.CaseBranch{
		{
			When: queryforge.FilterCondition{TableAlias: "t", Field: "x", Operator: queryforge.Equals, Value: 1, Logic: queryforge.And},
			Then: "yes",
		},
	}, "")

	if got := queryforge.Requirements(q); strings.Contains(got, "Otherwise") {
		t.Errorf("Expected empty else to read as absent, got %q", got)
	}
}
