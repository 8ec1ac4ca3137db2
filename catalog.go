package queryforge

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Catalog wraps a DBML schema and produces configuration that is known to
// reference real tables and columns. It acts purely at configuration time:
// a Query built without a Catalog renders exactly the same way.
type Catalog struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	fields  map[string]map[string]*dbml.Column
}

// NewCatalog builds a Catalog from a DBML project.
func NewCatalog(project *dbml.Project) (*Catalog, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	c := &Catalog{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		c.tables[table.Name] = table
		c.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			c.fields[table.Name][col.Name] = col
		}
	}

	return c, nil
}

// Tables lists schema table names in declaration order.
func (c *Catalog) Tables() []string {
	names := make([]string, 0, len(c.project.Tables))
	for _, t := range c.project.Tables {
		names = append(names, t.Name)
	}
	return names
}

// Fields lists a table's column names in declaration order.
func (c *Catalog) Fields(table string) ([]string, error) {
	t, ok := c.tables[table]
	if !ok {
		return nil, fmt.Errorf("table '%s' not found in schema", table)
	}
	names := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		names = append(names, col.Name)
	}
	return names, nil
}

// HasTable reports whether the schema declares the table.
func (c *Catalog) HasTable(name string) bool {
	_, ok := c.tables[name]
	return ok
}

// HasField reports whether the schema declares the column on the table.
func (c *Catalog) HasField(table, field string) bool {
	cols, ok := c.fields[table]
	if !ok {
		return false
	}
	_, ok = cols[field]
	return ok
}

// TryTable validates the table and fields against the schema, then adds the
// table to the configuration. An empty fields slice selects every column in
// schema order.
func (c *Catalog) TryTable(q *Query, name, alias string, fields []string) (TableReference, error) {
	if err := c.checkTable(name); err != nil {
		return TableReference{}, err
	}
	if len(fields) == 0 {
		fields, _ = c.Fields(name)
	} else if err := c.checkFields(name, fields); err != nil {
		return TableReference{}, err
	}
	return q.AddTable(name, alias, fields), nil
}

// Table is TryTable that panics on schema violations.
func (c *Catalog) Table(q *Query, name, alias string, fields []string) TableReference {
	t, err := c.TryTable(q, name, alias, fields)
	if err != nil {
		panic(err)
	}
	return t
}

// TryJoin validates the joined table side against the schema, then adds the
// join. The left side is identified by alias and stays unchecked: aliases are
// caller-chosen and carry no schema identity. An empty rightFields slice
// selects every column of the joined table.
func (c *Catalog) TryJoin(q *Query, leftAlias, rightTable, rightAlias, leftField, rightField string, kind JoinKind, rightFields []string) (JoinSpec, error) {
	if err := c.checkTable(rightTable); err != nil {
		return JoinSpec{}, err
	}
	if !c.HasField(rightTable, rightField) {
		return JoinSpec{}, fmt.Errorf("field '%s' not found in table '%s'", rightField, rightTable)
	}
	if len(rightFields) == 0 {
		rightFields, _ = c.Fields(rightTable)
	} else if err := c.checkFields(rightTable, rightFields); err != nil {
		return JoinSpec{}, err
	}
	return q.AddJoin(leftAlias, rightTable, rightAlias, leftField, rightField, kind, rightFields), nil
}

// Join is TryJoin that panics on schema violations.
func (c *Catalog) Join(q *Query, leftAlias, rightTable, rightAlias, leftField, rightField string, kind JoinKind, rightFields []string) JoinSpec {
	j, err := c.TryJoin(q, leftAlias, rightTable, rightAlias, leftField, rightField, kind, rightFields)
	if err != nil {
		panic(err)
	}
	return j
}

func (c *Catalog) checkTable(name string) error {
	if _, ok := c.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

func (c *Catalog) checkFields(table string, fields []string) error {
	for _, f := range fields {
		if !c.HasField(table, f) {
			return fmt.Errorf("field '%s' not found in table '%s'", f, table)
		}
	}
	return nil
}
