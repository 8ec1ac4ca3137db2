package queryforge

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the persisted form of a Query. Field order mirrors the replay
// order of Build; enum-valued fields hold enumeration names ("EQUALS",
// "LEFT", "DESC", "AND"), never SQL symbols.
//
// Tables holds only the tables added directly: joined tables are recreated
// from their JoinSpec on replay, so Build appends them after the document
// tables regardless of the original insertion interleaving.
type Document struct {
	Tables          []DocumentTable  `json:"tables" yaml:"tables"`
	Joins           []DocumentJoin   `json:"joins,omitempty" yaml:"joins,omitempty"`
	Filters         []DocumentFilter `json:"filters,omitempty" yaml:"filters,omitempty"`
	CaseWhens       []DocumentCase   `json:"caseWhens,omitempty" yaml:"caseWhens,omitempty"`
	OrderBys        []DocumentSort   `json:"orderBys,omitempty" yaml:"orderBys,omitempty"`
	Distinct        bool             `json:"distinct" yaml:"distinct"`
	LimitConfig     DocumentLimit    `json:"limitConfig" yaml:"limitConfig"`
	GroupBy         *DocumentGroupBy `json:"groupBy,omitempty" yaml:"groupBy,omitempty"`
	WindowFunctions []DocumentWindow `json:"windowFunctions,omitempty" yaml:"windowFunctions,omitempty"`
}

// DocumentTable mirrors TableReference.
type DocumentTable struct {
	Name   string   `json:"name" yaml:"name"`
	Alias  string   `json:"alias" yaml:"alias"`
	Fields []string `json:"fields" yaml:"fields"`
}

// DocumentJoin mirrors JoinSpec plus the joined table it recreates.
type DocumentJoin struct {
	LeftAlias   string   `json:"leftAlias" yaml:"leftAlias"`
	RightTable  string   `json:"rightTable" yaml:"rightTable"`
	RightAlias  string   `json:"rightAlias" yaml:"rightAlias"`
	JoinType    string   `json:"joinType" yaml:"joinType"`
	OnLeft      string   `json:"onLeft" yaml:"onLeft"`
	OnRight     string   `json:"onRight" yaml:"onRight"`
	RightFields []string `json:"rightFields" yaml:"rightFields"`
}

// DocumentFilter mirrors FilterCondition.
type DocumentFilter struct {
	TableAlias string `json:"tableAlias" yaml:"tableAlias"`
	Field      string `json:"field" yaml:"field"`
	Operator   string `json:"operator" yaml:"operator"`
	Value      any    `json:"value" yaml:"value"`
	Logic      string `json:"logic" yaml:"logic"`
}

// DocumentBranch mirrors CaseBranch.
type DocumentBranch struct {
	When DocumentFilter `json:"when" yaml:"when"`
	Then any            `json:"then" yaml:"then"`
}

// DocumentCase mirrors CaseWhenSpec. Else stays null when absent; an empty
// string is a present value and renders ELSE ''.
type DocumentCase struct {
	Alias    string           `json:"alias" yaml:"alias"`
	Branches []DocumentBranch `json:"branches" yaml:"branches"`
	Else     any              `json:"else" yaml:"else"`
}

// DocumentSort mirrors SortSpec.
type DocumentSort struct {
	TableAlias string `json:"tableAlias" yaml:"tableAlias"`
	Field      string `json:"field" yaml:"field"`
	Direction  string `json:"direction" yaml:"direction"`
}

// DocumentLimit mirrors the limit settings; zero means unset for both.
type DocumentLimit struct {
	Limit  int `json:"limit" yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
}

// DocumentGroupBy mirrors GroupBySpec.
type DocumentGroupBy struct {
	Fields []string         `json:"fields" yaml:"fields"`
	Having []DocumentFilter `json:"having,omitempty" yaml:"having,omitempty"`
}

// DocumentWindow mirrors WindowFunctionSpec.
type DocumentWindow struct {
	Function    string         `json:"function" yaml:"function"`
	TableAlias  string         `json:"tableAlias" yaml:"tableAlias"`
	Field       string         `json:"field" yaml:"field"`
	PartitionBy []string       `json:"partitionBy" yaml:"partitionBy"`
	OrderBy     []DocumentSort `json:"orderBy" yaml:"orderBy"`
	Alias       string         `json:"alias" yaml:"alias"`
}

// Snapshot captures the configuration as a Document.
func Snapshot(q *Query) Document {
	doc := Document{
		Distinct:    q.Distinct,
		LimitConfig: DocumentLimit{Limit: q.Limit, Offset: q.Offset},
	}

	joined := make(map[string]bool, len(q.Joins))
	for _, j := range q.Joins {
		joined[j.Right.Alias] = true
	}
	for _, t := range q.Tables {
		if joined[t.Alias] {
			continue
		}
		doc.Tables = append(doc.Tables, DocumentTable{Name: t.Name, Alias: t.Alias, Fields: t.Fields})
	}

	for _, j := range q.Joins {
		doc.Joins = append(doc.Joins, DocumentJoin{
			LeftAlias:   j.LeftAlias,
			RightTable:  j.Right.Name,
			RightAlias:  j.Right.Alias,
			JoinType:    string(j.Kind),
			OnLeft:      j.LeftField,
			OnRight:     j.RightField,
			RightFields: j.Right.Fields,
		})
	}

	for _, f := range q.Filters {
		doc.Filters = append(doc.Filters, snapshotFilter(f))
	}

	for _, c := range q.CaseWhens {
		dc := DocumentCase{Alias: c.Alias, Else: c.Else}
		for _, b := range c.Branches {
			dc.Branches = append(dc.Branches, DocumentBranch{When: snapshotFilter(b.When), Then: b.Then})
		}
		doc.CaseWhens = append(doc.CaseWhens, dc)
	}

	for _, s := range q.OrderBys {
		doc.OrderBys = append(doc.OrderBys, snapshotSort(s))
	}

	if q.GroupBy != nil {
		dg := &DocumentGroupBy{Fields: q.GroupBy.Fields}
		for _, h := range q.GroupBy.Having {
			dg.Having = append(dg.Having, snapshotFilter(h))
		}
		doc.GroupBy = dg
	}

	for _, w := range q.WindowFunctions {
		dw := DocumentWindow{
			Function:    w.Function,
			TableAlias:  w.TableAlias,
			Field:       w.Field,
			PartitionBy: w.PartitionBy,
			Alias:       w.Alias,
		}
		for _, s := range w.OrderBy {
			dw.OrderBy = append(dw.OrderBy, snapshotSort(s))
		}
		doc.WindowFunctions = append(doc.WindowFunctions, dw)
	}

	return doc
}

func snapshotFilter(f FilterCondition) DocumentFilter {
	return DocumentFilter{
		TableAlias: f.TableAlias,
		Field:      f.Field,
		Operator:   string(f.Operator),
		Value:      f.Value,
		Logic:      string(f.Logic),
	}
}

func snapshotSort(s SortSpec) DocumentSort {
	return DocumentSort{TableAlias: s.TableAlias, Field: s.Field, Direction: string(s.Direction)}
}

// Build replays the document through the mutation operations and returns the
// reconstructed Query. This is the one place enum parsing is strict: an
// unknown operator, join type, logic, or direction name fails the build.
func (d Document) Build() (*Query, error) {
	q := NewQuery()

	for _, t := range d.Tables {
		q.AddTable(t.Name, t.Alias, t.Fields)
	}

	for i, j := range d.Joins {
		kind := LeftJoin
		if j.JoinType != "" {
			var err error
			if kind, err = ParseJoinKind(j.JoinType); err != nil {
				return nil, fmt.Errorf("joins[%d]: %w", i, err)
			}
		}
		q.AddJoin(j.LeftAlias, j.RightTable, j.RightAlias, j.OnLeft, j.OnRight, kind, j.RightFields)
	}

	for i, f := range d.Filters {
		fc, err := buildFilter(f)
		if err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
		q.AddFilter(fc.TableAlias, fc.Field, fc.Operator, fc.Value, fc.Logic)
	}

	for i, c := range d.CaseWhens {
		branches := make([]CaseBranch, 0, len(c.Branches))
		for bi, b := range c.Branches {
			when, err := buildFilter(b.When)
			if err != nil {
				return nil, fmt.Errorf("caseWhens[%d].branches[%d]: %w", i, bi, err)
			}
			branches = append(branches, CaseBranch{When: when, Then: b.Then})
		}
		q.AddCaseWhen(c.Alias, branches, c.Else)
	}

	for i, s := range d.OrderBys {
		dir, err := buildDirection(s.Direction)
		if err != nil {
			return nil, fmt.Errorf("orderBys[%d]: %w", i, err)
		}
		q.AddOrderBy(s.TableAlias, s.Field, dir)
	}

	if d.Distinct {
		q.SetDistinct(true)
	}

	if d.LimitConfig.Limit > 0 {
		q.SetLimit(d.LimitConfig.Limit, d.LimitConfig.Offset)
	}

	if d.GroupBy != nil {
		having := make([]FilterCondition, 0, len(d.GroupBy.Having))
		for hi, h := range d.GroupBy.Having {
			hc, err := buildFilter(h)
			if err != nil {
				return nil, fmt.Errorf("groupBy.having[%d]: %w", hi, err)
			}
			having = append(having, hc)
		}
		q.SetGroupBy(d.GroupBy.Fields, having)
	}

	for i, w := range d.WindowFunctions {
		orderBy := make([]SortSpec, 0, len(w.OrderBy))
		for si, s := range w.OrderBy {
			dir, err := buildDirection(s.Direction)
			if err != nil {
				return nil, fmt.Errorf("windowFunctions[%d].orderBy[%d]: %w", i, si, err)
			}
			orderBy = append(orderBy, SortSpec{TableAlias: s.TableAlias, Field: s.Field, Direction: dir})
		}
		q.AddWindowFunction(w.Function, w.TableAlias, w.Field, w.PartitionBy, orderBy, w.Alias)
	}

	return q, nil
}

// buildFilter parses a document filter. Logic defaults to AND when omitted,
// matching the mutation operation's default; the operator is always required.
func buildFilter(f DocumentFilter) (FilterCondition, error) {
	op, err := ParseFilterOperator(f.Operator)
	if err != nil {
		return FilterCondition{}, err
	}
	logic := And
	if f.Logic != "" {
		if logic, err = ParseLogicOperator(f.Logic); err != nil {
			return FilterCondition{}, err
		}
	}
	return FilterCondition{
		TableAlias: f.TableAlias,
		Field:      f.Field,
		Operator:   op,
		Value:      f.Value,
		Logic:      logic,
	}, nil
}

// buildDirection parses a sort direction, defaulting to ASC when omitted.
func buildDirection(name string) (Direction, error) {
	if name == "" {
		return Ascending, nil
	}
	return ParseDirection(name)
}

// JSON encodes the document in its canonical two-space indented form.
func (d Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// DocumentFromJSON decodes a JSON document. Enum names are checked by Build,
// not here.
func DocumentFromJSON(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decoding document: %w", err)
	}
	return d, nil
}

// YAML encodes the document for CLI-facing files.
func (d Document) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// DocumentFromYAML decodes a YAML document.
func DocumentFromYAML(data []byte) (Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decoding document: %w", err)
	}
	return d, nil
}
