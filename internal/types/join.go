package types

import "fmt"

// JoinKind identifies the join variant. The constant value is the
// enumeration name used in serialized documents; SQL() yields the clause
// keyword.
type JoinKind string

const (
	InnerJoin     JoinKind = "INNER"
	LeftJoin      JoinKind = "LEFT"
	RightJoin     JoinKind = "RIGHT"
	FullOuterJoin JoinKind = "FULL_OUTER"
)

var joinSQL = map[JoinKind]string{
	InnerJoin:     "INNER JOIN",
	LeftJoin:      "LEFT JOIN",
	RightJoin:     "RIGHT JOIN",
	FullOuterJoin: "FULL OUTER JOIN",
}

// SQL returns the join clause keyword, or the raw name for unknown kinds.
func (k JoinKind) SQL() string {
	if kw, ok := joinSQL[k]; ok {
		return kw
	}
	return string(k)
}

// Valid reports whether k is a member of the closed join-kind set.
func (k JoinKind) Valid() bool {
	_, ok := joinSQL[k]
	return ok
}

// ParseJoinKind converts an enumeration name into a JoinKind.
func ParseJoinKind(name string) (JoinKind, error) {
	k := JoinKind(name)
	if !k.Valid() {
		return "", fmt.Errorf("unknown join kind: %q", name)
	}
	return k, nil
}

// MustJoinKind is ParseJoinKind that panics on unknown names.
func MustJoinKind(name string) JoinKind {
	k, err := ParseJoinKind(name)
	if err != nil {
		panic(err)
	}
	return k
}

// JoinSpec links an already-added table (by alias) to a new right-hand
// table on a single field equality. Adding a join appends the right table to
// the query's table list, so a join always introduces exactly one new table
// into scope.
type JoinSpec struct {
	LeftAlias  string
	Right      TableReference
	Kind       JoinKind
	LeftField  string
	RightField string
}
