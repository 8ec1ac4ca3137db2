package types

import "fmt"

// Direction represents sort direction.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Valid reports whether d is ASC or DESC.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// ParseDirection converts an enumeration name into a Direction.
func ParseDirection(name string) (Direction, error) {
	d := Direction(name)
	if !d.Valid() {
		return "", fmt.Errorf("unknown sort direction: %q", name)
	}
	return d, nil
}

// SortSpec orders results by one alias-qualified field.
type SortSpec struct {
	TableAlias string
	Field      string
	Direction  Direction
}
