package types

import "testing"

func TestJoinKind_SQL(t *testing.T) {
	tests := []struct {
		kind     JoinKind
		expected string
	}{
		{InnerJoin, "INNER JOIN"},
		{LeftJoin, "LEFT JOIN"},
		{RightJoin, "RIGHT JOIN"},
		{FullOuterJoin, "FULL OUTER JOIN"},
	}

	for _, tt := range tests {
		if got := tt.kind.SQL(); got != tt.expected {
			t.Errorf("%s.SQL() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestParseJoinKind(t *testing.T) {
	kind, err := ParseJoinKind("FULL_OUTER")
	if err != nil {
		t.Fatalf("ParseJoinKind failed: %v", err)
	}
	if kind != FullOuterJoin {
		t.Errorf("Expected FullOuterJoin, got %v", kind)
	}

	// The clause keyword is not the enumeration name.
	if _, err := ParseJoinKind("FULL OUTER JOIN"); err == nil {
		t.Error("ParseJoinKind should reject clause keywords")
	}
	if _, err := ParseJoinKind("CROSS"); err == nil {
		t.Error("ParseJoinKind should reject unsupported kinds")
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("ASC"); err != nil || d != Ascending {
		t.Errorf("ParseDirection(ASC) = %v, %v", d, err)
	}
	if d, err := ParseDirection("DESC"); err != nil || d != Descending {
		t.Errorf("ParseDirection(DESC) = %v, %v", d, err)
	}
	if _, err := ParseDirection("desc"); err == nil {
		t.Error("ParseDirection should be case sensitive")
	}
}
