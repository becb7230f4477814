package syntaxkind

import "testing"

func TestFromKeywordCaseInsensitive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"lower", "select", SELECT_KW},
		{"upper", "SELECT", SELECT_KW},
		{"mixed", "Select", SELECT_KW},
		{"mixed2", "sElEcT", SELECT_KW},
		{"another lower", "from", FROM_KW},
		{"another upper", "FROM", FROM_KW},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromKeyword(tt.input)
			if !ok {
				t.Fatalf("FromKeyword(%q): ok = false, want true", tt.input)
			}
			if got != tt.want {
				t.Errorf("FromKeyword(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromKeywordNotAKeyword(t *testing.T) {
	tests := []string{"foobar", "my_column", "t1", ""}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			if _, ok := FromKeyword(text); ok {
				t.Errorf("FromKeyword(%q): ok = true, want false (not a keyword)", text)
			}
		})
	}
}

func TestKeywordCategoriesDisjoint(t *testing.T) {
	// Unreserved, Reserved, ColName, and TypeFuncName are documented as
	// PostgreSQL's four disjoint kwlist.h categories - no keyword kind
	// should be a member of two of them at once.
	sets := []struct {
		name string
		ts   TokenSet
	}{
		{"Unreserved", UnreservedKeywords},
		{"Reserved", ReservedKeywords},
		{"ColName", ColNameKeywords},
		{"TypeFuncName", TypeFuncNameKeywords},
	}
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			if overlap := sets[i].ts.Intersect(sets[j].ts); !overlap.Empty() {
				t.Errorf("%s and %s overlap, expected disjoint categories", sets[i].name, sets[j].name)
			}
		}
	}
}

func TestDerivedKeywordSets(t *testing.T) {
	if !ColumnOrTableKeywords.Contains(ABORT_KW) {
		t.Error("ColumnOrTableKeywords should contain an Unreserved keyword (ABORT)")
	}
	if !ColumnOrTableKeywords.Contains(BETWEEN_KW) {
		t.Error("ColumnOrTableKeywords should contain a ColName keyword (BETWEEN)")
	}
	if ColumnOrTableKeywords.Contains(SELECT_KW) {
		t.Error("ColumnOrTableKeywords should not contain a Reserved keyword (SELECT)")
	}

	if !TypeKeywords.Contains(TABLESAMPLE_KW) {
		t.Error("TypeKeywords should contain a TypeFuncName keyword (TABLESAMPLE)")
	}
	if !TypeKeywords.Contains(INT_KW) {
		t.Error("TypeKeywords should contain a ColName keyword (INT)")
	}

	if !AllKeywords.Contains(SELECT_KW) || !AllKeywords.Contains(ABORT_KW) ||
		!AllKeywords.Contains(BETWEEN_KW) || !AllKeywords.Contains(TABLESAMPLE_KW) {
		t.Error("AllKeywords should contain one representative from each category")
	}
}
