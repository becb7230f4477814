package cst

import (
	"testing"

	"github.com/sqldef/pgparse/lexer"
	"github.com/sqldef/pgparse/parser"
	"github.com/sqldef/pgparse/syntaxkind"
)

func build(src string) *Tree {
	tree := parser.Parse(lexer.Tokenize(src))
	return Build(tree)
}

func TestBuildLosslessRoundTrip(t *testing.T) {
	srcs := []string{
		"SELECT 1;",
		"  select  a , b  from t  where a = 1 ;  -- trailing comment\n",
		"ALTER TABLE t ADD COLUMN c INT NOT NULL DEFAULT 0;",
		"garbage )))",
		"",
	}
	for _, src := range srcs {
		built := build(src)
		if got := built.Root.Text(); got != src {
			t.Errorf("build(%q).Root.Text() = %q, want the original source back", src, got)
		}
	}
}

func TestBuildRootIsSourceFile(t *testing.T) {
	built := build("SELECT 1;")
	if built.Root == nil {
		t.Fatal("Build returned a nil root")
	}
	if built.Root.Kind != syntaxkind.SOURCE_FILE {
		t.Errorf("root kind = %v, want SOURCE_FILE", built.Root.Kind)
	}
}

func TestBuildChildNodesSkipsTokens(t *testing.T) {
	built := build("SELECT 1;")
	sel := built.Root.FindFirst(syntaxkind.SELECT_CLAUSE)
	if sel == nil {
		t.Fatal("expected a SELECT_CLAUSE node")
	}
	// sel.Children mixes *Node and *Token elements (e.g. the SELECT_KW
	// token itself, which the SELECT_CLAUSE holds); ChildNodes must return
	// only the *Node ones.
	if len(sel.Children) <= len(sel.ChildNodes()) {
		t.Errorf("expected sel.Children (%d) to include token leaves beyond sel.ChildNodes() (%d)",
			len(sel.Children), len(sel.ChildNodes()))
	}
	for _, n := range sel.ChildNodes() {
		if n == nil {
			t.Error("ChildNodes returned a nil *Node")
		}
	}
}

func TestBuildFindFirstIncludesSelf(t *testing.T) {
	built := build("SELECT 1;")
	if found := built.Root.FindFirst(syntaxkind.SOURCE_FILE); found != built.Root {
		t.Error("FindFirst(root's own kind) should return the root itself")
	}
}

func TestBuildFindFirstReturnsNilWhenAbsent(t *testing.T) {
	built := build("SELECT 1;")
	if found := built.Root.FindFirst(syntaxkind.DELETE_STMT); found != nil {
		t.Errorf("expected no DELETE_STMT in a SELECT tree, got %+v", found)
	}
}

func TestBuildWalkVisitsEveryNode(t *testing.T) {
	built := build("SELECT a FROM t WHERE a = 1;")
	count := 0
	built.Root.Walk(func(n *Node) { count++ })
	if count < 2 {
		t.Errorf("Walk visited only %d nodes, expected at least the root plus the SELECT", count)
	}

	var sawSelect bool
	built.Root.Walk(func(n *Node) {
		if n.Kind == syntaxkind.SELECT {
			sawSelect = true
		}
	})
	if !sawSelect {
		t.Error("Walk never visited the SELECT node")
	}
}

func TestBuildDiagnosticsResolveOffsets(t *testing.T) {
	built := build("SELECT FROM t;")
	if len(built.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	for _, d := range built.Diagnostics {
		if d.Offset < 0 {
			t.Errorf("diagnostic offset %d should never be negative", d.Offset)
		}
	}
}

func TestLintAddingNotNullWithDefaultFires(t *testing.T) {
	built := build("ALTER TABLE t ADD COLUMN c INT NOT NULL DEFAULT 0;")
	violations := RunRules(built.Root, nil)
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1: %+v", len(violations), violations)
	}
	if violations[0].Rule != "adding-field-with-default" {
		t.Errorf("violation rule = %q, want %q", violations[0].Rule, "adding-field-with-default")
	}
}

func TestLintAddingNotNullWithDefaultFiresWithoutDefault(t *testing.T) {
	// The rule fires on NOT NULL alone, matching adding_not_null_with_
	// default.rs - a DEFAULT clause is not a precondition.
	built := build("ALTER TABLE t ADD COLUMN c INT NOT NULL;")
	violations := RunRules(built.Root, nil)
	if len(violations) != 1 {
		t.Errorf("got %d violations, want 1 (NOT NULL alone is enough): %+v", len(violations), violations)
	}
}

func TestLintAddingNotNullWithDefaultDoesNotFireWithoutNotNull(t *testing.T) {
	built := build("ALTER TABLE t ADD COLUMN c INT DEFAULT 0;")
	violations := RunRules(built.Root, nil)
	if len(violations) != 0 {
		t.Errorf("got %d violations, want 0 (no NOT NULL constraint present): %+v", len(violations), violations)
	}
}

func TestLintRunRulesFiltersByName(t *testing.T) {
	built := build("ALTER TABLE t ADD COLUMN c INT NOT NULL DEFAULT 0;")
	if got := RunRules(built.Root, []string{"some-other-rule"}); len(got) != 0 {
		t.Errorf("RunRules with an unmatched rule name filter returned %d violations, want 0", len(got))
	}
	if got := RunRules(built.Root, []string{"adding-field-with-default"}); len(got) != 1 {
		t.Errorf("RunRules with the matching rule name filter returned %d violations, want 1", len(got))
	}
}

func TestLintDoesNotFireOnPlainAddColumn(t *testing.T) {
	built := build("ALTER TABLE t ADD COLUMN c INT;")
	violations := RunRules(built.Root, nil)
	if len(violations) != 0 {
		t.Errorf("got %d violations for a plain ADD COLUMN with no constraints, want 0", len(violations))
	}
}
