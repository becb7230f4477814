package parser

import (
	"testing"

	"github.com/sqldef/pgparse/lexer"
	"github.com/sqldef/pgparse/syntaxkind"
)

// walkNode is the minimal tree shape parser_test needs: a node's kind, its
// child nodes (skipping raw tokens), and its full text. Reimplemented here
// rather than importing package cst, since parser tests should be able to
// assert on the event stream without taking a dependency on the tree
// builder that consumes it.
type walkNode struct {
	kind     syntaxkind.Kind
	children []*walkNode
	text     string
}

// buildTree replays a Tree's event stream the same way cst.Build does,
// resolving ForwardParent chains, but into the local walkNode shape so this
// package's tests stay self-contained.
func buildTree(tree Tree) *walkNode {
	events := tree.Events
	consumed := make([]bool, len(events))
	var stack []*walkNode
	var root *walkNode

	finish := func() {
		if len(stack) == 0 {
			return
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
			parent.text += n.text
		} else {
			root = n
		}
	}

	for i := 0; i < len(events); i++ {
		if consumed[i] {
			continue
		}
		e := events[i]
		switch e.Kind {
		case EventTombstone, EventStartPlaceholder:
		case EventStart:
			var kinds []syntaxkind.Kind
			idx := i
			fwd := e.ForwardParent
			kinds = append(kinds, e.NodeKind)
			consumed[idx] = true
			for fwd != 0 {
				idx += fwd
				pe := events[idx]
				kinds = append(kinds, pe.NodeKind)
				consumed[idx] = true
				fwd = pe.ForwardParent
			}
			for j := len(kinds) - 1; j >= 0; j-- {
				stack = append(stack, &walkNode{kind: kinds[j]})
			}
		case EventFinish:
			finish()
		case EventToken:
			if len(stack) > 0 {
				stack[len(stack)-1].text += e.Text
			}
		case EventError:
		}
	}
	for len(stack) > 0 {
		finish()
	}
	return root
}

// findFirst does a depth-first search for the first descendant (including
// n itself) of the given kind.
func (n *walkNode) findFirst(kind syntaxkind.Kind) *walkNode {
	if n == nil {
		return nil
	}
	if n.kind == kind {
		return n
	}
	for _, c := range n.children {
		if found := c.findFirst(kind); found != nil {
			return found
		}
	}
	return nil
}

func (n *walkNode) findAll(kind syntaxkind.Kind) []*walkNode {
	var out []*walkNode
	var walk func(*walkNode)
	walk = func(m *walkNode) {
		if m.kind == kind {
			out = append(out, m)
		}
		for _, c := range m.children {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

func parse(src string) (Tree, *walkNode) {
	tree := Parse(lexer.Tokenize(src))
	return tree, buildTree(tree)
}

func TestSelectLiteral(t *testing.T) {
	tree, root := parse("SELECT 1;")
	if len(tree.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", tree.Diagnostics)
	}
	if root.kind != syntaxkind.SOURCE_FILE {
		t.Fatalf("root kind = %v, want SOURCE_FILE", root.kind)
	}
	sel := root.findFirst(syntaxkind.SELECT)
	if sel == nil {
		t.Fatal("expected a SELECT node")
	}
	lit := sel.findFirst(syntaxkind.LITERAL)
	if lit == nil || lit.text != "1" {
		t.Errorf("expected a LITERAL node with text \"1\", got %+v", lit)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	// `1 + 2 * 3` should bind as `1 + (2 * 3)`: the outer BIN_EXPR's
	// right-hand child is itself a BIN_EXPR for the multiplication, with
	// the literal "1" at the outer node's left.
	_, root := parse("SELECT 1 + 2 * 3;")
	sel := root.findFirst(syntaxkind.SELECT)
	outer := sel.findFirst(syntaxkind.BIN_EXPR)
	if outer == nil {
		t.Fatal("expected a BIN_EXPR node")
	}
	if len(outer.children) != 2 {
		t.Fatalf("outer BIN_EXPR has %d children, want 2: %+v", len(outer.children), outer.children)
	}
	lhs, rhs := outer.children[0], outer.children[1]
	if lhs.kind != syntaxkind.LITERAL || lhs.text != "1" {
		t.Errorf("outer BIN_EXPR lhs = %+v, want LITERAL \"1\"", lhs)
	}
	if rhs.kind != syntaxkind.BIN_EXPR {
		t.Errorf("outer BIN_EXPR rhs = %+v, want a nested BIN_EXPR (2 * 3)", rhs)
	} else if rhs.text != "2 * 3" {
		t.Errorf("nested BIN_EXPR text = %q, want %q", rhs.text, "2 * 3")
	}
}

func TestOperatorPrecedenceLeftAssociative(t *testing.T) {
	// `1 - 2 - 3` should bind as `(1 - 2) - 3`, not `1 - (2 - 3)`.
	_, root := parse("SELECT 1 - 2 - 3;")
	sel := root.findFirst(syntaxkind.SELECT)
	outer := sel.findFirst(syntaxkind.BIN_EXPR)
	if outer == nil || len(outer.children) != 2 {
		t.Fatalf("expected outer BIN_EXPR with 2 children, got %+v", outer)
	}
	lhs, rhs := outer.children[0], outer.children[1]
	if lhs.kind != syntaxkind.BIN_EXPR || lhs.text != "1 - 2" {
		t.Errorf("outer BIN_EXPR lhs = %+v, want nested BIN_EXPR \"1 - 2\"", lhs)
	}
	if rhs.kind != syntaxkind.LITERAL || rhs.text != "3" {
		t.Errorf("outer BIN_EXPR rhs = %+v, want LITERAL \"3\"", rhs)
	}
}

func TestAlterTableAddColumnNotNullDefault(t *testing.T) {
	tree, root := parse("ALTER TABLE t ADD COLUMN c INT NOT NULL DEFAULT 0;")
	if len(tree.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", tree.Diagnostics)
	}
	alter := root.findFirst(syntaxkind.ALTER_TABLE)
	if alter == nil {
		t.Fatal("expected an ALTER_TABLE node")
	}
	addCol := alter.findFirst(syntaxkind.ADD_COLUMN)
	if addCol == nil {
		t.Fatal("expected an ADD_COLUMN node")
	}
	col := addCol.findFirst(syntaxkind.COLUMN)
	if col == nil {
		t.Fatal("expected a COLUMN node under ADD_COLUMN")
	}
	if addCol.findFirst(syntaxkind.NOT_NULL_CONSTRAINT) == nil {
		t.Error("expected a NOT_NULL_CONSTRAINT under the column definition")
	}
	def := addCol.findFirst(syntaxkind.DEFAULT_CONSTRAINT)
	if def == nil {
		t.Fatal("expected a DEFAULT_CONSTRAINT under the column definition")
	}
	if lit := def.findFirst(syntaxkind.LITERAL); lit == nil || lit.text != "0" {
		t.Errorf("DEFAULT_CONSTRAINT literal = %+v, want LITERAL \"0\"", lit)
	}
}

func TestIsNotNullPostfix(t *testing.T) {
	_, root := parse("SELECT a IS NOT NULL;")
	sel := root.findFirst(syntaxkind.SELECT)
	isNot := sel.findFirst(syntaxkind.IS_NOT)
	if isNot == nil {
		t.Fatal("expected an IS_NOT node for \"a IS NOT NULL\"")
	}
	if len(isNot.children) != 1 {
		t.Errorf("IS_NOT has %d children, want 1 (just the operand)", len(isNot.children))
	}
}

func TestNotnullKeywordShorthand(t *testing.T) {
	// PostgreSQL's NOTNULL keyword shorthand (no "IS") should produce the
	// same IS_NOT postfix node as the spelled-out form.
	_, root := parse("SELECT a NOTNULL;")
	sel := root.findFirst(syntaxkind.SELECT)
	if sel.findFirst(syntaxkind.IS_NOT) == nil {
		t.Fatal("expected an IS_NOT node for \"a NOTNULL\"")
	}
}

func TestMissingSemicolonRecovery(t *testing.T) {
	// Two statements with no separating semicolon: the parser should still
	// recognize both SELECT statements, attaching a diagnostic at the
	// missing semicolon rather than losing the second statement.
	tree, root := parse("SELECT 1 SELECT 2;")
	if len(tree.Diagnostics) == 0 {
		t.Error("expected at least one diagnostic for the missing semicolon")
	}
	sels := root.findAll(syntaxkind.SELECT)
	if len(sels) != 2 {
		t.Fatalf("got %d SELECT nodes, want 2: %+v", len(sels), sels)
	}
}

func TestCompoundSelectUnionAll(t *testing.T) {
	tree, root := parse("SELECT 1 UNION ALL SELECT 2;")
	if len(tree.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", tree.Diagnostics)
	}
	compound := root.findFirst(syntaxkind.COMPOUND_SELECT)
	if compound == nil {
		t.Fatal("expected a COMPOUND_SELECT node")
	}
	sels := compound.findAll(syntaxkind.SELECT)
	if len(sels) != 2 {
		t.Errorf("got %d SELECT nodes under COMPOUND_SELECT, want 2", len(sels))
	}
}

func TestSelectFromMissingTableRecovery(t *testing.T) {
	// "SELECT FROM t;" has no target list - the parser must not crash and
	// must still produce a tree covering the whole input, with at least
	// one diagnostic recorded.
	tree, root := parse("SELECT FROM t;")
	if len(tree.Diagnostics) == 0 {
		t.Error("expected a diagnostic for the missing select-list")
	}
	if root.kind != syntaxkind.SOURCE_FILE {
		t.Fatalf("root kind = %v, want SOURCE_FILE", root.kind)
	}
	assertLossless(t, "SELECT FROM t;", tree)
}

func TestCreateTableDoubleCommaRecovery(t *testing.T) {
	tree, root := parse("CREATE TABLE t (a INT,, b TEXT);")
	if len(tree.Diagnostics) == 0 {
		t.Error("expected a diagnostic for the doubled comma")
	}
	if root.findFirst(syntaxkind.CREATE_TABLE) == nil {
		t.Error("expected a CREATE_TABLE node despite the malformed column list")
	}
	assertLossless(t, "CREATE TABLE t (a INT,, b TEXT);", tree)
}

func TestUpdateSetMissingExprRecovery(t *testing.T) {
	tree, root := parse("UPDATE t SET a = ;")
	if len(tree.Diagnostics) == 0 {
		t.Error("expected a diagnostic for the missing assignment value")
	}
	if root.findFirst(syntaxkind.UPDATE_STMT) == nil {
		t.Error("expected an UPDATE_STMT node despite the malformed SET clause")
	}
	assertLossless(t, "UPDATE t SET a = ;", tree)
}

// assertLossless is the universal "every byte is accounted for" invariant:
// concatenating the text of every Token event in stream order reconstructs
// src exactly, even over malformed input.
func assertLossless(t *testing.T, src string, tree Tree) {
	t.Helper()
	var got string
	for _, e := range tree.Events {
		if e.Kind == EventToken {
			got += e.Text
		}
	}
	if got != src {
		t.Errorf("concatenated token text = %q, want original source %q", got, src)
	}
}

func TestLosslessConcatenation(t *testing.T) {
	srcs := []string{
		"SELECT 1;",
		"  select  a , b  from t  where a = 1 ;  ",
		"SELECT 1 SELECT 2;",
		"CREATE TABLE t (a INT,, b TEXT);",
		"",
		"garbage !@# tokens )))",
	}
	for _, src := range srcs {
		tree := Parse(lexer.Tokenize(src))
		assertLossless(t, src, tree)
	}
}

func TestEveryStartHasAFinish(t *testing.T) {
	// Marker discipline invariant: every completed Start event must be
	// balanced by exactly one Finish once ForwardParent chains are
	// resolved. buildTree does not panic on an imbalance: a stray Finish
	// that closes SOURCE_FILE early shows up here as a nil root or a root
	// of another kind, while a missing Finish is closed at the end of the
	// replay and is not caught by this check.
	srcs := []string{
		"SELECT 1;",
		"ALTER TABLE t ADD COLUMN c INT NOT NULL DEFAULT 0;",
		"SELECT 1 + 2 * 3;",
		"INSERT INTO t (a, b) VALUES (1, 2);",
		"SELECT FROM t;",
		"CREATE TABLE t (a INT,, b TEXT);",
	}
	for _, src := range srcs {
		tree := Parse(lexer.Tokenize(src))
		root := buildTree(tree)
		if root == nil {
			t.Errorf("Parse(%q): buildTree produced a nil root", src)
			continue
		}
		if root.kind != syntaxkind.SOURCE_FILE {
			t.Errorf("Parse(%q): root kind = %v, want SOURCE_FILE", src, root.kind)
		}
	}
}

func TestTerminatesOnGarbageInput(t *testing.T) {
	// A battery of inputs with no valid statement structure at all; Parse
	// must still return (not hang/panic past its own recover) and produce
	// a SOURCE_FILE root.
	srcs := []string{
		")))",
		"((((",
		";;;;;",
		"1 2 3 4 5",
		"SELECT SELECT SELECT",
	}
	for _, src := range srcs {
		tree := Parse(lexer.Tokenize(src))
		root := buildTree(tree)
		if root == nil || root.kind != syntaxkind.SOURCE_FILE {
			t.Errorf("Parse(%q) did not terminate in a single SOURCE_FILE root", src)
		}
	}
}

func TestMarkerPrecedeOrdering(t *testing.T) {
	// Precede's retroactive reparenting (used for left-recursive binary
	// expressions and compound selects) must nest correctly however many
	// times it's chained - `1 + 2 + 3 + 4` should produce a
	// left-leaning chain three BIN_EXPRs deep.
	_, root := parse("SELECT 1 + 2 + 3 + 4;")
	sel := root.findFirst(syntaxkind.SELECT)
	depth := 0
	n := sel.findFirst(syntaxkind.BIN_EXPR)
	for n != nil && n.kind == syntaxkind.BIN_EXPR {
		depth++
		if len(n.children) == 0 {
			break
		}
		n = n.children[0]
	}
	if depth != 3 {
		t.Errorf("got a %d-deep left-leaning BIN_EXPR chain, want 3", depth)
	}
}
