// Package cst is the tree-builder collaborator: it turns the flat event
// stream a parser.Parse call produces, plus the original token slice, into
// a navigable concrete syntax tree. Nothing here re-parses or validates
// anything - it only replays the Start/Finish/Token events onto an
// explicit stack, resolving the retroactive reparenting Marker.Precede
// recorded via ForwardParent along the way. This is the rust-analyzer
// "green tree" construction step, adapted to a plain Go struct tree rather
// than an interned, structurally-shared arena, since nothing downstream of
// this module needs incremental reparsing.
package cst

import (
	"github.com/sqldef/pgparse/lexer"
	"github.com/sqldef/pgparse/parser"
	"github.com/sqldef/pgparse/syntaxkind"
)

// Node is one interior tree node: a completed marker's kind plus its
// children in source order. Children are either *Node or *Token.
type Node struct {
	Kind     syntaxkind.Kind
	Children []Element
}

// Token is one leaf: a single lexer token (trivia included) carried
// through from the event stream unchanged.
type Token struct {
	Kind syntaxkind.Kind
	Text string
}

// Element is the common type of a Node's children.
type Element interface {
	isElement()
}

func (*Node) isElement()  {}
func (*Token) isElement() {}

// Diagnostic is a parser error, resolved to a byte offset into the
// original source text (computed by summing the lengths of every token
// before its recorded position) so callers don't need to know about the
// parser's internal token-index addressing.
type Diagnostic struct {
	Message string
	Offset  int
}

// Text concatenates every token's source text under n, depth-first. For
// the root node this reconstructs the original input exactly - the
// lossless-concatenation invariant every build of this tree must satisfy.
func (n *Node) Text() string {
	var b []byte
	var walk func(Element)
	walk = func(e Element) {
		switch v := e.(type) {
		case *Node:
			for _, c := range v.Children {
				walk(c)
			}
		case *Token:
			b = append(b, v.Text...)
		}
	}
	walk(n)
	return string(b)
}

// ChildNodes returns only the *Node elements among n's children, skipping
// tokens - the common case for code that walks the tree structurally
// rather than reading source text back out of it.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if cn, ok := c.(*Node); ok {
			out = append(out, cn)
		}
	}
	return out
}

// FindFirst does a depth-first search for the first descendant node of the
// given kind, including n itself.
func (n *Node) FindFirst(kind syntaxkind.Kind) *Node {
	if n.Kind == kind {
		return n
	}
	for _, c := range n.Children {
		if cn, ok := c.(*Node); ok {
			if found := cn.FindFirst(kind); found != nil {
				return found
			}
		}
	}
	return nil
}

// Walk calls fn for n and every descendant node, depth-first pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		if cn, ok := c.(*Node); ok {
			cn.Walk(fn)
		}
	}
}

// Tree is the outcome of Build: the root node plus the diagnostics that
// accumulated while producing the event stream it was built from.
type Tree struct {
	Root        *Node
	Diagnostics []Diagnostic
}

// Build replays tree.Events onto an explicit node stack, producing a Tree.
// It never fails: a malformed event stream (which Parse itself never
// produces, by construction) would simply yield a shallower tree than
// expected rather than panicking.
func Build(tree parser.Tree) *Tree {
	events := tree.Events
	consumed := make([]bool, len(events))

	var stack []*Node
	var root *Node

	finishNode := func() {
		if len(stack) == 0 {
			return
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
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
		case parser.EventTombstone, parser.EventStartPlaceholder:
			// Abandoned markers never reach here as anything but these two
			// kinds, and both carry no children of their own to preserve.
		case parser.EventStart:
			// Walk the forward-parent chain collected by Marker.Precede,
			// gathering every ancestor this node retroactively acquired,
			// then push them outermost-first so normal Finish handling
			// closes them in the right order.
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
				stack = append(stack, &Node{Kind: kinds[j]})
			}
		case parser.EventFinish:
			finishNode()
		case parser.EventToken:
			tok := &Token{Kind: e.TokenKind, Text: e.Text}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, tok)
			}
		case parser.EventError:
			// Diagnostics are read from tree.Diagnostics (which carries a
			// token-index position); the EventError marker in the stream
			// itself contributes no tree structure.
		}
	}
	for len(stack) > 0 {
		finishNode()
	}

	return &Tree{Root: root, Diagnostics: resolveDiagnostics(tree.Diagnostics, tree.Tokens)}
}

func resolveDiagnostics(diags []parser.Diagnostic, tokens []lexer.Token) []Diagnostic {
	out := make([]Diagnostic, len(diags))
	for i, d := range diags {
		offset := 0
		for j := 0; j < d.Position && j < len(tokens); j++ {
			offset += tokens[j].Len()
		}
		out[i] = Diagnostic{Message: d.Message, Offset: offset}
	}
	return out
}
