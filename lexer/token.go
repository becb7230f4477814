// Package lexer turns PostgreSQL source text into a flat token stream. It is
// the "external collaborator" the parser spec (§1, §6) consumes through:
// every token carries its SyntaxKind classification, its source text, and
// whether it was lexically adjacent to the token before it. The parser never
// re-reads the source string; it only ever walks this slice.
package lexer

import "github.com/sqldef/pgparse/syntaxkind"

// Token is one lexical unit, including trivia (whitespace/comments). Joined
// records whether there was zero bytes of separation between this token and
// the previous non-trivia token. The lexer emits every operator character
// as its own token (">=" arrives as ">" then a Joined "="); Joined is the
// adjacency signal the parser reads through nextNotJoinedOp.
type Token struct {
	Kind   syntaxkind.Kind
	Text   string
	Joined bool
}

// Len returns the byte length of the token's source text, which is what the
// lossless-concatenation invariant (§8.1) is checked against.
func (t Token) Len() int {
	return len(t.Text)
}
