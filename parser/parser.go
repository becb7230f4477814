package parser

import (
	"fmt"

	"github.com/sqldef/pgparse/lexer"
	"github.com/sqldef/pgparse/syntaxkind"
)

// maxSteps bounds the number of tokens a single parse may consume before
// the parser gives up and fails fast. It exists purely as a safeguard
// against a grammar bug that advances zero tokens in a loop; legitimate
// input never comes close to it.
const maxSteps = 10_000_000

// Diagnostic is one error attached to the event stream at a token
// position. Position is the index into the original (trivia-inclusive)
// token slice the diagnostic refers to.
type Diagnostic struct {
	Message  string
	Position int
}

// Parser is the stateful façade the grammar drives. It owns the input
// token cursor and the output event buffer; nothing else. A Parser value
// is built fresh per Parse call and discarded once events/diagnostics have
// been read out of it.
type Parser struct {
	tokens []lexer.Token
	pos    int // index into tokens, may point at trivia

	events      []Event
	diagnostics []Diagnostic

	steps int

	// fuel is initialised by NewParser; no lookahead primitive reads it, so
	// it does not bound nth().
	fuel int
}

// NewParser wraps a token stream for a single parse. Callers almost always
// want Parse instead; NewParser is exposed for grammar-internal tests that
// want to drive a sub-production directly.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens, fuel: 256}
}

// Events returns the finished event stream. Valid only after the grammar
// entry point has returned.
func (p *Parser) Events() []Event {
	return p.events
}

// Diagnostics returns every error attached during the parse, in position
// order.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

// Tokens exposes the original, trivia-inclusive token slice so the tree
// builder can recover exact source text for every emitted token event.
func (p *Parser) Tokens() []lexer.Token {
	return p.tokens
}

// nthRaw returns the raw token-stream index of the nth non-trivia token at
// or after start, or len(p.tokens) if none remains.
func (p *Parser) nthRaw(start, n int) int {
	i := start
	seen := 0
	for i < len(p.tokens) {
		if !syntaxkind.IsTrivia(p.tokens[i].Kind) {
			if seen == n {
				return i
			}
			seen++
		}
		i++
	}
	return len(p.tokens)
}

// current is the kind of the next non-trivia token, or EOF.
func (p *Parser) current() syntaxkind.Kind {
	return p.nth(0)
}

// nth is the kind of the nth-upcoming non-trivia token (0 = current),
// EOF once the input is exhausted. Lookahead deeper than a handful of
// tokens is a grammar smell, but nothing here bounds n: the fuel field
// is not consulted, and the scan simply stops at the end of the tokens.
func (p *Parser) nth(n int) syntaxkind.Kind {
	idx := p.nthRaw(p.pos, n)
	if idx >= len(p.tokens) {
		return syntaxkind.Eof
	}
	return p.tokens[idx].Kind
}

// nthText returns the source text of the nth-upcoming non-trivia token,
// used by keyword-dispatch code that needs to compare against a literal
// (e.g. distinguishing "FOREIGN TABLE" from "FOREIGN DATA WRAPPER").
func (p *Parser) nthText(n int) string {
	idx := p.nthRaw(p.pos, n)
	if idx >= len(p.tokens) {
		return ""
	}
	return p.tokens[idx].Text
}

func (p *Parser) at(kind syntaxkind.Kind) bool {
	return p.current() == kind
}

func (p *Parser) atTS(set syntaxkind.TokenSet) bool {
	return set.Contains(p.current())
}

func (p *Parser) nthAt(n int, kind syntaxkind.Kind) bool {
	return p.nth(n) == kind
}

func (p *Parser) nthAtTS(n int, set syntaxkind.TokenSet) bool {
	return set.Contains(p.nth(n))
}

// atEOF reports whether every non-trivia token has been consumed.
func (p *Parser) atEOF() bool {
	return p.current() == syntaxkind.Eof
}

// bumpAny emits whatever is current - trivia included - as a Token event
// and advances one raw position. It is the only primitive that actually
// moves p.pos; every other consumption primitive is built on it so that
// trivia tokens between "meaningful" tokens are never silently dropped.
func (p *Parser) bumpAny() {
	p.steps++
	if p.steps > maxSteps {
		panic("parser: exceeded step budget, aborting to avoid infinite loop")
	}
	// Emit any trivia sitting directly ahead first, then the real token.
	for p.pos < len(p.tokens) && syntaxkind.IsTrivia(p.tokens[p.pos].Kind) {
		p.emitToken(p.tokens[p.pos])
		p.pos++
	}
	if p.pos >= len(p.tokens) {
		return
	}
	p.emitToken(p.tokens[p.pos])
	p.pos++
}

func (p *Parser) emitToken(tok lexer.Token) {
	p.events = append(p.events, Event{Kind: EventToken, TokenKind: tok.Kind, Text: tok.Text})
}

// bump asserts the parser is at kind and consumes it. Callers only use
// this after checking at(kind)/current() themselves (e.g. inside a
// dispatch switch), so the assertion failing indicates a grammar bug, not
// malformed input; it degrades to err_and_bump rather than panicking so a
// bug here still yields a tree instead of crashing the whole parse.
func (p *Parser) bump(kind syntaxkind.Kind) {
	if !p.at(kind) {
		p.errAndBump(fmt.Sprintf("internal: expected %s, at %s", kind, p.current()))
		return
	}
	p.bumpAny()
}

// eat consumes the current token if it matches kind and reports whether
// it did; no diagnostic on mismatch.
func (p *Parser) eat(kind syntaxkind.Kind) bool {
	if !p.at(kind) {
		return false
	}
	p.bumpAny()
	return true
}

// expect is eat plus a diagnostic on mismatch.
func (p *Parser) expect(kind syntaxkind.Kind) bool {
	if p.eat(kind) {
		return true
	}
	p.error(fmt.Sprintf("expected %s, found %s", kind, p.current()))
	return false
}

// error attaches a diagnostic at the current position without consuming
// anything.
func (p *Parser) error(msg string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Message: msg, Position: p.pos})
	p.events = append(p.events, Event{Kind: EventError, Text: msg})
}

// errAndBump records msg, then wraps the current token in an ERROR node
// and advances past it - used when the current token cannot start
// anything the caller recognizes and must be discarded to make progress.
func (p *Parser) errAndBump(msg string) {
	m := p.start()
	p.error(msg)
	if !p.atEOF() {
		p.bumpAny()
	}
	m.Complete(p, syntaxkind.ERROR)
}

// errRecover records msg; if the current token is in recoverySet it is
// left in place for an outer frame to resynchronize on, otherwise it is
// wrapped and consumed like errAndBump.
func (p *Parser) errRecover(msg string, recoverySet syntaxkind.TokenSet) {
	if p.atTS(recoverySet) || p.atEOF() {
		p.error(msg)
		return
	}
	p.errAndBump(msg)
}

// start emits any trivia sitting ahead, then begins a new marker, so
// leading whitespace/comments land in the enclosing node rather than
// inside the new one.
func (p *Parser) start() Marker {
	for p.pos < len(p.tokens) && syntaxkind.IsTrivia(p.tokens[p.pos].Kind) {
		p.emitToken(p.tokens[p.pos])
		p.pos++
	}
	return p.newMarker()
}

// nextNotJoinedOp reports whether the nth-upcoming punctuation token is
// NOT lexically adjacent to the one before it - i.e. there was whitespace
// or a comment between them. The grammar uses this to stop greedily
// merging a run of operator characters into one CUSTOM_OP once a real gap
// appears, distinguishing e.g. `a <= b` from a hypothetical `a < = b`.
func (p *Parser) nextNotJoinedOp(n int) bool {
	idx := p.nthRaw(p.pos, n)
	if idx >= len(p.tokens) {
		return true
	}
	return !p.tokens[idx].Joined
}

// splitFloat handles `1.foo`: the lexer produced a single FLOAT_NUMBER
// token spanning "1." because it cannot see that a field-access context
// follows. When the grammar discovers that context, it calls splitFloat
// to reinterpret that one token as INT_NUMBER "1", DOT ".", and (if a
// fractional part followed the dot) a trailing fragment, each emitted as
// its own Token event under the still-open marker. Returns false if the
// current token isn't a splittable float.
func (p *Parser) splitFloat() bool {
	if !p.at(syntaxkind.FLOAT_NUMBER) {
		return false
	}
	text := p.nthText(0)
	dot := -1
	for i, c := range text {
		if c == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return false
	}

	intPart := text[:dot]
	rest := text[dot+1:]

	p.steps++
	// Consume any leading trivia the normal bumpAny path would have.
	for p.pos < len(p.tokens) && syntaxkind.IsTrivia(p.tokens[p.pos].Kind) {
		p.emitToken(p.tokens[p.pos])
		p.pos++
	}
	p.pos++ // consume the original FLOAT_NUMBER raw slot

	p.events = append(p.events, Event{Kind: EventToken, TokenKind: syntaxkind.INT_NUMBER, Text: intPart})
	p.events = append(p.events, Event{Kind: EventToken, TokenKind: syntaxkind.DOT, Text: "."})
	if rest != "" {
		p.events = append(p.events, Event{Kind: EventToken, TokenKind: syntaxkind.INT_NUMBER, Text: rest})
	}
	return true
}
