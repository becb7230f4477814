package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/sqldef/pgparse/syntaxkind"
)

// operatorChars is PostgreSQL's "operator alphabet" (see the PG docs section
// on operators): any run of these not equal to a built-in operator is a
// CUSTOM_OP once the parser reassembles it from adjacent single-char
// punctuation tokens. The lexer below never merges these itself: it emits
// one token per character so the
// parser's next_not_joined_op can tell "a < b" apart from "a<>b".
const operatorChars = "+-*/<>=~!@#%^&|?"

// Tokenize scans src into a flat token list, including whitespace and
// comment trivia. It never returns an error: anything it cannot classify
// becomes an ERROR token of length 1 and scanning continues, because a
// lexer that gives up early would violate the parser's "always produces a
// tree covering the input" contract (spec §7) before the parser even sees a
// token.
func Tokenize(src string) []Token {
	s := &scanner{src: src}
	var toks []Token
	lastEnd := 0
	for s.pos < len(s.src) {
		start := s.pos
		kind, text := s.next()
		if text == "" {
			// Defensive: never loop forever on a scanner bug.
			_, w := utf8.DecodeRuneInString(s.src[s.pos:])
			if w == 0 {
				w = 1
			}
			text = s.src[s.pos : s.pos+w]
			kind = syntaxkind.ERROR
			s.pos += w
		}
		toks = append(toks, Token{Kind: kind, Text: text, Joined: start == lastEnd})
		if kind != syntaxkind.WHITESPACE && kind != syntaxkind.COMMENT {
			lastEnd = s.pos
		}
	}
	toks = append(toks, Token{Kind: syntaxkind.Eof, Text: "", Joined: s.pos == lastEnd})
	return toks
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) peekByte(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

func (s *scanner) rest() string {
	return s.src[s.pos:]
}

// next scans exactly one token starting at s.pos and advances s.pos past it.
func (s *scanner) next() (syntaxkind.Kind, string) {
	c := s.peekByte(0)

	switch {
	case isSpace(c):
		return s.scanWhitespace()
	case c == '-' && s.peekByte(1) == '-':
		return s.scanLineComment()
	case c == '/' && s.peekByte(1) == '*':
		return s.scanBlockComment()
	case c == '$' && (isDigit(s.peekByte(1))):
		return s.scanParam()
	case c == '$' && isDollarQuoteStart(s.rest()):
		return s.scanDollarQuoted()
	case c == '\'':
		return s.scanString('\'', syntaxkind.STRING)
	case c == '"':
		return s.scanQuotedIdent()
	case (c == 'e' || c == 'E') && s.peekByte(1) == '\'':
		return s.scanPrefixedString(syntaxkind.ESC_STRING)
	case (c == 'b' || c == 'B') && s.peekByte(1) == '\'':
		return s.scanPrefixedString(syntaxkind.BIT_STRING)
	case (c == 'x' || c == 'X') && s.peekByte(1) == '\'':
		return s.scanPrefixedString(syntaxkind.BYTE_STRING)
	case isDigit(c) || (c == '.' && isDigit(s.peekByte(1)) && (s.pos == 0 || !isIdentCont(s.src[s.pos-1]))):
		return s.scanNumber()
	case isIdentStart(c):
		return s.scanIdent()
	default:
		return s.scanPunct()
	}
}

func (s *scanner) scanWhitespace() (syntaxkind.Kind, string) {
	start := s.pos
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
	return syntaxkind.WHITESPACE, s.src[start:s.pos]
}

func (s *scanner) scanLineComment() (syntaxkind.Kind, string) {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	return syntaxkind.COMMENT, s.src[start:s.pos]
}

func (s *scanner) scanBlockComment() (syntaxkind.Kind, string) {
	start := s.pos
	s.pos += 2 // "/*"
	depth := 1
	for s.pos < len(s.src) && depth > 0 {
		switch {
		case s.peekByte(0) == '/' && s.peekByte(1) == '*':
			depth++
			s.pos += 2
		case s.peekByte(0) == '*' && s.peekByte(1) == '/':
			depth--
			s.pos += 2
		default:
			s.pos++
		}
	}
	return syntaxkind.COMMENT, s.src[start:s.pos]
}

// scanParam handles $1, $2, ... positional parameters.
func (s *scanner) scanParam() (syntaxkind.Kind, string) {
	start := s.pos
	s.pos++ // '$'
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	return syntaxkind.PARAM, s.src[start:s.pos]
}

// isDollarQuoteStart reports whether rest begins a dollar-quote tag:
// $$ or $tag$ where tag is an identifier.
func isDollarQuoteStart(rest string) bool {
	if len(rest) < 2 || rest[0] != '$' {
		return false
	}
	if rest[1] == '$' {
		return true
	}
	i := 1
	for i < len(rest) && (isIdentStart(rest[i]) || isDigit(rest[i])) {
		i++
	}
	return i > 1 && i < len(rest) && rest[i] == '$'
}

func (s *scanner) scanDollarQuoted() (syntaxkind.Kind, string) {
	start := s.pos
	tagEnd := s.pos + 1
	for tagEnd < len(s.src) && s.src[tagEnd] != '$' {
		tagEnd++
	}
	if tagEnd >= len(s.src) {
		s.pos = len(s.src)
		return syntaxkind.ERROR, s.src[start:s.pos]
	}
	tag := s.src[s.pos : tagEnd+1] // e.g. "$$" or "$tag$"
	s.pos = tagEnd + 1
	idx := strings.Index(s.src[s.pos:], tag)
	if idx < 0 {
		s.pos = len(s.src)
		return syntaxkind.DOLLAR_QUOTED_STRING, s.src[start:s.pos]
	}
	s.pos += idx + len(tag)
	return syntaxkind.DOLLAR_QUOTED_STRING, s.src[start:s.pos]
}

// scanString scans a quote-delimited literal where a doubled quote char is
// an escaped literal quote (the SQL-standard '' escaping; backslash escapes
// inside E'...' strings are accepted too since PG's standard_conforming_
// strings default still lets E-strings use backslash escapes).
func (s *scanner) scanString(quote byte, kind syntaxkind.Kind) (syntaxkind.Kind, string) {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && kind == syntaxkind.ESC_STRING && s.pos+1 < len(s.src) {
			s.pos += 2
			continue
		}
		if c == quote {
			if s.peekByte(1) == quote {
				s.pos += 2
				continue
			}
			s.pos++
			break
		}
		s.pos++
	}
	return kind, s.src[start:s.pos]
}

// scanPrefixedString scans a one-letter-prefixed quoted literal (E'...',
// B'...', X'...') as a single token including the prefix letter.
func (s *scanner) scanPrefixedString(kind syntaxkind.Kind) (syntaxkind.Kind, string) {
	start := s.pos
	s.pos++ // prefix letter
	s.scanString('\'', kind)
	return kind, s.src[start:s.pos]
}

func (s *scanner) scanQuotedIdent() (syntaxkind.Kind, string) {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		if s.src[s.pos] == '"' {
			if s.peekByte(1) == '"' {
				s.pos += 2
				continue
			}
			s.pos++
			break
		}
		s.pos++
	}
	return syntaxkind.IDENT, s.src[start:s.pos]
}

// scanNumber scans INT_NUMBER or FLOAT_NUMBER. Per spec §9 "Float-dot
// ambiguity", `1.foo` is deliberately lexed as FLOAT_NUMBER "1." followed by
// IDENT "foo" here; parser.Parser.splitFloat undoes this in field-expr
// context.
func (s *scanner) scanNumber() (syntaxkind.Kind, string) {
	start := s.pos
	isFloat := false
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.peekByte(0) == '.' && s.peekByte(1) != '.' {
		isFloat = true
		s.pos++ // '.'
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
	}
	if c := s.peekByte(0); c == 'e' || c == 'E' {
		save := s.pos
		s.pos++
		if c := s.peekByte(0); c == '+' || c == '-' {
			s.pos++
		}
		if isDigit(s.peekByte(0)) {
			isFloat = true
			for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
				s.pos++
			}
		} else {
			s.pos = save
		}
	}
	if isFloat {
		return syntaxkind.FLOAT_NUMBER, s.src[start:s.pos]
	}
	return syntaxkind.INT_NUMBER, s.src[start:s.pos]
}

func (s *scanner) scanIdent() (syntaxkind.Kind, string) {
	start := s.pos
	for s.pos < len(s.src) && isIdentCont(s.src[s.pos]) {
		s.pos++
	}
	text := s.src[start:s.pos]
	if kind, ok := syntaxkind.FromKeyword(text); ok {
		return kind, text
	}
	return syntaxkind.IDENT, text
}

// singleCharPunct maps structural punctuation (never part of a multi-char
// custom operator) straight to its kind.
var singleCharPunct = map[byte]syntaxkind.Kind{
	';':  syntaxkind.SEMICOLON,
	',':  syntaxkind.COMMA,
	'(':  syntaxkind.L_PAREN,
	')':  syntaxkind.R_PAREN,
	'[':  syntaxkind.L_BRACK,
	']':  syntaxkind.R_BRACK,
	':':  syntaxkind.COLON,
	'`':  syntaxkind.BACKTICK,
	'.':  syntaxkind.DOT,
}

// operatorCharPunct maps one operator-alphabet character to its single-char
// kind. The parser merges adjacent runs of these into NEQ/NEQB/COLON2/
// COLONEQ/GTEQ/LTEQ/FAT_ARROW/CUSTOM_OP as appropriate (see parser/expr.go).
var operatorCharPunct = map[byte]syntaxkind.Kind{
	'<': syntaxkind.L_ANGLE,
	'>': syntaxkind.R_ANGLE,
	'@': syntaxkind.AT,
	'#': syntaxkind.POUND,
	'~': syntaxkind.TILDE,
	'?': syntaxkind.QUESTION,
	'&': syntaxkind.AMP,
	'|': syntaxkind.PIPE,
	'+': syntaxkind.PLUS,
	'*': syntaxkind.STAR,
	'/': syntaxkind.SLASH,
	'^': syntaxkind.CARET,
	'%': syntaxkind.PERCENT,
	'=': syntaxkind.EQ,
	'!': syntaxkind.BANG,
	'-': syntaxkind.MINUS,
}

func (s *scanner) scanPunct() (syntaxkind.Kind, string) {
	c := s.peekByte(0)
	if kind, ok := singleCharPunct[c]; ok {
		s.pos++
		return kind, s.src[s.pos-1 : s.pos]
	}
	if kind, ok := operatorCharPunct[c]; ok {
		s.pos++
		return kind, s.src[s.pos-1 : s.pos]
	}
	// Unrecognized byte: consume it as an ERROR token of length 1 (or the
	// full rune for multi-byte UTF-8) so the lexer always makes progress.
	_, w := utf8.DecodeRuneInString(s.rest())
	if w == 0 {
		w = 1
	}
	s.pos += w
	return syntaxkind.ERROR, s.src[s.pos-w : s.pos]
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAsciiLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentStart/isIdentCont treat any byte >= 0x80 as identifier material
// (the common case: a UTF-8 continuation or lead byte of a multi-byte
// letter). This undercounts a few non-letter high code points but never
// splits a valid multi-byte identifier, which is what matters for a
// lossless tokenizer.
func isIdentStart(c byte) bool { return c == '_' || isAsciiLetter(c) || c >= 0x80 }
func isIdentCont(c byte) bool {
	return c == '_' || c == '$' || isDigit(c) || isAsciiLetter(c) || c >= 0x80
}
