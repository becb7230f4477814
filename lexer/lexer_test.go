package lexer

import (
	"testing"

	"github.com/sqldef/pgparse/syntaxkind"
)

// nonTrivia strips whitespace/comment tokens, the shape most tests below
// want to assert on.
func nonTrivia(toks []Token) []Token {
	var out []Token
	for _, tok := range toks {
		if tok.Kind == syntaxkind.WHITESPACE || tok.Kind == syntaxkind.COMMENT {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func TestTokenizeKeywordsAndIdents(t *testing.T) {
	toks := nonTrivia(Tokenize("select foo from bar"))
	want := []struct {
		kind syntaxkind.Kind
		text string
	}{
		{syntaxkind.SELECT_KW, "select"},
		{syntaxkind.IDENT, "foo"},
		{syntaxkind.FROM_KW, "from"},
		{syntaxkind.IDENT, "bar"},
		{syntaxkind.Eof, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token %d = {%v %q}, want {%v %q}", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
}

func TestTokenizeKeywordIsCaseInsensitive(t *testing.T) {
	toks := nonTrivia(Tokenize("SeLeCt"))
	if len(toks) != 2 || toks[0].Kind != syntaxkind.SELECT_KW {
		t.Fatalf("got %+v, want a single SELECT_KW token", toks)
	}
}

func TestTokenizePreservesTrivia(t *testing.T) {
	src := "select  1 -- trailing\nfrom t"
	toks := Tokenize(src)
	var got string
	for _, tok := range toks {
		got += tok.Text
	}
	if got != src {
		t.Errorf("concatenating every token's text = %q, want the original source %q", got, src)
	}

	foundComment := false
	for _, tok := range toks {
		if tok.Kind == syntaxkind.COMMENT {
			foundComment = true
			if tok.Text != "-- trailing" {
				t.Errorf("comment token text = %q, want %q", tok.Text, "-- trailing")
			}
		}
	}
	if !foundComment {
		t.Error("expected a COMMENT token to be preserved in the stream")
	}
}

func TestTokenizeBlockCommentNesting(t *testing.T) {
	src := "/* outer /* inner */ still outer */"
	toks := Tokenize(src)
	if len(toks) != 2 || toks[0].Kind != syntaxkind.COMMENT || toks[0].Text != src {
		t.Fatalf("got %+v, want one COMMENT token spanning the whole nested comment", toks)
	}
}

func TestTokenizeDollarQuotedString(t *testing.T) {
	src := "$tag$it's a string$tag$"
	toks := Tokenize(src)
	if len(toks) != 2 || toks[0].Kind != syntaxkind.DOLLAR_QUOTED_STRING || toks[0].Text != src {
		t.Fatalf("got %+v, want one DOLLAR_QUOTED_STRING token spanning %q", toks, src)
	}
}

func TestTokenizeDollarQuotedStringNoTag(t *testing.T) {
	src := "$$hello$$"
	toks := Tokenize(src)
	if len(toks) != 2 || toks[0].Kind != syntaxkind.DOLLAR_QUOTED_STRING || toks[0].Text != src {
		t.Fatalf("got %+v, want one DOLLAR_QUOTED_STRING token spanning %q", toks, src)
	}
}

func TestTokenizeStringEscapedQuote(t *testing.T) {
	src := "'it''s'"
	toks := Tokenize(src)
	if len(toks) != 2 || toks[0].Kind != syntaxkind.STRING || toks[0].Text != src {
		t.Fatalf("got %+v, want one STRING token spanning %q", toks, src)
	}
}

func TestTokenizePrefixedStrings(t *testing.T) {
	tests := []struct {
		src  string
		kind syntaxkind.Kind
	}{
		{"E'abc\\n'", syntaxkind.ESC_STRING},
		{"B'0101'", syntaxkind.BIT_STRING},
		{"X'1A2B'", syntaxkind.BYTE_STRING},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := Tokenize(tt.src)
			if len(toks) != 2 || toks[0].Kind != tt.kind || toks[0].Text != tt.src {
				t.Fatalf("got %+v, want one %v token spanning %q", toks, tt.kind, tt.src)
			}
		})
	}
}

func TestTokenizeQuotedIdent(t *testing.T) {
	src := `"My Col"""`
	toks := Tokenize(src)
	if len(toks) != 2 || toks[0].Kind != syntaxkind.IDENT {
		t.Fatalf("got %+v, want a single quoted IDENT", toks)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind syntaxkind.Kind
	}{
		{"123", syntaxkind.INT_NUMBER},
		{"123.456", syntaxkind.FLOAT_NUMBER},
		{"1.", syntaxkind.FLOAT_NUMBER},
		{".5", syntaxkind.FLOAT_NUMBER},
		{"1e10", syntaxkind.FLOAT_NUMBER},
		{"1.5e-3", syntaxkind.FLOAT_NUMBER},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := Tokenize(tt.src)
			if len(toks) != 2 || toks[0].Kind != tt.kind || toks[0].Text != tt.src {
				t.Fatalf("got %+v, want one %v token spanning %q", toks, tt.kind, tt.src)
			}
		})
	}
}

func TestTokenizeFloatDotFieldAmbiguity(t *testing.T) {
	// Per the lexer's own documented behavior: "t.1.foo" lexes "1." as one
	// FLOAT_NUMBER token, leaving the parser's splitFloat to undo this in
	// field-expr context.
	toks := nonTrivia(Tokenize("t.1.foo"))
	want := []struct {
		kind syntaxkind.Kind
		text string
	}{
		{syntaxkind.IDENT, "t"},
		{syntaxkind.DOT, "."},
		{syntaxkind.FLOAT_NUMBER, "1."},
		{syntaxkind.IDENT, "foo"},
		{syntaxkind.Eof, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %+v, want %d", len(toks), toks, len(want))
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Errorf("token %d = {%v %q}, want {%v %q}", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
}

func TestTokenizeJoinedAdjacency(t *testing.T) {
	toks := Tokenize("a<=b")
	// a, <, =, b, Eof - lexer emits one punctuation token per operator
	// char; the parser is responsible for merging adjacent runs.
	if len(toks) != 5 {
		t.Fatalf("got %d tokens %+v, want 5", len(toks), toks)
	}
	if !toks[1].Joined {
		t.Error("'<' immediately after 'a' should be Joined")
	}
	if !toks[2].Joined {
		t.Error("'=' immediately after '<' should be Joined")
	}
	if !toks[3].Joined {
		t.Error("'b' immediately after '=' should be Joined")
	}
}

func TestTokenizeNotJoinedAcrossWhitespace(t *testing.T) {
	toks := Tokenize("a < = b")
	nt := nonTrivia(toks)
	// a, <, =, b, Eof
	if len(nt) != 5 {
		t.Fatalf("got %d non-trivia tokens %+v, want 5", len(nt), nt)
	}
	if nt[2].Joined {
		t.Error("'=' separated from '<' by a space should not be Joined")
	}
}

func TestTokenizeUnrecognizedByteBecomesError(t *testing.T) {
	toks := Tokenize("select \x01 from t")
	found := false
	for _, tok := range toks {
		if tok.Kind == syntaxkind.ERROR {
			found = true
		}
	}
	if !found {
		t.Error("expected an ERROR token for the unrecognized byte")
	}
}

func TestTokenizeAlwaysEndsWithEof(t *testing.T) {
	for _, src := range []string{"", "select 1", "  ", "-- just a comment"} {
		toks := Tokenize(src)
		if len(toks) == 0 || toks[len(toks)-1].Kind != syntaxkind.Eof {
			t.Errorf("Tokenize(%q) does not end with an Eof token: %+v", src, toks)
		}
	}
}

func TestTokenizeLosslessConcatenation(t *testing.T) {
	srcs := []string{
		"SELECT a, b FROM t WHERE a = 1;",
		"  select\t1 -- comment\nfrom\n  t;  ",
		"",
	}
	for _, src := range srcs {
		toks := Tokenize(src)
		var got string
		for _, tok := range toks {
			got += tok.Text
		}
		if got != src {
			t.Errorf("Tokenize(%q): concatenated text = %q, want the original source back", src, got)
		}
	}
}
