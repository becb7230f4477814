package parser

import "github.com/sqldef/pgparse/syntaxkind"

// exprFirst is the set of token kinds that can legally begin an
// expression. Built by union rather than hard-coded so that every
// identifier-eligible keyword (the bulk of PostgreSQL's unreserved
// keyword list) is automatically included.
var exprFirst = syntaxkind.AllKeywords.UnionAll(
	syntaxkind.NewTokenSet(
		syntaxkind.IDENT, syntaxkind.PARAM, syntaxkind.INT_NUMBER, syntaxkind.FLOAT_NUMBER,
		syntaxkind.STRING, syntaxkind.BYTE_STRING, syntaxkind.BIT_STRING,
		syntaxkind.DOLLAR_QUOTED_STRING, syntaxkind.ESC_STRING,
		syntaxkind.L_PAREN, syntaxkind.L_BRACK, syntaxkind.PLUS, syntaxkind.MINUS,
		syntaxkind.TILDE, syntaxkind.CUSTOM_OP,
	),
)

// assoc records which direction a binding power ties resolve in.
type assoc uint8

const (
	assocLeft assoc = iota
	assocRight
)

// opInfo is what currentOp reports for the token(s) now at the cursor: its
// binding power, the node kind the infix form should produce, and how a
// tie in binding power against the caller's minimum should be broken.
type opInfo struct {
	bp   int
	kind syntaxkind.Kind
	a    assoc
}

// exprBP parses one expression with the Pratt binding-power loop described
// in the precedence table: a leading unary/atom/postfix chain (lhs), then
// zero or more infix operators whose binding power is at least minBP.
func (p *Parser) exprBP(minBP int, r Restrictions) (CompletedMarker, bool) {
	if !p.atTS(exprFirst) {
		p.errRecover("expected expression", exprRecoverySet)
		return CompletedMarker{}, false
	}

	lhs, ok := p.exprLHS(r)
	if !ok {
		return CompletedMarker{}, false
	}

	for {
		op, ok := p.currentOp(r)
		if !ok || op.bp < minBP {
			break
		}

		m := lhs.Precede(p)
		p.bumpOpTokens(op)

		nextMin := op.bp + 1
		if op.a == assocRight {
			nextMin = op.bp
		}
		if _, ok := p.exprBP(nextMin, r); !ok {
			p.error("expected expression after operator")
		}
		lhs = m.Complete(p, op.kind)
	}

	return lhs, true
}

// exprRecoverySet bounds how far errAndBump/errRecover will eat when an
// expression position finds nothing it recognizes: it stops at anything
// that could plausibly end the enclosing construct.
var exprRecoverySet = syntaxkind.NewTokenSet(
	syntaxkind.SEMICOLON, syntaxkind.R_PAREN, syntaxkind.R_BRACK, syntaxkind.COMMA,
	syntaxkind.Eof, syntaxkind.FROM_KW, syntaxkind.WHERE_KW, syntaxkind.GROUP_KW,
	syntaxkind.HAVING_KW, syntaxkind.ORDER_KW, syntaxkind.LIMIT_KW,
)

// exprLHS parses a prefix operator followed by its operand, or - lacking
// one - an atom followed by the postfix chain (calls, subscripts, field
// access, casts, BETWEEN, IS [NOT] NULL, ...).
func (p *Parser) exprLHS(r Restrictions) (CompletedMarker, bool) {
	switch {
	case p.at(syntaxkind.MINUS) || p.at(syntaxkind.PLUS):
		m := p.start()
		p.bumpAny()
		if _, ok := p.exprBP(13, r); !ok {
			p.error("expected expression after unary operator")
		}
		return m.Complete(p, syntaxkind.PREFIX_EXPR), true

	case p.at(syntaxkind.NOT_KW) && !r.NotDisabled:
		m := p.start()
		p.bumpAny()
		if _, ok := p.exprBP(3, r); !ok {
			p.error("expected expression after NOT")
		}
		return m.Complete(p, syntaxkind.PREFIX_EXPR), true

	case p.at(syntaxkind.CUSTOM_OP) || (p.at(syntaxkind.TILDE) && p.nextNotJoinedOp(1)):
		m := p.start()
		p.bumpAny()
		if _, ok := p.exprBP(7, r); !ok {
			p.error("expected expression after operator")
		}
		return m.Complete(p, syntaxkind.PREFIX_EXPR), true

	case p.at(syntaxkind.CAST_KW) && p.nthAt(1, syntaxkind.L_PAREN):
		return p.castCall(), true

	case p.at(syntaxkind.OPERATOR_KW) && p.nthAt(1, syntaxkind.L_PAREN):
		return p.operatorCall(), true
	}

	atom, ok := p.atomExpr(r)
	if !ok {
		return CompletedMarker{}, false
	}
	return p.postfixExpr(atom, r), true
}

// castCall parses CAST(expr AS type).
func (p *Parser) castCall() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CAST_KW)
	p.expect(syntaxkind.L_PAREN)
	p.exprBP(1, Restrictions{})
	p.expect(syntaxkind.AS_KW)
	p.parseType()
	p.expect(syntaxkind.R_PAREN)
	return m.Complete(p, syntaxkind.CAST_EXPR)
}

// operatorCall parses OPERATOR(schema.op) used as an explicit prefix
// operator reference, e.g. OPERATOR(pg_catalog.-) b. The infix form
// `a OPERATOR(pg_catalog.+) b` is not recognised by currentOp.
func (p *Parser) operatorCall() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.OPERATOR_KW)
	p.expect(syntaxkind.L_PAREN)
	for !p.at(syntaxkind.R_PAREN) && !p.atEOF() {
		p.bumpAny()
	}
	p.expect(syntaxkind.R_PAREN)
	if _, ok := p.exprBP(7, Restrictions{}); !ok {
		p.error("expected operand after OPERATOR(...)")
	}
	return m.Complete(p, syntaxkind.OPERATOR_CALL)
}

// atomExpr parses the non-recursive leaves of the expression grammar:
// literals, parameters, parenthesized/tuple forms, ARRAY/ROW constructors,
// CASE, VALUES, the distinguished function-like forms, and plain name
// references.
func (p *Parser) atomExpr(r Restrictions) (CompletedMarker, bool) {
	switch p.current() {
	case syntaxkind.INT_NUMBER, syntaxkind.FLOAT_NUMBER, syntaxkind.STRING,
		syntaxkind.BYTE_STRING, syntaxkind.BIT_STRING, syntaxkind.DOLLAR_QUOTED_STRING,
		syntaxkind.ESC_STRING, syntaxkind.TRUE_KW, syntaxkind.FALSE_KW, syntaxkind.NULL_KW:
		m := p.start()
		p.bumpAny()
		return m.Complete(p, syntaxkind.LITERAL), true

	case syntaxkind.PARAM:
		m := p.start()
		p.bumpAny()
		return m.Complete(p, syntaxkind.LITERAL), true

	case syntaxkind.L_PAREN:
		return p.tupleOrParenExpr(), true

	case syntaxkind.L_BRACK:
		return p.bareArrayExpr(), true

	case syntaxkind.ARRAY_KW:
		return p.arrayExpr(), true

	case syntaxkind.ROW_KW:
		return p.rowExpr(), true

	case syntaxkind.CASE_KW:
		return p.caseExpr(), true

	case syntaxkind.VALUES_KW:
		return p.valuesExpr(), true

	case syntaxkind.EXISTS_KW:
		return p.existsExpr(), true

	case syntaxkind.SOME_KW, syntaxkind.ANY_KW, syntaxkind.ALL_KW:
		if p.nthAt(1, syntaxkind.L_PAREN) {
			return p.quantifiedExpr(), true
		}
		return p.nameExpr(), true

	case syntaxkind.EXTRACT_KW, syntaxkind.SUBSTRING_KW, syntaxkind.POSITION_KW,
		syntaxkind.OVERLAY_KW, syntaxkind.TRIM_KW:
		return p.specialFunctionCall(), true

	case syntaxkind.IDENT, syntaxkind.CURRENT_TIME_KW, syntaxkind.LOCALTIME_KW:
		return p.nameExpr(), true

	default:
		if syntaxkind.IsKeyword(p.current()) {
			// Most PostgreSQL keywords are unreserved and eligible as bare
			// identifiers/function names here (§9 "Contextual keywords").
			return p.nameExpr(), true
		}
		p.errRecover("expected expression", exprRecoverySet)
		return CompletedMarker{}, false
	}
}

// nameExpr parses a possibly-qualified name (a.b.c), wrapping it as PATH.
// A following L_PAREN is left for postfixExpr, which wraps the PATH in a
// CALL_EXPR.
func (p *Parser) nameExpr() CompletedMarker {
	m := p.start()
	p.path()
	return m.Complete(p, syntaxkind.PATH)
}

// path parses dotted identifier segments, splitting a lexer-merged float
// like the `1.` in `t.1.foo` back into its component tokens when a further
// field access follows the numeral. A DOT followed by `*` is left for
// postfixExpr, so `alias.*` becomes a FIELD_EXPR over the PATH.
func (p *Parser) path() {
	p.pathSegment()
	for p.at(syntaxkind.DOT) && !p.nthAt(1, syntaxkind.STAR) {
		p.bump(syntaxkind.DOT)
		if p.at(syntaxkind.FLOAT_NUMBER) && p.looksLikeTrailingField() {
			p.splitFloat()
		}
		p.pathSegment()
	}
}

// looksLikeTrailingField reports whether the current FLOAT_NUMBER token is
// standing in for DOT + trailing identifier in a chain like `t.1.foo`,
// where the lexer could not tell that `1.` was about to be followed by
// another field access rather than ending the expression.
func (p *Parser) looksLikeTrailingField() bool {
	text := p.nthText(0)
	return len(text) > 0 && text[len(text)-1] == '.'
}

func (p *Parser) pathSegment() {
	m := p.start()
	if syntaxkind.IsKeyword(p.current()) || p.at(syntaxkind.IDENT) {
		p.bumpAny()
	} else {
		p.errAndBump("expected identifier")
	}
	m.Complete(p, syntaxkind.PATH_SEGMENT)
}

func (p *Parser) tupleOrParenExpr() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.L_PAREN)
	count := 0
	for !p.at(syntaxkind.R_PAREN) && !p.atEOF() {
		if _, ok := p.exprBP(1, Restrictions{}); !ok {
			break
		}
		count++
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.R_PAREN)
	if count > 1 {
		return m.Complete(p, syntaxkind.TUPLE_EXPR)
	}
	return m.Complete(p, syntaxkind.PAREN_EXPR)
}

func (p *Parser) bareArrayExpr() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.L_BRACK)
	for !p.at(syntaxkind.R_BRACK) && !p.atEOF() {
		if _, ok := p.exprBP(1, Restrictions{}); !ok {
			break
		}
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.R_BRACK)
	return m.Complete(p, syntaxkind.ARRAY_EXPR)
}

func (p *Parser) arrayExpr() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.ARRAY_KW)
	if p.at(syntaxkind.L_PAREN) {
		p.bumpAny()
		p.selectStmt(Restrictions{})
		p.expect(syntaxkind.R_PAREN)
		return m.Complete(p, syntaxkind.ARRAY_EXPR)
	}
	p.expect(syntaxkind.L_BRACK)
	for !p.at(syntaxkind.R_BRACK) && !p.atEOF() {
		if _, ok := p.exprBP(1, Restrictions{}); !ok {
			break
		}
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.R_BRACK)
	return m.Complete(p, syntaxkind.ARRAY_EXPR)
}

func (p *Parser) rowExpr() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.ROW_KW)
	p.expect(syntaxkind.L_PAREN)
	for !p.at(syntaxkind.R_PAREN) && !p.atEOF() {
		if _, ok := p.exprBP(1, Restrictions{}); !ok {
			break
		}
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.R_PAREN)
	return m.Complete(p, syntaxkind.TUPLE_EXPR)
}

func (p *Parser) caseExpr() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CASE_KW)
	if !p.at(syntaxkind.WHEN_KW) {
		p.exprBP(1, Restrictions{})
	}
	for p.at(syntaxkind.WHEN_KW) {
		wm := p.start()
		p.bumpAny()
		p.exprBP(1, Restrictions{})
		p.expect(syntaxkind.THEN_KW)
		p.exprBP(1, Restrictions{})
		wm.Complete(p, syntaxkind.WHEN_CLAUSE)
	}
	if p.eat(syntaxkind.ELSE_KW) {
		p.exprBP(1, Restrictions{})
	}
	p.expect(syntaxkind.END_KW)
	return m.Complete(p, syntaxkind.CASE_EXPR)
}

func (p *Parser) valuesExpr() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.VALUES_KW)
	for {
		p.expect(syntaxkind.L_PAREN)
		for !p.at(syntaxkind.R_PAREN) && !p.atEOF() {
			if _, ok := p.exprBP(1, Restrictions{}); !ok {
				break
			}
			if !p.eat(syntaxkind.COMMA) {
				break
			}
		}
		p.expect(syntaxkind.R_PAREN)
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	return m.Complete(p, syntaxkind.SELECT)
}

func (p *Parser) existsExpr() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.EXISTS_KW)
	p.expect(syntaxkind.L_PAREN)
	p.selectStmt(Restrictions{})
	p.expect(syntaxkind.R_PAREN)
	return m.Complete(p, syntaxkind.CALL_EXPR)
}

func (p *Parser) quantifiedExpr() CompletedMarker {
	m := p.start()
	p.bumpAny() // SOME/ANY/ALL
	p.expect(syntaxkind.L_PAREN)
	if p.at(syntaxkind.SELECT_KW) || p.at(syntaxkind.WITH_KW) {
		p.selectStmt(Restrictions{})
	} else {
		p.exprBP(1, Restrictions{})
	}
	p.expect(syntaxkind.R_PAREN)
	return m.Complete(p, syntaxkind.CALL_EXPR)
}

// specialFunctionCall covers the handful of function-like forms
// PostgreSQL gives bespoke keyword-argument syntax: EXTRACT(field FROM
// expr), SUBSTRING(expr FROM n FOR m), POSITION(expr IN expr), OVERLAY(...
// PLACING ... FROM ...), TRIM([LEADING|TRAILING|BOTH] [chars] FROM expr).
// All of these also accept a plain comma-separated-argument call form;
// the same loop below consumes those commas, so both forms produce one
// CALL_EXPR.
func (p *Parser) specialFunctionCall() CompletedMarker {
	m := p.start()
	p.bumpAny() // the distinguished keyword
	p.expect(syntaxkind.L_PAREN)
	for !p.at(syntaxkind.R_PAREN) && !p.atEOF() {
		switch p.current() {
		case syntaxkind.FROM_KW, syntaxkind.FOR_KW, syntaxkind.IN_KW, syntaxkind.PLACING_KW,
			syntaxkind.LEADING_KW, syntaxkind.TRAILING_KW, syntaxkind.BOTH_KW:
			p.bumpAny()
		case syntaxkind.COMMA:
			p.bumpAny()
		default:
			if _, ok := p.exprBP(1, Restrictions{}); !ok {
				p.errAndBump("expected expression")
			}
		}
	}
	p.expect(syntaxkind.R_PAREN)
	return m.Complete(p, syntaxkind.CALL_EXPR)
}

// postfixExpr consumes the postfix chain following an atom: function call
// args, subscript, field access, BETWEEN, IS [NOT] [DISTINCT FROM] NULL,
// AT (LOCAL|TIME ZONE), and a bare literal trailing a path (the postfix-
// cast shorthand `numeric '123'`).
func (p *Parser) postfixExpr(lhs CompletedMarker, r Restrictions) CompletedMarker {
	for {
		switch {
		case p.at(syntaxkind.L_PAREN) && lhs.Kind() == syntaxkind.PATH:
			m := lhs.Precede(p)
			p.bumpAny()
			for !p.at(syntaxkind.R_PAREN) && !p.atEOF() {
				p.namedArgOrExpr()
				if !p.eat(syntaxkind.COMMA) {
					break
				}
			}
			p.expect(syntaxkind.R_PAREN)
			p.postfixCallTail()
			lhs = m.Complete(p, syntaxkind.CALL_EXPR)

		case p.at(syntaxkind.L_BRACK):
			m := lhs.Precede(p)
			p.bumpAny()
			p.exprBP(1, Restrictions{})
			if p.eat(syntaxkind.COLON) {
				p.exprBP(1, Restrictions{})
			}
			p.expect(syntaxkind.R_BRACK)
			lhs = m.Complete(p, syntaxkind.INDEX_EXPR)

		case p.at(syntaxkind.DOT):
			m := lhs.Precede(p)
			p.bumpAny()
			if p.at(syntaxkind.STAR) {
				p.bumpAny()
			} else {
				p.pathSegment()
			}
			lhs = m.Complete(p, syntaxkind.FIELD_EXPR)

		case p.at(syntaxkind.BETWEEN_KW) && !r.NotDisabled:
			lhs = p.betweenTail(lhs, false)

		case p.at(syntaxkind.NOT_KW) && p.nthAt(1, syntaxkind.BETWEEN_KW) && !r.NotDisabled:
			p.bumpAny()
			lhs = p.betweenTail(lhs, true)

		case p.at(syntaxkind.ISNULL_KW):
			m := lhs.Precede(p)
			p.bumpAny()
			lhs = m.Complete(p, syntaxkind.IS_NULL)

		case p.at(syntaxkind.NOTNULL_KW):
			m := lhs.Precede(p)
			p.bumpAny()
			lhs = m.Complete(p, syntaxkind.IS_NOT)

		case p.at(syntaxkind.IS_KW) && !r.IsDisabled && p.nextStartsExpr(1):
			lhs = p.isTail(lhs)

		case p.at(syntaxkind.AT_KW) && p.nthAt(1, syntaxkind.LOCAL_KW):
			m := lhs.Precede(p)
			p.bumpAny()
			p.bumpAny()
			lhs = m.Complete(p, syntaxkind.AT_TIME_ZONE)

		case p.at(syntaxkind.AT_KW) && p.nthAt(1, syntaxkind.TIME_KW):
			m := lhs.Precede(p)
			p.bumpAny()
			p.bump(syntaxkind.TIME_KW)
			p.expect(syntaxkind.ZONE_KW)
			p.exprBP(11, Restrictions{})
			lhs = m.Complete(p, syntaxkind.AT_TIME_ZONE)

		case p.isPostfixCastLiteral(lhs):
			m := lhs.Precede(p)
			p.bumpAny()
			lhs = m.Complete(p, syntaxkind.CAST_EXPR)

		default:
			return lhs
		}
	}
}

func (p *Parser) namedArgOrExpr() {
	if (p.at(syntaxkind.IDENT) || syntaxkind.IsKeyword(p.current())) &&
		(p.nthAt(1, syntaxkind.FAT_ARROW) || p.nthAt(1, syntaxkind.COLONEQ)) {
		m := p.start()
		p.bumpAny()
		p.bumpAny() // => or :=
		p.exprBP(1, Restrictions{})
		m.Complete(p, syntaxkind.NAMED_ARG)
		return
	}
	if p.at(syntaxkind.STAR) {
		p.bumpAny()
		return
	}
	p.exprBP(1, Restrictions{OrderByAllowed: true})
	if p.at(syntaxkind.ORDER_KW) && p.nthAt(1, syntaxkind.BY_KW) {
		// ORDER BY inside an aggregate call's argument list.
		p.orderByClause()
	}
}

// postfixCallTail consumes a trailing WITHIN GROUP/FILTER/OVER clause a
// function call may carry; only FILTER/OVER are represented structurally
// here, matching the CALL_EXPR shape the tree uses for window functions.
func (p *Parser) postfixCallTail() {
	if p.at(syntaxkind.WITHIN_KW) && p.nthAt(1, syntaxkind.GROUP_KW) {
		m := p.start()
		p.bumpAny()
		p.bumpAny()
		p.expect(syntaxkind.L_PAREN)
		p.orderByClause()
		p.expect(syntaxkind.R_PAREN)
		m.Complete(p, syntaxkind.WITHIN_CLAUSE)
	}
	if p.at(syntaxkind.FILTER_KW) {
		m := p.start()
		p.bumpAny()
		p.expect(syntaxkind.L_PAREN)
		p.expect(syntaxkind.WHERE_KW)
		p.exprBP(1, Restrictions{})
		p.expect(syntaxkind.R_PAREN)
		m.Complete(p, syntaxkind.FILTER_CLAUSE)
	}
	if p.at(syntaxkind.OVER_KW) {
		m := p.start()
		p.bumpAny()
		if p.at(syntaxkind.L_PAREN) {
			p.bumpAny()
			p.windowDefBody()
			p.expect(syntaxkind.R_PAREN)
		} else {
			p.pathSegment()
		}
		m.Complete(p, syntaxkind.OVER_CLAUSE)
	}
}

func (p *Parser) betweenTail(lhs CompletedMarker, negated bool) CompletedMarker {
	m := lhs.Precede(p)
	p.bump(syntaxkind.BETWEEN_KW)
	if p.eat(syntaxkind.SYMMETRIC_KW) {
	} else {
		p.eat(syntaxkind.ASYMMETRIC_KW)
	}
	p.exprBP(4, Restrictions{AndDisabled: true})
	p.expect(syntaxkind.AND_KW)
	p.exprBP(4, Restrictions{})
	if negated {
		return m.Complete(p, syntaxkind.BETWEEN_EXPR)
	}
	return m.Complete(p, syntaxkind.BETWEEN_EXPR)
}

func (p *Parser) isTail(lhs CompletedMarker) CompletedMarker {
	m := lhs.Precede(p)
	p.bump(syntaxkind.IS_KW)
	negated := p.eat(syntaxkind.NOT_KW)

	switch {
	case p.at(syntaxkind.DISTINCT_KW):
		p.bumpAny()
		p.expect(syntaxkind.FROM_KW)
		p.exprBP(4, Restrictions{})
		if negated {
			return m.Complete(p, syntaxkind.IS_NOT_DISTINCT_FROM)
		}
		return m.Complete(p, syntaxkind.IS_DISTINCT_FROM)

	case p.at(syntaxkind.NULL_KW):
		p.bumpAny()
		if negated {
			return m.Complete(p, syntaxkind.IS_NOT)
		}
		return m.Complete(p, syntaxkind.IS_NULL)

	default:
		p.exprBP(4, Restrictions{})
		if negated {
			return m.Complete(p, syntaxkind.IS_NOT)
		}
		return m.Complete(p, syntaxkind.IS_NULL)
	}
}

// isPostfixCastLiteral reports whether lhs (a PATH, standing in for a type
// name) is immediately followed by a literal, the `numeric '123'` form
// PostgreSQL treats as shorthand for `'123'::numeric`.
func (p *Parser) isPostfixCastLiteral(lhs CompletedMarker) bool {
	if lhs.Kind() != syntaxkind.PATH {
		return false
	}
	switch p.current() {
	case syntaxkind.STRING, syntaxkind.ESC_STRING, syntaxkind.INT_NUMBER, syntaxkind.FLOAT_NUMBER:
		return true
	}
	return false
}

// orderModifiers is ASC/DESC/NULLS FIRST/NULLS LAST. orderByClause checks
// these keywords directly; nothing reads this set.
var orderModifiers = syntaxkind.NewTokenSet(syntaxkind.ASC_KW, syntaxkind.DESC_KW, syntaxkind.NULLS_KW)

// currentOp inspects the current (and sometimes next) token(s) to decide
// whether an infix operator starts here, returning its binding power, node
// kind, and associativity per the precedence table (§4.3). Multi-keyword
// operators (NOT IN, SIMILAR TO, ...) are recognized by lookahead before
// falling through to bare punctuation; IS and its forms are left to
// postfixExpr.
func (p *Parser) currentOp(r Restrictions) (opInfo, bool) {
	switch p.current() {
	case syntaxkind.OR_KW:
		if !p.nextStartsExpr(1) {
			return opInfo{}, false
		}
		return opInfo{1, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.AND_KW:
		if r.AndDisabled || !p.nextStartsExpr(1) {
			return opInfo{}, false
		}
		return opInfo{2, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.IS_KW:
		return opInfo{}, false // handled in postfixExpr
	case syntaxkind.EQ:
		return opInfo{5, syntaxkind.BIN_EXPR, assocRight}, true
	case syntaxkind.NEQ, syntaxkind.NEQB, syntaxkind.L_ANGLE, syntaxkind.R_ANGLE, syntaxkind.LTEQ, syntaxkind.GTEQ:
		return opInfo{5, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.COLONEQ:
		return opInfo{5, syntaxkind.BIN_EXPR, assocRight}, true
	case syntaxkind.IN_KW:
		if r.InDisabled {
			return opInfo{}, false
		}
		return opInfo{6, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.NOT_KW:
		if r.NotDisabled {
			return opInfo{}, false
		}
		switch p.nth(1) {
		case syntaxkind.IN_KW:
			return opInfo{6, syntaxkind.NOT_IN, assocLeft}, true
		case syntaxkind.LIKE_KW:
			return opInfo{6, syntaxkind.NOT_LIKE, assocLeft}, true
		case syntaxkind.ILIKE_KW:
			return opInfo{6, syntaxkind.NOT_LIKE, assocLeft}, true
		case syntaxkind.SIMILAR_KW:
			return opInfo{6, syntaxkind.SIMILAR_TO, assocLeft}, true
		}
		return opInfo{}, false
	case syntaxkind.LIKE_KW, syntaxkind.ILIKE_KW:
		return opInfo{6, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.SIMILAR_KW:
		if p.nthAt(1, syntaxkind.TO_KW) {
			return opInfo{6, syntaxkind.SIMILAR_TO, assocLeft}, true
		}
		return opInfo{}, false
	case syntaxkind.OVERLAPS_KW:
		return opInfo{7, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.CUSTOM_OP, syntaxkind.TILDE:
		return opInfo{7, syntaxkind.OPERATOR_CALL, assocLeft}, true
	case syntaxkind.FAT_ARROW:
		return opInfo{7, syntaxkind.NAMED_ARG, assocRight}, true
	case syntaxkind.COLON:
		if r.JSONFieldArgAllowed {
			return opInfo{7, syntaxkind.JSON_KEY_VALUE, assocLeft}, true
		}
		return opInfo{}, false
	case syntaxkind.VALUE_KW:
		if r.JSONFieldArgAllowed {
			return opInfo{7, syntaxkind.JSON_KEY_VALUE, assocLeft}, true
		}
		return opInfo{}, false
	case syntaxkind.PLUS, syntaxkind.MINUS:
		return opInfo{8, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.STAR, syntaxkind.SLASH, syntaxkind.PERCENT:
		return opInfo{9, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.CARET:
		return opInfo{10, syntaxkind.BIN_EXPR, assocLeft}, true
	case syntaxkind.COLLATE_KW:
		if !p.nextStartsExpr(1) {
			return opInfo{}, false
		}
		return opInfo{12, syntaxkind.COLLATE, assocLeft}, true
	case syntaxkind.COLON2:
		return opInfo{15, syntaxkind.CAST_EXPR, assocLeft}, true
	}
	return opInfo{}, false
}

// nextStartsExpr disambiguates a trailing operator keyword from a bare
// column label (§9 "select 1 not"): OR/AND/IS/COLLATE only act as
// operators when what follows could itself start an expression.
func (p *Parser) nextStartsExpr(n int) bool {
	return exprFirst.Contains(p.nth(n))
}

// bumpOpTokens consumes the token(s) that make up the infix operator just
// identified by currentOp, which for keyword pairs like NOT IN/NOT LIKE is
// more than one token.
func (p *Parser) bumpOpTokens(op opInfo) {
	switch op.kind {
	case syntaxkind.NOT_IN, syntaxkind.NOT_LIKE:
		p.bumpAny() // NOT
		p.bumpAny() // IN/LIKE/ILIKE
	case syntaxkind.SIMILAR_TO:
		p.bumpAny() // SIMILAR
		p.eat(syntaxkind.TO_KW)
	default:
		p.bumpAny()
	}
}
