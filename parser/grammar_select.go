package parser

import "github.com/sqldef/pgparse/syntaxkind"

// selectStmt covers every surface form §4.4 calls out for SELECT: a WITH
// prefix (shared with INSERT/UPDATE/DELETE/MERGE), TABLE name, a bare
// VALUES list, the full SELECT clause list, and a trailing UNION/
// INTERSECT/EXCEPT chain wrapped as COMPOUND_SELECT.
func (p *Parser) selectStmt(r Restrictions) CompletedMarker {
	m := p.start()

	if p.at(syntaxkind.WITH_KW) {
		p.withClause()
		switch p.current() {
		case syntaxkind.INSERT_KW:
			return p.insertStmt(r).ExtendTo(p, m)
		case syntaxkind.UPDATE_KW:
			return p.updateStmt(r).ExtendTo(p, m)
		case syntaxkind.DELETE_KW:
			return p.deleteStmt(r).ExtendTo(p, m)
		case syntaxkind.MERGE_KW:
			return p.mergeStmt(r).ExtendTo(p, m)
		}
	}

	first, hasInto := p.selectPrimary(r)
	compound := false

	for p.atTS(setOpKeywords) {
		if first.Kind() == syntaxkind.SELECT_CLAUSE {
			first = first.Precede(p).Complete(p, syntaxkind.SELECT)
		}
		opM := first.Precede(p)
		p.bumpAny() // UNION/INTERSECT/EXCEPT
		if p.atTS(allOrDistinct) {
			p.bumpAny()
		}
		if rhs, _ := p.selectPrimary(r); rhs.Kind() == syntaxkind.SELECT_CLAUSE {
			rhs.Precede(p).Complete(p, syntaxkind.SELECT)
		}
		first = opM.Complete(p, syntaxkind.COMPOUND_SELECT)
		compound = true
	}

	p.orderByClauseOpt()
	p.lockingClausesOpt()
	p.limitOffsetFetchOpt()
	p.lockingClausesOpt()

	if hasInto && !compound {
		return m.Complete(p, syntaxkind.SELECT_INTO_STMT)
	}
	return m.Complete(p, syntaxkind.SELECT)
}

var setOpKeywords = syntaxkind.NewTokenSet(syntaxkind.UNION_KW, syntaxkind.INTERSECT_KW, syntaxkind.EXCEPT_KW)
var allOrDistinct = syntaxkind.NewTokenSet(syntaxkind.ALL_KW, syntaxkind.DISTINCT_KW)

// selectPrimary parses one SELECT "arm": TABLE name, VALUES, a
// parenthesized select, or the full SELECT clause sequence. The second
// return reports whether this arm carried a top-level INTO clause.
func (p *Parser) selectPrimary(r Restrictions) (CompletedMarker, bool) {
	switch {
	case p.at(syntaxkind.TABLE_KW):
		m := p.start()
		p.bumpAny()
		p.qualifiedName()
		return m.Complete(p, syntaxkind.SELECT_CLAUSE), false

	case p.at(syntaxkind.VALUES_KW):
		return p.valuesExpr(), false

	case p.at(syntaxkind.L_PAREN):
		p.bumpAny()
		inner := p.selectStmt(r)
		p.expect(syntaxkind.R_PAREN)
		return inner, false

	default:
		return p.selectClause(r)
	}
}

// selectClause parses `SELECT [ALL|DISTINCT [ON (...)]] target_list
// [INTO ...] [FROM ...] [WHERE ...] [GROUP BY ...] [HAVING ...] [WINDOW ...]`.
// The second return reports whether an INTO clause was present.
func (p *Parser) selectClause(r Restrictions) (CompletedMarker, bool) {
	m := p.start()
	p.expect(syntaxkind.SELECT_KW)

	if p.at(syntaxkind.DISTINCT_KW) {
		dm := p.start()
		p.bumpAny()
		if p.eat(syntaxkind.ON_KW) {
			p.expect(syntaxkind.L_PAREN)
			p.commaListUntil(rParenSet, func() { p.exprBP(1, Restrictions{}) })
			p.expect(syntaxkind.R_PAREN)
		}
		dm.Complete(p, syntaxkind.DISTINCT_CLAUSE)
	} else {
		p.eat(syntaxkind.ALL_KW)
	}

	if p.at(syntaxkind.FROM_KW) {
		p.error("expected target list")
	}
	p.targetList()

	hasInto := p.at(syntaxkind.INTO_KW)
	if hasInto {
		im := p.start()
		p.bumpAny()
		if p.eat(syntaxkind.TEMPORARY_KW) || p.eat(syntaxkind.TEMP_KW) {
			p.eat(syntaxkind.TABLE_KW)
		} else {
			p.eat(syntaxkind.UNLOGGED_KW)
			p.eat(syntaxkind.TABLE_KW)
		}
		p.qualifiedName()
		im.Complete(p, syntaxkind.INTO_CLAUSE)
	}

	if p.at(syntaxkind.FROM_KW) {
		p.fromClause()
	}

	if p.at(syntaxkind.WHERE_KW) {
		wm := p.start()
		p.bumpAny()
		p.exprBP(1, Restrictions{})
		wm.Complete(p, syntaxkind.WHERE_CLAUSE)
	}

	if p.at(syntaxkind.GROUP_KW) {
		gm := p.start()
		p.bumpAny()
		p.expect(syntaxkind.BY_KW)
		p.commaListUntil(groupByStop, func() { p.exprBP(1, Restrictions{}) })
		gm.Complete(p, syntaxkind.GROUP_BY_CLAUSE)
	}

	if p.at(syntaxkind.HAVING_KW) {
		hm := p.start()
		p.bumpAny()
		p.exprBP(1, Restrictions{})
		hm.Complete(p, syntaxkind.HAVING_CLAUSE)
	}

	if p.at(syntaxkind.WINDOW_KW) {
		wm := p.start()
		p.bumpAny()
		p.commaListUntil(windowListStop, func() {
			nm := p.start()
			p.pathSegment()
			p.expect(syntaxkind.AS_KW)
			p.expect(syntaxkind.L_PAREN)
			p.windowDefBody()
			p.expect(syntaxkind.R_PAREN)
			nm.Complete(p, syntaxkind.WINDOW_DEF)
		})
		wm.Complete(p, syntaxkind.WINDOW_CLAUSE)
	}

	return m.Complete(p, syntaxkind.SELECT_CLAUSE), hasInto
}

var groupByStop = syntaxkind.NewTokenSet(syntaxkind.HAVING_KW, syntaxkind.WINDOW_KW, syntaxkind.SEMICOLON,
	syntaxkind.UNION_KW, syntaxkind.INTERSECT_KW, syntaxkind.EXCEPT_KW, syntaxkind.ORDER_KW,
	syntaxkind.LIMIT_KW, syntaxkind.OFFSET_KW, syntaxkind.FETCH_KW, syntaxkind.FOR_KW, syntaxkind.R_PAREN, syntaxkind.Eof)
var windowListStop = syntaxkind.NewTokenSet(syntaxkind.SEMICOLON, syntaxkind.ORDER_KW, syntaxkind.LIMIT_KW,
	syntaxkind.OFFSET_KW, syntaxkind.FETCH_KW, syntaxkind.FOR_KW, syntaxkind.R_PAREN, syntaxkind.Eof)

// targetList parses the comma-separated SELECT output list, where `*` and
// `alias.*` are degenerate TARGET items that carry no expression to
// rename.
func (p *Parser) targetList() {
	lm := p.start()
	p.commaListUntil(targetListStop, func() {
		tm := p.start()
		if p.at(syntaxkind.STAR) {
			p.bumpAny()
		} else {
			p.exprBP(1, Restrictions{})
			if as, ok := p.aliasOpt(); ok {
				_ = as
			}
		}
		tm.Complete(p, syntaxkind.TARGET)
	})
	lm.Complete(p, syntaxkind.TARGET_LIST)
}

var targetListStop = syntaxkind.NewTokenSet(syntaxkind.INTO_KW, syntaxkind.FROM_KW, syntaxkind.WHERE_KW,
	syntaxkind.GROUP_KW, syntaxkind.HAVING_KW, syntaxkind.WINDOW_KW, syntaxkind.ORDER_KW,
	syntaxkind.LIMIT_KW, syntaxkind.OFFSET_KW, syntaxkind.FETCH_KW, syntaxkind.FOR_KW,
	syntaxkind.UNION_KW, syntaxkind.INTERSECT_KW, syntaxkind.EXCEPT_KW,
	syntaxkind.SEMICOLON, syntaxkind.R_PAREN, syntaxkind.Eof)

// withClause parses `WITH [RECURSIVE] cte[, ...]`, where each CTE is
// `name [(cols)] AS [[NOT] MATERIALIZED] (select|insert|update|delete)`.
func (p *Parser) withClause() {
	m := p.start()
	p.bumpAny()
	p.eat(syntaxkind.RECURSIVE_KW)
	p.commaListUntil(withListStop, func() {
		cm := p.start()
		p.pathSegment()
		if p.at(syntaxkind.L_PAREN) {
			p.nameList()
		}
		p.expect(syntaxkind.AS_KW)
		if p.eat(syntaxkind.NOT_KW) {
			p.expect(syntaxkind.MATERIALIZED_KW)
		} else {
			p.eat(syntaxkind.MATERIALIZED_KW)
		}
		p.expect(syntaxkind.L_PAREN)
		p.stmt(Restrictions{})
		p.expect(syntaxkind.R_PAREN)
		cm.Complete(p, syntaxkind.WITH_TABLE)
	})
	m.Complete(p, syntaxkind.WITH_CLAUSE)
}

var withListStop = syntaxkind.NewTokenSet(syntaxkind.SELECT_KW, syntaxkind.INSERT_KW, syntaxkind.UPDATE_KW,
	syntaxkind.DELETE_KW, syntaxkind.TABLE_KW, syntaxkind.VALUES_KW, syntaxkind.MERGE_KW, syntaxkind.Eof)

// fromClause parses `FROM from_item [, from_item ...]`, where each
// from_item is a postfix chain of JOINs over a base table or subquery, per
// §4.4's JOIN contract. A function call in from-item position is not
// parsed as a call: `f(1, 2)` reads as the name f followed by a column
// list.
func (p *Parser) fromClause() {
	m := p.start()
	p.bumpAny()
	p.commaListUntil(fromListStop, func() {
		p.fromItem()
	})
	m.Complete(p, syntaxkind.FROM_CLAUSE)
}

var fromListStop = syntaxkind.NewTokenSet(syntaxkind.WHERE_KW, syntaxkind.GROUP_KW, syntaxkind.HAVING_KW,
	syntaxkind.WINDOW_KW, syntaxkind.ORDER_KW, syntaxkind.LIMIT_KW, syntaxkind.OFFSET_KW, syntaxkind.FETCH_KW,
	syntaxkind.FOR_KW, syntaxkind.UNION_KW, syntaxkind.INTERSECT_KW, syntaxkind.EXCEPT_KW,
	syntaxkind.SEMICOLON, syntaxkind.R_PAREN, syntaxkind.Eof)

var joinFirst = syntaxkind.NewTokenSet(syntaxkind.NATURAL_KW, syntaxkind.CROSS_KW, syntaxkind.INNER_KW,
	syntaxkind.JOIN_KW, syntaxkind.LEFT_KW, syntaxkind.RIGHT_KW, syntaxkind.FULL_KW)

func (p *Parser) fromItem() {
	lhs := p.fromPrimary()
	for p.atTS(joinFirst) {
		jm := lhs.Precede(p)
		p.eat(syntaxkind.NATURAL_KW)
		switch p.current() {
		case syntaxkind.CROSS_KW:
			p.bumpAny()
			p.expect(syntaxkind.JOIN_KW)
		case syntaxkind.INNER_KW:
			p.bumpAny()
			p.expect(syntaxkind.JOIN_KW)
		case syntaxkind.LEFT_KW, syntaxkind.RIGHT_KW, syntaxkind.FULL_KW:
			p.bumpAny()
			p.eat(syntaxkind.OUTER_KW)
			p.expect(syntaxkind.JOIN_KW)
		default:
			p.expect(syntaxkind.JOIN_KW)
		}
		p.fromPrimary()
		switch {
		case p.eat(syntaxkind.ON_KW):
			p.exprBP(1, Restrictions{})
		case p.at(syntaxkind.USING_KW):
			p.bumpAny()
			p.nameList()
			p.aliasOpt()
		}
		lhs = jm.Complete(p, syntaxkind.JOIN)
	}
}

func (p *Parser) fromPrimary() CompletedMarker {
	m := p.start()
	p.eat(syntaxkind.LATERAL_KW)
	switch {
	case p.at(syntaxkind.L_PAREN):
		p.bumpAny()
		p.selectStmt(Restrictions{})
		p.expect(syntaxkind.R_PAREN)
	default:
		p.qualifiedName()
	}
	p.aliasOpt()
	if p.at(syntaxkind.L_PAREN) {
		p.nameList()
	}
	return m.Complete(p, syntaxkind.TARGET)
}

// orderByClauseOpt/orderByClause parse `ORDER BY expr [ASC|DESC|USING op]
// [NULLS FIRST|LAST] [, ...]`. orderByClause (no Opt) is reused verbatim
// inside WITHIN GROUP (...), which requires the clause but has already
// consumed its own L_PAREN/R_PAREN.
func (p *Parser) orderByClauseOpt() {
	if !p.at(syntaxkind.ORDER_KW) {
		return
	}
	p.orderByClause()
}

func (p *Parser) orderByClause() {
	m := p.start()
	p.bump(syntaxkind.ORDER_KW)
	p.expect(syntaxkind.BY_KW)
	p.commaListUntil(orderByStop, func() {
		p.exprBP(1, Restrictions{})
		switch p.current() {
		case syntaxkind.ASC_KW, syntaxkind.DESC_KW:
			p.bumpAny()
		case syntaxkind.USING_KW:
			p.bumpAny()
			p.currentOpConsumeOperator()
		}
		if p.eat(syntaxkind.NULLS_KW) {
			if !p.eat(syntaxkind.FIRST_KW) {
				p.expect(syntaxkind.LAST_KW)
			}
		}
	})
	m.Complete(p, syntaxkind.ORDER_BY_CLAUSE)
}

var orderByStop = syntaxkind.NewTokenSet(syntaxkind.LIMIT_KW, syntaxkind.OFFSET_KW, syntaxkind.FETCH_KW,
	syntaxkind.FOR_KW, syntaxkind.SEMICOLON, syntaxkind.R_PAREN, syntaxkind.Eof)

// currentOpConsumeOperator consumes a bare operator token for `USING op`
// in an ORDER BY item, without going through the full Pratt machinery.
func (p *Parser) currentOpConsumeOperator() {
	if p.atTS(exprFirst) || p.at(syntaxkind.CUSTOM_OP) {
		p.bumpAny()
		return
	}
	p.errAndBump("expected operator")
}

// limitOffsetFetchOpt parses LIMIT/OFFSET/FETCH in any order, since
// PostgreSQL's own grammar permits either order between them (and,
// per the open question in §9, either order against locking clauses too).
func (p *Parser) limitOffsetFetchOpt() {
	for {
		switch p.current() {
		case syntaxkind.LIMIT_KW:
			m := p.start()
			p.bumpAny()
			if p.at(syntaxkind.ALL_KW) {
				p.bumpAny()
			} else {
				p.exprBP(1, Restrictions{})
			}
			m.Complete(p, syntaxkind.LIMIT_CLAUSE)
		case syntaxkind.OFFSET_KW:
			m := p.start()
			p.bumpAny()
			p.exprBP(1, Restrictions{})
			p.eat(syntaxkind.ROW_KW)
			p.eat(syntaxkind.ROWS_KW)
			m.Complete(p, syntaxkind.OFFSET_CLAUSE)
		case syntaxkind.FETCH_KW:
			m := p.start()
			p.bumpAny()
			if !p.eat(syntaxkind.FIRST_KW) {
				p.expect(syntaxkind.NEXT_KW)
			}
			if !p.atTS(rowRowsSet) {
				p.exprBP(1, Restrictions{})
			}
			if !p.eat(syntaxkind.ROW_KW) {
				p.expect(syntaxkind.ROWS_KW)
			}
			if !p.eat(syntaxkind.ONLY_KW) {
				p.expect(syntaxkind.WITH_KW)
				p.expect(syntaxkind.TIES_KW)
			}
			m.Complete(p, syntaxkind.LIMIT_CLAUSE)
		default:
			return
		}
	}
}

var rowRowsSet = syntaxkind.NewTokenSet(syntaxkind.ROW_KW, syntaxkind.ROWS_KW)

// lockingClausesOpt parses zero or more `FOR {UPDATE|SHARE|NO KEY UPDATE|
// KEY SHARE} [OF table[, ...]] [{SKIP LOCKED | NOWAIT}]` clauses. PostgreSQL
// allows more than one and allows them interleaved with LIMIT/OFFSET/FETCH
// (§9 open question), which is why this and limitOffsetFetchOpt are both
// called from two places in selectStmt rather than once each in sequence.
func (p *Parser) lockingClausesOpt() {
	for p.at(syntaxkind.FOR_KW) {
		m := p.start()
		p.bumpAny()
		switch p.current() {
		case syntaxkind.UPDATE_KW, syntaxkind.SHARE_KW:
			p.bumpAny()
		case syntaxkind.NO_KW:
			p.bumpAny()
			p.expect(syntaxkind.KEY_KW)
			p.expect(syntaxkind.UPDATE_KW)
		case syntaxkind.KEY_KW:
			p.bumpAny()
			p.expect(syntaxkind.SHARE_KW)
		default:
			p.error("expected UPDATE, SHARE, NO KEY UPDATE, or KEY SHARE")
		}
		if p.eat(syntaxkind.OF_KW) {
			p.commaListUntil(lockingOfStop, func() { p.qualifiedName() })
		}
		if p.eat(syntaxkind.SKIP_KW) {
			p.expect(syntaxkind.LOCKED_KW)
		} else {
			p.eat(syntaxkind.NOWAIT_KW)
		}
		m.Complete(p, syntaxkind.LOCKING_CLAUSE)
	}
}

var lockingOfStop = syntaxkind.NewTokenSet(syntaxkind.SKIP_KW, syntaxkind.NOWAIT_KW, syntaxkind.FOR_KW,
	syntaxkind.SEMICOLON, syntaxkind.Eof)

// windowDefBody parses the inside of a window specification's parens:
// [existing_window_name] [PARTITION BY expr[,...]] [ORDER BY ...] [frame].
func (p *Parser) windowDefBody() {
	if p.at(syntaxkind.IDENT) && !p.nthAt(1, syntaxkind.PARTITION_KW) && !p.nthAt(1, syntaxkind.ORDER_KW) && !p.nthAt(1, syntaxkind.R_PAREN) {
		p.pathSegment()
	} else if p.at(syntaxkind.IDENT) && p.nthAt(1, syntaxkind.R_PAREN) {
		p.pathSegment()
	}
	if p.at(syntaxkind.PARTITION_KW) {
		p.bumpAny()
		p.expect(syntaxkind.BY_KW)
		p.commaListUntil(windowBodyStop, func() { p.exprBP(1, Restrictions{}) })
	}
	if p.at(syntaxkind.ORDER_KW) {
		p.orderByClause()
	}
	for !p.at(syntaxkind.R_PAREN) && !p.atEOF() {
		p.bumpAny()
	}
}

var windowBodyStop = syntaxkind.NewTokenSet(syntaxkind.ORDER_KW, syntaxkind.R_PAREN, syntaxkind.Eof)
