package parser

import "github.com/sqldef/pgparse/syntaxkind"

// insertStmt parses `[WITH ...] INSERT INTO table [(cols)] {DEFAULT VALUES
// | values|select} [ON CONFLICT ...] [RETURNING target_list]`.
func (p *Parser) insertStmt(r Restrictions) CompletedMarker {
	m := p.start()
	if p.at(syntaxkind.WITH_KW) {
		p.withClause()
	}
	p.bump(syntaxkind.INSERT_KW)
	p.expect(syntaxkind.INTO_KW)
	p.qualifiedName()
	if p.at(syntaxkind.L_PAREN) {
		p.nameList()
	}
	p.aliasOpt()

	switch {
	case p.at(syntaxkind.DEFAULT_KW) && p.nthAt(1, syntaxkind.VALUES_KW):
		p.bumpAny()
		p.bumpAny()
	default:
		p.selectStmt(Restrictions{})
	}

	if p.at(syntaxkind.ON_KW) && p.nthAt(1, syntaxkind.CONFLICT_KW) {
		p.onConflictClause()
	}

	p.returningClauseOpt()

	return m.Complete(p, syntaxkind.INSERT_STMT)
}

func (p *Parser) onConflictClause() {
	p.bumpAny() // ON
	p.bumpAny() // CONFLICT
	if p.at(syntaxkind.L_PAREN) {
		p.nameList()
	} else if p.at(syntaxkind.ON_KW) {
		// ON CONSTRAINT name
	}
	if p.eat(syntaxkind.ON_KW) {
		p.expect(syntaxkind.CONSTRAINT_KW)
		p.pathSegment()
	}
	if p.at(syntaxkind.WHERE_KW) {
		p.bumpAny()
		p.exprBP(1, Restrictions{})
	}
	p.expect(syntaxkind.DO_KW)
	if p.eat(syntaxkind.NOTHING_KW) {
		return
	}
	p.expect(syntaxkind.UPDATE_KW)
	p.expect(syntaxkind.SET_KW)
	p.commaListUntil(setClauseStop, func() { p.setClauseItem() })
	if p.at(syntaxkind.WHERE_KW) {
		p.bumpAny()
		p.exprBP(1, Restrictions{})
	}
}

func (p *Parser) returningClauseOpt() {
	if !p.at(syntaxkind.RETURNING_KW) {
		return
	}
	p.bumpAny()
	p.targetList()
}

// updateStmt parses `[WITH ...] UPDATE table [AS alias] SET col = expr[, ...]
// [FROM from_item[, ...]] [WHERE ...] [RETURNING ...]`.
func (p *Parser) updateStmt(r Restrictions) CompletedMarker {
	m := p.start()
	if p.at(syntaxkind.WITH_KW) {
		p.withClause()
	}
	p.bump(syntaxkind.UPDATE_KW)
	p.eat(syntaxkind.ONLY_KW)
	p.qualifiedName()
	p.aliasOpt()
	p.expect(syntaxkind.SET_KW)
	p.commaListUntil(setClauseStop, func() { p.setClauseItem() })

	if p.at(syntaxkind.FROM_KW) {
		p.fromClause()
	}
	if p.at(syntaxkind.WHERE_KW) {
		p.bumpAny()
		if p.at(syntaxkind.CURRENT_KW) {
			p.bumpAny()
			p.expect(syntaxkind.OF_KW)
			p.pathSegment()
		} else {
			p.exprBP(1, Restrictions{})
		}
	}
	p.returningClauseOpt()
	return m.Complete(p, syntaxkind.UPDATE_STMT)
}

var setClauseStop = syntaxkind.NewTokenSet(syntaxkind.FROM_KW, syntaxkind.WHERE_KW, syntaxkind.RETURNING_KW,
	syntaxkind.SEMICOLON, syntaxkind.Eof)

// setClauseItem parses one `col = expr` or `(col[,...]) = (expr[,...])`
// assignment in an UPDATE's SET list.
func (p *Parser) setClauseItem() {
	m := p.start()
	if p.at(syntaxkind.L_PAREN) {
		p.nameList()
	} else {
		p.pathSegment()
	}
	if p.expect(syntaxkind.EQ) {
	}
	if p.at(syntaxkind.L_PAREN) && p.nthAt(1, syntaxkind.SELECT_KW) {
		p.bumpAny()
		p.selectStmt(Restrictions{})
		p.expect(syntaxkind.R_PAREN)
	} else {
		p.exprBP(1, Restrictions{})
	}
	m.Complete(p, syntaxkind.TARGET)
}

// deleteStmt parses `[WITH ...] DELETE FROM table [AS alias] [USING
// from_item[, ...]] [WHERE ...|WHERE CURRENT OF cursor] [RETURNING ...]`.
func (p *Parser) deleteStmt(r Restrictions) CompletedMarker {
	m := p.start()
	if p.at(syntaxkind.WITH_KW) {
		p.withClause()
	}
	p.bump(syntaxkind.DELETE_KW)
	p.expect(syntaxkind.FROM_KW)
	p.eat(syntaxkind.ONLY_KW)
	p.qualifiedName()
	p.aliasOpt()

	if p.at(syntaxkind.USING_KW) {
		um := p.start()
		p.bumpAny()
		p.commaListUntil(fromListStop, func() { p.fromItem() })
		um.Complete(p, syntaxkind.USING_CLAUSE)
	}

	if p.at(syntaxkind.WHERE_KW) {
		p.bumpAny()
		if p.at(syntaxkind.CURRENT_KW) {
			p.bumpAny()
			p.expect(syntaxkind.OF_KW)
			p.pathSegment()
		} else {
			p.exprBP(1, Restrictions{})
		}
	}
	p.returningClauseOpt()
	return m.Complete(p, syntaxkind.DELETE_STMT)
}

// mergeStmt parses `[WITH ...] MERGE INTO target [AS alias] USING source
// ON cond {WHEN MATCHED [AND cond] THEN {UPDATE SET ... | DELETE | DO
// NOTHING} | WHEN NOT MATCHED [AND cond] THEN {INSERT ... | DO NOTHING}}+`.
func (p *Parser) mergeStmt(r Restrictions) CompletedMarker {
	m := p.start()
	if p.at(syntaxkind.WITH_KW) {
		p.withClause()
	}
	p.bump(syntaxkind.MERGE_KW)
	p.expect(syntaxkind.INTO_KW)
	p.qualifiedName()
	p.aliasOpt()
	p.expect(syntaxkind.USING_KW)
	p.fromItem()
	p.expect(syntaxkind.ON_KW)
	p.exprBP(1, Restrictions{})

	for p.at(syntaxkind.WHEN_KW) {
		wm := p.start()
		p.bumpAny()
		matched := p.eat(syntaxkind.MATCHED_KW)
		if !matched {
			p.expect(syntaxkind.NOT_KW)
			p.expect(syntaxkind.MATCHED_KW)
		}
		if p.eat(syntaxkind.AND_KW) {
			p.exprBP(1, Restrictions{})
		}
		p.expect(syntaxkind.THEN_KW)
		switch {
		case p.at(syntaxkind.UPDATE_KW):
			p.bumpAny()
			p.expect(syntaxkind.SET_KW)
			p.commaListUntil(setClauseStop, func() { p.setClauseItem() })
		case p.at(syntaxkind.DELETE_KW):
			p.bumpAny()
		case p.at(syntaxkind.INSERT_KW):
			p.bumpAny()
			if p.at(syntaxkind.L_PAREN) {
				p.nameList()
			}
			if p.at(syntaxkind.DEFAULT_KW) && p.nthAt(1, syntaxkind.VALUES_KW) {
				p.bumpAny()
				p.bumpAny()
			} else {
				p.expect(syntaxkind.VALUES_KW)
				p.expect(syntaxkind.L_PAREN)
				p.commaListUntil(rParenSet, func() { p.exprBP(1, Restrictions{}) })
				p.expect(syntaxkind.R_PAREN)
			}
		case p.at(syntaxkind.DO_KW):
			p.bumpAny()
			p.expect(syntaxkind.NOTHING_KW)
		default:
			p.error("expected UPDATE, DELETE, INSERT, or DO NOTHING")
		}
		wm.Complete(p, syntaxkind.WHEN_CLAUSE)
	}

	p.returningClauseOpt()
	return m.Complete(p, syntaxkind.MERGE_STMT)
}
