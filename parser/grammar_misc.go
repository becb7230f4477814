package parser

import "github.com/sqldef/pgparse/syntaxkind"

// transactionStmt parses BEGIN/START TRANSACTION and COMMIT/END, both of
// which take the same optional comma-separated list of transaction modes
// (ISOLATION LEVEL ..., READ WRITE|ONLY, [NOT] DEFERRABLE). variant
// distinguishes BEGIN (0) from START TRANSACTION (1) purely for the
// leading-keyword bump; both produce the same node kind.
func (p *Parser) transactionStmt(kind syntaxkind.Kind, variant int) CompletedMarker {
	m := p.start()
	if variant == 1 {
		p.bump(syntaxkind.START_KW)
		p.expect(syntaxkind.TRANSACTION_KW)
	} else {
		p.bumpAny() // BEGIN / COMMIT / END
		p.eat(syntaxkind.WORK_KW)
		p.eat(syntaxkind.TRANSACTION_KW)
	}
	if p.eat(syntaxkind.AND_KW) {
		if !p.eat(syntaxkind.CHAIN_KW) {
			p.expect(syntaxkind.NO_KW)
			p.expect(syntaxkind.CHAIN_KW)
		}
	}
	p.commaListUntil(transactionModeStop, func() { p.transactionMode() })
	return m.Complete(p, kind)
}

var transactionModeStop = syntaxkind.NewTokenSet(syntaxkind.SEMICOLON, syntaxkind.Eof)

var setConstraintsStop = syntaxkind.NewTokenSet(
	syntaxkind.SEMICOLON, syntaxkind.Eof, syntaxkind.DEFERRED_KW, syntaxkind.IMMEDIATE_KW)

func (p *Parser) transactionMode() {
	switch {
	case p.at(syntaxkind.ISOLATION_KW):
		p.bumpAny()
		p.expect(syntaxkind.LEVEL_KW)
		p.bumpAny() // SERIALIZABLE/REPEATABLE/READ/COMMITTED - plain identifiers here
		if p.current() == syntaxkind.COMMITTED_KW || p.current() == syntaxkind.UNCOMMITTED_KW {
			p.bumpAny()
		}
	case p.at(syntaxkind.READ_KW):
		p.bumpAny()
		if !p.eat(syntaxkind.WRITE_KW) {
			p.expect(syntaxkind.ONLY_KW)
		}
	case p.at(syntaxkind.NOT_KW) && p.nthAt(1, syntaxkind.DEFERRABLE_KW):
		p.bumpAny()
		p.bumpAny()
	case p.at(syntaxkind.DEFERRABLE_KW):
		p.bumpAny()
	default:
		p.errAndBump("expected transaction mode")
	}
}

// rollbackStmt parses `ROLLBACK [WORK|TRANSACTION] [TO [SAVEPOINT] name]`.
func (p *Parser) rollbackStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.ROLLBACK_KW)
	p.eat(syntaxkind.WORK_KW)
	p.eat(syntaxkind.TRANSACTION_KW)
	if p.eat(syntaxkind.TO_KW) {
		p.eat(syntaxkind.SAVEPOINT_KW)
		p.pathSegment()
	}
	return m.Complete(p, syntaxkind.ROLLBACK_STMT)
}

func (p *Parser) savepointStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.SAVEPOINT_KW)
	p.pathSegment()
	return m.Complete(p, syntaxkind.SAVEPOINT_STMT)
}

// releaseSavepointStmt parses `RELEASE [SAVEPOINT] name`.
func (p *Parser) releaseSavepointStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.RELEASE_KW)
	p.eat(syntaxkind.SAVEPOINT_KW)
	p.pathSegment()
	return m.Complete(p, syntaxkind.RELEASE_SAVEPOINT_STMT)
}

// truncateStmt parses `TRUNCATE [TABLE] [ONLY] name[, ...] [RESTART|CONTINUE
// IDENTITY] [CASCADE|RESTRICT]`.
func (p *Parser) truncateStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.TRUNCATE_KW)
	p.eat(syntaxkind.TABLE_KW)
	p.commaListUntil(truncateListStop, func() {
		p.eat(syntaxkind.ONLY_KW)
		p.qualifiedName()
	})
	switch {
	case p.eat(syntaxkind.RESTART_KW):
		p.expect(syntaxkind.IDENTITY_KW)
	case p.eat(syntaxkind.CONTINUE_KW):
		p.expect(syntaxkind.IDENTITY_KW)
	}
	p.dropBehaviorOpt()
	return m.Complete(p, syntaxkind.TRUNCATE_STMT)
}

var truncateListStop = syntaxkind.NewTokenSet(syntaxkind.RESTART_KW, syntaxkind.CONTINUE_KW,
	syntaxkind.CASCADE_KW, syntaxkind.RESTRICT_KW, syntaxkind.SEMICOLON, syntaxkind.Eof)

// explainStmt parses `EXPLAIN [ANALYZE] [VERBOSE] stmt` or `EXPLAIN (opt[,
// ...]) stmt`.
func (p *Parser) explainStmt(r Restrictions) CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.EXPLAIN_KW)
	if p.at(syntaxkind.L_PAREN) {
		p.bumpAny()
		p.commaListUntil(rParenSet, func() {
			p.pathSegment()
			if !p.atTS(rParenSet.Union(syntaxkind.NewTokenSet(syntaxkind.COMMA))) {
				p.exprBP(1, Restrictions{})
			}
		})
		p.expect(syntaxkind.R_PAREN)
	} else {
		p.eat(syntaxkind.ANALYZE_KW)
		p.eat(syntaxkind.ANALYSE_KW)
		p.eat(syntaxkind.VERBOSE_KW)
	}
	p.stmt(r)
	return m.Complete(p, syntaxkind.EXPLAIN_STMT)
}

// setStmt parses `SET [SESSION|LOCAL] name {TO|=} value[, ...]|DEFAULT` and
// the `SET [SESSION] CHARACTERISTICS AS TRANSACTION ...` / `SET ROLE ...` /
// `SET SESSION AUTHORIZATION ...` variants.
func (p *Parser) setStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.SET_KW)

	if p.at(syntaxkind.SESSION_KW) && p.nthAt(1, syntaxkind.CHARACTERISTICS_KW) {
		p.bumpAny()
		p.bumpAny()
		p.expect(syntaxkind.AS_KW)
		p.expect(syntaxkind.TRANSACTION_KW)
		p.commaListUntil(transactionModeStop, func() { p.transactionMode() })
		return m.Complete(p, syntaxkind.SET_TRANSACTION_STMT)
	}
	if p.at(syntaxkind.TRANSACTION_KW) {
		p.bumpAny()
		p.commaListUntil(transactionModeStop, func() { p.transactionMode() })
		return m.Complete(p, syntaxkind.SET_TRANSACTION_STMT)
	}
	if (p.at(syntaxkind.SESSION_KW) && p.nthAt(1, syntaxkind.AUTHORIZATION_KW)) || p.at(syntaxkind.AUTHORIZATION_KW) {
		p.eat(syntaxkind.SESSION_KW)
		p.bumpAny()
		if !p.eat(syntaxkind.DEFAULT_KW) {
			p.exprBP(1, Restrictions{})
		}
		return m.Complete(p, syntaxkind.SET_SESSION_AUTH_STMT)
	}

	p.eat(syntaxkind.SESSION_KW)
	p.eat(syntaxkind.LOCAL_KW)

	if p.at(syntaxkind.ROLE_KW) {
		p.bumpAny()
		if !p.eat(syntaxkind.NONE_KW) {
			p.exprBP(1, Restrictions{})
		}
		return m.Complete(p, syntaxkind.SET_ROLE_STMT)
	}

	if p.at(syntaxkind.CONSTRAINTS_KW) {
		p.bumpAny()
		if !p.eat(syntaxkind.ALL_KW) {
			p.commaListUntil(setConstraintsStop, func() { p.qualifiedName() })
		}
		if !p.eat(syntaxkind.DEFERRED_KW) {
			p.eat(syntaxkind.IMMEDIATE_KW)
		}
		return m.Complete(p, syntaxkind.SET_CONSTRAINTS_STMT)
	}

	p.path()
	if p.eat(syntaxkind.TO_KW) || p.eat(syntaxkind.EQ) {
		if p.eat(syntaxkind.DEFAULT_KW) {
		} else {
			p.commaListUntil(transactionModeStop, func() { p.exprBP(1, Restrictions{}) })
		}
	}
	return m.Complete(p, syntaxkind.SET_STMT)
}

// createViewStmt parses `CREATE [MATERIALIZED] VIEW name [(cols)] AS
// select` (without OR REPLACE - see createViewWithOrReplace).
func (p *Parser) createViewStmt(materialized bool) CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CREATE_KW)
	if materialized {
		p.bump(syntaxkind.MATERIALIZED_KW)
	}
	p.expect(syntaxkind.VIEW_KW)
	p.viewBody()
	if materialized {
		return m.Complete(p, syntaxkind.CREATE_MATERIALIZED_VIEW_STMT)
	}
	return m.Complete(p, syntaxkind.CREATE_VIEW_STMT)
}

// createViewWithOrReplace parses the `CREATE OR REPLACE VIEW ...` form.
// PostgreSQL does not accept MATERIALIZED here, but the parser still takes
// the flag so a malformed `CREATE OR REPLACE MATERIALIZED VIEW` recovers
// into the right node kind instead of a silently wrong one.
func (p *Parser) createViewWithOrReplace(materialized bool) CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CREATE_KW)
	p.bump(syntaxkind.OR_KW)
	p.bump(syntaxkind.REPLACE_KW)
	if materialized {
		p.bump(syntaxkind.MATERIALIZED_KW)
	}
	p.expect(syntaxkind.VIEW_KW)
	p.viewBody()
	if materialized {
		return m.Complete(p, syntaxkind.CREATE_MATERIALIZED_VIEW_STMT)
	}
	return m.Complete(p, syntaxkind.CREATE_VIEW_STMT)
}

func (p *Parser) viewBody() {
	p.ifNotExists()
	p.qualifiedName()
	if p.at(syntaxkind.L_PAREN) {
		p.nameList()
	}
	if p.eat(syntaxkind.WITH_KW) {
		p.expect(syntaxkind.L_PAREN)
		p.commaListUntil(rParenSet, func() { p.pathSegment() })
		p.expect(syntaxkind.R_PAREN)
	}
	p.expect(syntaxkind.AS_KW)
	p.selectStmt(Restrictions{})
	if p.eat(syntaxkind.WITH_KW) {
		p.eat(syntaxkind.LOCAL_KW)
		p.eat(syntaxkind.CASCADED_KW)
		p.expect(syntaxkind.CHECK_KW)
		p.expect(syntaxkind.OPTION_KW)
	}
}

// createFunctionStmt parses `CREATE [FUNCTION|PROCEDURE] name (params)
// [RETURNS type] func_option*` (without OR REPLACE).
func (p *Parser) createFunctionStmt(kind syntaxkind.Kind) CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CREATE_KW)
	p.bumpAny() // FUNCTION / PROCEDURE
	p.functionBody(kind == syntaxkind.CREATE_PROCEDURE_STMT)
	return m.Complete(p, kind)
}

// createFunctionWithOrReplace parses the `CREATE OR REPLACE
// {FUNCTION|PROCEDURE} ...` form.
func (p *Parser) createFunctionWithOrReplace(kind syntaxkind.Kind) CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CREATE_KW)
	p.bump(syntaxkind.OR_KW)
	p.bump(syntaxkind.REPLACE_KW)
	p.bumpAny() // FUNCTION / PROCEDURE
	p.functionBody(kind == syntaxkind.CREATE_PROCEDURE_STMT)
	return m.Complete(p, kind)
}

func (p *Parser) functionBody(isProcedure bool) {
	p.qualifiedName()
	p.expect(syntaxkind.L_PAREN)
	p.commaListUntil(rParenSet, func() { p.functionParam() })
	p.expect(syntaxkind.R_PAREN)

	if !isProcedure && p.eat(syntaxkind.RETURNS_KW) {
		rm := p.start()
		if p.at(syntaxkind.TABLE_KW) {
			p.bumpAny()
			p.expect(syntaxkind.L_PAREN)
			p.commaListUntil(rParenSet, func() { p.functionParam() })
			p.expect(syntaxkind.R_PAREN)
		} else {
			p.eat(syntaxkind.SETOF_KW)
			p.parseType()
		}
		rm.Complete(p, syntaxkind.RETURN_FUNC_OPTION)
	}

	for p.atTS(funcOptionFirst) {
		p.functionOption()
	}
}

var funcOptionFirst = syntaxkind.NewTokenSet(syntaxkind.LANGUAGE_KW, syntaxkind.TRANSFORM_KW,
	syntaxkind.WINDOW_KW, syntaxkind.IMMUTABLE_KW, syntaxkind.STABLE_KW, syntaxkind.VOLATILE_KW,
	syntaxkind.NOT_KW, syntaxkind.LEAKPROOF_KW, syntaxkind.CALLED_KW, syntaxkind.STRICT_KW,
	syntaxkind.SECURITY_KW, syntaxkind.PARALLEL_KW, syntaxkind.COST_KW, syntaxkind.ROWS_KW,
	syntaxkind.SUPPORT_KW, syntaxkind.SET_KW, syntaxkind.AS_KW, syntaxkind.RETURN_KW,
	syntaxkind.BEGIN_KW, syntaxkind.RESET_KW)

func (p *Parser) functionOption() {
	switch {
	case p.at(syntaxkind.LANGUAGE_KW):
		m := p.start()
		p.bumpAny()
		p.pathSegment()
		m.Complete(p, syntaxkind.LANGUAGE_FUNC_OPTION)

	case p.at(syntaxkind.TRANSFORM_KW):
		m := p.start()
		p.bumpAny()
		p.expect(syntaxkind.FOR_KW)
		p.expect(syntaxkind.TYPE_KW)
		p.commaListUntil(funcOptionFirst, func() { p.pathSegment() })
		m.Complete(p, syntaxkind.TRANSFORM_FUNC_OPTION)

	case p.at(syntaxkind.WINDOW_KW):
		m := p.start()
		p.bumpAny()
		m.Complete(p, syntaxkind.WINDOW_FUNC_OPTION)

	case p.at(syntaxkind.IMMUTABLE_KW) || p.at(syntaxkind.STABLE_KW) || p.at(syntaxkind.VOLATILE_KW):
		m := p.start()
		p.bumpAny()
		m.Complete(p, syntaxkind.VOLATILITY_FUNC_OPTION)

	case p.at(syntaxkind.NOT_KW) && p.nthAt(1, syntaxkind.LEAKPROOF_KW):
		m := p.start()
		p.bumpAny()
		p.bumpAny()
		m.Complete(p, syntaxkind.LEAKPROOF_FUNC_OPTION)

	case p.at(syntaxkind.LEAKPROOF_KW):
		m := p.start()
		p.bumpAny()
		m.Complete(p, syntaxkind.LEAKPROOF_FUNC_OPTION)

	case p.at(syntaxkind.CALLED_KW):
		m := p.start()
		p.bumpAny()
		p.expect(syntaxkind.ON_KW)
		p.expect(syntaxkind.NULL_KW)
		p.expect(syntaxkind.INPUT_KW)
		m.Complete(p, syntaxkind.STRICT_FUNC_OPTION)

	case p.at(syntaxkind.NOT_KW):
		m := p.start()
		p.bumpAny()
		p.expect(syntaxkind.RETURNS_KW)
		p.expect(syntaxkind.NULL_KW)
		p.expect(syntaxkind.ON_KW)
		p.expect(syntaxkind.NULL_KW)
		p.expect(syntaxkind.INPUT_KW)
		m.Complete(p, syntaxkind.STRICT_FUNC_OPTION)

	case p.at(syntaxkind.STRICT_KW):
		m := p.start()
		p.bumpAny()
		m.Complete(p, syntaxkind.STRICT_FUNC_OPTION)

	case p.at(syntaxkind.SECURITY_KW):
		m := p.start()
		p.bumpAny()
		if !p.eat(syntaxkind.INVOKER_KW) {
			p.expect(syntaxkind.DEFINER_KW)
		}
		m.Complete(p, syntaxkind.SECURITY_FUNC_OPTION)

	case p.at(syntaxkind.PARALLEL_KW):
		m := p.start()
		p.bumpAny()
		p.bumpAny() // UNSAFE/RESTRICTED/SAFE
		m.Complete(p, syntaxkind.PARALLEL_FUNC_OPTION)

	case p.at(syntaxkind.COST_KW):
		m := p.start()
		p.bumpAny()
		p.exprBP(1, Restrictions{})
		m.Complete(p, syntaxkind.COST_FUNC_OPTION)

	case p.at(syntaxkind.ROWS_KW):
		m := p.start()
		p.bumpAny()
		p.exprBP(1, Restrictions{})
		m.Complete(p, syntaxkind.ROWS_FUNC_OPTION)

	case p.at(syntaxkind.SUPPORT_KW):
		m := p.start()
		p.bumpAny()
		p.qualifiedName()
		m.Complete(p, syntaxkind.SUPPORT_FUNC_OPTION)

	case p.at(syntaxkind.SET_KW):
		m := p.start()
		p.bumpAny()
		p.path()
		if p.eat(syntaxkind.TO_KW) || p.eat(syntaxkind.EQ) {
			if !p.eat(syntaxkind.DEFAULT_KW) {
				p.commaListUntil(funcOptionFirst, func() { p.exprBP(1, Restrictions{}) })
			}
		} else {
			p.expect(syntaxkind.FROM_KW)
			p.expect(syntaxkind.CURRENT_KW)
		}
		m.Complete(p, syntaxkind.SET_FUNC_OPTION)

	case p.at(syntaxkind.RESET_KW):
		m := p.start()
		p.bumpAny()
		if !p.eat(syntaxkind.ALL_KW) {
			p.path()
		}
		m.Complete(p, syntaxkind.RESET_FUNC_OPTION)

	case p.at(syntaxkind.AS_KW):
		m := p.start()
		p.bumpAny()
		p.exprBP(1, Restrictions{})
		if p.eat(syntaxkind.COMMA) {
			p.exprBP(1, Restrictions{})
		}
		m.Complete(p, syntaxkind.AS_FUNC_OPTION)

	case p.at(syntaxkind.RETURN_KW):
		m := p.start()
		p.bumpAny()
		p.exprBP(1, Restrictions{})
		m.Complete(p, syntaxkind.RETURN_FUNC_OPTION)

	case p.at(syntaxkind.BEGIN_KW):
		m := p.start()
		p.bumpAny()
		p.expect(syntaxkind.ATOMIC_KW)
		for !p.at(syntaxkind.END_KW) && !p.atEOF() {
			if !p.stmt(Restrictions{BeginEndAllowed: true}) {
				p.errAndBump("expected statement")
				continue
			}
			p.expect(syntaxkind.SEMICOLON)
		}
		p.expect(syntaxkind.END_KW)
		m.Complete(p, syntaxkind.BEGIN_FUNC_OPTION)

	default:
		p.errAndBump("expected function option")
	}
}

// functionParam parses one `[mode] [name] type [{DEFAULT|=} expr]` entry in
// a CREATE FUNCTION parameter list.
func (p *Parser) functionParam() {
	m := p.start()
	kind := syntaxkind.PARAM
	switch {
	case p.eat(syntaxkind.IN_KW):
		if p.eat(syntaxkind.OUT_KW) {
			kind = syntaxkind.PARAM_INOUT
		} else {
			kind = syntaxkind.PARAM_IN
		}
	case p.eat(syntaxkind.OUT_KW):
		kind = syntaxkind.PARAM_OUT
	case p.eat(syntaxkind.INOUT_KW):
		kind = syntaxkind.PARAM_INOUT
	case p.eat(syntaxkind.VARIADIC_KW):
		kind = syntaxkind.PARAM_VARIADIC
	}

	if p.at(syntaxkind.IDENT) && !p.nthAtTS(1, rParenSet.Union(syntaxkind.NewTokenSet(syntaxkind.COMMA, syntaxkind.EQ, syntaxkind.DEFAULT_KW))) {
		p.pathSegment()
	}
	p.parseType()
	if p.eat(syntaxkind.DEFAULT_KW) || p.eat(syntaxkind.EQ) {
		p.exprBP(1, Restrictions{})
	}
	m.Complete(p, kind)
}
