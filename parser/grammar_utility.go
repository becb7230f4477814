package parser

import "github.com/sqldef/pgparse/syntaxkind"

// This file gives clause-level grammar to the utility statements that
// previously fell through to genericStmt's flat token run: SHOW, RESET,
// CALL, DO, VACUUM, ANALYZE, COPY, GRANT, REVOKE, COMMENT, LOCK, LISTEN,
// NOTIFY, UNLISTEN, PREPARE, EXECUTE, DEALLOCATE, DECLARE, FETCH, MOVE,
// CLOSE, DISCARD, CHECKPOINT, CLUSTER, REINDEX, LOAD, REASSIGN, REFRESH,
// SECURITY LABEL, ABORT, and IMPORT FOREIGN SCHEMA. No original squawk
// grammar source exists for these productions (original_source/ carries
// only syntax_kind.rs, codegen.rs and adding_not_null_with_default.rs, no
// parser), so each is built the way grammar_table.go/grammar_misc.go build
// everything else: marker-based recursive descent over the real PostgreSQL
// clause shape, reusing the generic composite kinds (COLUMN_LIST, NAME_REF,
// ALIAS, IF_EXISTS) rather than inventing new SyntaxKind variants.

// showStmt parses `SHOW {name|ALL}`.
func (p *Parser) showStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.SHOW_KW)
	if !p.eat(syntaxkind.ALL_KW) {
		p.path()
	}
	return m.Complete(p, syntaxkind.SHOW_STMT)
}

// resetStmt parses `RESET {name|ALL}`.
func (p *Parser) resetStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.RESET_KW)
	if !p.eat(syntaxkind.ALL_KW) {
		p.path()
	}
	return m.Complete(p, syntaxkind.RESET_STMT)
}

// callStmt parses `CALL name(args)`.
func (p *Parser) callStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CALL_KW)
	p.exprBP(1, Restrictions{})
	return m.Complete(p, syntaxkind.CALL_STMT)
}

// doStmt parses `DO [LANGUAGE name] code [LANGUAGE name]` - PostgreSQL
// accepts the LANGUAGE clause either before or after the code string, at
// most one of each.
func (p *Parser) doStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.DO_KW)
	for clauses := 0; clauses < 2; clauses++ {
		switch {
		case p.eat(syntaxkind.LANGUAGE_KW):
			p.pathSegment()
		case p.atTS(doBodyFirst):
			p.bumpAny()
		default:
			return m.Complete(p, syntaxkind.DO_STMT)
		}
	}
	return m.Complete(p, syntaxkind.DO_STMT)
}

var doBodyFirst = syntaxkind.NewTokenSet(syntaxkind.STRING, syntaxkind.DOLLAR_QUOTED_STRING, syntaxkind.ESC_STRING)

// vacuumStmt parses both the historical `VACUUM [FULL] [FREEZE] [VERBOSE]
// [ANALYZE] [table [(cols)]][, ...]` form and the parenthesized-options
// form `VACUUM (option[, ...]) [table [(cols)]][, ...]`.
func (p *Parser) vacuumStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.VACUUM_KW)
	p.vacuumAnalyzeOptions(vacuumLegacyOptions)
	p.vacuumRelationList()
	return m.Complete(p, syntaxkind.VACUUM_STMT)
}

// analyzeStmt parses `ANALYZE [VERBOSE] [table [(cols)]][, ...]` and the
// parenthesized-options form `ANALYZE (option[, ...]) [table [(cols)]]`.
func (p *Parser) analyzeStmt() CompletedMarker {
	m := p.start()
	p.bumpAny() // ANALYZE/ANALYSE
	p.vacuumAnalyzeOptions(analyzeLegacyOptions)
	p.vacuumRelationList()
	return m.Complete(p, syntaxkind.ANALYZE_STMT)
}

var vacuumLegacyOptions = syntaxkind.NewTokenSet(syntaxkind.FULL_KW, syntaxkind.FREEZE_KW,
	syntaxkind.VERBOSE_KW, syntaxkind.ANALYZE_KW, syntaxkind.ANALYSE_KW)
var analyzeLegacyOptions = syntaxkind.NewTokenSet(syntaxkind.VERBOSE_KW)

func (p *Parser) vacuumAnalyzeOptions(legacy syntaxkind.TokenSet) {
	if p.at(syntaxkind.L_PAREN) {
		p.bumpAny()
		p.commaListUntil(rParenSet, func() {
			p.bumpAny() // option name
			if p.atTS(vacuumOptionValueFirst) {
				p.bumpAny()
			}
		})
		p.expect(syntaxkind.R_PAREN)
		return
	}
	for p.atTS(legacy) {
		p.bumpAny()
	}
}

var vacuumOptionValueFirst = syntaxkind.NewTokenSet(syntaxkind.TRUE_KW, syntaxkind.FALSE_KW,
	syntaxkind.ON_KW, syntaxkind.INT_NUMBER, syntaxkind.IDENT)

func (p *Parser) vacuumRelationList() {
	p.commaListUntil(vacuumRelationListStop, func() {
		p.qualifiedName()
		if p.at(syntaxkind.L_PAREN) {
			p.nameList()
		}
	})
}

var vacuumRelationListStop = syntaxkind.NewTokenSet(syntaxkind.SEMICOLON, syntaxkind.Eof)

// copyStmt parses `COPY table [(cols)] {FROM|TO} source_or_dest [[WITH]
// (option[, ...])]` plus the pre-9.0 unparenthesized option syntax and the
// `COPY (query) TO dest` form.
func (p *Parser) copyStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.COPY_KW)
	if p.at(syntaxkind.L_PAREN) {
		p.bumpAny()
		p.stmt(Restrictions{})
		p.expect(syntaxkind.R_PAREN)
	} else {
		p.qualifiedName()
		if p.at(syntaxkind.L_PAREN) {
			p.nameList()
		}
	}

	if p.eat(syntaxkind.FROM_KW) {
		p.copySource()
	} else {
		p.expect(syntaxkind.TO_KW)
		p.copySource()
	}

	for p.atTS(copyLegacyOptionFirst) {
		p.copyLegacyOption()
	}
	if p.eat(syntaxkind.WITH_KW) || p.at(syntaxkind.L_PAREN) {
		p.expect(syntaxkind.L_PAREN)
		p.commaListUntil(rParenSet, func() {
			p.bumpAny() // option name
			if p.atTS(vacuumOptionValueFirst) || p.at(syntaxkind.L_PAREN) {
				if p.at(syntaxkind.L_PAREN) {
					p.bumpAny()
					p.commaListUntil(rParenSet, func() { p.pathSegment() })
					p.expect(syntaxkind.R_PAREN)
				} else {
					p.bumpAny()
				}
			}
		})
		p.expect(syntaxkind.R_PAREN)
	}
	if p.eat(syntaxkind.WHERE_KW) {
		p.exprBP(1, Restrictions{})
	}
	return m.Complete(p, syntaxkind.COPY_STMT)
}

func (p *Parser) copySource() {
	switch {
	case p.eat(syntaxkind.PROGRAM_KW):
		p.exprBP(1, Restrictions{})
	case p.at(syntaxkind.STDIN_KW), p.at(syntaxkind.STDOUT_KW):
		p.bumpAny()
	default:
		p.exprBP(1, Restrictions{})
	}
}

var copyLegacyOptionFirst = syntaxkind.NewTokenSet(syntaxkind.BINARY_KW, syntaxkind.OIDS_KW,
	syntaxkind.DELIMITER_KW, syntaxkind.NULL_KW, syntaxkind.CSV_KW, syntaxkind.HEADER_KW,
	syntaxkind.QUOTE_KW, syntaxkind.ESCAPE_KW, syntaxkind.ENCODING_KW, syntaxkind.FORCE_KW)

func (p *Parser) copyLegacyOption() {
	switch {
	case p.eat(syntaxkind.BINARY_KW), p.eat(syntaxkind.OIDS_KW), p.eat(syntaxkind.CSV_KW):
	case p.eat(syntaxkind.DELIMITER_KW):
		p.eat(syntaxkind.AS_KW)
		p.exprBP(1, Restrictions{})
	case p.eat(syntaxkind.NULL_KW):
		p.eat(syntaxkind.AS_KW)
		p.exprBP(1, Restrictions{})
	case p.eat(syntaxkind.HEADER_KW):
	case p.eat(syntaxkind.QUOTE_KW):
		p.eat(syntaxkind.AS_KW)
		p.exprBP(1, Restrictions{})
	case p.eat(syntaxkind.ESCAPE_KW):
		p.eat(syntaxkind.AS_KW)
		p.exprBP(1, Restrictions{})
	case p.eat(syntaxkind.ENCODING_KW):
		p.exprBP(1, Restrictions{})
	case p.eat(syntaxkind.FORCE_KW):
		if p.eat(syntaxkind.NOT_KW) {
			p.expect(syntaxkind.NULL_KW)
		} else if p.eat(syntaxkind.QUOTE_KW) {
		} else {
			p.expect(syntaxkind.NULL_KW)
		}
		p.commaListUntil(copyLegacyOptionFirst, func() { p.pathSegment() })
	}
}

// grantRevokeObjectKindFirst is every keyword that can open a GRANT/REVOKE
// `ON` clause's object-type phrase (TABLE is implicit when omitted).
var grantRevokeObjectKindFirst = syntaxkind.NewTokenSet(syntaxkind.TABLE_KW, syntaxkind.SEQUENCE_KW,
	syntaxkind.DATABASE_KW, syntaxkind.DOMAIN_KW, syntaxkind.FOREIGN_KW, syntaxkind.FUNCTION_KW,
	syntaxkind.PROCEDURE_KW, syntaxkind.ROUTINE_KW, syntaxkind.LANGUAGE_KW, syntaxkind.LARGE_KW,
	syntaxkind.SCHEMA_KW, syntaxkind.TABLESPACE_KW, syntaxkind.TYPE_KW, syntaxkind.ALL_KW)

// grantStmt parses `GRANT privilege[, ...] ON [object_kind] target[, ...]
// TO grantee[, ...] [WITH GRANT OPTION]`.
func (p *Parser) grantStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.GRANT_KW)
	p.grantPrivilegeList()
	p.expect(syntaxkind.ON_KW)
	p.grantObjectKindOpt()
	p.commaListUntil(grantTargetListStop, func() { p.qualifiedName() })
	p.expect(syntaxkind.TO_KW)
	p.commaListUntil(grantGranteeListStop, func() { p.grantee() })
	if p.eat(syntaxkind.WITH_KW) {
		p.expect(syntaxkind.GRANT_KW)
		p.expect(syntaxkind.OPTION_KW)
	}
	return m.Complete(p, syntaxkind.GRANT_STMT)
}

// revokeStmt parses `REVOKE [GRANT OPTION FOR] privilege[, ...] ON
// [object_kind] target[, ...] FROM grantee[, ...] [CASCADE|RESTRICT]`.
func (p *Parser) revokeStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.REVOKE_KW)
	if p.at(syntaxkind.GRANT_KW) && p.nthAt(1, syntaxkind.OPTION_KW) {
		p.bumpAny()
		p.bumpAny()
		p.expect(syntaxkind.FOR_KW)
	}
	p.grantPrivilegeList()
	p.expect(syntaxkind.ON_KW)
	p.grantObjectKindOpt()
	p.commaListUntil(grantTargetListStop, func() { p.qualifiedName() })
	p.expect(syntaxkind.FROM_KW)
	p.commaListUntil(grantGranteeListStop, func() { p.grantee() })
	p.dropBehaviorOpt()
	return m.Complete(p, syntaxkind.REVOKE_STMT)
}

var grantTargetListStop = syntaxkind.NewTokenSet(syntaxkind.TO_KW, syntaxkind.FROM_KW, syntaxkind.Eof)
var grantGranteeListStop = syntaxkind.NewTokenSet(syntaxkind.WITH_KW, syntaxkind.CASCADE_KW,
	syntaxkind.RESTRICT_KW, syntaxkind.SEMICOLON, syntaxkind.Eof)

// grantPrivilegeList parses `ALL [PRIVILEGES] | priv_name [(cols)][, ...]`.
func (p *Parser) grantPrivilegeList() {
	if p.at(syntaxkind.ALL_KW) {
		p.bumpAny()
		p.eat(syntaxkind.PRIVILEGES_KW)
		return
	}
	p.commaListUntil(grantPrivilegeListStop, func() {
		p.pathSegment()
		if p.at(syntaxkind.L_PAREN) {
			p.nameList()
		}
	})
}

var grantPrivilegeListStop = syntaxkind.NewTokenSet(syntaxkind.ON_KW, syntaxkind.Eof)

// grantObjectKindOpt consumes the optional object-kind phrase between ON
// and the target list (e.g. `SEQUENCE`, `FOREIGN DATA WRAPPER`, `ALL
// TABLES IN SCHEMA`); TABLE is the default when nothing here matches.
func (p *Parser) grantObjectKindOpt() {
	switch {
	case p.at(syntaxkind.ALL_KW):
		p.bumpAny()
		p.bumpAny() // TABLES/SEQUENCES/FUNCTIONS/PROCEDURES/ROUTINES
		p.expect(syntaxkind.IN_KW)
		p.expect(syntaxkind.SCHEMA_KW)
		p.commaListUntil(grantTargetListStop, func() { p.pathSegment() })
	case p.at(syntaxkind.FOREIGN_KW) && p.nthAt(1, syntaxkind.DATA_KW):
		p.bumpAny()
		p.bumpAny()
		p.expect(syntaxkind.WRAPPER_KW)
	case p.atTS(grantRevokeObjectKindFirst):
		p.bumpAny()
	}
}

func (p *Parser) grantee() CompletedMarker {
	m := p.start()
	p.eat(syntaxkind.GROUP_KW)
	p.pathSegment() // PUBLIC is an ordinary identifier here, not a keyword
	return m.Complete(p, syntaxkind.NAME_REF)
}

// commentObjectKindFirst is every keyword that can open a COMMENT ON /
// SECURITY LABEL ON object-type phrase.
var commentObjectKindFirst = syntaxkind.NewTokenSet(syntaxkind.ACCESS_KW, syntaxkind.AGGREGATE_KW,
	syntaxkind.CAST_KW, syntaxkind.COLLATION_KW, syntaxkind.COLUMN_KW, syntaxkind.CONSTRAINT_KW,
	syntaxkind.CONVERSION_KW, syntaxkind.DATABASE_KW, syntaxkind.DOMAIN_KW, syntaxkind.EVENT_KW,
	syntaxkind.EXTENSION_KW, syntaxkind.FOREIGN_KW, syntaxkind.FUNCTION_KW, syntaxkind.INDEX_KW,
	syntaxkind.LANGUAGE_KW, syntaxkind.LARGE_KW, syntaxkind.MATERIALIZED_KW, syntaxkind.OPERATOR_KW,
	syntaxkind.POLICY_KW, syntaxkind.PROCEDURE_KW, syntaxkind.PUBLICATION_KW, syntaxkind.ROLE_KW,
	syntaxkind.ROUTINE_KW, syntaxkind.RULE_KW, syntaxkind.SCHEMA_KW, syntaxkind.SEQUENCE_KW,
	syntaxkind.SERVER_KW, syntaxkind.STATISTICS_KW, syntaxkind.SUBSCRIPTION_KW, syntaxkind.TABLE_KW,
	syntaxkind.TABLESPACE_KW, syntaxkind.TEXT_KW, syntaxkind.TRANSFORM_KW, syntaxkind.TRIGGER_KW,
	syntaxkind.TYPE_KW, syntaxkind.VIEW_KW)

// objectKindPhrase consumes the (possibly two-keyword) object-type phrase
// following ON in COMMENT ON / SECURITY LABEL ON.
func (p *Parser) objectKindPhrase() {
	p.bumpAny()
	switch {
	case p.at(syntaxkind.DATA_KW): // FOREIGN DATA WRAPPER
		p.bumpAny()
		p.expect(syntaxkind.WRAPPER_KW)
	case p.at(syntaxkind.TABLE_KW): // FOREIGN TABLE
		p.bumpAny()
	case p.at(syntaxkind.VIEW_KW): // MATERIALIZED VIEW
		p.bumpAny()
	case p.at(syntaxkind.TRIGGER_KW): // EVENT TRIGGER
		p.bumpAny()
	case p.at(syntaxkind.METHOD_KW): // ACCESS METHOD
		p.bumpAny()
	case p.at(syntaxkind.OBJECT_KW): // LARGE OBJECT
		p.bumpAny()
	case p.at(syntaxkind.SEARCH_KW): // TEXT SEARCH {CONFIGURATION|DICTIONARY|PARSER|TEMPLATE}
		p.bumpAny()
		p.bumpAny()
	}
}

// objectNameForKind parses the name following the object-kind phrase, plus
// the trailing `ON table_name` that CONSTRAINT/POLICY/RULE/TRIGGER comments
// carry to scope the name to its owning relation.
func (p *Parser) objectNameForKind() {
	p.qualifiedName()
	if p.eat(syntaxkind.ON_KW) {
		p.qualifiedName()
	}
}

// commentStmt parses `COMMENT ON object_kind name IS {string|NULL}`.
func (p *Parser) commentStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.COMMENT_KW)
	p.expect(syntaxkind.ON_KW)
	p.objectKindPhrase()
	p.objectNameForKind()
	p.expect(syntaxkind.IS_KW)
	p.exprBP(1, Restrictions{})
	return m.Complete(p, syntaxkind.COMMENT_STMT)
}

// securityLabelStmt parses `SECURITY LABEL [FOR provider] ON object_kind
// name IS {string|NULL}`.
func (p *Parser) securityLabelStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.SECURITY_KW)
	p.expect(syntaxkind.LABEL_KW)
	if p.eat(syntaxkind.FOR_KW) {
		p.pathSegment()
	}
	p.expect(syntaxkind.ON_KW)
	p.objectKindPhrase()
	p.objectNameForKind()
	p.expect(syntaxkind.IS_KW)
	p.exprBP(1, Restrictions{})
	return m.Complete(p, syntaxkind.SECURITY_LABEL_STMT)
}

// lockStmt parses `LOCK [TABLE] name[, ...] [IN lock_mode MODE] [NOWAIT]`.
func (p *Parser) lockStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.LOCK_KW)
	p.eat(syntaxkind.TABLE_KW)
	p.commaListUntil(lockTableListStop, func() {
		p.eat(syntaxkind.ONLY_KW)
		p.qualifiedName()
	})
	if p.eat(syntaxkind.IN_KW) {
		for !p.at(syntaxkind.MODE_KW) && !p.atEOF() {
			p.bumpAny()
		}
		p.expect(syntaxkind.MODE_KW)
	}
	p.eat(syntaxkind.NOWAIT_KW)
	return m.Complete(p, syntaxkind.LOCK_STMT)
}

var lockTableListStop = syntaxkind.NewTokenSet(syntaxkind.IN_KW, syntaxkind.NOWAIT_KW,
	syntaxkind.SEMICOLON, syntaxkind.Eof)

// listenStmt parses `LISTEN name`.
func (p *Parser) listenStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.LISTEN_KW)
	p.pathSegment()
	return m.Complete(p, syntaxkind.LISTEN_STMT)
}

// notifyStmt parses `NOTIFY name [, payload]`.
func (p *Parser) notifyStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.NOTIFY_KW)
	p.pathSegment()
	if p.eat(syntaxkind.COMMA) {
		p.exprBP(1, Restrictions{})
	}
	return m.Complete(p, syntaxkind.NOTIFY_STMT)
}

// unlistenStmt parses `UNLISTEN {name|*}`.
func (p *Parser) unlistenStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.UNLISTEN_KW)
	if !p.eat(syntaxkind.STAR) {
		p.pathSegment()
	}
	return m.Complete(p, syntaxkind.UNLISTEN_STMT)
}

// prepareStmt parses `PREPARE name [(type[, ...])] AS stmt` and
// `PREPARE TRANSACTION 'gid'`.
func (p *Parser) prepareStmt() CompletedMarker {
	if p.nthAt(1, syntaxkind.TRANSACTION_KW) {
		m := p.start()
		p.bump(syntaxkind.PREPARE_KW)
		p.bumpAny()
		p.exprBP(1, Restrictions{})
		return m.Complete(p, syntaxkind.PREPARE_TRANSACTION_STMT)
	}
	m := p.start()
	p.bump(syntaxkind.PREPARE_KW)
	p.pathSegment()
	if p.at(syntaxkind.L_PAREN) {
		p.bumpAny()
		p.commaListUntil(rParenSet, func() { p.parseType() })
		p.expect(syntaxkind.R_PAREN)
	}
	p.expect(syntaxkind.AS_KW)
	p.stmt(Restrictions{})
	return m.Complete(p, syntaxkind.PREPARE_STMT)
}

// executeStmt parses `EXECUTE name [(expr[, ...])]`.
func (p *Parser) executeStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.EXECUTE_KW)
	p.pathSegment()
	if p.at(syntaxkind.L_PAREN) {
		p.bumpAny()
		p.commaListUntil(rParenSet, func() { p.exprBP(1, Restrictions{}) })
		p.expect(syntaxkind.R_PAREN)
	}
	return m.Complete(p, syntaxkind.EXECUTE_STMT)
}

// deallocateStmt parses `DEALLOCATE [PREPARE] {name|ALL}`.
func (p *Parser) deallocateStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.DEALLOCATE_KW)
	p.eat(syntaxkind.PREPARE_KW)
	if !p.eat(syntaxkind.ALL_KW) {
		p.pathSegment()
	}
	return m.Complete(p, syntaxkind.DEALLOCATE_STMT)
}

// declareStmt parses `DECLARE name [BINARY] [ASENSITIVE|INSENSITIVE]
// [[NO] SCROLL] CURSOR [{WITH|WITHOUT} HOLD] FOR select`.
func (p *Parser) declareStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.DECLARE_KW)
	p.pathSegment()
	p.eat(syntaxkind.BINARY_KW)
	if !p.eat(syntaxkind.ASENSITIVE_KW) {
		p.eat(syntaxkind.INSENSITIVE_KW)
	}
	if p.eat(syntaxkind.NO_KW) {
		p.expect(syntaxkind.SCROLL_KW)
	} else {
		p.eat(syntaxkind.SCROLL_KW)
	}
	p.expect(syntaxkind.CURSOR_KW)
	if p.eat(syntaxkind.WITH_KW) || p.eat(syntaxkind.WITHOUT_KW) {
		p.expect(syntaxkind.HOLD_KW)
	}
	p.expect(syntaxkind.FOR_KW)
	p.selectStmt(Restrictions{})
	return m.Complete(p, syntaxkind.DECLARE_STMT)
}

// cursorDirectionOpt consumes FETCH/MOVE's optional direction clause
// (NEXT|PRIOR|FIRST|LAST|ABSOLUTE n|RELATIVE n|count|ALL|FORWARD [count|ALL]
// |BACKWARD [count|ALL]).
func (p *Parser) cursorDirectionOpt() {
	switch {
	case p.eat(syntaxkind.NEXT_KW), p.eat(syntaxkind.PRIOR_KW), p.eat(syntaxkind.FIRST_KW),
		p.eat(syntaxkind.LAST_KW), p.eat(syntaxkind.ALL_KW):
	case p.eat(syntaxkind.ABSOLUTE_KW), p.eat(syntaxkind.RELATIVE_KW):
		p.exprBP(1, Restrictions{})
	case p.eat(syntaxkind.FORWARD_KW), p.eat(syntaxkind.BACKWARD_KW):
		if p.atTS(cursorCountFirst) {
			p.exprBP(1, Restrictions{})
		}
	case p.atTS(cursorCountFirst):
		p.exprBP(1, Restrictions{})
	}
}

var cursorCountFirst = syntaxkind.NewTokenSet(syntaxkind.INT_NUMBER, syntaxkind.MINUS, syntaxkind.ALL_KW)

// fetchStmt/moveStmt parse `{FETCH|MOVE} [direction] [FROM|IN] cursor`.
func (p *Parser) fetchStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.FETCH_KW)
	p.cursorDirectionOpt()
	if p.eat(syntaxkind.FROM_KW) || p.eat(syntaxkind.IN_KW) {
	}
	p.pathSegment()
	return m.Complete(p, syntaxkind.FETCH_STMT)
}

func (p *Parser) moveStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.MOVE_KW)
	p.cursorDirectionOpt()
	if p.eat(syntaxkind.FROM_KW) || p.eat(syntaxkind.IN_KW) {
	}
	p.pathSegment()
	return m.Complete(p, syntaxkind.MOVE_STMT)
}

// closeStmt parses `CLOSE {name|ALL}`.
func (p *Parser) closeStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CLOSE_KW)
	if !p.eat(syntaxkind.ALL_KW) {
		p.pathSegment()
	}
	return m.Complete(p, syntaxkind.CLOSE_STMT)
}

// discardStmt parses `DISCARD {ALL|PLANS|SEQUENCES|TEMP|TEMPORARY}`.
func (p *Parser) discardStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.DISCARD_KW)
	p.bumpAny()
	return m.Complete(p, syntaxkind.DISCARD_STMT)
}

// checkpointStmt parses `CHECKPOINT`.
func (p *Parser) checkpointStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CHECKPOINT_KW)
	return m.Complete(p, syntaxkind.CHECKPOINT_STMT)
}

// clusterStmt parses the current `CLUSTER [VERBOSE] [table [USING index]]`
// form as well as the pre-8.3 `CLUSTER index ON table` form.
func (p *Parser) clusterStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.CLUSTER_KW)
	p.eat(syntaxkind.VERBOSE_KW)
	if p.atEOF() || p.at(syntaxkind.SEMICOLON) {
		return m.Complete(p, syntaxkind.CLUSTER_STMT)
	}
	p.qualifiedName()
	switch {
	case p.eat(syntaxkind.USING_KW):
		p.pathSegment()
	case p.eat(syntaxkind.ON_KW):
		p.qualifiedName()
	}
	return m.Complete(p, syntaxkind.CLUSTER_STMT)
}

// reindexStmt parses `REINDEX [(option[, ...])] {INDEX|TABLE|SCHEMA|
// DATABASE|SYSTEM} [CONCURRENTLY] name`.
func (p *Parser) reindexStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.REINDEX_KW)
	if p.at(syntaxkind.L_PAREN) {
		p.bumpAny()
		p.commaListUntil(rParenSet, func() {
			p.bumpAny()
			if p.atTS(vacuumOptionValueFirst) {
				p.bumpAny()
			}
		})
		p.expect(syntaxkind.R_PAREN)
	}
	p.bumpAny() // INDEX/TABLE/SCHEMA/DATABASE/SYSTEM
	p.eat(syntaxkind.CONCURRENTLY_KW)
	p.pathSegment()
	return m.Complete(p, syntaxkind.REINDEX_STMT)
}

// loadStmt parses `LOAD 'filename'`.
func (p *Parser) loadStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.LOAD_KW)
	p.exprBP(1, Restrictions{})
	return m.Complete(p, syntaxkind.LOAD_STMT)
}

// reassignStmt parses `REASSIGN OWNED BY old_role[, ...] TO new_role`.
func (p *Parser) reassignStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.REASSIGN_KW)
	p.expect(syntaxkind.OWNED_KW)
	p.expect(syntaxkind.BY_KW)
	p.commaListUntil(reassignOwnerListStop, func() { p.pathSegment() })
	p.expect(syntaxkind.TO_KW)
	p.pathSegment()
	return m.Complete(p, syntaxkind.REASSIGN_STMT)
}

var reassignOwnerListStop = syntaxkind.NewTokenSet(syntaxkind.TO_KW, syntaxkind.Eof)

// refreshStmt parses `REFRESH MATERIALIZED VIEW [CONCURRENTLY] name [WITH
// [NO] DATA]`.
func (p *Parser) refreshStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.REFRESH_KW)
	p.expect(syntaxkind.MATERIALIZED_KW)
	p.expect(syntaxkind.VIEW_KW)
	p.eat(syntaxkind.CONCURRENTLY_KW)
	p.qualifiedName()
	if p.eat(syntaxkind.WITH_KW) {
		p.eat(syntaxkind.NO_KW)
		p.expect(syntaxkind.DATA_KW)
	}
	return m.Complete(p, syntaxkind.REFRESH_STMT)
}

// abortStmt parses `ABORT [WORK|TRANSACTION] [AND [NO] CHAIN]`, PostgreSQL's
// alias for ROLLBACK.
func (p *Parser) abortStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.ABORT_KW)
	p.eat(syntaxkind.WORK_KW)
	p.eat(syntaxkind.TRANSACTION_KW)
	if p.eat(syntaxkind.AND_KW) {
		if !p.eat(syntaxkind.CHAIN_KW) {
			p.expect(syntaxkind.NO_KW)
			p.expect(syntaxkind.CHAIN_KW)
		}
	}
	return m.Complete(p, syntaxkind.ROLLBACK_STMT)
}

// importForeignSchemaStmt parses `IMPORT FOREIGN SCHEMA name [{LIMIT TO|
// EXCEPT} (table[, ...])] FROM SERVER server INTO local_schema [OPTIONS
// (opt[, ...])]`.
func (p *Parser) importForeignSchemaStmt() CompletedMarker {
	m := p.start()
	p.bump(syntaxkind.IMPORT_KW)
	p.expect(syntaxkind.FOREIGN_KW)
	p.expect(syntaxkind.SCHEMA_KW)
	p.pathSegment()
	if p.eat(syntaxkind.LIMIT_KW) {
		p.expect(syntaxkind.TO_KW)
		p.nameList()
	} else if p.eat(syntaxkind.EXCEPT_KW) {
		p.nameList()
	}
	p.expect(syntaxkind.FROM_KW)
	p.expect(syntaxkind.SERVER_KW)
	p.pathSegment()
	p.expect(syntaxkind.INTO_KW)
	p.pathSegment()
	if p.eat(syntaxkind.OPTIONS_KW) {
		p.expect(syntaxkind.L_PAREN)
		p.commaListUntil(rParenSet, func() {
			p.pathSegment()
			p.exprBP(1, Restrictions{})
		})
		p.expect(syntaxkind.R_PAREN)
	}
	return m.Complete(p, syntaxkind.IMPORT_FOREIGN_SCHEMA)
}
