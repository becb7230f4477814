package parser

import (
	"github.com/sqldef/pgparse/lexer"
	"github.com/sqldef/pgparse/syntaxkind"
)

// Tree is the outcome of a single Parse call: the event stream, ready for
// a tree builder, plus whatever diagnostics accumulated along the way.
// Parsing never fails outright - a Tree is always returned, even for
// input that is nothing but garbage.
type Tree struct {
	Events      []Event
	Diagnostics []Diagnostic
	Tokens      []lexer.Token
}

// Parse runs the grammar over tokens and returns the resulting event
// stream. It is the one entry point everything else in this package
// exists to support.
func Parse(tokens []lexer.Token) (tree Tree) {
	p := NewParser(tokens)

	defer func() {
		if r := recover(); r != nil {
			p.error("parser: aborted (recursion/step guard tripped)")
		}
		tree = Tree{Events: p.Events(), Diagnostics: p.Diagnostics(), Tokens: p.Tokens()}
	}()

	m := p.newMarker()
	for !p.atEOF() {
		for p.eat(syntaxkind.SEMICOLON) {
		}
		if p.atEOF() {
			break
		}
		if !p.stmt(Restrictions{}) {
			p.errAndBump("expected statement")
			continue
		}
		if !p.atEOF() {
			p.expect(syntaxkind.SEMICOLON)
		}
	}
	for p.pos < len(p.tokens) && syntaxkind.IsTrivia(p.tokens[p.pos].Kind) {
		p.emitToken(p.tokens[p.pos])
		p.pos++
	}
	m.Complete(p, syntaxkind.SOURCE_FILE)
	return
}

// stmtFirst is every token kind that can open a top-level statement,
// including the keywords dispatched on below plus a parenthesized SELECT.
var stmtFirst = syntaxkind.NewTokenSet(
	syntaxkind.ABORT_KW, syntaxkind.ALTER_KW, syntaxkind.ANALYZE_KW, syntaxkind.BEGIN_KW,
	syntaxkind.CALL_KW, syntaxkind.CHECKPOINT_KW, syntaxkind.CLOSE_KW, syntaxkind.CLUSTER_KW,
	syntaxkind.COMMENT_KW, syntaxkind.COMMIT_KW, syntaxkind.COPY_KW, syntaxkind.CREATE_KW,
	syntaxkind.DEALLOCATE_KW, syntaxkind.DECLARE_KW, syntaxkind.DELETE_KW, syntaxkind.DISCARD_KW,
	syntaxkind.DO_KW, syntaxkind.DROP_KW, syntaxkind.END_KW, syntaxkind.EXECUTE_KW,
	syntaxkind.EXPLAIN_KW, syntaxkind.FETCH_KW, syntaxkind.GRANT_KW, syntaxkind.IMPORT_KW,
	syntaxkind.INSERT_KW, syntaxkind.LISTEN_KW, syntaxkind.LOAD_KW, syntaxkind.LOCK_KW,
	syntaxkind.MERGE_KW, syntaxkind.MOVE_KW, syntaxkind.NOTIFY_KW, syntaxkind.PREPARE_KW,
	syntaxkind.REASSIGN_KW, syntaxkind.REFRESH_KW, syntaxkind.REINDEX_KW, syntaxkind.RELEASE_KW,
	syntaxkind.RESET_KW, syntaxkind.REVOKE_KW, syntaxkind.ROLLBACK_KW, syntaxkind.SAVEPOINT_KW,
	syntaxkind.SECURITY_KW, syntaxkind.SELECT_KW, syntaxkind.SET_KW, syntaxkind.SHOW_KW,
	syntaxkind.START_KW, syntaxkind.TABLE_KW, syntaxkind.TRUNCATE_KW, syntaxkind.UNLISTEN_KW,
	syntaxkind.UPDATE_KW, syntaxkind.VACUUM_KW, syntaxkind.VALUES_KW, syntaxkind.WITH_KW, syntaxkind.L_PAREN,
)

// stmt dispatches on (current, next) to one of the statement parsers. It
// returns false only when the current token cannot start any statement at
// all, leaving the caller (Parse's loop) to consume it with err_and_bump.
func (p *Parser) stmt(r Restrictions) bool {
	switch p.current() {
	case syntaxkind.SELECT_KW, syntaxkind.TABLE_KW, syntaxkind.VALUES_KW, syntaxkind.WITH_KW, syntaxkind.L_PAREN:
		p.selectStmt(r)
		return true
	case syntaxkind.INSERT_KW:
		p.insertStmt(r)
		return true
	case syntaxkind.UPDATE_KW:
		p.updateStmt(r)
		return true
	case syntaxkind.DELETE_KW:
		p.deleteStmt(r)
		return true
	case syntaxkind.MERGE_KW:
		p.mergeStmt(r)
		return true
	case syntaxkind.CREATE_KW:
		p.createStmt(r)
		return true
	case syntaxkind.ALTER_KW:
		p.alterStmt(r)
		return true
	case syntaxkind.DROP_KW:
		p.dropStmt(r)
		return true
	case syntaxkind.BEGIN_KW:
		if r.BeginEndAllowed {
			return false
		}
		p.transactionStmt(syntaxkind.BEGIN_STMT, 0)
		return true
	case syntaxkind.START_KW:
		p.transactionStmt(syntaxkind.BEGIN_STMT, 1)
		return true
	case syntaxkind.COMMIT_KW, syntaxkind.END_KW:
		if p.at(syntaxkind.END_KW) && r.BeginEndAllowed {
			return false
		}
		p.transactionStmt(syntaxkind.COMMIT_STMT, 0)
		return true
	case syntaxkind.ROLLBACK_KW:
		p.rollbackStmt()
		return true
	case syntaxkind.SAVEPOINT_KW:
		p.savepointStmt()
		return true
	case syntaxkind.RELEASE_KW:
		p.releaseSavepointStmt()
		return true
	case syntaxkind.TRUNCATE_KW:
		p.truncateStmt()
		return true
	case syntaxkind.EXPLAIN_KW:
		p.explainStmt(r)
		return true
	case syntaxkind.SET_KW:
		p.setStmt()
		return true
	case syntaxkind.SHOW_KW:
		p.showStmt()
		return true
	case syntaxkind.RESET_KW:
		p.resetStmt()
		return true
	case syntaxkind.CALL_KW:
		p.callStmt()
		return true
	case syntaxkind.DO_KW:
		p.doStmt()
		return true
	case syntaxkind.VACUUM_KW:
		p.vacuumStmt()
		return true
	case syntaxkind.ANALYZE_KW:
		p.analyzeStmt()
		return true
	case syntaxkind.COPY_KW:
		p.copyStmt()
		return true
	case syntaxkind.GRANT_KW:
		p.grantStmt()
		return true
	case syntaxkind.REVOKE_KW:
		p.revokeStmt()
		return true
	case syntaxkind.COMMENT_KW:
		p.commentStmt()
		return true
	case syntaxkind.LOCK_KW:
		p.lockStmt()
		return true
	case syntaxkind.LISTEN_KW:
		p.listenStmt()
		return true
	case syntaxkind.NOTIFY_KW:
		p.notifyStmt()
		return true
	case syntaxkind.UNLISTEN_KW:
		p.unlistenStmt()
		return true
	case syntaxkind.PREPARE_KW:
		p.prepareStmt()
		return true
	case syntaxkind.EXECUTE_KW:
		p.executeStmt()
		return true
	case syntaxkind.DEALLOCATE_KW:
		p.deallocateStmt()
		return true
	case syntaxkind.DECLARE_KW:
		p.declareStmt()
		return true
	case syntaxkind.FETCH_KW:
		p.fetchStmt()
		return true
	case syntaxkind.MOVE_KW:
		p.moveStmt()
		return true
	case syntaxkind.CLOSE_KW:
		p.closeStmt()
		return true
	case syntaxkind.DISCARD_KW:
		p.discardStmt()
		return true
	case syntaxkind.CHECKPOINT_KW:
		p.checkpointStmt()
		return true
	case syntaxkind.CLUSTER_KW:
		p.clusterStmt()
		return true
	case syntaxkind.REINDEX_KW:
		p.reindexStmt()
		return true
	case syntaxkind.LOAD_KW:
		p.loadStmt()
		return true
	case syntaxkind.REASSIGN_KW:
		p.reassignStmt()
		return true
	case syntaxkind.REFRESH_KW:
		p.refreshStmt()
		return true
	case syntaxkind.SECURITY_KW:
		p.securityLabelStmt()
		return true
	case syntaxkind.ABORT_KW:
		p.abortStmt()
		return true
	case syntaxkind.IMPORT_KW:
		p.importForeignSchemaStmt()
		return true
	}
	return false
}

// commaListUntil runs item repeatedly, separated by COMMA, until stop
// matches current or EOF - the shape shared by target lists, column
// lists, argument lists and the like.
func (p *Parser) commaListUntil(stop syntaxkind.TokenSet, item func()) {
	for !p.atTS(stop) && !p.atEOF() {
		item()
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
}

// nameList parses a COLUMN_LIST: a parenthesized, comma-separated list of
// plain names, used for column lists in INSERT/CREATE TABLE/USING(...).
func (p *Parser) nameList() CompletedMarker {
	m := p.start()
	p.expect(syntaxkind.L_PAREN)
	p.commaListUntil(rParenSet, func() {
		p.pathSegment()
	})
	p.expect(syntaxkind.R_PAREN)
	return m.Complete(p, syntaxkind.COLUMN_LIST)
}

var rParenSet = syntaxkind.NewTokenSet(syntaxkind.R_PAREN)

// qualifiedName parses a (possibly schema-qualified) table/object name and
// wraps it as NAME_REF, the kind used wherever the grammar references an
// existing object by name rather than defining a new expression PATH.
func (p *Parser) qualifiedName() CompletedMarker {
	m := p.start()
	p.path()
	return m.Complete(p, syntaxkind.NAME_REF)
}

// aliasOpt parses an optional [AS] alias, wrapping it as ALIAS when
// present. Returns ok=false when no alias followed.
func (p *Parser) aliasOpt() (CompletedMarker, bool) {
	hasAs := p.eat(syntaxkind.AS_KW)
	if !hasAs && !p.at(syntaxkind.IDENT) && !syntaxkind.UnreservedKeywords.Contains(p.current()) {
		return CompletedMarker{}, false
	}
	if !hasAs {
		// Without AS, only a genuine identifier-shaped token counts - the
		// caller is responsible for not calling this where an unreserved
		// keyword belongs to the next clause instead of being an alias.
		if !p.at(syntaxkind.IDENT) {
			return CompletedMarker{}, false
		}
	}
	m := p.start()
	p.bumpAny()
	return m.Complete(p, syntaxkind.ALIAS), true
}

func (p *Parser) ifExists() bool {
	if !p.at(syntaxkind.IF_KW) {
		return false
	}
	m := p.start()
	p.bumpAny()
	p.expect(syntaxkind.EXISTS_KW)
	m.Complete(p, syntaxkind.IF_EXISTS)
	return true
}

func (p *Parser) ifNotExists() bool {
	if !p.at(syntaxkind.IF_KW) {
		return false
	}
	m := p.start()
	p.bumpAny()
	p.expect(syntaxkind.NOT_KW)
	p.expect(syntaxkind.EXISTS_KW)
	m.Complete(p, syntaxkind.IF_NOT_EXISTS)
	return true
}

// genericStmt is the fallback used for the long tail of rare DDL forms
// (CREATE CAST, ALTER OPERATOR FAMILY, and the like - see SPEC_FULL.md §4
// for the full named list) that this grammar does not give dedicated
// clause-level structure to: it still opens the correct node kind (so
// downstream tools can at least recognize "this is a CREATE_CAST_STMT")
// and still produces a lossless tree, but its insides are a flat token run
// down to the terminating semicolon rather than a parsed clause tree. Each
// of these is a named, flagged deviation, not an oversight - see the
// grounding ledger.
func (p *Parser) genericStmt(kind syntaxkind.Kind) CompletedMarker {
	m := p.start()
	p.bumpAny() // the leading keyword
	depth := 0
	for !p.atEOF() {
		switch {
		case p.at(syntaxkind.L_PAREN):
			depth++
		case p.at(syntaxkind.R_PAREN):
			depth--
		case p.at(syntaxkind.SEMICOLON) && depth <= 0:
			return m.Complete(p, kind)
		}
		p.bumpAny()
	}
	return m.Complete(p, kind)
}
