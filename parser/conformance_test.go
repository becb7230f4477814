package parser

import (
	"testing"

	pgquery "github.com/pganalyze/pg_query_go/v2"

	"github.com/sqldef/pgparse/lexer"
)

// These tests use pg_query_go (a cgo binding over the real PostgreSQL
// grammar) as a differential oracle: for SQL pg_query accepts, this
// parser's diagnostics should be empty. For SQL pg_query rejects, the
// negative-control test only confirms that the oracle rejects it; how this
// parser handles that SQL is not asserted. Only the err/non-err signal from
// pg_query.Parse is relied on here - its returned AST's field shapes belong
// to a newer pg_query_go major version than this module depends on, so
// nothing below inspects pg_query's parse tree itself.
func TestConformanceValidStatementsAgreeWithOracle(t *testing.T) {
	stmts := []string{
		"SELECT 1;",
		"SELECT a, b FROM t WHERE a = 1;",
		"SELECT a FROM t ORDER BY a DESC LIMIT 10 OFFSET 5;",
		"SELECT a FROM t1 JOIN t2 ON t1.id = t2.id;",
		"SELECT COUNT(*) FROM t GROUP BY a HAVING COUNT(*) > 1;",
		"SELECT 1 UNION ALL SELECT 2;",
		"SELECT * FROM t WHERE a IN (1, 2, 3);",
		"SELECT * FROM t WHERE a BETWEEN 1 AND 10;",
		"SELECT CASE WHEN a > 0 THEN 'pos' ELSE 'neg' END FROM t;",
		"INSERT INTO t (a, b) VALUES (1, 2);",
		"INSERT INTO t (a) VALUES (1) ON CONFLICT (a) DO NOTHING;",
		"UPDATE t SET a = 1 WHERE b = 2;",
		"DELETE FROM t WHERE a = 1;",
		"CREATE TABLE t (a INT NOT NULL, b TEXT DEFAULT 'x');",
		"ALTER TABLE t ADD COLUMN c INT;",
		"ALTER TABLE t DROP COLUMN c;",
		"CREATE INDEX idx_a ON t (a);",
		"WITH cte AS (SELECT 1 AS a) SELECT a FROM cte;",
		"SELECT a::text FROM t;",
		"SELECT * FROM t WHERE a IS NOT NULL;",
	}
	for _, sql := range stmts {
		t.Run(sql, func(t *testing.T) {
			if _, err := pgquery.Parse(sql); err != nil {
				t.Skipf("oracle itself rejected %q: %v", sql, err)
			}
			tree := Parse(lexer.Tokenize(sql))
			if len(tree.Diagnostics) != 0 {
				t.Errorf("pg_query accepts %q but this parser reported diagnostics: %+v", sql, tree.Diagnostics)
			}
		})
	}
}

// TestConformanceUtilityStatementsAgreeWithOracle covers the top-level
// utility statements grammar_utility.go gives clause-level grammar to -
// previously routed through genericStmt's flat token run.
func TestConformanceUtilityStatementsAgreeWithOracle(t *testing.T) {
	stmts := []string{
		"SHOW search_path;",
		"SHOW ALL;",
		"RESET search_path;",
		"RESET ALL;",
		"CALL my_proc(1, 2);",
		"DO $$ BEGIN RAISE NOTICE 'hi'; END $$;",
		"VACUUM t;",
		"VACUUM (ANALYZE, VERBOSE) t;",
		"ANALYZE t;",
		"ANALYZE t (a, b);",
		"COPY t (a, b) TO STDOUT;",
		"COPY t FROM STDIN WITH (FORMAT csv);",
		"GRANT SELECT ON t TO u;",
		"GRANT ALL PRIVILEGES ON TABLE t TO PUBLIC;",
		"REVOKE SELECT ON t FROM u;",
		"COMMENT ON TABLE t IS 'a table';",
		"COMMENT ON COLUMN t.a IS 'a column';",
		"LOCK TABLE t IN ACCESS EXCLUSIVE MODE;",
		"LISTEN my_channel;",
		"NOTIFY my_channel;",
		"NOTIFY my_channel, 'payload';",
		"UNLISTEN my_channel;",
		"UNLISTEN *;",
		"PREPARE my_plan (int) AS SELECT * FROM t WHERE a = $1;",
		"EXECUTE my_plan(1);",
		"DEALLOCATE my_plan;",
		"DEALLOCATE ALL;",
		"DECLARE my_cursor CURSOR FOR SELECT * FROM t;",
		"FETCH NEXT FROM my_cursor;",
		"MOVE NEXT FROM my_cursor;",
		"CLOSE my_cursor;",
		"DISCARD ALL;",
		"DISCARD PLANS;",
		"CHECKPOINT;",
		"CLUSTER t USING idx_a;",
		"REINDEX TABLE t;",
		"REASSIGN OWNED BY u1 TO u2;",
		"REFRESH MATERIALIZED VIEW mv;",
		"REFRESH MATERIALIZED VIEW CONCURRENTLY mv;",
		"SECURITY LABEL ON TABLE t IS 'label';",
		"ABORT;",
		"IMPORT FOREIGN SCHEMA s FROM SERVER srv INTO t;",
	}
	for _, sql := range stmts {
		t.Run(sql, func(t *testing.T) {
			if _, err := pgquery.Parse(sql); err != nil {
				t.Skipf("oracle itself rejected %q: %v", sql, err)
			}
			tree := Parse(lexer.Tokenize(sql))
			if len(tree.Diagnostics) != 0 {
				t.Errorf("pg_query accepts %q but this parser reported diagnostics: %+v", sql, tree.Diagnostics)
			}
		})
	}
}

// TestConformanceDDLStatementsAgreeWithOracle covers the CREATE/ALTER/DROP
// subjects grammar_ddl2.go gives clause-level grammar to, plus a handful of
// the genericStmt fallback forms this grammar intentionally does not
// decompose - a node must still be produced losslessly and without
// diagnostics for input the oracle accepts.
func TestConformanceDDLStatementsAgreeWithOracle(t *testing.T) {
	stmts := []string{
		"CREATE SCHEMA s;",
		"CREATE SCHEMA IF NOT EXISTS s AUTHORIZATION u;",
		"CREATE SEQUENCE s;",
		"CREATE SEQUENCE s INCREMENT BY 2 START WITH 10 CACHE 5;",
		"ALTER SEQUENCE s RESTART WITH 1;",
		"CREATE DOMAIN d AS INT NOT NULL CHECK (VALUE > 0);",
		"ALTER DOMAIN d SET NOT NULL;",
		"CREATE EXTENSION IF NOT EXISTS pg_trgm;",
		"ALTER EXTENSION pg_trgm UPDATE;",
		"CREATE DATABASE mydb WITH OWNER u ENCODING 'UTF8';",
		"ALTER DATABASE mydb RENAME TO mydb2;",
		"CREATE ROLE r WITH LOGIN PASSWORD 'secret';",
		"ALTER ROLE r WITH SUPERUSER;",
		"CREATE USER u WITH PASSWORD 'secret';",
		"ALTER USER u RENAME TO u2;",
		"CREATE GROUP g;",
		"DROP GROUP g;",
		"CREATE TRIGGER trg BEFORE INSERT ON t FOR EACH ROW EXECUTE FUNCTION trg_fn();",
		"ALTER TRIGGER trg ON t RENAME TO trg2;",
		"CREATE FOREIGN TABLE ft (a INT) SERVER srv;",
		"ALTER FOREIGN TABLE ft ADD COLUMN b INT;",
		"ALTER SYSTEM SET work_mem = '64MB';",
		"ALTER SYSTEM RESET work_mem;",
		"DROP SCHEMA s CASCADE;",
		"DROP TYPE t1;",
		"CREATE TABLE t AS SELECT 1 AS a;",
		"SELECT a INTO t2 FROM t1;",
		"SET ROLE my_role;",
		"SET CONSTRAINTS ALL DEFERRED;",
		"DROP OWNED BY u1;",
		"CREATE CAST (int AS text) WITH INOUT;",
		"CREATE PUBLICATION pub FOR ALL TABLES;",
		"CREATE TEXT SEARCH CONFIGURATION cfg (COPY = simple);",
		"ALTER OPERATOR FAMILY fam USING btree ADD OPERATOR 1 < (int, int);",
		"CREATE LANGUAGE plpgsql;",
		"ALTER TABLESPACE ts RENAME TO ts2;",
	}
	for _, sql := range stmts {
		t.Run(sql, func(t *testing.T) {
			if _, err := pgquery.Parse(sql); err != nil {
				t.Skipf("oracle itself rejected %q: %v", sql, err)
			}
			tree := Parse(lexer.Tokenize(sql))
			if len(tree.Diagnostics) != 0 {
				t.Errorf("pg_query accepts %q but this parser reported diagnostics: %+v", sql, tree.Diagnostics)
			}
		})
	}
}

func TestConformanceInvalidStatementsRejectedByOracle(t *testing.T) {
	// Confirms the oracle itself treats these as invalid PostgreSQL, so
	// they're a meaningful negative-control set. This does not assert
	// anything about how the local error-tolerant parser handles them,
	// since producing a best-effort tree plus diagnostics for broken input
	// is the intended, deliberately different, behavior.
	stmts := []string{
		"SELECT FROM t;",
		"SELEC 1;",
		"CREATE TABLE (a INT);",
		"UPDATE t SET WHERE a = 1;",
	}
	for _, sql := range stmts {
		t.Run(sql, func(t *testing.T) {
			if _, err := pgquery.Parse(sql); err == nil {
				t.Skipf("oracle unexpectedly accepted %q", sql)
			}
		})
	}
}
