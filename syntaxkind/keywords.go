package syntaxkind

import "strings"

// Unreserved, Reserved, ColName, and TypeFuncName are PostgreSQL's four
// disjoint kwlist.h categories. They determine which syntactic positions a
// keyword may occupy as a bare identifier (column name, table name,
// function name, type name). The membership below mirrors PostgreSQL 17's
// kwlist.h categorization (see DESIGN.md: kwlist.h itself wasn't in the
// retrieval pack, so membership was reconstructed from the upstream list
// rather than derived mechanically as squawk's codegen.rs does).
var (
	UnreservedKeywords = NewTokenSet(
		ABORT_KW,
		ABSENT_KW,
		ABSOLUTE_KW,
		ACCESS_KW,
		ACTION_KW,
		ADD_KW,
		ADMIN_KW,
		AFTER_KW,
		AGGREGATE_KW,
		ALSO_KW,
		ALTER_KW,
		ALWAYS_KW,
		ASENSITIVE_KW,
		ASSERTION_KW,
		ASSIGNMENT_KW,
		ATOMIC_KW,
		ATTACH_KW,
		ATTRIBUTE_KW,
		AT_KW,
		BACKWARD_KW,
		BEFORE_KW,
		BEGIN_KW,
		BREADTH_KW,
		BY_KW,
		CACHE_KW,
		CALLED_KW,
		CALL_KW,
		CASCADED_KW,
		CASCADE_KW,
		CATALOG_KW,
		CHAIN_KW,
		CHARACTERISTICS_KW,
		CHECKPOINT_KW,
		CLASS_KW,
		CLOSE_KW,
		CLUSTER_KW,
		COLUMNS_KW,
		COMMENTS_KW,
		COMMENT_KW,
		COMMITTED_KW,
		COMMIT_KW,
		COMPRESSION_KW,
		CONDITIONAL_KW,
		CONFIGURATION_KW,
		CONFLICT_KW,
		CONNECTION_KW,
		CONSTRAINTS_KW,
		CONTENT_KW,
		CONTINUE_KW,
		CONVERSION_KW,
		COPY_KW,
		COST_KW,
		CSV_KW,
		CUBE_KW,
		CURRENT_KW,
		CURSOR_KW,
		CYCLE_KW,
		DATABASE_KW,
		DATA_KW,
		DAY_KW,
		DEALLOCATE_KW,
		DECLARE_KW,
		DEFAULTS_KW,
		DEFERRED_KW,
		DEFINER_KW,
		DELETE_KW,
		DELIMITERS_KW,
		DELIMITER_KW,
		DEPENDS_KW,
		DEPTH_KW,
		DETACH_KW,
		DICTIONARY_KW,
		DISABLE_KW,
		DISCARD_KW,
		DOCUMENT_KW,
		DOMAIN_KW,
		DOUBLE_KW,
		DROP_KW,
		EACH_KW,
		EMPTY_KW,
		ENABLE_KW,
		ENCODING_KW,
		ENCRYPTED_KW,
		ENUM_KW,
		ERROR_KW,
		ESCAPE_KW,
		EVENT_KW,
		EXCLUDE_KW,
		EXCLUDING_KW,
		EXCLUSIVE_KW,
		EXECUTE_KW,
		EXPLAIN_KW,
		EXPRESSION_KW,
		EXTENSION_KW,
		EXTERNAL_KW,
		FAMILY_KW,
		FILTER_KW,
		FINALIZE_KW,
		FIRST_KW,
		FOLLOWING_KW,
		FORCE_KW,
		FORMAT_KW,
		FORWARD_KW,
		FUNCTIONS_KW,
		FUNCTION_KW,
		GENERATED_KW,
		GLOBAL_KW,
		GRANTED_KW,
		GROUPS_KW,
		HANDLER_KW,
		HEADER_KW,
		HOLD_KW,
		HOUR_KW,
		IDENTITY_KW,
		IF_KW,
		IMMEDIATE_KW,
		IMMUTABLE_KW,
		IMPLICIT_KW,
		IMPORT_KW,
		INCLUDE_KW,
		INCLUDING_KW,
		INCREMENT_KW,
		INDENT_KW,
		INDEXES_KW,
		INDEX_KW,
		INHERITS_KW,
		INHERIT_KW,
		INLINE_KW,
		INPUT_KW,
		INSENSITIVE_KW,
		INSERT_KW,
		INSTEAD_KW,
		INVOKER_KW,
		ISOLATION_KW,
		KEEP_KW,
		KEYS_KW,
		KEY_KW,
		LABEL_KW,
		LANGUAGE_KW,
		LARGE_KW,
		LAST_KW,
		LEAKPROOF_KW,
		LEVEL_KW,
		LISTEN_KW,
		LOAD_KW,
		LOCAL_KW,
		LOCATION_KW,
		LOCKED_KW,
		LOCK_KW,
		LOGGED_KW,
		MAPPING_KW,
		MATCHED_KW,
		MATCH_KW,
		MATERIALIZED_KW,
		MAXVALUE_KW,
		MERGE_KW,
		METHOD_KW,
		MINUTE_KW,
		MINVALUE_KW,
		MODE_KW,
		MONTH_KW,
		MOVE_KW,
		NAMES_KW,
		NAME_KW,
		NESTED_KW,
		NEW_KW,
		NEXT_KW,
		NFC_KW,
		NFD_KW,
		NFKC_KW,
		NFKD_KW,
		NORMALIZED_KW,
		NOTHING_KW,
		NOTIFY_KW,
		NOWAIT_KW,
		NO_KW,
		NULLS_KW,
		OBJECT_KW,
		OFF_KW,
		OF_KW,
		OIDS_KW,
		OLD_KW,
		OMIT_KW,
		OPERATOR_KW,
		OPTIONS_KW,
		OPTION_KW,
		ORDINALITY_KW,
		OTHERS_KW,
		OVERRIDING_KW,
		OVER_KW,
		OWNED_KW,
		OWNER_KW,
		PARALLEL_KW,
		PARAMETER_KW,
		PARSER_KW,
		PARTIAL_KW,
		PARTITION_KW,
		PASSING_KW,
		PASSWORD_KW,
		PATH_KW,
		PERIOD_KW,
		PLANS_KW,
		PLAN_KW,
		POLICY_KW,
		PRECEDING_KW,
		PREPARED_KW,
		PREPARE_KW,
		PRESERVE_KW,
		PRIOR_KW,
		PRIVILEGES_KW,
		PROCEDURAL_KW,
		PROCEDURES_KW,
		PROCEDURE_KW,
		PROGRAM_KW,
		PUBLICATION_KW,
		QUOTES_KW,
		QUOTE_KW,
		RANGE_KW,
		READ_KW,
		REASSIGN_KW,
		RECURSIVE_KW,
		REFERENCING_KW,
		REFRESH_KW,
		REF_KW,
		REINDEX_KW,
		RELATIVE_KW,
		RELEASE_KW,
		RENAME_KW,
		REPEATABLE_KW,
		REPLACE_KW,
		REPLICA_KW,
		RESET_KW,
		RESTART_KW,
		RESTRICT_KW,
		RETURNS_KW,
		RETURN_KW,
		REVOKE_KW,
		ROLE_KW,
		ROLLBACK_KW,
		ROLLUP_KW,
		ROUTINES_KW,
		ROUTINE_KW,
		ROWS_KW,
		RULE_KW,
		SAVEPOINT_KW,
		SCALAR_KW,
		SCHEMAS_KW,
		SCHEMA_KW,
		SCROLL_KW,
		SEARCH_KW,
		SECOND_KW,
		SECURITY_KW,
		SEQUENCES_KW,
		SEQUENCE_KW,
		SERIALIZABLE_KW,
		SERVER_KW,
		SESSION_KW,
		SETS_KW,
		SET_KW,
		SHARE_KW,
		SHOW_KW,
		SIMPLE_KW,
		SKIP_KW,
		SNAPSHOT_KW,
		SOURCE_KW,
		SQL_KW,
		STABLE_KW,
		STANDALONE_KW,
		START_KW,
		STATEMENT_KW,
		STATISTICS_KW,
		STDIN_KW,
		STDOUT_KW,
		STORAGE_KW,
		STORED_KW,
		STRICT_KW,
		STRING_KW,
		STRIP_KW,
		SUBSCRIPTION_KW,
		SUPPORT_KW,
		SYSID_KW,
		SYSTEM_KW,
		TABLESPACE_KW,
		TABLES_KW,
		TARGET_KW,
		TEMPLATE_KW,
		TEMPORARY_KW,
		TEMP_KW,
		TEXT_KW,
		TIES_KW,
		TRANSACTION_KW,
		TRANSFORM_KW,
		TRIGGER_KW,
		TRUNCATE_KW,
		TRUSTED_KW,
		TYPES_KW,
		TYPE_KW,
		UESCAPE_KW,
		UNBOUNDED_KW,
		UNCOMMITTED_KW,
		UNCONDITIONAL_KW,
		UNENCRYPTED_KW,
		UNKNOWN_KW,
		UNLISTEN_KW,
		UNLOGGED_KW,
		UNTIL_KW,
		UPDATE_KW,
		VACUUM_KW,
		VALIDATE_KW,
		VALIDATOR_KW,
		VALID_KW,
		VALUE_KW,
		VARYING_KW,
		VERSION_KW,
		VIEWS_KW,
		VIEW_KW,
		VOLATILE_KW,
		WHITESPACE_KW,
		WITHIN_KW,
		WITHOUT_KW,
		WORK_KW,
		WRAPPER_KW,
		WRITE_KW,
		XML_KW,
		YEAR_KW,
		YES_KW,
		ZONE_KW,
	)

	ReservedKeywords = NewTokenSet(
		ALL_KW,
		ANALYSE_KW,
		ANALYZE_KW,
		AND_KW,
		ANY_KW,
		ARRAY_KW,
		ASC_KW,
		ASYMMETRIC_KW,
		AS_KW,
		BOTH_KW,
		CASE_KW,
		CAST_KW,
		CHECK_KW,
		COLLATE_KW,
		COLUMN_KW,
		CONSTRAINT_KW,
		CREATE_KW,
		CURRENT_CATALOG_KW,
		CURRENT_DATE_KW,
		CURRENT_ROLE_KW,
		CURRENT_TIMESTAMP_KW,
		CURRENT_TIME_KW,
		CURRENT_USER_KW,
		DEFAULT_KW,
		DEFERRABLE_KW,
		DESC_KW,
		DISTINCT_KW,
		DO_KW,
		ELSE_KW,
		END_KW,
		EXCEPT_KW,
		FALSE_KW,
		FETCH_KW,
		FOREIGN_KW,
		FOR_KW,
		FROM_KW,
		GRANT_KW,
		GROUP_KW,
		HAVING_KW,
		INITIALLY_KW,
		INTERSECT_KW,
		INTO_KW,
		IN_KW,
		LATERAL_KW,
		LEADING_KW,
		LIMIT_KW,
		LOCALTIMESTAMP_KW,
		LOCALTIME_KW,
		NOT_KW,
		NULL_KW,
		OFFSET_KW,
		ONLY_KW,
		ON_KW,
		ORDER_KW,
		OR_KW,
		PLACING_KW,
		PRIMARY_KW,
		REFERENCES_KW,
		RETURNING_KW,
		SELECT_KW,
		SESSION_USER_KW,
		SOME_KW,
		SYMMETRIC_KW,
		SYSTEM_USER_KW,
		TABLE_KW,
		THEN_KW,
		TO_KW,
		TRAILING_KW,
		TRUE_KW,
		UNION_KW,
		UNIQUE_KW,
		USER_KW,
		USING_KW,
		VARIADIC_KW,
		WHEN_KW,
		WHERE_KW,
		WINDOW_KW,
		WITH_KW,
	)

	ColNameKeywords = NewTokenSet(
		BETWEEN_KW,
		BIGINT_KW,
		BIT_KW,
		BOOLEAN_KW,
		CHARACTER_KW,
		CHAR_KW,
		COALESCE_KW,
		DECIMAL_KW,
		DEC_KW,
		EXISTS_KW,
		EXTRACT_KW,
		FLOAT_KW,
		GREATEST_KW,
		GROUPING_KW,
		INOUT_KW,
		INTEGER_KW,
		INTERVAL_KW,
		INT_KW,
		JSON_ARRAYAGG_KW,
		JSON_ARRAY_KW,
		JSON_EXISTS_KW,
		JSON_KW,
		JSON_OBJECTAGG_KW,
		JSON_OBJECT_KW,
		JSON_QUERY_KW,
		JSON_SCALAR_KW,
		JSON_SERIALIZE_KW,
		JSON_TABLE_KW,
		JSON_VALUE_KW,
		LEAST_KW,
		MERGE_ACTION_KW,
		NATIONAL_KW,
		NCHAR_KW,
		NONE_KW,
		NORMALIZE_KW,
		NULLIF_KW,
		NUMERIC_KW,
		OUT_KW,
		OVERLAY_KW,
		POSITION_KW,
		PRECISION_KW,
		REAL_KW,
		ROW_KW,
		SETOF_KW,
		SMALLINT_KW,
		SUBSTRING_KW,
		TIMESTAMP_KW,
		TIME_KW,
		TREAT_KW,
		TRIM_KW,
		VALUES_KW,
		VARCHAR_KW,
		XMLATTRIBUTES_KW,
		XMLCONCAT_KW,
		XMLELEMENT_KW,
		XMLEXISTS_KW,
		XMLFOREST_KW,
		XMLNAMESPACES_KW,
		XMLPARSE_KW,
		XMLPI_KW,
		XMLROOT_KW,
		XMLSERIALIZE_KW,
		XMLTABLE_KW,
	)

	TypeFuncNameKeywords = NewTokenSet(
		AUTHORIZATION_KW,
		BINARY_KW,
		COLLATION_KW,
		CONCURRENTLY_KW,
		CROSS_KW,
		CURRENT_SCHEMA_KW,
		FREEZE_KW,
		FULL_KW,
		ILIKE_KW,
		INNER_KW,
		ISNULL_KW,
		IS_KW,
		JOIN_KW,
		LEFT_KW,
		LIKE_KW,
		NATURAL_KW,
		NOTNULL_KW,
		OUTER_KW,
		OVERLAPS_KW,
		RIGHT_KW,
		SIMILAR_KW,
		TABLESAMPLE_KW,
		VERBOSE_KW,
	)

	// ColumnOrTableKeywords is Unreserved ∪ ColName: keywords usable as a
	// column or table name.
	ColumnOrTableKeywords = UnreservedKeywords.Union(ColNameKeywords)

	// TypeKeywords is Unreserved ∪ ColName ∪ TypeFuncName: keywords usable
	// as a type name.
	TypeKeywords = UnreservedKeywords.Union(ColNameKeywords).Union(TypeFuncNameKeywords)

	// AllKeywords is every keyword kind, regardless of category.
	AllKeywords = UnreservedKeywords.Union(ReservedKeywords).Union(ColNameKeywords).Union(TypeFuncNameKeywords)

	// BareLabelKeywords is the set of keywords PostgreSQL allows as a
	// trailing column label without an AS (e.g. "SELECT 1 not" labels the
	// column "not"). Mirrors the kwlist.h bare-label flag.
	BareLabelKeywords = NewTokenSet(
		ABORT_KW,
		ABSENT_KW,
		ABSOLUTE_KW,
		ACCESS_KW,
		ACTION_KW,
		ADD_KW,
		ADMIN_KW,
		AFTER_KW,
		AGGREGATE_KW,
		ALL_KW,
		ALSO_KW,
		ALTER_KW,
		ALWAYS_KW,
		ANALYSE_KW,
		ANALYZE_KW,
		AND_KW,
		ANY_KW,
		ASC_KW,
		ASENSITIVE_KW,
		ASSERTION_KW,
		ASSIGNMENT_KW,
		ASYMMETRIC_KW,
		AT_KW,
		ATOMIC_KW,
		ATTACH_KW,
		ATTRIBUTE_KW,
		AUTHORIZATION_KW,
		BACKWARD_KW,
		BEFORE_KW,
		BEGIN_KW,
		BETWEEN_KW,
		BIGINT_KW,
		BINARY_KW,
		BIT_KW,
		BOOLEAN_KW,
		BOTH_KW,
		BREADTH_KW,
		BY_KW,
		CACHE_KW,
		CALL_KW,
		CALLED_KW,
		CASCADE_KW,
		CASCADED_KW,
		CASE_KW,
		CAST_KW,
		CATALOG_KW,
		CHAIN_KW,
		CHARACTERISTICS_KW,
		CHECK_KW,
		CHECKPOINT_KW,
		CLASS_KW,
		CLOSE_KW,
		CLUSTER_KW,
		COALESCE_KW,
		COLLATE_KW,
		COLLATION_KW,
		COLUMN_KW,
		COLUMNS_KW,
		COMMENT_KW,
		COMMENTS_KW,
		COMMIT_KW,
		COMMITTED_KW,
		COMPRESSION_KW,
		CONCURRENTLY_KW,
		CONDITIONAL_KW,
		CONFIGURATION_KW,
		CONFLICT_KW,
		CONNECTION_KW,
		CONSTRAINT_KW,
		CONSTRAINTS_KW,
		CONTENT_KW,
		CONTINUE_KW,
		CONVERSION_KW,
		COPY_KW,
		COST_KW,
		CROSS_KW,
		CSV_KW,
		CUBE_KW,
		CURRENT_KW,
		CURRENT_CATALOG_KW,
		CURRENT_DATE_KW,
		CURRENT_ROLE_KW,
		CURRENT_SCHEMA_KW,
		CURRENT_TIME_KW,
		CURRENT_TIMESTAMP_KW,
		CURRENT_USER_KW,
		CURSOR_KW,
		CYCLE_KW,
		DATA_KW,
		DATABASE_KW,
		DEALLOCATE_KW,
		DEC_KW,
		DECIMAL_KW,
		DECLARE_KW,
		DEFAULT_KW,
		DEFAULTS_KW,
		DEFERRABLE_KW,
		DEFERRED_KW,
		DEFINER_KW,
		DELETE_KW,
		DELIMITER_KW,
		DELIMITERS_KW,
		DEPENDS_KW,
		DEPTH_KW,
		DESC_KW,
		DETACH_KW,
		DICTIONARY_KW,
		DISABLE_KW,
		DISCARD_KW,
		DISTINCT_KW,
		DO_KW,
		DOCUMENT_KW,
		DOMAIN_KW,
		DOUBLE_KW,
		DROP_KW,
		EACH_KW,
		ELSE_KW,
		EMPTY_KW,
		ENABLE_KW,
		ENCODING_KW,
		ENCRYPTED_KW,
		END_KW,
		ENUM_KW,
		ERROR_KW,
		ESCAPE_KW,
		EVENT_KW,
		EXCLUDE_KW,
		EXCLUDING_KW,
		EXCLUSIVE_KW,
		EXECUTE_KW,
		EXISTS_KW,
		EXPLAIN_KW,
		EXPRESSION_KW,
		EXTENSION_KW,
		EXTERNAL_KW,
		EXTRACT_KW,
		FALSE_KW,
		FAMILY_KW,
		FINALIZE_KW,
		FIRST_KW,
		FLOAT_KW,
		FOLLOWING_KW,
		FORCE_KW,
		FOREIGN_KW,
		FORMAT_KW,
		FORWARD_KW,
		FREEZE_KW,
		FULL_KW,
		FUNCTION_KW,
		FUNCTIONS_KW,
		GENERATED_KW,
		GLOBAL_KW,
		GRANTED_KW,
		GREATEST_KW,
		GROUPING_KW,
		GROUPS_KW,
		HANDLER_KW,
		HEADER_KW,
		HOLD_KW,
		IDENTITY_KW,
		IF_KW,
		ILIKE_KW,
		IMMEDIATE_KW,
		IMMUTABLE_KW,
		IMPLICIT_KW,
		IMPORT_KW,
		IN_KW,
		INCLUDE_KW,
		INCLUDING_KW,
		INCREMENT_KW,
		INDENT_KW,
		INDEX_KW,
		INDEXES_KW,
		INHERIT_KW,
		INHERITS_KW,
		INITIALLY_KW,
		INLINE_KW,
		INNER_KW,
		INOUT_KW,
		INPUT_KW,
		INSENSITIVE_KW,
		INSERT_KW,
		INSTEAD_KW,
		INT_KW,
		INTEGER_KW,
		INTERVAL_KW,
		INVOKER_KW,
		IS_KW,
		ISOLATION_KW,
		JOIN_KW,
		JSON_KW,
		JSON_ARRAY_KW,
		JSON_ARRAYAGG_KW,
		JSON_EXISTS_KW,
		JSON_OBJECT_KW,
		JSON_OBJECTAGG_KW,
		JSON_QUERY_KW,
		JSON_SCALAR_KW,
		JSON_SERIALIZE_KW,
		JSON_TABLE_KW,
		JSON_VALUE_KW,
		KEEP_KW,
		KEY_KW,
		KEYS_KW,
		LABEL_KW,
		LANGUAGE_KW,
		LARGE_KW,
		LAST_KW,
		LATERAL_KW,
		LEADING_KW,
		LEAKPROOF_KW,
		LEAST_KW,
		LEFT_KW,
		LEVEL_KW,
		LIKE_KW,
		LISTEN_KW,
		LOAD_KW,
		LOCAL_KW,
		LOCALTIME_KW,
		LOCALTIMESTAMP_KW,
		LOCATION_KW,
		LOCK_KW,
		LOCKED_KW,
		LOGGED_KW,
		MAPPING_KW,
		MATCH_KW,
		MATCHED_KW,
		MATERIALIZED_KW,
		MAXVALUE_KW,
		MERGE_KW,
		MERGE_ACTION_KW,
		METHOD_KW,
		MINVALUE_KW,
		MODE_KW,
		MOVE_KW,
		NAME_KW,
		NAMES_KW,
		NATIONAL_KW,
		NATURAL_KW,
		NCHAR_KW,
		NESTED_KW,
		NEW_KW,
		NEXT_KW,
		NFC_KW,
		NFD_KW,
		NFKC_KW,
		NFKD_KW,
		NO_KW,
		NONE_KW,
		NORMALIZE_KW,
		NORMALIZED_KW,
		NOT_KW,
		NOTHING_KW,
		NOTIFY_KW,
		NOWAIT_KW,
		NULL_KW,
		NULLIF_KW,
		NULLS_KW,
		NUMERIC_KW,
		OBJECT_KW,
		OF_KW,
		OFF_KW,
		OIDS_KW,
		OLD_KW,
		OMIT_KW,
		ONLY_KW,
		OPERATOR_KW,
		OPTION_KW,
		OPTIONS_KW,
		OR_KW,
		ORDINALITY_KW,
		OTHERS_KW,
		OUT_KW,
		OUTER_KW,
		OVERLAY_KW,
		OVERRIDING_KW,
		OWNED_KW,
		OWNER_KW,
		PARALLEL_KW,
		PARAMETER_KW,
		PARSER_KW,
		PARTIAL_KW,
		PARTITION_KW,
		PASSING_KW,
		PASSWORD_KW,
		PATH_KW,
		PERIOD_KW,
		PLACING_KW,
		PLAN_KW,
		PLANS_KW,
		POLICY_KW,
		POSITION_KW,
		PRECEDING_KW,
		PREPARE_KW,
		PREPARED_KW,
		PRESERVE_KW,
		PRIMARY_KW,
		PRIOR_KW,
		PRIVILEGES_KW,
		PROCEDURAL_KW,
		PROCEDURE_KW,
		PROCEDURES_KW,
		PROGRAM_KW,
		PUBLICATION_KW,
		QUOTE_KW,
		QUOTES_KW,
		RANGE_KW,
		READ_KW,
		REAL_KW,
		REASSIGN_KW,
		RECURSIVE_KW,
		REF_KW,
		REFERENCES_KW,
		REFERENCING_KW,
		REFRESH_KW,
		REINDEX_KW,
		RELATIVE_KW,
		RELEASE_KW,
		RENAME_KW,
		REPEATABLE_KW,
		REPLACE_KW,
		REPLICA_KW,
		RESET_KW,
		RESTART_KW,
		RESTRICT_KW,
		RETURN_KW,
		RETURNS_KW,
		REVOKE_KW,
		RIGHT_KW,
		ROLE_KW,
		ROLLBACK_KW,
		ROLLUP_KW,
		ROUTINE_KW,
		ROUTINES_KW,
		ROW_KW,
		ROWS_KW,
		RULE_KW,
		SAVEPOINT_KW,
		SCALAR_KW,
		SCHEMA_KW,
		SCHEMAS_KW,
		SCROLL_KW,
		SEARCH_KW,
		SECURITY_KW,
		SELECT_KW,
		SEQUENCE_KW,
		SEQUENCES_KW,
		SERIALIZABLE_KW,
		SERVER_KW,
		SESSION_KW,
		SESSION_USER_KW,
		SET_KW,
		SETOF_KW,
		SETS_KW,
		SHARE_KW,
		SHOW_KW,
		SIMILAR_KW,
		SIMPLE_KW,
		SKIP_KW,
		SMALLINT_KW,
		SNAPSHOT_KW,
		SOME_KW,
		SOURCE_KW,
		SQL_KW,
		STABLE_KW,
		STANDALONE_KW,
		START_KW,
		STATEMENT_KW,
		STATISTICS_KW,
		STDIN_KW,
		STDOUT_KW,
		STORAGE_KW,
		STORED_KW,
		STRICT_KW,
		STRING_KW,
		STRIP_KW,
		SUBSCRIPTION_KW,
		SUBSTRING_KW,
		SUPPORT_KW,
		SYMMETRIC_KW,
		SYSID_KW,
		SYSTEM_KW,
		SYSTEM_USER_KW,
		TABLE_KW,
		TABLES_KW,
		TABLESAMPLE_KW,
		TABLESPACE_KW,
		TARGET_KW,
		TEMP_KW,
		TEMPLATE_KW,
		TEMPORARY_KW,
		TEXT_KW,
		THEN_KW,
		TIES_KW,
		TIME_KW,
		TIMESTAMP_KW,
		TRAILING_KW,
		TRANSACTION_KW,
		TRANSFORM_KW,
		TREAT_KW,
		TRIGGER_KW,
		TRIM_KW,
		TRUE_KW,
		TRUNCATE_KW,
		TRUSTED_KW,
		TYPE_KW,
		TYPES_KW,
		UESCAPE_KW,
		UNBOUNDED_KW,
		UNCOMMITTED_KW,
		UNCONDITIONAL_KW,
		UNENCRYPTED_KW,
		UNIQUE_KW,
		UNKNOWN_KW,
		UNLISTEN_KW,
		UNLOGGED_KW,
		UNTIL_KW,
		UPDATE_KW,
		USER_KW,
		USING_KW,
		VACUUM_KW,
		VALID_KW,
		VALIDATE_KW,
		VALIDATOR_KW,
		VALUE_KW,
		VALUES_KW,
		VARCHAR_KW,
		VARIADIC_KW,
		VERBOSE_KW,
		VERSION_KW,
		VIEW_KW,
		VIEWS_KW,
		VOLATILE_KW,
		WHEN_KW,
		WHITESPACE_KW,
		WORK_KW,
		WRAPPER_KW,
		WRITE_KW,
		XML_KW,
		XMLATTRIBUTES_KW,
		XMLCONCAT_KW,
		XMLELEMENT_KW,
		XMLEXISTS_KW,
		XMLFOREST_KW,
		XMLNAMESPACES_KW,
		XMLPARSE_KW,
		XMLPI_KW,
		XMLROOT_KW,
		XMLSERIALIZE_KW,
		XMLTABLE_KW,
		YES_KW,
		ZONE_KW,
	)
)

// keywordByText maps the lowercase ASCII keyword spelling to its Kind,
// built once at package init from the same kwlist-derived table as the
// category sets above.
var keywordByText = map[string]Kind{
	"abort": ABORT_KW,
	"absent": ABSENT_KW,
	"absolute": ABSOLUTE_KW,
	"access": ACCESS_KW,
	"action": ACTION_KW,
	"add": ADD_KW,
	"admin": ADMIN_KW,
	"after": AFTER_KW,
	"aggregate": AGGREGATE_KW,
	"all": ALL_KW,
	"also": ALSO_KW,
	"alter": ALTER_KW,
	"always": ALWAYS_KW,
	"analyse": ANALYSE_KW,
	"analyze": ANALYZE_KW,
	"and": AND_KW,
	"any": ANY_KW,
	"array": ARRAY_KW,
	"asc": ASC_KW,
	"asensitive": ASENSITIVE_KW,
	"assertion": ASSERTION_KW,
	"assignment": ASSIGNMENT_KW,
	"asymmetric": ASYMMETRIC_KW,
	"as": AS_KW,
	"atomic": ATOMIC_KW,
	"attach": ATTACH_KW,
	"attribute": ATTRIBUTE_KW,
	"at": AT_KW,
	"authorization": AUTHORIZATION_KW,
	"backward": BACKWARD_KW,
	"before": BEFORE_KW,
	"begin": BEGIN_KW,
	"between": BETWEEN_KW,
	"bigint": BIGINT_KW,
	"binary": BINARY_KW,
	"bit": BIT_KW,
	"boolean": BOOLEAN_KW,
	"both": BOTH_KW,
	"breadth": BREADTH_KW,
	"by": BY_KW,
	"cache": CACHE_KW,
	"called": CALLED_KW,
	"call": CALL_KW,
	"cascaded": CASCADED_KW,
	"cascade": CASCADE_KW,
	"case": CASE_KW,
	"cast": CAST_KW,
	"catalog": CATALOG_KW,
	"chain": CHAIN_KW,
	"characteristics": CHARACTERISTICS_KW,
	"character": CHARACTER_KW,
	"char": CHAR_KW,
	"checkpoint": CHECKPOINT_KW,
	"check": CHECK_KW,
	"class": CLASS_KW,
	"close": CLOSE_KW,
	"cluster": CLUSTER_KW,
	"coalesce": COALESCE_KW,
	"collate": COLLATE_KW,
	"collation": COLLATION_KW,
	"columns": COLUMNS_KW,
	"column": COLUMN_KW,
	"comments": COMMENTS_KW,
	"comment": COMMENT_KW,
	"committed": COMMITTED_KW,
	"commit": COMMIT_KW,
	"compression": COMPRESSION_KW,
	"concurrently": CONCURRENTLY_KW,
	"conditional": CONDITIONAL_KW,
	"configuration": CONFIGURATION_KW,
	"conflict": CONFLICT_KW,
	"connection": CONNECTION_KW,
	"constraints": CONSTRAINTS_KW,
	"constraint": CONSTRAINT_KW,
	"content": CONTENT_KW,
	"continue": CONTINUE_KW,
	"conversion": CONVERSION_KW,
	"copy": COPY_KW,
	"cost": COST_KW,
	"create": CREATE_KW,
	"cross": CROSS_KW,
	"csv": CSV_KW,
	"cube": CUBE_KW,
	"current_catalog": CURRENT_CATALOG_KW,
	"current_date": CURRENT_DATE_KW,
	"current": CURRENT_KW,
	"current_role": CURRENT_ROLE_KW,
	"current_schema": CURRENT_SCHEMA_KW,
	"current_timestamp": CURRENT_TIMESTAMP_KW,
	"current_time": CURRENT_TIME_KW,
	"current_user": CURRENT_USER_KW,
	"cursor": CURSOR_KW,
	"cycle": CYCLE_KW,
	"database": DATABASE_KW,
	"data": DATA_KW,
	"day": DAY_KW,
	"deallocate": DEALLOCATE_KW,
	"decimal": DECIMAL_KW,
	"declare": DECLARE_KW,
	"dec": DEC_KW,
	"defaults": DEFAULTS_KW,
	"default": DEFAULT_KW,
	"deferrable": DEFERRABLE_KW,
	"deferred": DEFERRED_KW,
	"definer": DEFINER_KW,
	"delete": DELETE_KW,
	"delimiters": DELIMITERS_KW,
	"delimiter": DELIMITER_KW,
	"depends": DEPENDS_KW,
	"depth": DEPTH_KW,
	"desc": DESC_KW,
	"detach": DETACH_KW,
	"dictionary": DICTIONARY_KW,
	"disable": DISABLE_KW,
	"discard": DISCARD_KW,
	"distinct": DISTINCT_KW,
	"document": DOCUMENT_KW,
	"domain": DOMAIN_KW,
	"double": DOUBLE_KW,
	"do": DO_KW,
	"drop": DROP_KW,
	"each": EACH_KW,
	"else": ELSE_KW,
	"empty": EMPTY_KW,
	"enable": ENABLE_KW,
	"encoding": ENCODING_KW,
	"encrypted": ENCRYPTED_KW,
	"end": END_KW,
	"enum": ENUM_KW,
	"error": ERROR_KW,
	"escape": ESCAPE_KW,
	"event": EVENT_KW,
	"except": EXCEPT_KW,
	"exclude": EXCLUDE_KW,
	"excluding": EXCLUDING_KW,
	"exclusive": EXCLUSIVE_KW,
	"execute": EXECUTE_KW,
	"exists": EXISTS_KW,
	"explain": EXPLAIN_KW,
	"expression": EXPRESSION_KW,
	"extension": EXTENSION_KW,
	"external": EXTERNAL_KW,
	"extract": EXTRACT_KW,
	"false": FALSE_KW,
	"family": FAMILY_KW,
	"fetch": FETCH_KW,
	"filter": FILTER_KW,
	"finalize": FINALIZE_KW,
	"first": FIRST_KW,
	"float": FLOAT_KW,
	"following": FOLLOWING_KW,
	"force": FORCE_KW,
	"foreign": FOREIGN_KW,
	"format": FORMAT_KW,
	"forward": FORWARD_KW,
	"for": FOR_KW,
	"freeze": FREEZE_KW,
	"from": FROM_KW,
	"full": FULL_KW,
	"functions": FUNCTIONS_KW,
	"function": FUNCTION_KW,
	"generated": GENERATED_KW,
	"global": GLOBAL_KW,
	"granted": GRANTED_KW,
	"grant": GRANT_KW,
	"greatest": GREATEST_KW,
	"grouping": GROUPING_KW,
	"groups": GROUPS_KW,
	"group": GROUP_KW,
	"handler": HANDLER_KW,
	"having": HAVING_KW,
	"header": HEADER_KW,
	"hold": HOLD_KW,
	"hour": HOUR_KW,
	"identity": IDENTITY_KW,
	"if": IF_KW,
	"ilike": ILIKE_KW,
	"immediate": IMMEDIATE_KW,
	"immutable": IMMUTABLE_KW,
	"implicit": IMPLICIT_KW,
	"import": IMPORT_KW,
	"include": INCLUDE_KW,
	"including": INCLUDING_KW,
	"increment": INCREMENT_KW,
	"indent": INDENT_KW,
	"indexes": INDEXES_KW,
	"index": INDEX_KW,
	"inherits": INHERITS_KW,
	"inherit": INHERIT_KW,
	"initially": INITIALLY_KW,
	"inline": INLINE_KW,
	"inner": INNER_KW,
	"inout": INOUT_KW,
	"input": INPUT_KW,
	"insensitive": INSENSITIVE_KW,
	"insert": INSERT_KW,
	"instead": INSTEAD_KW,
	"integer": INTEGER_KW,
	"intersect": INTERSECT_KW,
	"interval": INTERVAL_KW,
	"into": INTO_KW,
	"int": INT_KW,
	"invoker": INVOKER_KW,
	"in": IN_KW,
	"isnull": ISNULL_KW,
	"isolation": ISOLATION_KW,
	"is": IS_KW,
	"join": JOIN_KW,
	"json_arrayagg": JSON_ARRAYAGG_KW,
	"json_array": JSON_ARRAY_KW,
	"json_exists": JSON_EXISTS_KW,
	"json": JSON_KW,
	"json_objectagg": JSON_OBJECTAGG_KW,
	"json_object": JSON_OBJECT_KW,
	"json_query": JSON_QUERY_KW,
	"json_scalar": JSON_SCALAR_KW,
	"json_serialize": JSON_SERIALIZE_KW,
	"json_table": JSON_TABLE_KW,
	"json_value": JSON_VALUE_KW,
	"keep": KEEP_KW,
	"keys": KEYS_KW,
	"key": KEY_KW,
	"label": LABEL_KW,
	"language": LANGUAGE_KW,
	"large": LARGE_KW,
	"last": LAST_KW,
	"lateral": LATERAL_KW,
	"leading": LEADING_KW,
	"leakproof": LEAKPROOF_KW,
	"least": LEAST_KW,
	"left": LEFT_KW,
	"level": LEVEL_KW,
	"like": LIKE_KW,
	"limit": LIMIT_KW,
	"listen": LISTEN_KW,
	"load": LOAD_KW,
	"localtimestamp": LOCALTIMESTAMP_KW,
	"localtime": LOCALTIME_KW,
	"local": LOCAL_KW,
	"location": LOCATION_KW,
	"locked": LOCKED_KW,
	"lock": LOCK_KW,
	"logged": LOGGED_KW,
	"mapping": MAPPING_KW,
	"matched": MATCHED_KW,
	"match": MATCH_KW,
	"materialized": MATERIALIZED_KW,
	"maxvalue": MAXVALUE_KW,
	"merge_action": MERGE_ACTION_KW,
	"merge": MERGE_KW,
	"method": METHOD_KW,
	"minute": MINUTE_KW,
	"minvalue": MINVALUE_KW,
	"mode": MODE_KW,
	"month": MONTH_KW,
	"move": MOVE_KW,
	"names": NAMES_KW,
	"name": NAME_KW,
	"national": NATIONAL_KW,
	"natural": NATURAL_KW,
	"nchar": NCHAR_KW,
	"nested": NESTED_KW,
	"new": NEW_KW,
	"next": NEXT_KW,
	"nfc": NFC_KW,
	"nfd": NFD_KW,
	"nfkc": NFKC_KW,
	"nfkd": NFKD_KW,
	"none": NONE_KW,
	"normalized": NORMALIZED_KW,
	"normalize": NORMALIZE_KW,
	"nothing": NOTHING_KW,
	"notify": NOTIFY_KW,
	"notnull": NOTNULL_KW,
	"not": NOT_KW,
	"nowait": NOWAIT_KW,
	"no": NO_KW,
	"nullif": NULLIF_KW,
	"nulls": NULLS_KW,
	"null": NULL_KW,
	"numeric": NUMERIC_KW,
	"object": OBJECT_KW,
	"offset": OFFSET_KW,
	"off": OFF_KW,
	"of": OF_KW,
	"oids": OIDS_KW,
	"old": OLD_KW,
	"omit": OMIT_KW,
	"only": ONLY_KW,
	"on": ON_KW,
	"operator": OPERATOR_KW,
	"options": OPTIONS_KW,
	"option": OPTION_KW,
	"order": ORDER_KW,
	"ordinality": ORDINALITY_KW,
	"or": OR_KW,
	"others": OTHERS_KW,
	"outer": OUTER_KW,
	"out": OUT_KW,
	"overlaps": OVERLAPS_KW,
	"overlay": OVERLAY_KW,
	"overriding": OVERRIDING_KW,
	"over": OVER_KW,
	"owned": OWNED_KW,
	"owner": OWNER_KW,
	"parallel": PARALLEL_KW,
	"parameter": PARAMETER_KW,
	"parser": PARSER_KW,
	"partial": PARTIAL_KW,
	"partition": PARTITION_KW,
	"passing": PASSING_KW,
	"password": PASSWORD_KW,
	"path": PATH_KW,
	"period": PERIOD_KW,
	"placing": PLACING_KW,
	"plans": PLANS_KW,
	"plan": PLAN_KW,
	"policy": POLICY_KW,
	"position": POSITION_KW,
	"preceding": PRECEDING_KW,
	"precision": PRECISION_KW,
	"prepared": PREPARED_KW,
	"prepare": PREPARE_KW,
	"preserve": PRESERVE_KW,
	"primary": PRIMARY_KW,
	"prior": PRIOR_KW,
	"privileges": PRIVILEGES_KW,
	"procedural": PROCEDURAL_KW,
	"procedures": PROCEDURES_KW,
	"procedure": PROCEDURE_KW,
	"program": PROGRAM_KW,
	"publication": PUBLICATION_KW,
	"quotes": QUOTES_KW,
	"quote": QUOTE_KW,
	"range": RANGE_KW,
	"read": READ_KW,
	"real": REAL_KW,
	"reassign": REASSIGN_KW,
	"recursive": RECURSIVE_KW,
	"references": REFERENCES_KW,
	"referencing": REFERENCING_KW,
	"refresh": REFRESH_KW,
	"ref": REF_KW,
	"reindex": REINDEX_KW,
	"relative": RELATIVE_KW,
	"release": RELEASE_KW,
	"rename": RENAME_KW,
	"repeatable": REPEATABLE_KW,
	"replace": REPLACE_KW,
	"replica": REPLICA_KW,
	"reset": RESET_KW,
	"restart": RESTART_KW,
	"restrict": RESTRICT_KW,
	"returning": RETURNING_KW,
	"returns": RETURNS_KW,
	"return": RETURN_KW,
	"revoke": REVOKE_KW,
	"right": RIGHT_KW,
	"role": ROLE_KW,
	"rollback": ROLLBACK_KW,
	"rollup": ROLLUP_KW,
	"routines": ROUTINES_KW,
	"routine": ROUTINE_KW,
	"rows": ROWS_KW,
	"row": ROW_KW,
	"rule": RULE_KW,
	"savepoint": SAVEPOINT_KW,
	"scalar": SCALAR_KW,
	"schemas": SCHEMAS_KW,
	"schema": SCHEMA_KW,
	"scroll": SCROLL_KW,
	"search": SEARCH_KW,
	"second": SECOND_KW,
	"security": SECURITY_KW,
	"select": SELECT_KW,
	"sequences": SEQUENCES_KW,
	"sequence": SEQUENCE_KW,
	"serializable": SERIALIZABLE_KW,
	"server": SERVER_KW,
	"session": SESSION_KW,
	"session_user": SESSION_USER_KW,
	"setof": SETOF_KW,
	"sets": SETS_KW,
	"set": SET_KW,
	"share": SHARE_KW,
	"show": SHOW_KW,
	"similar": SIMILAR_KW,
	"simple": SIMPLE_KW,
	"skip": SKIP_KW,
	"smallint": SMALLINT_KW,
	"snapshot": SNAPSHOT_KW,
	"some": SOME_KW,
	"source": SOURCE_KW,
	"sql": SQL_KW,
	"stable": STABLE_KW,
	"standalone": STANDALONE_KW,
	"start": START_KW,
	"statement": STATEMENT_KW,
	"statistics": STATISTICS_KW,
	"stdin": STDIN_KW,
	"stdout": STDOUT_KW,
	"storage": STORAGE_KW,
	"stored": STORED_KW,
	"strict": STRICT_KW,
	"string": STRING_KW,
	"strip": STRIP_KW,
	"subscription": SUBSCRIPTION_KW,
	"substring": SUBSTRING_KW,
	"support": SUPPORT_KW,
	"symmetric": SYMMETRIC_KW,
	"sysid": SYSID_KW,
	"system": SYSTEM_KW,
	"system_user": SYSTEM_USER_KW,
	"tablesample": TABLESAMPLE_KW,
	"tablespace": TABLESPACE_KW,
	"tables": TABLES_KW,
	"table": TABLE_KW,
	"target": TARGET_KW,
	"template": TEMPLATE_KW,
	"temporary": TEMPORARY_KW,
	"temp": TEMP_KW,
	"text": TEXT_KW,
	"then": THEN_KW,
	"ties": TIES_KW,
	"timestamp": TIMESTAMP_KW,
	"time": TIME_KW,
	"to": TO_KW,
	"trailing": TRAILING_KW,
	"transaction": TRANSACTION_KW,
	"transform": TRANSFORM_KW,
	"treat": TREAT_KW,
	"trigger": TRIGGER_KW,
	"trim": TRIM_KW,
	"true": TRUE_KW,
	"truncate": TRUNCATE_KW,
	"trusted": TRUSTED_KW,
	"types": TYPES_KW,
	"type": TYPE_KW,
	"uescape": UESCAPE_KW,
	"unbounded": UNBOUNDED_KW,
	"uncommitted": UNCOMMITTED_KW,
	"unconditional": UNCONDITIONAL_KW,
	"unencrypted": UNENCRYPTED_KW,
	"union": UNION_KW,
	"unique": UNIQUE_KW,
	"unknown": UNKNOWN_KW,
	"unlisten": UNLISTEN_KW,
	"unlogged": UNLOGGED_KW,
	"until": UNTIL_KW,
	"update": UPDATE_KW,
	"user": USER_KW,
	"using": USING_KW,
	"vacuum": VACUUM_KW,
	"validate": VALIDATE_KW,
	"validator": VALIDATOR_KW,
	"valid": VALID_KW,
	"values": VALUES_KW,
	"value": VALUE_KW,
	"varchar": VARCHAR_KW,
	"variadic": VARIADIC_KW,
	"varying": VARYING_KW,
	"verbose": VERBOSE_KW,
	"version": VERSION_KW,
	"views": VIEWS_KW,
	"view": VIEW_KW,
	"volatile": VOLATILE_KW,
	"when": WHEN_KW,
	"where": WHERE_KW,
	"whitespace": WHITESPACE_KW,
	"window": WINDOW_KW,
	"within": WITHIN_KW,
	"without": WITHOUT_KW,
	"with": WITH_KW,
	"work": WORK_KW,
	"wrapper": WRAPPER_KW,
	"write": WRITE_KW,
	"xmlattributes": XMLATTRIBUTES_KW,
	"xmlconcat": XMLCONCAT_KW,
	"xmlelement": XMLELEMENT_KW,
	"xmlexists": XMLEXISTS_KW,
	"xmlforest": XMLFOREST_KW,
	"xmlnamespaces": XMLNAMESPACES_KW,
	"xmlparse": XMLPARSE_KW,
	"xmlpi": XMLPI_KW,
	"xmlroot": XMLROOT_KW,
	"xmlserialize": XMLSERIALIZE_KW,
	"xmltable": XMLTABLE_KW,
	"xml": XML_KW,
	"year": YEAR_KW,
	"yes": YES_KW,
	"zone": ZONE_KW,
}

// FromKeyword performs an ASCII-case-insensitive lookup of ident against
// the full keyword table, returning the matching keyword Kind. ok is false
// when ident is not a PostgreSQL keyword at all (it's an ordinary
// identifier).
func FromKeyword(ident string) (Kind, bool) {
	k, ok := keywordByText[strings.ToLower(ident)]
	return k, ok
}
