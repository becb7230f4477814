package syntaxkind

// kindNames backs Kind.String; indexed in the same declaration order as the
// const block in kind.go.
var kindNames = [...]string{
	"TOMBSTONE",
	"EOF",
	"SEMICOLON",
	"COMMA",
	"L_PAREN",
	"R_PAREN",
	"L_BRACK",
	"R_BRACK",
	"L_ANGLE",
	"R_ANGLE",
	"AT",
	"POUND",
	"TILDE",
	"QUESTION",
	"AMP",
	"PIPE",
	"PLUS",
	"STAR",
	"SLASH",
	"CARET",
	"PERCENT",
	"DOT",
	"COLON",
	"COLON2",
	"COLONEQ",
	"EQ",
	"FAT_ARROW",
	"BACKTICK",
	"BANG",
	"NEQ",
	"NEQB",
	"MINUS",
	"LTEQ",
	"GTEQ",
	"CUSTOM_OP",
	"ABORT_KW",
	"ABSENT_KW",
	"ABSOLUTE_KW",
	"ACCESS_KW",
	"ACTION_KW",
	"ADD_KW",
	"ADMIN_KW",
	"AFTER_KW",
	"AGGREGATE_KW",
	"ALL_KW",
	"ALSO_KW",
	"ALTER_KW",
	"ALWAYS_KW",
	"ANALYSE_KW",
	"ANALYZE_KW",
	"AND_KW",
	"ANY_KW",
	"ARRAY_KW",
	"ASC_KW",
	"ASENSITIVE_KW",
	"ASSERTION_KW",
	"ASSIGNMENT_KW",
	"ASYMMETRIC_KW",
	"AS_KW",
	"ATOMIC_KW",
	"ATTACH_KW",
	"ATTRIBUTE_KW",
	"AT_KW",
	"AUTHORIZATION_KW",
	"BACKWARD_KW",
	"BEFORE_KW",
	"BEGIN_KW",
	"BETWEEN_KW",
	"BIGINT_KW",
	"BINARY_KW",
	"BIT_KW",
	"BOOLEAN_KW",
	"BOTH_KW",
	"BREADTH_KW",
	"BY_KW",
	"CACHE_KW",
	"CALLED_KW",
	"CALL_KW",
	"CASCADED_KW",
	"CASCADE_KW",
	"CASE_KW",
	"CAST_KW",
	"CATALOG_KW",
	"CHAIN_KW",
	"CHARACTERISTICS_KW",
	"CHARACTER_KW",
	"CHAR_KW",
	"CHECKPOINT_KW",
	"CHECK_KW",
	"CLASS_KW",
	"CLOSE_KW",
	"CLUSTER_KW",
	"COALESCE_KW",
	"COLLATE_KW",
	"COLLATION_KW",
	"COLUMNS_KW",
	"COLUMN_KW",
	"COMMENTS_KW",
	"COMMENT_KW",
	"COMMITTED_KW",
	"COMMIT_KW",
	"COMPRESSION_KW",
	"CONCURRENTLY_KW",
	"CONDITIONAL_KW",
	"CONFIGURATION_KW",
	"CONFLICT_KW",
	"CONNECTION_KW",
	"CONSTRAINTS_KW",
	"CONSTRAINT_KW",
	"CONTENT_KW",
	"CONTINUE_KW",
	"CONVERSION_KW",
	"COPY_KW",
	"COST_KW",
	"CREATE_KW",
	"CROSS_KW",
	"CSV_KW",
	"CUBE_KW",
	"CURRENT_CATALOG_KW",
	"CURRENT_DATE_KW",
	"CURRENT_KW",
	"CURRENT_ROLE_KW",
	"CURRENT_SCHEMA_KW",
	"CURRENT_TIMESTAMP_KW",
	"CURRENT_TIME_KW",
	"CURRENT_USER_KW",
	"CURSOR_KW",
	"CYCLE_KW",
	"DATABASE_KW",
	"DATA_KW",
	"DAY_KW",
	"DEALLOCATE_KW",
	"DECIMAL_KW",
	"DECLARE_KW",
	"DEC_KW",
	"DEFAULTS_KW",
	"DEFAULT_KW",
	"DEFERRABLE_KW",
	"DEFERRED_KW",
	"DEFINER_KW",
	"DELETE_KW",
	"DELIMITERS_KW",
	"DELIMITER_KW",
	"DEPENDS_KW",
	"DEPTH_KW",
	"DESC_KW",
	"DETACH_KW",
	"DICTIONARY_KW",
	"DISABLE_KW",
	"DISCARD_KW",
	"DISTINCT_KW",
	"DOCUMENT_KW",
	"DOMAIN_KW",
	"DOUBLE_KW",
	"DO_KW",
	"DROP_KW",
	"EACH_KW",
	"ELSE_KW",
	"EMPTY_KW",
	"ENABLE_KW",
	"ENCODING_KW",
	"ENCRYPTED_KW",
	"END_KW",
	"ENUM_KW",
	"ERROR_KW",
	"ESCAPE_KW",
	"EVENT_KW",
	"EXCEPT_KW",
	"EXCLUDE_KW",
	"EXCLUDING_KW",
	"EXCLUSIVE_KW",
	"EXECUTE_KW",
	"EXISTS_KW",
	"EXPLAIN_KW",
	"EXPRESSION_KW",
	"EXTENSION_KW",
	"EXTERNAL_KW",
	"EXTRACT_KW",
	"FALSE_KW",
	"FAMILY_KW",
	"FETCH_KW",
	"FILTER_KW",
	"FINALIZE_KW",
	"FIRST_KW",
	"FLOAT_KW",
	"FOLLOWING_KW",
	"FORCE_KW",
	"FOREIGN_KW",
	"FORMAT_KW",
	"FORWARD_KW",
	"FOR_KW",
	"FREEZE_KW",
	"FROM_KW",
	"FULL_KW",
	"FUNCTIONS_KW",
	"FUNCTION_KW",
	"GENERATED_KW",
	"GLOBAL_KW",
	"GRANTED_KW",
	"GRANT_KW",
	"GREATEST_KW",
	"GROUPING_KW",
	"GROUPS_KW",
	"GROUP_KW",
	"HANDLER_KW",
	"HAVING_KW",
	"HEADER_KW",
	"HOLD_KW",
	"HOUR_KW",
	"IDENTITY_KW",
	"IF_KW",
	"ILIKE_KW",
	"IMMEDIATE_KW",
	"IMMUTABLE_KW",
	"IMPLICIT_KW",
	"IMPORT_KW",
	"INCLUDE_KW",
	"INCLUDING_KW",
	"INCREMENT_KW",
	"INDENT_KW",
	"INDEXES_KW",
	"INDEX_KW",
	"INHERITS_KW",
	"INHERIT_KW",
	"INITIALLY_KW",
	"INLINE_KW",
	"INNER_KW",
	"INOUT_KW",
	"INPUT_KW",
	"INSENSITIVE_KW",
	"INSERT_KW",
	"INSTEAD_KW",
	"INTEGER_KW",
	"INTERSECT_KW",
	"INTERVAL_KW",
	"INTO_KW",
	"INT_KW",
	"INVOKER_KW",
	"IN_KW",
	"ISNULL_KW",
	"ISOLATION_KW",
	"IS_KW",
	"JOIN_KW",
	"JSON_ARRAYAGG_KW",
	"JSON_ARRAY_KW",
	"JSON_EXISTS_KW",
	"JSON_KW",
	"JSON_OBJECTAGG_KW",
	"JSON_OBJECT_KW",
	"JSON_QUERY_KW",
	"JSON_SCALAR_KW",
	"JSON_SERIALIZE_KW",
	"JSON_TABLE_KW",
	"JSON_VALUE_KW",
	"KEEP_KW",
	"KEYS_KW",
	"KEY_KW",
	"LABEL_KW",
	"LANGUAGE_KW",
	"LARGE_KW",
	"LAST_KW",
	"LATERAL_KW",
	"LEADING_KW",
	"LEAKPROOF_KW",
	"LEAST_KW",
	"LEFT_KW",
	"LEVEL_KW",
	"LIKE_KW",
	"LIMIT_KW",
	"LISTEN_KW",
	"LOAD_KW",
	"LOCALTIMESTAMP_KW",
	"LOCALTIME_KW",
	"LOCAL_KW",
	"LOCATION_KW",
	"LOCKED_KW",
	"LOCK_KW",
	"LOGGED_KW",
	"MAPPING_KW",
	"MATCHED_KW",
	"MATCH_KW",
	"MATERIALIZED_KW",
	"MAXVALUE_KW",
	"MERGE_ACTION_KW",
	"MERGE_KW",
	"METHOD_KW",
	"MINUTE_KW",
	"MINVALUE_KW",
	"MODE_KW",
	"MONTH_KW",
	"MOVE_KW",
	"NAMES_KW",
	"NAME_KW",
	"NATIONAL_KW",
	"NATURAL_KW",
	"NCHAR_KW",
	"NESTED_KW",
	"NEW_KW",
	"NEXT_KW",
	"NFC_KW",
	"NFD_KW",
	"NFKC_KW",
	"NFKD_KW",
	"NONE_KW",
	"NORMALIZED_KW",
	"NORMALIZE_KW",
	"NOTHING_KW",
	"NOTIFY_KW",
	"NOTNULL_KW",
	"NOT_KW",
	"NOWAIT_KW",
	"NO_KW",
	"NULLIF_KW",
	"NULLS_KW",
	"NULL_KW",
	"NUMERIC_KW",
	"OBJECT_KW",
	"OFFSET_KW",
	"OFF_KW",
	"OF_KW",
	"OIDS_KW",
	"OLD_KW",
	"OMIT_KW",
	"ONLY_KW",
	"ON_KW",
	"OPERATOR_KW",
	"OPTIONS_KW",
	"OPTION_KW",
	"ORDER_KW",
	"ORDINALITY_KW",
	"OR_KW",
	"OTHERS_KW",
	"OUTER_KW",
	"OUT_KW",
	"OVERLAPS_KW",
	"OVERLAY_KW",
	"OVERRIDING_KW",
	"OVER_KW",
	"OWNED_KW",
	"OWNER_KW",
	"PARALLEL_KW",
	"PARAMETER_KW",
	"PARSER_KW",
	"PARTIAL_KW",
	"PARTITION_KW",
	"PASSING_KW",
	"PASSWORD_KW",
	"PATH_KW",
	"PERIOD_KW",
	"PLACING_KW",
	"PLANS_KW",
	"PLAN_KW",
	"POLICY_KW",
	"POSITION_KW",
	"PRECEDING_KW",
	"PRECISION_KW",
	"PREPARED_KW",
	"PREPARE_KW",
	"PRESERVE_KW",
	"PRIMARY_KW",
	"PRIOR_KW",
	"PRIVILEGES_KW",
	"PROCEDURAL_KW",
	"PROCEDURES_KW",
	"PROCEDURE_KW",
	"PROGRAM_KW",
	"PUBLICATION_KW",
	"QUOTES_KW",
	"QUOTE_KW",
	"RANGE_KW",
	"READ_KW",
	"REAL_KW",
	"REASSIGN_KW",
	"RECURSIVE_KW",
	"REFERENCES_KW",
	"REFERENCING_KW",
	"REFRESH_KW",
	"REF_KW",
	"REINDEX_KW",
	"RELATIVE_KW",
	"RELEASE_KW",
	"RENAME_KW",
	"REPEATABLE_KW",
	"REPLACE_KW",
	"REPLICA_KW",
	"RESET_KW",
	"RESTART_KW",
	"RESTRICT_KW",
	"RETURNING_KW",
	"RETURNS_KW",
	"RETURN_KW",
	"REVOKE_KW",
	"RIGHT_KW",
	"ROLE_KW",
	"ROLLBACK_KW",
	"ROLLUP_KW",
	"ROUTINES_KW",
	"ROUTINE_KW",
	"ROWS_KW",
	"ROW_KW",
	"RULE_KW",
	"SAVEPOINT_KW",
	"SCALAR_KW",
	"SCHEMAS_KW",
	"SCHEMA_KW",
	"SCROLL_KW",
	"SEARCH_KW",
	"SECOND_KW",
	"SECURITY_KW",
	"SELECT_KW",
	"SEQUENCES_KW",
	"SEQUENCE_KW",
	"SERIALIZABLE_KW",
	"SERVER_KW",
	"SESSION_KW",
	"SESSION_USER_KW",
	"SETOF_KW",
	"SETS_KW",
	"SET_KW",
	"SHARE_KW",
	"SHOW_KW",
	"SIMILAR_KW",
	"SIMPLE_KW",
	"SKIP_KW",
	"SMALLINT_KW",
	"SNAPSHOT_KW",
	"SOME_KW",
	"SOURCE_KW",
	"SQL_KW",
	"STABLE_KW",
	"STANDALONE_KW",
	"START_KW",
	"STATEMENT_KW",
	"STATISTICS_KW",
	"STDIN_KW",
	"STDOUT_KW",
	"STORAGE_KW",
	"STORED_KW",
	"STRICT_KW",
	"STRING_KW",
	"STRIP_KW",
	"SUBSCRIPTION_KW",
	"SUBSTRING_KW",
	"SUPPORT_KW",
	"SYMMETRIC_KW",
	"SYSID_KW",
	"SYSTEM_KW",
	"SYSTEM_USER_KW",
	"TABLESAMPLE_KW",
	"TABLESPACE_KW",
	"TABLES_KW",
	"TABLE_KW",
	"TARGET_KW",
	"TEMPLATE_KW",
	"TEMPORARY_KW",
	"TEMP_KW",
	"TEXT_KW",
	"THEN_KW",
	"TIES_KW",
	"TIMESTAMP_KW",
	"TIME_KW",
	"TO_KW",
	"TRAILING_KW",
	"TRANSACTION_KW",
	"TRANSFORM_KW",
	"TREAT_KW",
	"TRIGGER_KW",
	"TRIM_KW",
	"TRUE_KW",
	"TRUNCATE_KW",
	"TRUSTED_KW",
	"TYPES_KW",
	"TYPE_KW",
	"UESCAPE_KW",
	"UNBOUNDED_KW",
	"UNCOMMITTED_KW",
	"UNCONDITIONAL_KW",
	"UNENCRYPTED_KW",
	"UNION_KW",
	"UNIQUE_KW",
	"UNKNOWN_KW",
	"UNLISTEN_KW",
	"UNLOGGED_KW",
	"UNTIL_KW",
	"UPDATE_KW",
	"USER_KW",
	"USING_KW",
	"VACUUM_KW",
	"VALIDATE_KW",
	"VALIDATOR_KW",
	"VALID_KW",
	"VALUES_KW",
	"VALUE_KW",
	"VARCHAR_KW",
	"VARIADIC_KW",
	"VARYING_KW",
	"VERBOSE_KW",
	"VERSION_KW",
	"VIEWS_KW",
	"VIEW_KW",
	"VOLATILE_KW",
	"WHEN_KW",
	"WHERE_KW",
	"WHITESPACE_KW",
	"WINDOW_KW",
	"WITHIN_KW",
	"WITHOUT_KW",
	"WITH_KW",
	"WORK_KW",
	"WRAPPER_KW",
	"WRITE_KW",
	"XMLATTRIBUTES_KW",
	"XMLCONCAT_KW",
	"XMLELEMENT_KW",
	"XMLEXISTS_KW",
	"XMLFOREST_KW",
	"XMLNAMESPACES_KW",
	"XMLPARSE_KW",
	"XMLPI_KW",
	"XMLROOT_KW",
	"XMLSERIALIZE_KW",
	"XMLTABLE_KW",
	"XML_KW",
	"YEAR_KW",
	"YES_KW",
	"ZONE_KW",
	"FLOAT_NUMBER",
	"INT_NUMBER",
	"STRING",
	"BYTE_STRING",
	"BIT_STRING",
	"DOLLAR_QUOTED_STRING",
	"ESC_STRING",
	"COMMENT",
	"IDENT",
	"PARAM",
	"ERROR",
	"WHITESPACE",
	"ARG_LIST",
	"ARG",
	"PARAM_LIST",
	"COLLATE",
	"TARGET_LIST",
	"TARGET",
	"ARRAY_EXPR",
	"IS_NULL",
	"IS_NOT",
	"IS_NOT_DISTINCT_FROM",
	"OPERATOR_CALL",
	"AT_TIME_ZONE",
	"SIMILAR_TO",
	"IS_DISTINCT_FROM",
	"NOT_LIKE",
	"NOT_IN",
	"BIN_EXPR",
	"POSTFIX_EXPR",
	"CALL_EXPR",
	"BETWEEN_EXPR",
	"CAST_EXPR",
	"CASE_EXPR",
	"ALIAS",
	"FIELD_EXPR",
	"INDEX_EXPR",
	"LITERAL",
	"NAME",
	"NAMED_ARG",
	"JSON_KEY_VALUE",
	"PAREN_EXPR",
	"PATH",
	"PATH_SEGMENT",
	"PATH_TYPE",
	"CHAR_TYPE",
	"BIT_TYPE",
	"PERCENT_TYPE",
	"DOUBLE_TYPE",
	"TIME_TYPE",
	"INTERVAL_TYPE",
	"ARRAY_TYPE",
	"PERCENT_TYPE_CLAUSE",
	"WITH_TIMEZONE",
	"WITHOUT_TIMEZONE",
	"PREFIX_EXPR",
	"COLUMN",
	"SOURCE_FILE",
	"RET_TYPE",
	"STMT",
	"ALTER_AGGREGATE_STMT",
	"ALTER_COLLATION_STMT",
	"ALTER_CONVERSION_STMT",
	"ALTER_DATABASE_STMT",
	"ALTER_DEFAULT_PRIVILEGES_STMT",
	"ALTER_DOMAIN_STMT",
	"ALTER_EVENT_TRIGGER_STMT",
	"ALTER_EXTENSION_STMT",
	"ALTER_FOREIGN_DATA_WRAPPER_STMT",
	"ALTER_FOREIGN_TABLE_STMT",
	"ALTER_FUNCTION_STMT",
	"ALTER_GROUP_STMT",
	"ALTER_INDEX_STMT",
	"ALTER_LANGUAGE_STMT",
	"ALTER_LARGE_OBJECT_STMT",
	"ALTER_MATERIALIZED_VIEW_STMT",
	"ALTER_OPERATOR_STMT",
	"ALTER_OPERATOR_CLASS_STMT",
	"ALTER_OPERATOR_FAMILY_STMT",
	"ALTER_POLICY_STMT",
	"ALTER_PROCEDURE_STMT",
	"ALTER_PUBLICATION_STMT",
	"ALTER_ROLE_STMT",
	"ALTER_ROUTINE_STMT",
	"ALTER_RULE_STMT",
	"ALTER_SCHEMA_STMT",
	"ALTER_SEQUENCE_STMT",
	"ALTER_SERVER_STMT",
	"ALTER_STATISTICS_STMT",
	"ALTER_SUBSCRIPTION_STMT",
	"ALTER_SYSTEM_STMT",
	"ALTER_TABLESPACE_STMT",
	"ALTER_TEXT_SEARCH_CONFIGURATION_STMT",
	"ALTER_TEXT_SEARCH_DICTIONARY_STMT",
	"ALTER_TEXT_SEARCH_PARSER_STMT",
	"ALTER_TEXT_SEARCH_TEMPLATE_STMT",
	"ALTER_TRIGGER_STMT",
	"ALTER_TYPE_STMT",
	"ALTER_USER_STMT",
	"ALTER_USER_MAPPING_STMT",
	"ALTER_VIEW_STMT",
	"ANALYZE_STMT",
	"CLUSTER_STMT",
	"COMMENT_STMT",
	"COMMIT_STMT",
	"CREATE_EXTENSION_STMT",
	"CREATE_ACCESS_METHOD_STMT",
	"CREATE_AGGREGATE_STMT",
	"CREATE_CAST_STMT",
	"CREATE_COLLATION_STMT",
	"CREATE_CONVERSION_STMT",
	"CREATE_DATABASE_STMT",
	"CREATE_DOMAIN_STMT",
	"CREATE_EVENT_TRIGGER_STMT",
	"CREATE_FOREIGN_DATA_WRAPPER_STMT",
	"CREATE_FOREIGN_TABLE_STMT",
	"CREATE_GROUP_STMT",
	"CREATE_LANGUAGE_STMT",
	"CREATE_MATERIALIZED_VIEW_STMT",
	"CREATE_OPERATOR_STMT",
	"CREATE_OPERATOR_CLASS_STMT",
	"CREATE_OPERATOR_FAMILY_STMT",
	"CREATE_POLICY_STMT",
	"CREATE_PROCEDURE_STMT",
	"CREATE_PUBLICATION_STMT",
	"CREATE_ROLE_STMT",
	"CREATE_RULE_STMT",
	"CREATE_SEQUENCE_STMT",
	"CREATE_SERVER_STMT",
	"CREATE_STATISTICS_STMT",
	"CREATE_SUBSCRIPTION_STMT",
	"CREATE_TABLE_AS_STMT",
	"CREATE_TABLESPACE_STMT",
	"CREATE_TEXT_SEARCH_CONFIGURATION_STMT",
	"CREATE_TEXT_SEARCH_DICTIONARY_STMT",
	"CREATE_TEXT_SEARCH_PARSER_STMT",
	"CREATE_TEXT_SEARCH_TEMPLATE_STMT",
	"CREATE_TRANSFORM_STMT",
	"CREATE_INDEX_STMT",
	"CREATE_TYPE_STMT",
	"CREATE_TRIGGER_STMT",
	"CREATE_FUNCTION_STMT",
	"PARAM_IN",
	"PARAM_OUT",
	"PARAM_INOUT",
	"PARAM_VARIADIC",
	"BEGIN_FUNC_OPTION",
	"RETURN_FUNC_OPTION",
	"AS_FUNC_OPTION",
	"SET_FUNC_OPTION",
	"SUPPORT_FUNC_OPTION",
	"ROWS_FUNC_OPTION",
	"COST_FUNC_OPTION",
	"PARALLEL_FUNC_OPTION",
	"SECURITY_FUNC_OPTION",
	"STRICT_FUNC_OPTION",
	"LEAKPROOF_FUNC_OPTION",
	"RESET_FUNC_OPTION",
	"VOLATILITY_FUNC_OPTION",
	"WINDOW_FUNC_OPTION",
	"TRANSFORM_FUNC_OPTION",
	"LANGUAGE_FUNC_OPTION",
	"PARAM_DEFAULT",
	"FUNC_OPTION_LIST",
	"IF_EXISTS",
	"IF_NOT_EXISTS",
	"OR_REPLACE",
	"DROP_INDEX_STMT",
	"DROP_TRIGGER_STMT",
	"BEGIN_STMT",
	"SHOW_STMT",
	"SET_STMT",
	"PREPARE_TRANSACTION_STMT",
	"DROP_DATABASE_STMT",
	"DROP_TYPE_STMT",
	"CALL_STMT",
	"TRUNCATE_STMT",
	"MOVE_STMT",
	"FETCH_STMT",
	"DECLARE_STMT",
	"DO_STMT",
	"DISCARD_STMT",
	"RESET_STMT",
	"LISTEN_STMT",
	"LOAD_STMT",
	"DEALLOCATE_STMT",
	"CHECKPOINT_STMT",
	"PREPARE_STMT",
	"UNLISTEN_STMT",
	"NOTIFY_STMT",
	"CLOSE_STMT",
	"VACUUM_STMT",
	"COPY_STMT",
	"DELETE_STMT",
	"MERGE_STMT",
	"LOCK_STMT",
	"EXPLAIN_STMT",
	"DROP_USER_STMT",
	"DROP_TRANSFORM_STMT",
	"DROP_TEXT_SEARCH_TEMPLATE_STMT",
	"DROP_TEXT_SEARCH_PARSER_STMT",
	"DROP_TEXT_SEARCH_DICT_STMT",
	"DROP_TEXT_SEARCH_CONFIG_STMT",
	"DROP_TABLESPACE_STMT",
	"DROP_SUBSCRIPTION_STMT",
	"DROP_STATISTICS_STMT",
	"DROP_SERVER_STMT",
	"DROP_SEQUENCE_STMT",
	"DROP_RULE_STMT",
	"DROP_ROUTINE_STMT",
	"DROP_ROLE_STMT",
	"DROP_PUBLICATION_STMT",
	"DROP_PROCEDURE_STMT",
	"DROP_POLICY_STMT",
	"DROP_OWNED_STMT",
	"DROP_OPERATOR_FAMILY_STMT",
	"DROP_OPERATOR_CLASS_STMT",
	"DROP_MATERIALIZED_VIEW_STMT",
	"DROP_OPERATOR_STMT",
	"DROP_LANGUAGE_STMT",
	"DROP_GROUP_STMT",
	"DROP_FUNCTION_STMT",
	"DROP_FOREIGN_TABLE_STMT",
	"DROP_FOREIGN_DATA_WRAPPER_STMT",
	"DROP_EXTENSION_STMT",
	"DROP_EVENT_TRIGGER_STMT",
	"DROP_DOMAIN_STMT",
	"DROP_CONVERSION_STMT",
	"DROP_COLLATION_STMT",
	"DROP_CAST_STMT",
	"DROP_AGGREGATE_STMT",
	"DROP_ACCESS_METHOD_STMT",
	"DROP_USER_MAPPING_STMT",
	"IMPORT_FOREIGN_SCHEMA",
	"EXECUTE_STMT",
	"CREATE_VIEW_STMT",
	"SAVEPOINT_STMT",
	"RELEASE_SAVEPOINT_STMT",
	"DROP_SCHEMA_STMT",
	"DROP_VIEW_STMT",
	"REINDEX_STMT",
	"UPDATE_STMT",
	"ROLLBACK_STMT",
	"INSERT_STMT",
	"CREATE_SCHEMA_STMT",
	"SELECT",
	"SELECT_INTO_STMT",
	"SECURITY_LABEL_STMT",
	"REVOKE_STMT",
	"GRANT_STMT",
	"REFRESH_STMT",
	"REASSIGN_STMT",
	"SET_SESSION_AUTH_STMT",
	"CREATE_USER_MAPPING_STMT",
	"CREATE_USER_STMT",
	"SET_ROLE_STMT",
	"SET_CONSTRAINTS_STMT",
	"SET_TRANSACTION_STMT",
	"INTO_CLAUSE",
	"COMPOUND_SELECT",
	"DROP_TABLE",
	"JOIN",
	"CREATE_TABLE",
	"ALTER_TABLE",
	"WINDOW_DEF",
	"JSON_VALUE_EXPR",
	"JSON_FORMAT_CLAUSE",
	"JSON_RETURNING_CLAUSE",
	"JSON_QUOTES_CLAUSE",
	"JSON_WRAPPER_BEHAVIOR_CLAUSE",
	"JSON_BEHAVIOR_CLAUSE",
	"JSON_PASSING_CLAUSE",
	"JSON_ON_ERROR_CLAUSE",
	"JSON_NULL_CLAUSE",
	"JSON_KEYS_UNIQUE_CLAUSE",
	"SELECT_CLAUSE",
	"LIKE_CLAUSE",
	"REFERENCES_CONSTRAINT",
	"PRIMARY_KEY_CONSTRAINT",
	"FOREIGN_KEY_CONSTRAINT",
	"EXCLUDE_CONSTRAINT",
	"UNIQUE_CONSTRAINT",
	"GENERATED_CONSTRAINT",
	"DEFAULT_CONSTRAINT",
	"CHECK_CONSTRAINT",
	"NULL_CONSTRAINT",
	"NOT_NULL_CONSTRAINT",
	"INDEX_PARAMS",
	"CONSTRAINT_INDEX_TABLESPACE",
	"CONSTRAINT_STORAGE_PARAMS",
	"CONSTRAINT_INCLUDE_CLAUSE",
	"CONSTRAINT_WHERE_CLAUSE",
	"CONSTRAINT_INDEX_METHOD",
	"CONSTRAINT_EXCLUSIONS",
	"DEFERRABLE_CONSTRAINT_OPTION",
	"NOT_DEFERRABLE_CONSTRAINT_OPTION",
	"INITALLY_DEFERRED_CONSTRAINT_OPTION",
	"INITIALLY_IMMEDIATE_CONSTRAINT_OPTION",
	"CONSTRAINT_OPTION_LIST",
	"SEQUENCE_OPTION_LIST",
	"USING_INDEX",
	"VALIDATE_CONSTRAINT",
	"REPLICA_IDENTITY",
	"OF_TYPE",
	"NOT_OF",
	"FORCE_RLS",
	"NO_FORCE_RLS",
	"INHERIT",
	"NO_INHERIT",
	"ENABLE_TRIGGER",
	"ENABLE_REPLICA_TRIGGER",
	"ENABLE_REPLICA_RULE",
	"ENABLE_ALWAYS_TRIGGER",
	"ENABLE_ALWAYS_RULE",
	"ENABLE_RULE",
	"ENABLE_RLS",
	"DISABLE_TRIGGER",
	"DISABLE_RLS",
	"DISABLE_RULE",
	"DISABLE_CLUSTER",
	"OWNER_TO",
	"DETACH_PARTITION",
	"DROP_CONSTRAINT",
	"DROP_COLUMN",
	"ADD_CONSTRAINT",
	"ADD_COLUMN",
	"ATTACH_PARTITION",
	"SET_SCHEMA",
	"SET_TABLESPACE",
	"SET_WITHOUT_CLUSTER",
	"SET_WITHOUT_OIDS",
	"SET_ACCESS_METHOD",
	"SET_LOGGED",
	"SET_UNLOGGED",
	"SET_STORAGE_PARAMS",
	"RESET_STORAGE_PARAMS",
	"RENAME_TABLE",
	"RENAME_CONSTRAINT",
	"RENAME_COLUMN",
	"RENAME_TO",
	"NOT_VALID",
	"ALTER_CONSTRAINT",
	"ALTER_COLUMN",
	"DROP_DEFAULT",
	"DROP_EXPRESSION",
	"DROP_IDENTITY",
	"DROP_NOT_NULL",
	"RESTART",
	"ADD_GENERATED",
	"RESET_OPTIONS",
	"SET_TYPE",
	"SET_GENERATED_OPTIONS",
	"SET_GENERATED",
	"SET_SEQUENCE_OPTION",
	"SET_DEFAULT",
	"SET_EXPRESSION",
	"SET_STATISTICS",
	"SET_OPTIONS",
	"SET_OPTIONS_LIST",
	"SET_STORAGE",
	"SET_COMPRESSION",
	"SET_NOT_NULL",
	"TABLE_ARGS",
	"COLUMN_LIST",
	"WHEN_CLAUSE",
	"USING_CLAUSE",
	"WITHIN_CLAUSE",
	"FILTER_CLAUSE",
	"OVER_CLAUSE",
	"DISTINCT_CLAUSE",
	"WITH_TABLE",
	"WITH_CLAUSE",
	"FROM_CLAUSE",
	"WHERE_CLAUSE",
	"GROUP_BY_CLAUSE",
	"HAVING_CLAUSE",
	"WINDOW_CLAUSE",
	"LIMIT_CLAUSE",
	"OFFSET_CLAUSE",
	"ORDER_BY_CLAUSE",
	"LOCKING_CLAUSE",
	"TUPLE_EXPR",
	"NAME_REF",
}

// String returns the kind's canonical upper-snake name, e.g. "SELECT_KW".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN_KIND"
}
