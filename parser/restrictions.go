package parser

// Restrictions threads parser mode through expr_bp and its callers by
// value rather than by mutating shared parser state, because PostgreSQL's
// a_expr/b_expr/c_expr trichotomy is context-sensitive: the same
// expr_bp implementation parses both forms, with certain operators masked
// off depending on where the expression appears (e.g. inside a BETWEEN
// bound, AND must not be consumed as an infix operator, since AND is the
// delimiter BETWEEN itself is waiting for).
type Restrictions struct {
	// InDisabled forbids a bare infix IN. Only BExpr sets it; BETWEEN
	// bounds use AndDisabled alone.
	InDisabled bool
	// IsDisabled forbids IS/IS NOT. Like InDisabled, only BExpr sets it.
	IsDisabled bool
	// NotDisabled forbids the NOT-prefixed forms (NOT IN, NOT LIKE, ...).
	NotDisabled bool
	// AndDisabled forbids infix AND - set while parsing a BETWEEN lower
	// bound, whose upper bound the AND keyword introduces.
	AndDisabled bool
	// OrderByAllowed marks an expression parsed as a function-call
	// argument, where an inline ORDER BY may follow (e.g. string_agg(x,
	// ',' ORDER BY y)). exprBP does not consult it; namedArgOrExpr parses
	// that ORDER BY itself.
	OrderByAllowed bool
	// JSONFieldArgAllowed promotes COLON/VALUE to infix operators, used
	// only inside json_object(...) argument lists.
	JSONFieldArgAllowed bool
	// BeginEndAllowed, when false (the top-level default), means a bare
	// BEGIN/END is a transaction statement. Inside a CREATE FUNCTION ...
	// BEGIN ATOMIC ... END body it is set true so those keywords are left
	// for the function-body parser instead of being mistaken for
	// transaction control (§4.2's StmtRestrictions.begin_end_allowed).
	BeginEndAllowed bool
}

// BExpr returns the restricted mode PostgreSQL calls b_expr: the subset of
// a_expr usable on the right-hand side of things like index expressions,
// where IN/IS/NOT/AND would be ambiguous with the enclosing grammar.
func BExpr() Restrictions {
	return Restrictions{InDisabled: true, IsDisabled: true, NotDisabled: true, AndDisabled: true}
}
