package cst

import "github.com/sqldef/pgparse/syntaxkind"

// Violation is one lint finding: a rule name plus a human-readable
// message. The lint layer is deliberately thin - it walks the untyped CST
// directly rather than projecting a typed AST first, since a generated
// AST accessor layer is an out-of-scope build-time artifact here.
type Violation struct {
	Rule    string
	Message string
}

// Rule is one lint check: a name (matched against the `.pgparse.yml`
// enabled-rules list) and a function that walks a parsed tree for
// violations.
type Rule struct {
	Name  string
	Check func(root *Node) []Violation
}

// AddingNotNullWithDefault flags `ALTER TABLE ... ADD COLUMN ... NOT
// NULL`, a direct port of adding_not_null_with_default.rs: that rule fires
// on the NOT NULL constraint alone, regardless of whether a DEFAULT is
// also present, since adding such a column takes an exclusive lock to
// backfill every existing row on PostgreSQL versions before 11, which can
// be a lengthy outage on a large table.
var AddingNotNullWithDefault = Rule{
	Name: "adding-field-with-default",
	Check: func(root *Node) []Violation {
		var out []Violation
		root.Walk(func(n *Node) {
			if n.Kind != syntaxkind.ALTER_TABLE {
				return
			}
			for _, action := range n.ChildNodes() {
				if action.Kind != syntaxkind.ADD_COLUMN {
					continue
				}
				col := action.FindFirst(syntaxkind.COLUMN)
				if col == nil {
					continue
				}
				hasNotNull := false
				for _, c := range col.ChildNodes() {
					if c.Kind == syntaxkind.NOT_NULL_CONSTRAINT {
						hasNotNull = true
					}
				}
				if hasNotNull {
					out = append(out, Violation{
						Rule: "adding-field-with-default",
						Message: "adding a NOT NULL column is only safe on PostgreSQL 11+; on " +
							"older versions add the column first, then set NOT NULL separately " +
							"after backfilling",
					})
				}
			}
		})
		return out
	},
}

// Rules is the full set of lint checks this package ships, keyed by Name
// against the lint command's rule-configuration file.
var Rules = []Rule{AddingNotNullWithDefault}

// RunRules applies every rule in names (or every registered rule, if names
// is empty) to root and returns all violations found.
func RunRules(root *Node, names []string) []Violation {
	var enabled map[string]bool
	if len(names) > 0 {
		enabled = make(map[string]bool, len(names))
		for _, n := range names {
			enabled[n] = true
		}
	}
	var out []Violation
	for _, r := range Rules {
		if enabled != nil && !enabled[r.Name] {
			continue
		}
		out = append(out, r.Check(root)...)
	}
	return out
}
