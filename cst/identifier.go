package cst

import "strings"

// CanonicalIdentifier folds name the way PostgreSQL does when it resolves an
// identifier to a catalog entry: an unquoted identifier is case-folded to
// lowercase, a quoted one is compared byte-for-byte. Lint rules that need to
// recognize "the same column" across two statements (one quoting it, one
// not) compare on this rather than on the raw token text.
func CanonicalIdentifier(name string, quoted bool) string {
	if quoted {
		return name
	}
	return strings.ToLower(name)
}

// SameIdentifier reports whether a and b name the same PostgreSQL identifier,
// each under its own quoting.
func SameIdentifier(a string, aQuoted bool, b string, bQuoted bool) bool {
	return CanonicalIdentifier(a, aQuoted) == CanonicalIdentifier(b, bQuoted)
}
