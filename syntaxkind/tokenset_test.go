package syntaxkind

import "testing"

func TestTokenSetContains(t *testing.T) {
	ts := NewTokenSet(SELECT_KW, FROM_KW, WHERE_KW)
	for _, k := range []Kind{SELECT_KW, FROM_KW, WHERE_KW} {
		if !ts.Contains(k) {
			t.Errorf("expected set to contain %v", k)
		}
	}
	for _, k := range []Kind{INSERT_KW, UPDATE_KW, DELETE_KW} {
		if ts.Contains(k) {
			t.Errorf("expected set not to contain %v", k)
		}
	}
}

func TestTokenSetEmpty(t *testing.T) {
	if !(NewTokenSet()).Empty() {
		t.Error("NewTokenSet() with no members should be Empty")
	}
	if NewTokenSet(SELECT_KW).Empty() {
		t.Error("a set with one member should not be Empty")
	}
}

func TestTokenSetUnionIdempotent(t *testing.T) {
	a := NewTokenSet(SELECT_KW, FROM_KW)
	if got := a.Union(a); got != a {
		t.Errorf("a.Union(a) = %v, want %v (idempotent)", got, a)
	}
}

func TestTokenSetUnionCommutative(t *testing.T) {
	a := NewTokenSet(SELECT_KW, FROM_KW)
	b := NewTokenSet(WHERE_KW, GROUP_KW)
	if got, want := a.Union(b), b.Union(a); got != want {
		t.Errorf("a.Union(b) = %v, b.Union(a) = %v, want equal", got, want)
	}
}

func TestTokenSetUnionMembership(t *testing.T) {
	a := NewTokenSet(SELECT_KW)
	b := NewTokenSet(FROM_KW)
	u := a.Union(b)
	if !u.Contains(SELECT_KW) || !u.Contains(FROM_KW) {
		t.Error("union should contain every member of both operands")
	}
	if u.Contains(WHERE_KW) {
		t.Error("union should not contain a kind absent from both operands")
	}
}

func TestTokenSetUnionAll(t *testing.T) {
	a := NewTokenSet(SELECT_KW)
	got := a.UnionAll(NewTokenSet(FROM_KW), NewTokenSet(WHERE_KW))
	want := NewTokenSet(SELECT_KW, FROM_KW, WHERE_KW)
	if got != want {
		t.Errorf("UnionAll = %v, want %v", got, want)
	}
}

func TestTokenSetIntersect(t *testing.T) {
	a := NewTokenSet(SELECT_KW, FROM_KW, WHERE_KW)
	b := NewTokenSet(FROM_KW, WHERE_KW, GROUP_KW)
	got := a.Intersect(b)
	want := NewTokenSet(FROM_KW, WHERE_KW)
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
}

func TestTokenSetDisjointIntersectIsEmpty(t *testing.T) {
	a := NewTokenSet(SELECT_KW)
	b := NewTokenSet(FROM_KW)
	if !a.Intersect(b).Empty() {
		t.Error("disjoint sets should intersect to Empty")
	}
}
