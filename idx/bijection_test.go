package idx

import "testing"

func TestBijectionForwardAndInverse(t *testing.T) {
	var b Bijection[string, string]
	b = b.Assoc("parent", "child")

	if v, ok := b.Get("parent"); !ok || v != "child" {
		t.Fatalf("Get(parent) = (%v,%v), want (child,true)", v, ok)
	}
	if k, ok := b.InverseGet("child"); !ok || k != "parent" {
		t.Fatalf("InverseGet(child) = (%v,%v), want (parent,true)", k, ok)
	}
}

func TestBijectionAssocEvictsCollision(t *testing.T) {
	var b Bijection[string, string]
	b = b.Assoc("a", "x").Assoc("b", "x") // reassigning value x evicts a->x

	if _, ok := b.Get("a"); ok {
		t.Fatalf("a should have been evicted once its value x moved to b")
	}
	if v, ok := b.Get("b"); !ok || v != "x" {
		t.Fatalf("b->x should hold, got (%v,%v)", v, ok)
	}
}

func TestBijectionInverseIsSymmetric(t *testing.T) {
	var b Bijection[string, string]
	b = b.Assoc("parent", "child")
	inv := b.Inverse()
	if v, ok := inv.Get("child"); !ok || v != "parent" {
		t.Fatalf("Inverse().Get(child) = (%v,%v), want (parent,true)", v, ok)
	}
}

func TestBijectionDissoc(t *testing.T) {
	var b Bijection[string, string]
	b = b.Assoc("parent", "child")
	b = b.DissocKey("parent")
	if _, ok := b.Get("parent"); ok {
		t.Fatalf("parent should be gone after DissocKey")
	}
	if _, ok := b.InverseGet("child"); ok {
		t.Fatalf("child should be gone from the inverse side too")
	}
}
