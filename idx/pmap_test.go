package idx

import "testing"

func TestPMapAssocDissocImmutable(t *testing.T) {
	var m PMap[string, int]
	m1 := m.Assoc("a", 1)
	m2 := m1.Assoc("b", 2)

	if v, ok := m.Get("a"); ok || v != 0 {
		t.Fatalf("original PMap mutated: got (%v,%v)", v, ok)
	}
	if v, ok := m1.Get("b"); ok {
		t.Fatalf("m1 observed m2's mutation: got (%v,%v)", v, ok)
	}
	if v, ok := m2.Get("a"); !ok || v != 1 {
		t.Fatalf("m2 missing inherited key a: got (%v,%v)", v, ok)
	}
	if v, ok := m2.Get("b"); !ok || v != 2 {
		t.Fatalf("m2 missing own key b: got (%v,%v)", v, ok)
	}
}

func TestPMapDissocAbsentIsNoop(t *testing.T) {
	var m PMap[string, int]
	m = m.Assoc("a", 1)
	m2 := m.Dissoc("absent")
	if m2.Len() != m.Len() {
		t.Fatalf("dissoc of absent key changed length: %d -> %d", m.Len(), m2.Len())
	}
}

func TestPMapKeys(t *testing.T) {
	var m PMap[string, int]
	m = m.Assoc("a", 1).Assoc("b", 2).Assoc("c", 3)
	if m.Len() != 3 {
		t.Fatalf("want len 3, got %d", m.Len())
	}
	seen := map[string]bool{}
	for _, k := range m.Keys() {
		seen[k] = true
	}
	for _, want := range []string{"a", "b", "c"} {
		if !seen[want] {
			t.Fatalf("Keys missing %q", want)
		}
	}
}
