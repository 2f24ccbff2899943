package idx

import "maps"

// PMap is a persistent key/value map. The zero value is a valid empty map.
// Assoc/Dissoc never mutate the receiver; they return a new PMap whose
// backing map is a clone of the receiver's, so the receiver keeps observing
// the values it had before the call.
//
// Complexity: Get/Len are O(1). Assoc/Dissoc are O(n) in the number of
// existing entries (one top-level map clone) — see DESIGN.md for why a
// full hash-array-mapped trie was not attempted here.
type PMap[K comparable, V any] struct {
	m map[K]V
}

// Get returns the value stored for k, if any.
func (p PMap[K, V]) Get(k K) (V, bool) {
	v, ok := p.m[k]
	return v, ok
}

// Len reports the number of entries.
func (p PMap[K, V]) Len() int { return len(p.m) }

// Assoc returns a new PMap with k bound to v, leaving the receiver intact.
func (p PMap[K, V]) Assoc(k K, v V) PMap[K, V] {
	next := maps.Clone(p.m)
	if next == nil {
		next = make(map[K]V, 1)
	}
	next[k] = v
	return PMap[K, V]{m: next}
}

// Dissoc returns a new PMap with k removed, leaving the receiver intact.
// Removing an absent key is a no-op that returns the receiver itself,
// matching the "dissoc of absent is a no-op" law.
func (p PMap[K, V]) Dissoc(k K) PMap[K, V] {
	if _, ok := p.m[k]; !ok {
		return p
	}
	next := maps.Clone(p.m)
	delete(next, k)
	return PMap[K, V]{m: next}
}

// Keys returns the map's keys in unspecified order.
func (p PMap[K, V]) Keys() []K {
	out := make([]K, 0, len(p.m))
	for k := range p.m {
		out = append(out, k)
	}
	return out
}

// Range calls fn for every entry, stopping early if fn returns false.
func (p PMap[K, V]) Range(fn func(K, V) bool) {
	for k, v := range p.m {
		if !fn(k, v) {
			return
		}
	}
}
