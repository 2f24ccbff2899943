package idx

// Bijection is a persistent strict one-to-one mapping K <-> V. Both
// directions are always kept in agreement: Assoc(k, v) first removes any
// existing pair that collides on either side before inserting the new pair,
// the way a relation label can only ever pair with exactly one opposite.
type Bijection[K, V comparable] struct {
	fwd PMap[K, V]
	rev PMap[V, K]
}

// Get returns the V paired with k, if any.
func (b Bijection[K, V]) Get(k K) (V, bool) { return b.fwd.Get(k) }

// InverseGet returns the K paired with v, if any.
func (b Bijection[K, V]) InverseGet(v V) (K, bool) { return b.rev.Get(v) }

// Len reports the number of pairs.
func (b Bijection[K, V]) Len() int { return b.fwd.Len() }

// Assoc returns a new Bijection with k paired to v, after first evicting any
// pair that currently collides with k on the K side or with v on the V side.
func (b Bijection[K, V]) Assoc(k K, v V) Bijection[K, V] {
	next := b
	if oldV, ok := next.fwd.Get(k); ok {
		next.rev = next.rev.Dissoc(oldV)
	}
	if oldK, ok := next.rev.Get(v); ok {
		next.fwd = next.fwd.Dissoc(oldK)
	}
	next.fwd = next.fwd.Assoc(k, v)
	next.rev = next.rev.Assoc(v, k)
	return next
}

// DissocKey returns a new Bijection with k's pair removed, if present.
func (b Bijection[K, V]) DissocKey(k K) Bijection[K, V] {
	v, ok := b.fwd.Get(k)
	if !ok {
		return b
	}
	return Bijection[K, V]{fwd: b.fwd.Dissoc(k), rev: b.rev.Dissoc(v)}
}

// DissocVal returns a new Bijection with v's pair removed, if present.
func (b Bijection[K, V]) DissocVal(v V) Bijection[K, V] {
	k, ok := b.rev.Get(v)
	if !ok {
		return b
	}
	return Bijection[K, V]{fwd: b.fwd.Dissoc(k), rev: b.rev.Dissoc(v)}
}

// Keys returns all K-side keys in unspecified order.
func (b Bijection[K, V]) Keys() []K { return b.fwd.Keys() }

// Inverse returns the V->K view of this bijection, as its own Bijection.
func (b Bijection[K, V]) Inverse() Bijection[V, K] {
	return Bijection[V, K]{fwd: b.rev, rev: b.fwd}
}
