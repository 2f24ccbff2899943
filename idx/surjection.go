package idx

// Surjection is a persistent many-keys-to-one-value mapping K -> V with an
// inverse index V -> Set[K]. Unlike Bijection, many keys may share a value;
// removing the last key mapped to a value drops that value from the
// inverse index entirely (no empty bucket is kept around).
type Surjection[K, V comparable] struct {
	fwd PMap[K, V]
	rev PMap[V, Set[K]]
}

// Get returns the value k maps to, if any.
func (s Surjection[K, V]) Get(k K) (V, bool) { return s.fwd.Get(k) }

// InverseGet returns the set of keys currently mapped to v.
func (s Surjection[K, V]) InverseGet(v V) Set[K] {
	set, ok := s.rev.Get(v)
	if !ok {
		return Set[K]{}
	}
	return set
}

// Len reports the number of keys.
func (s Surjection[K, V]) Len() int { return s.fwd.Len() }

// Assoc returns a new Surjection with k mapped to v, evicting k from
// whatever bucket it previously belonged to.
func (s Surjection[K, V]) Assoc(k K, v V) Surjection[K, V] {
	next := s
	if oldV, ok := next.fwd.Get(k); ok {
		if oldV == v {
			return next
		}
		next = next.evict(k, oldV)
	}
	next.fwd = next.fwd.Assoc(k, v)
	bucket, ok := next.rev.Get(v)
	if !ok {
		bucket = Set[K]{}
	}
	next.rev = next.rev.Assoc(v, bucket.Add(k))
	return next
}

// DissocKey returns a new Surjection with k removed.
func (s Surjection[K, V]) DissocKey(k K) Surjection[K, V] {
	v, ok := s.fwd.Get(k)
	if !ok {
		return s
	}
	return s.evict(k, v)
}

// evict removes k from v's bucket (and fwd), dropping the bucket if empty.
func (s Surjection[K, V]) evict(k K, v V) Surjection[K, V] {
	next := s
	next.fwd = next.fwd.Dissoc(k)
	bucket, ok := next.rev.Get(v)
	if !ok {
		return next
	}
	bucket = bucket.Remove(k)
	if bucket.Len() == 0 {
		next.rev = next.rev.Dissoc(v)
	} else {
		next.rev = next.rev.Assoc(v, bucket)
	}
	return next
}

// Keys returns all keys in unspecified order.
func (s Surjection[K, V]) Keys() []K { return s.fwd.Keys() }
