package idx

import (
	"hash/fnv"
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

// AttrMap is a persistent ID -> (key -> value) store with, for every
// attribute key, a reverse index value -> Set[ID]. Attribute values are
// arbitrary (any), so they cannot be used directly as Go map keys when they
// are slices, maps, or other non-comparable shapes; the reverse index
// instead buckets on a structural hash (hashstructure.Hash) and tie-breaks
// hash collisions with reflect.DeepEqual, so KeysWith is exact regardless of
// whether the stored value happens to be comparable.
//
// An id with no attributes left after a Dissoc is not kept around as an
// empty record — AttrMap.Get/KeysWithAttr treat it as wholly absent.
type AttrMap[ID comparable] struct {
	attrs PMap[ID, PMap[string, any]]        // id -> key -> value
	index PMap[string, PMap[uint64, Set[ID]]] // key -> value-hash -> ids
	byKey PMap[string, Set[ID]]               // key -> ids having any value for key
}

// Get returns the value stored for (id, key).
func (a AttrMap[ID]) Get(id ID, key string) (any, bool) {
	rec, ok := a.attrs.Get(id)
	if !ok {
		return nil, false
	}
	return rec.Get(key)
}

// HasID reports whether id has at least one attribute recorded.
func (a AttrMap[ID]) HasID(id ID) bool {
	rec, ok := a.attrs.Get(id)
	return ok && rec.Len() > 0
}

// Record returns a snapshot of all key/value pairs stored for id.
func (a AttrMap[ID]) Record(id ID) map[string]any {
	rec, ok := a.attrs.Get(id)
	out := make(map[string]any)
	if !ok {
		return out
	}
	rec.Range(func(k string, v any) bool {
		out[k] = v
		return true
	})
	return out
}

// Assoc returns a new AttrMap with (id, key) bound to value, replacing any
// prior value and keeping both the forward record and reverse index
// consistent. Re-associating the same (id, key, value) is idempotent.
func (a AttrMap[ID]) Assoc(id ID, key string, value any) AttrMap[ID] {
	rec, _ := a.attrs.Get(id)
	next := a
	if oldVal, ok := rec.Get(key); ok {
		if valuesEqual(oldVal, value) {
			return next // idempotent: nothing changes
		}
		next = next.removeFromIndex(key, oldVal, id)
	} else {
		next.byKey = next.byKey.Assoc(key, orEmptySet(next.byKey, key).Add(id))
	}
	next.attrs = next.attrs.Assoc(id, rec.Assoc(key, value))
	next = next.addToIndex(key, value, id)
	return next
}

// Dissoc returns a new AttrMap with (id, key) removed. Removing a key that
// was never present is a documented no-op.
func (a AttrMap[ID]) Dissoc(id ID, key string) AttrMap[ID] {
	rec, ok := a.attrs.Get(id)
	if !ok {
		return a
	}
	oldVal, ok := rec.Get(key)
	if !ok {
		return a
	}
	next := a
	newRec := rec.Dissoc(key)
	if newRec.Len() == 0 {
		next.attrs = next.attrs.Dissoc(id)
	} else {
		next.attrs = next.attrs.Assoc(id, newRec)
	}
	next = next.removeFromIndex(key, oldVal, id)
	bucket := orEmptySet(next.byKey, key).Remove(id)
	if bucket.Len() == 0 {
		next.byKey = next.byKey.Dissoc(key)
	} else {
		next.byKey = next.byKey.Assoc(key, bucket)
	}
	return next
}

// RemoveID returns a new AttrMap with every attribute of id removed.
func (a AttrMap[ID]) RemoveID(id ID) AttrMap[ID] {
	rec, ok := a.attrs.Get(id)
	if !ok {
		return a
	}
	next := a
	rec.Range(func(key string, val any) bool {
		next = next.removeFromIndex(key, val, id)
		bucket := orEmptySet(next.byKey, key).Remove(id)
		if bucket.Len() == 0 {
			next.byKey = next.byKey.Dissoc(key)
		} else {
			next.byKey = next.byKey.Assoc(key, bucket)
		}
		return true
	})
	next.attrs = next.attrs.Dissoc(id)
	return next
}

// KeysWith returns the set of ids whose attribute key equals value,
// verified exactly (hash bucket lookup followed by a DeepEqual tie-break).
func (a AttrMap[ID]) KeysWith(key string, value any) []ID {
	byHash, ok := a.index.Get(key)
	if !ok {
		return nil
	}
	bucket, ok := byHash.Get(hashOf(value))
	if !ok {
		return nil
	}
	var out []ID
	for _, id := range bucket.Slice() {
		got, _ := a.Get(id, key)
		if valuesEqual(got, value) {
			out = append(out, id)
		}
	}
	return out
}

// KeysWithAttr returns every id that currently has any value stored for key.
func (a AttrMap[ID]) KeysWithAttr(key string) []ID {
	bucket, ok := a.byKey.Get(key)
	if !ok {
		return nil
	}
	return bucket.Slice()
}

// Ids returns every id that has at least one attribute recorded.
func (a AttrMap[ID]) Ids() []ID { return a.attrs.Keys() }

func (a AttrMap[ID]) addToIndex(key string, value any, id ID) AttrMap[ID] {
	next := a
	byHash, _ := next.index.Get(key)
	bucket := orEmptySetU64(byHash, hashOf(value))
	byHash = byHash.Assoc(hashOf(value), bucket.Add(id))
	next.index = next.index.Assoc(key, byHash)
	return next
}

func (a AttrMap[ID]) removeFromIndex(key string, value any, id ID) AttrMap[ID] {
	next := a
	byHash, ok := next.index.Get(key)
	if !ok {
		return next
	}
	h := hashOf(value)
	bucket, ok := byHash.Get(h)
	if !ok {
		return next
	}
	bucket = bucket.Remove(id)
	if bucket.Len() == 0 {
		byHash = byHash.Dissoc(h)
	} else {
		byHash = byHash.Assoc(h, bucket)
	}
	if byHash.Len() == 0 {
		next.index = next.index.Dissoc(key)
	} else {
		next.index = next.index.Assoc(key, byHash)
	}
	return next
}

func orEmptySet[ID comparable](m PMap[string, Set[ID]], key string) Set[ID] {
	s, ok := m.Get(key)
	if !ok {
		return Set[ID]{}
	}
	return s
}

func orEmptySetU64[ID comparable](m PMap[uint64, Set[ID]], h uint64) Set[ID] {
	s, ok := m.Get(h)
	if !ok {
		return Set[ID]{}
	}
	return s
}

// valuesEqual reports whether two attribute values are structurally equal.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// hashOf computes a structural hash for an attribute value suitable for use
// as a reverse-index bucket key. hashstructure.Hash covers the vast
// majority of user-supplied values (primitives, slices, maps, structs);
// the fnv fallback only triggers for shapes hashstructure itself refuses
// (e.g. values embedding funcs or channels), and is still safe because
// KeysWith always re-verifies with reflect.DeepEqual.
func hashOf(v any) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err == nil {
		return h
	}
	fh := fnv.New64a()
	_, _ = fh.Write([]byte(reflect.TypeOf(v).String()))
	return fh.Sum64()
}
