// Package idx provides the persistent, structurally-shared indexed-map
// primitives the graph package is built on: an immutable copy-on-write map
// (PMap), a set built on top of it, a strict one-to-one Bijection, a
// many-to-one Surjection with an inverse set index, and an AttrMap keyed
// store with a per-key reverse index.
//
// Every mutating method on every type in this package returns a new value;
// the receiver is left untouched. Persistence is maps.Clone-based, the way
// it is used elsewhere in the reference corpus (e.g. a bimap's Clone()):
// each PMap Assoc/Dissoc clones that map's whole top level, while values
// stored in it (including nested PMaps it does not touch) are shared with
// the predecessor rather than copied.
//
// None of these types are safe for concurrent mutation of the same value;
// they are safe for concurrent reads, and for concurrent derivation of
// multiple successor values from one shared predecessor.
package idx
