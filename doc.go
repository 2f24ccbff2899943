// Package digraph is an immutable, attributed, relation-typed directed
// graph value.
//
// Every mutation — AddNode, AddEdge, AssocNode, RemoveEdge, and the rest of
// the graph package's lifecycle operations — returns a new *graph.Graph and
// leaves its receiver untouched. Structural sharing keeps an unrelated
// field's value identical (same underlying map) across a mutation that
// didn't touch it, the way idx.PMap's copy-on-write Assoc/Dissoc behave.
//
// An edge does not carry a single fixed direction; instead it binds two
// opposite relation labels (e.g. "parent"/"child") to its two endpoints,
// and that pairing is enforced at every mutation that could otherwise
// desynchronize it. A composable constraint pipeline observes every atomic
// change and may veto or rewrite the successor graph before it is
// returned, the way a database trigger observes a commit.
//
// Subpackages are organized the way the layers in the design documents
// describe them:
//
//	idx/   — L1 persistent indexing primitives (bijection, surjection, attr-map)
//	graph/ — L2 graph value + L3 ephemeral node/edge views
//	ops/   — L4 composite operations built on graph/'s public surface
package digraph
