// Package graph implements an immutable, attributed, relation-typed
// directed graph value.
//
// A Graph is never mutated in place: AddNode, RemoveNode, AssocNode,
// DissocNode, AddEdge, RemoveEdge, AssocEdge, DissocEdge, AddRelation,
// RemoveRelation, AddConstraint, and ResetConstraints each validate their
// arguments against the receiver and, on success, return a brand new Graph
// value built on top of the idx package's persistent maps. The receiver
// remains valid and observable after the call.
//
// Every edge carries exactly two relation-labeled attributes, one per
// endpoint, and those two labels must be each other's opposite under the
// Graph's relation Bijection (see AddRelation). NodeView and EdgeView are
// ephemeral {graph, id} handles minted by queries and returned by the add,
// assoc and dissoc operations; they are cheap, carry no ownership beyond a
// pointer back to the Graph they were minted against, and must not be used
// to mutate a different Graph lineage (ErrForeignView).
//
// Constraints observe every atomic change as a (kind, action, oldView,
// newView, oldGraph, newGraph) tuple after the successor Graph is fully
// built, and may return any Graph value in its place; AddConstraint
// composes constraints into a chain where later constraints observe
// earlier constraints' already-applied corrections.
package graph
