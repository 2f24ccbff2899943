// File: errors.go
// Role: Sentinel errors for the graph package.
//
// Policy:
//   - Only sentinel variables are exposed.
//   - Callers branch with errors.Is, never string comparison.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     operations that want to attach context wrap with %w at the call site.
package graph

import "errors"

var (
	// ErrEmptyNodeID indicates AddNode pulled an empty string from a
	// misbehaving node IDSeq.
	ErrEmptyNodeID = errors.New("graph: node id is empty")

	// ErrNodeNotFound indicates an operation referenced a node id that is
	// not a member of the graph's node set.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id that is
	// not a member of the graph's edge catalog.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrAttrIsRelation indicates a node attribute key coincides with a
	// label that is known to the graph's relation bijection.
	ErrAttrIsRelation = errors.New("graph: attribute key is a known relation label")

	// ErrEdgeRelationCount indicates the number of relation-labeled keys in
	// an edge's attribute set is not exactly two.
	ErrEdgeRelationCount = errors.New("graph: edge must carry exactly two relation labels")

	// ErrEdgeRelationsNotOpposite indicates the two relation labels supplied
	// for a new edge are not each other's opposite under the relation
	// bijection.
	ErrEdgeRelationsNotOpposite = errors.New("graph: edge relation labels are not opposites")

	// ErrEdgeRelationAltered indicates an AssocEdge call would change the
	// edge's existing relation pair, which is forbidden.
	ErrEdgeRelationAltered = errors.New("graph: assoc would alter edge's relation pair")

	// ErrEdgeEndpointMissing indicates an edge operation referenced an
	// endpoint node id that is not a member of the graph's node set.
	ErrEdgeEndpointMissing = errors.New("graph: edge endpoint is not a node of this graph")

	// ErrEdgeRelationDissociation indicates a DissocEdge call attempted to
	// remove a relation-labeled key, which is forbidden.
	ErrEdgeRelationDissociation = errors.New("graph: cannot dissoc a relation label from an edge")

	// ErrForeignView indicates a NodeView or EdgeView was presented to an
	// operation on a Graph whose node set or edge catalog does not contain
	// the view's id — a view from a different lineage, or from a later graph
	// of the same lineage.
	ErrForeignView = errors.New("graph: view belongs to a different graph lineage")

	// ErrRelationInUse indicates RemoveRelation was called for a pair with
	// at least one live edge still using either label.
	ErrRelationInUse = errors.New("graph: relation is still in use by an edge")

	// ErrInvalidQueryValue indicates a relation-keyed query was given a
	// value that is neither a NodeView nor an EdgeView.
	ErrInvalidQueryValue = errors.New("graph: relation query value must be a NodeView or EdgeView")

	// ErrIdSeqExhausted indicates an id sequence produced no head when one
	// was required to add a node or edge.
	ErrIdSeqExhausted = errors.New("graph: id sequence exhausted")

	// ErrIdSeqCollision indicates an id sequence produced an id that is
	// already live in this graph's node or edge set.
	ErrIdSeqCollision = errors.New("graph: id sequence produced a colliding id")
)
