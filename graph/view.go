// File: view.go
// Role: Ephemeral node/edge view handles (L3).
//
// NodeView and EdgeView bundle {graph, id}; they behave as lazy read-only
// maps over the owning Graph's attribute store. Equality is structural over
// (graph identity, id) — two views are equal iff they reference the same
// *Graph pointer and the same id; carried metadata never participates.
package graph

// NodeView is an ephemeral handle referencing a node within one Graph
// value. It carries no ownership of the Graph beyond the pointer it holds.
type NodeView struct {
	g    *Graph
	id   NodeID
	meta any
}

// ID returns the node id this view references.
func (v NodeView) ID() NodeID { return v.id }

// Graph returns the Graph this view was minted against.
func (v NodeView) Graph() *Graph { return v.g }

// Present reports whether the referenced id is currently a member of its
// graph's node set.
func (v NodeView) Present() bool {
	return v.g != nil && v.g.nodeSet.Contains(v.id)
}

// Get looks up attribute key against the owning graph's node attribute
// store, the way a node view behaves as a lazy map.
func (v NodeView) Get(key Label) (any, bool) {
	if v.g == nil {
		return nil, false
	}
	return v.g.nodeAttrs.Get(v.id, key)
}

// Meta returns the view's carried metadata, which never participates in
// equality or semantics.
func (v NodeView) Meta() any { return v.meta }

// WithMeta returns a copy of the view carrying the given metadata.
func (v NodeView) WithMeta(meta any) NodeView {
	v.meta = meta
	return v
}

// Equal reports structural equality over (graph identity, id).
func (v NodeView) Equal(other NodeView) bool {
	return v.g == other.g && v.id == other.id
}

// EdgeView is an ephemeral handle referencing an edge within one Graph
// value. Unlike NodeView, it offers Endpoint, which returns the NodeView of
// the endpoint stored under a relation label; Get returns the raw NodeID.
type EdgeView struct {
	g    *Graph
	id   EdgeID
	meta any
}

// ID returns the edge id this view references.
func (v EdgeView) ID() EdgeID { return v.id }

// Graph returns the Graph this view was minted against.
func (v EdgeView) Graph() *Graph { return v.g }

// Present reports whether the referenced id currently exists in its
// graph's edge catalog.
func (v EdgeView) Present() bool {
	if v.g == nil {
		return false
	}
	_, ok := v.g.edgeRelPair.Get(v.id)
	return ok
}

// Relations returns the edge's relation pair, in the unordered shape
// RelPair uses throughout this package.
func (v EdgeView) Relations() (RelPair, bool) {
	if v.g == nil {
		return RelPair{}, false
	}
	return v.g.edgeRelPair.Get(v.id)
}

// Get looks up key against the owning graph's edge attribute store. For a
// relation-labeled key this still returns the raw NodeID string value
// (see Endpoint for the NodeView form); for any other key it returns the
// plain user attribute.
func (v EdgeView) Get(key Label) (any, bool) {
	if v.g == nil {
		return nil, false
	}
	return v.g.edgeAttrs.Get(v.id, key)
}

// Endpoint returns the NodeView of the endpoint stored under relation label
// key, if key is one of this edge's two relation labels.
func (v EdgeView) Endpoint(key Label) (NodeView, bool) {
	raw, ok := v.Get(key)
	if !ok {
		return NodeView{}, false
	}
	nid, ok := raw.(NodeID)
	if !ok {
		return NodeView{}, false
	}
	return NodeView{g: v.g, id: nid}, true
}

// Meta returns the view's carried metadata.
func (v EdgeView) Meta() any { return v.meta }

// WithMeta returns a copy of the view carrying the given metadata.
func (v EdgeView) WithMeta(meta any) EdgeView {
	v.meta = meta
	return v
}

// Equal reports structural equality over (graph identity, id).
func (v EdgeView) Equal(other EdgeView) bool {
	return v.g == other.g && v.id == other.id
}
