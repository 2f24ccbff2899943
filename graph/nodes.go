// File: nodes.go
// Role: Node lifecycle operations (L2).
package graph

import "github.com/relagraph/digraph/idx"

// AllLabels returns every relation label known to the graph, on either side
// of any pair — g.relations.Keys() alone only surfaces one side of each
// pair, since AddRelation only Assocs the r1->r2 direction into the
// underlying Bijection.
func (g *Graph) AllLabels() []Label {
	seen := idx.NewSet[Label]()
	for _, r := range g.relations.Keys() {
		seen = seen.Add(r)
	}
	for _, r := range g.relations.Inverse().Keys() {
		seen = seen.Add(r)
	}
	return seen.Slice()
}

// incidentEdgeIDs returns every edge id where id is the endpoint referenced
// by any of this graph's known relation labels, deduplicated.
func (g *Graph) incidentEdgeIDs(id NodeID) []EdgeID {
	set := idx.NewSet[EdgeID]()
	for _, label := range g.AllLabels() {
		for _, eid := range g.edgeAttrs.KeysWith(label, id) {
			set = set.Add(eid)
		}
	}
	return set.Slice()
}

// pullNodeID draws the next id from the node id sequence, verifying it is
// not already live in this graph's node set, and returns the id plus a
// Graph whose nodeIDSeq has advanced past it.
func (g *Graph) pullNodeID() (NodeID, *Graph, error) {
	id, rest, ok := g.nodeIDSeq.Pull()
	if !ok {
		return "", g, ErrIdSeqExhausted
	}
	if id == "" {
		return "", g, ErrEmptyNodeID
	}
	if g.nodeSet.Contains(id) {
		return "", g, ErrIdSeqCollision
	}
	next := g.shallowCopy()
	next.nodeIDSeq = rest
	return id, next, nil
}

// AddNode validates that no attribute key names a known relation label,
// draws a fresh id, records attrs, and runs the constraint pipeline.
//
// Errors: ErrAttrIsRelation, ErrIdSeqExhausted, ErrIdSeqCollision.
func (g *Graph) AddNode(attrs map[Label]any) (*Graph, NodeView, error) {
	for k := range attrs {
		if g.KnowsRelation(k) {
			return g, NodeView{}, ErrAttrIsRelation
		}
	}
	id, next, err := g.pullNodeID()
	if err != nil {
		return g, NodeView{}, err
	}
	next.nodeSet = next.nodeSet.Add(id)
	for k, v := range attrs {
		next.nodeAttrs = next.nodeAttrs.Assoc(id, k, v)
	}
	oldView := NodeView{g: g, id: id}
	newView := NodeView{g: next, id: id}
	result := next.constraint(NodeKind, ActionAdd, oldView, newView, g, next)
	return result, NodeView{g: result, id: id}, nil
}

// RemoveNode removes v and every edge incident to it (under any known
// relation), cascading edge removals first so no dangling edge can ever
// exist, then removes the node itself and pushes its id back onto the node
// id sequence for reuse on this lineage.
//
// Errors: ErrForeignView.
func (g *Graph) RemoveNode(v NodeView) (*Graph, error) {
	if !g.nodeSet.Contains(v.id) {
		return g, ErrForeignView
	}
	cur := g
	for _, eid := range cur.incidentEdgeIDs(v.id) {
		var err error
		cur, err = cur.removeEdgeByID(eid)
		if err != nil {
			return g, err
		}
	}
	next := cur.shallowCopy()
	next.nodeSet = next.nodeSet.Remove(v.id)
	next.nodeAttrs = next.nodeAttrs.RemoveID(v.id)
	next.nodeIDSeq = next.nodeIDSeq.Push(v.id)
	oldView := NodeView{g: cur, id: v.id}
	newView := NodeView{g: next, id: v.id}
	result := next.constraint(NodeKind, ActionRemove, oldView, newView, cur, next)
	return result, nil
}

// AssocNode merges attrs into v's attribute record. Re-associating an
// unchanged (key, value) pair is idempotent, per idx.AttrMap.Assoc.
//
// Errors: ErrForeignView, ErrAttrIsRelation.
func (g *Graph) AssocNode(v NodeView, attrs map[Label]any) (*Graph, NodeView, error) {
	if !g.nodeSet.Contains(v.id) {
		return g, NodeView{}, ErrForeignView
	}
	for k := range attrs {
		if g.KnowsRelation(k) {
			return g, NodeView{}, ErrAttrIsRelation
		}
	}
	next := g.shallowCopy()
	for k, val := range attrs {
		next.nodeAttrs = next.nodeAttrs.Assoc(v.id, k, val)
	}
	oldView := NodeView{g: g, id: v.id}
	newView := NodeView{g: next, id: v.id}
	result := next.constraint(NodeKind, ActionAssoc, oldView, newView, g, next)
	return result, NodeView{g: result, id: v.id}, nil
}

// DissocNode removes each listed key from v's attribute record. Removing a
// key that was never present is a no-op, per idx.AttrMap.Dissoc.
//
// Errors: ErrForeignView.
func (g *Graph) DissocNode(v NodeView, keys []Label) (*Graph, NodeView, error) {
	if !g.nodeSet.Contains(v.id) {
		return g, NodeView{}, ErrForeignView
	}
	next := g.shallowCopy()
	for _, k := range keys {
		next.nodeAttrs = next.nodeAttrs.Dissoc(v.id, k)
	}
	oldView := NodeView{g: g, id: v.id}
	newView := NodeView{g: next, id: v.id}
	result := next.constraint(NodeKind, ActionDissoc, oldView, newView, g, next)
	return result, NodeView{g: result, id: v.id}, nil
}
