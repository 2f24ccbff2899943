// File: edges.go
// Role: Edge lifecycle operations (L2).
package graph

// pullEdgeID draws the next id from the edge id sequence, verifying it is
// not already live in this graph's edge catalog.
func (g *Graph) pullEdgeID() (EdgeID, *Graph, error) {
	id, rest, ok := g.edgeIDSeq.Pull()
	if !ok {
		return "", g, ErrIdSeqExhausted
	}
	if _, live := g.edgeRelPair.Get(id); live {
		return "", g, ErrIdSeqCollision
	}
	next := g.shallowCopy()
	next.edgeIDSeq = rest
	return id, next, nil
}

// relationKeys returns the subset of attrs' keys that are known relation
// labels, in no particular order.
func (g *Graph) relationKeys(attrs map[Label]any) []Label {
	var out []Label
	for k := range attrs {
		if g.KnowsRelation(k) {
			out = append(out, k)
		}
	}
	return out
}

// AddEdge requires attrs to carry exactly two relation-labeled keys that
// are each other's opposite, each bound to a NodeID that is a member of
// this graph's node set; any other key in attrs is stored as a plain edge
// attribute.
//
// Errors: ErrEdgeRelationCount, ErrEdgeRelationsNotOpposite,
// ErrEdgeEndpointMissing, ErrIdSeqExhausted, ErrIdSeqCollision.
func (g *Graph) AddEdge(attrs map[Label]any) (*Graph, EdgeView, error) {
	relKeys := g.relationKeys(attrs)
	if len(relKeys) != 2 {
		return g, EdgeView{}, ErrEdgeRelationCount
	}
	r1, r2 := relKeys[0], relKeys[1]
	if !g.RelatedIn(r1, r2) {
		return g, EdgeView{}, ErrEdgeRelationsNotOpposite
	}
	end1, ok := endpointOf(attrs, r1)
	if !ok || !g.nodeSet.Contains(end1) {
		return g, EdgeView{}, ErrEdgeEndpointMissing
	}
	end2, ok := endpointOf(attrs, r2)
	if !ok || !g.nodeSet.Contains(end2) {
		return g, EdgeView{}, ErrEdgeEndpointMissing
	}

	id, next, err := g.pullEdgeID()
	if err != nil {
		return g, EdgeView{}, err
	}
	next.edgeRelPair = next.edgeRelPair.Assoc(id, RelPair{r1, r2})
	next.edgeAttrs = next.edgeAttrs.Assoc(id, r1, end1)
	next.edgeAttrs = next.edgeAttrs.Assoc(id, r2, end2)
	for k, v := range attrs {
		if k == r1 || k == r2 {
			continue
		}
		next.edgeAttrs = next.edgeAttrs.Assoc(id, k, v)
	}

	oldView := EdgeView{g: g, id: id}
	newView := EdgeView{g: next, id: id}
	result := next.constraint(EdgeKind, ActionAdd, oldView, newView, g, next)
	return result, EdgeView{g: result, id: id}, nil
}

// endpointOf extracts a NodeID bound to key, accepting either a raw
// NodeID/string or a NodeView for caller convenience.
func endpointOf(attrs map[Label]any, key Label) (NodeID, bool) {
	raw, ok := attrs[key]
	if !ok {
		return "", false
	}
	switch x := raw.(type) {
	case NodeView:
		return x.id, true
	case string:
		return x, true
	default:
		return "", false
	}
}

// RemoveEdge removes v from the edge catalog and pushes its id back onto
// the edge id sequence for reuse on this lineage.
//
// Errors: ErrForeignView.
func (g *Graph) RemoveEdge(v EdgeView) (*Graph, error) {
	if _, ok := g.edgeRelPair.Get(v.id); !ok {
		return g, ErrForeignView
	}
	return g.removeEdgeByID(v.id)
}

// removeEdgeByID is the constraint-observing primitive RemoveEdge and the
// RemoveNode cascade both delegate to; it assumes eid is already known to
// be live.
func (g *Graph) removeEdgeByID(eid EdgeID) (*Graph, error) {
	if _, ok := g.edgeRelPair.Get(eid); !ok {
		return g, ErrEdgeNotFound
	}
	next := g.shallowCopy()
	next.edgeRelPair = next.edgeRelPair.Dissoc(eid)
	next.edgeAttrs = next.edgeAttrs.RemoveID(eid)
	next.edgeIDSeq = next.edgeIDSeq.Push(eid)

	oldView := EdgeView{g: g, id: eid}
	newView := EdgeView{g: next, id: eid}
	result := next.constraint(EdgeKind, ActionRemove, oldView, newView, g, next)
	return result, nil
}

// AssocEdge merges attrs into v's attribute record. If attrs names exactly
// one of v's existing relation labels, that endpoint moves to the given
// node; if it names both, both endpoints move — but the relation *pair*
// itself may never change (ErrEdgeRelationAltered), and every new endpoint
// must already be a node of this graph (ErrEdgeEndpointMissing).
//
// Errors: ErrForeignView, ErrEdgeRelationAltered, ErrEdgeRelationCount,
// ErrEdgeRelationsNotOpposite, ErrEdgeEndpointMissing.
func (g *Graph) AssocEdge(v EdgeView, attrs map[Label]any) (*Graph, EdgeView, error) {
	pair, ok := g.edgeRelPair.Get(v.id)
	if !ok {
		return g, EdgeView{}, ErrForeignView
	}
	relKeys := g.relationKeys(attrs)
	switch len(relKeys) {
	case 0:
		// no relation-label keys; pure attribute update.
	case 1:
		label := relKeys[0]
		if label != pair[0] && label != pair[1] {
			return g, EdgeView{}, ErrEdgeRelationAltered
		}
		ref, ok := endpointOf(attrs, label)
		if !ok || !g.nodeSet.Contains(ref) {
			return g, EdgeView{}, ErrEdgeEndpointMissing
		}
	case 2:
		l0, l1 := relKeys[0], relKeys[1]
		samePair := (l0 == pair[0] && l1 == pair[1]) || (l0 == pair[1] && l1 == pair[0])
		if !samePair {
			return g, EdgeView{}, ErrEdgeRelationAltered
		}
		if !g.RelatedIn(l0, l1) {
			return g, EdgeView{}, ErrEdgeRelationsNotOpposite
		}
		for _, l := range relKeys {
			ref, ok := endpointOf(attrs, l)
			if !ok || !g.nodeSet.Contains(ref) {
				return g, EdgeView{}, ErrEdgeEndpointMissing
			}
		}
	default:
		return g, EdgeView{}, ErrEdgeRelationCount
	}

	next := g.shallowCopy()
	for k, val := range attrs {
		if label, isRel := k, g.KnowsRelation(k); isRel {
			ref, _ := endpointOf(attrs, label)
			next.edgeAttrs = next.edgeAttrs.Assoc(v.id, label, ref)
			continue
		}
		next.edgeAttrs = next.edgeAttrs.Assoc(v.id, k, val)
	}

	oldView := EdgeView{g: g, id: v.id}
	newView := EdgeView{g: next, id: v.id}
	result := next.constraint(EdgeKind, ActionAssoc, oldView, newView, g, next)
	return result, EdgeView{g: result, id: v.id}, nil
}

// DissocEdge removes each listed key from v's attribute record. Removing a
// relation-labeled key is always rejected, even if it was never present.
//
// Errors: ErrForeignView, ErrEdgeRelationDissociation.
func (g *Graph) DissocEdge(v EdgeView, keys []Label) (*Graph, EdgeView, error) {
	if _, ok := g.edgeRelPair.Get(v.id); !ok {
		return g, EdgeView{}, ErrForeignView
	}
	for _, k := range keys {
		if g.KnowsRelation(k) {
			return g, EdgeView{}, ErrEdgeRelationDissociation
		}
	}
	next := g.shallowCopy()
	for _, k := range keys {
		next.edgeAttrs = next.edgeAttrs.Dissoc(v.id, k)
	}

	oldView := EdgeView{g: g, id: v.id}
	newView := EdgeView{g: next, id: v.id}
	result := next.constraint(EdgeKind, ActionDissoc, oldView, newView, g, next)
	return result, EdgeView{g: result, id: v.id}, nil
}
