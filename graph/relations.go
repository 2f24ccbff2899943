package graph

// Opposite returns the relation label paired with r under the graph's
// relation bijection, and whether r is known to the graph at all.
func (g *Graph) Opposite(r Label) (Label, bool) {
	if v, ok := g.relations.Get(r); ok {
		return v, true
	}
	return g.relations.InverseGet(r)
}

// RelatedIn reports whether r2 is r1's opposite.
func (g *Graph) RelatedIn(r1, r2 Label) bool {
	opp, ok := g.Opposite(r1)
	return ok && opp == r2
}

// KnowsRelation reports whether r appears on either side of the relation
// bijection.
func (g *Graph) KnowsRelation(r Label) bool {
	_, ok := g.Opposite(r)
	return ok
}

// Relations returns every known relation pair, each as an unordered
// RelPair — see spec.md §9's open question on direction loss; use Opposite
// when direction matters.
func (g *Graph) Relations() []RelPair {
	seen := make(map[Label]bool)
	var out []RelPair
	for _, r := range g.relations.Keys() {
		if seen[r] {
			continue
		}
		opp, _ := g.relations.Get(r)
		seen[r], seen[opp] = true, true
		out = append(out, RelPair{r, opp})
	}
	return out
}

// AddRelation extends the relation bijection with the pair r1<->r2. It does
// not check whether either label is already in use as a node attribute key
// or by a live edge — that check runs at node add/assoc time and at
// RemoveRelation time respectively.
//
// Complexity: O(n) (a constant number of PMap clones), where n is the
// number of known relation labels.
func (g *Graph) AddRelation(r1, r2 Label) *Graph {
	next := g.shallowCopy()
	next.relations = next.relations.Assoc(r1, r2)
	return next
}

// RemoveRelation removes the pair r1<->r2 from the relation bijection.
// Allowed only if r1 and r2 are currently each other's opposite and no
// live edge uses either label; otherwise returns the receiver unchanged
// alongside ErrRelationInUse (or a not-found condition is simply a no-op,
// matching the rest of the package's dissoc-of-absent law).
func (g *Graph) RemoveRelation(r1, r2 Label) (*Graph, error) {
	if !g.RelatedIn(r1, r2) {
		return g, nil
	}
	if len(g.edgeAttrs.KeysWithAttr(r1)) > 0 || len(g.edgeAttrs.KeysWithAttr(r2)) > 0 {
		return g, ErrRelationInUse
	}
	next := g.shallowCopy()
	// r1 may sit on either side of the stored pair, depending on the order
	// AddRelation was called with.
	next.relations = next.relations.DissocKey(r1).DissocVal(r1)
	return next, nil
}

// shallowCopy returns a new *Graph sharing every field's current value
// with the receiver; callers go on to replace exactly the fields their
// operation touches, which is how structural sharing across unrelated
// mutations (e.g. a node-only AddNode sharing edgeAttrs with its
// predecessor) falls out for free from Go's value-copy semantics over
// persistent fields.
func (g *Graph) shallowCopy() *Graph {
	next := *g
	return &next
}
