package graph

// AddConstraint composes c onto the graph's current constraint: the
// resulting chain runs the existing constraint first and lets c observe
// (and potentially override) its output. Constraints compose in add order,
// so the most-recently-added constraint sees every earlier constraint's
// already-applied corrections.
func (g *Graph) AddConstraint(c Constraint) *Graph {
	next := g.shallowCopy()
	next.constraint = compose(g.constraint, c)
	return next
}

// ResetConstraints replaces the composed constraint function with the
// identity constraint.
func (g *Graph) ResetConstraints() *Graph {
	next := g.shallowCopy()
	next.constraint = identityConstraint
	return next
}
