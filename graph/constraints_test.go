package graph

import "testing"

func TestConstraintCompositionOrder(t *testing.T) {
	var order []string
	c1 := func(kind ElementKind, action Action, oldView, newView any, oldGraph, newGraph *Graph) *Graph {
		order = append(order, "c1")
		return newGraph
	}
	c2 := func(kind ElementKind, action Action, oldView, newView any, oldGraph, newGraph *Graph) *Graph {
		order = append(order, "c2")
		return newGraph
	}

	g := New(nil, nil).AddConstraint(c1).AddConstraint(c2)
	_, _, err := g.AddNode(nil)
	MustNoError(t, err, "AddNode")

	MustTrue(t, len(order) == 2 && order[0] == "c1" && order[1] == "c2",
		"c2 observes c1's already-applied output, in add order")
}

func TestConstraintVetoesRemove(t *testing.T) {
	veto := func(_ ElementKind, action Action, _, _ any, oldGraph, newGraph *Graph) *Graph {
		if action == ActionRemove {
			return oldGraph
		}
		return newGraph
	}
	g := New(nil, []Constraint{veto})
	g, a, _ := g.AddNode(nil)
	before := g

	after, err := g.RemoveNode(a)
	MustNoError(t, err, "RemoveNode")
	MustTrue(t, before.Equal(after), "vetoed remove returns a graph equal to the pre-remove graph")
}

func TestResetConstraints(t *testing.T) {
	calls := 0
	c := func(_ ElementKind, _ Action, _, _ any, _, newGraph *Graph) *Graph {
		calls++
		return newGraph
	}
	g := New(nil, []Constraint{c}).ResetConstraints()
	_, _, err := g.AddNode(nil)
	MustNoError(t, err, "AddNode")
	MustTrue(t, calls == 0, "reset-constraints drops the prior constraint entirely")
}
