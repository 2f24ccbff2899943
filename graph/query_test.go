package graph

import "testing"

func TestNodesByRelationLabel(t *testing.T) {
	g := New([]RelPair{{"parent", "child"}}, nil)
	g, a, _ := g.AddNode(map[Label]any{"name": "a"})
	g, b, _ := g.AddNode(map[Label]any{"name": "b"})
	g, _, err := g.AddEdge(map[Label]any{"parent": a, "child": b})
	MustNoError(t, err, "AddEdge")

	parents, err := Nodes(g, map[Label]any{"parent": b})
	MustNoError(t, err, "Nodes(parent=b)")
	MustTrue(t, len(parents) == 1 && parents[0].ID() == a.ID(), "parent of b is a")

	children, err := Nodes(g, map[Label]any{"child": a})
	MustNoError(t, err, "Nodes(child=a)")
	MustTrue(t, len(children) == 1 && children[0].ID() == b.ID(), "child of a is b")
}

func TestNodesByAttribute(t *testing.T) {
	g := New(nil, nil)
	g, a, _ := g.AddNode(map[Label]any{"colour": "red"})
	g, _, _ = g.AddNode(map[Label]any{"colour": "blue"})

	red, err := Nodes(g, map[Label]any{"colour": "red"})
	MustNoError(t, err, "Nodes(colour=red)")
	MustTrue(t, len(red) == 1 && red[0].ID() == a.ID(), "exactly a matches colour=red")
}

func TestQueryIntersectionLaw(t *testing.T) {
	g := New(nil, nil)
	g, a, _ := g.AddNode(map[Label]any{"colour": "red", "size": "big"})
	g, _, _ = g.AddNode(map[Label]any{"colour": "red", "size": "small"})

	both, err := Nodes(g, map[Label]any{"colour": "red", "size": "big"})
	MustNoError(t, err, "Nodes(colour=red,size=big)")

	byColour, err := Nodes(g, map[Label]any{"colour": "red"})
	MustNoError(t, err, "Nodes(colour=red)")
	bySize, err := Nodes(g, map[Label]any{"size": "big"})
	MustNoError(t, err, "Nodes(size=big)")

	inBoth := map[NodeID]bool{}
	for _, v := range byColour {
		inBoth[v.ID()] = true
	}
	var intersection []NodeView
	for _, v := range bySize {
		if inBoth[v.ID()] {
			intersection = append(intersection, v)
		}
	}

	MustTrue(t, len(both) == len(intersection), "query intersection law holds")
	MustTrue(t, len(both) == 1 && both[0].ID() == a.ID(), "exactly a satisfies both keys")
}

func TestNodesEmptyQueryReturnsAll(t *testing.T) {
	g := New(nil, nil)
	g, _, _ = g.AddNode(nil)
	g, _, _ = g.AddNode(nil)

	all, err := Nodes(g, nil)
	MustNoError(t, err, "Nodes(nil)")
	MustTrue(t, len(all) == 2, "empty query matches every node")
}

func TestNodesInvalidQueryValue(t *testing.T) {
	g := New([]RelPair{{"parent", "child"}}, nil)
	_, err := Nodes(g, map[Label]any{"parent": "not-a-view"})
	MustErrorIs(t, err, ErrInvalidQueryValue, "relation-keyed query with a non-view value")
}

func TestEdgesByEndpointRole(t *testing.T) {
	g := New([]RelPair{{"parent", "child"}}, nil)
	g, a, _ := g.AddNode(nil)
	g, b, _ := g.AddNode(nil)
	g, e, err := g.AddEdge(map[Label]any{"parent": a, "child": b})
	MustNoError(t, err, "AddEdge")

	es, err := Edges(g, map[Label]any{"parent": a})
	MustNoError(t, err, "Edges(parent=a)")
	MustTrue(t, len(es) == 1 && es[0].ID() == e.ID(), "edge is found by its parent-role endpoint")
}
