package graph

import "testing"

func setupParentChild(t *testing.T) (*Graph, NodeView, NodeView) {
	t.Helper()
	g := New([]RelPair{{"parent", "child"}}, nil)
	g, a, err := g.AddNode(map[Label]any{"name": "a"})
	MustNoError(t, err, "AddNode a")
	g, b, err := g.AddNode(map[Label]any{"name": "b"})
	MustNoError(t, err, "AddNode b")
	return g, a, b
}

func TestAddEdgeRequiresTwoOppositeRelations(t *testing.T) {
	g, a, b := setupParentChild(t)

	_, _, err := g.AddEdge(map[Label]any{"parent": a})
	MustErrorIs(t, err, ErrEdgeRelationCount, "AddEdge with one relation key")

	g2 := New([]RelPair{{"parent", "child"}, {"sibling-a", "sibling-b"}}, nil)
	g2, a2, _ := g2.AddNode(nil)
	g2, b2, _ := g2.AddNode(nil)
	_, _, err = g2.AddEdge(map[Label]any{"parent": a2, "sibling-a": b2})
	MustErrorIs(t, err, ErrEdgeRelationsNotOpposite, "AddEdge with non-opposite relation keys")

	_ = b
}

func TestAddEdgeRequiresKnownEndpoints(t *testing.T) {
	g, a, _ := setupParentChild(t)
	other := NodeView{g: g, id: "not-a-real-node"}

	_, _, err := g.AddEdge(map[Label]any{"parent": a, "child": other})
	MustErrorIs(t, err, ErrEdgeEndpointMissing, "AddEdge with a missing endpoint")
}

func TestRemoveEdgeForeignView(t *testing.T) {
	g1, a, b := setupParentChild(t)
	g2, e, err := g1.AddEdge(map[Label]any{"parent": a, "child": b})
	MustNoError(t, err, "AddEdge")

	_, err = g1.RemoveEdge(e)
	MustErrorIs(t, err, ErrForeignView, "RemoveEdge against a graph predating the edge")
	_ = g2
}

func TestAssocEdgeRejectsRelationAlteration(t *testing.T) {
	g := New([]RelPair{{"sibling-a", "sibling-b"}, {"parent", "child"}}, nil)
	g, a, _ := g.AddNode(nil)
	g, b, _ := g.AddNode(nil)
	g, e, err := g.AddEdge(map[Label]any{"sibling-a": a, "sibling-b": b})
	MustNoError(t, err, "AddEdge")

	_, _, err = g.AssocEdge(e, map[Label]any{"parent": a})
	MustErrorIs(t, err, ErrEdgeRelationAltered, "AssocEdge onto an unrelated relation label")
}

func TestAssocEdgeMovesEndpoint(t *testing.T) {
	g, a, b := setupParentChild(t)
	g, c, err := g.AddNode(map[Label]any{"name": "c"})
	MustNoError(t, err, "AddNode c")
	g, e, err := g.AddEdge(map[Label]any{"parent": a, "child": b})
	MustNoError(t, err, "AddEdge")

	g, e2, err := g.AssocEdge(e, map[Label]any{"child": c})
	MustNoError(t, err, "AssocEdge moving child endpoint")

	ep, ok := e2.Endpoint("child")
	MustTrue(t, ok, "child endpoint present")
	MustTrue(t, ep.ID() == c.ID(), "child endpoint moved to c")
}

func TestDissocEdgeRejectsRelationLabel(t *testing.T) {
	g, a, b := setupParentChild(t)
	g, e, err := g.AddEdge(map[Label]any{"parent": a, "child": b})
	MustNoError(t, err, "AddEdge")

	_, _, err = g.DissocEdge(e, []Label{"parent"})
	MustErrorIs(t, err, ErrEdgeRelationDissociation, "DissocEdge on a relation label")
}
