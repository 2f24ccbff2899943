package graph

import "testing"

func TestOppositeIsSymmetric(t *testing.T) {
	g := New([]RelPair{{"parent", "child"}}, nil)
	opp, ok := g.Opposite("parent")
	MustTrue(t, ok, "parent is known")
	MustTrue(t, opp == "child", "opposite(parent) == child")

	back, ok := g.Opposite(opp)
	MustTrue(t, ok, "child is known")
	MustTrue(t, back == "parent", "opposite(opposite(parent)) == parent")
}

func TestRelationsReturnsUnorderedPairs(t *testing.T) {
	g := New([]RelPair{{"parent", "child"}}, nil)
	rels := g.Relations()
	MustTrue(t, len(rels) == 1, "exactly one relation pair")
	p := rels[0]
	same := (p[0] == "parent" && p[1] == "child") || (p[0] == "child" && p[1] == "parent")
	MustTrue(t, same, "relation pair contains parent and child in either order")
}

func TestRemoveRelationInUse(t *testing.T) {
	g := New([]RelPair{{"parent", "child"}}, nil)
	g, a, _ := g.AddNode(nil)
	g, b, _ := g.AddNode(nil)
	g, _, err := g.AddEdge(map[Label]any{"parent": a, "child": b})
	MustNoError(t, err, "AddEdge")

	_, err = g.RemoveRelation("parent", "child")
	MustErrorIs(t, err, ErrRelationInUse, "RemoveRelation while an edge still uses it")
}

func TestRemoveRelationUnused(t *testing.T) {
	g := New([]RelPair{{"parent", "child"}}, nil)
	g2, err := g.RemoveRelation("parent", "child")
	MustNoError(t, err, "RemoveRelation when unused")
	MustTrue(t, !g2.KnowsRelation("parent"), "parent no longer known")
}
