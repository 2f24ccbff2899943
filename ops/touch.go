// File: touch.go
// Role: Primitive BFS-shaped traversal helpers (L4). Neither walks a path
// or detects cycles — each hop is a plain index lookup, stepping one
// frontier at a time without owning any path-reconstruction state.
package ops

import "github.com/relagraph/digraph/graph"

// EdgesTouching returns every edge incident to v under any relation label
// known to g, deduplicated.
func EdgesTouching(g *graph.Graph, v graph.NodeView) ([]graph.EdgeView, error) {
	seen := make(map[graph.EdgeID]graph.EdgeView)
	for _, pair := range g.Relations() {
		for _, r := range pair {
			es, err := graph.Edges(g, map[graph.Label]any{r: v})
			if err != nil {
				return nil, err
			}
			for _, e := range es {
				seen[e.ID()] = e
			}
		}
	}
	out := make([]graph.EdgeView, 0, len(seen))
	for _, e := range seen {
		out = append(out, e)
	}
	return out, nil
}

// NodesAway returns the set of nodes reached by exactly d hops along
// relation r starting from x. A negative d walks the opposite relation for
// |d| hops instead. d=0 returns x verbatim (not deduplicated, matching the
// "returns X" wording literally).
//
// Errors: ErrUnknownRelation, if r is not known to g and d != 0.
func NodesAway(g *graph.Graph, d int, r graph.Label, x []graph.NodeView) ([]graph.NodeView, error) {
	if d == 0 {
		return append([]graph.NodeView(nil), x...), nil
	}
	hops, rel := d, r
	if d < 0 {
		opp, ok := g.Opposite(r)
		if !ok {
			return nil, ErrUnknownRelation
		}
		hops, rel = -d, opp
	} else if !g.KnowsRelation(r) {
		return nil, ErrUnknownRelation
	}

	frontier := x
	for i := 0; i < hops; i++ {
		next := make(map[graph.NodeID]graph.NodeView)
		for _, v := range frontier {
			reached, err := graph.Nodes(g, map[graph.Label]any{rel: v})
			if err != nil {
				return nil, err
			}
			for _, rv := range reached {
				next[rv.ID()] = rv
			}
		}
		frontier = make([]graph.NodeView, 0, len(next))
		for _, v := range next {
			frontier = append(frontier, v)
		}
	}
	return frontier, nil
}
