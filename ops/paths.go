package ops

import "github.com/relagraph/digraph/graph"

// AddPath adds one edge between each consecutive pair of nodes, edge i
// carrying {pair[0]: nodes[i], pair[1]: nodes[i+1]} merged with attrs. The
// relation pair's fixed arity (graph.RelPair is a [2]Label) is what
// guarantees the "exactly two relation labels" precondition structurally,
// with no separate arity check needed.
func AddPath(g *graph.Graph, pair graph.RelPair, nodes []graph.NodeView, attrs map[graph.Label]any) (*graph.Graph, []graph.EdgeView, error) {
	cur := g
	out := make([]graph.EdgeView, 0, max0(len(nodes)-1))
	for i := 0; i < len(nodes)-1; i++ {
		edgeAttrs := edgeAttrsFor(pair, nodes[i], nodes[i+1], attrs)
		next, ev, err := cur.AddEdge(edgeAttrs)
		if err != nil {
			return g, nil, err
		}
		cur = next
		out = append(out, ev)
	}
	return cur, out, nil
}

// AddCycle behaves as AddPath, plus a closing edge from the last node back
// to the first.
func AddCycle(g *graph.Graph, pair graph.RelPair, nodes []graph.NodeView, attrs map[graph.Label]any) (*graph.Graph, []graph.EdgeView, error) {
	cur, edges, err := AddPath(g, pair, nodes, attrs)
	if err != nil {
		return g, nil, err
	}
	if len(nodes) == 0 {
		return cur, edges, nil
	}
	closing := edgeAttrsFor(pair, nodes[len(nodes)-1], nodes[0], attrs)
	next, ev, err := cur.AddEdge(closing)
	if err != nil {
		return g, nil, err
	}
	return next, append(edges, ev), nil
}

func edgeAttrsFor(pair graph.RelPair, from, to graph.NodeView, attrs map[graph.Label]any) map[graph.Label]any {
	out := make(map[graph.Label]any, len(attrs)+2)
	for k, v := range attrs {
		out[k] = v
	}
	out[pair[0]] = from
	out[pair[1]] = to
	return out
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
