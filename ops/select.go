package ops

import "github.com/relagraph/digraph/graph"

// FirstNode returns the first node matching query in whatever order
// graph.Nodes produces, and false if none match.
func FirstNode(g *graph.Graph, query map[graph.Label]any) (graph.NodeView, bool, error) {
	views, err := graph.Nodes(g, query)
	if err != nil || len(views) == 0 {
		return graph.NodeView{}, false, err
	}
	return views[0], true, nil
}

// FirstEdge returns the first edge matching query, and false if none match.
func FirstEdge(g *graph.Graph, query map[graph.Label]any) (graph.EdgeView, bool, error) {
	views, err := graph.Edges(g, query)
	if err != nil || len(views) == 0 {
		return graph.EdgeView{}, false, err
	}
	return views[0], true, nil
}
