// File: plural.go
// Role: Plural variants of the L2 mutation primitives (L4).
//
// The source material's own plural reducers are flagged as a likely bug:
// the reducing function is defined but never applied over a collection.
// These implementations deliberately do the opposite — a plain iteration,
// threading the graph forward one element at a time — rather than
// reproducing that defect.
package ops

import "github.com/relagraph/digraph/graph"

// AddNodes adds one node per combination of attrs' Seq-valued keys (the
// cartesian product across all of them), returning every new view in
// combination order. On the first failing combination, it returns the
// graph unchanged, discarding any combinations already added.
func AddNodes(g *graph.Graph, attrs map[graph.Label]any) (*graph.Graph, []graph.NodeView, error) {
	combos := cartesian(attrs)
	cur := g
	out := make([]graph.NodeView, 0, len(combos))
	for _, combo := range combos {
		next, nv, err := cur.AddNode(combo)
		if err != nil {
			return g, nil, err
		}
		cur = next
		out = append(out, nv)
	}
	return cur, out, nil
}

// AddEdges adds one edge per combination of attrs' Seq-valued keys,
// including relation-labeled keys (so a Seq of endpoints multiplies out
// too). On the first failing combination, it returns the graph unchanged.
func AddEdges(g *graph.Graph, attrs map[graph.Label]any) (*graph.Graph, []graph.EdgeView, error) {
	combos := cartesian(attrs)
	cur := g
	out := make([]graph.EdgeView, 0, len(combos))
	for _, combo := range combos {
		next, ev, err := cur.AddEdge(combo)
		if err != nil {
			return g, nil, err
		}
		cur = next
		out = append(out, ev)
	}
	return cur, out, nil
}

// AssocNodes applies AssocNode(v, attrs) to each view in views, in order,
// threading the graph forward so later views observe earlier views'
// constraint-applied results.
func AssocNodes(g *graph.Graph, views []graph.NodeView, attrs map[graph.Label]any) (*graph.Graph, []graph.NodeView, error) {
	cur := g
	out := make([]graph.NodeView, 0, len(views))
	for _, v := range views {
		next, nv, err := cur.AssocNode(v, attrs)
		if err != nil {
			return g, nil, err
		}
		cur = next
		out = append(out, nv)
	}
	return cur, out, nil
}

// DissocNodes applies DissocNode(v, keys) to each view in views, in order.
func DissocNodes(g *graph.Graph, views []graph.NodeView, keys []graph.Label) (*graph.Graph, []graph.NodeView, error) {
	cur := g
	out := make([]graph.NodeView, 0, len(views))
	for _, v := range views {
		next, nv, err := cur.DissocNode(v, keys)
		if err != nil {
			return g, nil, err
		}
		cur = next
		out = append(out, nv)
	}
	return cur, out, nil
}

// AssocEdges applies AssocEdge(e, attrs) to each view in views, in order.
func AssocEdges(g *graph.Graph, views []graph.EdgeView, attrs map[graph.Label]any) (*graph.Graph, []graph.EdgeView, error) {
	cur := g
	out := make([]graph.EdgeView, 0, len(views))
	for _, v := range views {
		next, ev, err := cur.AssocEdge(v, attrs)
		if err != nil {
			return g, nil, err
		}
		cur = next
		out = append(out, ev)
	}
	return cur, out, nil
}

// DissocEdges applies DissocEdge(e, keys) to each view in views, in order.
func DissocEdges(g *graph.Graph, views []graph.EdgeView, keys []graph.Label) (*graph.Graph, []graph.EdgeView, error) {
	cur := g
	out := make([]graph.EdgeView, 0, len(views))
	for _, v := range views {
		next, ev, err := cur.DissocEdge(v, keys)
		if err != nil {
			return g, nil, err
		}
		cur = next
		out = append(out, ev)
	}
	return cur, out, nil
}

// AssocAll applies attrs to every node view in nodes and then every edge
// view in edges, in that order, threading the graph forward across both
// collections.
func AssocAll(g *graph.Graph, nodes []graph.NodeView, edges []graph.EdgeView, attrs map[graph.Label]any) (*graph.Graph, error) {
	cur, _, err := AssocNodes(g, nodes, attrs)
	if err != nil {
		return g, err
	}
	cur, _, err = AssocEdges(cur, edges, attrs)
	if err != nil {
		return g, err
	}
	return cur, nil
}
