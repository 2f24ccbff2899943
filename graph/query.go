// File: query.go
// Role: Multi-index query resolution over node and edge attributes and
// relations (L2).
//
// A query is a map from attribute key (or relation label) to either a
// single value or a QueryValues union. The result is the intersection,
// over the query's keys, of the union, over each key's values, of the set
// of matching ids. An empty (or nil) query matches everything. A query
// value of nil contributes the empty set for that value (matches nothing).
package graph

import "github.com/relagraph/digraph/idx"

// QueryValues wraps multiple values for one query key, since plain Go
// slices can't be distinguished from a slice-shaped attribute value the
// way the source language's sequence type can — see DESIGN.md.
type QueryValues []any

// Nodes resolves query against g's node set. A nil or empty query matches
// every node.
//
// Errors: ErrInvalidQueryValue, if a relation-keyed value is neither a
// NodeView nor an EdgeView.
func Nodes(g *Graph, query map[Label]any) ([]NodeView, error) {
	if len(query) == 0 {
		return AllNodes(g), nil
	}
	var acc *idx.Set[NodeID]
	for key, val := range query {
		ids, err := g.nodeIdsForKey(key, val)
		if err != nil {
			return nil, err
		}
		set := idx.NewSet(ids...)
		acc = intersectOrInit(acc, set)
	}
	return nodeViews(g, acc.Slice()), nil
}

// AllNodes returns a view for every node in the graph.
func AllNodes(g *Graph) []NodeView { return nodeViews(g, g.nodeSet.Slice()) }

// Edges resolves query against g's edge catalog. A nil or empty query
// matches every edge.
//
// Errors: ErrInvalidQueryValue.
func Edges(g *Graph, query map[Label]any) ([]EdgeView, error) {
	if len(query) == 0 {
		return AllEdges(g), nil
	}
	var acc *idx.Set[EdgeID]
	for key, val := range query {
		ids, err := g.edgeIdsForKey(key, val)
		if err != nil {
			return nil, err
		}
		set := idx.NewSet(ids...)
		acc = intersectOrInit(acc, set)
	}
	return edgeViews(g, acc.Slice()), nil
}

// AllEdges returns a view for every edge in the graph.
func AllEdges(g *Graph) []EdgeView { return edgeViews(g, g.edgeRelPair.Keys()) }

func nodeViews(g *Graph, ids []NodeID) []NodeView {
	out := make([]NodeView, 0, len(ids))
	for _, id := range ids {
		out = append(out, NodeView{g: g, id: id})
	}
	return out
}

func edgeViews(g *Graph, ids []EdgeID) []EdgeView {
	out := make([]EdgeView, 0, len(ids))
	for _, id := range ids {
		out = append(out, EdgeView{g: g, id: id})
	}
	return out
}

func intersectOrInit[T comparable](acc *idx.Set[T], set idx.Set[T]) *idx.Set[T] {
	if acc == nil {
		return &set
	}
	out := idx.NewSet[T]()
	for _, x := range acc.Slice() {
		if set.Contains(x) {
			out = out.Add(x)
		}
	}
	return &out
}

// nodeIdsForKey resolves one query key/value pair against the node index.
//
// For a relation-labeled key with a NodeView value v, the result is the
// set of nodes X such that some edge binds v under opposite(key) and X
// under key — i.e. "the key-role counterpart of v" (a :parent query
// against a :child value returns that child's :parent). For an EdgeView
// value e, the result is the single node e itself has bound under key.
// For a non-relation key, matching falls straight through to the node
// attribute reverse index.
func (g *Graph) nodeIdsForKey(key Label, val any) ([]NodeID, error) {
	if val == nil {
		return nil, nil
	}
	if qv, ok := val.(QueryValues); ok {
		set := idx.NewSet[NodeID]()
		for _, v := range qv {
			ids, err := g.nodeIdsForKey(key, v)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				set = set.Add(id)
			}
		}
		return set.Slice(), nil
	}
	if g.KnowsRelation(key) {
		opp, _ := g.Opposite(key)
		switch x := val.(type) {
		case NodeView:
			var out []NodeID
			for _, eid := range g.edgeAttrs.KeysWith(opp, x.id) {
				if ep, ok := g.edgeAttrs.Get(eid, key); ok {
					out = append(out, ep.(NodeID))
				}
			}
			return out, nil
		case EdgeView:
			if ep, ok := g.edgeAttrs.Get(x.id, key); ok {
				return []NodeID{ep.(NodeID)}, nil
			}
			return nil, nil
		default:
			return nil, ErrInvalidQueryValue
		}
	}
	return g.nodeAttrs.KeysWith(key, val), nil
}

// edgeIdsForKey resolves one query key/value pair against the edge index.
//
// For a relation-labeled key with a NodeView value v, the result is every
// edge that binds v under key directly (edges "incident to v along that
// relation role"). For an EdgeView value e, the result is every edge
// sharing e's opposite(key) endpoint (edges parallel to e under that
// relation). For a non-relation key, matching falls through to the edge
// attribute reverse index.
func (g *Graph) edgeIdsForKey(key Label, val any) ([]EdgeID, error) {
	if val == nil {
		return nil, nil
	}
	if qv, ok := val.(QueryValues); ok {
		set := idx.NewSet[EdgeID]()
		for _, v := range qv {
			ids, err := g.edgeIdsForKey(key, v)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				set = set.Add(id)
			}
		}
		return set.Slice(), nil
	}
	if g.KnowsRelation(key) {
		opp, _ := g.Opposite(key)
		switch x := val.(type) {
		case NodeView:
			return g.edgeAttrs.KeysWith(key, x.id), nil
		case EdgeView:
			shared, ok := g.edgeAttrs.Get(x.id, opp)
			if !ok {
				return nil, nil
			}
			return g.edgeAttrs.KeysWith(opp, shared), nil
		default:
			return nil, ErrInvalidQueryValue
		}
	}
	return g.edgeAttrs.KeysWith(key, val), nil
}
