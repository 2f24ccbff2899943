// File: api.go
// Role: External interface surface (L2/L6): structural equality,
// serialization, and diagnostic snapshots.
package graph

import "reflect"

// Equal reports whether g and other hold the same nodes, the same node and
// edge attributes, the same edge endpoints/relations, and the same relation
// bijection. It deliberately ignores the constraint chain, id sequences,
// and metadata — two graphs that would behave differently under future
// mutation, or that carry different opaque metadata, can still be Equal.
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if !sameIDSet(g.nodeSet.Slice(), other.nodeSet.Slice()) {
		return false
	}
	for _, id := range g.nodeSet.Slice() {
		if !recordsEqual(g.nodeAttrs.Record(id), other.nodeAttrs.Record(id)) {
			return false
		}
	}
	gEdges, oEdges := g.edgeRelPair.Keys(), other.edgeRelPair.Keys()
	if !sameIDSet(gEdges, oEdges) {
		return false
	}
	for _, id := range gEdges {
		gp, _ := g.edgeRelPair.Get(id)
		op, _ := other.edgeRelPair.Get(id)
		if !samePair(gp, op) {
			return false
		}
		if !recordsEqual(g.edgeAttrs.Record(id), other.edgeAttrs.Record(id)) {
			return false
		}
	}
	gRel, oRel := g.Relations(), other.Relations()
	if len(gRel) != len(oRel) {
		return false
	}
	for _, p := range gRel {
		if !containsPair(oRel, p) {
			return false
		}
	}
	return true
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	for _, x := range b {
		if _, ok := set[x]; !ok {
			return false
		}
	}
	return true
}

func recordsEqual(a, b map[Label]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(v, bv) {
			return false
		}
	}
	return true
}

func samePair(a, b RelPair) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

func containsPair(pairs []RelPair, p RelPair) bool {
	for _, q := range pairs {
		if samePair(p, q) {
			return true
		}
	}
	return false
}

// GraphRecord is a point-in-time snapshot of a Graph's entire content,
// suitable for rendering or deep-comparison in tests. It carries views
// rather than copied maps, so Relations/Nodes/Edges stay cheap to produce.
type GraphRecord struct {
	Relations []RelPair
	Nodes     []NodeView
	Edges     []EdgeView
}

// Render snapshots g's full content as a GraphRecord. There is no binary or
// textual wire format — callers walk the record themselves.
func (g *Graph) Render() GraphRecord {
	return GraphRecord{
		Relations: g.Relations(),
		Nodes:     AllNodes(g),
		Edges:     AllEdges(g),
	}
}

// Stats is a deterministic diagnostic snapshot of a Graph's size, useful
// for logging and test assertions without reaching for Render's full
// content.
type Stats struct {
	NodeCount     int
	EdgeCount     int
	RelationCount int
}

// Stats returns g's current size snapshot.
func (g *Graph) Stats() Stats {
	return Stats{
		NodeCount:     g.nodeSet.Len(),
		EdgeCount:     g.edgeRelPair.Len(),
		RelationCount: len(g.Relations()),
	}
}
