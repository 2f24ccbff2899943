package graph

import "github.com/relagraph/digraph/idx"

// NodeID identifies a node within one Graph lineage.
type NodeID = string

// EdgeID identifies an edge within one Graph lineage.
type EdgeID = string

// Label names an attribute key or a relation endpoint.
type Label = string

// RelPair is an unordered pair of opposite relation labels, e.g.
// {"parent", "child"}. Graph.Relations() returns pairs in this shape,
// deliberately losing the directional labelling spec.md §9 calls out;
// callers needing direction call Opposite directly.
type RelPair [2]Label

// ElementKind distinguishes which kind of element a constraint observed.
type ElementKind int

const (
	NodeKind ElementKind = iota
	EdgeKind
)

func (k ElementKind) String() string {
	if k == NodeKind {
		return "Node"
	}
	return "Edge"
}

// Action distinguishes which mutation a constraint observed.
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
	ActionAssoc
	ActionDissoc
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "Add"
	case ActionRemove:
		return "Remove"
	case ActionAssoc:
		return "Assoc"
	case ActionDissoc:
		return "Dissoc"
	default:
		return "Unknown"
	}
}

// Constraint observes one atomic change and returns the graph value that
// should actually be published in its place. By convention a constraint
// that has no opinion returns newGraph unchanged (the identity constraint).
// oldView/newView are NodeView or EdgeView depending on kind; either may
// denote a nonexistent entity, reflecting an Add or a Remove.
type Constraint func(kind ElementKind, action Action, oldView, newView any, oldGraph, newGraph *Graph) *Graph

// identityConstraint is the default, no-op constraint every Graph starts
// with.
func identityConstraint(_ ElementKind, _ Action, _, _ any, _, newGraph *Graph) *Graph {
	return newGraph
}

// compose builds a constraint that runs c0 first, then lets c observe (and
// possibly override) c0's output — adding constraint c to a graph whose
// current constraint is c0 yields exactly this chain.
func compose(c0, c Constraint) Constraint {
	return func(kind ElementKind, action Action, oldView, newView any, oldGraph, newGraph *Graph) *Graph {
		afterC0 := c0(kind, action, oldView, newView, oldGraph, newGraph)
		return c(kind, action, oldView, newView, oldGraph, afterC0)
	}
}

// Graph is the immutable, attributed, relation-typed directed graph value.
// Every field is itself a persistent structure (idx.Set, idx.AttrMap,
// idx.Bijection, idx.PMap); copying a Graph struct by value is intentionally
// cheap because nothing it holds is ever mutated in place.
type Graph struct {
	nodeSet     idx.Set[NodeID]
	nodeAttrs   idx.AttrMap[NodeID]
	edgeAttrs   idx.AttrMap[EdgeID]
	edgeRelPair idx.PMap[EdgeID, RelPair]
	relations   idx.Bijection[Label, Label]
	nodeIDSeq   IDSeq
	edgeIDSeq   IDSeq
	constraint  Constraint
	meta        any
}

// Option configures a Graph at construction time via the functional-options
// pattern.
type Option func(*Graph)

// WithNodeIDSeq overrides the default even-integer node id sequence.
func WithNodeIDSeq(seq IDSeq) Option {
	return func(g *Graph) { g.nodeIDSeq = seq }
}

// WithEdgeIDSeq overrides the default odd-integer edge id sequence.
func WithEdgeIDSeq(seq IDSeq) Option {
	return func(g *Graph) { g.edgeIDSeq = seq }
}

// WithGraphMeta attaches an opaque metadata value at construction time.
func WithGraphMeta(meta any) Option {
	return func(g *Graph) { g.meta = meta }
}

// New is the public factory: it applies each relation pair via AddRelation,
// in order, then composes each constraint onto the identity constraint, in
// order, exactly as spec.md §6 describes.
//
// Complexity: O(len(relations)² + len(constraints)), since each AddRelation
// is O(n) in the number of relation labels already known.
func New(relations []RelPair, constraints []Constraint, opts ...Option) *Graph {
	g := &Graph{
		nodeIDSeq:  NewNodeIDSeq(),
		edgeIDSeq:  NewEdgeIDSeq(),
		constraint: identityConstraint,
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, pair := range relations {
		g = g.AddRelation(pair[0], pair[1])
	}
	for _, c := range constraints {
		g = g.AddConstraint(c)
	}
	return g
}

// Meta returns the graph's opaque metadata value.
func (g *Graph) Meta() any { return g.meta }

// WithMeta returns a new Graph identical to the receiver except for its
// metadata. Metadata never participates in Equal.
func (g *Graph) WithMeta(meta any) *Graph {
	next := *g
	next.meta = meta
	return &next
}
