// Package ops implements the composite graph operations (L4): helpers
// built entirely out of the graph package's public L2/L3 surface, adding no
// new storage of their own. Every function here could be written by a
// caller directly against graph.Graph; they exist to name and test the
// common compositions once.
package ops
