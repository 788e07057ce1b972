// Package refgraph builds the cross-variable reference graph that the
// scheduler orders.
//
// Edges point from a variable to the variables whose formulas reference it,
// so the graph is keyed by the referenced id and each node holds its
// ReferencedBy set. This is the inverse of a depends-on adjacency: if B's
// formula contains #A then A is ReferencedBy B, and B depends on A.
//
// Nodes and ReferencedBy members keep their insertion order, which makes the
// evaluation order produced from the graph deterministic.
package refgraph
