// Package scheduler produces the order in which variables are evaluated.
//
// # How It Works
//
// Schedule runs Kahn's algorithm directly against the referenced-by graph
// built by package refgraph:
//
//  1. Every node starts with an indegree of 0. For every node A and every
//     member B of A's ReferencedBy set, indegree(B) is incremented, so a
//     node's indegree counts the variables it references.
//  2. The FIFO queue is seeded, in graph insertion order, with every node
//     whose indegree is 0.
//  3. Popping a node appends it to the order and decrements the indegree of
//     each member of its ReferencedBy set, enqueueing the ones that reach 0.
//
// A referenced variable is therefore always emitted before the variables that
// reference it.
//
// # Cycles
//
// When the order is shorter than the graph, some nodes were never released
// because they sit on (or behind) a reference cycle. Schedule reports this as
// a *CycleError naming those nodes instead of returning a partial order.
package scheduler
