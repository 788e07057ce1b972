package refgraph

import "fmt"

// Reference is one graph entry: an id and the ids whose formulas reference it.
type Reference struct {
	ID           string
	ReferencedBy []string
}

// Graph is an insertion-ordered referenced-by adjacency list.
type Graph struct {
	order []string
	nodes map[string]*node
}

type node struct {
	id           string
	referencedBy []string
	members      map[string]struct{}
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// FromReferences builds a graph from explicit entries. Every id named in a
// ReferencedBy list must also appear as an entry.
func FromReferences(refs []Reference) (*Graph, error) {
	g := New()
	for _, ref := range refs {
		g.AddNode(ref.ID)
	}
	for _, ref := range refs {
		for _, by := range ref.ReferencedBy {
			if err := g.AddReference(ref.ID, by); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// AddNode adds a node with the given id. Adding an existing id does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{id: id, members: make(map[string]struct{})}
	g.order = append(g.order, id)
}

// AddReference records that referencingID's formula references referencedID.
// Both nodes must exist. Repeated references are stored once.
func (g *Graph) AddReference(referencedID, referencingID string) error {
	referenced, ok := g.nodes[referencedID]
	if !ok {
		return fmt.Errorf("referenced node not found: %s", referencedID)
	}
	if _, ok := g.nodes[referencingID]; !ok {
		return fmt.Errorf("referencing node not found: %s", referencingID)
	}
	if _, ok := referenced.members[referencingID]; ok {
		return nil
	}
	referenced.members[referencingID] = struct{}{}
	referenced.referencedBy = append(referenced.referencedBy, referencingID)
	return nil
}

// IDs returns every node id in insertion order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Has reports whether a node with the given id exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// ReferencedBy returns the ids whose formulas reference id, in insertion order.
func (g *Graph) ReferencedBy(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	out := make([]string, len(n.referencedBy))
	copy(out, n.referencedBy)
	return out, nil
}

// References returns one entry per node in insertion order.
func (g *Graph) References() []Reference {
	refs := make([]Reference, 0, len(g.order))
	for _, id := range g.order {
		n := g.nodes[id]
		by := make([]string, len(n.referencedBy))
		copy(by, n.referencedBy)
		refs = append(refs, Reference{ID: id, ReferencedBy: by})
	}
	return refs
}
