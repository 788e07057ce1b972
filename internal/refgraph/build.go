package refgraph

import (
	"github.com/specialistvlad/finsheet/internal/formula"
	"github.com/specialistvlad/finsheet/internal/model"
)

// Build scans the main and override formulas of every variable for external
// references and returns the referenced-by graph. Every variable gets a node,
// even when nothing references it. References to ids outside the variable set
// and a variable's references to its own id add no edge; both are left for the
// evaluator to reject.
func Build(vars []model.Variable) *Graph {
	g := New()
	for i := range vars {
		g.AddNode(vars[i].ID)
	}
	for i := range vars {
		v := &vars[i]
		for _, text := range v.Formulas() {
			for _, id := range formula.ExternalIDs(text) {
				if id == v.ID || !g.Has(id) {
					continue
				}
				// Both nodes exist, so this cannot fail.
				_ = g.AddReference(id, v.ID)
			}
		}
	}
	return g
}
