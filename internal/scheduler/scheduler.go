package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/finsheet/internal/refgraph"
)

// ErrCycle is matched by every *CycleError.
var ErrCycle = errors.New("circular reference between variables")

// CycleError reports the variables that could not be scheduled.
type CycleError struct {
	// Unresolved lists, in graph order, every id left with references that
	// were never satisfied.
	Unresolved []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCycle, strings.Join(e.Unresolved, ", "))
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// Schedule returns an evaluation order in which every variable comes after
// all variables it references. It returns a *CycleError when no such order
// exists.
func Schedule(g *refgraph.Graph) ([]string, error) {
	ids := g.IDs()

	indegree := make(map[string]int, len(ids))
	for _, id := range ids {
		indegree[id] = 0
	}
	for _, id := range ids {
		for _, by := range referencedBy(g, id) {
			indegree[by]++
		}
	}

	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(ids))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, by := range referencedBy(g, id) {
			indegree[by]--
			if indegree[by] == 0 {
				queue = append(queue, by)
			}
		}
	}

	if len(order) != len(ids) {
		var unresolved []string
		for _, id := range ids {
			if indegree[id] > 0 {
				unresolved = append(unresolved, id)
			}
		}
		return nil, &CycleError{Unresolved: unresolved}
	}
	return order, nil
}

// referencedBy looks up an id taken from g.IDs(), which always exists.
func referencedBy(g *refgraph.Graph, id string) []string {
	by, _ := g.ReferencedBy(id)
	return by
}
