package reflow

import (
	"fmt"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

// topoSort returns the work order ids in a deterministic topological order
// (Kahn's algorithm), parent before child. Iteration order over the input
// slice and over each order's dependency list is preserved throughout so
// that ties break the same way every run.
func topoSort(orders []domain.WorkOrder) ([]int64, error) {
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		index[o.ID] = i
	}

	inDegree := make(map[int64]int, len(orders))
	children := make(map[int64][]int64, len(orders))

	for _, o := range orders {
		if _, ok := inDegree[o.ID]; !ok {
			inDegree[o.ID] = 0
		}
		for _, depID := range o.DependsOnWorkOrderIDs {
			if _, ok := index[depID]; !ok {
				return nil, fmt.Errorf("%w: work order %d depends on unknown id %d", ErrUnknownDependency, o.ID, depID)
			}
			children[depID] = append(children[depID], o.ID)
			inDegree[o.ID]++
		}
	}

	queue := make([]int64, 0, len(orders))
	for _, o := range orders {
		if inDegree[o.ID] == 0 {
			queue = append(queue, o.ID)
		}
	}

	ordered := make([]int64, 0, len(orders))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ordered = append(ordered, id)

		for _, childID := range children[id] {
			inDegree[childID]--
			if inDegree[childID] == 0 {
				queue = append(queue, childID)
			}
		}
	}

	if len(ordered) < len(orders) {
		return nil, fmt.Errorf("%w: %d of %d work orders could not be ordered", ErrCyclicDependency, len(orders)-len(ordered), len(orders))
	}

	return ordered, nil
}
