package reflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func TestTopoSortOrdersParentsBeforeChildren(t *testing.T) {
	orders := []domain.WorkOrder{
		{ID: 3, DependsOnWorkOrderIDs: []int64{2}},
		{ID: 1},
		{ID: 2, DependsOnWorkOrderIDs: []int64{1}},
	}

	ordered, err := topoSort(orders)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ordered)
}

func TestTopoSortDeterministicTieBreakIsInsertionOrder(t *testing.T) {
	orders := []domain.WorkOrder{
		{ID: 20},
		{ID: 10},
		{ID: 30},
	}

	ordered, err := topoSort(orders)
	require.NoError(t, err)
	require.Equal(t, []int64{20, 10, 30}, ordered)
}

func TestTopoSortUnknownDependency(t *testing.T) {
	orders := []domain.WorkOrder{
		{ID: 1, DependsOnWorkOrderIDs: []int64{999}},
	}
	_, err := topoSort(orders)
	require.ErrorIs(t, err, ErrUnknownDependency)
}

func TestTopoSortCycle(t *testing.T) {
	orders := []domain.WorkOrder{
		{ID: 1, DependsOnWorkOrderIDs: []int64{2}},
		{ID: 2, DependsOnWorkOrderIDs: []int64{1}},
	}
	_, err := topoSort(orders)
	require.ErrorIs(t, err, ErrCyclicDependency)
}
