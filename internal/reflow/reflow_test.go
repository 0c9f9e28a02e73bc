package reflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func weekdayCenter(id int64) domain.WorkCenter {
	return domain.WorkCenter{ID: id, Name: "wc", Shifts: weekdayShifts()}
}

func TestReflowDelayCascade(t *testing.T) {
	wc := weekdayCenter(1)
	input := domain.ReflowInput{
		WorkCenters: []domain.WorkCenter{wc},
		WorkOrders: []domain.WorkOrder{
			{ID: 1, WorkOrderNumber: "A", WorkCenterID: 1, Start: instant(t, "2026-03-02T08:00:00Z"), End: instant(t, "2026-03-02T10:00:00Z"), DurationMinutes: 480},
			{ID: 2, WorkOrderNumber: "B", WorkCenterID: 1, Start: instant(t, "2026-03-02T08:00:00Z"), End: instant(t, "2026-03-02T10:00:00Z"), DurationMinutes: 120, DependsOnWorkOrderIDs: []int64{1}},
			{ID: 3, WorkOrderNumber: "C", WorkCenterID: 1, Start: instant(t, "2026-03-02T08:00:00Z"), End: instant(t, "2026-03-02T10:00:00Z"), DurationMinutes: 120, DependsOnWorkOrderIDs: []int64{2}},
		},
	}

	result, err := Reflow(input)
	require.NoError(t, err)

	byID := map[int64]domain.WorkOrder{}
	for _, wo := range result.UpdatedWorkOrders {
		byID[wo.ID] = wo
	}

	require.Equal(t, instant(t, "2026-03-02T08:00:00Z"), byID[1].Start)
	require.Equal(t, instant(t, "2026-03-02T16:00:00Z"), byID[1].End)

	require.Equal(t, instant(t, "2026-03-02T16:00:00Z"), byID[2].Start)
	require.Equal(t, instant(t, "2026-03-03T09:00:00Z"), byID[2].End)

	require.Equal(t, instant(t, "2026-03-03T09:00:00Z"), byID[3].Start)
	require.Equal(t, instant(t, "2026-03-03T11:00:00Z"), byID[3].End)

	require.True(t, !byID[2].Start.Before(byID[1].End))
	require.True(t, !byID[3].Start.Before(byID[2].End))

	require.NoError(t, ValidateNoWorkCenterOverlaps(result.UpdatedWorkOrders))
	require.Equal(t, 3, result.Metrics.MovedCount) // A's end moved (10:00 -> 16:00), and B and C both moved
}

func TestReflowShiftSpanning(t *testing.T) {
	wc := weekdayCenter(2)
	input := domain.ReflowInput{
		WorkCenters: []domain.WorkCenter{wc},
		WorkOrders: []domain.WorkOrder{
			{ID: 1, WorkOrderNumber: "S1", WorkCenterID: 2, Start: instant(t, "2026-03-02T16:00:00Z"), End: instant(t, "2026-03-02T18:00:00Z"), DurationMinutes: 120},
		},
	}

	result, err := Reflow(input)
	require.NoError(t, err)
	require.Len(t, result.UpdatedWorkOrders, 1)
	wo := result.UpdatedWorkOrders[0]
	require.Equal(t, instant(t, "2026-03-02T16:00:00Z"), wo.Start)
	require.Equal(t, instant(t, "2026-03-03T09:00:00Z"), wo.End)
}

func TestReflowMaintenanceConflictAndPinning(t *testing.T) {
	wc := weekdayCenter(1)
	wc.MaintenanceWindows = []domain.Interval{
		{Start: instant(t, "2026-03-03T10:00:00Z"), End: instant(t, "2026-03-03T13:00:00Z"), Reason: "PM"},
	}

	m1Start := instant(t, "2026-03-03T08:30:00Z")
	m1End := instant(t, "2026-03-03T09:30:00Z")

	input := domain.ReflowInput{
		WorkCenters: []domain.WorkCenter{wc},
		WorkOrders: []domain.WorkOrder{
			{ID: 1, WorkOrderNumber: "M1", WorkCenterID: 1, Start: m1Start, End: m1End, DurationMinutes: 60, IsMaintenance: true},
			{ID: 2, WorkOrderNumber: "P1", WorkCenterID: 1, Start: instant(t, "2026-03-03T09:30:00Z"), End: instant(t, "2026-03-03T12:30:00Z"), DurationMinutes: 180},
		},
	}

	result, err := Reflow(input)
	require.NoError(t, err)

	byID := map[int64]domain.WorkOrder{}
	for _, wo := range result.UpdatedWorkOrders {
		byID[wo.ID] = wo
	}

	require.Equal(t, m1Start, byID[1].Start, "maintenance orders are never rescheduled")
	require.Equal(t, m1End, byID[1].End)

	require.Equal(t, instant(t, "2026-03-03T09:30:00Z"), byID[2].Start)
	require.Equal(t, instant(t, "2026-03-03T15:30:00Z"), byID[2].End)

	require.NoError(t, ValidateNoWorkCenterOverlaps(result.UpdatedWorkOrders))
	require.NoError(t, ValidateMaintenanceRespected(result.UpdatedWorkOrders, input.WorkCenters))
}

func TestReflowUnknownDependency(t *testing.T) {
	input := domain.ReflowInput{
		WorkCenters: []domain.WorkCenter{weekdayCenter(1)},
		WorkOrders: []domain.WorkOrder{
			{ID: 1, WorkCenterID: 1, DurationMinutes: 60, DependsOnWorkOrderIDs: []int64{999}},
		},
	}
	_, err := Reflow(input)
	require.ErrorIs(t, err, ErrUnknownDependency)
}

func TestReflowCyclicDependency(t *testing.T) {
	input := domain.ReflowInput{
		WorkCenters: []domain.WorkCenter{weekdayCenter(1)},
		WorkOrders: []domain.WorkOrder{
			{ID: 1, WorkCenterID: 1, DurationMinutes: 60, DependsOnWorkOrderIDs: []int64{2}},
			{ID: 2, WorkCenterID: 1, DurationMinutes: 60, DependsOnWorkOrderIDs: []int64{1}},
		},
	}
	_, err := Reflow(input)
	require.ErrorIs(t, err, ErrCyclicDependency)
}

func TestReflowUnknownWorkCenter(t *testing.T) {
	input := domain.ReflowInput{
		WorkOrders: []domain.WorkOrder{
			{ID: 1, WorkCenterID: 99, DurationMinutes: 60},
		},
	}
	_, err := Reflow(input)
	require.ErrorIs(t, err, ErrUnknownWorkCenter)
}

func TestReflowZeroDuration(t *testing.T) {
	wc := weekdayCenter(1)
	wc.MaintenanceWindows = []domain.Interval{
		{Start: instant(t, "2026-03-02T08:00:00Z"), End: instant(t, "2026-03-02T08:30:00Z")},
	}
	start := instant(t, "2026-03-02T08:00:00Z")
	input := domain.ReflowInput{
		WorkCenters: []domain.WorkCenter{wc},
		WorkOrders: []domain.WorkOrder{
			{ID: 1, WorkCenterID: 1, Start: start, End: start, DurationMinutes: 0},
		},
	}

	result, err := Reflow(input)
	require.NoError(t, err)
	wo := result.UpdatedWorkOrders[0]
	require.Equal(t, start, wo.Start, "the zero-duration short circuit returns startISO without consulting blocked intervals")
	require.Equal(t, wo.Start, wo.End)
	require.Empty(t, result.Changes, "unchanged start/end is not recorded as a change")
}

func TestReflowIdempotentOnRestart(t *testing.T) {
	wc := weekdayCenter(1)
	input := domain.ReflowInput{
		WorkCenters: []domain.WorkCenter{wc},
		WorkOrders: []domain.WorkOrder{
			{ID: 1, WorkCenterID: 1, Start: instant(t, "2026-03-02T08:00:00Z"), End: instant(t, "2026-03-02T10:00:00Z"), DurationMinutes: 480},
			{ID: 2, WorkCenterID: 1, Start: instant(t, "2026-03-02T08:00:00Z"), End: instant(t, "2026-03-02T10:00:00Z"), DurationMinutes: 120, DependsOnWorkOrderIDs: []int64{1}},
		},
	}

	first, err := Reflow(input)
	require.NoError(t, err)

	second, err := Reflow(domain.ReflowInput{WorkCenters: input.WorkCenters, WorkOrders: first.UpdatedWorkOrders})
	require.NoError(t, err)

	require.Empty(t, second.Changes)
	require.Equal(t, 0, second.Metrics.MovedCount)
}

func TestReflowDoesNotMutateCallerInput(t *testing.T) {
	wo := domain.WorkOrder{ID: 1, WorkCenterID: 1, Start: instant(t, "2026-03-02T08:00:00Z"), End: instant(t, "2026-03-02T10:00:00Z"), DurationMinutes: 480, DependsOnWorkOrderIDs: []int64{}}
	input := domain.ReflowInput{
		WorkCenters: []domain.WorkCenter{weekdayCenter(1)},
		WorkOrders:  []domain.WorkOrder{wo},
	}

	_, err := Reflow(input)
	require.NoError(t, err)

	require.Equal(t, instant(t, "2026-03-02T08:00:00Z"), input.WorkOrders[0].Start)
	require.Equal(t, instant(t, "2026-03-02T10:00:00Z"), input.WorkOrders[0].End)
}
