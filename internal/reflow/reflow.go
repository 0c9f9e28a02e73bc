// Package reflow implements a deterministic, synchronous production
// schedule reflow engine: given work centers (shifts + maintenance
// windows) and work orders (dependencies, durations), it recomputes each
// order's start/end so the result respects dependency precedence,
// single-occupancy capacity per center, shift-window availability, and
// maintenance blackouts.
package reflow

import (
	"fmt"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

// Reflow recomputes start/end times for the given work orders. Input work
// orders are deep-copied; the copies are mutated in place and returned.
// Work centers are read-only. Reflow is synchronous, has no cancellation
// surface, and fails fast at the first detectable error with no partial
// result.
func Reflow(input domain.ReflowInput) (domain.ReflowResult, error) {
	wcByID := make(map[int64]domain.WorkCenter, len(input.WorkCenters))
	for _, wc := range input.WorkCenters {
		wcByID[wc.ID] = wc
	}

	woByID := make(map[int64]*domain.WorkOrder, len(input.WorkOrders))
	for i := range input.WorkOrders {
		clone := input.WorkOrders[i].Clone()
		woByID[clone.ID] = clone
	}

	topoIDs, err := topoSort(input.WorkOrders)
	if err != nil {
		return domain.ReflowResult{}, err
	}

	centerBlocked := make(map[int64][]domain.Interval, len(input.WorkCenters))
	for _, wc := range input.WorkCenters {
		centerBlocked[wc.ID] = domain.SortIntervals(wc.MaintenanceWindows)
	}

	for _, id := range topoIDs {
		wo := woByID[id]
		if !wo.IsMaintenance {
			continue
		}
		centerBlocked[wo.WorkCenterID] = domain.SortIntervals(append(centerBlocked[wo.WorkCenterID], domain.Interval{
			Start: wo.Start,
			End:   wo.End,
		}))
	}

	scheduled := make(map[int64]bool, len(topoIDs))
	var changes []domain.ChangeRecord
	totalDelay := 0

	for _, id := range topoIDs {
		wo := woByID[id]

		wc, ok := wcByID[wo.WorkCenterID]
		if !ok {
			return domain.ReflowResult{}, fmt.Errorf("%w: work order %d references center %d", ErrUnknownWorkCenter, wo.ID, wo.WorkCenterID)
		}

		if wo.IsMaintenance {
			scheduled[id] = true
			continue
		}

		earliest := wo.Start
		for _, depID := range wo.DependsOnWorkOrderIDs {
			parent, ok := woByID[depID]
			if !ok || !scheduled[depID] {
				return domain.ReflowResult{}, fmt.Errorf("%w: work order %d processed before parent %d was scheduled", ErrInternalOrderingViolation, wo.ID, depID)
			}
			earliest = domain.MaxInstant(earliest, parent.End)
		}

		total := wo.TotalMinutes()

		newStart, newEnd, err := allocate(earliest, total, wc.Shifts, centerBlocked[wc.ID])
		if err != nil {
			return domain.ReflowResult{}, err
		}

		oldStart, oldEnd := wo.Start, wo.End
		wo.Start = newStart
		wo.End = newEnd

		centerBlocked[wc.ID] = domain.SortIntervals(append(centerBlocked[wc.ID], domain.Interval{
			Start: newStart,
			End:   newEnd,
		}))

		scheduled[id] = true

		if !newStart.Equal(oldStart) || !newEnd.Equal(oldEnd) {
			delta := oldEnd.MinutesUntil(newEnd)
			if delta > 0 {
				totalDelay += delta
			}
			changes = append(changes, domain.ChangeRecord{
				WorkOrderID:     wo.ID,
				WorkOrderNumber: wo.WorkOrderNumber,
				Reason:          domain.ChangeReason,
				OldStart:        oldStart,
				NewStart:        newStart,
				OldEnd:          oldEnd,
				NewEnd:          newEnd,
				DeltaMinutes:    delta,
			})
		}
	}

	updated := make([]domain.WorkOrder, len(topoIDs))
	for i, id := range topoIDs {
		updated[i] = *woByID[id]
	}

	return domain.ReflowResult{
		UpdatedWorkOrders: updated,
		Changes:           changes,
		Explanation:       "orders were recomputed in dependency order against each work center's shifts, maintenance windows, and already-placed orders",
		Metrics: domain.ReflowMetrics{
			MovedCount:        len(changes),
			TotalDelayMinutes: totalDelay,
		},
	}, nil
}
