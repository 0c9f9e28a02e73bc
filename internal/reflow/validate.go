package reflow

import (
	"fmt"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

// ValidateNoWorkCenterOverlaps asserts that, grouped by work center and
// sorted by start, no two orders overlap.
func ValidateNoWorkCenterOverlaps(orders []domain.WorkOrder) error {
	byCenter := make(map[int64][]domain.WorkOrder)
	for _, wo := range orders {
		byCenter[wo.WorkCenterID] = append(byCenter[wo.WorkCenterID], wo)
	}

	for centerID, centerOrders := range byCenter {
		sorted := make([]domain.WorkOrder, len(centerOrders))
		copy(sorted, centerOrders)
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				if sorted[j].Start.Before(sorted[i].Start) {
					sorted[i], sorted[j] = sorted[j], sorted[i]
				}
			}
		}

		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if domain.Overlaps(domain.Interval{Start: prev.Start, End: prev.End}, domain.Interval{Start: cur.Start, End: cur.End}) {
				return fmt.Errorf("reflow: work orders %d and %d overlap on center %d", prev.ID, cur.ID, centerID)
			}
		}
	}

	return nil
}

// ValidateMaintenanceRespected asserts that no non-maintenance order's
// start lies in [mStart, mEnd) nor its end lies in (mStart, mEnd], for any
// maintenance window on its center. This is weaker than "no working minute
// intersects maintenance" — the single-span representation can enclose a
// pause over maintenance, and that is allowed.
func ValidateMaintenanceRespected(orders []domain.WorkOrder, centers []domain.WorkCenter) error {
	windowsByCenter := make(map[int64][]domain.Interval, len(centers))
	for _, wc := range centers {
		windowsByCenter[wc.ID] = wc.MaintenanceWindows
	}

	for _, wo := range orders {
		if wo.IsMaintenance {
			continue
		}
		for _, m := range windowsByCenter[wo.WorkCenterID] {
			startInside := !wo.Start.Before(m.Start) && wo.Start.Before(m.End)
			endInside := wo.End.After(m.Start) && !wo.End.After(m.End)
			if startInside || endInside {
				return fmt.Errorf("reflow: work order %d violates maintenance window on center %d", wo.ID, wo.WorkCenterID)
			}
		}
	}

	return nil
}
