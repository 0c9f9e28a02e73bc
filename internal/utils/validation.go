package utils

import (
	"fmt"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

// ValidateWorkCenterShifts checks that every shift's hours are sane and that
// no two shifts on the same day of the week overlap.
func ValidateWorkCenterShifts(shifts []domain.Shift) error {
	for i, shift := range shifts {
		if shift.DayOfWeek < 0 || shift.DayOfWeek > 6 {
			return fmt.Errorf("shift %d: day of week must be between 0 and 6", i)
		}
		if shift.StartHour < 0 || shift.StartHour > 24 || shift.EndHour < 0 || shift.EndHour > 24 {
			return fmt.Errorf("shift %d: hours must be between 0 and 24", i)
		}
		if shift.EndHour <= shift.StartHour {
			return fmt.Errorf("shift %d: end hour must be after start hour", i)
		}
	}

	for i := 0; i < len(shifts); i++ {
		for j := i + 1; j < len(shifts); j++ {
			if shifts[i].DayOfWeek != shifts[j].DayOfWeek {
				continue
			}
			if shifts[i].StartHour < shifts[j].EndHour && shifts[j].StartHour < shifts[i].EndHour {
				return fmt.Errorf("shift %d and shift %d overlap on day %d", i, j, shifts[i].DayOfWeek)
			}
		}
	}

	return nil
}

// ValidateMaintenanceWindows checks that a work center's maintenance
// intervals are individually well-formed and pairwise non-overlapping, the
// invariant the reflow engine assumes when it seeds blocked time from them.
func ValidateMaintenanceWindows(windows []domain.Interval) error {
	for i, w := range windows {
		if !w.Start.Before(w.End) {
			return fmt.Errorf("maintenance window %d: end must be after start", i)
		}
	}

	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if domain.Overlaps(windows[i], windows[j]) {
				return fmt.Errorf("maintenance window %d and %d overlap", i, j)
			}
		}
	}

	return nil
}
