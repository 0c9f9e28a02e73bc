package reflow

import (
	"fmt"
	"sort"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

// ShiftSearchHorizonDays bounds how far forward the resolver will look for
// a usable shift window before giving up. Guards against centers with
// empty shift tables or misconfigured weekly coverage.
const ShiftSearchHorizonDays = 14

// nextShiftWindow returns the next usable shift window at or after cursor.
func nextShiftWindow(cursor domain.Instant, shifts []domain.Shift) (domain.Interval, error) {
	for dayOffset := 0; dayOffset < ShiftSearchHorizonDays; dayOffset++ {
		day := cursor.StartOfDay().AddMinutes(dayOffset * 24 * 60)
		dow := day.WeekdayIndex()

		todays := shiftsOnDay(shifts, dow)
		if len(todays) == 0 {
			continue
		}

		if dayOffset == 0 {
			for _, sh := range todays {
				shiftEnd := day.AddMinutes(sh.EndHour * 60)
				if shiftEnd.After(cursor) {
					shiftStart := day.AddMinutes(sh.StartHour * 60)
					return domain.Interval{
						Start: domain.MaxInstant(cursor, shiftStart),
						End:   shiftEnd,
					}, nil
				}
			}
			continue
		}

		first := todays[0]
		return domain.Interval{
			Start: day.AddMinutes(first.StartHour * 60),
			End:   day.AddMinutes(first.EndHour * 60),
		}, nil
	}

	return domain.Interval{}, fmt.Errorf("%w: no shift window found within %d days of %s", ErrNoShiftWindowInHorizon, ShiftSearchHorizonDays, cursor)
}

// shiftsOnDay returns the shifts applicable to dow, sorted by start hour.
func shiftsOnDay(shifts []domain.Shift, dow int) []domain.Shift {
	var out []domain.Shift
	for _, sh := range shifts {
		if sh.DayOfWeek == dow {
			out = append(out, sh)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartHour < out[j].StartHour })
	return out
}
