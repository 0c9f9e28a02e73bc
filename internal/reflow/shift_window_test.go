package reflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func instant(t *testing.T, s string) domain.Instant {
	t.Helper()
	i, err := domain.ParseInstant(s)
	require.NoError(t, err)
	return i
}

func weekdayShifts() []domain.Shift {
	var shifts []domain.Shift
	for _, dow := range []int{1, 2, 3, 4, 5} {
		shifts = append(shifts, domain.Shift{DayOfWeek: dow, StartHour: 8, EndHour: 17})
	}
	return shifts
}

func TestNextShiftWindowSameDay(t *testing.T) {
	cursor := instant(t, "2026-03-02T10:00:00Z") // Monday
	w, err := nextShiftWindow(cursor, weekdayShifts())
	require.NoError(t, err)
	require.Equal(t, cursor, w.Start)
	require.Equal(t, instant(t, "2026-03-02T17:00:00Z"), w.End)
}

func TestNextShiftWindowAdvancesToNextDay(t *testing.T) {
	cursor := instant(t, "2026-03-02T18:00:00Z") // Monday, after shift end
	w, err := nextShiftWindow(cursor, weekdayShifts())
	require.NoError(t, err)
	require.Equal(t, instant(t, "2026-03-03T08:00:00Z"), w.Start)
	require.Equal(t, instant(t, "2026-03-03T17:00:00Z"), w.End)
}

func TestNextShiftWindowSkipsWeekend(t *testing.T) {
	cursor := instant(t, "2026-03-06T18:00:00Z") // Friday, after shift end
	w, err := nextShiftWindow(cursor, weekdayShifts())
	require.NoError(t, err)
	require.Equal(t, instant(t, "2026-03-09T08:00:00Z"), w.Start) // Monday
}

func TestNextShiftWindowFailsWithinHorizon(t *testing.T) {
	cursor := instant(t, "2026-03-02T08:00:00Z")
	_, err := nextShiftWindow(cursor, nil)
	require.ErrorIs(t, err, ErrNoShiftWindowInHorizon)
}
