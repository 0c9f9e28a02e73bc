package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func TestValidateWorkCenterShifts(t *testing.T) {
	t.Run("valid non-overlapping shifts", func(t *testing.T) {
		shifts := []domain.Shift{
			{DayOfWeek: 1, StartHour: 8, EndHour: 16},
			{DayOfWeek: 2, StartHour: 8, EndHour: 16},
		}
		require.NoError(t, ValidateWorkCenterShifts(shifts))
	})

	t.Run("end before start", func(t *testing.T) {
		shifts := []domain.Shift{{DayOfWeek: 1, StartHour: 16, EndHour: 8}}
		assert.Error(t, ValidateWorkCenterShifts(shifts))
	})

	t.Run("hour out of range", func(t *testing.T) {
		shifts := []domain.Shift{{DayOfWeek: 1, StartHour: -1, EndHour: 8}}
		assert.Error(t, ValidateWorkCenterShifts(shifts))
	})

	t.Run("overlapping shifts on the same day", func(t *testing.T) {
		shifts := []domain.Shift{
			{DayOfWeek: 1, StartHour: 8, EndHour: 16},
			{DayOfWeek: 1, StartHour: 12, EndHour: 20},
		}
		assert.Error(t, ValidateWorkCenterShifts(shifts))
	})

	t.Run("same hours but different days do not overlap", func(t *testing.T) {
		shifts := []domain.Shift{
			{DayOfWeek: 1, StartHour: 8, EndHour: 16},
			{DayOfWeek: 2, StartHour: 8, EndHour: 16},
		}
		require.NoError(t, ValidateWorkCenterShifts(shifts))
	})
}

func TestValidateMaintenanceWindows(t *testing.T) {
	start := func(s string) domain.Instant {
		i, err := domain.ParseInstant(s)
		require.NoError(t, err)
		return i
	}

	t.Run("valid non-overlapping windows", func(t *testing.T) {
		windows := []domain.Interval{
			{Start: start("2026-03-02T08:00:00Z"), End: start("2026-03-02T09:00:00Z")},
			{Start: start("2026-03-02T10:00:00Z"), End: start("2026-03-02T11:00:00Z")},
		}
		require.NoError(t, ValidateMaintenanceWindows(windows))
	})

	t.Run("end before start", func(t *testing.T) {
		windows := []domain.Interval{
			{Start: start("2026-03-02T09:00:00Z"), End: start("2026-03-02T08:00:00Z")},
		}
		assert.Error(t, ValidateMaintenanceWindows(windows))
	})

	t.Run("overlapping windows", func(t *testing.T) {
		windows := []domain.Interval{
			{Start: start("2026-03-02T08:00:00Z"), End: start("2026-03-02T10:00:00Z")},
			{Start: start("2026-03-02T09:00:00Z"), End: start("2026-03-02T11:00:00Z")},
		}
		assert.Error(t, ValidateMaintenanceWindows(windows))
	})
}
