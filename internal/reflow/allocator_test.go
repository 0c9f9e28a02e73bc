package reflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func TestAllocateZeroDuration(t *testing.T) {
	start := instant(t, "2026-03-02T08:00:00Z")
	s, e, err := allocate(start, 0, weekdayShifts(), nil)
	require.NoError(t, err)
	require.Equal(t, start, s)
	require.Equal(t, start, e)
}

func TestAllocateFitsWithinSingleShift(t *testing.T) {
	start := instant(t, "2026-03-02T08:00:00Z")
	s, e, err := allocate(start, 480, weekdayShifts(), nil)
	require.NoError(t, err)
	require.Equal(t, start, s)
	require.Equal(t, instant(t, "2026-03-02T16:00:00Z"), e)
}

func TestAllocateSpansShiftBoundary(t *testing.T) {
	start := instant(t, "2026-03-02T16:00:00Z")
	s, e, err := allocate(start, 120, weekdayShifts(), nil)
	require.NoError(t, err)
	require.Equal(t, start, s)
	require.Equal(t, instant(t, "2026-03-03T09:00:00Z"), e)
}

func TestAllocatePausesOverMaintenanceAndResumes(t *testing.T) {
	start := instant(t, "2026-03-03T09:30:00Z") // Tuesday
	blocked := []domain.Interval{
		{Start: instant(t, "2026-03-03T10:00:00Z"), End: instant(t, "2026-03-03T13:00:00Z"), Reason: "maintenance"},
	}
	s, e, err := allocate(start, 180, weekdayShifts(), blocked)
	require.NoError(t, err)
	require.Equal(t, start, s)
	require.Equal(t, instant(t, "2026-03-03T15:30:00Z"), e)
}

func TestAllocatePushesStartOutOfLeadingBlock(t *testing.T) {
	start := instant(t, "2026-03-02T08:00:00Z")
	blocked := []domain.Interval{
		{Start: instant(t, "2026-03-02T08:00:00Z"), End: instant(t, "2026-03-02T08:30:00Z")},
	}
	s, e, err := allocate(start, 60, weekdayShifts(), blocked)
	require.NoError(t, err)
	require.Equal(t, instant(t, "2026-03-02T08:30:00Z"), s)
	require.Equal(t, instant(t, "2026-03-02T09:30:00Z"), e)
}

func TestAllocateFailsWithNoShifts(t *testing.T) {
	start := instant(t, "2026-03-02T08:00:00Z")
	_, _, err := allocate(start, 60, nil, nil)
	require.ErrorIs(t, err, ErrNoShiftWindowInHorizon)
}
