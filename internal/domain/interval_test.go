package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustInstant(t *testing.T, s string) Instant {
	t.Helper()
	i, err := ParseInstant(s)
	require.NoError(t, err)
	return i
}

func TestOverlaps(t *testing.T) {
	a := Interval{Start: mustInstant(t, "2026-03-02T08:00:00Z"), End: mustInstant(t, "2026-03-02T10:00:00Z")}
	b := Interval{Start: mustInstant(t, "2026-03-02T09:00:00Z"), End: mustInstant(t, "2026-03-02T11:00:00Z")}
	require.True(t, Overlaps(a, b))

	c := Interval{Start: mustInstant(t, "2026-03-02T10:00:00Z"), End: mustInstant(t, "2026-03-02T12:00:00Z")}
	require.False(t, Overlaps(a, c), "half-open intervals touching at the boundary do not overlap")
}

func TestSortIntervals(t *testing.T) {
	in := []Interval{
		{Start: mustInstant(t, "2026-03-02T12:00:00Z"), End: mustInstant(t, "2026-03-02T13:00:00Z")},
		{Start: mustInstant(t, "2026-03-02T08:00:00Z"), End: mustInstant(t, "2026-03-02T09:00:00Z")},
	}
	out := SortIntervals(in)
	require.True(t, out[0].Start.Before(out[1].Start))
	// the input slice itself is untouched
	require.True(t, in[0].Start.After(in[1].Start))
}

func TestPushOutOfBlocked(t *testing.T) {
	blocked := []Interval{
		{Start: mustInstant(t, "2026-03-02T08:00:00Z"), End: mustInstant(t, "2026-03-02T09:00:00Z")},
	}

	inside := mustInstant(t, "2026-03-02T08:30:00Z")
	require.Equal(t, mustInstant(t, "2026-03-02T09:00:00Z"), PushOutOfBlocked(inside, blocked))

	outside := mustInstant(t, "2026-03-02T09:00:00Z")
	require.Equal(t, outside, PushOutOfBlocked(outside, blocked), "half-open block end is not itself contained")
}
