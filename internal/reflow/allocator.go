package reflow

import "github.com/Purvachakravarti/NaologicReflowProject/internal/domain"

// allocate threads durationMinutes of work through the shift table minus
// blocked, starting no earlier than start. It returns the instant real work
// begins and the instant immediately after the last working minute. The
// elapsed span may include non-working time (shift gaps, blocks) — only
// one span is returned per call, never a list of working sub-intervals.
func allocate(start domain.Instant, durationMinutes int, shifts []domain.Shift, blocked []domain.Interval) (domain.Instant, domain.Instant, error) {
	if durationMinutes == 0 {
		return start, start, nil
	}

	sortedBlocked := domain.SortIntervals(blocked)

	cursor := domain.PushOutOfBlocked(start, sortedBlocked)
	remaining := durationMinutes

	var scheduledStart domain.Instant
	haveScheduledStart := false

	for remaining > 0 {
		window, err := nextShiftWindow(cursor, shifts)
		if err != nil {
			return domain.Instant{}, domain.Instant{}, err
		}
		ws, we := window.Start, window.End

		if cursor.Before(ws) {
			cursor = ws
			cursor = domain.PushOutOfBlocked(cursor, sortedBlocked)
			if cursor.Before(ws) {
				cursor = ws
			}
		}

		if !cursor.Before(we) {
			cursor = we.AddMinutes(1)
			continue
		}

		blockFound := false
		var earliestBlock domain.Interval
		for _, b := range sortedBlocked {
			if b.End.After(cursor) && b.Start.Before(we) {
				if !blockFound || b.Start.Before(earliestBlock.Start) {
					earliestBlock = b
					blockFound = true
				}
			}
		}

		// A block that starts at or before the cursor still covers it (e.g. an
		// adjacent block reached by a single push-out): jump past it.
		if blockFound && !earliestBlock.Start.After(cursor) {
			cursor = earliestBlock.End
			continue
		}

		if !haveScheduledStart {
			scheduledStart = cursor
			haveScheduledStart = true
		}

		var freeEnd domain.Instant
		if blockFound && earliestBlock.Start.After(cursor) {
			freeEnd = domain.MinInstant(we, earliestBlock.Start)
		} else {
			freeEnd = we
		}

		if !freeEnd.After(cursor) {
			if blockFound && earliestBlock.Start.Equal(cursor) {
				cursor = earliestBlock.End
			} else {
				cursor = we.AddMinutes(1)
			}
			continue
		}

		free := cursor.MinutesUntil(freeEnd)
		if free <= 0 {
			cursor = freeEnd.AddMinutes(1)
			continue
		}

		used := remaining
		if free < used {
			used = free
		}
		remaining -= used
		cursor = cursor.AddMinutes(used)
		cursor = domain.PushOutOfBlocked(cursor, sortedBlocked)
	}

	return scheduledStart, cursor, nil
}
