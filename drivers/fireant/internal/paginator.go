package driver

import (
	"time"

	"github.com/fireant-io/tap-fireant/constants"
)

// window is the continuation cursor of date-windowed streams: one
// inclusive [Start, End] day range. Windows are contiguous at day
// granularity and never reach past today, so no day is requested twice and
// none is skipped.
type window struct {
	Start time.Time
	End   time.Time
}

// day normalizes a timestamp to midnight, the granularity the API windows
// operate at.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minDay(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// firstWindow opens the unit's window at start, capped at the stride and
// at today.
func firstWindow(start, today time.Time) window {
	start = day(start)
	return window{
		Start: start,
		End:   minDay(start.AddDate(0, 0, constants.WindowDays), day(today)),
	}
}

// nextWindow slides past prev. Termination is guaranteed: the start
// strictly advances and is capped at today.
func nextWindow(prev window, today time.Time) (window, bool) {
	today = day(today)
	if !prev.End.Before(today) {
		return window{}, false
	}

	start := prev.End.AddDate(0, 0, 1)
	return window{
		Start: start,
		End:   minDay(prev.End.AddDate(0, 0, constants.WindowDays), today),
	}, true
}
