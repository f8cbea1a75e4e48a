package driver

import (
	"testing"
	"time"

	"github.com/fireant-io/tap-fireant/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFirstWindowCapped(t *testing.T) {
	today := date("2024-06-01")

	// a recent start is capped at today
	w := firstWindow(date("2024-05-28"), today)
	assert.Equal(t, date("2024-05-28"), w.Start)
	assert.Equal(t, today, w.End)

	// an old start is capped at the stride
	w = firstWindow(date("2023-01-01"), today)
	assert.Equal(t, date("2023-01-01"), w.Start)
	assert.Equal(t, date("2023-01-01").AddDate(0, 0, constants.WindowDays), w.End)
}

func TestNextWindowContiguous(t *testing.T) {
	today := date("2024-06-01")

	prev := window{Start: date("2023-01-01"), End: date("2023-04-01")}
	next, more := nextWindow(prev, today)
	require.True(t, more)
	assert.Equal(t, prev.End.AddDate(0, 0, 1), next.Start, "no day skipped, no day repeated")
	assert.Equal(t, prev.End.AddDate(0, 0, constants.WindowDays), next.End)

	// a window reaching today terminates pagination
	_, more = nextWindow(window{Start: date("2024-05-01"), End: today}, today)
	assert.False(t, more)

	// overshooting today is also terminal
	_, more = nextWindow(window{Start: date("2024-05-01"), End: today.AddDate(0, 0, 30)}, today)
	assert.False(t, more)
}

// The union of all windows must cover every day from start to today with
// no gap and no overlap, in at most ceil(days/stride) steps.
func TestWindowCoverageAndTermination(t *testing.T) {
	starts := []string{"2023-01-01", "2024-05-25", "2024-05-31", "2024-06-01"}
	today := date("2024-06-01")

	for _, s := range starts {
		start := date(s)
		w := firstWindow(start, today)

		covered := map[string]int{}
		steps := 0
		for {
			steps++
			require.False(t, w.End.After(today), "window must not reach past today")
			require.False(t, w.End.Before(w.Start), "window must not be inverted")
			for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
				covered[d.Format(constants.DateFormat)]++
			}

			next, more := nextWindow(w, today)
			if !more {
				break
			}
			w = next
		}

		totalDays := int(today.Sub(start).Hours()/24) + 1
		bound := (totalDays + constants.WindowDays - 1) / constants.WindowDays
		assert.LessOrEqual(t, steps, bound+1, "start %s", s)

		assert.Equal(t, totalDays, len(covered), "start %s: every day covered exactly once", s)
		for d, count := range covered {
			require.Equal(t, 1, count, "day %s requested more than once", d)
		}
	}
}
