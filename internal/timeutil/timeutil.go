package timeutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mmatos/tabula/internal/domain"
)

// DateLayout is the only calendar-date format accepted in column
// parameters and emitted by exports.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", domain.ErrInvalidValue, s)
	}
	return t, nil
}

// Truncate drops the time-of-day portion, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateBetween returns a uniformly distributed date in [start, end],
// both bounds inclusive. Bounds are normalized to midnight UTC first.
func DateBetween(rng *rand.Rand, start, end time.Time) time.Time {
	start, end = Truncate(start), Truncate(end)
	if end.Before(start) {
		start, end = end, start
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.Intn(days+1))
}

// YearsAgo returns the date n years before now, truncated to a calendar day.
func YearsAgo(n int) time.Time {
	return Truncate(time.Now().AddDate(-n, 0, 0))
}
