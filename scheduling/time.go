package scheduling

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "15:04" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// String formats the time as 24-hour "15:04".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Label formats the time as a 12-hour display string, e.g. "03:15 PM".
func (t TimeOfDay) Label() string {
	ref := time.Date(0, 1, 1, int(t)/60, int(t)%60, 0, 0, time.UTC)
	return ref.Format("03:04 PM")
}

// Add returns the time shifted forward by the given number of minutes.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// At anchors the time of day on a calendar date, keeping the date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, int(t)/60, int(t)%60, 0, 0, date.Location())
}

// Interval is a half-open [Start, End) span within a single day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (one ends exactly when the other starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

func overlapsAny(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}
