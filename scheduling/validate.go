package scheduling

import (
	"errors"
	"time"
)

var (
	ErrClosedDay            = errors.New("business is closed on that day")
	ErrOutsideBusinessHours = errors.New("appointment is outside business hours")
	ErrOverlap              = errors.New("appointment overlaps an existing appointment")
	ErrInsufficientLeadTime = errors.New("appointment start is too soon")
)

// Candidate is a requested booking before it has been accepted.
type Candidate struct {
	Date    time.Time
	Start   TimeOfDay
	Service string
}

// Validate checks a candidate booking against the business rules and the
// existing appointments on the same date. The caller must already have
// filtered out the candidate's own record when re-validating an edit.
// On success it returns the derived end time.
//
// Checks run in a fixed order: closed day, business hours, overlap, lead
// time. Day and hours failures short-circuit; when a slot both overlaps and
// is too soon, the overlap error is the one reported. An appointment ending
// exactly at closing time is allowed.
//
// now is injected so the lead-time check stays deterministic under test.
func (c Config) Validate(cand Candidate, existing []Interval, now time.Time) (TimeOfDay, error) {
	end := cand.Start.Add(c.Duration(cand.Service))

	if !c.IsOpenOn(cand.Date.Weekday()) {
		return 0, ErrClosedDay
	}
	if cand.Start < c.OpenTime || end > c.CloseTime {
		return 0, ErrOutsideBusinessHours
	}
	if overlapsAny(Interval{Start: cand.Start, End: end}, existing) {
		return 0, ErrOverlap
	}
	if cand.Start.At(cand.Date).Before(now.Add(c.LeadTime)) {
		return 0, ErrInsufficientLeadTime
	}
	return end, nil
}
