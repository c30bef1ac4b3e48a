package scheduling

// Slot is one bookable start time, formatted for both machine use and
// display.
type Slot struct {
	Value string `json:"value"` // 24-hour "15:04"
	Label string `json:"label"` // 12-hour "03:04 PM"
}

// FreeSlots enumerates the start times at which a booking of the given
// service would fit, walking the day from opening time in SlotInterval
// steps. A candidate is skipped when it would run into closing time or
// overlap an existing appointment. The result is ascending by start time
// and recomputed fresh on every call.
//
// Candidates ending exactly at closing time are skipped here even though
// the validator would accept them; the slot grid stays conservative so a
// booking never brushes against close. The weekday and lead-time rules are
// the caller's concern.
func (c Config) FreeSlots(service string, existing []Interval) []Slot {
	duration := c.Duration(service)
	slots := []Slot{}

	for t := c.OpenTime; t < c.CloseTime; t = t.Add(c.SlotInterval) {
		end := t.Add(duration)
		if end >= c.CloseTime {
			continue
		}
		if overlapsAny(Interval{Start: t, End: end}, existing) {
			continue
		}
		slots = append(slots, Slot{Value: t.String(), Label: t.Label()})
	}
	return slots
}
