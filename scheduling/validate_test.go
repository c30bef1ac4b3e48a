package scheduling

import (
	"errors"
	"testing"
	"time"
)

// 2024-06-10 is a Monday.
var monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

// farPast makes the lead-time check pass for any 2024 candidate.
var farPast = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tod
}

func TestValidate_Success(t *testing.T) {
	cfg := DefaultConfig()
	cand := Candidate{Date: monday, Start: mustTime(t, "10:00"), Service: "Spray Tan"}

	end, err := cfg.Validate(cand, nil, farPast)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if end.String() != "10:45" {
		t.Fatalf("expected end 10:45, got %s", end)
	}
}

func TestValidate_ClosedDay(t *testing.T) {
	cfg := DefaultConfig()
	saturday := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
	cand := Candidate{Date: saturday, Start: mustTime(t, "10:00"), Service: "Extraction"}

	if _, err := cfg.Validate(cand, nil, farPast); !errors.Is(err, ErrClosedDay) {
		t.Fatalf("expected ErrClosedDay, got %v", err)
	}
}

func TestValidate_OutsideBusinessHours(t *testing.T) {
	cfg := DefaultConfig()

	// Hair Removal is 60 minutes: 16:30 would run until 17:30.
	cand := Candidate{Date: monday, Start: mustTime(t, "16:30"), Service: "Hair Removal"}
	if _, err := cfg.Validate(cand, nil, farPast); !errors.Is(err, ErrOutsideBusinessHours) {
		t.Fatalf("expected ErrOutsideBusinessHours, got %v", err)
	}

	cand = Candidate{Date: monday, Start: mustTime(t, "08:45"), Service: "Extraction"}
	if _, err := cfg.Validate(cand, nil, farPast); !errors.Is(err, ErrOutsideBusinessHours) {
		t.Fatalf("expected ErrOutsideBusinessHours for pre-open start, got %v", err)
	}
}

func TestValidate_EndExactlyAtCloseIsAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cand := Candidate{Date: monday, Start: mustTime(t, "16:30"), Service: "Extraction"}

	end, err := cfg.Validate(cand, nil, farPast)
	if err != nil {
		t.Fatalf("expected appointment ending at close to pass, got %v", err)
	}
	if end != cfg.CloseTime {
		t.Fatalf("expected end at close time, got %s", end)
	}
}

func TestValidate_Overlap(t *testing.T) {
	cfg := DefaultConfig()
	existing := []Interval{{Start: mustTime(t, "10:00"), End: mustTime(t, "10:45")}}
	cand := Candidate{Date: monday, Start: mustTime(t, "10:00"), Service: "Spray Tan"}

	if _, err := cfg.Validate(cand, existing, farPast); !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
}

func TestValidate_TouchingEndpointsDoNotOverlap(t *testing.T) {
	cfg := DefaultConfig()
	existing := []Interval{{Start: mustTime(t, "09:00"), End: mustTime(t, "09:30")}}
	cand := Candidate{Date: monday, Start: mustTime(t, "09:30"), Service: "Extraction"}

	if _, err := cfg.Validate(cand, existing, farPast); err != nil {
		t.Fatalf("expected back-to-back booking to pass, got %v", err)
	}
}

func TestValidate_InsufficientLeadTime(t *testing.T) {
	cfg := DefaultConfig()
	cand := Candidate{Date: monday, Start: mustTime(t, "10:00"), Service: "Extraction"}

	// Booking at midnight the same day: only 10 hours of notice.
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if _, err := cfg.Validate(cand, nil, now); !errors.Is(err, ErrInsufficientLeadTime) {
		t.Fatalf("expected ErrInsufficientLeadTime, got %v", err)
	}

	// Exactly 24 hours of notice is enough.
	now = time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)
	if _, err := cfg.Validate(cand, nil, now); err != nil {
		t.Fatalf("expected 24h notice to pass, got %v", err)
	}
}

func TestValidate_OverlapReportedBeforeLeadTime(t *testing.T) {
	cfg := DefaultConfig()
	existing := []Interval{{Start: mustTime(t, "10:00"), End: mustTime(t, "10:30")}}
	cand := Candidate{Date: monday, Start: mustTime(t, "10:00"), Service: "Extraction"}

	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if _, err := cfg.Validate(cand, existing, now); !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected overlap to take priority over lead time, got %v", err)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	cfg := DefaultConfig()
	existing := []Interval{{Start: mustTime(t, "11:00"), End: mustTime(t, "11:30")}}
	cand := Candidate{Date: monday, Start: mustTime(t, "11:15"), Service: "Extraction"}

	_, err1 := cfg.Validate(cand, existing, farPast)
	_, err2 := cfg.Validate(cand, existing, farPast)
	if !errors.Is(err1, ErrOverlap) || !errors.Is(err2, ErrOverlap) {
		t.Fatalf("expected same overlap result on repeat, got %v then %v", err1, err2)
	}
}

func TestValidate_EditExcludingOwnInterval(t *testing.T) {
	cfg := DefaultConfig()

	// An appointment re-validated at its own unchanged time: the store layer
	// filters its interval out of the existing list, so there is nothing to
	// collide with.
	others := []Interval{{Start: mustTime(t, "13:00"), End: mustTime(t, "13:30")}}
	cand := Candidate{Date: monday, Start: mustTime(t, "10:00"), Service: "Extraction"}

	if _, err := cfg.Validate(cand, others, farPast); err != nil {
		t.Fatalf("expected edit to its own slot to pass, got %v", err)
	}
}

func TestOverlapSymmetry(t *testing.T) {
	a := Interval{Start: 10 * 60, End: 10*60 + 45}
	b := Interval{Start: 10*60 + 30, End: 11 * 60}
	if a.Overlaps(b) != b.Overlaps(a) {
		t.Fatalf("overlap is not symmetric")
	}
	if !a.Overlaps(b) {
		t.Fatalf("expected 10:00-10:45 and 10:30-11:00 to overlap")
	}

	touching := Interval{Start: a.End, End: a.End + 30}
	if a.Overlaps(touching) || touching.Overlaps(a) {
		t.Fatalf("touching intervals must not overlap")
	}
}
