package controllers

import (
	"testing"
	"time"
)

func TestDayLockKey_StablePerDate(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	if dayLockKey(day) != dayLockKey(day) {
		t.Fatalf("lock key must be deterministic for a date")
	}

	// Two bookings on the same day must contend for the same lock no
	// matter what time of day they carry.
	afternoon := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	if dayLockKey(day) != dayLockKey(afternoon) {
		t.Fatalf("time of day must not change the lock key")
	}

	nextDay := day.AddDate(0, 0, 1)
	if dayLockKey(day) == dayLockKey(nextDay) {
		t.Fatalf("different dates must map to different lock keys")
	}
}

func TestParseExcludeID(t *testing.T) {
	if got := parseExcludeID(""); got != 0 {
		t.Fatalf("empty input: expected 0, got %d", got)
	}
	if got := parseExcludeID("junk"); got != 0 {
		t.Fatalf("malformed input: expected 0, got %d", got)
	}
	if got := parseExcludeID("-3"); got != 0 {
		t.Fatalf("negative input: expected 0, got %d", got)
	}
	if got := parseExcludeID("42"); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	// Values past 32 bits cannot be appointment IDs; they are ignored
	// instead of being truncated into a different ID.
	if got := parseExcludeID("4294967296"); got != 0 {
		t.Fatalf("overflowing input: expected 0, got %d", got)
	}
}

func TestParseCandidate(t *testing.T) {
	cand, err := parseCandidate(appointmentInput{
		Service:   "Spray Tan",
		Date:      "2024-06-10",
		StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cand.Service != "Spray Tan" || cand.Start.String() != "10:00" {
		t.Fatalf("unexpected candidate: %+v", cand)
	}
	if cand.Date.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %s", cand.Date.Weekday())
	}

	if _, err := parseCandidate(appointmentInput{Date: "06/10/2024", StartTime: "10:00"}); err == nil {
		t.Fatalf("expected error for bad date format")
	}
	if _, err := parseCandidate(appointmentInput{Date: "2024-06-10", StartTime: "10am"}); err == nil {
		t.Fatalf("expected error for bad time format")
	}
}
