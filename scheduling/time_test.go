package scheduling

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("13:15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tod.String() != "13:15" {
		t.Fatalf("expected 13:15, got %s", tod)
	}
	if tod.Label() != "01:15 PM" {
		t.Fatalf("expected label 01:15 PM, got %s", tod.Label())
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
	if _, err := ParseTimeOfDay("nope"); err == nil {
		t.Fatalf("expected error for junk input")
	}
}

func TestTimeOfDayAt(t *testing.T) {
	tod := TimeOfDay(9*60 + 30)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	at := tod.At(date)
	want := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Fatalf("expected %s, got %s", want, at)
	}
}
