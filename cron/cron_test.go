package cron

import (
	"testing"
	"time"
)

func TestReminderWindow(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	date, from, to, ok := reminderWindow(now)
	if !ok {
		t.Fatalf("expected a valid window at midday")
	}
	if date != "2024-06-10" {
		t.Fatalf("expected date 2024-06-10, got %s", date)
	}
	if from != "12:55" || to != "13:05" {
		t.Fatalf("expected window 12:55-13:05, got %s-%s", from, to)
	}
}

func TestReminderWindow_StraddlesMidnight(t *testing.T) {
	// 23:00 + 55m is still today, +65m is tomorrow: no usable window.
	now := time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC)
	if _, _, _, ok := reminderWindow(now); ok {
		t.Fatalf("expected no window when it crosses midnight")
	}
}

func TestReminderWindow_LateEveningNextDay(t *testing.T) {
	// 23:10: the whole window lands after midnight, on the next date.
	now := time.Date(2024, 6, 10, 23, 10, 0, 0, time.UTC)
	date, from, to, ok := reminderWindow(now)
	if !ok {
		t.Fatalf("expected a valid window fully inside the next day")
	}
	if date != "2024-06-11" || from != "00:05" || to != "00:15" {
		t.Fatalf("unexpected window %s %s-%s", date, from, to)
	}
}
