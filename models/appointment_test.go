package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAppointmentInterval(t *testing.T) {
	appt := Appointment{StartTime: "10:00", EndTime: "10:30"}

	iv, err := appt.Interval()
	if err != nil {
		t.Fatalf("interval: %v", err)
	}
	if iv.Start.String() != "10:00" || iv.End.String() != "10:30" {
		t.Fatalf("unexpected interval %s-%s", iv.Start, iv.End)
	}

	appt.EndTime = "junk"
	if _, err := appt.Interval(); err == nil {
		t.Fatalf("expected error for malformed end time")
	}
}

func TestAppointmentJSON_OmitsUnloadedClient(t *testing.T) {
	appt := Appointment{
		Service:   "Extraction",
		Date:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "10:30",
		ClientID:  7,
	}

	payload, err := json.Marshal(appt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), `"client"`) {
		t.Fatalf("unpreloaded client must not appear in JSON: %s", payload)
	}
}
