package exporter

import (
	"strings"
	"testing"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

func TestBuildICS(t *testing.T) {
	events := []transcript.CalendarEvent{
		{
			UID:         "review-1",
			Title:       "Design review",
			Start:       "2026-09-07T10:00:00",
			End:         "2026-09-07T11:00:00",
			Location:    "Room 4",
			Description: "Review the chunking design",
		},
	}

	ics := BuildICS("club-2026-08", events)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:review-1@club-2026-08",
		"DTSTART:20260907T100000",
		"DTEND:20260907T110000",
		"SUMMARY:Design review",
		"LOCATION:Room 4",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("ICS missing %q", want)
		}
	}
}

func TestBuildICSDefaultsEndToOneHour(t *testing.T) {
	events := []transcript.CalendarEvent{
		{UID: "e1", Title: "Standup", Start: "2026-09-07T09:00:00"},
	}

	ics := BuildICS("m1", events)
	if !strings.Contains(ics, "DTEND:20260907T100000") {
		t.Error("event without end should default to one hour")
	}
}

func TestBuildICSSkipsEventsWithoutStart(t *testing.T) {
	events := []transcript.CalendarEvent{
		{UID: "e1", Title: "No date", Start: "TBD"},
		{UID: "e2", Title: "Dated", Start: "2026-09-07T09:00:00"},
	}

	ics := BuildICS("m1", events)
	if strings.Contains(ics, "No date") {
		t.Error("event without a parseable start should be skipped")
	}
	if !strings.Contains(ics, "SUMMARY:Dated") {
		t.Error("dated event should be present")
	}
}

func TestBuildICSEscapesSpecialCharacters(t *testing.T) {
	events := []transcript.CalendarEvent{
		{UID: "e1", Title: "Budget, planning; kickoff", Start: "2026-09-07"},
	}

	ics := BuildICS("m1", events)
	if !strings.Contains(ics, "SUMMARY:Budget\\, planning\\; kickoff") {
		t.Error("summary was not escaped for ICS")
	}
}

func TestBuildICSGeneratesUIDWhenMissing(t *testing.T) {
	events := []transcript.CalendarEvent{
		{Title: "Untitled", Start: "2026-09-07"},
	}

	ics := BuildICS("m1", events)
	if !strings.Contains(ics, "UID:") {
		t.Error("missing UID should be generated")
	}
	if strings.Contains(ics, "UID:@m1") {
		t.Error("generated UID should not be empty")
	}
}
