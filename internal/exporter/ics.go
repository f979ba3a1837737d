package exporter

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

var icsTimeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// BuildICS serializes the extracted calendar events as an iCalendar file.
// Events without a usable start time are skipped; events without an end time
// default to one hour.
func BuildICS(meetingID string, events []transcript.CalendarEvent) string {
	var sb strings.Builder
	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:-//meeting-transcript-analyzer//EN\r\n")

	for _, ev := range events {
		start, ok := parseICSTime(ev.Start)
		if !ok {
			continue
		}
		end, ok := parseICSTime(ev.End)
		if !ok {
			end = start.Add(time.Hour)
		}

		uid := ev.UID
		if uid == "" {
			uid = uuid.NewString()
		}

		sb.WriteString("BEGIN:VEVENT\r\n")
		sb.WriteString("UID:" + escapeICS(uid) + "@" + escapeICS(meetingID) + "\r\n")
		sb.WriteString("DTSTART:" + start.Format("20060102T150405") + "\r\n")
		sb.WriteString("DTEND:" + end.Format("20060102T150405") + "\r\n")
		sb.WriteString("SUMMARY:" + escapeICS(ev.Title) + "\r\n")
		if ev.Location != "" {
			sb.WriteString("LOCATION:" + escapeICS(ev.Location) + "\r\n")
		}
		if ev.Description != "" {
			sb.WriteString("DESCRIPTION:" + escapeICS(ev.Description) + "\r\n")
		}
		sb.WriteString("END:VEVENT\r\n")
	}

	sb.WriteString("END:VCALENDAR\r\n")
	return sb.String()
}

func parseICSTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range icsTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
