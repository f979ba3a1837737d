package store

import (
	"testing"
)

func TestTextRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	key := "meetings/m1/chunks/chunk_0.txt"
	content := "Alice: welcome everyone.\n\nBob: thanks."

	if s.Exists(key) {
		t.Error("Exists() = true before write")
	}
	if err := s.WriteText(key, content); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if !s.Exists(key) {
		t.Error("Exists() = false after write")
	}

	got, err := s.ReadText(key)
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if got != content {
		t.Errorf("ReadText() = %q, want %q", got, content)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	type record struct {
		MeetingID string `json:"meeting_id"`
		Count     int    `json:"count"`
	}

	in := record{MeetingID: "m1", Count: 7}
	if err := s.WriteJSON("meetings/m1/metadata.json", in); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var out record
	if err := s.ReadJSON("meetings/m1/metadata.json", &out); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestReadMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := s.ReadText("missing.txt"); err == nil {
		t.Error("ReadText() should fail for a missing key")
	}
	var v map[string]interface{}
	if err := s.ReadJSON("missing.json", &v); err == nil {
		t.Error("ReadJSON() should fail for a missing key")
	}
}

func TestNewRequiresRoot(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("New(\"\") should fail")
	}
}
