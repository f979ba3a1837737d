package segmenter

import (
	"fmt"
	"strings"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

// Segment accumulates turns into segments under the token ceiling. The buffer
// is closed before a turn that would overflow it, but only when it already
// holds something, so a single oversized turn still gets its own segment.
func (s *implSegmenter) Segment(turns []transcript.Turn) []transcript.Segment {
	if len(turns) == 0 {
		return nil
	}

	var segments []transcript.Segment
	var current []transcript.Turn
	currentTokens := 0

	for _, turn := range turns {
		turnTokens := s.estimator.Estimate(turn.Text)

		if len(current) > 0 && currentTokens+turnTokens > s.maxTokens {
			segments = append(segments, buildSegment(len(segments)+1, current))
			current = nil
			currentTokens = 0
		}

		current = append(current, turn)
		currentTokens += turnTokens
	}

	if len(current) > 0 {
		segments = append(segments, buildSegment(len(segments)+1, current))
	}

	return segments
}

func buildSegment(id int, turns []transcript.Turn) transcript.Segment {
	first := turns[0]
	last := turns[len(turns)-1]

	texts := make([]string, 0, len(turns))
	for _, t := range turns {
		texts = append(texts, t.Text)
	}

	return transcript.Segment{
		ID:        id,
		StartTime: transcript.ParseTimestamp(first.StartTS),
		EndTime:   transcript.ParseTimestamp(last.EndTS),
		Topic:     fmt.Sprintf("Segment %d", id),
		Speakers:  collectSpeakers(turns),
		Text:      strings.Join(texts, "\n"),
	}
}

// collectSpeakers returns the distinct speaker names in first-seen order.
func collectSpeakers(turns []transcript.Turn) []string {
	seen := make(map[string]bool)
	var speakers []string
	for _, t := range turns {
		speaker := t.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		if !seen[speaker] {
			seen[speaker] = true
			speakers = append(speakers, speaker)
		}
	}
	return speakers
}
