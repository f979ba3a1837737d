package transcript

import (
	"strconv"
	"strings"
)

// Models occasionally label turns with values outside the allowed set.
var turnTypeSynonyms = map[string]TurnType{
	"statement":   TurnMonologue,
	"comment":     TurnMonologue,
	"discussion":  TurnMonologue,
	"context":     TurnMonologue,
	"other":       TurnMonologue,
	"response":    TurnAnswer,
	"reply":       TurnAnswer,
	"follow-up":   TurnFollowup,
	"follow up":   TurnFollowup,
	"questioning": TurnQuestion,
}

var allowedTurnTypes = map[TurnType]bool{
	TurnQuestion:     true,
	TurnAnswer:       true,
	TurnFollowup:     true,
	TurnMonologue:    true,
	TurnHousekeeping: true,
}

// NormalizeTurnType maps a raw model-emitted type label onto the allowed
// set, falling back to "monologue" for anything unrecognized.
func NormalizeTurnType(raw string) TurnType {
	key := TurnType(strings.ToLower(strings.TrimSpace(raw)))
	if allowedTurnTypes[key] {
		return key
	}
	if mapped, ok := turnTypeSynonyms[string(key)]; ok {
		return mapped
	}
	return TurnMonologue
}

// NormalizeTurn fixes up a model-emitted turn in place: the type label is
// mapped onto the allowed set and the question likelihood is clamped to [0,1].
func NormalizeTurn(t *Turn) {
	t.Type = NormalizeTurnType(string(t.Type))
	if t.QuestionLikelihood < 0 {
		t.QuestionLikelihood = 0
	} else if t.QuestionLikelihood > 1 {
		t.QuestionLikelihood = 1
	}
}

// ParseTimestamp converts an HH:MM:SS timestamp into seconds. Returns nil
// unless the value has exactly three colon-separated numeric components.
func ParseTimestamp(ts string) *float64 {
	if ts == "" {
		return nil
	}
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return nil
	}

	var total float64
	multipliers := []float64{3600, 60, 1}
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil
		}
		total += v * multipliers[i]
	}

	return &total
}
