package validate

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

// SegmentsDocument is the segments artifact shape checked before writing.
type SegmentsDocument struct {
	MeetingID string               `json:"meeting_id"`
	Segments  []transcript.Segment `json:"segments"`
}

// Turns validates a merged turns document against its schema. It returns a
// list of human-readable problems; an empty list means the document is valid.
func Turns(doc *transcript.TurnsDocument) ([]string, error) {
	return validateValue(turnsDocumentSchema, doc)
}

// Segments validates a segments document against its schema.
func Segments(doc *SegmentsDocument) ([]string, error) {
	return validateValue(segmentsDocumentSchema, doc)
}

func validateValue(schema string, value interface{}) ([]string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return problems, nil
}
