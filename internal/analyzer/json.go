package analyzer

import (
	"encoding/json"
	"fmt"
)

// extractJSON pulls the first balanced JSON object out of mixed text. Model
// responses sometimes wrap the payload in prose or markdown fences, so the
// scan walks brace depth and tries each balanced candidate until one parses.
func extractJSON(text string) ([]byte, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				candidate := []byte(text[start : i+1])
				if json.Valid(candidate) {
					return candidate, nil
				}
				start = -1
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}

	return nil, fmt.Errorf("no JSON object found in response")
}
