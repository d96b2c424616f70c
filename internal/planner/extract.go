// README: Tolerant JSON object extraction from raw model output.
package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Extraction failure kinds. Callers branch on these with errors.Is.
var (
	ErrEmptyResponse    = errors.New("empty model response")
	ErrNoJSONFound      = errors.New("no JSON object found in model output")
	ErrInvalidJSON      = errors.New("model output contained invalid JSON")
	ErrUnterminatedJSON = errors.New("model output contained an unterminated JSON object")
)

// ExtractJSONObject recovers the first JSON object embedded in text. It
// tolerates commentary, markdown fences and trailing garbage around the
// object. A plain first-{-to-last-} scan is not enough: braces inside string
// values would corrupt the candidate, so the scan tracks brace depth with an
// escape-aware in-string flag.
//
// The routine is pure; the same input always yields the same object or the
// same failure kind.
func ExtractJSONObject(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyResponse
	}

	// First attempt: the whole reply is the object.
	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil && obj != nil {
		return obj, nil
	}

	start := strings.IndexByte(trimmed, '{')
	if start < 0 {
		return nil, ErrNoJSONFound
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(trimmed); i++ {
		c := trimmed[i]
		if inString {
			if escaped {
				// The escape consumed this character, whatever it was.
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := trimmed[start : i+1]
				if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
				}
				return obj, nil
			}
		}
	}
	return nil, ErrUnterminatedJSON
}
