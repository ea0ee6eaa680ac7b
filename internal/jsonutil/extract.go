// Package jsonutil extracts structured JSON from free-form LLM output.
package jsonutil

import (
	"encoding/json"
	"errors"
)

// ErrNoJSON is returned when no balanced JSON object can be found in
// the input. Callers treat this as a recoverable generation error.
var ErrNoJSON = errors.New("no JSON object found in response")

// Extract returns the first balanced {...} block in s. Model output
// often wraps the JSON payload in prose or markdown fences; the scan
// is string- and escape-aware so braces inside string values do not
// unbalance it.
func Extract(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
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
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}

	return "", ErrNoJSON
}

// Unmarshal extracts the first balanced JSON object from s and decodes
// it into v. Both a missing object and malformed JSON are reported as
// errors, never panics.
func Unmarshal(s string, v interface{}) error {
	block, err := Extract(s)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(block), v)
}
