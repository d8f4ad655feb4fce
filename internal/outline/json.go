package outline

import (
	"errors"
	"strings"
)

// ErrNoJSONArray indicates no balanced JSON array could be found in the
// model output.
var ErrNoJSONArray = errors.New("no JSON array found in response")

// ExtractJSONArray returns the first balanced JSON array substring in s.
// Model output routinely wraps the array in conversational preamble,
// markdown fences, or trailing commentary; everything outside the array is
// ignored. The scan honors string literals and escape sequences, so
// brackets inside string values do not unbalance it.
func ExtractJSONArray(s string) (string, error) {
	for start := strings.IndexByte(s, '['); start >= 0; {
		if end, ok := scanArray(s, start); ok {
			return s[start : end+1], nil
		}
		next := strings.IndexByte(s[start+1:], '[')
		if next < 0 {
			break
		}
		start += 1 + next
	}
	return "", ErrNoJSONArray
}

// scanArray walks s from the opening bracket at start and returns the index
// of the matching closing bracket.
func scanArray(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
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
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
