// Package parse recovers a structured payload from raw model text. Model
// output is routinely wrapped in prose or markdown fences; extraction
// scans for balanced JSON objects and decodes the first one that fits
// the expected payload shape.
package parse

// balancedObjects scans s for top-level brace-balanced regions and
// returns each candidate substring in order of appearance.
//
// The scan is a byte-level state machine that tracks string literals and
// escape sequences so braces inside strings never affect nesting depth.
// Iterating bytes is safe for the ASCII delimiters involved: UTF-8 never
// embeds ASCII bytes inside a multi-byte sequence.
func balancedObjects(s string) []string {
	var (
		candidates []string
		depth      int
		start      = -1
		inString   bool
		escaped    bool
	)

	for i := 0; i < len(s); i++ {
		b := s[i]

		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch b {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch b {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				candidates = append(candidates, s[start:i+1])
				start = -1
			}
		}
	}

	return candidates
}
