// Package payload extracts and decodes the place-list data embedded in a
// Google Maps list page. The surrounding script text is not valid JSON, so
// the array is isolated by a character-level balanced-bracket scan before any
// JSON parsing happens; the parsed tree is then searched structurally and
// decoded by position (see format.yaml).
package payload

import "strings"

// ExtractBalanced returns the first balanced bracketed slice following the
// first occurrence of marker in text. The scan is string-literal aware:
// brackets inside double-quoted strings are ignored, and backslash escapes
// inside strings are tracked so an escaped quote does not end the literal.
// Returns false if the marker or opening bracket is never found, or if the
// text ends before the brackets balance.
func ExtractBalanced(text, marker string, open, close byte) (string, bool) {
	at := strings.Index(text, marker)
	if at < 0 {
		return "", false
	}
	start := strings.IndexByte(text[at:], open)
	if start < 0 {
		return "", false
	}
	start += at

	// Byte-wise scan is safe: all characters of interest are ASCII and
	// never appear inside UTF-8 continuation bytes.
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
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
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// ExtractInitArray isolates the initialization array from raw script text.
func ExtractInitArray(script string) (string, error) {
	raw, ok := ExtractBalanced(script, InitStateMarker, '[', ']')
	if !ok {
		return "", ErrExtractFailed
	}
	return raw, nil
}
