// Package parser turns the three semi-structured CSV exports into the
// normalized inventory model. All functions are pure and safe for
// concurrent use; malformed rows are skipped, never raised.
package parser

import "strings"

// DecodeLine tokenizes one CSV line into trimmed fields, honoring commas
// inside double-quoted fields. Escaped-quote doubling ("") is not supported;
// the upstream exports never produce it.
func DecodeLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	// The trailing field is always emitted, even without a trailing comma.
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// SplitLines breaks full CSV content into non-empty lines, normalizing
// CRLF. Blank lines are dropped here so parsers never see them.
func SplitLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
