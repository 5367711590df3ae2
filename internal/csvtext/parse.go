// Package csvtext parses the CSV bodies served by spreadsheet export
// endpoints. It is deliberately more forgiving than encoding/csv: rows may
// be ragged, an unterminated quote swallows the rest of the input instead of
// failing, and a missing trailing line terminator still yields a final row.
package csvtext

import "strings"

// Parse converts raw CSV text into rows of string fields.
//
// The scan is a single left-to-right pass with one character of lookahead.
// A doubled quote inside a quoted field emits a literal quote. Commas and
// line terminators inside quotes are field content. CR, LF and CRLF are all
// treated as a single row terminator. Parse never fails; malformed input
// degrades to a best-effort result.
func Parse(text string) [][]string {
	var out [][]string
	var row []string
	var field strings.Builder
	inQuotes := false
	sawContent := false

	i := 0
	for i < len(text) {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i += 2
				continue
			}
			inQuotes = !inQuotes
			sawContent = true
			i++
		case ch == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
			i++
		case (ch == '\n' || ch == '\r') && !inQuotes:
			row = append(row, field.String())
			field.Reset()
			out = append(out, row)
			row = nil
			sawContent = false
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
		default:
			field.WriteByte(ch)
			sawContent = true
			i++
		}
	}

	// Input without a trailing terminator leaves a pending field or row.
	// A bare quoted empty field ("") leaves both buffers empty, which is
	// why sawContent is tracked separately.
	if field.Len() > 0 || len(row) > 0 || sawContent {
		row = append(row, field.String())
		out = append(out, row)
	}

	return out
}
