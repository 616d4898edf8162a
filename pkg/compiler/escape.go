package compiler

import "strings"

// EscapeText escapes literal text content for a double-quoted
// JavaScript string: backslash, double quote, newline, carriage return,
// and tab. The escaped form round-trips to the original characters.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeTemplate escapes markup for a JavaScript template literal:
// backslashes, backticks, and ${ interpolation openers. Internal
// whitespace runs collapse to single spaces so inlined markup stays on
// one line.
func EscapeTemplate(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return strings.Join(strings.Fields(s), " ")
}
