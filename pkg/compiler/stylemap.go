package compiler

import (
	"math"
	"strconv"
	"strings"
)

// numericProps are style properties emitted as bare JavaScript numbers
// rather than quoted strings.
var numericProps = map[string]bool{
	"fontWeight": true,
	"opacity":    true,
}

// StyleMap is a flat style mapping that remembers insertion order, so
// serialized output is byte-identical across runs.
type StyleMap struct {
	keys   []string
	values map[string]string
}

// NewStyleMap returns an empty style mapping.
func NewStyleMap() *StyleMap {
	return &StyleMap{values: make(map[string]string)}
}

// Set stores a property, keeping the position of the first insertion
// when a key is written twice.
func (m *StyleMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *StyleMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of properties.
func (m *StyleMap) Len() int { return len(m.keys) }

// JSX serializes the mapping as a React style object expression, e.g.
// {{position: 'absolute', left: '10px', fontWeight: 700}}. Numeric
// properties stay unquoted; all other values are single-quoted.
func (m *StyleMap) JSX() string {
	var b strings.Builder
	b.WriteString("{{")
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		v := m.values[k]
		if numericProps[k] {
			b.WriteString(v)
		} else {
			// Backslashes first, so escapes introduced for quotes
			// are not themselves re-escaped.
			v = strings.ReplaceAll(v, `\`, `\\`)
			v = strings.ReplaceAll(v, "'", `\'`)
			b.WriteByte('\'')
			b.WriteString(v)
			b.WriteByte('\'')
		}
	}
	b.WriteString("}}")
	return b.String()
}

// fmtNum renders a dimension with at most two decimal places and no
// trailing zeros, normalizing negative zero.
func fmtNum(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// px renders a pixel dimension.
func px(v float64) string {
	return fmtNum(v) + "px"
}
