package compiler

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mkoenig/framesmith/pkg/scene"
)

// FallbackName is used when sanitizing a root name leaves nothing.
const FallbackName = "Component"

// Unit is one assembled compilation output: a named component source
// paired with its companion stylesheet.
type Unit struct {
	Name       string `json:"name"`
	Markup     string `json:"markup"`
	Stylesheet string `json:"stylesheet"`
}

// MarkupFilename returns the file name the component source is written
// under.
func (u Unit) MarkupFilename() string { return u.Name + ".jsx" }

// StylesheetFilename returns the file name of the companion stylesheet.
func (u Unit) StylesheetFilename() string { return u.Name + ".css" }

// SanitizeName reduces a raw layer name to a valid exported component
// identifier: letters and digits are kept, leading digits dropped, and
// the first rune upper-cased. Names sanitizing to nothing fall back to
// FallbackName.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s := strings.TrimLeft(b.String(), "0123456789")
	if s == "" {
		return FallbackName
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// Assemble wraps compiled markup in a self-contained component source
// and builds the companion stylesheet. The wrapper takes the first
// root's box size and background; name is the raw name the unit is
// derived from, usually that root's layer name.
func Assemble(root *scene.Node, markup, name, fontCSS string) Unit {
	unitName := SanitizeName(name)

	wrapper := NewStyleMap()
	wrapper.Set("position", "relative")
	wrapper.Set("width", px(root.Width))
	wrapper.Set("height", px(root.Height))
	if fill := root.FirstSolidFill(); fill != nil {
		wrapper.Set("backgroundColor", cssColor(*fill.Color, fill.Alpha()))
	} else {
		wrapper.Set("backgroundColor", "transparent")
	}

	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	fmt.Fprintf(&b, "import './%s.css';\n\n", unitName)
	fmt.Fprintf(&b, "export const %s = () => (\n", unitName)
	body := indentLines(markup, "    ")
	if body == "" {
		fmt.Fprintf(&b, "  <div className=%q style=%s />\n", unitName, wrapper.JSX())
	} else {
		fmt.Fprintf(&b, "  <div className=%q style=%s>\n", unitName, wrapper.JSX())
		b.WriteString(body)
		b.WriteString("  </div>\n")
	}
	fmt.Fprintf(&b, ");\n\nexport default %s;\n", unitName)

	return Unit{
		Name:       unitName,
		Markup:     b.String(),
		Stylesheet: stylesheet(unitName, fontCSS),
	}
}

// stylesheet places font declarations first, since @import rules are
// only valid ahead of other rules, then the reset block.
func stylesheet(name, fontCSS string) string {
	var b strings.Builder
	if fontCSS != "" {
		b.WriteString(strings.TrimRight(fontCSS, "\n"))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, ".%s,\n.%s * {\n  box-sizing: border-box;\n  margin: 0;\n  padding: 0;\n}\n", name, name)
	return b.String()
}

func indentLines(s, prefix string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
