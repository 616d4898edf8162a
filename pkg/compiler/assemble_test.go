package compiler

import (
	"strings"
	"testing"

	"github.com/mkoenig/framesmith/pkg/scene"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Card", "Card"},
		{"card", "Card"},
		{"My Card!", "MyCard"},
		{"nav/bar (v2)", "Navbarv2"},
		{"", "Component"},
		{"   ", "Component"},
		{"!!!", "Component"},
		{"42", "Component"},
		{"2nd Section", "NdSection"},
		{"émoji läyer", "Émojiläyer"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAssembleWrapper(t *testing.T) {
	root := &scene.Node{
		Type:   scene.TypeFrame,
		Name:   "Hero Banner",
		Width:  375,
		Height: 812,
		Fills:  []scene.Paint{{Type: scene.PaintSolid, Color: &scene.Color{R: 0, G: 0, B: 0, A: 1}}},
	}

	unit := Assemble(root, "<div id=\"node-0\" style={{position: 'relative'}} />\n", root.Name, "")

	if unit.Name != "HeroBanner" {
		t.Fatalf("Name = %q, want HeroBanner", unit.Name)
	}
	for _, want := range []string{
		"import React from 'react';",
		"import './HeroBanner.css';",
		"export const HeroBanner = () => (",
		`<div className="HeroBanner"`,
		"width: '375px'",
		"height: '812px'",
		"backgroundColor: '#000000'",
		"export default HeroBanner;",
	} {
		if !strings.Contains(unit.Markup, want) {
			t.Errorf("markup missing %q:\n%s", want, unit.Markup)
		}
	}
	if unit.MarkupFilename() != "HeroBanner.jsx" {
		t.Errorf("MarkupFilename() = %q", unit.MarkupFilename())
	}
	if unit.StylesheetFilename() != "HeroBanner.css" {
		t.Errorf("StylesheetFilename() = %q", unit.StylesheetFilename())
	}
}

func TestAssembleTransparentDefault(t *testing.T) {
	root := &scene.Node{Type: scene.TypeFrame, Name: "Plain", Width: 10, Height: 10}

	unit := Assemble(root, "", root.Name, "")

	if !strings.Contains(unit.Markup, "backgroundColor: 'transparent'") {
		t.Errorf("markup missing transparent background:\n%s", unit.Markup)
	}
	if !strings.Contains(unit.Markup, `<div className="Plain" style={{`) || !strings.Contains(unit.Markup, "}} />") {
		t.Errorf("empty markup should self-close the wrapper:\n%s", unit.Markup)
	}
}

func TestAssembleIndentsBody(t *testing.T) {
	root := &scene.Node{Type: scene.TypeFrame, Name: "Box", Width: 10, Height: 10}
	body := "<div id=\"node-0\" style={{position: 'relative'}}>\n  <div id=\"node-1\" style={{position: 'absolute'}} />\n</div>\n"

	unit := Assemble(root, body, root.Name, "")

	if !strings.Contains(unit.Markup, "\n    <div id=\"node-0\"") {
		t.Errorf("root element not indented under wrapper:\n%s", unit.Markup)
	}
	if !strings.Contains(unit.Markup, "\n      <div id=\"node-1\"") {
		t.Errorf("child element not indented:\n%s", unit.Markup)
	}
}

func TestAssembleStylesheet(t *testing.T) {
	root := &scene.Node{Type: scene.TypeFrame, Name: "Card", Width: 10, Height: 10}

	unit := Assemble(root, "", root.Name, "")
	for _, want := range []string{".Card,", ".Card * {", "box-sizing: border-box;", "margin: 0;"} {
		if !strings.Contains(unit.Stylesheet, want) {
			t.Errorf("stylesheet missing %q:\n%s", want, unit.Stylesheet)
		}
	}
}

func TestAssembleFontCSSPrecedesReset(t *testing.T) {
	root := &scene.Node{Type: scene.TypeFrame, Name: "Card", Width: 10, Height: 10}
	fontCSS := "@import url('https://fonts.example.com/css?family=Inter');\n"

	unit := Assemble(root, "", root.Name, fontCSS)

	if !strings.HasPrefix(unit.Stylesheet, "@import") {
		t.Errorf("font css must lead the stylesheet:\n%s", unit.Stylesheet)
	}
	if !strings.Contains(unit.Stylesheet, ".Card,") {
		t.Errorf("stylesheet missing reset:\n%s", unit.Stylesheet)
	}
}

func TestAssembleNameOverride(t *testing.T) {
	root := &scene.Node{Type: scene.TypeFrame, Name: "Frame 1", Width: 10, Height: 10}

	unit := Assemble(root, "", "checkout-summary", "")

	if unit.Name != "Checkoutsummary" {
		t.Errorf("Name = %q, want Checkoutsummary", unit.Name)
	}
}
