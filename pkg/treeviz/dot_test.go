package treeviz

import (
	"strings"
	"testing"

	"github.com/mkoenig/framesmith/pkg/scene"
)

func boolPtr(b bool) *bool { return &b }

func TestToDOTBasic(t *testing.T) {
	doc := &scene.Document{
		Nodes: []*scene.Node{
			{
				Name: "Card", Type: scene.TypeFrame, Width: 100, Height: 50,
				Children: []*scene.Node{
					{Name: "Title", Type: scene.TypeText, Characters: "Hello"},
				},
			},
		},
	}

	dot := ToDOT(doc, Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"n0" [label="Card\nFRAME"];`,
		`"n1" [label="Title\nTEXT", fillcolor=palegreen];`,
		`"n0" -> "n1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTPrunedSubtreeDashed(t *testing.T) {
	doc := &scene.Document{
		Nodes: []*scene.Node{
			{
				Name: "Root", Type: scene.TypeFrame,
				Children: []*scene.Node{
					{
						Name: "Hidden", Type: scene.TypeFrame, Visible: boolPtr(false),
						Children: []*scene.Node{
							{Name: "Orphan", Type: scene.TypeText, Characters: "x"},
						},
					},
				},
			},
		},
	}

	dot := ToDOT(doc, Options{})

	for _, line := range strings.Split(dot, "\n") {
		switch {
		case strings.HasPrefix(line, `  "n0" `):
			if strings.Contains(line, "dashed") {
				t.Errorf("visible root should not be dashed: %s", line)
			}
		case strings.HasPrefix(line, `  "n1" `), strings.HasPrefix(line, `  "n2" `):
			if !strings.Contains(line, "dashed") || !strings.Contains(line, "lightgrey") {
				t.Errorf("pruned node should be dashed grey: %s", line)
			}
		}
	}
	// The orphan text node keeps the pruned styling, not its kind tint
	if strings.Contains(dot, "palegreen") {
		t.Error("pruned text node should not carry a kind tint")
	}
}

func TestToDOTWidgetTints(t *testing.T) {
	tests := []struct {
		name string
		node *scene.Node
		want string
	}{
		{"button", &scene.Node{Name: "Submit Button", Type: scene.TypeFrame}, "fillcolor=lightblue"},
		{"textField", &scene.Node{Name: "Search Field", Type: scene.TypeRectangle}, "fillcolor=lightyellow"},
		{"checkbox", &scene.Node{Name: "Remember checkbox", Type: scene.TypeFrame}, "fillcolor=thistle"},
		{"plain", &scene.Node{Name: "Panel", Type: scene.TypeFrame}, `[label="Panel\nFRAME"];`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(&scene.Document{Nodes: []*scene.Node{tt.node}}, Options{})
			if !strings.Contains(dot, tt.want) {
				t.Errorf("DOT missing %q:\n%s", tt.want, dot)
			}
		})
	}
}

func TestToDOTDetailed(t *testing.T) {
	doc := &scene.Document{
		Nodes: []*scene.Node{
			{
				Name: "Title", Type: scene.TypeText,
				X: 10, Y: 20, Width: 64, Height: 24,
				Characters: "typography is the craft of arranging type",
			},
		},
	}

	dot := ToDOT(doc, Options{Detailed: true})

	if !strings.Contains(dot, `64x24 @ (10, 20)`) {
		t.Errorf("detailed label missing geometry:\n%s", dot)
	}
	if !strings.Contains(dot, `typography is the craft ...`) {
		t.Errorf("detailed label missing truncated text:\n%s", dot)
	}
}

func TestToDOTMultipleRoots(t *testing.T) {
	doc := &scene.Document{
		Nodes: []*scene.Node{
			{Name: "A", Type: scene.TypeFrame},
			{Name: "B", Type: scene.TypeFrame},
		},
	}

	dot := ToDOT(doc, Options{})

	if !strings.Contains(dot, `"n0"`) || !strings.Contains(dot, `"n1"`) {
		t.Fatalf("both roots should appear:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("independent roots should not be connected:\n%s", dot)
	}
}

func TestToDOTEmptyDocument(t *testing.T) {
	for _, doc := range []*scene.Document{nil, {}} {
		dot := ToDOT(doc, Options{})
		if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
			t.Errorf("empty document should still produce a valid digraph:\n%s", dot)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00">ok</svg>`)
	out := string(normalizeViewBox(in))

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">ok</svg>`
	if out != want {
		t.Errorf("normalizeViewBox =\n%s\nwant\n%s", out, want)
	}

	// No viewBox passes through untouched
	plain := []byte(`<svg>x</svg>`)
	if string(normalizeViewBox(plain)) != `<svg>x</svg>` {
		t.Error("svg without viewBox should pass through")
	}
}
