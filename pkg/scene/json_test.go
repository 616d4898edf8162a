package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkoenig/framesmith/pkg/errors"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		wantErr  errors.Code
		wantLen  int
		wantName string
	}{
		{
			name:    "document envelope",
			json:    `{"name": "Landing", "nodes": [{"name": "Card", "type": "FRAME", "width": 300, "height": 120}]}`,
			wantLen: 1, wantName: "Landing",
		},
		{
			name:    "bare node array",
			json:    `[{"name": "Card", "type": "FRAME"}]`,
			wantLen: 1,
		},
		{
			name:    "multiple roots preserved in order",
			json:    `{"nodes": [{"type": "FRAME", "name": "A"}, {"type": "FRAME", "name": "B"}]}`,
			wantLen: 2,
		},
		{
			name:    "malformed json",
			json:    `{"nodes": [}`,
			wantErr: errors.ErrCodeInvalidDocument,
		},
		{
			name:    "empty input",
			json:    "   ",
			wantErr: errors.ErrCodeInvalidDocument,
		},
		{
			name:    "no nodes",
			json:    `{"nodes": []}`,
			wantErr: errors.ErrCodeEmptyDocument,
		},
		{
			name:    "empty array",
			json:    `[]`,
			wantErr: errors.ErrCodeEmptyDocument,
		},
		{
			name:    "missing type",
			json:    `{"nodes": [{"name": "Card"}]}`,
			wantErr: errors.ErrCodeInvalidDocument,
		},
		{
			name:    "negative size",
			json:    `{"nodes": [{"type": "FRAME", "width": -10, "height": 5}]}`,
			wantErr: errors.ErrCodeInvalidDocument,
		},
		{
			name:    "invalid nested child",
			json:    `{"nodes": [{"type": "FRAME", "children": [{"name": "broken"}]}]}`,
			wantErr: errors.ErrCodeInvalidDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.json))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if got := errors.GetCode(err); got != tt.wantErr {
					t.Errorf("error code = %q, want %q", got, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDocument: %v", err)
			}
			if len(doc.Nodes) != tt.wantLen {
				t.Errorf("len(Nodes) = %d, want %d", len(doc.Nodes), tt.wantLen)
			}
			if tt.wantName != "" && doc.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", doc.Name, tt.wantName)
			}
		})
	}
}

func TestParseDocumentFields(t *testing.T) {
	input := `{
	  "nodes": [{
	    "name": "Card",
	    "type": "FRAME",
	    "x": -50, "y": -10, "width": 300, "height": 120,
	    "cornerRadius": 8,
	    "fills": [{"type": "SOLID", "color": {"r": 1, "g": 1, "b": 1, "a": 1}}],
	    "strokes": [{"type": "SOLID", "color": {"r": 0, "g": 0, "b": 0, "a": 1}}],
	    "strokeWeight": 2,
	    "effects": [{"type": "DROP_SHADOW", "radius": 4, "offset": {"x": 0, "y": 2}}],
	    "layoutMode": "VERTICAL",
	    "itemSpacing": 12,
	    "paddingLeft": 16,
	    "children": [{
	      "name": "Label",
	      "type": "TEXT",
	      "x": 10, "y": 10,
	      "characters": "Hi!",
	      "style": {
	        "fontFamily": "Inter",
	        "fontWeight": "Bold",
	        "fontSize": 14,
	        "lineHeight": {"unit": "AUTO"},
	        "letterSpacing": 0.5,
	        "textAlignHorizontal": "CENTER"
	      }
	    }]
	  }]
	}`

	doc, err := ParseDocument([]byte(input))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	root := doc.Nodes[0]
	if root.X != -50 || root.Y != -10 {
		t.Errorf("root position = (%g, %g), want (-50, -10)", root.X, root.Y)
	}
	if root.LayoutMode != LayoutVertical || root.ItemSpacing != 12 {
		t.Errorf("layout = %q gap %g, want VERTICAL gap 12", root.LayoutMode, root.ItemSpacing)
	}
	if root.StrokeWidth() != 2 {
		t.Errorf("StrokeWidth() = %g, want 2", root.StrokeWidth())
	}
	if fill := root.FirstSolidFill(); fill == nil || fill.Color.Hex() != "#FFFFFF" {
		t.Errorf("first fill = %+v, want white", fill)
	}
	if shadow := root.FirstDropShadow(); shadow == nil || shadow.Offset.Y != 2 {
		t.Errorf("shadow = %+v, want offset y 2", shadow)
	}

	label := root.Children[0]
	if !label.IsText() || label.Characters != "Hi!" {
		t.Fatalf("child = %+v, want TEXT with content", label)
	}
	if got := label.Style.FontWeight.CSS(); got != 700 {
		t.Errorf("font weight = %d, want 700", got)
	}
	if label.Style.LineHeight.Unit != UnitAuto {
		t.Errorf("line height unit = %q, want AUTO", label.Style.LineHeight.Unit)
	}
	if ls := label.Style.LetterSpacing; ls == nil || ls.Unit != UnitPixels || ls.Value != 0.5 {
		t.Errorf("letter spacing = %+v, want 0.5 pixels", ls)
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")
	content := `{"nodes": [{"name": "Card", "type": "FRAME", "width": 10, "height": 10}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if len(doc.Nodes) != 1 || doc.Nodes[0].Name != "Card" {
		t.Errorf("unexpected document: %+v", doc)
	}

	_, err = ImportFile(filepath.Join(dir, "missing.json"))
	if err == nil || !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("missing file error should name the path, got %v", err)
	}
}
