package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/cache"
	"github.com/mkoenig/framesmith/pkg/scene"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testDoc() *scene.Document {
	return &scene.Document{
		Nodes: []*scene.Node{
			{
				Name:   "Card",
				Type:   scene.TypeFrame,
				Width:  300,
				Height: 120,
				Children: []*scene.Node{
					{
						Name:       "Label",
						Type:       scene.TypeText,
						X:          10,
						Y:          10,
						Width:      80,
						Height:     20,
						Characters: "Hi!",
						Style:      &scene.TextStyle{FontFamily: "Inter", FontSize: 14},
					},
				},
			},
		},
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Target != TargetReact {
		t.Errorf("Target = %q, want %q", opts.Target, TargetReact)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults: %v", err)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "empty is valid", opts: Options{}, wantErr: false},
		{name: "react target", opts: Options{Target: "react"}, wantErr: false},
		{name: "unknown target", opts: Options{Target: "svelte"}, wantErr: true},
		{name: "name override", opts: Options{Name: "HeroCard"}, wantErr: false},
		{name: "traversal name", opts: Options{Name: "../etc/passwd"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExecuteProducesUnit(t *testing.T) {
	runner := NewRunner(nil, nil, nil, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), testDoc(), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Unit.Name != "Card" {
		t.Errorf("unit name = %q, want Card", result.Unit.Name)
	}
	if !strings.Contains(result.Unit.Markup, "export const Card") {
		t.Errorf("markup missing component export:\n%s", result.Unit.Markup)
	}
	if !strings.Contains(result.Unit.Markup, `{"Hi!"}`) {
		t.Errorf("markup missing text content:\n%s", result.Unit.Markup)
	}
	if result.Stats.Roots != 1 || result.Stats.Nodes != 2 {
		t.Errorf("stats roots/nodes = %d/%d, want 1/2", result.Stats.Roots, result.Stats.Nodes)
	}
	if result.Stats.Emitted != 2 {
		t.Errorf("stats emitted = %d, want 2", result.Stats.Emitted)
	}
	if result.CacheInfo.UnitHit {
		t.Error("first run must not be a cache hit")
	}
	if len(result.Stats.Families) != 1 || result.Stats.Families[0] != "Inter" {
		t.Errorf("families = %v, want [Inter]", result.Stats.Families)
	}
}

func TestExecuteDeterministic(t *testing.T) {
	runner := NewRunner(nil, nil, nil, testLogger())
	defer runner.Close()

	a, err := runner.Execute(context.Background(), testDoc(), Options{})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	b, err := runner.Execute(context.Background(), testDoc(), Options{})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	if a.Unit.Markup != b.Unit.Markup {
		t.Error("repeated compilations must be byte-identical")
	}
	if a.Unit.Stylesheet != b.Unit.Stylesheet {
		t.Error("stylesheets must be byte-identical")
	}
	if a.DocHash != b.DocHash {
		t.Errorf("doc hashes differ: %q vs %q", a.DocHash, b.DocHash)
	}
}

func TestExecuteCacheHit(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil, testLogger())
	defer runner.Close()

	first, err := runner.Execute(context.Background(), testDoc(), Options{})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.UnitHit {
		t.Fatal("first run must miss")
	}

	second, err := runner.Execute(context.Background(), testDoc(), Options{})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.UnitHit {
		t.Fatal("second run must hit the unit cache")
	}
	if second.Unit != first.Unit {
		t.Error("cached unit differs from compiled unit")
	}

	// Refresh bypasses the cache.
	third, err := runner.Execute(context.Background(), testDoc(), Options{Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.UnitHit {
		t.Error("refresh run must not hit the cache")
	}
}

func TestExecuteNameOverride(t *testing.T) {
	runner := NewRunner(nil, nil, nil, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), testDoc(), Options{Name: "Hero Card"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Unit.Name != "HeroCard" {
		t.Errorf("unit name = %q, want HeroCard", result.Unit.Name)
	}
}

func TestExecuteRejectsEmptyDocument(t *testing.T) {
	runner := NewRunner(nil, nil, nil, testLogger())
	defer runner.Close()

	if _, err := runner.Execute(context.Background(), &scene.Document{}, Options{}); err == nil {
		t.Fatal("empty document must fail validation")
	}
}

type staticFonts struct{ css string }

func (f staticFonts) Resolve(ctx context.Context, families []string) (string, error) {
	return f.css, nil
}

func TestExecuteFontsStage(t *testing.T) {
	runner := NewRunner(nil, nil, staticFonts{css: "@font-face { font-family: 'Inter'; }"}, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), testDoc(), Options{Fonts: true})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(result.Unit.Stylesheet, "@font-face") {
		t.Errorf("stylesheet missing resolved font CSS:\n%s", result.Unit.Stylesheet)
	}

	// Fonts disabled: the stylesheet is only the reset block.
	plain, err := runner.Execute(context.Background(), testDoc(), Options{})
	if err != nil {
		t.Fatalf("Execute without fonts: %v", err)
	}
	if strings.Contains(plain.Unit.Stylesheet, "@font-face") {
		t.Error("font CSS emitted although fonts were disabled")
	}
}
