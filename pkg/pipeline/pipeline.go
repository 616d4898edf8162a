// Package pipeline orchestrates scene-to-component compilation for
// Framesmith.
//
// This package wraps the pure compiler core with the option handling,
// caching, and font resolution every entry point needs. By centralizing
// this logic, the CLI and the HTTP server behave identically for the
// same document and options.
//
// # Architecture
//
// An Execute call runs three stages:
//
//  1. Compile: walk the scene tree and emit nested markup
//  2. Fonts: resolve stylesheet CSS for the text leaves' font families
//  3. Assemble: wrap the markup into a named unit with its stylesheet
//
// The assembled unit is cached keyed by the document's content hash and
// the options that change the output, so repeated submissions of the
// same design are served without recompiling.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, fontResolver, logger)
//	opts := pipeline.Options{Fonts: true}
//	result, err := runner.Execute(ctx, doc, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	jsx := result.Unit.Markup
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/cache"
	"github.com/mkoenig/framesmith/pkg/compiler"
	"github.com/mkoenig/framesmith/pkg/errors"
)

// Output targets. Only React emission is implemented; the target is an
// explicit option so a second emitter can be added without changing the
// request shape.
const (
	TargetReact = "react"

	// DefaultTarget is the target applied when none is requested.
	DefaultTarget = TargetReact
)

// Options contains all configuration for one compilation.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Target selects the output emitter. Currently only "react".
	Target string `json:"target,omitempty"`

	// Name overrides the component name derived from the first root's
	// layer name. It is sanitized by the assembler like any other name.
	Name string `json:"name,omitempty"`

	// Fonts enables remote font-CSS resolution for the document's text
	// families. Without it the stylesheet carries only the reset block.
	Fonts bool `json:"fonts,omitempty"`

	// Refresh bypasses the unit cache for this call.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Target == "" {
		o.Target = DefaultTarget
	}
	if err := errors.ValidateTarget(o.Target); err != nil {
		return err
	}
	if o.Name != "" {
		if err := errors.ValidateComponentName(o.Name); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// UnitKeyOpts returns the cache key options for the assembled unit.
// Every option that changes the emitted bytes must appear here.
func (o *Options) UnitKeyOpts() cache.UnitKeyOpts {
	return cache.UnitKeyOpts{
		Target: o.Target,
		Name:   o.Name,
		Fonts:  o.Fonts,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Unit is the assembled output: component source plus stylesheet.
	Unit compiler.Unit

	// DocHash is the content hash of the input document.
	DocHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the unit came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Roots        int
	Nodes        int
	Emitted      int
	Pruned       int
	Families     []string
	CompileTime  time.Duration
	FontsTime    time.Duration
	AssembleTime time.Duration
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.CompileTime + s.FontsTime + s.AssembleTime
}

// CacheInfo tracks cache hits for a pipeline run.
type CacheInfo struct {
	UnitHit bool // Whether the assembled unit came from cache
}
