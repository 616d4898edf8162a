// Package pkg provides the core libraries for Framesmith scene compilation.
//
// # Overview
//
// Framesmith turns design-tool scene trees into UI component code: a JSON
// export of frames, shapes, and text becomes a React component plus a CSS
// stylesheet. The pkg directory is organized into these areas:
//
//  1. [scene] - The scene document model (nodes, paints, text styles) and
//     its JSON codec and validation.
//  2. [compiler] - The tree walker that classifies nodes, emits markup and
//     style rules, and assembles the final component unit.
//  3. [fonts] - Remote font CSS resolution for the families a scene uses.
//  4. [pipeline] - Orchestration (compile → fonts → assemble) with unit
//     caching, shared by the CLI and the HTTP server.
//  5. [project] - Scaffolding of runnable component projects on disk.
//  6. [treeviz] - Graphviz rendering of scene trees for inspection.
//
// # Quick Start
//
// Compile a scene document into a component unit:
//
//	import (
//	    "context"
//	    "github.com/mkoenig/framesmith/pkg/cache"
//	    "github.com/mkoenig/framesmith/pkg/pipeline"
//	    "github.com/mkoenig/framesmith/pkg/scene"
//	)
//
//	doc, _ := scene.ImportFile("landing.json")
//	runner := pipeline.NewRunner(cache.NewNullCache(), cache.NewDefaultKeyer(), nil, nil)
//	result, _ := runner.Execute(context.Background(), doc, pipeline.Options{})
//	// result.Unit.Markup holds the JSX, result.Unit.Stylesheet the CSS.
//
// # Infrastructure
//
// [cache] - Byte-level caching with file, Redis, and null backends, plus
// key construction for compiled units and HTTP responses.
//
// [history] - Compilation history records with memory and MongoDB stores,
// served by the HTTP API.
//
// [httputil] - A retrying HTTP client and a cached HTTP GET layer used by
// the font resolver.
//
// [errors] - Coded errors shared across packages; codes prefixed INVALID
// map to client errors at the HTTP boundary.
//
// [observability] - Pluggable hooks for pipeline, cache, and HTTP events.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// [scene]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/scene
// [compiler]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/compiler
// [fonts]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/pipeline
// [project]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/project
// [treeviz]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/treeviz
// [cache]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/cache
// [history]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/history
// [httputil]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/mkoenig/framesmith/pkg/buildinfo
package pkg
