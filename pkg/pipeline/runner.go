package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/cache"
	"github.com/mkoenig/framesmith/pkg/compiler"
	"github.com/mkoenig/framesmith/pkg/fonts"
	"github.com/mkoenig/framesmith/pkg/observability"
	"github.com/mkoenig/framesmith/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different documents.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Fonts  fonts.Resolver
	Logger *log.Logger
}

// NewRunner creates a runner with the given collaborators.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
// If fontRes is nil, font resolution is skipped even when requested.
func NewRunner(c cache.Cache, keyer cache.Keyer, fontRes fonts.Resolver, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Fonts:  fontRes,
		Logger: logger,
	}
}

// Execute runs the complete compile → fonts → assemble pipeline with
// caching. The document must already be decoded; scene.Validate is
// re-checked here so API callers cannot bypass it.
func (r *Runner) Execute(ctx context.Context, doc *scene.Document, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := scene.Validate(doc); err != nil {
		return nil, err
	}

	result := &Result{}
	result.Stats.Roots = len(doc.Nodes)
	result.Stats.Nodes = doc.Count()

	// Compute the document hash for the unit cache key. A hash failure
	// only disables caching, never the compilation.
	docHash, err := cache.HashJSON(doc)
	if err == nil {
		result.DocHash = docHash
	} else {
		r.Logger.Debug("document hash failed, caching disabled", "err", err)
	}

	var unitKey string
	if result.DocHash != "" {
		unitKey = r.Keyer.UnitKey(result.DocHash, opts.UnitKeyOpts())
	}

	// Try cache first (unless refresh requested)
	if unitKey != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, unitKey); err == nil && hit {
			var unit compiler.Unit
			if err := json.Unmarshal(data, &unit); err == nil {
				observability.Cache().OnCacheHit(ctx, "unit")
				result.Unit = unit
				result.CacheInfo.UnitHit = true
				return result, nil
			}
			// Corrupt entry: recompile and overwrite below.
		}
		observability.Cache().OnCacheMiss(ctx, "unit")
	}

	// Stage 1: Compile
	name := componentName(doc, opts)
	compileStart := time.Now()
	observability.Pipeline().OnCompileStart(ctx, name, result.Stats.Nodes)
	tree, err := compiler.New(opts.Logger).CompileTree(doc)
	result.Stats.CompileTime = time.Since(compileStart)
	observability.Pipeline().OnCompileComplete(ctx, name, treeEmitted(tree), result.Stats.CompileTime, err)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	result.Stats.Emitted = tree.Emitted
	result.Stats.Pruned = tree.Pruned
	result.Stats.Families = tree.Families

	r.Logger.Info("compiled scene tree",
		"roots", result.Stats.Roots,
		"emitted", tree.Emitted,
		"pruned", tree.Pruned,
		"duration", result.Stats.CompileTime)

	// Stage 2: Fonts
	fontCSS, err := r.resolveFonts(ctx, tree.Families, &opts, &result.Stats)
	if err != nil {
		return nil, err
	}

	// Stage 3: Assemble
	assembleStart := time.Now()
	result.Unit = compiler.Assemble(doc.Nodes[0], tree.Markup, name, fontCSS)
	result.Stats.AssembleTime = time.Since(assembleStart)

	r.Logger.Info("assembled unit",
		"name", result.Unit.Name,
		"markup_bytes", len(result.Unit.Markup),
		"stylesheet_bytes", len(result.Unit.Stylesheet))

	// Cache the result
	if unitKey != "" {
		if data, err := json.Marshal(result.Unit); err == nil {
			if err := r.Cache.Set(ctx, unitKey, data, cache.TTLUnit); err == nil {
				observability.Cache().OnCacheSet(ctx, "unit", len(data))
			}
		}
	}

	return result, nil
}

// resolveFonts runs the font stage. Provider failures degrade inside
// the resolver; only context cancellation (or another hard resolver
// error) propagates.
func (r *Runner) resolveFonts(ctx context.Context, families []string, opts *Options, stats *Stats) (string, error) {
	if !opts.Fonts || r.Fonts == nil || len(families) == 0 {
		return "", nil
	}

	start := time.Now()
	observability.Pipeline().OnFontsStart(ctx, families)
	css, err := r.Fonts.Resolve(ctx, families)
	stats.FontsTime = time.Since(start)
	observability.Pipeline().OnFontsComplete(ctx, families, stats.FontsTime, err)
	if err != nil {
		return "", fmt.Errorf("resolve fonts: %w", err)
	}

	r.Logger.Info("resolved fonts",
		"families", len(families),
		"css_bytes", len(css),
		"duration", stats.FontsTime)
	return css, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// componentName picks the raw name the unit is derived from: the
// explicit override, else the first root's layer name, else the
// document name. Sanitization happens in the assembler.
func componentName(doc *scene.Document, opts Options) string {
	if opts.Name != "" {
		return opts.Name
	}
	if name := doc.Nodes[0].Name; name != "" {
		return name
	}
	return doc.Name
}

func treeEmitted(t *compiler.Tree) int {
	if t == nil {
		return 0
	}
	return t.Emitted
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
