// Package cli implements the framesmith command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkoenig/framesmith/pkg/buildinfo"
	"github.com/mkoenig/framesmith/pkg/cache"
	"github.com/mkoenig/framesmith/pkg/fonts"
	"github.com/mkoenig/framesmith/pkg/httputil"
	"github.com/mkoenig/framesmith/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "framesmith"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	// configPath is an explicit config file location from --config.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "framesmith",
		Short:        "Framesmith compiles design scene trees into React components",
		Long:         `Framesmith takes scene trees exported from a design tool and deterministically compiles them into React components with companion stylesheets, preserving geometry, paint, typography, and auto-layout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./framesmith.toml, then ~/.config/framesmith/config.toml)")

	// Register all subcommands
	root.AddCommand(c.compileCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use, honoring the cache
// and fonts sections of the loaded config.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	unitCache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(unitCache, nil, c.newFontResolver(), c.Logger), nil
}

// newCache builds the unit cache backend: redis when configured, a
// file cache otherwise. Cache setup failures degrade to no caching
// rather than failing the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disable {
		return cache.NewNullCache(), nil
	}
	if addr := c.Config.Cache.RedisAddr; addr != "" {
		rc, err := cache.NewRedisCache(ctx, addr)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "addr", addr, "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newFontResolver builds the remote font resolver, or nil when fonts
// are disabled in config.
func (c *CLI) newFontResolver() fonts.Resolver {
	if c.Config.Fonts.Disable {
		return nil
	}
	var httpCache *httputil.Cache
	if dir, err := c.cacheDir(); err == nil {
		if hc, err := httputil.NewCache(dir, cache.TTLFontCSS); err == nil {
			httpCache = hc
		}
	}
	return fonts.NewProviderResolver(c.Config.Fonts.Provider, httpCache, c.Logger)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory: the configured one, else the
// XDG standard location (~/.cache/framesmith/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
