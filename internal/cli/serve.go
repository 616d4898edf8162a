package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkoenig/framesmith/internal/server"
	"github.com/mkoenig/framesmith/pkg/history"
)

// defaultAddr is the listen address when neither flag nor config set one.
const defaultAddr = ":8080"

// memoryHistoryCap bounds the in-memory history when no MongoDB store
// is configured.
const memoryHistoryCap = 1000

// serveCommand creates the serve command exposing the compiler over HTTP
// for design-tool plugins.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compiler over HTTP",
		Long: `Serve the compiler over HTTP.

Exposes POST /api/v1/compile for design-tool plugins that submit scene
documents, GET /api/v1/history for recent compilations, and GET /healthz
for liveness. Compilation history is kept in memory unless a MongoDB
URI is configured under [server] history_uri.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if addr == "" {
				addr = defaultAddr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config [server] addr, else :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	store := c.newHistoryStore(ctx)
	defer store.Close(context.Background())

	srv := server.New(addr, runner, store, logger)
	printInfo("Listening on %s", StyleHighlight.Render(addr))
	printNextStep("Compile a document", fmt.Sprintf("curl -X POST --data-binary @scene.json localhost%s/api/v1/compile", addr))
	return srv.Run(ctx)
}

// newHistoryStore builds the history backend: MongoDB when configured,
// bounded in-memory otherwise. A Mongo connection failure degrades to
// the memory store with a warning so serving still starts.
func (c *CLI) newHistoryStore(ctx context.Context) history.Store {
	uri := c.Config.Server.HistoryURI
	if uri == "" {
		return history.NewMemoryStore(memoryHistoryCap)
	}
	store, err := history.NewMongoStore(ctx, uri)
	if err != nil {
		c.Logger.Warn("history store unavailable, using in-memory history", "err", err)
		return history.NewMemoryStore(memoryHistoryCap)
	}
	return store
}
