package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordspin/internal/server"
	"github.com/matzehuels/wordspin/pkg/cache"
	"github.com/matzehuels/wordspin/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	redisAddr string // redis cache backend (empty: file cache)
	mongoURI  string // run history store (empty: history disabled)
	mongoDB   string // mongodb database name
	noCache   bool   // disable the artifact cache
}

// serveCommand creates the serve command exposing the pipeline over
// HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:    ":8080",
		mongoDB: appName,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the word-cloud HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared artifact cache (host:port)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "mongodb uri for run history (disabled when empty)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "mongodb database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runServe wires up the cache, history, and runner, then serves until
// interrupted.
func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := c.serverCache(opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, nil, nil, c.Logger)
	defer runner.Close()

	var history *server.History
	if opts.mongoURI != "" {
		history, err = server.NewHistory(ctx, opts.mongoURI, opts.mongoDB)
		if err != nil {
			return err
		}
		defer history.Close(ctx)
		c.Logger.Info("run history enabled", "db", opts.mongoDB)
	}

	srv := server.New(server.Config{
		Addr:    opts.addr,
		Runner:  runner,
		History: history,
		Logger:  c.Logger,
	})
	return srv.ListenAndServe(ctx)
}

// serverCache picks the cache backend for server mode. Redis wins over
// the file cache so multiple instances can share artifacts.
func (c *CLI) serverCache(opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		c.Logger.Info("using redis cache", "addr", opts.redisAddr)
		return cache.NewRedisCache(context.Background(), opts.redisAddr)
	}
	return newCache(false)
}
