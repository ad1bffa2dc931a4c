package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/transpose/internal/server"
	"github.com/matzehuels/transpose/pkg/observability"
	"github.com/matzehuels/transpose/pkg/pipeline"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 5 * time.Second
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		cache cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transform engine over HTTP",
		Long: `Serve the transform engine over HTTP.

  POST /v1/grid   {"rows": [["a","b"]], "op": "rotate", "angle": 90}
  POST /v1/text   text body; options as query parameters
  GET  /v1/ops    grid symmetries
  GET  /metrics   Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") && cfg.Serve.Addr != "" {
				addr = cfg.Serve.Addr
			}
			runner, err := c.newRunner(cache, cfg)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			h, err := c.serverHandler(runner, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			return c.listenAndServe(cmd.Context(), addr, h)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&cache.enabled, "cache", false, "cache results in the user cache directory")
	cmd.Flags().StringVar(&cache.dir, "cache-dir", "", "cache results in this directory")
	cmd.Flags().StringVar(&cache.redis, "redis", "", "cache results in redis at this URL")
	cmd.Flags().BoolVar(&cache.noCache, "no-cache", false, "disable caching even if configured")
	return cmd
}

// serverHandler registers metrics on reg, installs them as the global
// hooks and returns the router.
func (c *CLI) serverHandler(runner *pipeline.Runner, reg *prometheus.Registry) (http.Handler, error) {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	observability.SetPipelineHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)

	s := &server.Server{Runner: runner, Logger: c.Logger, Gatherer: reg}
	return s.Handler(), nil
}

// listenAndServe runs h on addr until ctx is canceled, then shuts down.
func (c *CLI) listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	c.Logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
