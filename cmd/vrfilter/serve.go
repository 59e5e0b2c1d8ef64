package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"vrfilter/internal/filter"
	"vrfilter/internal/metrics"
	"vrfilter/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the filter as an HTTP service",
		Long:  `Serves POST /v1/filter, GET /v1/allowed, GET /healthz and GET /metrics.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := c.httpServer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return c.run(ctx, srv)
		},
	}

	cmd.Flags().StringVar(&c.cfg.Addr, "addr", c.cfg.Addr, "Listen address [VRFILTER_ADDR]")

	return cmd
}

// httpServer wires the filter service, metrics registry and router.
func (c *cli) httpServer() (*http.Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc, err := c.service(filter.WithObserver(metrics.New(reg)))
	if err != nil {
		return nil, err
	}

	handler := server.New(svc, c.logger, reg)

	return server.NewHTTPServer(c.cfg.Addr, handler.Router()), nil
}

// run serves until ctx is done, then shuts srv down gracefully.
func (c *cli) run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)

	go func() {
		c.logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	c.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
