package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/listpager/internal/config"
	"github.com/rshade/listpager/internal/httpserver"
	"github.com/rshade/listpager/internal/logging"
)

func newServeCmd(s *session) *cobra.Command {
	var (
		host  string
		port  int
		flags DatasetFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the paginated list over HTTP",
		Long: `Starts an HTTP server that renders the dataset as an HTML page with
navigation links. Each link is a full page load of /?page=N.

Also exposed:
  GET /api/page?page=N   the page as JSON
  GET /health            liveness check`,
		Example: `  # Serve on the configured address
  listpager serve

  # Serve a dataset file on all interfaces
  listpager serve --host 0.0.0.0 --port 9000 --dataset staff.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.apply(cmd, s.cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			return runServe(cmd.Context(), cmd, cfg, s.logger(), sigCh)
		},
	}

	cmd.Flags().StringVar(&host, "host", config.DefaultHost, "listen host (overrides server.host)")
	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "listen port (overrides server.port)")
	flags.register(cmd)

	return cmd
}

// runServe runs the HTTP server until ctx is cancelled or a signal arrives
// on sigCh. A nil sigCh never fires.
func runServe(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	logger zerolog.Logger,
	sigCh <-chan os.Signal,
) error {
	p, set, err := openPager(cfg)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	srv, err := httpserver.New(httpserver.Config{
		Logger: logger,
		Host:   cfg.Server.Host,
		Port:   cfg.Server.Port,
		Mode:   cfg.Server.Mode,
		Pager:  p,
		Kind:   set.Kind,
		Title:  titleFor(cfg, set),
	})
	if err != nil {
		return err
	}

	cmd.Printf("Serving %d %s on http://%s (press Ctrl+C to stop)\n", set.Len(), set.Kind, srv.Addr())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx)
	})
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})
	return g.Wait()
}
