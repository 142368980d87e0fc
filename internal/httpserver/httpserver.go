// Package httpserver serves paginated pages to browsers over HTTP. Every
// request is evaluated from its own URL, so navigation is a plain link and
// each click is a fresh page load.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rshade/listpager/internal/dataset"
	"github.com/rshade/listpager/internal/pager"
)

const (
	shutdownTimeout   = 15 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// ErrNilPager is returned by New when no pager is configured.
var ErrNilPager = errors.New("httpserver: nil pager")

// Config holds what New needs.
type Config struct {
	Logger zerolog.Logger
	Host   string
	Port   int
	// Mode is a gin mode: debug, release or test.
	Mode  string
	Pager *pager.Pager[dataset.Record]
	Kind  dataset.Kind
	Title string
}

// HTTPServer is the gin-backed browser sink.
type HTTPServer struct {
	gin   *gin.Engine
	l     zerolog.Logger
	addr  string
	pager *pager.Pager[dataset.Record]
	kind  dataset.Kind
	title string
}

// New builds the server and registers its routes.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Pager == nil {
		return nil, ErrNilPager
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:   gin.New(),
		l:     cfg.Logger.With().Str("component", "httpserver").Logger(),
		addr:  net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		pager: cfg.Pager,
		kind:  cfg.Kind,
		title: cfg.Title,
	}
	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the routes, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Addr is the listen address.
func (srv *HTTPServer) Addr() string {
	return srv.addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              srv.addr,
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Info().Str("addr", srv.addr).Msg("started server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("serving on %s: %w", srv.addr, err)
		}
		return nil
	case <-ctx.Done():
		srv.l.Info().Msg("shutting down gracefully")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Error().Err(err).Msg("server shutdown error")
		return fmt.Errorf("shutting down: %w", err)
	}
	srv.l.Info().Msg("server stopped")
	return nil
}
