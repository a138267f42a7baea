package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomdlwr "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/geo-server/internal/middlewares"
)

const (
	bodyLimit = "1KB" // Only GET and HEAD are served.

	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	logger            *zap.Logger           `option:"mandatory" validate:"required"`
	addr              string                `option:"mandatory" validate:"required,hostname_port"`
	allowOrigins      []string              `option:"mandatory" validate:"min=1"`
	staticRoot        string                `option:"mandatory" validate:"required"`
	handlersRegistrar func(e *echo.Echo)    `option:"mandatory" validate:"required"`
	routedPaths       []string              `option:"mandatory"`
	errorHandler      echo.HTTPErrorHandler `option:"mandatory" validate:"required"`
}

type Server struct {
	lg  *zap.Logger
	srv *http.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = opts.errorHandler

	opts.handlersRegistrar(e)

	e.Use(
		middlewares.NewRequestID(),
		middlewares.NewRequestLogger(opts.logger),
		middlewares.NewRecovery(opts.logger),
		echomdlwr.CORSWithConfig(echomdlwr.CORSConfig{
			AllowOrigins: opts.allowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead},
		}),
		echomdlwr.BodyLimit(bodyLimit),
		middlewares.NewStatic(opts.staticRoot, opts.routedPaths),
	)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           e,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &Server{
		lg:  opts.logger,
		srv: srv,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run binds the address and serves until ctx is done.
// Bind errors are returned immediately.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %q: %v", s.srv.Addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return s.srv.Shutdown(ctx) //nolint:contextcheck // graceful shutdown with new context
	})

	eg.Go(func() error {
		s.lg.Info("server running", zap.String("addr", ln.Addr().String()), zap.String("url", localURL(ln.Addr())))

		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}
		return nil
	})

	return eg.Wait()
}

func localURL(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok && tcp.IP.IsUnspecified() {
		return fmt.Sprintf("http://localhost:%d", tcp.Port)
	}
	return "http://" + addr.String()
}
