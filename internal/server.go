package internal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/config"
)

// Server defaults.
const (
	DefaultAddress           = ":8080"
	DefaultShutdownTimeout   = 30 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
)

type serverConfig struct {
	logger          *slog.Logger
	onListen        func(net.Addr)
	address         string
	shutdownHooks   []func(context.Context) error
	shutdownTimeout time.Duration
}

// ServerOption configures Serve.
type ServerOption func(*serverConfig)

// WithAddress sets the listen address.
func WithAddress(addr string) ServerOption {
	return func(c *serverConfig) {
		c.address = addr
	}
}

// WithServerLogger sets the logger for lifecycle records.
func WithServerLogger(l *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		c.logger = l
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(c *serverConfig) {
		c.shutdownTimeout = d
	}
}

// WithShutdownHook registers a function run after the server stops
// accepting requests. Hooks run in registration order.
func WithShutdownHook(fn func(context.Context) error) ServerOption {
	return func(c *serverConfig) {
		c.shutdownHooks = append(c.shutdownHooks, fn)
	}
}

// WithOnListen registers a callback receiving the bound address.
// Useful with ":0" addresses.
func WithOnListen(fn func(net.Addr)) ServerOption {
	return func(c *serverConfig) {
		c.onListen = fn
	}
}

// ServerOptionsFromConfig maps the server section of cfg onto ServerOptions.
func ServerOptionsFromConfig(cfg config.ServerConfig) []ServerOption {
	var opts []ServerOption
	if cfg.Address != "" {
		opts = append(opts, WithAddress(cfg.Address))
	}
	if cfg.ShutdownTimeout > 0 {
		opts = append(opts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	return opts
}

// Serve runs an HTTP server for h until ctx is cancelled or the process
// receives SIGINT or SIGTERM, then shuts down gracefully.
//
// Returns nil on clean shutdown, or an error if the server fails to start
// or shutdown steps fail.
func Serve(ctx context.Context, h http.Handler, opts ...ServerOption) error {
	cfg := serverConfig{
		address:         DefaultAddress,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	server := &http.Server{
		Addr:              cfg.address,
		Handler:           h,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Listen first to get actual address
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}
	if cfg.onListen != nil {
		cfg.onListen(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer shutdownCancel()

	var errs []error
	if err := server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	for _, hook := range cfg.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			logger.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	logger.Info("shutdown completed")
	return nil
}
