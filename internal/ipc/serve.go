package ipc

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/viv/pkg/server"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// Config holds configuration for Serve.
type Config struct {
	Host *server.Server
	// Addr is the listen address, e.g. "127.0.0.1:7007".
	Addr string
	// Listener overrides Addr when set.
	Listener net.Listener
	// WatchPath, when set, reloads the host whenever the file changes.
	WatchPath string
	Logger    *log.Logger
	// Ready, if set, is called with the bound address once listening.
	Ready func(addr net.Addr)
}

// Serve runs the host's event loop and the HTTP server until ctx is done or
// the host terminates. A terminate action therefore shuts the server down.
func Serve(ctx context.Context, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	ln := cfg.Listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", cfg.Addr); err != nil {
			return err
		}
	}
	logger.Info("Serving", "addr", "http://"+ln.Addr().String())
	if cfg.Ready != nil {
		cfg.Ready(ln.Addr())
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: NewRouter(cfg.Host, logger),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		err := cfg.Host.Run(egctx)
		if stderrors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if cfg.WatchPath != "" {
		eg.Go(func() error {
			return cfg.Host.WatchConfig(egctx, cfg.WatchPath, nil)
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		select {
		case <-egctx.Done():
		case <-cfg.Host.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Debug("Shutting down IPC server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
