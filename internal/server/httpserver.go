package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServer runs an http.Server until its context is canceled.
type HTTPServer struct {
	Addr    string
	Handler http.Handler
	Logger  *slog.Logger
}

func (s HTTPServer) Run(ctx context.Context) error {
	srv := http.Server{Addr: s.Addr, Handler: s.Handler, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		s.Logger.Debug("started", "addr", s.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Logger.Debug("stopped")
	return err
}
