package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cpTheAideveloper/geminimultilingual/internal/translator"
)

// Server is the HTTP front of the translator. All shared state behind it
// (catalog, model client, translator) is read-only after New returns, so
// requests need no coordination.
type Server struct {
	addr   string
	engine *gin.Engine
	log    *slog.Logger
}

// New assembles the router around the translator.
func New(addr string, tr *translator.Translator, log *slog.Logger) *Server {
	h := &Handler{translator: tr, log: log}
	return &Server{
		addr:   addr,
		engine: newRouter(h, log),
		log:    log,
	}
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:        s.addr,
		Handler:     s.engine,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
		// No WriteTimeout: the translate handler waits on a model call
		// that carries no deadline, and the response must outlast it.
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.log.Info("http server stopped")
	return nil
}
