package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin router serving the storage API.
func NewRouter(engine Engine, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(logger))

	Routes(router, NewHandler(engine))
	return router
}

// Start serves the storage API on cfg.Addr until ctx is cancelled, then
// shuts down gracefully.
func Start(ctx context.Context, cfg Config, engine Engine, logger *slog.Logger) error {
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: NewRouter(engine, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
