package rest

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oldmonad/cloudsweep/internal/app"
	cerrors "github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/oldmonad/cloudsweep/pkg/metrics"
	"github.com/oldmonad/cloudsweep/pkg/ports"
	"github.com/oldmonad/cloudsweep/pkg/ports/rest/handlers"
	"github.com/oldmonad/cloudsweep/pkg/utils/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type standardHTTPServer struct {
	*http.Server
}

func (s *standardHTTPServer) ListenAndServe() error {
	return s.Server.ListenAndServe()
}

func (s *standardHTTPServer) Shutdown(ctx context.Context) error {
	return s.Server.Shutdown(ctx)
}

var NewHTTPServer = func(addr string, handler http.Handler) HTTPServer {
	return &standardHTTPServer{
		Server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

type Server struct {
	app       app.AppRunner
	validator validator.Validator
}

var _ ports.Server = (*Server)(nil)

func NewServer(app app.AppRunner, validator validator.Validator) *Server {
	return &Server{app: app, validator: validator}
}

// Router wires every HTTP route behind the request ID, recovery and metrics
// middleware.
func (s *Server) Router() http.Handler {
	inventory := handlers.NewInventoryHandler(s.app, s.validator)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/instances", inventory.ListInstances)
	r.Get("/buckets", inventory.ListBuckets)
	r.Post("/volumes/reap", inventory.ReapVolumes)

	return r
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context, port string) error {
	addr := ":" + port
	server := NewHTTPServer(addr, s.Router())

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.GetLogger().Info("Starting HTTP server", zap.String("addr", addr))

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- cerrors.NewErrServerListen(addr, err)
		}
	}()

	select {
	case err := <-errChan:
		logger.GetLogger().Error("HTTP server failed", zap.Error(err))
		return err
	case <-ctx.Done():
		logger.GetLogger().Info("Received shutdown signal, stopping server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.GetLogger().Error("Server shutdown failed", zap.Error(err))
			return cerrors.NewErrServerShutdown(err)
		}

		logger.GetLogger().Info("Server stopped successfully")
		return nil
	}
}
