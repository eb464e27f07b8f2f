// Package server собирает HTTP API: роутер chi, middleware и handlers.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/muslimguide/internal/events"
	"github.com/iudanet/muslimguide/internal/metrics"
	"github.com/iudanet/muslimguide/internal/server/handlers"
	"github.com/iudanet/muslimguide/internal/server/middleware"
	"github.com/iudanet/muslimguide/internal/server/storage"
)

// Storage все хранилища, которые нужны API
type Storage interface {
	storage.ListingStorage
	storage.CounterStorage
	storage.CampaignStorage
	storage.AnalyticsStorage
	storage.ReportStorage
	storage.DeviceStorage
	handlers.Pinger
}

// Options параметры HTTP API
type Options struct {
	Version         string
	JWT             handlers.JWTConfig
	RateLimit       int
	RateWindow      time.Duration
	ShutdownTimeout time.Duration
}

// Server HTTP сервер справочника
type Server struct {
	handler         http.Handler
	logger          *slog.Logger
	limiter         *middleware.RateLimiter
	shutdownTimeout time.Duration
}

// New creates the server and wires every route. Close must be called to stop
// the rate limiter.
func New(logger *slog.Logger, store Storage, publisher events.Publisher, m *metrics.ServerMetrics, opts Options) *Server {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if m == nil {
		m = metrics.New("guide")
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	limiter := middleware.NewRateLimiter(opts.RateLimit, opts.RateWindow, logger)

	healthHandler := handlers.NewHealthHandler(logger, store, opts.Version)
	deviceHandler := handlers.NewDeviceHandler(logger, store, opts.JWT)
	listingHandler := handlers.NewListingHandler(logger, store)
	counterHandler := handlers.NewCounterHandler(logger, store, publisher, m)
	campaignHandler := handlers.NewCampaignHandler(logger, store)
	analyticsHandler := handlers.NewAnalyticsHandler(logger, store, m)
	reportHandler := handlers.NewReportHandler(logger, store)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingMiddleware(logger, "/api/v1/health", "/metrics"))

	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.With(limiter.Middleware).Post("/devices", deviceHandler.Register)

		r.Get("/listings", listingHandler.List)
		r.Get("/listings/{id}", listingHandler.Get)
		r.Get("/featured", listingHandler.Featured)
		r.Get("/campaigns", campaignHandler.List)
		r.Post("/analytics/categories/{name}/click", analyticsHandler.Click)

		// Голоса и обращения только от зарегистрированных устройств
		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceAuthMiddleware(logger, opts.JWT))
			r.Use(limiter.Middleware)

			r.Post("/listings/{id}/counters", counterHandler.ApplyListingDelta)
			r.Post("/listings/{id}/menu/{menuItemID}/counters", counterHandler.ApplyMenuItemDelta)
			r.Post("/reports", reportHandler.Create)
			r.Delete("/reports/{id}", reportHandler.Delete)
		})
	})

	return &Server{
		handler:         r,
		logger:          logger,
		limiter:         limiter,
		shutdownTimeout: opts.ShutdownTimeout,
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		s.logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Close stops background goroutines.
func (s *Server) Close() {
	s.limiter.Stop()
}
