// Package server exposes the estimator over HTTP. Requests carry the same
// flat parameters as a deep link; responses carry the outbound lead set.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rgehrsitz/hpgo/internal/calculation"
	"github.com/rgehrsitz/hpgo/internal/config"
	"github.com/rgehrsitz/hpgo/internal/domain"
)

const (
	maxBodyBytes    = 64 << 10
	shutdownTimeout = 10 * time.Second
)

// Server serves estimates from a single engine.
type Server struct {
	Engine  *calculation.EstimationEngine
	Limiter *RateLimiter // nil disables rate limiting
	Cache   Cache        // nil disables caching
	Addr    string
	Debug   bool

	fingerprint string
}

// New builds a server for cfg. A nil engine uses the default tables.
func New(cfg config.ServerConfig, engine *calculation.EstimationEngine) *Server {
	if engine == nil {
		engine = calculation.NewEstimationEngine()
	}
	s := &Server{
		Engine:      engine,
		Addr:        cfg.Addr,
		Debug:       cfg.Debug,
		fingerprint: fundingFingerprint(engine.Funding),
	}
	if cfg.RateLimit > 0 {
		s.Limiter = NewRateLimiter(cfg.RateLimit, config.RateLimitWindow)
	}
	if cfg.RedisAddr != "" {
		s.Cache = NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	}
	return s
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		if s.Limiter != nil {
			r.Use(RateLimitMiddleware(s.Limiter))
		}
		r.Get("/estimate", s.handleEstimateQuery)
		r.Post("/estimate", s.handleEstimateBody)
		r.Get("/lead-params", s.handleLeadParams)
		r.Post("/lead-params/verify", s.handleVerifyLeadParams)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	defer s.Close()

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("hpgo listening on %s", s.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Println("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("server exited")
	return nil
}

// Close releases the rate limiter and the cache connection.
func (s *Server) Close() {
	if s.Limiter != nil {
		s.Limiter.Stop()
	}
	if c, ok := s.Cache.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Printf("closing cache: %v", err)
		}
	}
}

// estimate normalizes p and estimates it, consulting the cache on the
// normalized input. Cache failures fall back to computing.
func (s *Server) estimate(ctx context.Context, p domain.PartialScenario) domain.EstimateReport {
	in, norm := calculation.Normalize(p)
	if s.Cache == nil {
		report := s.Engine.Estimate(in)
		report.Normalization = norm
		return report
	}

	key := cacheKey(s.fingerprint, in)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		var report domain.EstimateReport
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			report.Normalization = norm
			return report
		}
		log.Printf("discarding unreadable cache entry %s", key)
	}

	report := s.Engine.Estimate(in)
	if data, err := json.Marshal(report); err == nil {
		if err := s.Cache.Set(ctx, key, string(data)); err != nil {
			log.Printf("cache set failed: %v", err)
		}
	}
	report.Normalization = norm
	return report
}
