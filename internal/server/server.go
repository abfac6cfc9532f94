// Package server assembles all HTTP handlers and starts the server.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gymops/memberpulse/internal/alertfeed"
	"github.com/gymops/memberpulse/internal/alerting"
	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/evaluation"
	"github.com/gymops/memberpulse/internal/event"
	"github.com/gymops/memberpulse/internal/handler"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/risk"
)

// Config holds server configuration.
type Config struct {
	Port      int
	Store     records.Store
	Assessor  *risk.Assessor
	Generator *alerting.Generator
	Evaluator *evaluation.Evaluator
	Feed      *alertfeed.Hub
	Bus       event.Publisher
	Policy    func() config.Policy
}

// Run starts the HTTP server with all routes registered and blocks until
// the context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	mh := handler.NewMemberHandler(cfg.Store)
	r.Get("/v1/members", mh.List)
	r.Get("/v1/members/{id}", mh.Get)

	rh := handler.NewRiskHandler(cfg.Store, cfg.Assessor)
	r.Get("/v1/members/{id}/risk-assessment", rh.GetLatestAssessment)
	r.Post("/v1/members/{id}/risk-assessment", rh.CreateAssessment)
	r.Post("/v1/risk-assessments/rescore", rh.Rescore)
	r.Get("/v1/members/{id}/recommended-actions", rh.GetRecommendedActions)

	ach := handler.NewActionHandler(cfg.Store, cfg.Bus)
	r.Post("/v1/actions", ach.Create)
	r.Get("/v1/actions", ach.List)
	r.Put("/v1/actions/{id}/status", ach.UpdateStatus)

	alh := handler.NewAlertHandler(cfg.Store, cfg.Generator, cfg.Bus)
	r.Post("/v1/alerts", alh.Create)
	r.Get("/v1/alerts", alh.List)
	r.Post("/v1/alerts/generate", alh.Generate)
	r.Post("/v1/alerts/dismiss-bulk", alh.DismissBulk)
	r.Put("/v1/alerts/{id}/resolve", alh.Resolve)
	if cfg.Feed != nil {
		r.Get("/v1/alerts/feed", cfg.Feed.ServeHTTP)
	}

	moh := handler.NewModelHandler(cfg.Store, cfg.Evaluator, cfg.Policy)
	r.Post("/v1/model/evaluate", moh.Evaluate)
	r.Get("/v1/model/metrics", moh.GetMetrics)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("starting server on %s", addr)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
