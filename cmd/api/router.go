package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vaultpass/passmeter-go/internal/config"
	"github.com/vaultpass/passmeter-go/internal/crypto"
	"github.com/vaultpass/passmeter-go/internal/handler"
	"github.com/vaultpass/passmeter-go/internal/metrics"
	"github.com/vaultpass/passmeter-go/internal/middleware"
	"github.com/vaultpass/passmeter-go/internal/service"
)

type deps struct {
	cfg      config.Config
	log      *zap.Logger
	gatherer prometheus.Gatherer
	metrics  *metrics.Collectors
	fp       *crypto.Fingerprinter
}

func newRouter(ctx context.Context, d deps) http.Handler {
	defaults := crypto.DefaultOptions()
	defaults.Length = d.cfg.DefaultLength

	v := handler.NewValidator()
	genService := service.NewGeneratorService(crypto.NewGenerator(nil), defaults, d.log, d.metrics)
	genHandler := handler.NewGeneratorHandler(genService, v)
	analyzerService := service.NewAnalyzerService(d.log, d.metrics, d.fp)
	analyzerHandler := handler.NewAnalyzerHandler(analyzerService, v)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.log))
	r.Use(middleware.Metrics(d.metrics))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if d.cfg.MetricsEnabled && d.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, d.cfg.RateLimitRPS, d.cfg.RateLimitBurst))
		r.Use(middleware.BearerAuth(d.cfg.AuthSecret))

		r.Post("/generate", genHandler.HandleGenerate)
		r.Post("/analyze", analyzerHandler.HandleAnalyze)
	})

	return r
}
