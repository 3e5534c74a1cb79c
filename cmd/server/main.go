package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"retireplan/internal/planning/artifact"
	"retireplan/internal/planning/chart"
	"retireplan/internal/planning/delivery"
	"retireplan/internal/planning/handler"
	"retireplan/internal/planning/intake"
	"retireplan/internal/planning/metrics"
	"retireplan/internal/planning/projection"
	"retireplan/internal/planning/report"
	"retireplan/internal/planning/service"
	"retireplan/internal/platform/config"
	"retireplan/internal/platform/health"
	"retireplan/internal/platform/httpserver"
	"retireplan/internal/platform/logger"
	"retireplan/internal/platform/middleware"
	"retireplan/internal/platform/tracer"
	"retireplan/pkg/platform/circuit"
	"retireplan/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/planning.
func main() {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	log.Info("initializing retireplan",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"smtp_host", cfg.Mail.Host,
		"retain_reports", cfg.Artifacts.RetainReports,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := build(cfg, log, reg)
	if err != nil {
		log.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	router := newRouter(cfg, log, reg, app)
	srv := httpserver.New(cfg.Addr, router, httpserver.WithWriteTimeout(cfg.RequestTimeout+30*time.Second))

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

type application struct {
	planning  *handler.Handler
	health    *health.Handler
	endpoints *middleware.Metrics
}

func build(cfg config.Server, log *slog.Logger, reg prometheus.Registerer) (*application, error) {
	store, err := artifact.NewStore(cfg.Artifacts.Dir, artifact.WithRetainReports(cfg.Artifacts.RetainReports))
	if err != nil {
		return nil, fmt.Errorf("artifact store: %w", err)
	}

	converter := report.NewPDFConverter(cfg.Render.WkhtmltopdfPath)
	composer, err := report.New(converter,
		report.WithCurrency(cfg.Render.Currency),
		report.WithSymbol(cfg.Render.CurrencySymbol),
		report.WithTimeout(cfg.Render.DocumentTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("report composer: %w", err)
	}

	transport, err := delivery.NewSMTPTransport(delivery.SMTPConfig{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		TLSPolicy: cfg.Mail.TLSPolicy,
		Timeout:   cfg.Mail.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("smtp transport: %w", err)
	}
	breaker := circuit.New("smtp",
		circuit.WithFailureThreshold(cfg.Mail.BreakerThreshold),
		circuit.WithCooldown(cfg.Mail.BreakerCooldown),
	)
	dispatcher, err := delivery.New(
		delivery.Config{From: cfg.Mail.From, Timeout: cfg.Mail.Timeout},
		transport,
		delivery.WithBreaker(breaker),
		delivery.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: %w", err)
	}

	svc, err := service.New(
		intake.New(intake.WithRates(cfg.Projection.GrowthRate, cfg.Projection.InflationRate)),
		service.ProjectorFunc(projection.Project),
		timedChartRenderer{renderer: chart.New(), timeout: cfg.Render.ChartTimeout},
		composer,
		dispatcher,
		service.NewArtifactStore(store),
		service.WithMetrics(metrics.New(reg)),
		service.WithTracer(tracer.NewOTel()),
		service.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("planning service: %w", err)
	}

	healthHandler := health.New(cfg.Environment)
	registerHealthChecks(healthHandler, store, converter, breaker)

	return &application{
		planning:  handler.New(svc, log),
		health:    healthHandler,
		endpoints: middleware.NewMetrics(reg),
	}, nil
}

func newRouter(cfg config.Server, log *slog.Logger, reg *prometheus.Registry, app *application) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(log))

	app.health.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Latency(app.endpoints, func(*http.Request) string { return handler.SubmitPath }))
		r.Use(middleware.Timeout(cfg.RequestTimeout))
		r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
		r.Use(middleware.ContentTypeJSON)
		app.planning.Register(r)
	})
	return r
}
