package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"multilingua/internal/infra/adapter/persistence/memory"
	"multilingua/internal/infra/adapter/persistence/static"
	"multilingua/internal/infra/seed"
	"multilingua/internal/observability/logging"
	"multilingua/internal/observability/metrics"
	"multilingua/internal/observability/tracing"
	"multilingua/internal/repository"
	"multilingua/pkg/config"

	artUC "multilingua/internal/usecase/article"
	subjUC "multilingua/internal/usecase/subject"

	hhttp "multilingua/internal/handler/http"
	harticle "multilingua/internal/handler/http/article"
	"multilingua/internal/handler/http/requestid"
	hsubject "multilingua/internal/handler/http/subject"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	shutdownTracing := initTracing(logger)
	defer shutdownTracing()

	subjects, articles := initStore(logger)
	version := config.GetEnvString("VERSION", "dev")

	handler := setupServer(logger, subjects, articles, version)

	runServer(logger, handler, version)
}

// initTracing installs a tracer provider and W3C context propagation.
// Span export is left to a collector sidecar; the in-process provider only
// assigns IDs and propagates context.
func initTracing(logger *slog.Logger) func() {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}
}

// initStore loads the embedded dataset and builds the configured backend.
// STORE_BACKEND selects between "memory" (mutable) and "static" (read-only).
func initStore(logger *slog.Logger) (repository.SubjectRepository, repository.ArticleRepository) {
	ds, err := seed.Load()
	if err != nil {
		logger.Error("failed to load seed dataset", slog.Any("error", err))
		os.Exit(1)
	}

	backend := config.GetEnvString("STORE_BACKEND", "memory")
	var subjects repository.SubjectRepository
	var articles repository.ArticleRepository

	switch backend {
	case "memory":
		store := memory.NewStoreFromDataset(ds)
		subjects = memory.NewSubjectRepo(store)
		articles = memory.NewArticleRepo(store)
	case "static":
		store := static.NewStore(ds)
		subjects = static.NewSubjectRepo(store)
		articles = static.NewArticleRepo(store)
	default:
		logger.Error("unknown store backend", slog.String("backend", backend))
		os.Exit(1)
	}

	metrics.UpdateCatalogSize(len(ds.Subjects), len(ds.Articles))
	logger.Info("content store initialized",
		slog.String("backend", backend),
		slog.Int("subjects", len(ds.Subjects)),
		slog.Int("articles", len(ds.Articles)))

	return subjects, articles
}

// setupServer registers all routes and wraps them in the middleware chain.
func setupServer(
	logger *slog.Logger,
	subjects repository.SubjectRepository,
	articles repository.ArticleRepository,
	version string,
) http.Handler {
	subjSvc := subjUC.Service{Repo: subjects}
	artSvc := artUC.Service{Repo: articles, Logger: logger}

	mux := http.NewServeMux()
	hsubject.Register(mux, subjSvc)
	harticle.Register(mux, artSvc, subjSvc)

	mux.Handle("/health", &hhttp.HealthHandler{Subjects: subjects, Articles: articles, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{Subjects: subjects})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: CORS -> Tracing -> Request ID -> Rate Limit -> Recovery -> Logging -> Body Limit -> Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsOrigins := config.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"})

	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)

	if config.GetEnvBool("RATE_LIMIT_ENABLED", true) {
		rps := config.GetEnvFloat("RATE_LIMIT_RPS", 20)
		burst := config.GetEnvInt("RATE_LIMIT_BURST", 40)
		limiter := hhttp.NewRateLimiter(rps, burst)
		chain = limiter.Limit(chain)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", rps),
			slog.Int("burst", burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain = requestid.Middleware(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.CORS(hhttp.CORSConfig{AllowedOrigins: corsOrigins})(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := config.GetEnvString("ADDR", ":8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
