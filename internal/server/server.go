package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"

	"github.com/go-softwarelab/common/docs/internal/apperror"
	"github.com/go-softwarelab/common/docs/internal/assets"
	"github.com/go-softwarelab/common/docs/internal/config"
	"github.com/go-softwarelab/common/docs/internal/handlers"
	"github.com/go-softwarelab/common/docs/internal/logger"
	"github.com/go-softwarelab/common/docs/internal/site"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config *config.Config
	Meta   site.Meta
	Log    *slog.Logger
}

// NewRouter creates and configures the HTTP handler tree
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	log := p.Log.With(logger.Scope("http"))

	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(log),
		middleware.Recoverer,
		middleware.GetHead,
	)
	if cfg.RateLimit.Enabled() {
		r.Use(httprate.Limit(
			cfg.RateLimit.RequestsPerMinute,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				apperror.Write(w, r, log, apperror.ErrTooManyRequests)
			}),
		))
	}

	r.NotFound(apperror.NotFoundHandler(log))
	r.MethodNotAllowed(apperror.MethodNotAllowedHandler(log))

	// Health check
	r.Get("/health", handlers.Health)

	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.Handler())
	}

	pages := handlers.NewPages(p.Meta, p.Log)
	base := p.Meta.Path("")

	r.Get(base, apperror.Handle(log, pages.LandingPage))

	// Static files
	staticPrefix := base + "static/"
	r.Handle(staticPrefix+"*", http.StripPrefix(staticPrefix, http.FileServer(http.FS(assets.Static()))))

	if base != "/" {
		toBase := func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, base, http.StatusMovedPermanently)
		}
		r.Get("/", toBase)
		r.Get(strings.TrimSuffix(base, "/"), toBase)
	}

	return otelhttp.NewHandler(r, "docsite",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health" && r.URL.Path != cfg.Metrics.Path
		}),
	)
}

// requestLogger logs each request, skipping health checks
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}
			if status >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
			} else {
				log.Info("request", attrs...)
			}
		})
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, handler http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
