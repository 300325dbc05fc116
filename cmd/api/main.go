// Package main is the entrypoint for the Shows API server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/showsapi/showsapi/docs"
	"github.com/showsapi/showsapi/internal/cache"
	"github.com/showsapi/showsapi/internal/config"
	"github.com/showsapi/showsapi/internal/handler"
	"github.com/showsapi/showsapi/internal/metrics"
	"github.com/showsapi/showsapi/internal/middleware"
	"github.com/showsapi/showsapi/internal/repository"
	"github.com/showsapi/showsapi/internal/server"
	"github.com/showsapi/showsapi/internal/service"
)

// @title Shows API
// @version 1.0.0
// @description A simple API for managing users
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Initialize store
	storeOpts := repository.Options{
		Driver:        cfg.StoreDriver,
		MongoURI:      cfg.MongoURI,
		MongoDatabase: cfg.MongoDatabase,
		DatabaseURL:   cfg.DatabaseURL,
	}
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := repository.Open(connectCtx, storeOpts)
	cancel()
	if err != nil {
		logger.Error(
			"failed to connect to store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", sanitizeError(err, cfg.MongoURI, cfg.DatabaseURL)),
			slog.String("url", redactURL(storeOpts.URL())),
		)
		os.Exit(1)
	}
	logger.Info("connected to store", "driver", cfg.StoreDriver)

	// Initialize cache. Interfaces stay nil when disabled.
	var (
		cacheClient *cache.Cache
		listCache   service.UserListCache
		cacheHealth handler.HealthChecker
	)
	if cfg.CacheEnabled() {
		cacheClient, err = cache.New(ctx, cfg.RedisURL, cfg.UsersCacheTTL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			_ = store.Close(context.Background())
			os.Exit(1)
		}
		listCache = cacheClient
		cacheHealth = cacheClient
		logger.Info("connected to Redis", "ttl", cfg.UsersCacheTTL)
	}

	// Initialize services
	recorder := metrics.NewInMemory()
	userService := service.NewUserService(store, listCache, recorder, logger)

	// Setup router
	r := setupRouter(routes{
		root:    handler.New(),
		health:  handler.NewHealthHandler(store, cacheHealth),
		users:   handler.NewUserHandler(userService, logger, cfg.CompatStoreErrorStatus),
		metrics: handler.NewMetricsHandler(recorder),
	}, cfg, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("store", store.Close)
	if cacheClient != nil {
		srv.OnShutdown("redis", func(context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"docs", cfg.DocsEnabled,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// routes groups the handlers mounted by setupRouter.
type routes struct {
	root    *handler.Handler
	health  *handler.HealthHandler
	users   *handler.UserHandler
	metrics *handler.MetricsHandler
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(h routes, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:  cfg.IsDevelopment(),
		DocsPathPrefix: "/api-docs",
	}))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Operational endpoints
	r.Get("/healthz", h.health.Healthz)
	r.Get("/readyz", h.health.Readyz)
	r.Get("/metrics", h.metrics.Metrics)

	r.Get("/", h.root.Root)

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.users.List)
		r.Post("/", h.users.Create)
		r.Post("/seed", h.users.Seed)
	})

	if cfg.DocsEnabled {
		r.Get("/api-docs", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/api-docs/index.html", http.StatusMovedPermanently)
		})
		r.Get("/api-docs/*", httpSwagger.Handler(
			httpSwagger.URL("/api-docs/doc.json"),
			httpSwagger.DocExpansion("list"),
		))
	}

	// 404 and 405 handlers
	r.NotFound(h.root.NotFound)
	r.MethodNotAllowed(h.root.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
