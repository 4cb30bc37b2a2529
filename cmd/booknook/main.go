package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"BookNook/internal/auth"
	"BookNook/internal/catalog"
	"BookNook/internal/review"
	"BookNook/pkg/kit"
)

const (
	loginLimitPerMin    = 5
	registerLimitPerMin = 3
	limitWindow         = 60 * time.Second
)

func main() {
	service := "booknook"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	jwtSecret := getenv("JWT_SECRET", "dev-secret")
	booksFile := getenv("BOOKS_FILE", "books.json")
	databaseURL := os.Getenv("DATABASE_URL")
	bcryptCost := getenvInt("BCRYPT_COST", bcrypt.DefaultCost)
	metricsEnabled := os.Getenv("METRICS_ENABLED") == "true"
	metricsToken := os.Getenv("METRICS_TOKEN")

	var (
		catalogStore catalog.Store
		userStore    auth.UserStore
	)
	if databaseURL != "" {
		db, err := sql.Open("pgx", databaseURL)
		if err != nil {
			log.Fatal("open database", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		catalogStore = catalog.NewPostgresStore(db)
		userStore = auth.NewPostgresStore(db, bcryptCost)
		log.Info("using postgres stores")
	} else {
		catalogStore = catalog.NewFileStore(booksFile)
		userStore = auth.NewMemStore(bcryptCost)
		log.Info("using file catalog", zap.String("path", booksFile))
	}

	tokens := auth.NewTokenMaker(jwtSecret)

	catalogSrv := &catalog.Server{Store: catalogStore, Log: log}
	authSrv := &auth.Server{Log: log, Store: userStore, JWT: tokens}
	reviewSrv := &review.Server{
		Log:     log,
		Service: review.NewService(catalogStore),
		JWT:     tokens,
	}

	registry := prometheus.NewRegistry()
	metrics := kit.NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(log))
	r.Use(metrics.Middleware(service, kit.RoutePatternOrPath))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := catalogStore.Ping(ctx); err != nil {
			log.Warn("readyz failed", zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	if metricsEnabled {
		r.With(kit.MetricsAuth(metricsToken)).Handle(
			"/metrics",
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		)
	}

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, limitWindow)
	registerLimiter := kit.NewIPRateLimiter(registerLimitPerMin, limitWindow)

	catalogSrv.Register(r)
	reviewSrv.Register(r)
	r.Group(func(ar chi.Router) {
		ar.With(registerLimiter.Middleware).Post("/register", authSrv.HandleRegister)
		ar.With(loginLimiter.Middleware).Post("/login", authSrv.HandleLogin)
	})

	if err := kit.RunHTTPServer(":"+port, r, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
