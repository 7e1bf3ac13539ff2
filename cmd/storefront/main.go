package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Storefront/internal/auth"
	"Storefront/internal/cart"
	"Storefront/internal/catalog"
	"Storefront/internal/storage"
	"Storefront/internal/wishlist"
	"Storefront/pkg/kit"
)

const (
	service      = "storefront"
	loadTimeout  = 5 * time.Second
	readyTimeout = 1 * time.Second
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	log := kit.NewLogger(service, cfg.Env)
	defer func() { _ = log.Sync() }()

	port, err := openStorage(cfg)
	if err != nil {
		log.Fatal("open storage", zap.String("backend", cfg.Storage), zap.Error(err))
	}
	log.Info("storage ready", zap.String("backend", cfg.Storage))

	registry := prometheus.NewRegistry()
	httpMetrics := kit.NewMetrics(registry)
	storeMetrics := kit.NewStoreMetrics(registry)

	cat := catalog.Default()
	cartStore := cart.New(port, cat, log, storeMetrics)
	wishStore := wishlist.New(port, log, storeMetrics)
	directory := auth.NewDirectory(port, log, storeMetrics,
		time.Duration(cfg.AuthDelayMS)*time.Millisecond)

	hydrate(log, cartStore, wishStore, directory)

	cartStore.Subscribe(func() {
		log.Debug("cart changed", zap.Int("count", cartStore.Count()), zap.Int64("total", cartStore.Total()))
	})
	wishStore.Subscribe(func() {
		log.Debug("wishlist changed", zap.Int("count", wishStore.Len()))
	})
	directory.Subscribe(func() {
		_, authed := directory.Current()
		log.Debug("session changed", zap.Bool("authenticated", authed))
	})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(log))
	r.Use(httpMetrics.Middleware(service, kit.ChiRoutePatternOrPath))

	catalogSrv := &catalog.Server{Catalog: cat}
	cartSrv := &cart.Server{Cart: cartStore, Catalog: cat}
	wishSrv := &wishlist.Server{Wishlist: wishStore, Catalog: cat}
	authSrv := &auth.Server{Log: log, Directory: directory}

	catalogSrv.Register(r)
	cartSrv.Register(r)
	wishSrv.Register(r)
	authSrv.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), readyTimeout)
		defer cancel()

		if err := port.Ping(ctx); err != nil {
			log.Warn("readyz failed", zap.Error(err))
			kit.WriteError(w, req, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	if cfg.MetricsEnabled {
		r.With(kit.MetricsAuth(cfg.MetricsToken)).
			Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	if err := kit.RunHTTPServer(":"+cfg.Port, r, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func openStorage(cfg Config) (storage.Port, error) {
	switch cfg.Storage {
	case "memory":
		return storage.NewMemStore(), nil

	case "file":
		return storage.NewFileStore(cfg.DataDir)

	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("STOREFRONT_POSTGRES_DSN required for postgres storage")
		}
		db, err := sql.Open("pgx", cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		pg := storage.NewPostgresStore(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return pg, nil

	case "redis":
		var rcfg storage.RedisConfig
		if err := envconfig.Process("storefront_redis", &rcfg); err != nil {
			return nil, err
		}
		client, err := rcfg.New()
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client, service+":"), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
}

// hydrate runs every store's one-time load before the server starts
// accepting events.
func hydrate(log *zap.Logger, cartStore *cart.Store, wishStore *wishlist.Store, directory *auth.Directory) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	cartStore.Load(ctx)
	wishStore.Load(ctx)
	directory.Load(ctx)
	log.Info("stores hydrated")
}
