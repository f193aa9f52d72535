package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"autologic-fitment-api/internal/client"
	"autologic-fitment-api/internal/config"
	"autologic-fitment-api/internal/database"
	"autologic-fitment-api/internal/handler"
	"autologic-fitment-api/internal/metrics"
	"autologic-fitment-api/internal/repository"
	"autologic-fitment-api/internal/search"
	"autologic-fitment-api/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	slog.Info("iniciando autologic-fitment-api")

	cfg := config.Load()

	ctx := context.Background()

	slog.Info("conectando a la base de datos", "host", cfg.Database.Host, "database", cfg.Database.Name)
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("fallo la conexion a la base de datos", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("fallo la migracion del esquema", "error", err)
		os.Exit(1)
	}
	slog.Info("base de datos lista")

	// Metrics
	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	// Repositorios
	vehicleRepo := repository.NewVehicleRepo(db)
	productRepo := repository.NewProductRepo(db)
	compatRepo := repository.NewCompatibilityRepo(db)

	// Services
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	fitmentSvc := service.NewFitmentService(compatRepo, productRepo, vehicleRepo, logger)

	// Search pipeline
	shopify := client.NewShopifyClient(client.ShopifyConfig{
		Domain:         cfg.Shopify.Domain,
		FallbackDomain: cfg.Shopify.FallbackDomain,
		APIVersion:     cfg.Shopify.APIVersion,
		AccessToken:    cfg.Shopify.AccessToken,
		Timeout:        cfg.Shopify.RequestTimeout,
		RateLimit:      cfg.Shopify.RateLimit,
		PageSize:       cfg.Shopify.PageSize,
	})

	searchOpts := []search.Option{search.WithQueryTimeout(cfg.Shopify.RequestTimeout)}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		searchOpts = append(searchOpts, search.WithCache(search.NewRedisCache(rdb, cfg.Redis.CacheTTL, logger)))
		slog.Info("cache de busqueda habilitado", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	}
	searcher := search.NewSearcher(shopify, search.DefaultSynonymDictionary(), logger, searchOpts...)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	vehicleHandler := handler.NewVehicleHandler(vehicleSvc)
	compatHandler := handler.NewCompatibilityHandler(fitmentSvc)
	searchHandler := handler.NewSearchHandler(searcher)

	// Router
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(handler.Metrics)

	// CORS middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Routes
	r.Get("/health", healthHandler.Check)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", vehicleHandler.List)
			r.Post("/", vehicleHandler.Create)
			r.Get("/year", vehicleHandler.Years)
			r.Get("/make", vehicleHandler.Makes)
			r.Get("/model", vehicleHandler.Models)
			r.Get("/engine", vehicleHandler.Engines)
			r.Get("/{id}", vehicleHandler.GetByID)
			r.Put("/{id}", vehicleHandler.Update)
			r.Delete("/{id}", vehicleHandler.Delete)
			r.Get("/{id}/products", compatHandler.CompatibleProducts)
		})

		r.Route("/compatibility", func(r chi.Router) {
			r.Get("/", compatHandler.List)
			r.Post("/", compatHandler.Create)
			r.Post("/batch", compatHandler.CreateBatch)
			r.Get("/check", compatHandler.Check)
			r.Get("/{id}", compatHandler.GetByID)
			r.Put("/{id}", compatHandler.Update)
			r.Delete("/{id}", compatHandler.Delete)
		})

		r.Get("/products/{id}/vehicles", compatHandler.CompatibleVehicles)

		r.Post("/search/refaccion", searchHandler.SearchRefaccion)
	})

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("servidor iniciado", "port", cfg.APIPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("error en el servidor", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("apagando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("error al apagar el servidor", "error", err)
	}

	slog.Info("servidor detenido")
}
