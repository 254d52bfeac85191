package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	cartservice "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/service"
	cartstore "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/store"
	catalogrepo "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/repository"
	catalogservice "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/service"
	checkoutservice "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/service"
	checkoutstore "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/store"
	h "github.com/Shubhamqu2002/F.M.E.S-Service/internal/http"
	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/order"
	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/tracking"
	"github.com/Shubhamqu2002/F.M.E.S-Service/pkg/logger"
)

type Config struct {
	HTTPPort        string
	Env             string
	LogLevel        string
	CatalogDBPath   string
	MigrationsPath  string
	CartTTL         time.Duration
	CheckoutTTL     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		Env:             getEnv("APP_ENV", "dev"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", "storefront.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "internal/catalog/repository/migrations"),
		CartTTL:         getEnvDuration("CART_TTL", 24*time.Hour),
		CheckoutTTL:     getEnvDuration("CHECKOUT_TTL", time.Hour),
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	// Catalog: sqlite-backed, seeded by migrations, immutable afterwards
	repo, err := catalogrepo.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Error("failed to open catalog database", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Error("failed to run catalog migrations", "error", err)
		os.Exit(1)
	}
	log.Info("catalog database ready", "path", cfg.CatalogDBPath)

	catalogSvc := catalogservice.NewCatalogService(repo)

	carts := cartstore.NewMemoryStore(cfg.CartTTL)
	defer carts.Close()
	cartSvc := cartservice.NewCartService(carts, catalogSvc)

	sessions := checkoutstore.NewMemoryStore(cfg.CheckoutTTL)
	defer sessions.Close()
	checkoutSvc := checkoutservice.NewCheckoutService(sessions, cartSvc, order.RandomIDGenerator{})

	trackingSvc := tracking.NewService(tracking.RandomStatusProvider{})

	catalogHandler := h.NewCatalogHandler(catalogSvc, cfg.RequestTimeout)
	cartHandler := h.NewCartHandler(cartSvc, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(checkoutSvc, cfg.RequestTimeout)
	trackingHandler := h.NewTrackingHandler(trackingSvc, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", catalogHandler.ListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutHandler.Begin)
			r.Get("/", checkoutHandler.Current)
			r.Delete("/", checkoutHandler.Abandon)
			r.Post("/billing", checkoutHandler.SubmitBilling)
			r.Post("/payment", checkoutHandler.SubmitPayment)
			r.Post("/finish", checkoutHandler.Finish)
		})

		r.Get("/orders/{order_id}/status", trackingHandler.GetStatus)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("storefront starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server exited")
}
