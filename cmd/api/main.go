package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fooddash-app/fooddash-backend/api/routes"
	"github.com/fooddash-app/fooddash-backend/internal/cart"
	"github.com/fooddash-app/fooddash-backend/internal/notifications"
	"github.com/fooddash-app/fooddash-backend/internal/orders"
	"github.com/fooddash-app/fooddash-backend/internal/products"
	"github.com/fooddash-app/fooddash-backend/internal/restaurants"
	"github.com/fooddash-app/fooddash-backend/internal/seed"
	"github.com/fooddash-app/fooddash-backend/internal/settings"
	"github.com/fooddash-app/fooddash-backend/internal/vendors"
	"github.com/fooddash-app/fooddash-backend/pkg/config"
	"github.com/fooddash-app/fooddash-backend/pkg/kv"
	"github.com/fooddash-app/fooddash-backend/pkg/logger"
	"github.com/fooddash-app/fooddash-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	store := kv.Instrument(kv.Open(context.Background(), cfg.Store, logg), metrics.NewStoreMetrics(registry))
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing store", err)
		}
	}()

	seeder, err := seed.New(store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create seeder", err)
		os.Exit(1)
	}
	if !cfg.Seed.Disable {
		if err := seeder.Initialize(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to seed demo data", err)
			os.Exit(1)
		}
	}

	restaurantRepo := restaurants.NewRepository(store)
	productRepo := products.NewRepository(store)

	restaurantSvc, err := restaurants.NewService(restaurantRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create restaurants service", err)
		os.Exit(1)
	}
	productSvc, err := products.NewService(productRepo, restaurantRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}
	cartSvc, err := cart.NewService(cart.NewRepository(store), productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	notificationSvc, err := notifications.NewService(notifications.NewRepository(store))
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}
	orderSvc, err := orders.NewService(orders.NewRepository(store), cartSvc, restaurantRepo, notificationSvc, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}
	vendorSvc, err := vendors.NewService(vendors.NewRepository(store), restaurantRepo, notificationSvc)
	if err != nil {
		logg.Error(context.Background(), "failed to create vendors service", err)
		os.Exit(1)
	}
	settingsSvc, err := settings.NewService(settings.NewRepository(store))
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, store, registry, routes.Services{
			Restaurants:   restaurantSvc,
			Products:      productSvc,
			Cart:          cartSvc,
			Orders:        orderSvc,
			Vendors:       vendorSvc,
			Settings:      settingsSvc,
			Notifications: notificationSvc,
			Seeder:        seeder,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
