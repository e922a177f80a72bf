package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/inventrack/inventrack-api/internal/application/analytics"
	"github.com/inventrack/inventrack-api/internal/application/auth"
	"github.com/inventrack/inventrack-api/internal/application/billing"
	"github.com/inventrack/inventrack-api/internal/application/inventory"
	"github.com/inventrack/inventrack-api/internal/application/usecase"
	"github.com/inventrack/inventrack-api/internal/infrastructure/ledger"
	httpRouter "github.com/inventrack/inventrack-api/internal/interfaces/http"
	"github.com/inventrack/inventrack-api/pkg/config"
	"github.com/inventrack/inventrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	store, err := ledger.Open(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.Dir).Msg("open ledger store")
	}

	authUC := auth.NewUseCase(store.Users(), cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err := authUC.EnsureAdmin(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("provision admin account")
	}

	inventoryUC := inventory.NewUseCase(store, store.Products(), store.Movements())
	productUC := usecase.NewProductUseCase(store.Products())
	customerUC := billing.NewCustomerUseCase(store.Customers())
	invoiceUC := billing.NewInvoiceUseCase(
		store, inventoryUC,
		store.Products(), store.Customers(), store.Invoices(),
		cfg.App.HomeState,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(store.Analytics())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		InventoryUC: inventoryUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	// Snapshot writer: flushes dirty ledger partitions to disk on an
	// interval, and once more on shutdown.
	go func() {
		ticker := time.NewTicker(cfg.Storage.FlushInterval)
		defer ticker.Stop()
		for range ticker.C {
			if !store.Dirty() {
				continue
			}
			if err := store.Flush(); err != nil {
				log.Error().Err(err).Msg("flush ledger snapshot")
			}
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if err := store.Flush(); err != nil {
		log.Error().Err(err).Msg("final ledger flush")
	}

	log.Info().Msg("application stopped")
}
