package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appcuration "github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/curation"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/onboarding"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/usecase"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/infrastructure/catalogfile"
	infracuration "github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/infrastructure/curation"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/interfaces/http"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/pkg/config"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)

	// Catalog snapshot: loaded once at boot, swapped atomically on reload.
	var source catalog.Source
	if cfg.Catalog.Source == "postgres" {
		source = postgres.NewCatalogSource(pool)
	} else {
		source = catalogfile.New(cfg.Catalog.FilePath)
	}
	snapshot := catalog.NewSnapshot(source)
	if err := snapshot.Reload(ctx); err != nil {
		// Degraded boot: curation falls back to the unavailable branch until
		// the feed becomes readable.
		log.Error().Err(err).Msg("catalog load failed, starting with an empty snapshot")
	} else {
		stats := snapshot.Stats()
		log.Info().
			Int("total", stats.Total).
			Int("visible", stats.Visible).
			Int("bundles", stats.Bundles).
			Msg("catalog snapshot loaded")
	}

	delegate, err := infracuration.NewHTTPDelegate(cfg.Curation.BaseURL, cfg.Curation.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("curation delegate setup")
	}

	orchestrator := appcuration.NewOrchestrator(delegate, snapshot, customerRepo, appcuration.Config{
		Timeout:     cfg.Curation.Timeout,
		MaxProducts: cfg.Curation.MaxProducts,
		PlatinumCap: cfg.Curation.PlatinumCap,
	}, log)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	onboardingUC := onboarding.NewUseCase(sessionRepo, customerRepo, orchestrator, cfg.Curation.MaxProducts, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Onboarding Launchpad API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "ok",
			"service":         cfg.App.Name,
			"products_loaded": snapshot.Len(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:   customerUC,
		OnboardingUC: onboardingUC,
		Orchestrator: orchestrator,
		Snapshot:     snapshot,
	})

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

	log.Info().Msg("application stopped")
}
