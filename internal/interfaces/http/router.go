package http

import (
	"github.com/gofiber/fiber/v2"

	appcuration "github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/curation"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/onboarding"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/usecase"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CustomerUC   *usecase.CustomerUseCase
	OnboardingUC *onboarding.UseCase
	Orchestrator *appcuration.Orchestrator
	Snapshot     *catalog.Snapshot
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)

	// Onboarding workflow
	ob := api.Group("/onboarding")
	onboardingHandler := NewOnboardingHandler(deps.OnboardingUC)
	ob.Post("/start", onboardingHandler.Start)
	ob.Get("/:id", onboardingHandler.GetByID)
	ob.Post("/:id/responses", onboardingHandler.SubmitResponse)
	ob.Post("/:id/abandon", onboardingHandler.Abandon)

	// Curated recommendations
	products := api.Group("/products")
	curationHandler := NewCurationHandler(deps.Orchestrator, deps.CustomerUC)
	products.Get("/recommended/:customerId", curationHandler.Recommended)

	// Catalog statistics
	catalogGroup := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.Snapshot)
	catalogGroup.Get("/stats", catalogHandler.Stats)
}
