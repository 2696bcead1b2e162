package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
)

// CatalogHandler exposes read-only catalog statistics.
type CatalogHandler struct {
	snapshot *catalog.Snapshot
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(snapshot *catalog.Snapshot) *CatalogHandler {
	return &CatalogHandler{snapshot: snapshot}
}

// Stats godoc
// @Summary      Catalog summary statistics
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  catalog.Stats
// @Router       /api/catalog/stats [get]
func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.snapshot.Stats())
}
