package dto

import (
	"time"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// CurationResponse output of a curation run.
type CurationResponse struct {
	CuratedProducts          []entity.Product       `json:"curated_products"`
	Reasoning                []string               `json:"reasoning"`
	Confidence               float64                `json:"confidence"`
	PlatinumSupplierProducts []entity.Product       `json:"platinum_supplier_products"`
	BundledPacks             []entity.Product       `json:"bundled_packs"`
	LocalFavorites           []entity.Product       `json:"local_favorites"`
	BusinessInsights         []string               `json:"business_insights"`
	NextSteps                []string               `json:"next_steps"`
	GeneratedAt              time.Time              `json:"generated_at"`
	Outcome                  entity.CurationOutcome `json:"outcome"`
	FiltersExhausted         bool                   `json:"filters_exhausted"`
}

// ToCurationResponse maps the domain result onto the API shape.
func ToCurationResponse(r *entity.CurationResult) *CurationResponse {
	return &CurationResponse{
		CuratedProducts:          r.CuratedProducts,
		Reasoning:                r.Reasoning,
		Confidence:               r.Confidence,
		PlatinumSupplierProducts: r.PlatinumSupplierProducts,
		BundledPacks:             r.BundledPacks,
		LocalFavorites:           r.LocalFavorites,
		BusinessInsights:         r.BusinessInsights,
		NextSteps:                r.NextSteps,
		GeneratedAt:              r.GeneratedAt,
		Outcome:                  r.Outcome,
		FiltersExhausted:         r.FiltersExhausted,
	}
}
