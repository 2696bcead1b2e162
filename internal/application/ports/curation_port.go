package ports

import (
	"context"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// DelegateResponse the curation delegate's answer, already validated and
// mapped into canonical products at the adapter boundary. Reasoning,
// confidence and insights are carried verbatim from the delegate.
type DelegateResponse struct {
	CuratedProducts       []entity.Product
	PlatinumProducts      []entity.Product
	BundledProducts       []entity.Product
	LocalFavoriteProducts []entity.Product
	CuratedProductIDs     []string
	Reasoning             []string
	Confidence            float64
	BusinessInsights      []string
	NextSteps             []string
}

// CurationDelegate outbound port for the external AI curation service.
// Any adapter (HTTP client, mock) implements this contract; the application
// layer only knows the port. A single call, bounded by the context deadline.
// A non-2xx status, a timeout or a malformed payload is an error here, never
// a partial result.
type CurationDelegate interface {
	Curate(ctx context.Context, profile entity.BusinessProfile, maxProducts int) (*DelegateResponse, error)
}
