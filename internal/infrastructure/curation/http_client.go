package curation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/ports"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// Compile-time check that HTTPDelegate implements the port.
var _ ports.CurationDelegate = (*HTTPDelegate)(nil)

const maxResponseBytes = 4 * 1024 * 1024

// HTTPDelegate adapter for the external curation service over HTTP.
// One POST to /curate per call; the context deadline bounds the request.
// The response body is validated against a strict JSON schema and its product
// records run through the catalog normalizer's defaulting rules.
type HTTPDelegate struct {
	baseURL    string
	httpClient *http.Client
	schema     *gojsonschema.Schema
}

// NewHTTPDelegate builds the adapter. The client-level timeout is a backstop;
// callers are expected to pass a context with the real deadline.
func NewHTTPDelegate(baseURL string, timeout time.Duration) (*HTTPDelegate, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchema))
	if err != nil {
		return nil, fmt.Errorf("curation: compile response schema: %w", err)
	}
	return &HTTPDelegate{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		schema:     schema,
	}, nil
}

// ── Wire types (field names from the curation service contract) ──────────────

type curateRequest struct {
	Profile     wireProfile `json:"profile"`
	MaxProducts int         `json:"maxProducts"`
}

type wireProfile struct {
	Tier         string            `json:"tier,omitempty"`
	VenueType    string            `json:"venueType"`
	CuisineStyle string            `json:"cuisineStyle,omitempty"`
	Location     *wireLocation     `json:"location,omitempty"`
	BudgetBand   string            `json:"budgetBand,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

type wireLocation struct {
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Address  string `json:"address,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

type curateResponse struct {
	CuratedProducts       []catalog.RawRecord `json:"curatedProducts"`
	PlatinumProducts      []catalog.RawRecord `json:"platinumProducts"`
	BundledProducts       []catalog.RawRecord `json:"bundledProducts"`
	LocalFavoriteProducts []catalog.RawRecord `json:"localFavoriteProducts"`
	CuratedProductIDs     []string            `json:"curatedProductIds"`
	Reasoning             []string            `json:"reasoning"`
	Confidence            float64             `json:"confidence"`
	BusinessInsights      []string            `json:"businessInsights"`
	NextSteps             []string            `json:"nextSteps"`
}

// Curate issues the single delegate call. Failures are wrapped with the
// ports error categories so the orchestrator can classify the cause.
func (d *HTTPDelegate) Curate(ctx context.Context, profile entity.BusinessProfile, maxProducts int) (*ports.DelegateResponse, error) {
	body, err := json.Marshal(curateRequest{
		Profile:     toWireProfile(profile),
		MaxProducts: maxProducts,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ports.ErrDelegateUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/curate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ports.ErrDelegateUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrDelegateUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ports.ErrDelegateUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", ports.ErrDelegateUnavailable, resp.StatusCode)
	}

	if err := d.validate(raw); err != nil {
		return nil, err
	}

	var wire curateResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ports.ErrDelegateBadResponse, err)
	}

	return &ports.DelegateResponse{
		CuratedProducts:       normalizeWire(wire.CuratedProducts),
		PlatinumProducts:      normalizeWire(wire.PlatinumProducts),
		BundledProducts:       normalizeWire(wire.BundledProducts),
		LocalFavoriteProducts: normalizeWire(wire.LocalFavoriteProducts),
		CuratedProductIDs:     wire.CuratedProductIDs,
		Reasoning:             wire.Reasoning,
		Confidence:            wire.Confidence,
		BusinessInsights:      wire.BusinessInsights,
		NextSteps:             wire.NextSteps,
	}, nil
}

// validate checks the payload against the strict response schema.
func (d *HTTPDelegate) validate(raw []byte) error {
	result, err := d.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ports.ErrDelegateBadResponse, err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("%w: schema: %s", ports.ErrDelegateBadResponse, errs[0].String())
		}
		return fmt.Errorf("%w: schema validation failed", ports.ErrDelegateBadResponse)
	}
	return nil
}

// normalizeWire maps delegate records through the shared catalog defaulting
// rules. The delegate only returns public products, so a missing visibility
// flag means visible.
func normalizeWire(records []catalog.RawRecord) []entity.Product {
	for i := range records {
		if records[i].HideOnPublic == "" {
			records[i].HideOnPublic = "0"
		}
	}
	return catalog.NormalizeAll(records)
}

func toWireProfile(p entity.BusinessProfile) wireProfile {
	wp := wireProfile{
		Tier:         p.Tier,
		VenueType:    p.VenueType,
		CuisineStyle: p.CuisineStyle,
		BudgetBand:   p.BudgetBand,
		Extra:        p.Extra,
	}
	if p.Location != (entity.Location{}) {
		wp.Location = &wireLocation{
			City:     p.Location.City,
			State:    p.Location.State,
			Country:  p.Location.Country,
			Address:  p.Location.Address,
			Postcode: p.Location.Postcode,
		}
	}
	return wp
}
