package curation

import (
	"context"
	"errors"
	"time"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/ports"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/recommend"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/repository"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/pkg/logger"
)

// Fixed confidence constants for the non-normal branches.
const (
	// DegradedConfidence assigned when the rule-based fallback produced the result.
	DegradedConfidence = 0.6
	// FloorConfidence assigned when both the delegate and the fallback failed.
	FloorConfidence = 0.1

	// DefaultPlatinumCap bounds the platinum subset split out of a fallback result.
	DefaultPlatinumCap = 30
	// DefaultMaxProducts bounds curated lists when the caller passes no limit.
	DefaultMaxProducts = 100

	// enrichmentCap bounds the bundled-pack and local-favorite lists, matching
	// the delegate's own list sizes.
	enrichmentCap = 10
)

// Config tuning knobs for the orchestrator.
type Config struct {
	Timeout     time.Duration // per-call bound on the delegate request
	MaxProducts int           // default list cap when the caller passes <= 0
	PlatinumCap int           // cap on the degraded-mode platinum subset
}

// Orchestrator drives one curation request: a single delegate call, mapped
// and validated at the boundary, with graceful degradation to the rule-based
// recommender. Curate is total: it always returns a result and never
// propagates an error to its caller.
type Orchestrator struct {
	delegate  ports.CurationDelegate
	snapshot  *catalog.Snapshot
	customers repository.CustomerRepository
	cfg       Config
	log       *logger.Logger
}

// NewOrchestrator wires the orchestrator. Zero config fields get defaults.
func NewOrchestrator(
	delegate ports.CurationDelegate,
	snapshot *catalog.Snapshot,
	customers repository.CustomerRepository,
	cfg Config,
	log *logger.Logger,
) *Orchestrator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxProducts <= 0 {
		cfg.MaxProducts = DefaultMaxProducts
	}
	if cfg.PlatinumCap <= 0 {
		cfg.PlatinumCap = DefaultPlatinumCap
	}
	return &Orchestrator{
		delegate:  delegate,
		snapshot:  snapshot,
		customers: customers,
		cfg:       cfg,
		log:       log,
	}
}

// Curate produces a curation result for the profile. Exactly one delegate
// call, no retries; every failure path degrades instead of erroring.
func (o *Orchestrator) Curate(ctx context.Context, profile entity.BusinessProfile, maxCount int) *entity.CurationResult {
	if maxCount <= 0 {
		maxCount = o.cfg.MaxProducts
	}

	callCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	resp, err := o.delegate.Curate(callCtx, profile, maxCount)
	if err == nil && resp != nil {
		return o.normalResult(resp, maxCount)
	}

	cause := "curation service unavailable"
	if errors.Is(err, ports.ErrDelegateBadResponse) {
		cause = "curation service returned an unusable response"
	}
	o.log.Warn().Err(err).Str("cause", cause).Msg("curation delegate failed, using rule-based fallback")

	return o.degradedResult(profile, maxCount, cause)
}

// CurateForCustomer runs Curate with the customer's declared profile and
// attaches a result summary to the customer record. The summary write is
// best-effort: a persistence failure is logged and never surfaced.
func (o *Orchestrator) CurateForCustomer(ctx context.Context, customer *entity.Customer, maxCount int) *entity.CurationResult {
	result := o.Curate(ctx, customer.Profile, maxCount)

	if err := o.customers.UpdateCurationSummary(customer.ID, result.Summary()); err != nil {
		o.log.Warn().Err(err).Str("customer_id", customer.ID).Msg("curation summary write failed")
	}
	return result
}

// normalResult maps a successful delegate response. Products were already
// normalized at the adapter boundary; reasoning, confidence and insights are
// kept verbatim, with confidence clamped into [0,1].
func (o *Orchestrator) normalResult(resp *ports.DelegateResponse, maxCount int) *entity.CurationResult {
	curated := resp.CuratedProducts
	if len(curated) > maxCount {
		curated = curated[:maxCount]
	}
	return &entity.CurationResult{
		CuratedProducts:          curated,
		Reasoning:                resp.Reasoning,
		Confidence:               clamp01(resp.Confidence),
		PlatinumSupplierProducts: resp.PlatinumProducts,
		BundledPacks:             resp.BundledProducts,
		LocalFavorites:           resp.LocalFavoriteProducts,
		BusinessInsights:         resp.BusinessInsights,
		NextSteps:                resp.NextSteps,
		GeneratedAt:              time.Now(),
		Outcome:                  entity.OutcomeNormal,
	}
}

// degradedResult runs the rule-based recommender over the active catalog
// snapshot. An unreadable or empty catalog drops through to the minimal
// unavailable result.
func (o *Orchestrator) degradedResult(profile entity.BusinessProfile, maxCount int, cause string) *entity.CurationResult {
	if o.snapshot == nil {
		return o.unavailableResult(cause)
	}
	active := o.snapshot.Active()
	if len(active) == 0 {
		return o.unavailableResult(cause)
	}

	rec := recommend.Recommend(profile, active, maxCount)
	platinum, _ := splitPlatinum(rec.Products, o.cfg.PlatinumCap)

	reasoning := []string{
		"Fallback: rule-based recommendation engine used",
		"Cause: " + cause,
	}
	reasoning = append(reasoning, describeSelection(profile, rec.Products)...)

	return &entity.CurationResult{
		CuratedProducts:          rec.Products,
		Reasoning:                reasoning,
		Confidence:               DegradedConfidence,
		PlatinumSupplierProducts: platinum,
		BundledPacks:             bundledPacks(rec.Products, enrichmentCap),
		LocalFavorites:           localFavorites(rec.Products, profile, enrichmentCap),
		BusinessInsights:         businessInsights(rec.Products),
		NextSteps:                nextSteps(profile),
		GeneratedAt:              time.Now(),
		Outcome:                  entity.OutcomeDegraded,
		FiltersExhausted:         rec.FiltersExhausted,
	}
}

// unavailableResult is the minimal answer when nothing can be recommended.
func (o *Orchestrator) unavailableResult(cause string) *entity.CurationResult {
	return &entity.CurationResult{
		CuratedProducts:          []entity.Product{},
		Reasoning:                []string{"Curation is temporarily unavailable: " + cause + " and the product catalog could not be read"},
		Confidence:               FloorConfidence,
		PlatinumSupplierProducts: []entity.Product{},
		BundledPacks:             []entity.Product{},
		LocalFavorites:           []entity.Product{},
		BusinessInsights:         []string{},
		NextSteps:                []string{"Retry once the catalog feed is restored"},
		GeneratedAt:              time.Now(),
		Outcome:                  entity.OutcomeUnavailable,
	}
}

// splitPlatinum extracts the platinum-tier subset, capped, preserving order.
// The remainder is returned for callers that need the non-platinum split.
func splitPlatinum(products []entity.Product, limit int) (platinum, rest []entity.Product) {
	for _, p := range products {
		if p.Supplier.Tier == entity.TierPlatinum && len(platinum) < limit {
			platinum = append(platinum, p)
			continue
		}
		rest = append(rest, p)
	}
	return platinum, rest
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
