package entity

import "time"

// CurationOutcome identifies which branch produced a curation result.
// Purely descriptive of a single call; there is no memory across calls.
type CurationOutcome string

const (
	// OutcomeNormal the delegate answered and its selection was used.
	OutcomeNormal CurationOutcome = "NORMAL"
	// OutcomeDegraded the delegate failed and the rule-based fallback was used.
	OutcomeDegraded CurationOutcome = "DEGRADED"
	// OutcomeUnavailable both the delegate and the fallback failed.
	OutcomeUnavailable CurationOutcome = "UNAVAILABLE"
)

// CurationResult outcome of one curation request. Produced fresh per call and
// never persisted as the source of truth; only a CurationSummary is attached
// to the customer record, best-effort.
type CurationResult struct {
	CuratedProducts          []Product       `json:"curated_products"`
	Reasoning                []string        `json:"reasoning"`
	Confidence               float64         `json:"confidence"` // always within [0,1]
	PlatinumSupplierProducts []Product       `json:"platinum_supplier_products"`
	BundledPacks             []Product       `json:"bundled_packs"`
	LocalFavorites           []Product       `json:"local_favorites"`
	BusinessInsights         []string        `json:"business_insights"`
	NextSteps                []string        `json:"next_steps"`
	GeneratedAt              time.Time       `json:"generated_at"`
	Outcome                  CurationOutcome `json:"outcome"`
	FiltersExhausted         bool            `json:"filters_exhausted"` // fallback cascade hit the safety net
}

// Summary condenses the result for the best-effort customer record write.
func (r *CurationResult) Summary() CurationSummary {
	return CurationSummary{
		ProductCount: len(r.CuratedProducts),
		Confidence:   r.Confidence,
		Outcome:      string(r.Outcome),
		GeneratedAt:  r.GeneratedAt,
	}
}
