package entity

import "time"

// Location declared business location inside a profile.
type Location struct {
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Address  string `json:"address,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// BusinessProfile declared attributes driving curation. Recognized fields are
// typed; questionnaire answers that don't map onto a known field land in Extra.
type BusinessProfile struct {
	Tier         string            `json:"tier,omitempty"`
	VenueType    string            `json:"venue_type,omitempty"`
	CuisineStyle string            `json:"cuisine_style,omitempty"`
	Location     Location          `json:"location,omitempty"`
	BudgetBand   string            `json:"budget_band,omitempty"` // low, mid, premium
	Extra        map[string]string `json:"extra,omitempty"`
}

// CurationSummary compact record of the last curation run, attached to the
// customer best-effort. Never the source of truth for curated products.
type CurationSummary struct {
	ProductCount int       `json:"product_count"`
	Confidence   float64   `json:"confidence"`
	Outcome      string    `json:"outcome"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Customer wholesale customer record. The profile is read-only input to
// curation; it is collected through the onboarding questionnaire.
type Customer struct {
	ID              string           `json:"id"`
	BusinessName    string           `json:"business_name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Profile         BusinessProfile  `json:"profile"`
	CurationSummary *CurationSummary `json:"curation_summary,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
