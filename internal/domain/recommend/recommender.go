package recommend

import (
	"sort"
	"strings"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// tierPriority ordering weight per supplier tier; higher sorts first.
var tierPriority = map[entity.SupplierTier]int{
	entity.TierPlatinum: 4,
	entity.TierGold:     3,
	entity.TierSilver:   2,
	entity.TierBronze:   1,
}

// Recommendation result of a rule-based recommendation run.
// FiltersExhausted reports that the profile filter cascade emptied the
// candidate set and the result reverted to the unfiltered active catalog.
type Recommendation struct {
	Products         []entity.Product
	FiltersExhausted bool
}

// Recommend applies the deterministic rule-based selection: optional
// cascading profile filters over the active products, a safety net against
// over-filtering, supplier-tier ordering and truncation to maxCount.
// Pure and total: missing profile fields simply skip their filter, and the
// only empty result is an empty catalog.
func Recommend(profile entity.BusinessProfile, activeProducts []entity.Product, maxCount int) Recommendation {
	candidates := activeProducts

	if kws, ok := venueKeywords[normalizeKey(profile.VenueType)]; ok {
		candidates = filterByKeywords(candidates, kws)
	}
	if kws, ok := cuisineKeywords[normalizeKey(profile.CuisineStyle)]; ok {
		candidates = filterByKeywords(candidates, kws)
	}
	if kws := locationKeywords(profile.Location); len(kws) > 0 {
		candidates = filterByOrigin(candidates, kws)
	}

	// Safety net: the cascade must never empty the result on its own.
	exhausted := false
	if len(candidates) == 0 && len(activeProducts) > 0 {
		candidates = activeProducts
		exhausted = true
	}

	ranked := make([]entity.Product, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := tierPriority[ranked[i].Supplier.Tier], tierPriority[ranked[j].Supplier.Tier]
		if pi != pj {
			return pi > pj
		}
		if ranked[i].SupplierPoints != ranked[j].SupplierPoints {
			return ranked[i].SupplierPoints > ranked[j].SupplierPoints
		}
		return ranked[i].Rank < ranked[j].Rank
	})

	if maxCount >= 0 && len(ranked) > maxCount {
		ranked = ranked[:maxCount]
	}
	return Recommendation{Products: ranked, FiltersExhausted: exhausted}
}

// locationKeywords builds the origin keyword set from the profile location
// plus the fixed locality markers. Empty when no location was declared.
func locationKeywords(loc entity.Location) []string {
	var kws []string
	if strings.TrimSpace(loc.City) != "" {
		kws = append(kws, strings.ToLower(loc.City))
	}
	if strings.TrimSpace(loc.State) != "" {
		kws = append(kws, strings.ToLower(loc.State))
	}
	if len(kws) == 0 {
		return nil
	}
	return append(kws, localityKeywords...)
}

// filterByKeywords keeps products whose category, name or description
// contains any of the keywords.
func filterByKeywords(products []entity.Product, keywords []string) []entity.Product {
	var kept []entity.Product
	for _, p := range products {
		haystack := strings.ToLower(string(p.Category) + " " + p.Subcategory + " " + p.Name + " " + p.Description)
		if containsAny(haystack, keywords) {
			kept = append(kept, p)
		}
	}
	return kept
}

// filterByOrigin keeps products whose origin, region, name or description
// matches any location keyword.
func filterByOrigin(products []entity.Product, keywords []string) []entity.Product {
	var kept []entity.Product
	for _, p := range products {
		haystack := strings.ToLower(p.Specifications.Origin + " " + p.Specifications.Region + " " + p.Name + " " + p.Description)
		if containsAny(haystack, keywords) {
			kept = append(kept, p)
		}
	}
	return kept
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
