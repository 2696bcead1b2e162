package curation

import (
	"fmt"
	"strings"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// describeSelection builds the human-readable trace for a fallback result.
func describeSelection(profile entity.BusinessProfile, products []entity.Product) []string {
	var reasoning []string

	if profile.VenueType != "" {
		reasoning = append(reasoning, fmt.Sprintf("Curated for %s venue type", profile.VenueType))
	}
	if profile.Location.City != "" {
		reasoning = append(reasoning, fmt.Sprintf("Prioritized products relevant to %s", profile.Location.City))
	}

	switch strings.ToLower(profile.VenueType) {
	case "restaurant", "fine dining":
		reasoning = append(reasoning, "Emphasized wine and champagne selections for dining experience")
	case "bar", "pub":
		reasoning = append(reasoning, "Focused on spirits and beer for bar service")
	}

	if n := countBundles(products); n > 0 {
		reasoning = append(reasoning, fmt.Sprintf("Included %d curated bundles for variety", n))
	}
	if n := countTier(products, entity.TierPlatinum); n > 0 {
		reasoning = append(reasoning, fmt.Sprintf("Featured %d platinum supplier products", n))
	}
	return reasoning
}

// bundledPacks selects the bundle subset of the recommendation, capped.
func bundledPacks(products []entity.Product, limit int) []entity.Product {
	var bundles []entity.Product
	for _, p := range products {
		if p.IsBundle {
			bundles = append(bundles, p)
			if len(bundles) >= limit {
				break
			}
		}
	}
	return bundles
}

// localFavorites selects products matching the profile location, capped.
// Without a declared city or state there are no local favorites.
func localFavorites(products []entity.Product, profile entity.BusinessProfile, limit int) []entity.Product {
	city := strings.ToLower(profile.Location.City)
	state := strings.ToLower(profile.Location.State)
	if city == "" && state == "" {
		return nil
	}

	var favorites []entity.Product
	for _, p := range products {
		haystack := strings.ToLower(p.Specifications.Origin + " " + p.Specifications.Region + " " + p.Description)
		if (city != "" && strings.Contains(haystack, city)) || (state != "" && strings.Contains(haystack, state)) {
			favorites = append(favorites, p)
			if len(favorites) >= limit {
				break
			}
		}
	}
	return favorites
}

// businessInsights summarizes the selection: dominant category, supplier
// diversity and bundle ratio.
func businessInsights(products []entity.Product) []string {
	if len(products) == 0 {
		return nil
	}
	var insights []string

	categories := map[entity.Category]int{}
	suppliers := map[string]struct{}{}
	for _, p := range products {
		categories[p.Category]++
		if p.Supplier.Name != "" {
			suppliers[p.Supplier.Name] = struct{}{}
		}
	}

	topCategory, topCount := entity.Category(""), 0
	for c, n := range categories {
		if n > topCount || (n == topCount && c < topCategory) {
			topCategory, topCount = c, n
		}
	}
	insights = append(insights, fmt.Sprintf("Top category: %s (%d products)", topCategory, topCount))
	insights = append(insights, fmt.Sprintf("Products from %d different suppliers", len(suppliers)))

	if ratio := float64(countBundles(products)) / float64(len(products)); ratio > 0.1 {
		insights = append(insights, fmt.Sprintf("High bundle ratio (%.0f%%) - good for variety", ratio*100))
	}
	return insights
}

// nextSteps suggests follow-up actions tuned to the profile.
func nextSteps(profile entity.BusinessProfile) []string {
	steps := []string{
		"Review curated product list and select initial order",
		"Contact suppliers for pricing and availability",
	}

	switch strings.ToLower(profile.VenueType) {
	case "restaurant", "fine dining":
		steps = append(steps,
			"Consider wine pairing recommendations for your menu",
			"Plan staff training on product knowledge")
	}
	if profile.Tier == string(entity.TierBronze) {
		steps = append(steps, "Explore upgrade opportunities to access premium products")
	}

	return append(steps,
		"Set up regular reordering schedule",
		"Monitor customer preferences and adjust selections")
}

func countBundles(products []entity.Product) int {
	n := 0
	for _, p := range products {
		if p.IsBundle {
			n++
		}
	}
	return n
}

func countTier(products []entity.Product, tier entity.SupplierTier) int {
	n := 0
	for _, p := range products {
		if p.Supplier.Tier == tier {
			n++
		}
	}
	return n
}
