package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

func TestTierFromPoints(t *testing.T) {
	cases := []struct {
		points float64
		want   entity.SupplierTier
	}{
		{0, entity.TierBronze},
		{19.9, entity.TierBronze},
		{20, entity.TierSilver},
		{49.9, entity.TierSilver},
		{50, entity.TierGold},
		{99.9, entity.TierGold},
		{100, entity.TierPlatinum},
		{2500, entity.TierPlatinum},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.TierFromPoints(tc.points), "points=%v", tc.points)
	}
}

func TestTierFromPoints_Deterministic(t *testing.T) {
	// Same input, same output, every time.
	for i := 0; i < 100; i++ {
		assert.Equal(t, entity.TierGold, catalog.TierFromPoints(75))
	}
}

func TestCategoryFromRaw_DefaultsToSpirits(t *testing.T) {
	assert.Equal(t, entity.CategoryWine, catalog.CategoryFromRaw("Wine"))
	assert.Equal(t, entity.CategoryBeer, catalog.CategoryFromRaw(" beers "))
	assert.Equal(t, entity.CategoryChampagne, catalog.CategoryFromRaw("Sparkling"))
	assert.Equal(t, entity.CategorySpirits, catalog.CategoryFromRaw("garden furniture"))
	assert.Equal(t, entity.CategorySpirits, catalog.CategoryFromRaw(""))
}

func TestNormalize_MalformedRowGetsDefaults(t *testing.T) {
	p := catalog.Normalize(catalog.RawRecord{
		ID:                "p1",
		Name:              "Mystery Item",
		StockCount:        "not-a-number",
		LoyaltyPoints:     "??",
		AlcoholPercentage: "",
		Volume:            "",
		ShelfLife:         "abc",
		HideOnPublic:      "0",
	})

	assert.Equal(t, 0, p.Inventory.CurrentStock)
	assert.Equal(t, float64(0), p.SupplierPoints)
	assert.Equal(t, float64(0), p.Specifications.AlcoholContent)
	assert.Equal(t, catalog.DefaultVolumeML, p.Specifications.Volume)
	assert.Equal(t, catalog.DefaultShelfLifeDays, p.Specifications.ShelfLife)
	assert.Equal(t, entity.TierBronze, p.Supplier.Tier)
	assert.Equal(t, entity.CategorySpirits, p.Category)
	assert.True(t, p.IsActive)
	assert.True(t, p.Inventory.IsInStock)
}

func TestNormalize_BasePriceFromLoyaltyPoints(t *testing.T) {
	p := catalog.Normalize(catalog.RawRecord{
		ID:            "p1",
		Name:          "Reserve Shiraz",
		LoyaltyPoints: "120",
		HideOnPublic:  "0",
	})
	require.True(t, p.Pricing.BasePrice.Equal(decimal.NewFromInt(12)),
		"expected 12, got %s", p.Pricing.BasePrice)
	assert.Equal(t, entity.TierPlatinum, p.Supplier.Tier)
}

func TestNormalize_HiddenFlag(t *testing.T) {
	hidden := catalog.Normalize(catalog.RawRecord{ID: "p1", Name: "Hidden", HideOnPublic: "1"})
	assert.False(t, hidden.IsActive)
	assert.False(t, hidden.Inventory.IsInStock)
	assert.False(t, hidden.Supplier.IsActive)

	// Any non-"0" value hides, including garbage.
	garbage := catalog.Normalize(catalog.RawRecord{ID: "p2", Name: "Odd", HideOnPublic: "yes"})
	assert.False(t, garbage.IsActive)
}

func TestNormalize_TagsAreNonEmptyAttributes(t *testing.T) {
	p := catalog.Normalize(catalog.RawRecord{
		ID:           "p1",
		Name:         "Barossa Red",
		Brand:        "Penfolds",
		Country:      "Australia",
		Region:       "",
		Varietal:     "Shiraz",
		Style:        " ",
		HideOnPublic: "0",
	})
	assert.Equal(t, []string{"Penfolds", "Australia", "Shiraz"}, p.Tags)
}

func TestNormalize_BundleDetection(t *testing.T) {
	bundle := catalog.Normalize(catalog.RawRecord{
		ID: "p1", Name: "Starter Pack Gin Collection", HideOnPublic: "0",
	})
	assert.True(t, bundle.IsBundle)

	byDescription := catalog.Normalize(catalog.RawRecord{
		ID: "p2", Name: "House Red", ProductWebDescription: "A mixed case for new venues", HideOnPublic: "0",
	})
	assert.True(t, byDescription.IsBundle)

	single := catalog.Normalize(catalog.RawRecord{ID: "p3", Name: "Single Malt 12yo", HideOnPublic: "0"})
	assert.False(t, single.IsBundle)
}

func TestNormalize_NeverPanics(t *testing.T) {
	// A fully empty record still yields a product with defaults.
	assert.NotPanics(t, func() {
		p := catalog.Normalize(catalog.RawRecord{})
		assert.Equal(t, entity.CategorySpirits, p.Category)
		assert.False(t, p.IsActive)
	})
}
