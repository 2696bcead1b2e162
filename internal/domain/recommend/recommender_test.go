package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/recommend"
)

func product(id string, category entity.Category, tier entity.SupplierTier, points float64, rank int) entity.Product {
	return entity.Product{
		ID:             id,
		Name:           id,
		Category:       category,
		Supplier:       entity.Supplier{Name: "S-" + id, Tier: tier},
		SupplierPoints: points,
		Rank:           rank,
		IsActive:       true,
	}
}

func TestRecommend_BarProfileSelectsSpiritsAndBeer(t *testing.T) {
	// The three-item example: two match bar keywords, one is wine.
	catalog := []entity.Product{
		product("gin", entity.CategorySpirits, entity.TierBronze, 5, 2),
		product("lager", entity.CategoryBeer, entity.TierPlatinum, 150, 3),
		product("shiraz", entity.CategoryWine, entity.TierGold, 60, 1),
	}
	profile := entity.BusinessProfile{VenueType: "bar", CuisineStyle: "pub food"}

	rec := recommend.Recommend(profile, catalog, 10)
	require.Len(t, rec.Products, 2)
	assert.False(t, rec.FiltersExhausted)

	// Platinum ranks before bronze.
	assert.Equal(t, "lager", rec.Products[0].ID)
	assert.Equal(t, "gin", rec.Products[1].ID)
}

func TestRecommend_MaxCountTruncates(t *testing.T) {
	var catalog []entity.Product
	for i := 0; i < 50; i++ {
		catalog = append(catalog, product(string(rune('a'+i%26))+"x", entity.CategorySpirits, entity.TierSilver, 30, i))
	}
	rec := recommend.Recommend(entity.BusinessProfile{}, catalog, 7)
	assert.Len(t, rec.Products, 7)
}

func TestRecommend_SafetyNetRevertsOnOverFiltering(t *testing.T) {
	catalog := []entity.Product{
		product("shiraz", entity.CategoryWine, entity.TierGold, 60, 1),
		product("riesling", entity.CategoryWine, entity.TierSilver, 30, 2),
	}
	// Bar keywords match nothing here; the cascade must not empty the result.
	rec := recommend.Recommend(entity.BusinessProfile{VenueType: "bar"}, catalog, 10)
	require.Len(t, rec.Products, 2)
	assert.True(t, rec.FiltersExhausted)
}

func TestRecommend_EmptyCatalogYieldsEmpty(t *testing.T) {
	rec := recommend.Recommend(entity.BusinessProfile{VenueType: "bar"}, nil, 10)
	assert.Empty(t, rec.Products)
	assert.False(t, rec.FiltersExhausted)
}

func TestRecommend_MissingProfileFieldsSkipFilters(t *testing.T) {
	catalog := []entity.Product{
		product("gin", entity.CategorySpirits, entity.TierBronze, 5, 1),
		product("shiraz", entity.CategoryWine, entity.TierGold, 60, 2),
	}
	rec := recommend.Recommend(entity.BusinessProfile{}, catalog, 10)
	assert.Len(t, rec.Products, 2, "no filters applied for an empty profile")
}

func TestRecommend_TierOrderingWithPointsTiebreak(t *testing.T) {
	catalog := []entity.Product{
		product("low-plat", entity.CategorySpirits, entity.TierPlatinum, 110, 1),
		product("high-plat", entity.CategorySpirits, entity.TierPlatinum, 400, 9),
		product("gold", entity.CategorySpirits, entity.TierGold, 80, 1),
		product("bronze", entity.CategorySpirits, entity.TierBronze, 1, 1),
	}
	rec := recommend.Recommend(entity.BusinessProfile{}, catalog, 10)
	require.Len(t, rec.Products, 4)
	assert.Equal(t, "high-plat", rec.Products[0].ID)
	assert.Equal(t, "low-plat", rec.Products[1].ID)
	assert.Equal(t, "gold", rec.Products[2].ID)
	assert.Equal(t, "bronze", rec.Products[3].ID)
}

func TestRecommend_RankBreaksEqualTiers(t *testing.T) {
	catalog := []entity.Product{
		product("second", entity.CategorySpirits, entity.TierSilver, 30, 20),
		product("first", entity.CategorySpirits, entity.TierSilver, 30, 3),
	}
	rec := recommend.Recommend(entity.BusinessProfile{}, catalog, 10)
	require.Len(t, rec.Products, 2)
	assert.Equal(t, "first", rec.Products[0].ID)
}

func TestRecommend_LocationFilterMatchesOrigin(t *testing.T) {
	local := product("local-gin", entity.CategorySpirits, entity.TierSilver, 30, 1)
	local.Specifications.Origin = "Adelaide Hills"
	imported := product("scotch", entity.CategorySpirits, entity.TierSilver, 30, 2)
	imported.Specifications.Origin = "Islay"

	profile := entity.BusinessProfile{Location: entity.Location{City: "Adelaide"}}
	rec := recommend.Recommend(profile, []entity.Product{local, imported}, 10)
	require.Len(t, rec.Products, 1)
	assert.Equal(t, "local-gin", rec.Products[0].ID)
}
