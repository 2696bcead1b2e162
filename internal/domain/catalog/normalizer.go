package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// Defaults applied when the feed omits or mangles a field.
const (
	DefaultVolumeML      = 750
	DefaultShelfLifeDays = 365
	DefaultCurrency      = "AUD"

	// visibleFlag is the only hide_on_public value that makes a product
	// visible; every other value (including garbage) hides it.
	visibleFlag = "0"
)

// pointsToPriceRatio converts supplier loyalty points into a base price.
// A fixed simplification of the feed's missing pricing data, not a pricing model.
var pointsToPriceRatio = decimal.NewFromFloat(0.1)

// categoryTable maps raw category_level_1 values onto canonical categories.
// Unmapped values fall through to spirits.
var categoryTable = map[string]entity.Category{
	"wine":                 entity.CategoryWine,
	"wines":                entity.CategoryWine,
	"red wine":             entity.CategoryWine,
	"white wine":           entity.CategoryWine,
	"spirits":              entity.CategorySpirits,
	"spirit":               entity.CategorySpirits,
	"liquor":               entity.CategorySpirits,
	"beer":                 entity.CategoryBeer,
	"beers":                entity.CategoryBeer,
	"cider":                entity.CategoryBeer,
	"champagne":            entity.CategoryChampagne,
	"sparkling":            entity.CategoryChampagne,
	"sparkling wine":       entity.CategoryChampagne,
	"cocktail ingredients": entity.CategoryCocktailIngredient,
	"mixers":               entity.CategoryCocktailIngredient,
	"non alcoholic":        entity.CategoryNonAlcoholic,
	"non-alcoholic":        entity.CategoryNonAlcoholic,
	"soft drinks":          entity.CategoryNonAlcoholic,
	"bar equipment":        entity.CategoryBarEquipment,
	"equipment":            entity.CategoryBarEquipment,
}

// bundleKeywords mark a product as a curated bundle when present in its
// name or description.
var bundleKeywords = []string{
	"pack", "bundle", "combo", "set", "collection",
	"starter", "sampler", "mixed", "variety", "assortment",
}

// TierFromPoints derives the supplier tier from the loyalty points value.
// The single source of this rule; every tier derivation goes through it.
func TierFromPoints(points float64) entity.SupplierTier {
	switch {
	case points >= 100:
		return entity.TierPlatinum
	case points >= 50:
		return entity.TierGold
	case points >= 20:
		return entity.TierSilver
	default:
		return entity.TierBronze
	}
}

// CategoryFromRaw maps a raw category_level_1 string onto the canonical enum.
// Total: unmapped values default to spirits.
func CategoryFromRaw(raw string) entity.Category {
	if c, ok := categoryTable[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return entity.CategorySpirits
}

// Normalize converts one raw feed record into a canonical product.
// Pure and total: a malformed row never fails, it gets documented defaults.
func Normalize(raw RawRecord) entity.Product {
	points := parseFloat(raw.LoyaltyPoints)
	stock := parseInt(raw.StockCount)
	minStock := parseInt(raw.MinimumStock)
	maxStock := parseInt(raw.MaximumStock)
	visible := raw.HideOnPublic == visibleFlag

	volume := parseInt(raw.Volume)
	if volume == 0 {
		volume = DefaultVolumeML
	}
	shelfLife := parseInt(raw.ShelfLife)
	if shelfLife == 0 {
		shelfLife = DefaultShelfLifeDays
	}

	now := time.Now()
	return entity.Product{
		ID:          raw.ID,
		SKU:         raw.SKU,
		Name:        raw.Name,
		Description: raw.ProductWebDescription,
		Category:    CategoryFromRaw(raw.CategoryLevel1),
		Subcategory: raw.CategoryLevel2,
		Supplier: entity.Supplier{
			ID:          raw.SupplierID,
			Name:        raw.Supplier,
			Tier:        TierFromPoints(points),
			ContactInfo: raw.SupplierContact,
			IsActive:    visible,
		},
		Pricing: entity.Pricing{
			BasePrice: decimal.NewFromFloat(points).Mul(pointsToPriceRatio),
			Currency:  DefaultCurrency,
		},
		Inventory: entity.Inventory{
			CurrentStock: stock,
			MinimumStock: minStock,
			MaximumStock: maxStock,
			ReorderPoint: minStock,
			IsInStock:    visible,
		},
		Specifications: entity.Specifications{
			Volume:         volume,
			AlcoholContent: parseFloat(raw.AlcoholPercentage),
			Origin:         raw.Origin,
			Region:         raw.Region,
			Packaging:      raw.Packaging,
			ShelfLife:      shelfLife,
		},
		Tags:           buildTags(raw),
		IsActive:       visible,
		IsBundle:       detectBundle(raw),
		Rank:           parseInt(raw.Rank),
		SupplierPoints: points,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NormalizeAll maps a batch of raw records.
func NormalizeAll(raws []RawRecord) []entity.Product {
	products := make([]entity.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, Normalize(raw))
	}
	return products
}

// buildTags collects the non-empty descriptive attributes as tags.
func buildTags(raw RawRecord) []string {
	var tags []string
	for _, v := range []string{raw.Brand, raw.Country, raw.Region, raw.Varietal, raw.Style} {
		if strings.TrimSpace(v) != "" {
			tags = append(tags, v)
		}
	}
	return tags
}

// detectBundle checks name and description for bundle keywords.
func detectBundle(raw RawRecord) bool {
	name := strings.ToLower(raw.Name)
	desc := strings.ToLower(raw.ProductWebDescription)
	for _, kw := range bundleKeywords {
		if strings.Contains(name, kw) || strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// parseFloat parses a feed numeric; malformed input yields 0.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseInt parses a feed integer, accepting float-formatted values; malformed input yields 0.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
