package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category canonical product category. Raw feed categories map onto these
// through a fixed table in the catalog normalizer.
type Category string

const (
	CategoryWine               Category = "wine"
	CategorySpirits            Category = "spirits"
	CategoryBeer               Category = "beer"
	CategoryChampagne          Category = "champagne"
	CategoryCocktailIngredient Category = "cocktail_ingredients"
	CategoryNonAlcoholic       Category = "non_alcoholic"
	CategoryBarEquipment       Category = "bar_equipment"
)

// SupplierTier ranking derived from the supplier's loyalty points.
type SupplierTier string

const (
	TierBronze   SupplierTier = "bronze"
	TierSilver   SupplierTier = "silver"
	TierGold     SupplierTier = "gold"
	TierPlatinum SupplierTier = "platinum"
)

// Supplier information attached to a product.
type Supplier struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Tier        SupplierTier `json:"tier"`
	ContactInfo string       `json:"contact_info"`
	IsActive    bool         `json:"is_active"`
}

// VolumeDiscount price break for a minimum order quantity.
type VolumeDiscount struct {
	MinQuantity int             `json:"min_quantity"`
	Discount    decimal.Decimal `json:"discount"` // fraction, e.g. 0.05
}

// TierPrice customer-tier specific price.
type TierPrice struct {
	Tier  string          `json:"tier"`
	Price decimal.Decimal `json:"price"`
}

// Pricing product pricing block. BasePrice is derived from loyalty points by
// the normalizer (points x 0.1), a documented simplification rather than a
// real pricing model.
type Pricing struct {
	BasePrice       decimal.Decimal  `json:"base_price"`
	Currency        string           `json:"currency"`
	VolumeDiscounts []VolumeDiscount `json:"volume_discounts"`
	TierPricing     []TierPrice      `json:"tier_pricing"`
}

// Inventory stock levels for a product.
type Inventory struct {
	CurrentStock int  `json:"current_stock"`
	MinimumStock int  `json:"minimum_stock"`
	MaximumStock int  `json:"maximum_stock"`
	ReorderPoint int  `json:"reorder_point"`
	IsInStock    bool `json:"is_in_stock"`
}

// Specifications physical and origin details of a product.
type Specifications struct {
	Volume         int     `json:"volume"`          // ml, default 750
	AlcoholContent float64 `json:"alcohol_content"` // ABV percentage
	Origin         string  `json:"origin"`
	Region         string  `json:"region"`
	Packaging      string  `json:"packaging"`
	ShelfLife      int     `json:"shelf_life"` // days, default 365
}

// Product canonical product produced by the catalog normalizer.
// Immutable once normalized within a request.
type Product struct {
	ID             string         `json:"id"`
	SKU            string         `json:"sku"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       Category       `json:"category"`
	Subcategory    string         `json:"subcategory"`
	Supplier       Supplier       `json:"supplier"`
	Pricing        Pricing        `json:"pricing"`
	Inventory      Inventory      `json:"inventory"`
	Specifications Specifications `json:"specifications"`
	Tags           []string       `json:"tags"`
	IsActive       bool           `json:"is_active"`
	IsBundle       bool           `json:"is_bundle"`
	Rank           int            `json:"rank"`            // ascending catalog rank
	SupplierPoints float64        `json:"supplier_points"` // tiebreak key for tier ordering
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
