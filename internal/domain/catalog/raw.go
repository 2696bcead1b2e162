package catalog

// RawRecord one stringly-typed entry from the external product feed.
// Numeric values arrive as strings and may be empty or malformed; the
// normalizer parses them defensively. The curation delegate returns records
// of the same shape class, so both sources map through Normalize.
type RawRecord struct {
	ID                    string `json:"id"`
	SKU                   string `json:"sku"`
	Name                  string `json:"name"`
	ProductWebDescription string `json:"product_web_description"`
	Supplier              string `json:"supplier"`
	SupplierID            string `json:"supplier_id"`
	SupplierContact       string `json:"supplier_contact"`
	Brand                 string `json:"brand"`
	Country               string `json:"country"`
	Region                string `json:"region"`
	Varietal              string `json:"varietal"`
	Style                 string `json:"style"`
	Origin                string `json:"origin"`
	CategoryLevel1        string `json:"category_level_1"`
	CategoryLevel2        string `json:"category_level_2"`
	CategoryLevel3        string `json:"category_level_3"`
	CategoryLevel4        string `json:"category_level_4"`
	HideOnPublic          string `json:"hide_on_public"` // "0" means visible
	StockCount            string `json:"stock_count"`
	MinimumStock          string `json:"minimum_stock"`
	MaximumStock          string `json:"maximum_stock"`
	LoyaltyPoints         string `json:"loyalty_points"` // supplier points, drives tier and base price
	AlcoholPercentage     string `json:"alcohol_percentage"`
	Volume                string `json:"volume"`     // ml
	ShelfLife             string `json:"shelf_life"` // days
	Packaging             string `json:"packaging"`
	Rank                  string `json:"rank"` // ascending catalog rank
}
