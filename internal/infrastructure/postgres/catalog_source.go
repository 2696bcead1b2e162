package postgres

import (
	"context"
	"fmt"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
)

var _ catalog.Source = (*CatalogSource)(nil)

// CatalogSource reads the raw catalog feed from the raw_catalog table, where
// the ingestion job lands feed rows verbatim (numerics kept as text, exactly
// as delivered). Normalization happens in the domain, not in SQL.
type CatalogSource struct {
	q Querier
}

// NewCatalogSource builds the adapter.
func NewCatalogSource(q Querier) *CatalogSource {
	return &CatalogSource{q: q}
}

// ListRecords loads the whole feed for one snapshot build.
func (s *CatalogSource) ListRecords(ctx context.Context) ([]catalog.RawRecord, error) {
	query := `
		SELECT id, sku, name, product_web_description,
		       supplier, supplier_id, supplier_contact,
		       brand, country, region, varietal, style, origin,
		       category_level_1, category_level_2, category_level_3, category_level_4,
		       hide_on_public, stock_count, minimum_stock, maximum_stock,
		       loyalty_points, alcohol_percentage, volume, shelf_life, packaging, rank
		FROM raw_catalog`
	rows, err := s.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list raw catalog: %w", err)
	}
	defer rows.Close()

	var records []catalog.RawRecord
	for rows.Next() {
		var r catalog.RawRecord
		if err := rows.Scan(
			&r.ID, &r.SKU, &r.Name, &r.ProductWebDescription,
			&r.Supplier, &r.SupplierID, &r.SupplierContact,
			&r.Brand, &r.Country, &r.Region, &r.Varietal, &r.Style, &r.Origin,
			&r.CategoryLevel1, &r.CategoryLevel2, &r.CategoryLevel3, &r.CategoryLevel4,
			&r.HideOnPublic, &r.StockCount, &r.MinimumStock, &r.MaximumStock,
			&r.LoyaltyPoints, &r.AlcoholPercentage, &r.Volume, &r.ShelfLife, &r.Packaging, &r.Rank,
		); err != nil {
			return nil, fmt.Errorf("scan raw catalog row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate raw catalog: %w", err)
	}
	return records, nil
}
