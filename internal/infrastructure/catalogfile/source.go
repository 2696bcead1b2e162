package catalogfile

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
)

// Compile-time check that Source implements the catalog source port.
var _ catalog.Source = (*Source)(nil)

// Source reads the raw catalog feed from a JSON export on disk.
// Supports both a bare array and an object with a "products" key, the two
// formats the feed supplier has been known to produce.
type Source struct {
	path string
}

// New builds a file-backed catalog source.
func New(path string) *Source {
	return &Source{path: path}
}

// ListRecords loads and decodes the feed file.
func (s *Source) ListRecords(ctx context.Context) ([]catalog.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", s.path, err)
	}

	var records []catalog.RawRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Products []catalog.RawRecord `json:"products"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("catalog file %s: invalid JSON: %w", s.path, err)
	}
	if wrapped.Products == nil {
		return nil, fmt.Errorf("catalog file %s: expected an array or an object with a products key", s.path)
	}
	return wrapped.Products, nil
}
