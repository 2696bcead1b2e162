package catalog

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// Source supplies raw catalog records. Refresh and ingestion mechanics live
// behind this boundary; the engine only ever sees immutable snapshots.
type Source interface {
	ListRecords(ctx context.Context) ([]RawRecord, error)
}

// Snapshot holds the normalized catalog as an immutable, atomically swapped
// value. Readers never observe a partially updated catalog: Reload builds the
// whole product set and swaps the pointer in one step.
type Snapshot struct {
	source Source
	cur    atomic.Pointer[catalogState]
}

type catalogState struct {
	products []entity.Product
	active   []entity.Product
}

// NewSnapshot creates an empty snapshot bound to a source. Call Reload to
// populate it.
func NewSnapshot(source Source) *Snapshot {
	s := &Snapshot{source: source}
	s.cur.Store(&catalogState{})
	return s
}

// Reload fetches the full feed, normalizes it and atomically replaces the
// current state. On error the previous snapshot stays in place.
func (s *Snapshot) Reload(ctx context.Context) error {
	raws, err := s.source.ListRecords(ctx)
	if err != nil {
		return err
	}
	products := NormalizeAll(raws)
	active := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	s.cur.Store(&catalogState{products: products, active: active})
	return nil
}

// All returns every normalized product, hidden ones included.
func (s *Snapshot) All() []entity.Product {
	return s.cur.Load().products
}

// Active returns the visible products only. Every recommendation path starts
// from this set.
func (s *Snapshot) Active() []entity.Product {
	return s.cur.Load().active
}

// Len reports the total number of loaded products.
func (s *Snapshot) Len() int {
	return len(s.cur.Load().products)
}

// Stats summary statistics over the current snapshot.
type Stats struct {
	Total         int            `json:"total"`
	Visible       int            `json:"visible"`
	Bundles       int            `json:"bundles"`
	TopCategories map[string]int `json:"top_categories"`
	TopSuppliers  map[string]int `json:"top_suppliers"`
}

// Stats computes summary statistics for the current snapshot, keeping the
// ten largest categories and suppliers.
func (s *Snapshot) Stats() Stats {
	state := s.cur.Load()
	stats := Stats{Total: len(state.products)}

	categories := map[string]int{}
	suppliers := map[string]int{}
	for _, p := range state.products {
		if p.IsActive {
			stats.Visible++
		}
		if p.IsBundle {
			stats.Bundles++
		}
		categories[string(p.Category)]++
		if p.Supplier.Name != "" {
			suppliers[p.Supplier.Name]++
		}
	}
	stats.TopCategories = topN(categories, 10)
	stats.TopSuppliers = topN(suppliers, 10)
	return stats
}

func topN(counts map[string]int, n int) map[string]int {
	type kv struct {
		k string
		v int
	}
	pairs := make([]kv, 0, len(counts))
	for k, v := range counts {
		pairs = append(pairs, kv{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].v != pairs[j].v {
			return pairs[i].v > pairs[j].v
		}
		return pairs[i].k < pairs[j].k
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	out := make(map[string]int, len(pairs))
	for _, p := range pairs {
		out[p.k] = p.v
	}
	return out
}
