package db

import (
	"context"

	"github.com/jonathan/drip-agent/internal/types"
)

// MemoryCatalog serves the seed catalog without a database connection. It
// mirrors the Store's product query semantics and backs the CLI analyze
// command when no DATABASE_URL is configured.
type MemoryCatalog struct {
	Archetypes []types.Archetype
	Products   []types.Product
}

// NewMemoryCatalog returns a catalog over the built-in seed data.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		Archetypes: SeedArchetypes,
		Products:   SeedProducts,
	}
}

// ListArchetypes returns all archetypes.
func (m *MemoryCatalog) ListArchetypes(context.Context) ([]types.Archetype, error) {
	return append([]types.Archetype(nil), m.Archetypes...), nil
}

// GetArchetype returns one archetype by id, or nil when absent.
func (m *MemoryCatalog) GetArchetype(_ context.Context, id string) (*types.Archetype, error) {
	for i := range m.Archetypes {
		if m.Archetypes[i].ID == id {
			a := m.Archetypes[i]
			return &a, nil
		}
	}
	return nil, nil
}

// ListProducts returns the full catalog.
func (m *MemoryCatalog) ListProducts(context.Context) ([]types.Product, error) {
	return append([]types.Product(nil), m.Products...), nil
}

// QueryProducts filters by archetype tag overlap and, when gender is
// non-empty, an exact gender tag, matching the SQL query's semantics.
func (m *MemoryCatalog) QueryProducts(_ context.Context, archetypes []string, gender string, limit int) ([]types.Product, error) {
	wanted := make(map[string]bool, len(archetypes))
	for _, a := range archetypes {
		wanted[a] = true
	}

	var out []types.Product
	for _, p := range m.Products {
		if len(out) >= limit {
			break
		}
		if gender != "" && p.Gender != gender {
			continue
		}
		for _, tag := range p.StyleArchetypes {
			if wanted[tag] {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}
