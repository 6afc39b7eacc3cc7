package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/drip-agent/internal/types"
)

// UpsertArchetype inserts or replaces an archetype record.
func (s *Store) UpsertArchetype(ctx context.Context, a *types.Archetype) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO archetypes (id, name, description, keywords, example_brands)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE
		 SET name = $2, description = $3, keywords = $4, example_brands = $5`,
		a.ID, a.Name, a.Description, a.Keywords, a.ExampleBrands,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert archetype %s: %w", a.ID, err)
	}
	return nil
}

// ListArchetypes retrieves all archetypes ordered by id.
func (s *Store) ListArchetypes(ctx context.Context) ([]types.Archetype, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, description, keywords, example_brands
		 FROM archetypes ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list archetypes: %w", err)
	}
	defer rows.Close()

	var archetypes []types.Archetype
	for rows.Next() {
		var a types.Archetype
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Keywords, &a.ExampleBrands); err != nil {
			return nil, fmt.Errorf("failed to scan archetype: %w", err)
		}
		archetypes = append(archetypes, a)
	}
	return archetypes, nil
}

// GetArchetype retrieves one archetype by id. Returns nil, nil when absent.
func (s *Store) GetArchetype(ctx context.Context, id string) (*types.Archetype, error) {
	var a types.Archetype
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, description, keywords, example_brands
		 FROM archetypes WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Description, &a.Keywords, &a.ExampleBrands)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get archetype: %w", err)
	}
	return &a, nil
}

// UpsertProduct inserts or replaces a product record.
func (s *Store) UpsertProduct(ctx context.Context, p *types.Product) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO products (id, name, brand, category, price, style_archetypes,
		                       description, image_url, buy_link, gender, colors, weight)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE
		 SET name = $2, brand = $3, category = $4, price = $5, style_archetypes = $6,
		     description = $7, image_url = $8, buy_link = $9, gender = $10,
		     colors = $11, weight = $12`,
		p.ID, p.Name, p.Brand, p.Category, p.Price, p.StyleArchetypes,
		p.Description, p.ImageURL, p.BuyLink, p.Gender, p.Colors, string(p.Weight),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", p.ID, err)
	}
	return nil
}

const productColumns = `id, name, brand, category, price, style_archetypes,
	description, image_url, buy_link, gender, colors, weight`

// ListProducts retrieves the full catalog ordered by id.
func (s *Store) ListProducts(ctx context.Context) ([]types.Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// QueryProducts retrieves products whose style_archetypes overlap the given
// set, optionally restricted to an exact gender tag. An empty archetype set
// matches nothing; an empty gender disables the gender filter.
func (s *Store) QueryProducts(ctx context.Context, archetypes []string, gender string, limit int) ([]types.Product, error) {
	if len(archetypes) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + productColumns + ` FROM products
		WHERE style_archetypes && $1`
	args := []any{archetypes}

	if gender != "" {
		query += ` AND gender = $2 LIMIT $3`
		args = append(args, gender)
	} else {
		query += ` LIMIT $2`
	}
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]types.Product, error) {
	var products []types.Product
	for rows.Next() {
		var p types.Product
		var weight string
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Category, &p.Price,
			&p.StyleArchetypes, &p.Description, &p.ImageURL, &p.BuyLink,
			&p.Gender, &p.Colors, &weight); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Weight = types.ClothingWeight(weight)
		products = append(products, p)
	}
	return products, nil
}
