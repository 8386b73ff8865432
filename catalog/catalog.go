// Package catalog is the read layer behind the public menu pages. Each
// call is a single round trip against the document collections; there is
// no caching, retrying, or pagination here.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apenara/cafe-menu-digital/models"
)

// ErrNotFound reports that the requested document does not exist. It is
// distinct from transport failures so callers can render a not-found
// page instead of a generic error.
var ErrNotFound = errors.New("catalog: not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const categoryColumns = "id, name, description, COALESCE(image, ''), sort_order, created_at, updated_at"

// ListCategories returns every category ascending by its display order.
// Ties keep store order, which is not contractual.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+categoryColumns+" FROM categories ORDER BY sort_order ASC")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetCategory returns a single category or ErrNotFound. An id that is
// not a valid identifier cannot match any document and maps to
// ErrNotFound as well.
func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	row := s.db.QueryRow(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = $1", categoryID)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

const productColumns = "id, category_id, name, description, price, COALESCE(image, ''), available, sort_order, ingredients, allergens, created_at, updated_at"

// ListProducts returns the products of one category ascending by display
// order. An empty and a non-existent category both yield an empty slice.
func (s *Store) ListProducts(ctx context.Context, categoryID string) ([]models.Product, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return []models.Product{}, nil
	}
	rows, err := s.db.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE category_id = $1 ORDER BY sort_order ASC", id)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct returns a single product or ErrNotFound.
func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	row := s.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", productID)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Image,
		&c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// Schemaless store: enforce shape here so malformed documents fail
	// fast instead of reaching a template with missing variants.
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.Image, &p.Available, &p.SortOrder, &p.Ingredients, &p.Allergens,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
