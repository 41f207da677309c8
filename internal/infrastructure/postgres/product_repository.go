package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bichtuyen/kho-duong-api/internal/domain"
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the ProductRepository port on PostgreSQL (usable with
// pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, "group", kg_per_bao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Group, product.KgPerBao,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// CreateBatch inserts several products. Runs as one round-trip per product but
// inside the caller's Querier, so wrap in a tx when atomicity matters.
func (r *ProductRepo) CreateBatch(products []*entity.Product) error {
	for _, p := range products {
		if err := r.Create(p); err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches a product by ID. Returns (nil, nil) when absent.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, "group", kg_per_bao, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Group, &p.KgPerBao, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByName fetches a product by its display name. Returns (nil, nil) when absent.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `
		SELECT id, name, "group", kg_per_bao, created_at, updated_at
		FROM products WHERE name = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&p.ID, &p.Name, &p.Group, &p.KgPerBao, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return &p, nil
}

// List returns the whole catalog ordered by creation time, then id. The order
// is stable so fuzzy matching over it is deterministic.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, "group", kg_per_bao, created_at, updated_at
		FROM products ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Group, &p.KgPerBao, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count returns the catalog size (seed-if-empty check).
func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
