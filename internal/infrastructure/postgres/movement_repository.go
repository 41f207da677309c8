package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implements the MovementRepository port on PostgreSQL (usable
// with pool or tx). The movements table is append-only: no UPDATE or DELETE
// statements exist here on purpose.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the adapter. Pass pool or tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create appends one movement to the log.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, type, quantity_bao, quantity_kg, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type,
		movement.QuantityBao, movement.QuantityKg, note, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListAll returns every movement (balance computation input).
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, type, quantity_bao, quantity_kg, note, created_at
		FROM movements`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByProduct returns all movements of one product.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, type, quantity_bao, quantity_kg, note, created_at
		FROM movements WHERE product_id = $1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListHistory returns movements newest-first, joined with product name/group.
func (r *MovementRepo) ListHistory(limit, offset int) ([]*entity.HistoryEntry, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity_bao, m.quantity_kg, m.note, m.created_at,
		       p.name, p."group"
		FROM movements m
		JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistoryEntry
	for rows.Next() {
		var e entity.HistoryEntry
		var note *string
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Type, &e.QuantityBao, &e.QuantityKg,
			&note, &e.CreatedAt, &e.ProductName, &e.ProductGroup); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		if note != nil {
			e.Note = *note
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var note *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.QuantityBao, &m.QuantityKg,
			&note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
