package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO batches (id, product_id, remaining, received_at, expires_at, label)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.ProductID, b.Remaining, b.ReceivedAt, b.ExpiresAt, b.Label)
	if err != nil {
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}

// ListAvailableForUpdate lotes con restante > 0 en orden de consumo FEFO
// (vencimiento ascendente NULLS LAST, desempate por fecha de adquisición),
// bloqueados dentro de la transacción en curso.
func (r *BatchRepo) ListAvailableForUpdate(ctx context.Context, productID string) ([]*entity.Batch, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, remaining, received_at, expires_at, label
		FROM batches
		WHERE product_id = $1 AND remaining > 0
		ORDER BY expires_at ASC NULLS LAST, received_at ASC NULLS FIRST
		FOR UPDATE`, productID)
	if err != nil {
		return nil, fmt.Errorf("list batches for update: %w", err)
	}
	defer rows.Close()

	var out []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.Remaining, &b.ReceivedAt, &b.ExpiresAt, &b.Label); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// SubtractRemaining descuenta del restante de un lote.
func (r *BatchRepo) SubtractRemaining(ctx context.Context, batchID string, amount decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE batches SET remaining = remaining - $2 WHERE id = $1`, batchID, amount)
	if err != nil {
		return fmt.Errorf("subtract batch remaining: %w", err)
	}
	return nil
}

// SumRemaining suma de los restantes de todos los lotes del producto. Es la
// fuente de verdad del agregado: el producto se recalcula desde aquí, nunca
// por resta.
func (r *BatchRepo) SumRemaining(ctx context.Context, productID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(remaining), 0) FROM batches WHERE product_id = $1`, productID).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum batch remaining: %w", err)
	}
	return sum, nil
}

// CountByProduct cantidad de lotes (con o sin restante) del producto.
func (r *BatchRepo) CountByProduct(ctx context.Context, productID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM batches WHERE product_id = $1`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count batches: %w", err)
	}
	return n, nil
}
