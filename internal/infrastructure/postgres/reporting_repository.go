package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/repository"
)

var _ repository.ReportingRepository = (*ReportingRepo)(nil)

// ReportingRepo consultas agregadas de solo lectura sobre el ledger.
type ReportingRepo struct {
	q Querier
}

// NewReportingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportingRepository(q Querier) *ReportingRepo {
	return &ReportingRepo{q: q}
}

// StockValuation Σ cantidad × último precio unitario sobre todos los productos.
func (r *ReportingRepo) StockValuation(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity * last_unit_price), 0) FROM products`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stock valuation: %w", err)
	}
	return total, nil
}

// ReorderCandidates productos con umbral activo y cantidad por debajo de él.
func (r *ReportingRepo) ReorderCandidates(ctx context.Context) ([]*repository.ReorderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, quantity, reorder_level, base_unit
		FROM products
		WHERE reorder_level > 0 AND quantity < reorder_level
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("reorder candidates: %w", err)
	}
	defer rows.Close()

	var out []*repository.ReorderItem
	for rows.Next() {
		var it repository.ReorderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.ReorderLevel, &it.BaseUnit); err != nil {
			return nil, fmt.Errorf("scan reorder item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// ExpiringBatches lotes con restante positivo y vencimiento hasta el límite,
// ascendente por vencimiento.
func (r *ReportingRepo) ExpiringBatches(ctx context.Context, until time.Time) ([]*repository.ExpiringBatch, error) {
	rows, err := r.q.Query(ctx, `
		SELECT b.id, b.product_id, p.name, b.remaining, b.expires_at, b.label
		FROM batches b
		JOIN products p ON p.id = b.product_id
		WHERE b.remaining > 0 AND b.expires_at IS NOT NULL AND b.expires_at <= $1
		ORDER BY b.expires_at ASC`, until)
	if err != nil {
		return nil, fmt.Errorf("expiring batches: %w", err)
	}
	defer rows.Close()

	var out []*repository.ExpiringBatch
	for rows.Next() {
		var b repository.ExpiringBatch
		if err := rows.Scan(&b.BatchID, &b.ProductID, &b.ProductName, &b.Remaining,
			&b.ExpiresAt, &b.Label); err != nil {
			return nil, fmt.Errorf("scan expiring batch: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// SalesAndCOGS ingresos (cantidad original × precio de venta) y COGS estimado
// (cantidad base × último precio de compra del producto) en el rango inclusivo.
func (r *ReportingRepo) SalesAndCOGS(ctx context.Context, from, to time.Time) (*repository.SalesSummary, error) {
	var s repository.SalesSummary
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(s.quantity * s.unit_price), 0),
			COALESCE(SUM(s.base_quantity * p.last_unit_price), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.date::date >= $1::date AND s.date::date <= $2::date`, from, to).Scan(&s.Revenue, &s.COGS)
	if err != nil {
		return nil, fmt.Errorf("sales and cogs: %w", err)
	}
	return &s, nil
}
