package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

// Adaptadores de los registros inmutables del ledger: producciones, ventas,
// mermas y auditoría de stock. Solo anexan y listan.

var (
	_ repository.ProductionRepository = (*ProductionRepo)(nil)
	_ repository.SaleRepository       = (*SaleRepo)(nil)
	_ repository.WasteRepository      = (*WasteRepo)(nil)
	_ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)
)

// ProductionRepo implementación de ProductionRepository sobre PostgreSQL.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste una producción.
func (r *ProductionRepo) Create(ctx context.Context, run *entity.ProductionRun) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO production_runs (id, recipe_id, quantity, date)
		VALUES ($1, $2, $3, $4)`,
		run.ID, run.RecipeID, run.Quantity, run.Date)
	if err != nil {
		return fmt.Errorf("create production run: %w", err)
	}
	return nil
}

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, product_id, quantity, unit, base_quantity, unit_price, date, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.ProductID, s.Quantity, s.Unit, s.BaseQuantity, s.UnitPrice, s.Date, s.Location)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// ListByDate ventas de un día calendario, con el nombre del producto.
func (r *SaleRepo) ListByDate(ctx context.Context, date time.Time) ([]*repository.SaleWithName, error) {
	rows, err := r.q.Query(ctx, `
		SELECT s.id, s.product_id, s.quantity, s.unit, s.base_quantity, s.unit_price,
			s.date, s.location, p.name
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.date::date = $1::date
		ORDER BY s.date`, date)
	if err != nil {
		return nil, fmt.Errorf("list sales by date: %w", err)
	}
	defer rows.Close()

	var out []*repository.SaleWithName
	for rows.Next() {
		var s repository.SaleWithName
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.Unit, &s.BaseQuantity,
			&s.UnitPrice, &s.Date, &s.Location, &s.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// WasteRepo implementación de WasteRepository sobre PostgreSQL.
type WasteRepo struct {
	q Querier
}

// NewWasteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWasteRepository(q Querier) *WasteRepo {
	return &WasteRepo{q: q}
}

// Create persiste una merma.
func (r *WasteRepo) Create(ctx context.Context, w *entity.Waste) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO wastes (id, product_id, quantity, unit, base_quantity, reason, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.ProductID, w.Quantity, w.Unit, w.BaseQuantity, w.Reason, w.Date)
	if err != nil {
		return fmt.Errorf("create waste: %w", err)
	}
	return nil
}

// ListSince mermas desde la fecha dada, más recientes primero.
func (r *WasteRepo) ListSince(ctx context.Context, since time.Time) ([]*repository.WasteWithName, error) {
	rows, err := r.q.Query(ctx, `
		SELECT w.id, w.product_id, w.quantity, w.unit, w.base_quantity, w.reason, w.date, p.name
		FROM wastes w
		JOIN products p ON p.id = w.product_id
		WHERE w.date >= $1
		ORDER BY w.date DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("list wastes: %w", err)
	}
	defer rows.Close()

	var out []*repository.WasteWithName
	for rows.Next() {
		var w repository.WasteWithName
		if err := rows.Scan(&w.ID, &w.ProductID, &w.Quantity, &w.Unit, &w.BaseQuantity,
			&w.Reason, &w.Date, &w.ProductName); err != nil {
			return nil, fmt.Errorf("scan waste: %w", err)
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}

// AdjustmentRepo implementación de AdjustmentRepository sobre PostgreSQL.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create anexa una fila de auditoría.
func (r *AdjustmentRepo) Create(ctx context.Context, a *entity.StockAdjustment) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_adjustments (id, product_id, date, before_qty, after_qty, reason)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.ProductID, a.Date, a.BeforeQty, a.AfterQty, a.Reason)
	if err != nil {
		return fmt.Errorf("create stock adjustment: %w", err)
	}
	return nil
}

// ListByProduct filas de auditoría del producto, más recientes primero.
func (r *AdjustmentRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockAdjustment, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, date, before_qty, after_qty, reason
		FROM stock_adjustments
		WHERE product_id = $1
		ORDER BY date DESC
		LIMIT $2`, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockAdjustment
	for rows.Next() {
		var a entity.StockAdjustment
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Date, &a.BeforeQty, &a.AfterQty, &a.Reason); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
