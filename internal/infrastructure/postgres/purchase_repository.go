package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra (inmutable).
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO purchases (id, product_id, supplier_id, quantity, unit, base_quantity,
			total_price, unit_price_base, date, lot, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.ProductID, p.SupplierID, p.Quantity, p.Unit, p.BaseQuantity,
		p.TotalPrice, p.UnitPriceBase, p.Date, p.Lot, p.ExpiresAt)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// ListSince compras desde la fecha dada, más recientes primero, con los
// nombres de producto y proveedor resueltos.
func (r *PurchaseRepo) ListSince(ctx context.Context, since time.Time) ([]*repository.PurchaseWithNames, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.product_id, p.supplier_id, p.quantity, p.unit, p.base_quantity,
			p.total_price, p.unit_price_base, p.date, p.lot, p.expires_at,
			pr.name, COALESCE(s.name, '')
		FROM purchases p
		JOIN products pr ON pr.id = p.product_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.date >= $1
		ORDER BY p.date DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var out []*repository.PurchaseWithNames
	for rows.Next() {
		var p repository.PurchaseWithNames
		if err := rows.Scan(&p.ID, &p.ProductID, &p.SupplierID, &p.Quantity, &p.Unit,
			&p.BaseQuantity, &p.TotalPrice, &p.UnitPriceBase, &p.Date, &p.Lot,
			&p.ExpiresAt, &p.ProductName, &p.SupplierName); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// LastUnitPrice último precio unitario base registrado; cero si no hay compras.
func (r *PurchaseRepo) LastUnitPrice(ctx context.Context, productID string) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(
			(SELECT unit_price_base FROM purchases
			 WHERE product_id = $1 ORDER BY date DESC LIMIT 1), 0)`, productID).Scan(&price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("last unit price: %w", err)
	}
	return price, nil
}

// AverageUnitPriceSince media aritmética del precio unitario base desde la
// fecha dada; cero si no hay compras en la ventana.
func (r *PurchaseRepo) AverageUnitPriceSince(ctx context.Context, productID string, since time.Time) (decimal.Decimal, error) {
	var avg decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(AVG(unit_price_base), 0)
		FROM purchases WHERE product_id = $1 AND date >= $2`, productID, since).Scan(&avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("average unit price: %w", err)
	}
	return avg, nil
}
