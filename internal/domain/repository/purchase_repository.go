package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// PurchaseWithNames compra enriquecida con los nombres de producto y proveedor
// para listados.
type PurchaseWithNames struct {
	entity.Purchase
	ProductName  string
	SupplierName string
}

// PurchaseRepository puerto de persistencia para compras (inmutables).
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	ListSince(ctx context.Context, since time.Time) ([]*PurchaseWithNames, error)
	// LastUnitPrice último precio unitario base registrado; cero si no hay compras.
	LastUnitPrice(ctx context.Context, productID string) (decimal.Decimal, error)
	// AverageUnitPriceSince media aritmética del precio unitario base desde la fecha dada.
	AverageUnitPriceSince(ctx context.Context, productID string, since time.Time) (decimal.Decimal, error)
}
