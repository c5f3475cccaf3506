package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos (DIP).
// UpsertByName aprovisiona por clave natural: si el nombre ya existe devuelve
// el registro existente sin tocar su unidad base.
type ProductRepository interface {
	UpsertByName(ctx context.Context, name, baseUnit string) (*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, nameFilter string) ([]*entity.Product, error)
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	UpdateQuantityAndPrice(ctx context.Context, id string, quantity, lastUnitPrice decimal.Decimal) error
	SetReorderLevel(ctx context.Context, id string, level decimal.Decimal) error
}
