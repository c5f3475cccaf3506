package repository

import (
	"context"
	"time"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// SaleWithName venta enriquecida con el nombre del producto.
type SaleWithName struct {
	entity.Sale
	ProductName string
}

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	ListByDate(ctx context.Context, date time.Time) ([]*SaleWithName, error)
}
