package repository

import (
	"context"
	"time"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// WasteWithName merma enriquecida con el nombre del producto.
type WasteWithName struct {
	entity.Waste
	ProductName string
}

// WasteRepository puerto de persistencia para mermas.
type WasteRepository interface {
	Create(ctx context.Context, waste *entity.Waste) error
	ListSince(ctx context.Context, since time.Time) ([]*WasteWithName, error)
}
