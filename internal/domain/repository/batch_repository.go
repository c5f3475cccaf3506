package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// BatchRepository puerto de persistencia para lotes.
// ListAvailableForUpdate devuelve los lotes con restante > 0 en orden de
// consumo FEFO: primero los que tienen vencimiento (ascendente), después los
// que no, con desempate por fecha de adquisición ascendente. Bloquea las filas
// seleccionadas dentro de la transacción en curso.
type BatchRepository interface {
	Create(ctx context.Context, batch *entity.Batch) error
	ListAvailableForUpdate(ctx context.Context, productID string) ([]*entity.Batch, error)
	SubtractRemaining(ctx context.Context, batchID string, amount decimal.Decimal) error
	SumRemaining(ctx context.Context, productID string) (decimal.Decimal, error)
	CountByProduct(ctx context.Context, productID string) (int, error)
}
