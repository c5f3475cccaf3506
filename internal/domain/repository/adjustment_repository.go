package repository

import (
	"context"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// AdjustmentRepository puerto para el registro de auditoría de stock.
// Solo anexa: no hay Update ni Delete.
type AdjustmentRepository interface {
	Create(ctx context.Context, adj *entity.StockAdjustment) error
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockAdjustment, error)
}
