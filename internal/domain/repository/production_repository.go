package repository

import (
	"context"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// ProductionRepository puerto de persistencia para producciones.
type ProductionRepository interface {
	Create(ctx context.Context, run *entity.ProductionRun) error
}
