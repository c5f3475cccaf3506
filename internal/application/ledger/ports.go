package ledger

import (
	"context"

	"github.com/Cakawam/cookbook/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
type Repos struct {
	Suppliers   repository.SupplierRepository
	Products    repository.ProductRepository
	Batches     repository.BatchRepository
	Purchases   repository.PurchaseRepository
	Recipes     repository.RecipeRepository
	Productions repository.ProductionRepository
	Sales       repository.SaleRepository
	Wastes      repository.WasteRepository
	Adjustments repository.AdjustmentRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cualquier error de fn revierte todas las
// escrituras de la llamada; garantiza atomicidad para los orquestadores y el
// motor de consumo por lotes.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
