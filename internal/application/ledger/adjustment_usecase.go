package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/pkg/logger"
	"github.com/Cakawam/cookbook/pkg/units"
)

// Etiqueta de lote y prefijo de auditoría para ajustes manuales.
const (
	batchLabelAdjust   = "ajuste"
	reasonAdjustPrefix = "ajuste: "
)

// AdjustmentInput fija el agregado de un producto a una cantidad objetivo en
// unidad base, con motivo obligatorio.
type AdjustmentInput struct {
	ProductID   string
	NewQuantity string
	Reason      string
}

// AdjustStockUseCase ajuste manual de stock: ajustar hacia abajo consume lotes
// FEFO como cualquier salida; hacia arriba crea un lote de ajuste. Siempre
// deja fila de auditoría.
type AdjustStockUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(tx TxRunner, log *logger.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{tx: tx, log: log}
}

// AdjustStock lleva el agregado del producto a la cantidad objetivo.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, in AdjustmentInput) error {
	target, err := units.ParseQuantity(in.NewQuantity)
	if err != nil {
		return err
	}
	if target.IsNegative() || strings.TrimSpace(in.Reason) == "" {
		return domain.ErrInvalidInput
	}

	return uc.tx.Run(ctx, func(r Repos) error {
		product, err := r.Products.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := EnsureBatchBacking(ctx, r, product); err != nil {
			return err
		}
		current, err := r.Batches.SumRemaining(ctx, product.ID)
		if err != nil {
			return err
		}

		diff := target.Sub(current)
		switch {
		case diff.Abs().LessThanOrEqual(StockEpsilon):
			return nil
		case diff.IsNegative():
			// DepleteFromBatches recalcula el agregado y anexa la auditoría
			return DepleteFromBatches(ctx, r, product.ID, diff.Neg(), reasonAdjustPrefix+in.Reason)
		default:
			now := time.Now()
			if err := r.Batches.Create(ctx, &entity.Batch{
				ID:         uuid.New().String(),
				ProductID:  product.ID,
				Remaining:  diff,
				ReceivedAt: &now,
				Label:      batchLabelAdjust,
			}); err != nil {
				return err
			}
			total, err := r.Batches.SumRemaining(ctx, product.ID)
			if err != nil {
				return err
			}
			if err := r.Products.UpdateQuantity(ctx, product.ID, total); err != nil {
				return err
			}
			return r.Adjustments.Create(ctx, &entity.StockAdjustment{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Date:      now,
				BeforeQty: current,
				AfterQty:  total,
				Reason:    reasonAdjustPrefix + in.Reason,
			})
		}
	})
}
