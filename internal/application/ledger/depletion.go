package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// EnsureBatchBacking sintetiza un lote "legacy" para un producto que tiene
// cantidad agregada positiva pero cero lotes (estado heredado de datos
// importados sin detalle de lote). Idempotente: si ya hay lotes no hace nada.
// Debe ejecutarse dentro de la transacción del caller.
func EnsureBatchBacking(ctx context.Context, r Repos, product *entity.Product) error {
	count, err := r.Batches.CountByProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	if count > 0 || !product.Quantity.IsPositive() {
		return nil
	}
	return r.Batches.Create(ctx, &entity.Batch{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Remaining: product.Quantity,
		Label:     entity.BatchLabelLegacy,
	})
}

// DepleteFromBatches consume una cantidad en unidad base de los lotes de un
// producto en orden FEFO (primero los lotes con vencimiento más próximo;
// los sin vencimiento al final, desempatados por fecha de compra — FIFO).
//
// Al terminar recalcula el agregado del producto como la suma de los restantes
// de sus lotes (no por resta, para auto-corregir cualquier deriva) y anexa una
// fila de auditoría con los totales antes/después y el motivo.
//
// Debe ejecutarse dentro de la transacción del caller: un fallo en cualquier
// paso revierte todas las mutaciones de la llamada.
func DepleteFromBatches(ctx context.Context, r Repos, productID string, amount decimal.Decimal, reason string) error {
	if !amount.IsPositive() {
		return nil
	}
	product, err := r.Products.GetForUpdate(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := EnsureBatchBacking(ctx, r, product); err != nil {
		return err
	}

	before, err := r.Batches.SumRemaining(ctx, productID)
	if err != nil {
		return err
	}
	batches, err := r.Batches.ListAvailableForUpdate(ctx, productID)
	if err != nil {
		return err
	}

	need := amount
	for _, b := range batches {
		if !need.IsPositive() {
			break
		}
		take := decimal.Min(b.Remaining, need)
		if err := r.Batches.SubtractRemaining(ctx, b.ID, take); err != nil {
			return err
		}
		need = need.Sub(take)
	}
	if need.GreaterThan(StockEpsilon) {
		return insufficient(product.Name, amount, before)
	}

	after, err := r.Batches.SumRemaining(ctx, productID)
	if err != nil {
		return err
	}
	if err := r.Products.UpdateQuantity(ctx, productID, after); err != nil {
		return err
	}
	return r.Adjustments.Create(ctx, &entity.StockAdjustment{
		ID:        uuid.New().String(),
		ProductID: productID,
		Date:      time.Now(),
		BeforeQty: before,
		AfterQty:  after,
		Reason:    reason,
	})
}
