package ledger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/pkg/dates"
	"github.com/Cakawam/cookbook/pkg/logger"
	"github.com/Cakawam/cookbook/pkg/units"
)

// ProductionInput entrada cruda de una producción. Quantity está en la unidad
// de rendimiento de la receta.
type ProductionInput struct {
	RecipeID string
	Quantity string
	Date     string
}

// RegisterProductionUseCase ejecuta una receta: valida la disponibilidad de
// TODOS los ingredientes antes de mutar nada (un solo fallo combinado con cada
// déficit), consume cada ingrediente por lotes FEFO escalado por el factor de
// producción, registra la producción y crea el lote de producto terminado con
// el nombre de la receta.
type RegisterProductionUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewRegisterProductionUseCase construye el caso de uso.
func NewRegisterProductionUseCase(tx TxRunner, log *logger.Logger) *RegisterProductionUseCase {
	return &RegisterProductionUseCase{tx: tx, log: log}
}

// RegisterProduction ejecuta la producción completa en una transacción y
// devuelve el id de la producción.
func (uc *RegisterProductionUseCase) RegisterProduction(ctx context.Context, in ProductionInput) (string, error) {
	produced, err := units.ParseQuantity(in.Quantity)
	if err != nil {
		return "", err
	}
	if !produced.IsPositive() {
		return "", domain.ErrInvalidInput
	}
	date, fellBack := dates.ParseTime(in.Date)
	if fellBack && strings.TrimSpace(in.Date) != "" {
		uc.log.Warn().Str("entrada", in.Date).Msg("fecha de producción no interpretable, se usa hoy")
	}

	runID := uuid.New().String()
	err = uc.tx.Run(ctx, func(r Repos) error {
		recipe, err := r.Recipes.GetByID(ctx, in.RecipeID)
		if err != nil {
			return err
		}
		if recipe == nil {
			return domain.ErrNotFound
		}
		lines, err := r.Recipes.ListLines(ctx, recipe.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrEmptyRecipe
		}

		// factor = producido / rendimiento; rendimiento cero degenera a 1
		factor := decimal.NewFromInt(1)
		if recipe.Yield.IsPositive() {
			factor = produced.Div(recipe.Yield)
		}

		// Pre-validación completa: se reportan todos los déficits juntos,
		// sin mutar nada si falta cualquiera.
		var shortages []Shortage
		for _, line := range lines {
			need := line.BaseQuantity.Mul(factor)
			if line.ProductQuantity.LessThan(need.Sub(StockEpsilon)) {
				shortages = append(shortages, Shortage{
					ProductName: line.ProductName,
					Required:    need,
					Available:   line.ProductQuantity,
				})
			}
		}
		if len(shortages) > 0 {
			return &InsufficientStockError{Shortages: shortages}
		}

		reason := "produccion " + recipe.Name
		for _, line := range lines {
			need := line.BaseQuantity.Mul(factor)
			if err := DepleteFromBatches(ctx, r, line.ProductID, need, reason); err != nil {
				return err
			}
		}

		if err := r.Productions.Create(ctx, &entity.ProductionRun{
			ID:       runID,
			RecipeID: recipe.ID,
			Quantity: produced,
			Date:     date,
		}); err != nil {
			return err
		}

		// Producto terminado: nombre de la receta, unidad = etiqueta de rendimiento
		finished, err := r.Products.UpsertByName(ctx, recipe.Name, recipe.YieldUnit)
		if err != nil {
			return err
		}
		before, err := r.Batches.SumRemaining(ctx, finished.ID)
		if err != nil {
			return err
		}
		if err := r.Batches.Create(ctx, &entity.Batch{
			ID:         uuid.New().String(),
			ProductID:  finished.ID,
			Remaining:  produced,
			ReceivedAt: &date,
			Label:      entity.BatchLabelProduction,
		}); err != nil {
			return err
		}
		total, err := r.Batches.SumRemaining(ctx, finished.ID)
		if err != nil {
			return err
		}
		if err := r.Products.UpdateQuantity(ctx, finished.ID, total); err != nil {
			return err
		}
		return r.Adjustments.Create(ctx, &entity.StockAdjustment{
			ID:        uuid.New().String(),
			ProductID: finished.ID,
			Date:      date,
			BeforeQty: before,
			AfterQty:  total,
			Reason:    reason,
		})
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}
