package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/application/ledger"
	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
	"github.com/Cakawam/cookbook/pkg/logger"
	"github.com/Cakawam/cookbook/pkg/units"
)

// RecipeLineInput línea cruda: cantidad textual en unidad arbitraria y el
// ingrediente nombrado, no identificado (se aprovisiona por nombre).
type RecipeLineInput struct {
	ProductName string
	Quantity    string
	Unit        string
}

// RecipeUseCase administración del catálogo de recetas. Las líneas se agregan
// transaccionalmente porque aprovisionan el producto ingrediente por nombre.
type RecipeUseCase struct {
	recipes repository.RecipeRepository
	tx      ledger.TxRunner
	log     *logger.Logger
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(recipes repository.RecipeRepository, tx ledger.TxRunner, log *logger.Logger) *RecipeUseCase {
	return &RecipeUseCase{recipes: recipes, tx: tx, log: log}
}

// Create registra una receta nueva. El nombre es clave natural única y el
// rendimiento debe ser positivo.
func (uc *RecipeUseCase) Create(ctx context.Context, name string, yield decimal.Decimal, yieldUnit string) (*entity.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" || !yield.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	rec := &entity.Recipe{
		ID:        uuid.New().String(),
		Name:      name,
		Yield:     yield,
		YieldUnit: strings.TrimSpace(yieldUnit),
	}
	if err := uc.recipes.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update renombra una receta o corrige su rendimiento.
func (uc *RecipeUseCase) Update(ctx context.Context, id, name string, yield decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" || !yield.IsPositive() {
		return domain.ErrInvalidInput
	}
	return uc.recipes.Update(ctx, id, name, yield)
}

// Delete elimina la receta y sus líneas en cascada.
func (uc *RecipeUseCase) Delete(ctx context.Context, id string) error {
	return uc.recipes.Delete(ctx, id)
}

// Get devuelve la receta con sus líneas enriquecidas.
func (uc *RecipeUseCase) Get(ctx context.Context, id string) (*entity.Recipe, []*repository.RecipeLineDetail, error) {
	rec, err := uc.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, domain.ErrNotFound
	}
	lines, err := uc.recipes.ListLines(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rec, lines, nil
}

// List devuelve todas las recetas.
func (uc *RecipeUseCase) List(ctx context.Context) ([]*entity.Recipe, error) {
	return uc.recipes.List(ctx)
}

// AddLine agrega un ingrediente a la receta. El producto se aprovisiona por
// nombre si no existe y la cantidad se normaliza a unidad base, todo en una
// transacción.
func (uc *RecipeUseCase) AddLine(ctx context.Context, recipeID string, in RecipeLineInput) (*entity.RecipeLine, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	qty, err := units.ParseQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	if !qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	conv := units.ToBase(qty, in.Unit)
	if !conv.Converted {
		uc.log.Warn().Str("unidad", in.Unit).Str("ingrediente", name).
			Msg("unidad no reconocida en línea de receta, se guarda sin convertir")
	}

	line := &entity.RecipeLine{
		ID:           uuid.New().String(),
		RecipeID:     recipeID,
		Quantity:     qty,
		Unit:         in.Unit,
		BaseQuantity: conv.Quantity,
	}
	err = uc.tx.Run(ctx, func(r ledger.Repos) error {
		rec, err := r.Recipes.GetByID(ctx, recipeID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		product, err := r.Products.UpsertByName(ctx, name, conv.Unit)
		if err != nil {
			return err
		}
		line.ProductID = product.ID
		return r.Recipes.AddLine(ctx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}
