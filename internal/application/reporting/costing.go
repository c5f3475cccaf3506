package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

// Ventana por defecto para el precio promedio de respaldo, en días.
const defaultAvgPriceWindowDays = 90

// LineCost costo de una línea de receta: precio unitario resuelto por la
// cantidad en unidad base.
type LineCost struct {
	ProductID    string
	ProductName  string
	Quantity     decimal.Decimal
	Unit         string
	BaseQuantity decimal.Decimal
	UnitPrice    decimal.Decimal
	Cost         decimal.Decimal
	// PriceFromAverage indica que el último precio era cero y se usó el
	// promedio de compras de la ventana reciente.
	PriceFromAverage bool
}

// RecipeCost costo total de una receta y su costo por unidad de rendimiento.
type RecipeCost struct {
	RecipeID  string
	Name      string
	Yield     decimal.Decimal
	YieldUnit string
	Lines     []LineCost
	Total     decimal.Decimal
	PerUnit   decimal.Decimal
}

// RecipeCostUseCase costea recetas contra el estado actual del inventario.
// Solo lectura; nunca muta el ledger.
type RecipeCostUseCase struct {
	recipes   repository.RecipeRepository
	purchases repository.PurchaseRepository
}

// NewRecipeCostUseCase construye el caso de uso.
func NewRecipeCostUseCase(recipes repository.RecipeRepository, purchases repository.PurchaseRepository) *RecipeCostUseCase {
	return &RecipeCostUseCase{recipes: recipes, purchases: purchases}
}

// CostRecipe calcula el costo de una receta. El precio de cada línea es el
// último precio unitario del ingrediente; si es cero se usa el promedio de
// compras de los últimos 90 días. Con rendimiento cero el costo por unidad
// es el costo total.
func (uc *RecipeCostUseCase) CostRecipe(ctx context.Context, recipeID string) (*RecipeCost, error) {
	recipe, err := uc.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.recipes.ListLines(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	out := &RecipeCost{
		RecipeID:  recipe.ID,
		Name:      recipe.Name,
		Yield:     recipe.Yield,
		YieldUnit: recipe.YieldUnit,
		Total:     decimal.Zero,
	}
	since := time.Now().AddDate(0, 0, -defaultAvgPriceWindowDays)
	for _, line := range lines {
		price := line.LastUnitPrice
		fromAvg := false
		if price.IsZero() {
			avg, err := uc.purchases.AverageUnitPriceSince(ctx, line.ProductID, since)
			if err != nil {
				return nil, err
			}
			price = avg
			fromAvg = !avg.IsZero()
		}
		cost := line.BaseQuantity.Mul(price)
		out.Lines = append(out.Lines, LineCost{
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			Quantity:         line.Quantity,
			Unit:             line.Unit,
			BaseQuantity:     line.BaseQuantity,
			UnitPrice:        price,
			Cost:             cost,
			PriceFromAverage: fromAvg,
		})
		out.Total = out.Total.Add(cost)
	}

	out.PerUnit = out.Total
	if recipe.Yield.IsPositive() {
		out.PerUnit = out.Total.Div(recipe.Yield)
	}
	return out, nil
}
