package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/entity"
)

// RecipeLineDetail línea de receta enriquecida con el estado actual del
// producto ingrediente (para costeo y validación de disponibilidad).
type RecipeLineDetail struct {
	entity.RecipeLine
	ProductName     string
	ProductBaseUnit string
	ProductQuantity decimal.Decimal // agregado actual del ingrediente
	LastUnitPrice   decimal.Decimal
}

// RecipeRepository puerto de persistencia para recetas y sus líneas.
// La receta posee sus líneas: Delete las elimina en cascada.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *entity.Recipe) error
	Update(ctx context.Context, id, name string, yield decimal.Decimal) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
	List(ctx context.Context) ([]*entity.Recipe, error)
	AddLine(ctx context.Context, line *entity.RecipeLine) error
	ListLines(ctx context.Context, recipeID string) ([]*RecipeLineDetail, error)
}
