package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste una receta; nombre duplicado devuelve domain.ErrDuplicate.
func (r *RecipeRepo) Create(ctx context.Context, rec *entity.Recipe) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO recipes (id, name, yield, yield_unit)
		VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.Name, rec.Yield, rec.YieldUnit)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

// Update renombra la receta o corrige su rendimiento.
func (r *RecipeRepo) Update(ctx context.Context, id, name string, yield decimal.Decimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE recipes SET name = $2, yield = $3 WHERE id = $1`, id, name, yield)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la receta; las líneas caen por cascada del esquema.
func (r *RecipeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// GetByID devuelve la receta o nil si no existe.
func (r *RecipeRepo) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	var rec entity.Recipe
	err := r.q.QueryRow(ctx,
		`SELECT id, name, yield, yield_unit FROM recipes WHERE id = $1`, id).Scan(
		&rec.ID, &rec.Name, &rec.Yield, &rec.YieldUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

// List todas las recetas ordenadas por nombre.
func (r *RecipeRepo) List(ctx context.Context) ([]*entity.Recipe, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, yield, yield_unit FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Yield, &rec.YieldUnit); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// AddLine agrega una línea a la receta.
func (r *RecipeRepo) AddLine(ctx context.Context, line *entity.RecipeLine) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO recipe_lines (id, recipe_id, product_id, quantity, unit, base_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		line.ID, line.RecipeID, line.ProductID, line.Quantity, line.Unit, line.BaseQuantity)
	if err != nil {
		return fmt.Errorf("add recipe line: %w", err)
	}
	return nil
}

// ListLines líneas de la receta enriquecidas con el estado actual del
// ingrediente (agregado y último precio) para costeo y validación.
func (r *RecipeRepo) ListLines(ctx context.Context, recipeID string) ([]*repository.RecipeLineDetail, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.id, l.recipe_id, l.product_id, l.quantity, l.unit, l.base_quantity,
			p.name, p.base_unit, p.quantity, p.last_unit_price
		FROM recipe_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.recipe_id = $1
		ORDER BY p.name`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer rows.Close()

	var out []*repository.RecipeLineDetail
	for rows.Next() {
		var d repository.RecipeLineDetail
		if err := rows.Scan(&d.ID, &d.RecipeID, &d.ProductID, &d.Quantity, &d.Unit,
			&d.BaseQuantity, &d.ProductName, &d.ProductBaseUnit, &d.ProductQuantity,
			&d.LastUnitPrice); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
