package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cakawam/cookbook/internal/application/ledger"
	"github.com/Cakawam/cookbook/internal/application/usecase"
	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
	"github.com/Cakawam/cookbook/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type stubRecipes struct {
	recipes []*entity.Recipe
	lines   []*entity.RecipeLine
}

func (s *stubRecipes) Create(_ context.Context, rec *entity.Recipe) error {
	for _, existing := range s.recipes {
		if existing.Name == rec.Name {
			return domain.ErrDuplicate
		}
	}
	s.recipes = append(s.recipes, rec)
	return nil
}

func (s *stubRecipes) Update(_ context.Context, id, name string, yield decimal.Decimal) error {
	for _, rec := range s.recipes {
		if rec.ID == id {
			rec.Name, rec.Yield = name, yield
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *stubRecipes) Delete(_ context.Context, id string) error {
	for i, rec := range s.recipes {
		if rec.ID == id {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			break
		}
	}
	var kept []*entity.RecipeLine
	for _, l := range s.lines {
		if l.RecipeID != id {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	return nil
}

func (s *stubRecipes) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	for _, rec := range s.recipes {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *stubRecipes) List(context.Context) ([]*entity.Recipe, error) { return s.recipes, nil }

func (s *stubRecipes) AddLine(_ context.Context, line *entity.RecipeLine) error {
	s.lines = append(s.lines, line)
	return nil
}

func (s *stubRecipes) ListLines(_ context.Context, recipeID string) ([]*repository.RecipeLineDetail, error) {
	var out []*repository.RecipeLineDetail
	for _, l := range s.lines {
		if l.RecipeID == recipeID {
			out = append(out, &repository.RecipeLineDetail{RecipeLine: *l})
		}
	}
	return out, nil
}

type stubProducts struct{ products []*entity.Product }

func (s *stubProducts) UpsertByName(_ context.Context, name, baseUnit string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.Name == name {
			return p, nil
		}
	}
	p := &entity.Product{ID: "prod-" + name, Name: name, BaseUnit: baseUnit}
	s.products = append(s.products, p)
	return p, nil
}
func (s *stubProducts) GetByID(context.Context, string) (*entity.Product, error)      { return nil, nil }
func (s *stubProducts) GetForUpdate(context.Context, string) (*entity.Product, error) { return nil, nil }
func (s *stubProducts) List(context.Context, string) ([]*entity.Product, error)       { return s.products, nil }
func (s *stubProducts) UpdateQuantity(context.Context, string, decimal.Decimal) error { return nil }
func (s *stubProducts) UpdateQuantityAndPrice(context.Context, string, decimal.Decimal, decimal.Decimal) error {
	return nil
}
func (s *stubProducts) SetReorderLevel(context.Context, string, decimal.Decimal) error { return nil }

// stubTx ejecuta fn sin transacción real; suficiente para validar el cableado.
type stubTx struct {
	recipes  *stubRecipes
	products *stubProducts
}

func (s *stubTx) Run(_ context.Context, fn func(r ledger.Repos) error) error {
	return fn(ledger.Repos{Recipes: s.recipes, Products: s.products})
}

func newRecipeUC() (*usecase.RecipeUseCase, *stubRecipes, *stubProducts) {
	recipes := &stubRecipes{}
	products := &stubProducts{}
	uc := usecase.NewRecipeUseCase(recipes, &stubTx{recipes: recipes, products: products}, testLogger())
	return uc, recipes, products
}

func TestRecipeCreate_NombreDuplicado(t *testing.T) {
	uc, _, _ := newRecipeUC()

	_, err := uc.Create(context.Background(), "Bolo", decimal.NewFromInt(10), "un")
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "Bolo", decimal.NewFromInt(5), "un")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRecipeCreate_Validaciones(t *testing.T) {
	uc, _, _ := newRecipeUC()

	_, err := uc.Create(context.Background(), "  ", decimal.NewFromInt(10), "un")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(context.Background(), "Bolo", decimal.Zero, "un")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el rendimiento debe ser positivo")
}

func TestRecipeAddLine_AprovisionaIngredienteYConvierte(t *testing.T) {
	uc, recipes, products := newRecipeUC()
	rec, err := uc.Create(context.Background(), "Bolo", decimal.NewFromInt(10), "un")
	require.NoError(t, err)

	line, err := uc.AddLine(context.Background(), rec.ID, usecase.RecipeLineInput{
		ProductName: "Harina", Quantity: "0.5", Unit: "kg",
	})
	require.NoError(t, err)

	require.Len(t, products.products, 1, "el ingrediente se crea por nombre")
	assert.Equal(t, "g", products.products[0].BaseUnit)
	assert.Equal(t, products.products[0].ID, line.ProductID)
	assert.True(t, line.BaseQuantity.Equal(decimal.NewFromInt(500)), "0.5 kg = 500 g")
	require.Len(t, recipes.lines, 1)
}

func TestRecipeAddLine_RecetaInexistente(t *testing.T) {
	uc, _, _ := newRecipeUC()

	_, err := uc.AddLine(context.Background(), "nope", usecase.RecipeLineInput{
		ProductName: "Harina", Quantity: "1", Unit: "kg",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipeDelete_CascadaDeLineas(t *testing.T) {
	uc, recipes, _ := newRecipeUC()
	rec, err := uc.Create(context.Background(), "Bolo", decimal.NewFromInt(10), "un")
	require.NoError(t, err)
	_, err = uc.AddLine(context.Background(), rec.ID, usecase.RecipeLineInput{
		ProductName: "Harina", Quantity: "1", Unit: "kg",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), rec.ID))
	assert.Empty(t, recipes.recipes)
	assert.Empty(t, recipes.lines)
}

type stubExpenses struct{ expenses []*entity.Expense }

func (s *stubExpenses) Create(_ context.Context, e *entity.Expense) error {
	s.expenses = append(s.expenses, e)
	return nil
}
func (s *stubExpenses) List(_ context.Context, limit int) ([]*entity.Expense, error) {
	if limit > 0 && len(s.expenses) > limit {
		return s.expenses[:limit], nil
	}
	return s.expenses, nil
}

func TestExpenseCreate_FechaPermisiva(t *testing.T) {
	store := &stubExpenses{}
	uc := usecase.NewExpenseUseCase(store, testLogger())

	e, err := uc.Create(context.Background(), "gas", "no-es-fecha", decimal.NewFromFloat(12.50))
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), e.Date.Format("2006-01-02"),
		"fecha no interpretable cae a hoy")

	_, err = uc.Create(context.Background(), "", "", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(context.Background(), "gas", "", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
