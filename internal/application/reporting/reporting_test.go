package reporting_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cakawam/cookbook/internal/application/reporting"
	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ── fakes mínimos de los puertos de lectura ───────────────────────────────────

type fakeRecipes struct {
	recipe *entity.Recipe
	lines  []*repository.RecipeLineDetail
}

func (f *fakeRecipes) Create(context.Context, *entity.Recipe) error                 { return nil }
func (f *fakeRecipes) Update(context.Context, string, string, decimal.Decimal) error {
	return nil
}
func (f *fakeRecipes) Delete(context.Context, string) error { return nil }
func (f *fakeRecipes) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	if f.recipe != nil && f.recipe.ID == id {
		return f.recipe, nil
	}
	return nil, nil
}
func (f *fakeRecipes) List(context.Context) ([]*entity.Recipe, error)  { return nil, nil }
func (f *fakeRecipes) AddLine(context.Context, *entity.RecipeLine) error { return nil }
func (f *fakeRecipes) ListLines(context.Context, string) ([]*repository.RecipeLineDetail, error) {
	return f.lines, nil
}

type fakePurchases struct {
	avg    decimal.Decimal
	recent []*repository.PurchaseWithNames
	since  time.Time
}

func (f *fakePurchases) Create(context.Context, *entity.Purchase) error { return nil }
func (f *fakePurchases) ListSince(_ context.Context, since time.Time) ([]*repository.PurchaseWithNames, error) {
	f.since = since
	return f.recent, nil
}
func (f *fakePurchases) LastUnitPrice(context.Context, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakePurchases) AverageUnitPriceSince(_ context.Context, _ string, _ time.Time) (decimal.Decimal, error) {
	return f.avg, nil
}

type fakeReports struct {
	valuation  decimal.Decimal
	candidates []*repository.ReorderItem
	expiring   []*repository.ExpiringBatch
	summary    *repository.SalesSummary

	expiringUntil time.Time
	salesFrom     time.Time
	salesTo       time.Time
}

func (f *fakeReports) StockValuation(context.Context) (decimal.Decimal, error) {
	return f.valuation, nil
}
func (f *fakeReports) ReorderCandidates(context.Context) ([]*repository.ReorderItem, error) {
	return f.candidates, nil
}
func (f *fakeReports) ExpiringBatches(_ context.Context, until time.Time) ([]*repository.ExpiringBatch, error) {
	f.expiringUntil = until
	return f.expiring, nil
}
func (f *fakeReports) SalesAndCOGS(_ context.Context, from, to time.Time) (*repository.SalesSummary, error) {
	f.salesFrom, f.salesTo = from, to
	return f.summary, nil
}

type fakeWastes struct{ recent []*repository.WasteWithName }

func (f *fakeWastes) Create(context.Context, *entity.Waste) error { return nil }
func (f *fakeWastes) ListSince(context.Context, time.Time) ([]*repository.WasteWithName, error) {
	return f.recent, nil
}

type fakeSales struct{ byDate []*repository.SaleWithName }

func (f *fakeSales) Create(context.Context, *entity.Sale) error { return nil }
func (f *fakeSales) ListByDate(context.Context, time.Time) ([]*repository.SaleWithName, error) {
	return f.byDate, nil
}

// ── costeo de recetas ─────────────────────────────────────────────────────────

func TestCostRecipe_CostoTotalYPorUnidad(t *testing.T) {
	recipes := &fakeRecipes{
		recipe: &entity.Recipe{ID: "r1", Name: "Bolo", Yield: d(10), YieldUnit: "un"},
		lines: []*repository.RecipeLineDetail{{
			RecipeLine: entity.RecipeLine{
				RecipeID: "r1", ProductID: "p1",
				Quantity: d(0.5), Unit: "kg", BaseQuantity: d(500),
			},
			ProductName:   "Harina",
			LastUnitPrice: d(0.002), // 2.00 por kg en unidad base
		}},
	}
	uc := reporting.NewRecipeCostUseCase(recipes, &fakePurchases{})

	cost, err := uc.CostRecipe(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, cost.Total.Equal(d(1.00)), "costo total = %s", cost.Total)
	assert.True(t, cost.PerUnit.Equal(d(0.10)), "costo por unidad = %s", cost.PerUnit)
	require.Len(t, cost.Lines, 1)
	assert.False(t, cost.Lines[0].PriceFromAverage)
}

func TestCostRecipe_RespaldoConPromedioReciente(t *testing.T) {
	recipes := &fakeRecipes{
		recipe: &entity.Recipe{ID: "r1", Name: "Bolo", Yield: d(2)},
		lines: []*repository.RecipeLineDetail{{
			RecipeLine:    entity.RecipeLine{RecipeID: "r1", ProductID: "p1", BaseQuantity: d(100)},
			ProductName:   "Azucar",
			LastUnitPrice: decimal.Zero,
		}},
	}
	uc := reporting.NewRecipeCostUseCase(recipes, &fakePurchases{avg: d(0.01)})

	cost, err := uc.CostRecipe(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, cost.Total.Equal(d(1.00)))
	assert.True(t, cost.Lines[0].PriceFromAverage,
		"precio cero debe ceder al promedio de compras recientes")
}

func TestCostRecipe_RendimientoCero(t *testing.T) {
	recipes := &fakeRecipes{
		recipe: &entity.Recipe{ID: "r1", Name: "Mezcla", Yield: decimal.Zero},
		lines: []*repository.RecipeLineDetail{{
			RecipeLine:    entity.RecipeLine{RecipeID: "r1", ProductID: "p1", BaseQuantity: d(100)},
			LastUnitPrice: d(0.05),
		}},
	}
	uc := reporting.NewRecipeCostUseCase(recipes, &fakePurchases{})

	cost, err := uc.CostRecipe(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, cost.PerUnit.Equal(cost.Total),
		"con rendimiento cero el costo por unidad degenera al total")
}

func TestCostRecipe_RecetaInexistente(t *testing.T) {
	uc := reporting.NewRecipeCostUseCase(&fakeRecipes{}, &fakePurchases{})
	_, err := uc.CostRecipe(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── sugerencias de reposición ─────────────────────────────────────────────────

func TestReorderSuggestions_ApuntaAlDobleDelUmbral(t *testing.T) {
	reports := &fakeReports{candidates: []*repository.ReorderItem{
		{ProductID: "p1", Name: "Harina", Quantity: d(4), ReorderLevel: d(10), BaseUnit: "g"},
		{ProductID: "p2", Name: "Cafe", Quantity: d(1.2), ReorderLevel: d(2.5), BaseUnit: "g"},
	}}
	uc := reporting.NewReportsUseCase(reports, &fakePurchases{}, &fakeWastes{}, &fakeSales{})

	out, err := uc.ReorderSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Suggested.Equal(d(16)), "2×10−4 = 16")
	assert.True(t, out[1].Suggested.Equal(d(4)), "ceil(2×2.5−1.2) = ceil(3.8) = 4")
}

func TestWriteReorderCSV(t *testing.T) {
	items := []reporting.ReorderSuggestion{{
		ReorderItem: repository.ReorderItem{
			ProductID: "p1", Name: "Harina", Quantity: d(4),
			ReorderLevel: d(10), BaseUnit: "g",
		},
		Suggested: d(16),
	}}

	var buf bytes.Buffer
	require.NoError(t, reporting.WriteReorderCSV(&buf, items))
	want := "product_id,name,current_quantity,reorder_level,suggested_purchase_quantity,base_unit\n" +
		"p1,Harina,4,10,16,g\n"
	assert.Equal(t, want, buf.String())
}

// ── ventanas de reporte ───────────────────────────────────────────────────────

func TestSalesWindow_VentanaPorDefecto(t *testing.T) {
	reports := &fakeReports{summary: &repository.SalesSummary{Revenue: d(100), COGS: d(40)}}
	uc := reporting.NewReportsUseCase(reports, &fakePurchases{}, &fakeWastes{}, &fakeSales{})

	sum, err := uc.SalesWindow(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, sum.Revenue.Equal(d(100)))
	assert.Equal(t, 30*24*time.Hour, reports.salesTo.Sub(reports.salesFrom),
		"sin rango explícito se usan los últimos 30 días")
}

func TestSalesWindow_RangoExplicito(t *testing.T) {
	reports := &fakeReports{summary: &repository.SalesSummary{}}
	uc := reporting.NewReportsUseCase(reports, &fakePurchases{}, &fakeWastes{}, &fakeSales{})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
	_, err := uc.SalesWindow(context.Background(), from, to)
	require.NoError(t, err)
	assert.True(t, reports.salesFrom.Equal(from))
	assert.True(t, reports.salesTo.Equal(to))
}

func TestExpiringBatches_HorizontePorDefecto(t *testing.T) {
	reports := &fakeReports{}
	uc := reporting.NewReportsUseCase(reports, &fakePurchases{}, &fakeWastes{}, &fakeSales{})

	_, err := uc.ExpiringBatches(context.Background(), 0)
	require.NoError(t, err)
	wantDay := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	assert.Equal(t, wantDay, reports.expiringUntil.Format("2006-01-02"))
}

func TestRecentPurchases_VentanaEnMeses(t *testing.T) {
	purchases := &fakePurchases{}
	uc := reporting.NewReportsUseCase(&fakeReports{}, purchases, &fakeWastes{}, &fakeSales{})

	_, err := uc.RecentPurchases(context.Background(), 0)
	require.NoError(t, err)
	wantDay := time.Now().AddDate(0, 0, -90).Format("2006-01-02")
	assert.Equal(t, wantDay, purchases.since.Format("2006-01-02"))
}
