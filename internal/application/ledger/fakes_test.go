package ledger_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/application/ledger"
	"github.com/Cakawam/cookbook/internal/domain"
	"github.com/Cakawam/cookbook/internal/domain/entity"
	"github.com/Cakawam/cookbook/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria para los tests de la capa de aplicación. El TxRunner falso
// toma una instantánea antes de fn y la restaura si fn falla, replicando el
// rollback de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products    []*entity.Product
	batches     []*entity.Batch
	suppliers   []*entity.Supplier
	purchases   []*entity.Purchase
	recipes     []*entity.Recipe
	lines       []*entity.RecipeLine
	productions []*entity.ProductionRun
	sales       []*entity.Sale
	wastes      []*entity.Waste
	adjustments []*entity.StockAdjustment
}

func newMemStore() *memStore { return &memStore{} }

func cloneSlice[T any](in []*T) []*T {
	out := make([]*T, len(in))
	for i, v := range in {
		c := *v
		out[i] = &c
	}
	return out
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		products:    cloneSlice(s.products),
		batches:     cloneSlice(s.batches),
		suppliers:   cloneSlice(s.suppliers),
		purchases:   cloneSlice(s.purchases),
		recipes:     cloneSlice(s.recipes),
		lines:       cloneSlice(s.lines),
		productions: cloneSlice(s.productions),
		sales:       cloneSlice(s.sales),
		wastes:      cloneSlice(s.wastes),
		adjustments: cloneSlice(s.adjustments),
	}
}

func (s *memStore) repos() ledger.Repos {
	return ledger.Repos{
		Suppliers:   (*memSupplierRepo)(s),
		Products:    (*memProductRepo)(s),
		Batches:     (*memBatchRepo)(s),
		Purchases:   (*memPurchaseRepo)(s),
		Recipes:     (*memRecipeRepo)(s),
		Productions: (*memProductionRepo)(s),
		Sales:       (*memSaleRepo)(s),
		Wastes:      (*memWasteRepo)(s),
		Adjustments: (*memAdjustmentRepo)(s),
	}
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(r ledger.Repos) error) error {
	snap := r.store.snapshot()
	if err := fn(r.store.repos()); err != nil {
		*r.store = *snap
		return err
	}
	return nil
}

// ── helpers de siembra ────────────────────────────────────────────────────────

func (s *memStore) seedProduct(name, baseUnit string, qty, lastPrice decimal.Decimal) *entity.Product {
	p := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		BaseUnit:      baseUnit,
		Quantity:      qty,
		LastUnitPrice: lastPrice,
	}
	s.products = append(s.products, p)
	return p
}

func (s *memStore) seedBatch(productID string, remaining decimal.Decimal, received, expires *time.Time) *entity.Batch {
	b := &entity.Batch{
		ID:         uuid.New().String(),
		ProductID:  productID,
		Remaining:  remaining,
		ReceivedAt: received,
		ExpiresAt:  expires,
	}
	s.batches = append(s.batches, b)
	return b
}

func (s *memStore) findProduct(id string) *entity.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *memStore) findProductByName(name string) *entity.Product {
	for _, p := range s.products {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (s *memStore) findBatch(id string) *entity.Batch {
	for _, b := range s.batches {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func daysFromNow(d int) *time.Time {
	t := time.Now().AddDate(0, 0, d)
	return &t
}

// ── SupplierRepository ────────────────────────────────────────────────────────

type memSupplierRepo memStore

func (r *memSupplierRepo) UpsertByName(_ context.Context, name, contact string) (*entity.Supplier, error) {
	for _, sp := range r.suppliers {
		if sp.Name == name {
			return sp, nil
		}
	}
	sp := &entity.Supplier{ID: uuid.New().String(), Name: name, Contact: contact}
	r.suppliers = append(r.suppliers, sp)
	return sp, nil
}

func (r *memSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	return r.suppliers, nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type memProductRepo memStore

func (r *memProductRepo) UpsertByName(_ context.Context, name, baseUnit string) (*entity.Product, error) {
	if p := (*memStore)(r).findProductByName(name); p != nil {
		return p, nil
	}
	p := &entity.Product{ID: uuid.New().String(), Name: name, BaseUnit: baseUnit}
	r.products = append(r.products, p)
	return p, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return (*memStore)(r).findProduct(id), nil
}

func (r *memProductRepo) GetForUpdate(_ context.Context, id string) (*entity.Product, error) {
	return (*memStore)(r).findProduct(id), nil
}

func (r *memProductRepo) List(_ context.Context, filter string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if filter == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) UpdateQuantity(_ context.Context, id string, qty decimal.Decimal) error {
	p := (*memStore)(r).findProduct(id)
	if p == nil {
		return domain.ErrNotFound
	}
	p.Quantity = qty
	return nil
}

func (r *memProductRepo) UpdateQuantityAndPrice(_ context.Context, id string, qty, price decimal.Decimal) error {
	p := (*memStore)(r).findProduct(id)
	if p == nil {
		return domain.ErrNotFound
	}
	p.Quantity = qty
	p.LastUnitPrice = price
	return nil
}

func (r *memProductRepo) SetReorderLevel(_ context.Context, id string, level decimal.Decimal) error {
	p := (*memStore)(r).findProduct(id)
	if p == nil {
		return domain.ErrNotFound
	}
	p.ReorderLevel = level
	return nil
}

// ── BatchRepository ───────────────────────────────────────────────────────────

type memBatchRepo memStore

func (r *memBatchRepo) Create(_ context.Context, b *entity.Batch) error {
	r.batches = append(r.batches, b)
	return nil
}

// ListAvailableForUpdate replica el orden FEFO del repositorio real:
// vencimiento NULLS LAST ascendente, desempate por fecha de compra.
func (r *memBatchRepo) ListAvailableForUpdate(_ context.Context, productID string) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.batches {
		if b.ProductID == productID && b.Remaining.IsPositive() {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.ExpiresAt != nil && b.ExpiresAt == nil:
			return true
		case a.ExpiresAt == nil && b.ExpiresAt != nil:
			return false
		case a.ExpiresAt != nil && b.ExpiresAt != nil && !a.ExpiresAt.Equal(*b.ExpiresAt):
			return a.ExpiresAt.Before(*b.ExpiresAt)
		}
		switch {
		case a.ReceivedAt == nil:
			return b.ReceivedAt != nil
		case b.ReceivedAt == nil:
			return false
		default:
			return a.ReceivedAt.Before(*b.ReceivedAt)
		}
	})
	return out, nil
}

func (r *memBatchRepo) SubtractRemaining(_ context.Context, batchID string, amount decimal.Decimal) error {
	b := (*memStore)(r).findBatch(batchID)
	if b == nil {
		return domain.ErrNotFound
	}
	b.Remaining = b.Remaining.Sub(amount)
	return nil
}

func (r *memBatchRepo) SumRemaining(_ context.Context, productID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, b := range r.batches {
		if b.ProductID == productID {
			sum = sum.Add(b.Remaining)
		}
	}
	return sum, nil
}

func (r *memBatchRepo) CountByProduct(_ context.Context, productID string) (int, error) {
	n := 0
	for _, b := range r.batches {
		if b.ProductID == productID {
			n++
		}
	}
	return n, nil
}

// ── Repositorios de transacciones ─────────────────────────────────────────────

type memPurchaseRepo memStore

func (r *memPurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	r.purchases = append(r.purchases, p)
	return nil
}

func (r *memPurchaseRepo) ListSince(_ context.Context, since time.Time) ([]*repository.PurchaseWithNames, error) {
	var out []*repository.PurchaseWithNames
	for _, p := range r.purchases {
		if !p.Date.Before(since) {
			out = append(out, &repository.PurchaseWithNames{Purchase: *p})
		}
	}
	return out, nil
}

func (r *memPurchaseRepo) LastUnitPrice(_ context.Context, productID string) (decimal.Decimal, error) {
	price := decimal.Zero
	for _, p := range r.purchases {
		if p.ProductID == productID {
			price = p.UnitPriceBase
		}
	}
	return price, nil
}

func (r *memPurchaseRepo) AverageUnitPriceSince(_ context.Context, productID string, since time.Time) (decimal.Decimal, error) {
	sum, n := decimal.Zero, 0
	for _, p := range r.purchases {
		if p.ProductID == productID && !p.Date.Before(since) {
			sum = sum.Add(p.UnitPriceBase)
			n++
		}
	}
	if n == 0 {
		return decimal.Zero, nil
	}
	return sum.Div(decimal.NewFromInt(int64(n))), nil
}

type memRecipeRepo memStore

func (r *memRecipeRepo) Create(_ context.Context, rec *entity.Recipe) error {
	for _, existing := range r.recipes {
		if existing.Name == rec.Name {
			return domain.ErrDuplicate
		}
	}
	r.recipes = append(r.recipes, rec)
	return nil
}

func (r *memRecipeRepo) Update(_ context.Context, id, name string, yield decimal.Decimal) error {
	for _, rec := range r.recipes {
		if rec.ID == id {
			rec.Name, rec.Yield = name, yield
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memRecipeRepo) Delete(_ context.Context, id string) error {
	var lines []*entity.RecipeLine
	for _, l := range r.lines {
		if l.RecipeID != id {
			lines = append(lines, l)
		}
	}
	r.lines = lines
	for i, rec := range r.recipes {
		if rec.ID == id {
			r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memRecipeRepo) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	for _, rec := range r.recipes {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *memRecipeRepo) List(_ context.Context) ([]*entity.Recipe, error) {
	return r.recipes, nil
}

func (r *memRecipeRepo) AddLine(_ context.Context, line *entity.RecipeLine) error {
	r.lines = append(r.lines, line)
	return nil
}

func (r *memRecipeRepo) ListLines(_ context.Context, recipeID string) ([]*repository.RecipeLineDetail, error) {
	var out []*repository.RecipeLineDetail
	for _, l := range r.lines {
		if l.RecipeID != recipeID {
			continue
		}
		d := &repository.RecipeLineDetail{RecipeLine: *l}
		if p := (*memStore)(r).findProduct(l.ProductID); p != nil {
			d.ProductName = p.Name
			d.ProductBaseUnit = p.BaseUnit
			d.ProductQuantity = p.Quantity
			d.LastUnitPrice = p.LastUnitPrice
		}
		out = append(out, d)
	}
	return out, nil
}

type memProductionRepo memStore

func (r *memProductionRepo) Create(_ context.Context, run *entity.ProductionRun) error {
	r.productions = append(r.productions, run)
	return nil
}

type memSaleRepo memStore

func (r *memSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}

func (r *memSaleRepo) ListByDate(_ context.Context, date time.Time) ([]*repository.SaleWithName, error) {
	var out []*repository.SaleWithName
	for _, s := range r.sales {
		if s.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			out = append(out, &repository.SaleWithName{Sale: *s})
		}
	}
	return out, nil
}

type memWasteRepo memStore

func (r *memWasteRepo) Create(_ context.Context, w *entity.Waste) error {
	r.wastes = append(r.wastes, w)
	return nil
}

func (r *memWasteRepo) ListSince(_ context.Context, since time.Time) ([]*repository.WasteWithName, error) {
	var out []*repository.WasteWithName
	for _, w := range r.wastes {
		if !w.Date.Before(since) {
			out = append(out, &repository.WasteWithName{Waste: *w})
		}
	}
	return out, nil
}

type memAdjustmentRepo memStore

func (r *memAdjustmentRepo) Create(_ context.Context, a *entity.StockAdjustment) error {
	r.adjustments = append(r.adjustments, a)
	return nil
}

func (r *memAdjustmentRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockAdjustment, error) {
	var out []*entity.StockAdjustment
	for _, a := range r.adjustments {
		if a.ProductID == productID {
			out = append(out, a)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
