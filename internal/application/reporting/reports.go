package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain/repository"
	"github.com/Cakawam/cookbook/pkg/dates"
)

// Ventanas por defecto de los reportes.
const (
	defaultSalesWindowDays     = 30
	defaultExpiryHorizonDays   = 7
	defaultPurchaseWindowMonth = 3
	defaultWasteWindowDays     = 30
)

// ReorderSuggestion candidato a reposición con la cantidad sugerida de compra.
type ReorderSuggestion struct {
	repository.ReorderItem
	Suggested decimal.Decimal
}

// PDFGenerator puerto para render de reportes en PDF.
type PDFGenerator interface {
	ReorderReport(items []ReorderSuggestion) ([]byte, error)
}

// ReportsUseCase reportes de solo lectura sobre el ledger: valorización,
// reposición, ventanas de ventas y mermas, vencimientos próximos.
type ReportsUseCase struct {
	reports   repository.ReportingRepository
	purchases repository.PurchaseRepository
	wastes    repository.WasteRepository
	sales     repository.SaleRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	reports repository.ReportingRepository,
	purchases repository.PurchaseRepository,
	wastes repository.WasteRepository,
	sales repository.SaleRepository,
) *ReportsUseCase {
	return &ReportsUseCase{reports: reports, purchases: purchases, wastes: wastes, sales: sales}
}

// StockValuation Σ cantidad × último precio unitario de todos los productos.
func (uc *ReportsUseCase) StockValuation(ctx context.Context) (decimal.Decimal, error) {
	return uc.reports.StockValuation(ctx)
}

// ReorderSuggestions productos bajo su umbral de reposición. La cantidad
// sugerida apunta al doble del umbral, redondeada hacia arriba y nunca
// negativa: max(0, ceil(umbral×2 − cantidad)).
func (uc *ReportsUseCase) ReorderSuggestions(ctx context.Context) ([]ReorderSuggestion, error) {
	items, err := uc.reports.ReorderCandidates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ReorderSuggestion, 0, len(items))
	for _, it := range items {
		suggested := it.ReorderLevel.Mul(decimal.NewFromInt(2)).Sub(it.Quantity).Ceil()
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		out = append(out, ReorderSuggestion{ReorderItem: *it, Suggested: suggested})
	}
	return out, nil
}

// SalesWindow resumen de ingresos y COGS en el rango inclusivo [from, to].
// Con fechas cero se usan los últimos 30 días.
func (uc *ReportsUseCase) SalesWindow(ctx context.Context, from, to time.Time) (*repository.SalesSummary, error) {
	if to.IsZero() {
		to = dates.TodayTime()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultSalesWindowDays)
	}
	return uc.reports.SalesAndCOGS(ctx, from, to)
}

// ExpiringBatches lotes con restante positivo que vencen dentro del horizonte
// dado en días (7 por defecto), ascendente por vencimiento.
func (uc *ReportsUseCase) ExpiringBatches(ctx context.Context, horizonDays int) ([]*repository.ExpiringBatch, error) {
	if horizonDays <= 0 {
		horizonDays = defaultExpiryHorizonDays
	}
	until := dates.TodayTime().AddDate(0, 0, horizonDays)
	return uc.reports.ExpiringBatches(ctx, until)
}

// RecentPurchases compras de los últimos meses (3 por defecto).
func (uc *ReportsUseCase) RecentPurchases(ctx context.Context, months int) ([]*repository.PurchaseWithNames, error) {
	if months <= 0 {
		months = defaultPurchaseWindowMonth
	}
	since := dates.TodayTime().AddDate(0, 0, -30*months)
	return uc.purchases.ListSince(ctx, since)
}

// RecentWaste mermas de los últimos días (30 por defecto).
func (uc *ReportsUseCase) RecentWaste(ctx context.Context, days int) ([]*repository.WasteWithName, error) {
	if days <= 0 {
		days = defaultWasteWindowDays
	}
	since := dates.TodayTime().AddDate(0, 0, -days)
	return uc.wastes.ListSince(ctx, since)
}

// SalesByDate ventas de un día concreto; una fecha no interpretable cae a hoy.
func (uc *ReportsUseCase) SalesByDate(ctx context.Context, date string) ([]*repository.SaleWithName, error) {
	day, _ := dates.ParseTime(date)
	return uc.sales.ListByDate(ctx, day)
}
