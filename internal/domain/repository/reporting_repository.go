package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReorderItem producto por debajo de su umbral de reposición.
type ReorderItem struct {
	ProductID    string
	Name         string
	Quantity     decimal.Decimal
	ReorderLevel decimal.Decimal
	BaseUnit     string
}

// ExpiringBatch lote próximo a vencer, con el nombre del producto.
type ExpiringBatch struct {
	BatchID     string
	ProductID   string
	ProductName string
	Remaining   decimal.Decimal
	ExpiresAt   time.Time
	Label       string
}

// SalesSummary ingresos y COGS estimado de una ventana de fechas.
type SalesSummary struct {
	Revenue decimal.Decimal
	COGS    decimal.Decimal
}

// ReportingRepository consultas de solo lectura para reportes. Nunca muta el
// ledger; devuelve instantáneas.
type ReportingRepository interface {
	// StockValuation Σ cantidad × último precio unitario sobre todos los productos.
	StockValuation(ctx context.Context) (decimal.Decimal, error)
	// ReorderCandidates productos con reorder_level > 0 y cantidad por debajo del umbral.
	ReorderCandidates(ctx context.Context) ([]*ReorderItem, error)
	// ExpiringBatches lotes con vencimiento ≤ límite y restante > 0, ascendente por vencimiento.
	ExpiringBatches(ctx context.Context, until time.Time) ([]*ExpiringBatch, error)
	// SalesAndCOGS ingresos y COGS estimado en el rango inclusivo [from, to].
	SalesAndCOGS(ctx context.Context, from, to time.Time) (*SalesSummary, error)
}
