package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAdjustment fila de auditoría: instantánea antes/después del agregado de
// un producto con el motivo del cambio. Solo se anexa; nunca se muta ni borra.
type StockAdjustment struct {
	ID        string
	ProductID string
	Date      time.Time
	BeforeQty decimal.Decimal
	AfterQty  decimal.Decimal
	Reason    string
}
