package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase registro inmutable de una adquisición. Cada compra crea exactamente
// un lote.
type Purchase struct {
	ID            string
	ProductID     string
	SupplierID    *string
	Quantity      decimal.Decimal // en la unidad original
	Unit          string
	BaseQuantity  decimal.Decimal // en unidad base
	TotalPrice    decimal.Decimal
	UnitPriceBase decimal.Decimal // precio por unidad base, redondeado a 4 decimales (mitad hacia arriba)
	Date          time.Time
	Lot           string
	ExpiresAt     *time.Time
}
