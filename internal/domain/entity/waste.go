package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Waste merma o desperdicio registrado; consume stock por lotes y queda
// prohibido si excede la cantidad disponible del producto.
type Waste struct {
	ID           string
	ProductID    string
	Quantity     decimal.Decimal // en la unidad original
	Unit         string
	BaseQuantity decimal.Decimal
	Reason       string
	Date         time.Time
}
