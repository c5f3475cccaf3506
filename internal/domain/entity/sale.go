package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de un producto; consume stock por lotes (FEFO).
type Sale struct {
	ID           string
	ProductID    string
	Quantity     decimal.Decimal // en la unidad original
	Unit         string
	BaseQuantity decimal.Decimal
	UnitPrice    decimal.Decimal // precio de venta por unidad original
	Date         time.Time
	Location     string
}
