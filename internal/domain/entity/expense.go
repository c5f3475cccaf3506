package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto suelto sin relación con el stock; almacenamiento puro.
type Expense struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}
