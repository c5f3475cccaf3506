package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Cakawam/cookbook/internal/domain"
)

// StockEpsilon tolerancia única para comparaciones de suficiencia de stock.
// Las cantidades derivadas de conversión de unidades pueden arrastrar colas
// fraccionarias largas tras divisiones; todo el núcleo compara contra esta
// constante y contra ninguna otra.
var StockEpsilon = decimal.New(1, -6)

// Shortage déficit de un producto: cuánto se necesitaba contra cuánto había.
type Shortage struct {
	ProductName string
	Required    decimal.Decimal
	Available   decimal.Decimal
}

// InsufficientStockError stock insuficiente, con el detalle de todos los
// productos deficitarios (una producción reporta todos sus ingredientes
// faltantes en un solo fallo, no solo el primero).
// Envuelve domain.ErrInsufficientStock para errors.Is.
type InsufficientStockError struct {
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (necesario %s, disponible %s)",
			s.ProductName, s.Required.StringFixed(4), s.Available.StringFixed(4)))
	}
	return "stock insuficiente: " + strings.Join(parts, "; ")
}

func (e *InsufficientStockError) Unwrap() error {
	return domain.ErrInsufficientStock
}

func insufficient(name string, required, available decimal.Decimal) error {
	return &InsufficientStockError{Shortages: []Shortage{{
		ProductName: name,
		Required:    required,
		Available:   available,
	}}}
}
