package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRun ejecución de una receta: consume los ingredientes por lotes y
// crea un lote de producto terminado con el nombre de la receta.
type ProductionRun struct {
	ID       string
	RecipeID string
	Quantity decimal.Decimal // en la unidad de rendimiento de la receta
	Date     time.Time
}
