package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del inventario, identificado por nombre único.
// Se aprovisiona implícitamente la primera vez que una compra, un ingrediente
// de receta o una producción lo nombra (upsert por clave natural).
//
// Invariante: Quantity siempre es la suma de los Remaining de sus lotes; solo
// el motor de consumo por lotes y las entradas de compra/producción la mutan.
type Product struct {
	ID            string
	Name          string
	BaseUnit      string          // "g", "ml" o "un" (o etiqueta cruda si la unidad no se reconoció)
	Quantity      decimal.Decimal // agregado en unidad base
	LastUnitPrice decimal.Decimal // último precio de compra por unidad base
	ReorderLevel  decimal.Decimal // umbral de reposición en unidad base; 0 = deshabilitado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
