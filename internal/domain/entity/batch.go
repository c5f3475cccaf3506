package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etiquetas de lote reservadas por el sistema.
const (
	BatchLabelLegacy     = "legacy"     // sintetizado al consumir stock previo sin detalle de lotes
	BatchLabelProduction = "produccion" // lote de producto terminado creado por una producción
)

// Batch lote de un producto: cantidad restante con fecha de adquisición y
// vencimiento propias. Remaining nunca crece después de la creación y nunca
// baja de cero.
type Batch struct {
	ID         string
	ProductID  string
	Remaining  decimal.Decimal // unidad base
	ReceivedAt *time.Time      // fecha de compra/producción; nil en lotes legacy
	ExpiresAt  *time.Time      // nil = sin vencimiento
	Label      string          // etiqueta externa de lote, libre
}

// Expired indica si el lote ya venció a la fecha dada.
func (b *Batch) Expired(now time.Time) bool {
	return b.ExpiresAt != nil && b.ExpiresAt.Before(now)
}
