// Package units normaliza cantidades heterogéneas (masa, volumen, conteo) a la
// unidad base de su dimensión: gramos, mililitros o unidades, para que compras,
// recetas y ventas sean comparables y sumables entre sí.
package units

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Unidades base por dimensión.
const (
	BaseMass   = "g"
	BaseVolume = "ml"
	BaseCount  = "un"
)

// ErrInvalidQuantity cantidad no numérica en la frontera de conversión.
var ErrInvalidQuantity = errors.New("cantidad inválida")

var (
	massFactors = map[string]decimal.Decimal{
		"mg": decimal.New(1, -3),
		"g":  decimal.New(1, 0),
		"kg": decimal.New(1, 3),
	}
	volumeFactors = map[string]decimal.Decimal{
		"ml": decimal.New(1, 0),
		"l":  decimal.New(1, 3),
	}
	countFactors = map[string]decimal.Decimal{
		"un": decimal.New(1, 0),
	}
)

// Conversion resultado de una conversión a unidad base.
// Converted=false indica que la unidad no se reconoció y la cantidad pasó sin
// tocar (política permisiva: una etiqueta nueva nunca bloquea la transacción,
// a costa de acumular unidades heterogéneas bajo un mismo producto).
type Conversion struct {
	Quantity  decimal.Decimal
	Unit      string
	Converted bool
}

// ToBase convierte una cantidad a la unidad base de su dimensión.
// La validación de signo queda en el caller: cero y negativos pasan tal cual.
func ToBase(quantity decimal.Decimal, unit string) Conversion {
	u := strings.ToLower(strings.TrimSpace(unit))
	if f, ok := massFactors[u]; ok {
		return Conversion{Quantity: quantity.Mul(f), Unit: BaseMass, Converted: true}
	}
	if f, ok := volumeFactors[u]; ok {
		return Conversion{Quantity: quantity.Mul(f), Unit: BaseVolume, Converted: true}
	}
	if f, ok := countFactors[u]; ok {
		return Conversion{Quantity: quantity.Mul(f), Unit: BaseCount, Converted: true}
	}
	return Conversion{Quantity: quantity, Unit: unit, Converted: false}
}

// FromBase convierte desde la unidad base hacia una unidad de la misma
// dimensión. Pares de dimensiones distintas o unidades desconocidas devuelven
// la cantidad sin cambio (identidad, no error).
func FromBase(quantity decimal.Decimal, baseUnit, targetUnit string) decimal.Decimal {
	bu := strings.ToLower(strings.TrimSpace(baseUnit))
	tu := strings.ToLower(strings.TrimSpace(targetUnit))
	switch bu {
	case BaseMass:
		if f, ok := massFactors[tu]; ok {
			return quantity.Div(f)
		}
	case BaseVolume:
		if f, ok := volumeFactors[tu]; ok {
			return quantity.Div(f)
		}
	case BaseCount:
		if tu == BaseCount {
			return quantity
		}
	}
	return quantity
}

// ParseQuantity interpreta una cantidad textual. Único punto donde se levanta
// ErrInvalidQuantity; negativos y cero son válidos aquí.
func ParseQuantity(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidQuantity
	}
	return d, nil
}

// CommonUnits unidades reconocidas, para selects de la capa de presentación.
func CommonUnits() []string {
	return []string{"mg", "g", "kg", "ml", "l", "un"}
}
