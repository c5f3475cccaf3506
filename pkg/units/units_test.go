package units_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cakawam/cookbook/pkg/units"
)

func TestToBase_Masa(t *testing.T) {
	kg := units.ToBase(decimal.NewFromInt(1), "kg")
	assert.True(t, kg.Converted)
	assert.Equal(t, units.BaseMass, kg.Unit)
	assert.True(t, kg.Quantity.Equal(decimal.NewFromInt(1000)), "1 kg debe ser 1000 g")

	g := units.ToBase(decimal.NewFromInt(1000), "g")
	assert.True(t, g.Quantity.Equal(kg.Quantity), "1 kg y 1000 g deben coincidir en base")

	mg := units.ToBase(decimal.NewFromInt(500), "mg")
	assert.True(t, mg.Quantity.Equal(decimal.NewFromFloat(0.5)))
}

func TestToBase_VolumenYConteo(t *testing.T) {
	l := units.ToBase(decimal.NewFromFloat(1.5), "L")
	assert.Equal(t, units.BaseVolume, l.Unit)
	assert.True(t, l.Quantity.Equal(decimal.NewFromInt(1500)))

	un := units.ToBase(decimal.NewFromInt(12), "un")
	assert.Equal(t, units.BaseCount, un.Unit)
	assert.True(t, un.Quantity.Equal(decimal.NewFromInt(12)))
}

func TestToBase_UnidadDesconocidaPasaSinTocar(t *testing.T) {
	c := units.ToBase(decimal.NewFromInt(3), "caixa")
	assert.False(t, c.Converted)
	assert.Equal(t, "caixa", c.Unit)
	assert.True(t, c.Quantity.Equal(decimal.NewFromInt(3)))
}

func TestToBase_AceptaNegativosYCero(t *testing.T) {
	neg := units.ToBase(decimal.NewFromInt(-2), "kg")
	assert.True(t, neg.Quantity.Equal(decimal.NewFromInt(-2000)))

	zero := units.ToBase(decimal.Zero, "g")
	assert.True(t, zero.Quantity.IsZero())
}

func TestFromBase(t *testing.T) {
	q := units.FromBase(decimal.NewFromInt(1500), "g", "kg")
	assert.True(t, q.Equal(decimal.NewFromFloat(1.5)))

	// Dimensiones cruzadas: identidad, no error
	same := units.FromBase(decimal.NewFromInt(100), "g", "ml")
	assert.True(t, same.Equal(decimal.NewFromInt(100)))

	unknown := units.FromBase(decimal.NewFromInt(7), "g", "caixa")
	assert.True(t, unknown.Equal(decimal.NewFromInt(7)))
}

func TestParseQuantity(t *testing.T) {
	q, err := units.ParseQuantity(" 12.5 ")
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromFloat(12.5)))

	neg, err := units.ParseQuantity("-3")
	require.NoError(t, err, "el signo lo valida el caller, no el parser")
	assert.True(t, neg.IsNegative())

	_, err = units.ParseQuantity("doce")
	assert.ErrorIs(t, err, units.ErrInvalidQuantity)

	_, err = units.ParseQuantity("")
	assert.ErrorIs(t, err, units.ErrInvalidQuantity)
}
