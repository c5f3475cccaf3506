package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Cakawam/cookbook/pkg/dates"
)

func TestParseInput_FormatoPantalla(t *testing.T) {
	iso, fallback := dates.ParseInput("25/12/2024")
	assert.False(t, fallback)
	assert.Equal(t, "2024-12-25", iso)
}

func TestParseInput_FormatoCanonico(t *testing.T) {
	iso, fallback := dates.ParseInput("2024-12-25")
	assert.False(t, fallback)
	assert.Equal(t, "2024-12-25", iso)
}

func TestParseInput_PrefijoISO(t *testing.T) {
	iso, fallback := dates.ParseInput("2024-12-25T10:30:00Z")
	assert.False(t, fallback)
	assert.Equal(t, "2024-12-25", iso)
}

func TestParseInput_VaciaCaeAHoy(t *testing.T) {
	iso, fallback := dates.ParseInput("")
	assert.True(t, fallback)
	assert.Equal(t, time.Now().Format(dates.ISOLayout), iso)

	iso2, fallback2 := dates.ParseInput("   ")
	assert.True(t, fallback2)
	assert.Equal(t, iso, iso2)
}

func TestParseInput_BasuraCaeAHoy(t *testing.T) {
	iso, fallback := dates.ParseInput("ayer por la tarde")
	assert.True(t, fallback)
	assert.Equal(t, time.Now().Format(dates.ISOLayout), iso)
}

func TestParseTime_TruncaADia(t *testing.T) {
	tm, fallback := dates.ParseTime("01/02/2024")
	assert.False(t, fallback)
	assert.Equal(t, 2024, tm.Year())
	assert.Equal(t, time.February, tm.Month())
	assert.Equal(t, 1, tm.Day())
	assert.Zero(t, tm.Hour())
}

func TestToDisplay(t *testing.T) {
	assert.Equal(t, "25/12/2024", dates.ToDisplay("2024-12-25"))
	assert.Equal(t, "", dates.ToDisplay(""))
	assert.Equal(t, "", dates.ToDisplay("no-es-fecha"))
}
