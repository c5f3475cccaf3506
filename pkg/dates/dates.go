// Package dates traduce entre el formato de fecha de pantalla (DD/MM/YYYY) y el
// formato canónico de almacenamiento (YYYY-MM-DD).
package dates

import (
	"strings"
	"time"
)

// Layouts soportados.
const (
	ISOLayout     = "2006-01-02"
	DisplayLayout = "02/01/2006"
)

// Today devuelve la fecha actual en formato canónico.
func Today() string {
	return time.Now().Format(ISOLayout)
}

// TodayTime devuelve la fecha actual truncada a día, zona local.
func TodayTime() time.Time {
	return today()
}

// ParseInput interpreta una fecha en formato de pantalla o canónico y devuelve
// la forma canónica. Entrada vacía o no interpretable cae a "hoy" en lugar de
// fallar; fallback=true señala que se usó ese valor por defecto para que el
// caller pueda registrarlo.
func ParseInput(s string) (iso string, fallback bool) {
	t, fb := ParseTime(s)
	return t.Format(ISOLayout), fb
}

// ParseTime es ParseInput devolviendo time.Time (truncado a día, zona local).
func ParseTime(s string) (time.Time, bool) {
	in := strings.TrimSpace(s)
	if in == "" {
		return today(), true
	}
	for _, layout := range []string{DisplayLayout, ISOLayout} {
		if t, err := time.ParseInLocation(layout, in, time.Local); err == nil {
			return t, false
		}
	}
	// Entrada suelta con prefijo ISO (ej. timestamp completo)
	if len(in) >= len(ISOLayout) {
		if t, err := time.ParseInLocation(ISOLayout, in[:len(ISOLayout)], time.Local); err == nil {
			return t, false
		}
	}
	return today(), true
}

// ToDisplay convierte una fecha canónica al formato de pantalla.
// Vacío o inválido devuelve cadena vacía, no error.
func ToDisplay(iso string) string {
	if strings.TrimSpace(iso) == "" {
		return ""
	}
	t, err := time.ParseInLocation(ISOLayout, strings.TrimSpace(iso), time.Local)
	if err != nil {
		return ""
	}
	return t.Format(DisplayLayout)
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
