// Package folio define el formato de los folios de resguardo: prefijo alfabético,
// guion y consecutivo decimal con ceros a la izquierda (ej. RES-0042).
package folio

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultWidth ancho del consecutivo cuando el tipo de documento no define otro.
const DefaultWidth = 4

// Format arma el folio. Si n excede el ancho se escribe completo, sin truncar.
func Format(prefix string, width int, n int64) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return fmt.Sprintf("%s-%0*d", strings.ToUpper(prefix), width, n)
}

// Number extrae el consecutivo de un folio. Solo se usa para mostrar y en pruebas.
func Number(folio string) (int64, bool) {
	i := strings.LastIndexByte(folio, '-')
	if i < 0 || i == len(folio)-1 {
		return 0, false
	}
	n, err := strconv.ParseInt(folio[i+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
