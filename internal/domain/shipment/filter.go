// Package shipment implementa el motor de consultas sobre la colección de
// ingresos (servicio de dominio, funciones puras sin I/O): filtrado por
// rango de fechas / empresa / barcode, y agregación diaria de duplicados.
package shipment

import (
	"strings"

	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/pkg/artime"
)

// Criteria son los criterios opcionales del filtro. Un campo en su valor
// cero significa "criterio ausente": fecha cero, CompanyID 0 o barcode
// vacío no restringen nada. Una fecha que no pudo parsearse aguas arriba
// llega aquí como cero, nunca como error.
type Criteria struct {
	Start     artime.Date // inclusivo, granularidad de día
	End       artime.Date // inclusivo, el día completo
	CompanyID int64
	Barcode   string // subcadena, insensible a mayúsculas
}

// Filter devuelve la subsecuencia de shipments que cumple TODOS los
// criterios presentes, preservando el orden relativo original. El resultado
// vacío es válido; con criterios vacíos el resultado es la colección entera.
// La función es pura e idempotente: mismas entradas, mismo resultado.
func Filter(shipments []entity.Shipment, c Criteria) []entity.Shipment {
	needle := strings.ToLower(c.Barcode)

	out := make([]entity.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if !c.Start.IsZero() && s.Date.Before(c.Start) {
			continue
		}
		if !c.End.IsZero() && s.Date.After(c.End) {
			continue
		}
		if c.CompanyID != 0 && s.CompanyID != c.CompanyID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(s.Barcode), needle) {
			continue
		}
		out = append(out, s)
	}
	return out
}
