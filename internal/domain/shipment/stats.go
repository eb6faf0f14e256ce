package shipment

import (
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/pkg/artime"
)

// DailyStats es el resumen de un día: total de ingresos y cantidad de
// barcodes distintos repetidos. Shipments conserva el orden original y es
// la base de la lista mostrada (el filtro por empresa de la vista se aplica
// después, sin alterar Total ni DuplicateCount).
type DailyStats struct {
	Total          int
	DuplicateCount int
	Shipments      []entity.Shipment
}

// StatsForDate selecciona los ingresos cuya fecha es exactamente targetDate
// (igualdad de día, no rango) y agrega:
//
//	Total          = cantidad de ingresos del día
//	DuplicateCount = barcodes distintos con más de una aparición ese día
//
// Cuenta barcodes duplicados, no ocurrencias extra: [A,B,A,C,A] da Total 5 y
// DuplicateCount 1. La igualdad es sensible a mayúsculas y el campo Count de
// cada ingreso no participa. Un día vacío devuelve (0, 0, []).
func StatsForDate(shipments []entity.Shipment, targetDate artime.Date) DailyStats {
	selected := make([]entity.Shipment, 0)
	occurrences := make(map[string]int)
	for _, s := range shipments {
		if !s.Date.Equal(targetDate) {
			continue
		}
		selected = append(selected, s)
		occurrences[s.Barcode]++
	}

	duplicates := 0
	for _, n := range occurrences {
		if n > 1 {
			duplicates++
		}
	}

	return DailyStats{
		Total:          len(selected),
		DuplicateCount: duplicates,
		Shipments:      selected,
	}
}
