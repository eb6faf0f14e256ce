package usecase

import (
	"time"

	"github.com/jhoicas/shipment-intake-api/pkg/artime"
)

// CalendarUseCase sirve la grilla mensual del selector de fechas. No posee
// lógica de filtrado: es el colaborador de UI especificado solo en su
// contrato (semana iniciando en sábado, marcas de hoy y seleccionado).
type CalendarUseCase struct{}

// NewCalendarUseCase construye el caso de uso.
func NewCalendarUseCase() *CalendarUseCase {
	return &CalendarUseCase{}
}

// Month devuelve la grilla para month "YYYY-MM". Un mes mal formado cae al
// mes actual; un selected imparseable se trata como "sin selección", nunca
// como fallo.
func (uc *CalendarUseCase) Month(month, selected string) artime.CalendarMonth {
	today := artime.Today()

	year, m := today.Year, today.Month
	if t, err := time.Parse("2006-01", month); err == nil {
		year, m = t.Year(), t.Month()
	}

	var sel artime.Date
	if d, err := artime.ParseDate(selected); err == nil {
		sel = d
	}

	return artime.MonthGrid(year, m, sel, today)
}
