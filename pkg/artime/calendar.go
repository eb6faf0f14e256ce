package artime

import "time"

// CalendarCell es una celda de la grilla mensual. Las celdas en blanco
// rellenan el hueco anterior al día 1 para alinear la semana.
type CalendarCell struct {
	Blank    bool   `json:"blank,omitempty"`
	Day      int    `json:"day,omitempty"`
	Label    string `json:"label,omitempty"` // día en dígitos arábigo-índicos
	Date     Date   `json:"date,omitempty"`
	Today    bool   `json:"today,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

// CalendarMonth es la grilla de un mes con la semana iniciando en sábado.
type CalendarMonth struct {
	Year     int            `json:"year"`
	Month    int            `json:"month"`
	Title    string         `json:"title"` // ej. "أغسطس ٢٠٢٦"
	Weekdays []string       `json:"weekdays"`
	Cells    []CalendarCell `json:"cells"`
}

// MonthGrid construye la grilla del mes indicado. selected puede ser cero
// (sin selección); today marca el día actual cuando cae dentro del mes.
func MonthGrid(year int, month time.Month, selected, today Date) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// time.Weekday: domingo=0. Semana iniciando en sábado: sábado=0.
	offset := (int(first.Weekday()) + 1) % 7
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]CalendarCell, 0, offset+daysInMonth)
	for i := 0; i < offset; i++ {
		cells = append(cells, CalendarCell{Blank: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		d := Date{Year: year, Month: month, Day: day}
		cells = append(cells, CalendarCell{
			Day:      day,
			Label:    Number(day),
			Date:     d,
			Today:    d.Equal(today),
			Selected: !selected.IsZero() && d.Equal(selected),
		})
	}

	return CalendarMonth{
		Year:     year,
		Month:    int(month),
		Title:    MonthName(month) + " " + Number(year),
		Weekdays: WeekdaysShort(),
		Cells:    cells,
	}
}
