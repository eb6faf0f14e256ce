// Package artime maneja fechas de calendario (sin componente de hora) y su
// presentación en el locale árabe del dashboard: nombres de meses, dígitos
// arábigo-índicos y la grilla mensual con la semana iniciando en sábado.
//
// El formato de intercambio entre componentes es siempre ISO YYYY-MM-DD;
// la forma larga localizada se usa solo al renderizar.
package artime

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ISO formato de intercambio de fechas en toda la aplicación.
const ISO = "2006-01-02"

// Meses en árabe, enero a diciembre.
var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// Días de la semana abreviados, iniciando en sábado (orden del locale).
var arabicWeekdaysShort = [...]string{"س", "ح", "ن", "ث", "ر", "خ", "ج"}

// printer formatea números con dígitos arábigo-índicos (٠١٢٣...).
var printer = message.NewPrinter(language.MustParse("ar-EG-u-nu-arab"))

// Date es una fecha de calendario a granularidad de día. El valor cero
// significa "sin fecha" (criterio ausente en los filtros).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate interpreta una cadena YYYY-MM-DD. Una cadena vacía o mal formada
// devuelve error; los llamadores del motor de consultas la tratan como
// "criterio ausente", nunca como fallo.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISO, s)
	if err != nil {
		return Date{}, fmt.Errorf("artime: fecha inválida %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf trunca un time.Time a fecha de calendario, descartando hora y zona.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today devuelve la fecha de calendario actual en hora local.
func Today() Date {
	return DateOf(time.Now())
}

// IsZero indica si la fecha está sin establecer.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time convierte la fecha a time.Time a medianoche UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// ordinal colapsa la fecha a un entero comparable (YYYYMMDD).
func (d Date) ordinal() int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

// Equal compara a granularidad de día.
func (d Date) Equal(o Date) bool { return d.ordinal() == o.ordinal() }

// Before indica si d es anterior a o.
func (d Date) Before(o Date) bool { return d.ordinal() < o.ordinal() }

// After indica si d es posterior a o.
func (d Date) After(o Date) bool { return d.ordinal() > o.ordinal() }

// AddDays devuelve la fecha desplazada n días (n puede ser negativo).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// String devuelve la forma ISO YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON serializa como cadena ISO.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta una cadena ISO; cadena vacía deja el valor cero.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Number formatea un entero con dígitos arábigo-índicos, sin separadores de
// agrupación (los años se muestran ٢٠٢٦, no ٢٬٠٢٦).
func Number(n int) string {
	return printer.Sprint(number.Decimal(n, number.NoSeparator()))
}

// MonthName devuelve el nombre árabe del mes.
func MonthName(m time.Month) string {
	return arabicMonths[m-1]
}

// WeekdaysShort devuelve las abreviaturas de los días, sábado primero.
func WeekdaysShort() []string {
	out := make([]string, len(arabicWeekdaysShort))
	copy(out, arabicWeekdaysShort[:])
	return out
}

// FormatLong devuelve la forma larga localizada, ej. "١٥ يناير ٢٠٢٦".
// Para una fecha cero devuelve cadena vacía.
func FormatLong(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %s %s", Number(d.Day), MonthName(d.Month), Number(d.Year))
}
