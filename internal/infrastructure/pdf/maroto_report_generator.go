// Package pdf implementa la representación en PDF del resumen diario de
// ingresos usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título del reporte │ fecha objetivo (ISO)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de ingresos / barcodes duplicados            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empresa | Barcode | Fecha | Veces                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoReportGenerator implementa ports.DailyReportGenerator.
var _ ports.DailyReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa el puerto del reporte diario con Maroto v2.
// La fuente base (helvetica) no trae glifos árabes: las etiquetas del reporte
// son neutras y los nombres de empresa se transcriben tal cual vienen.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDailyReport genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDailyReport(_ context.Context, stats *dto.DailyStatsResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Daily Intake Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(stats.Items) {
		m.AddRows(r)
	}
	if len(stats.Items) == 0 {
		m.AddRows(emptyRow())
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha objetivo (der).
func headerRow(stats *dto.DailyStatsResponse) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("DAILY INTAKE REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Date: "+stats.Date.String(), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 3,
			}),
		),
	)
}

// summaryRow: total del día y barcodes duplicados.
func summaryRow(stats *dto.DailyStatsResponse) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Total shipments", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(strconv.Itoa(stats.Total), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("Duplicated barcodes", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(strconv.Itoa(stats.DuplicateCount), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ingresos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Company", 4, align.Left),
		h("Barcode", 4, align.Left),
		h("Date", 2, align.Center),
		h("Count", 2, align.Center),
	)
}

// tableRows: una fila por ingreso del día.
func tableRows(items []dto.ShipmentResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				it.CompanyName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				it.Barcode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.Date.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(it.Count),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// emptyRow: indicador de día sin ingresos.
func emptyRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New("No shipments for the selected date.", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		})),
	)
}
