package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/shipment-intake-api/internal/application/ports"
)

// ReportUseCase produce la representación PDF del resumen diario. El
// generador concreto queda detrás del puerto DailyReportGenerator.
type ReportUseCase struct {
	shipments *ShipmentUseCase
	generator ports.DailyReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(shipments *ShipmentUseCase, generator ports.DailyReportGenerator) *ReportUseCase {
	return &ReportUseCase{shipments: shipments, generator: generator}
}

// DailyReport calcula el resumen del día (mismas reglas que la vista de
// estadísticas, sin filtro de empresa) y lo entrega como PDF.
func (uc *ReportUseCase) DailyReport(ctx context.Context, dateStr string) ([]byte, error) {
	stats, err := uc.shipments.DailyStats(dateStr, 0)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateDailyReport(ctx, stats)
	if err != nil {
		return nil, fmt.Errorf("reporte diario: %w", err)
	}
	return pdf, nil
}
