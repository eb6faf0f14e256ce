package ports

import (
	"context"

	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
)

// DailyReportGenerator define el puerto de salida para la representación
// PDF del resumen diario. El adaptador concreto (Maroto) vive en
// infrastructure y es intercambiable.
type DailyReportGenerator interface {
	GenerateDailyReport(ctx context.Context, stats *dto.DailyStatsResponse) ([]byte, error)
}
