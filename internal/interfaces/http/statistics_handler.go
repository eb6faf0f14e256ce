package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/application/usecase"
)

// StatisticsHandler maneja el resumen diario y su reporte PDF.
type StatisticsHandler struct {
	shipments *usecase.ShipmentUseCase
	reports   *usecase.ReportUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(shipments *usecase.ShipmentUseCase, reports *usecase.ReportUseCase) *StatisticsHandler {
	return &StatisticsHandler{shipments: shipments, reports: reports}
}

// GetDaily godoc
// @Summary      Resumen del día: total, barcodes duplicados y lista
// @Description  date por defecto es hoy. El filtro company_id reduce solo la lista mostrada; total y duplicate_count se calculan siempre sobre el día completo.
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        date        query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Param        company_id  query  int     false  "ID de empresa (solo lista)"
// @Success      200  {object}  dto.DailyStatsResponse
// @Router       /api/statistics/daily [get]
func (h *StatisticsHandler) GetDaily(c *fiber.Ctx) error {
	date := c.Query("date")
	companyID := int64(c.QueryInt("company_id", 0))

	out, err := h.shipments.DailyStats(date, companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetDailyReport godoc
// @Summary      Reporte PDF del resumen diario
// @Tags         statistics
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200  {file}  binary
// @Router       /api/statistics/daily/report [get]
func (h *StatisticsHandler) GetDailyReport(c *fiber.Ctx) error {
	pdf, err := h.reports.DailyReport(c.Context(), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="daily-report.pdf"`)
	return c.Send(pdf)
}
