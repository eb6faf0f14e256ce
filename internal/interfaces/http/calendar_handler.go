package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shipment-intake-api/internal/application/usecase"
)

// CalendarHandler sirve la grilla mensual del selector de fechas.
type CalendarHandler struct {
	uc *usecase.CalendarUseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// GetMonth godoc
// @Summary      Grilla mensual del selector de fechas
// @Description  Semana iniciando en sábado, etiquetas en árabe. Un month mal formado cae al mes actual; un selected imparseable se trata como sin selección.
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        month     query  string  false  "YYYY-MM (por defecto el mes actual)"
// @Param        selected  query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  artime.CalendarMonth
// @Router       /api/calendar [get]
func (h *CalendarHandler) GetMonth(c *fiber.Ctx) error {
	return c.JSON(h.uc.Month(c.Query("month"), c.Query("selected")))
}
