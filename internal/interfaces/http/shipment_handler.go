package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/application/usecase"
)

// ShipmentHandler maneja el listado filtrable de ingresos.
type ShipmentHandler struct {
	uc *usecase.ShipmentUseCase
}

// NewShipmentHandler construye el handler inyectando el caso de uso.
func NewShipmentHandler(uc *usecase.ShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar ingresos con filtros opcionales
// @Description  Rango de fechas inclusivo a granularidad de día; una fecha mal formada se ignora como criterio. La búsqueda por barcode es por subcadena, insensible a mayúsculas.
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        barcode     query  string  false  "subcadena del barcode"
// @Param        company_id  query  int     false  "ID de empresa"
// @Param        start_date  query  string  false  "YYYY-MM-DD, inclusivo"
// @Param        end_date    query  string  false  "YYYY-MM-DD, inclusivo"
// @Success      200  {object}  dto.ShipmentListResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	var q dto.ShipmentQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
