package dto

import "github.com/jhoicas/shipment-intake-api/pkg/artime"

// ShipmentQuery criterios del listado de ingresos. Todos opcionales; las
// fechas van en ISO YYYY-MM-DD y una fecha mal formada se trata como
// criterio ausente, nunca como error.
type ShipmentQuery struct {
	Barcode   string `query:"barcode"`
	CompanyID int64  `query:"company_id"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// ShipmentResponse un ingreso con el nombre de empresa ya resuelto
// ("غير معروف" cuando el company_id no existe en el roster) y la fecha en
// ambas formas: ISO para intercambio y larga localizada para render.
type ShipmentResponse struct {
	ID          int64       `json:"id"`
	CompanyID   int64       `json:"company_id"`
	CompanyName string      `json:"company_name"`
	Barcode     string      `json:"barcode"`
	Date        artime.Date `json:"date"`
	DateLabel   string      `json:"date_label"`
	Count       int         `json:"count"`
}

// ShipmentListResponse resultado del filtro. Un listado vacío es válido
// (el cliente muestra el indicador de "sin resultados").
type ShipmentListResponse struct {
	Items []ShipmentResponse `json:"items"`
	Total int                `json:"total"`
}

// DailyStatsResponse resumen del día objetivo. Total y DuplicateCount se
// calculan SIEMPRE sobre el conjunto completo del día; el filtro opcional
// por empresa afecta solo a Items.
type DailyStatsResponse struct {
	Date           artime.Date        `json:"date"`
	DateLabel      string             `json:"date_label"`
	Total          int                `json:"total"`
	DuplicateCount int                `json:"duplicate_count"`
	Items          []ShipmentResponse `json:"items"`
}
