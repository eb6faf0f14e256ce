package usecase

import (
	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/internal/domain/repository"
	"github.com/jhoicas/shipment-intake-api/internal/domain/shipment"
	"github.com/jhoicas/shipment-intake-api/pkg/artime"
)

// UnknownCompanyName se muestra cuando el company_id de un ingreso no
// resuelve en el roster (no hay integridad referencial que lo impida).
const UnknownCompanyName = "غير معروف"

// ShipmentUseCase orquesta el motor de consultas: carga la colección,
// aplica el filtrado/agregación de dominio y resuelve nombres de empresa
// para la presentación.
type ShipmentUseCase struct {
	shipmentRepo repository.ShipmentRepository
	companyRepo  repository.CompanyRepository
}

// NewShipmentUseCase construye el caso de uso con sus puertos de lectura.
func NewShipmentUseCase(shipmentRepo repository.ShipmentRepository, companyRepo repository.CompanyRepository) *ShipmentUseCase {
	return &ShipmentUseCase{shipmentRepo: shipmentRepo, companyRepo: companyRepo}
}

// List aplica el filtro por rango de fechas, empresa y subcadena de barcode
// (vista "todos los ingresos"). Una fecha mal formada en la query se trata
// como criterio ausente, nunca como error.
func (uc *ShipmentUseCase) List(q dto.ShipmentQuery) (*dto.ShipmentListResponse, error) {
	shipments, err := uc.shipmentRepo.List()
	if err != nil {
		return nil, err
	}

	criteria := shipment.Criteria{
		CompanyID: q.CompanyID,
		Barcode:   q.Barcode,
	}
	if d, err := artime.ParseDate(q.StartDate); err == nil {
		criteria.Start = d
	}
	if d, err := artime.ParseDate(q.EndDate); err == nil {
		criteria.End = d
	}

	matched := shipment.Filter(shipments, criteria)
	items, err := uc.toResponses(matched)
	if err != nil {
		return nil, err
	}
	return &dto.ShipmentListResponse{Items: items, Total: len(items)}, nil
}

// DailyStats calcula el resumen del día objetivo (vista de estadísticas).
// dateStr vacío o mal formado cae al día de hoy. El filtro opcional por
// empresa se aplica SOLO a la lista mostrada; Total y DuplicateCount se
// calculan siempre sobre el conjunto completo del día.
func (uc *ShipmentUseCase) DailyStats(dateStr string, companyID int64) (*dto.DailyStatsResponse, error) {
	targetDate := artime.Today()
	if d, err := artime.ParseDate(dateStr); err == nil {
		targetDate = d
	}

	shipments, err := uc.shipmentRepo.List()
	if err != nil {
		return nil, err
	}

	stats := shipment.StatsForDate(shipments, targetDate)

	display := stats.Shipments
	if companyID != 0 {
		display = shipment.Filter(display, shipment.Criteria{CompanyID: companyID})
	}
	items, err := uc.toResponses(display)
	if err != nil {
		return nil, err
	}

	return &dto.DailyStatsResponse{
		Date:           targetDate,
		DateLabel:      artime.FormatLong(targetDate),
		Total:          stats.Total,
		DuplicateCount: stats.DuplicateCount,
		Items:          items,
	}, nil
}

// toResponses resuelve nombres de empresa y formatea fechas para render.
func (uc *ShipmentUseCase) toResponses(shipments []entity.Shipment) ([]dto.ShipmentResponse, error) {
	companies, err := uc.companyRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.Name
	}

	items := make([]dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		name, ok := names[s.CompanyID]
		if !ok {
			name = UnknownCompanyName
		}
		items = append(items, dto.ShipmentResponse{
			ID:          s.ID,
			CompanyID:   s.CompanyID,
			CompanyName: name,
			Barcode:     s.Barcode,
			Date:        s.Date,
			DateLabel:   artime.FormatLong(s.Date),
			Count:       s.Count,
		})
	}
	return items, nil
}
