package memory

import (
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/internal/domain/repository"
)

// Asegura que ShipmentRepo implementa repository.ShipmentRepository.
var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación read-only del puerto de ingresos. La colección
// es inmutable tras la siembra, así que no necesita lock.
type ShipmentRepo struct {
	shipments []entity.Shipment
}

// NewShipmentRepository construye el adaptador sembrado con el fixture.
func NewShipmentRepository(seed []entity.Shipment) *ShipmentRepo {
	shipments := make([]entity.Shipment, len(seed))
	copy(shipments, seed)
	return &ShipmentRepo{shipments: shipments}
}

// List devuelve una copia de la colección en su orden original.
func (r *ShipmentRepo) List() ([]entity.Shipment, error) {
	out := make([]entity.Shipment, len(r.shipments))
	copy(out, r.shipments)
	return out, nil
}
