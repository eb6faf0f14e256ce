package repository

import "github.com/jhoicas/shipment-intake-api/internal/domain/entity"

// ShipmentRepository define el puerto de lectura de ingresos. En este
// sistema la colección es un fixture read-only: no existe ruta de alta,
// modificación ni borrado de shipments (la ingesta es un colaborador
// externo fuera de este servicio).
type ShipmentRepository interface {
	// List devuelve la colección completa en su orden original.
	List() ([]entity.Shipment, error)
}
