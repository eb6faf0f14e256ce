// Package memory implementa los puertos de persistencia sobre colecciones
// en memoria sembradas con el fixture de demostración. No hay motor de
// almacenamiento en este sistema: los datos viven lo que vive el proceso.
package memory

import (
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/pkg/artime"
)

// FixtureCompanies devuelve el roster inicial de transportadoras.
func FixtureCompanies() []entity.Company {
	return []entity.Company{
		{ID: 1, Name: "أرامكس", Status: entity.CompanyActive},
		{ID: 2, Name: "دي إتش إل", Status: entity.CompanyActive},
		{ID: 3, Name: "سمسا إكسبرس", Status: entity.CompanyInactive},
		{ID: 4, Name: "فيديكس", Status: entity.CompanyActive},
		{ID: 5, Name: "يو بي إس", Status: entity.CompanyActive},
	}
}

// FixtureShipments devuelve los ingresos de demostración distribuidos en los
// últimos tres días, con dos re-escaneos (barcode repetido el mismo día) para
// que el contador de duplicados tenga material.
func FixtureShipments() []entity.Shipment {
	hoy := artime.Today()
	ayer := hoy.AddDays(-1)
	anteayer := hoy.AddDays(-2)

	return []entity.Shipment{
		{ID: 101, CompanyID: 1, Barcode: "TRK1001ARMX", Date: hoy, Count: 1},
		{ID: 102, CompanyID: 2, Barcode: "TRK1002DHL", Date: hoy, Count: 1},
		{ID: 103, CompanyID: 4, Barcode: "TRK1003FDX", Date: hoy, Count: 1},
		{ID: 104, CompanyID: 1, Barcode: "TRK1001ARMX", Date: hoy, Count: 2}, // re-escaneo
		{ID: 105, CompanyID: 5, Barcode: "TRK1004UPS", Date: hoy, Count: 1},
		{ID: 106, CompanyID: 2, Barcode: "TRK1005DHL", Date: ayer, Count: 1},
		{ID: 107, CompanyID: 3, Barcode: "TRK1006SMSA", Date: ayer, Count: 1},
		{ID: 108, CompanyID: 4, Barcode: "TRK1007FDX", Date: ayer, Count: 1},
		{ID: 109, CompanyID: 1, Barcode: "TRK1008ARMX", Date: anteayer, Count: 1},
		{ID: 110, CompanyID: 5, Barcode: "TRK1009UPS", Date: anteayer, Count: 1},
		{ID: 111, CompanyID: 2, Barcode: "TRK1002DHL", Date: ayer, Count: 2}, // re-escaneo
		{ID: 112, CompanyID: 4, Barcode: "TRK1010FDX", Date: anteayer, Count: 1},
		{ID: 113, CompanyID: 1, Barcode: "TRK1011ARMX", Date: hoy, Count: 1},
		{ID: 114, CompanyID: 2, Barcode: "TRK1012DHL", Date: hoy, Count: 1},
	}
}
