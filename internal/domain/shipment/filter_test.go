package shipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/internal/domain/shipment"
	"github.com/jhoicas/shipment-intake-api/pkg/artime"
)

func fecha(t *testing.T, s string) artime.Date {
	t.Helper()
	d, err := artime.ParseDate(s)
	require.NoError(t, err)
	return d
}

// Colección de prueba: tres días, cuatro empresas, con re-escaneos.
func coleccion(t *testing.T) []entity.Shipment {
	t.Helper()
	return []entity.Shipment{
		{ID: 101, CompanyID: 1, Barcode: "TRK1001ARMX", Date: fecha(t, "2026-08-28"), Count: 1},
		{ID: 102, CompanyID: 2, Barcode: "TRK1002DHL", Date: fecha(t, "2026-08-28"), Count: 1},
		{ID: 103, CompanyID: 4, Barcode: "TRK1003FDX", Date: fecha(t, "2026-08-28"), Count: 1},
		{ID: 104, CompanyID: 1, Barcode: "TRK1001ARMX", Date: fecha(t, "2026-08-28"), Count: 2}, // re-escaneo
		{ID: 105, CompanyID: 2, Barcode: "TRK1005DHL", Date: fecha(t, "2026-08-27"), Count: 1},
		{ID: 106, CompanyID: 3, Barcode: "TRK1006SMSA", Date: fecha(t, "2026-08-27"), Count: 1},
		{ID: 107, CompanyID: 1, Barcode: "TRK1008ARMX", Date: fecha(t, "2026-08-26"), Count: 1},
		{ID: 108, CompanyID: 2, Barcode: "TRK1002DHL", Date: fecha(t, "2026-08-27"), Count: 2}, // re-escaneo de otro día
	}
}

// esSubsecuencia verifica que sub aparece en s en el mismo orden relativo.
func esSubsecuencia(sub, s []entity.Shipment) bool {
	i := 0
	for _, x := range s {
		if i < len(sub) && sub[i].ID == x.ID {
			i++
		}
	}
	return i == len(sub)
}

func TestFilter_SinCriteriosEsIdentidad(t *testing.T) {
	col := coleccion(t)
	got := shipment.Filter(col, shipment.Criteria{})
	assert.Equal(t, col, got, "sin criterios el filtro debe devolver la colección completa")
}

func TestFilter_EsSubsecuenciaOrdenada(t *testing.T) {
	col := coleccion(t)
	casos := []shipment.Criteria{
		{CompanyID: 1},
		{Barcode: "dhl"},
		{Start: fecha(t, "2026-08-27")},
		{End: fecha(t, "2026-08-27")},
		{Start: fecha(t, "2026-08-27"), End: fecha(t, "2026-08-28"), CompanyID: 2},
	}
	for _, c := range casos {
		got := shipment.Filter(col, c)
		assert.True(t, esSubsecuencia(got, col),
			"el resultado de %+v debe ser subsecuencia de la entrada", c)
	}
}

func TestFilter_PorEmpresa(t *testing.T) {
	col := coleccion(t)
	got := shipment.Filter(col, shipment.Criteria{CompanyID: 1})

	require.Len(t, got, 3)
	for _, s := range got {
		assert.Equal(t, int64(1), s.CompanyID)
	}
	// Todos los de la empresa 1 presentes.
	ids := []int64{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []int64{101, 104, 107}, ids)
}

func TestFilter_RangoInclusivoEnAmbosExtremos(t *testing.T) {
	col := coleccion(t)

	// Exactamente en startDate.
	got := shipment.Filter(col, shipment.Criteria{Start: fecha(t, "2026-08-28")})
	require.Len(t, got, 4)

	// Exactamente en endDate.
	got = shipment.Filter(col, shipment.Criteria{End: fecha(t, "2026-08-26")})
	require.Len(t, got, 1)
	assert.Equal(t, int64(107), got[0].ID)

	// Rango de un solo día incluye ese día completo.
	got = shipment.Filter(col, shipment.Criteria{
		Start: fecha(t, "2026-08-27"),
		End:   fecha(t, "2026-08-27"),
	})
	assert.Len(t, got, 3)
}

func TestFilter_BarcodeInsensibleAMayusculas(t *testing.T) {
	col := coleccion(t)

	minusculas := shipment.Filter(col, shipment.Criteria{Barcode: "armx"})
	mayusculas := shipment.Filter(col, shipment.Criteria{Barcode: "ARMX"})

	assert.Equal(t, minusculas, mayusculas)
	require.Len(t, minusculas, 3)
}

func TestFilter_ResultadoVacioEsValido(t *testing.T) {
	col := coleccion(t)
	got := shipment.Filter(col, shipment.Criteria{Barcode: "NOEXISTE"})
	assert.Empty(t, got)
	assert.NotNil(t, got, "vacío, no nil: el llamador lo serializa como []")
}

func TestFilter_Idempotente(t *testing.T) {
	col := coleccion(t)
	c := shipment.Criteria{CompanyID: 2, Start: fecha(t, "2026-08-27")}
	assert.Equal(t, shipment.Filter(col, c), shipment.Filter(col, c))
}

func TestStatsForDate_CuentaBarcodesDuplicadosNoOcurrencias(t *testing.T) {
	d := fecha(t, "2026-08-28")
	// Barcodes [A, B, A, C, A]: total 5, un solo barcode duplicado.
	col := []entity.Shipment{
		{ID: 1, CompanyID: 1, Barcode: "A", Date: d, Count: 1},
		{ID: 2, CompanyID: 2, Barcode: "B", Date: d, Count: 1},
		{ID: 3, CompanyID: 1, Barcode: "A", Date: d, Count: 2},
		{ID: 4, CompanyID: 3, Barcode: "C", Date: d, Count: 1},
		{ID: 5, CompanyID: 1, Barcode: "A", Date: d, Count: 4},
	}

	stats := shipment.StatsForDate(col, d)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.DuplicateCount,
		"A repetido tres veces cuenta 1, no 2: son barcodes distintos duplicados")
	assert.Len(t, stats.Shipments, 5)
}

func TestStatsForDate_IgualdadExactaDeDia(t *testing.T) {
	col := coleccion(t)
	stats := shipment.StatsForDate(col, fecha(t, "2026-08-27"))

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 0, stats.DuplicateCount,
		"TRK1002DHL se repite entre días distintos, no dentro del día")
}

func TestStatsForDate_DuplicadoDentroDelDia(t *testing.T) {
	col := coleccion(t)
	stats := shipment.StatsForDate(col, fecha(t, "2026-08-28"))

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.DuplicateCount)
}

func TestStatsForDate_DiaVacio(t *testing.T) {
	col := coleccion(t)
	stats := shipment.StatsForDate(col, fecha(t, "2030-01-01"))

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.DuplicateCount)
	assert.Empty(t, stats.Shipments)
}
