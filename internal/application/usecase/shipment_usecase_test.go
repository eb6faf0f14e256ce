package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/application/usecase"
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/internal/infrastructure/memory"
	"github.com/jhoicas/shipment-intake-api/pkg/artime"
)

func buildShipmentUC(shipments []entity.Shipment) *usecase.ShipmentUseCase {
	return usecase.NewShipmentUseCase(
		memory.NewShipmentRepository(shipments),
		memory.NewCompanyRepository(memory.FixtureCompanies()),
	)
}

func TestList_SinCriteriosDevuelveTodo(t *testing.T) {
	fixture := memory.FixtureShipments()
	uc := buildShipmentUC(fixture)

	out, err := uc.List(dto.ShipmentQuery{})
	require.NoError(t, err)
	assert.Equal(t, len(fixture), out.Total)
}

func TestList_FechaMalFormadaEsCriterioAusente(t *testing.T) {
	fixture := memory.FixtureShipments()
	uc := buildShipmentUC(fixture)

	out, err := uc.List(dto.ShipmentQuery{StartDate: "no-es-fecha", EndDate: "31/12/2026"})
	require.NoError(t, err, "una fecha inválida nunca es error")
	assert.Equal(t, len(fixture), out.Total, "ambos límites se tratan como ausentes")
}

func TestList_ResuelveNombreDeEmpresa(t *testing.T) {
	hoy := artime.Today()
	uc := buildShipmentUC([]entity.Shipment{
		{ID: 1, CompanyID: 1, Barcode: "TRK1", Date: hoy, Count: 1},
		{ID: 2, CompanyID: 99, Barcode: "TRK2", Date: hoy, Count: 1}, // sin resolver
	})

	out, err := uc.List(dto.ShipmentQuery{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "أرامكس", out.Items[0].CompanyName)
	assert.Equal(t, usecase.UnknownCompanyName, out.Items[1].CompanyName)
	assert.NotEmpty(t, out.Items[0].DateLabel, "la fecha larga localizada acompaña a la ISO")
}

func TestDailyStats_FiltroDeEmpresaSoloAfectaLaLista(t *testing.T) {
	hoy := artime.Today()
	uc := buildShipmentUC([]entity.Shipment{
		{ID: 1, CompanyID: 1, Barcode: "A", Date: hoy, Count: 1},
		{ID: 2, CompanyID: 2, Barcode: "B", Date: hoy, Count: 1},
		{ID: 3, CompanyID: 1, Barcode: "A", Date: hoy, Count: 2},
	})

	sinFiltro, err := uc.DailyStats(hoy.String(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, sinFiltro.Total)
	assert.Equal(t, 1, sinFiltro.DuplicateCount)
	assert.Len(t, sinFiltro.Items, 3)

	conFiltro, err := uc.DailyStats(hoy.String(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, conFiltro.Total, "el total se calcula sobre el día completo")
	assert.Equal(t, 1, conFiltro.DuplicateCount, "los duplicados también")
	require.Len(t, conFiltro.Items, 1, "solo la lista mostrada se reduce")
	assert.Equal(t, int64(2), conFiltro.Items[0].CompanyID)
}

func TestDailyStats_FechaInvalidaCaeAHoy(t *testing.T) {
	hoy := artime.Today()
	uc := buildShipmentUC([]entity.Shipment{
		{ID: 1, CompanyID: 1, Barcode: "A", Date: hoy, Count: 1},
	})

	out, err := uc.DailyStats("garbage", 0)
	require.NoError(t, err)
	assert.True(t, out.Date.Equal(hoy))
	assert.Equal(t, 1, out.Total)
}

func TestDailyStats_DiaVacio(t *testing.T) {
	uc := buildShipmentUC(memory.FixtureShipments())

	out, err := uc.DailyStats("2030-01-01", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Equal(t, 0, out.DuplicateCount)
	assert.Empty(t, out.Items)
}
