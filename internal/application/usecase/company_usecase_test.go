package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/application/usecase"
	"github.com/jhoicas/shipment-intake-api/internal/domain"
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/internal/infrastructure/memory"
)

func buildCompanyUC() *usecase.CompanyUseCase {
	return usecase.NewCompanyUseCase(memory.NewCompanyRepository(memory.FixtureCompanies()))
}

func TestCompanyCreate_NombreVacioNoAltera(t *testing.T) {
	uc := buildCompanyUC()

	for _, name := range []string{"", "   ", "\t "} {
		_, err := uc.Create(dto.CreateCompanyRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre %q debe rechazarse", name)
	}

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list.Items, 5, "el roster debe quedar sin cambios")
}

func TestCompanyCreate_AsignaSiguienteID(t *testing.T) {
	uc := buildCompanyUC()

	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID, "siguiente ID = max existente + 1")
	assert.Equal(t, entity.CompanyActive, created.Status)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 6)
	assert.Equal(t, "Acme", list.Items[5].Name, "la empresa nueva va al final del roster")
}

func TestCompanyCreate_RosterVacioIniciaEnUno(t *testing.T) {
	uc := usecase.NewCompanyUseCase(memory.NewCompanyRepository(nil))

	created, err := uc.Create(dto.CreateCompanyRequest{Name: "أرامكس"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestToggleStatus_Involucion(t *testing.T) {
	uc := buildCompanyUC()

	antes, err := uc.List()
	require.NoError(t, err)
	original := antes.Items[0].Status

	primera, err := uc.ToggleStatus(1)
	require.NoError(t, err)
	assert.NotEqual(t, original, primera.Status)

	segunda, err := uc.ToggleStatus(1)
	require.NoError(t, err)
	assert.Equal(t, original, segunda.Status, "dos alternados devuelven el estado original")
}

func TestToggleStatus_IDInexistente(t *testing.T) {
	uc := buildCompanyUC()
	_, err := uc.ToggleStatus(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
