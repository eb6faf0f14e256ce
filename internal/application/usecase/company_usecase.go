package usecase

import (
	"strings"

	"github.com/jhoicas/shipment-intake-api/internal/application/dto"
	"github.com/jhoicas/shipment-intake-api/internal/domain"
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio del roster de transportadoras:
// alta con ID consecutivo y alternado de estado. No existe borrado.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve el roster completo en orden de inserción.
func (uc *CompanyUseCase) List() (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items}, nil
}

// Create agrega una empresa al final del roster con estado activo. Un nombre
// vacío o solo espacios se rechaza con domain.ErrInvalidInput y el roster
// queda sin cambios. El ID lo asigna el adaptador (max existente + 1).
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	company := entity.Company{
		Name:   in.Name,
		Status: entity.CompanyActive,
	}
	if err := uc.repo.Create(&company); err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// ToggleStatus alterna active⇄inactive. Aplicado dos veces sobre el mismo
// ID el estado vuelve al original. ID inexistente: domain.ErrNotFound.
func (uc *CompanyUseCase) ToggleStatus(id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Status = company.ToggledStatus()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	out := toCompanyResponse(*company)
	return &out, nil
}

func toCompanyResponse(c entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{ID: c.ID, Name: c.Name, Status: c.Status}
}
