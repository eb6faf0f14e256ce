package repository

import "github.com/jhoicas/shipment-intake-api/internal/domain/entity"

// CompanyRepository define el puerto del roster de empresas (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// List devuelve el roster completo en orden de inserción.
	List() ([]entity.Company, error)
	// GetByID devuelve (nil, nil) si el ID no existe.
	GetByID(id int64) (*entity.Company, error)
	// Create agrega al final del roster y asigna company.ID = max existente + 1
	// (1 si el roster está vacío) bajo el lock del adaptador.
	Create(company *entity.Company) error
	// Update reemplaza la empresa con el mismo ID; domain.ErrNotFound si no existe.
	Update(company *entity.Company) error
}
