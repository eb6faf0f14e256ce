package memory

import (
	"sync"

	"github.com/jhoicas/shipment-intake-api/internal/domain"
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository en memoria.
// El slice preserva el orden de inserción del roster.
type CompanyRepo struct {
	mu        sync.RWMutex
	companies []entity.Company
}

// NewCompanyRepository construye el adaptador sembrado con el roster inicial.
func NewCompanyRepository(seed []entity.Company) *CompanyRepo {
	companies := make([]entity.Company, len(seed))
	copy(companies, seed)
	return &CompanyRepo{companies: companies}
}

// List devuelve una copia del roster en orden de inserción.
func (r *CompanyRepo) List() ([]entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Company, len(r.companies))
	copy(out, r.companies)
	return out, nil
}

// GetByID devuelve (nil, nil) si el ID no existe.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.companies {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

// Create asigna el siguiente ID (max existente + 1, 1 con roster vacío) y
// agrega al final, todo bajo el mismo lock para mantener la monotonía.
func (r *CompanyRepo) Create(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for _, c := range r.companies {
		if c.ID > max {
			max = c.ID
		}
	}
	company.ID = max + 1
	r.companies = append(r.companies, *company)
	return nil
}

// Update reemplaza la empresa con el mismo ID.
func (r *CompanyRepo) Update(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.companies {
		if c.ID == company.ID {
			r.companies[i] = *company
			return nil
		}
	}
	return domain.ErrNotFound
}
