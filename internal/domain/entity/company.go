package entity

// Estados posibles de una empresa transportadora.
const (
	CompanyActive   = "active"
	CompanyInactive = "inactive"
)

// Company representa una empresa transportadora del roster. Los IDs son
// enteros únicos y no decrecientes (el siguiente es siempre max existente + 1);
// las empresas nunca se eliminan, solo se alterna su estado.
type Company struct {
	ID     int64  `json:"id"`
	Name   string `json:"company_name"`
	Status string `json:"status"` // active, inactive
}

// IsActive indica si la empresa está habilitada.
func (c Company) IsActive() bool { return c.Status == CompanyActive }

// ToggledStatus devuelve el estado opuesto al actual (active⇄inactive).
func (c Company) ToggledStatus() string {
	if c.Status == CompanyActive {
		return CompanyInactive
	}
	return CompanyActive
}
