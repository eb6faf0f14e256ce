package dto

// CreateCompanyRequest alta de empresa en el roster.
type CreateCompanyRequest struct {
	Name string `json:"company_name"`
}

// CompanyResponse una empresa del roster.
type CompanyResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"company_name"`
	Status string `json:"status"`
}

// CompanyListResponse roster completo en orden de inserción.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}
