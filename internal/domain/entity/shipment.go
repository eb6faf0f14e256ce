package entity

import "github.com/jhoicas/shipment-intake-api/pkg/artime"

// Shipment es un registro de ingreso de paquetería. El barcode NO es único:
// una repetición en la misma fecha representa un re-escaneo y es exactamente
// lo que el conteo de duplicados detecta. CompanyID debería referenciar una
// Company existente, pero no se valida; un ID sin resolver se muestra como
// "غير معروف" (desconocida).
type Shipment struct {
	ID        int64       `json:"id"`
	CompanyID int64       `json:"company_id"`
	Barcode   string      `json:"barcode"`
	Date      artime.Date `json:"date"`
	Count     int         `json:"count"` // ocurrencias de ese escaneo, siempre > 0
}
