package ports

import "github.com/jhoicas/shipment-intake-api/internal/domain/entity"

// CredentialVerifier define el puerto de salida para la verificación de
// credenciales. Siguiendo el principio de inversión de dependencias (DIP),
// los casos de uso solo conocen este contrato: un backend real puede
// sustituir al verificador en memoria sin tocar los puntos de llamada.
type CredentialVerifier interface {
	// Verify devuelve el usuario resuelto cuando username y password
	// coinciden; domain.ErrUnauthorized en caso contrario, sin más detalle.
	Verify(username, password string) (*entity.User, error)

	// UpdatePassword reemplaza la credencial vigente si currentPassword es
	// correcta; domain.ErrUnauthorized si no lo es. Los logins posteriores
	// deben validar contra la credencial nueva.
	UpdatePassword(currentPassword, newPassword string) error
}
