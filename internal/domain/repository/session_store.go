package repository

import "github.com/jhoicas/shipment-intake-api/internal/domain/entity"

// SessionStore define el puerto del almacén de sesiones, el equivalente
// servidor del key-value store con alcance de sesión del cliente original:
// un registro (id, username) por sesión, que rehidrata la identidad entre
// recargas sin volver a hacer login. Logout elimina el registro y el token
// asociado deja de servir aunque no haya expirado.
type SessionStore interface {
	// Put guarda el usuario bajo el id de sesión.
	Put(sessionID string, user entity.User) error
	// Get devuelve (nil, nil) si la sesión no existe o fue cerrada.
	Get(sessionID string) (*entity.User, error)
	// Delete es idempotente: borrar una sesión inexistente no es error.
	Delete(sessionID string) error
}
