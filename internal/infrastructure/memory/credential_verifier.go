package memory

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/shipment-intake-api/internal/application/ports"
	"github.com/jhoicas/shipment-intake-api/internal/domain"
	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
)

// Asegura que CredentialVerifier implementa ports.CredentialVerifier.
var _ ports.CredentialVerifier = (*CredentialVerifier)(nil)

// CredentialVerifier verifica la credencial única del dashboard contra un
// hash bcrypt en memoria. UpdatePassword reemplaza el hash vigente, de modo
// que los logins posteriores validan contra la contraseña nueva.
type CredentialVerifier struct {
	mu   sync.RWMutex
	user entity.User
	hash []byte
}

// NewCredentialVerifier hashea el password de configuración y construye el
// verificador para el usuario único del sistema.
func NewCredentialVerifier(username, password string) (*CredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &CredentialVerifier{
		user: entity.User{ID: 1, Username: username},
		hash: hash,
	}, nil
}

// Verify compara username y password; domain.ErrUnauthorized sin más detalle
// en cualquier desajuste.
func (v *CredentialVerifier) Verify(username, password string) (*entity.User, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if username != v.user.Username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	user := v.user
	return &user, nil
}

// UpdatePassword valida la contraseña vigente y reemplaza el hash.
func (v *CredentialVerifier) UpdatePassword(currentPassword, newPassword string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(currentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	v.hash = hash
	return nil
}
