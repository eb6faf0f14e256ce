package memory

import (
	"sync"

	"github.com/jhoicas/shipment-intake-api/internal/domain/entity"
	"github.com/jhoicas/shipment-intake-api/internal/domain/repository"
)

// Asegura que SessionStore implementa repository.SessionStore.
var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore almacén de sesiones en memoria: un registro de usuario por
// id de sesión, con la vida del proceso (el equivalente del storage con
// alcance de sesión del cliente original).
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.User
}

// NewSessionStore construye el almacén vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entity.User)}
}

// Put guarda el usuario bajo el id de sesión.
func (s *SessionStore) Put(sessionID string, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = user
	return nil
}

// Get devuelve (nil, nil) si la sesión no existe o fue cerrada.
func (s *SessionStore) Get(sessionID string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Delete borra la sesión; es idempotente.
func (s *SessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
