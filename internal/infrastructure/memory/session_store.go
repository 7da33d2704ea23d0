// Package memory guarda las sesiones de edición en memoria (sin persistencia):
// LRU con expiración, de modo que una sesión inactiva se descarta sola.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ranjan0044/invoice-builder/internal/domain"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

// EvictFunc se invoca cuando una sesión sale del almacén (expiración, capacidad o borrado).
// Puede ejecutarse con el almacén bloqueado: no debe volver a llamarlo.
type EvictFunc func(id string, s entity.Session)

// SessionStore implementa drafting.SessionStore.
// mu serializa lectura-modificación-escritura para que dos peticiones
// concurrentes sobre la misma sesión no pierdan cambios.
type SessionStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, entity.Session]
}

// NewSessionStore crea el almacén. maxSessions 0 = sin límite; ttl es por inactividad.
func NewSessionStore(maxSessions int, ttl time.Duration, onEvict EvictFunc) *SessionStore {
	var cb expirable.EvictCallback[string, entity.Session]
	if onEvict != nil {
		cb = func(id string, s entity.Session) { onEvict(id, s) }
	}
	return &SessionStore{cache: expirable.NewLRU[string, entity.Session](maxSessions, cb, ttl)}
}

// Create registra una sesión nueva.
func (s *SessionStore) Create(session entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache.Contains(session.ID) {
		return fmt.Errorf("sesión %s: %w", session.ID, domain.ErrInvalidInput)
	}
	s.cache.Add(session.ID, cloneSession(session))
	return nil
}

// Get devuelve una copia de la sesión; domain.ErrNotFound si no existe o expiró.
func (s *SessionStore) Get(id string) (entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.cache.Get(id)
	if !ok {
		return entity.Session{}, fmt.Errorf("sesión %s: %w", id, domain.ErrNotFound)
	}
	return cloneSession(session), nil
}

// Update aplica fn sobre una copia y la guarda solo si fn no falla.
// Guardar renueva el TTL de la sesión.
func (s *SessionStore) Update(id string, fn func(session *entity.Session) error) (entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.cache.Get(id)
	if !ok {
		return entity.Session{}, fmt.Errorf("sesión %s: %w", id, domain.ErrNotFound)
	}
	next := cloneSession(current)
	if err := fn(&next); err != nil {
		return entity.Session{}, err
	}
	s.cache.Add(id, next)
	return cloneSession(next), nil
}

// Delete descarta la sesión; false si no existía.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(id)
}

// Len número de sesiones vivas.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func cloneSession(session entity.Session) entity.Session {
	session.Draft = session.Draft.Clone()
	return session
}
