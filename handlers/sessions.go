package handlers

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ColdMacaroni/KaiUI-DTC/models"
	"github.com/ColdMacaroni/KaiUI-DTC/order"
)

var (
	catalog    *models.Catalog
	defaultDay models.Weekday
	store      = newSessionStore()
)

// Init wires the catalog and the default active day. Must run before the
// routes are served.
func Init(c *models.Catalog, day models.Weekday) {
	catalog = c
	defaultDay = day
}

// sessionStore keeps the live ordering sessions. Sessions themselves are
// single-owner state; the store lock serializes handler access to them.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*order.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[uuid.UUID]*order.Session)}
}

func (s *sessionStore) create(day models.Weekday) *order.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := order.NewSession(catalog, day)
	s.sessions[sess.ID] = sess
	return sess
}

func (s *sessionStore) with(id uuid.UUID, fn func(*order.Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	fn(sess)
	return true
}
