// Package session ties the per-visitor state together: one cart, one view
// machine and one assistant transcript per session id.
package session

import (
	"sync"

	"github.com/iwholesale/storefront/internal/assistant"
	"github.com/iwholesale/storefront/internal/cart"
	"github.com/iwholesale/storefront/internal/view"
)

// Session is the unit of isolation. The embedded mutex serializes all
// access to the cart and view machine; handlers must hold it for the
// duration of a request's state mutation. The assistant session carries its
// own lock because replies stream outside the request that started them.
type Session struct {
	sync.Mutex

	ID        string
	Cart      *cart.Cart
	View      *view.Machine
	Assistant *assistant.Session
}

// Manager hands out sessions keyed by the caller-provided session id.
// Sessions live for the process lifetime; there is no persistence.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	replier  assistant.Replier
}

func NewManager(replier assistant.Replier) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		replier:  replier,
	}
}

// GetOrCreate returns the session for id, creating it on first use.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s = &Session{
		ID:        id,
		Cart:      cart.New(),
		View:      view.NewMachine(),
		Assistant: assistant.NewSession(m.replier),
	}
	m.sessions[id] = s
	return s
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
