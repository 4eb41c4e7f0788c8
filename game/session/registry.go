package session

import (
	"sync"

	"github.com/tronweb/gameserver/game/service"
)

// Registry maps connection IDs to the session they belong to.
type Registry struct {
	byConnection map[string]*service.Session
	mu           sync.RWMutex
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		byConnection: make(map[string]*service.Session),
	}
}

// Lookup returns the session the connection belongs to, if any.
func (r *Registry) Lookup(connectionID string) (*service.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byConnection[connectionID]
	return s, ok
}

// Register inserts a mapping entry for every member of the session. All
// members become visible in a single step; a concurrent reader either sees
// the whole session or none of it.
func (r *Registry) Register(s *service.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, player := range s.Players {
		r.byConnection[player.ConnectionID] = s
	}
}

// Evict removes every member of the session from the registry. It returns
// the connection IDs actually removed, which the caller uses for transport
// group teardown. Members already absent are skipped, so a racing eviction
// of the same session returns nothing. The session struct itself is not
// touched: eviction is the terminal transition, and readers holding a
// Sessions() snapshot may still be looking at it.
func (r *Registry) Evict(s *service.Session) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for _, player := range s.Players {
		if current, ok := r.byConnection[player.ConnectionID]; ok && current == s {
			delete(r.byConnection, player.ConnectionID)
			removed = append(removed, player.ConnectionID)
		}
	}

	return removed
}

// Sessions returns the distinct active sessions.
func (r *Registry) Sessions() []*service.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[*service.Session]bool)
	result := make([]*service.Session, 0, len(r.byConnection))
	for _, s := range r.byConnection {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	return result
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byConnection)
}
