// Package live implements the in-process broadcast channel for work groups:
// a connection registry plus a relay that forwards text frames between every
// session joined under the same work ID.
package live

import (
	"sync"
)

// Registry maps a work-group key to the sessions currently joined to it.
// It is shared by all connection goroutines, so every operation takes the
// mutex; Members returns a snapshot so broadcasting never iterates the live
// map while joins and leaves mutate it.
type Registry struct {
	mu       sync.Mutex
	sessions map[string][]*Session
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string][]*Session)}
}

// Join registers the session under the key, creating the group on first join.
func (r *Registry) Join(key string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[key] = append(r.sessions[key], s)
}

// Leave removes the session from the key's group. The key is deleted the
// moment its last session leaves, so a key is present iff its group is
// non-empty. Leaving with an unknown key or session is a no-op: the
// disconnect path must never fail.
func (r *Registry) Leave(key string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.sessions[key]
	for i, member := range members {
		if member == s {
			r.sessions[key] = append(members[:i], members[i+1:]...)
			break
		}
	}
	if len(r.sessions[key]) == 0 {
		delete(r.sessions, key)
	}
}

// Members returns a snapshot of the sessions currently joined under the key.
func (r *Registry) Members(key string) []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.sessions[key]
	snapshot := make([]*Session, len(members))
	copy(snapshot, members)
	return snapshot
}

// Len reports how many sessions are joined under the key.
func (r *Registry) Len(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions[key])
}
