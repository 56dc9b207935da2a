package server

import (
	"sync"
	"time"
)

// SessionInfo is the immutable record the registry keeps per live
// connection. It holds no pointer into the session: game
// state belongs to the connection goroutine alone.
type SessionInfo struct {
	ID        string    `json:"id"`
	Remote    string    `json:"remote"`
	Seed      int64     `json:"seed"`
	StartedAt time.Time `json:"startedAt"`
}

// Registry tracks the sessions currently being played on this server.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]SessionInfo
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]SessionInfo)}
}

// Add registers a new live session.
func (r *Registry) Add(info SessionInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[info.ID] = info
}

// Remove drops a session on disconnect.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// List returns a snapshot of all live sessions, oldest first.
func (r *Registry) List() []SessionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Empty slice, not nil, so the JSON endpoint renders "[]".
	out := make([]SessionInfo, 0, len(r.sessions))
	for _, info := range r.sessions {
		out = append(out, info)
	}
	sortByStart(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func sortByStart(infos []SessionInfo) {
	for i := 1; i < len(infos); i++ {
		for j := i; j > 0 && infos[j].StartedAt.Before(infos[j-1].StartedAt); j-- {
			infos[j], infos[j-1] = infos[j-1], infos[j]
		}
	}
}
