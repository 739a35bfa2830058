package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duel/internal/core"
)

// Registry tracks the participation state of every live connection.
// It holds nothing about rooms; the store owns membership.
type Registry struct {
	mu     sync.RWMutex
	states map[core.SessionID]core.ParticipationState
}

func NewRegistry() *Registry {
	return &Registry{states: make(map[core.SessionID]core.ParticipationState)}
}

// Register records a fresh connection as online. Called once per connect.
func (r *Registry) Register(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[sid] = core.StateOnline
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("registered session")
}

// SetState overwrites the state of a known handle; unknown handles are ignored.
func (r *Registry) SetState(sid core.SessionID, st core.ParticipationState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.states[sid]; ok {
		r.states[sid] = st
	}
}

// GetState returns the current state, or StateAbsent for handles that were
// never registered or are already removed.
func (r *Registry) GetState(sid core.SessionID) core.ParticipationState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[sid]
}

// Unregister drops the handle entirely. Called once per disconnect, after
// room cleanup.
func (r *Registry) Unregister(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unregistered session")
}

// Count reports the number of live connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}
