package session

import (
	"sync"
	"time"
)

// RegistryConfig bounds the session registry.
type RegistryConfig struct {
	MaxEntries    int           // sweep early when the map reaches this size (0 = unbounded)
	IdleTTL       time.Duration // evict selections not touched for this long
	SweepInterval time.Duration // minimum time between opportunistic sweeps
}

type entry struct {
	selection *Selection
	lastSeen  time.Time
}

// Registry maps session ids to their Selection, creating one on first
// access. Idle sessions are swept opportunistically on access, no
// background goroutine.
type Registry struct {
	cfg       RegistryConfig
	mu        sync.Mutex
	sessions  map[string]*entry
	lastSweep time.Time
}

// NewRegistry creates a session registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 30 * time.Minute
	}
	return &Registry{
		cfg:       cfg,
		sessions:  make(map[string]*entry, 64),
		lastSweep: time.Now(),
	}
}

// Get returns the session's Selection, creating it on first access.
func (r *Registry) Get(id string) *Selection {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.MaxEntries > 0 && len(r.sessions) >= r.cfg.MaxEntries {
		r.sweepLocked(now)
	} else if now.Sub(r.lastSweep) >= r.cfg.SweepInterval {
		r.sweepLocked(now)
	}

	e := r.sessions[id]
	if e == nil {
		e = &entry{selection: NewSelection()}
		r.sessions[id] = e
	}
	e.lastSeen = now
	return e.selection
}

// Evict drops a session's state, e.g. on logout. Unknown ids are a no-op.
func (r *Registry) Evict(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) sweepLocked(now time.Time) {
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.cfg.IdleTTL {
			delete(r.sessions, id)
		}
	}
	r.lastSweep = now
}
