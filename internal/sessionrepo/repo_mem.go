// Package sessionrepo manages the request-scoped session slots.
//
// Sessions are ephemeral: one slot per browser session identifier, held in
// memory only. The core never reads this store directly; the web layer loads
// the slot, passes the Session value into core operations and writes the
// returned value back.
package sessionrepo

import (
	"context"
	"sync"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/google/uuid"
)

// RepoMem facilitates session repository layer logic in memory.
type RepoMem struct {
	mu    sync.RWMutex
	slots map[uuid.UUID]domain.Session
}

// NewRepoMem returns an empty session RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		slots: make(map[uuid.UUID]domain.Session),
	}
}

// Get returns the session stored under the given identifier.
func (r *RepoMem) Get(ctx context.Context, id uuid.UUID) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[id]

	return s, ok
}

// Put stores the session under the given identifier.
func (r *RepoMem) Put(ctx context.Context, id uuid.UUID, s domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[id] = s
}

// Delete removes the slot for the given identifier.
func (r *RepoMem) Delete(ctx context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.slots, id)
}
