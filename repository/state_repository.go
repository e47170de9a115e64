package repository

import (
	"context"
	"sync"
)

// MemoryStateRepository keeps per-session order state in process memory.
// State lives only for the lifetime of the process, matching the original
// flow's session-scoped storage; there is no server-side order persistence.
type MemoryStateRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStateRepository creates an empty in-memory state repository
func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{
		blobs: make(map[string][]byte),
	}
}

// Ensure MemoryStateRepository implements StateRepositoryInterface
var _ StateRepositoryInterface = (*MemoryStateRepository)(nil)

// Load returns the stored blob for a session, with found=false when nothing
// has been saved
func (r *MemoryStateRepository) Load(_ context.Context, sessionID string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blob, ok := r.blobs[sessionID]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

// Save overwrites the stored blob for a session wholesale
func (r *MemoryStateRepository) Save(_ context.Context, sessionID string, blob []byte) error {
	stored := make([]byte, len(blob))
	copy(stored, blob)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[sessionID] = stored
	return nil
}

// Clear removes any stored blob for a session
func (r *MemoryStateRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, sessionID)
	return nil
}
