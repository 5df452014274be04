package resume

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	current *Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Get returns the stored resume.
func (r *MemoryRepo) Get(ctx context.Context) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return Resume{}, ErrNotFound
	}
	return *r.current, nil
}

// Replace stores the resume wholesale, keeping the existing ID when present.
func (r *MemoryRepo) Replace(ctx context.Context, doc Resume) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var modified int64
	if r.current != nil {
		doc.ID = r.current.ID
		modified = 1
	} else if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.current = &doc
	return modified, nil
}

var _ Repo = (*MemoryRepo)(nil)
