package chat

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Exchange
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Insert appends the exchange, assigning an ID when absent.
func (r *MemoryRepo) Insert(ctx context.Context, ex Exchange) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if ex.ID.IsZero() {
		ex.ID = primitive.NewObjectID()
	}
	r.data = append(r.data, ex)
	return nil
}

// ListRecent returns at most limit exchanges ordered by timestamp descending.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Exchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Exchange, len(r.data))
	copy(out, r.data)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
