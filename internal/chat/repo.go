package chat

import "context"

// Repo defines persistence operations for chat exchanges.
type Repo interface {
	// Insert appends one exchange to the log.
	Insert(ctx context.Context, ex Exchange) error
	// ListRecent returns at most limit exchanges, newest first.
	ListRecent(ctx context.Context, limit int) ([]Exchange, error)
}
