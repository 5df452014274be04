package resume

import "context"

// Repo defines persistence operations for the single resume document.
type Repo interface {
	// Get returns the current resume, or ErrNotFound when none exists.
	Get(ctx context.Context) (Resume, error)
	// Replace swaps the stored resume wholesale, inserting when none exists.
	// It returns the number of documents modified (0 on a fresh insert).
	Replace(ctx context.Context, r Resume) (int64, error)
}
