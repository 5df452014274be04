package resume

import (
	"context"
	"errors"

	"portfolio-backend/internal/shared/telemetry"
)

// Service contains business logic for the resume document.
type Service struct {
	Repo Repo
}

// Current returns the stored resume.
func (s *Service) Current(ctx context.Context) (Resume, error) {
	return s.Repo.Get(ctx)
}

// Replace swaps the stored resume wholesale (upsert).
func (s *Service) Replace(ctx context.Context, doc Resume) (int64, error) {
	if doc.PersonalInfo.Name == "" {
		return 0, ErrInvalidInput
	}
	return s.Repo.Replace(ctx, doc)
}

// EnsureSeed writes the seed resume when the store is empty. It is idempotent
// and runs once at startup before traffic is served.
func (s *Service) EnsureSeed(ctx context.Context) error {
	_, err := s.Repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	if _, err := s.Repo.Replace(ctx, SeedResume()); err != nil {
		return err
	}
	telemetry.Info("resume.seeded", map[string]any{})
	return nil
}

// Context renders the system prompt from the current resume state. Any read
// failure degrades to the no-resume sentence rather than blocking the chat.
func (s *Service) Context(ctx context.Context) string {
	doc, err := s.Repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			telemetry.Warn("resume.context_fallback", map[string]any{"error": err.Error()})
		}
		return NoResumeContext
	}
	return BuildContext(doc)
}
