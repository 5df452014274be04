package chat

import (
	"context"
	"time"

	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/shared/telemetry"
)

// ContextSource supplies the system prompt for the language model.
type ContextSource interface {
	Context(ctx context.Context) string
}

// Service proxies one user message to the upstream chat-completion API and
// records the exchange.
type Service struct {
	LLM    llm.Client
	Repo   Repo
	Resume ContextSource
}

// Send submits one user message. It returns the AI response and the
// ISO-8601 UTC timestamp of the exchange. A failure to record the exchange
// is logged and swallowed: the caller still receives the response, with a
// freshly generated timestamp.
func (s *Service) Send(ctx context.Context, userMessage string) (string, string, error) {
	system := s.Resume.Context(ctx)

	reply, err := s.LLM.Complete(ctx, system, userMessage)
	if err != nil {
		return "", "", err
	}

	timestamp := now()
	ex := Exchange{
		UserMessage: userMessage,
		AIResponse:  reply,
		Timestamp:   timestamp,
	}
	if err := s.Repo.Insert(ctx, ex); err != nil {
		telemetry.Warn("chat.record_failed", map[string]any{"error": err.Error()})
		timestamp = now()
	}

	return reply, timestamp, nil
}

// History returns at most limit exchanges, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]Exchange, error) {
	return s.Repo.ListRecent(ctx, limit)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
