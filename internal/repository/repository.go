package repository

import (
	"context"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

// Repository is the persistence adapter for chat state. The layout mirrors
// what the storage holds: one record per chat id with its full message list,
// one record with the ordered summary list, and one record with the currently
// active chat id. Writes are synchronous and idempotent; last-write-wins is
// accepted behavior. The interface keeps the backend swappable (SQLite,
// Redis, or an in-memory fake in tests).
type Repository interface {
	SaveSession(ctx context.Context, chatID string, messages []model.Message) error
	GetSession(ctx context.Context, chatID string) ([]model.Message, error)
	SessionExists(ctx context.Context, chatID string) (bool, error)
	DeleteSession(ctx context.Context, chatID string) error

	SaveSummaries(ctx context.Context, summaries []model.ChatSummary) error
	GetSummaries(ctx context.Context) ([]model.ChatSummary, error)

	SetActiveChat(ctx context.Context, chatID string) error
	GetActiveChat(ctx context.Context) (string, error)
}
