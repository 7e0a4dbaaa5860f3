package interfaces

import (
	"context"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
	"github.com/0xshariq/ai-powered-chatbot/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows
// for decoupling (e.g., API layer from Service layer) and easier testing via
// mocking.

// ChatService defines the contract for chat-related business logic.
type ChatService interface {
	SubmitMessage(ctx context.Context, req *service.SubmitMessageRequest) (*model.FullChat, error)
	AnalyzeFile(ctx context.Context, req *service.AnalyzeFileRequest) (*model.FullChat, error)
	ListChats(ctx context.Context) []model.ChatSummary
	SearchChats(ctx context.Context, query string) []model.ChatSummary
	GetChat(ctx context.Context, chatID string) (*model.FullChat, error)
	SelectChat(ctx context.Context, chatID string) (*model.FullChat, error)
	DeleteChat(ctx context.Context, chatID string) (*service.DeleteResult, error)
	PruneHistory(ctx context.Context) (int, error)
	ToggleFeedback(ctx context.Context, chatID, messageID string, kind model.Feedback) (model.Feedback, error)
	ToggleSidebar()
}
