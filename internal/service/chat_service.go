package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/0xshariq/ai-powered-chatbot/internal/bus"
	app_errors "github.com/0xshariq/ai-powered-chatbot/internal/errors"
	"github.com/0xshariq/ai-powered-chatbot/internal/gen"
	"github.com/0xshariq/ai-powered-chatbot/internal/history"
	"github.com/0xshariq/ai-powered-chatbot/internal/model"
	"github.com/0xshariq/ai-powered-chatbot/internal/repository"
	"github.com/0xshariq/ai-powered-chatbot/internal/session"
)

// apologyMessage is the fixed assistant-facing text for any generation
// failure. The original error never reaches the user.
const apologyMessage = "I'm sorry, I encountered an error while processing your request. Please try again."

const (
	titleLimit   = 50
	previewLimit = 80
)

// ChatService orchestrates the session model, history index, persistence
// adapter, and generation dispatcher. It owns no chat state itself.
type ChatService struct {
	repo      repository.Repository
	generator gen.Generator
	sessions  *session.Manager
	index     *history.Index
	events    *bus.Bus
}

// SubmitMessageRequest is a new prompt from the client. An empty ChatID asks
// for a session to be created lazily.
type SubmitMessageRequest struct {
	ChatID  string `json:"chat_id"`
	Content string `json:"content" validate:"required,min=1"`
}

// AnalyzeFileRequest asks a question about a previously uploaded file.
type AnalyzeFileRequest struct {
	ChatID   string `json:"chat_id"`
	FileURL  string `json:"fileUrl" validate:"required"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Prompt   string `json:"prompt"`
}

// DeleteResult reports the outcome of a chat deletion. NewChatID is set when
// the deleted chat was active and a replacement session was created.
type DeleteResult struct {
	Deleted   bool   `json:"deleted"`
	NewChatID string `json:"newChatId,omitempty"`
}

func NewChatService(
	repo repository.Repository,
	generator gen.Generator,
	sessions *session.Manager,
	index *history.Index,
	events *bus.Bus,
) *ChatService {
	return &ChatService{
		repo:      repo,
		generator: generator,
		sessions:  sessions,
		index:     index,
		events:    events,
	}
}

// Restore loads the persisted summary list and reactivates the previously
// active chat, if any. Called once at startup.
func (s *ChatService) Restore(ctx context.Context) error {
	summaries, err := s.repo.GetSummaries(ctx)
	if err != nil {
		return fmt.Errorf("could not load chat summaries: %w", err)
	}
	s.index.Load(summaries)

	chatID, err := s.repo.GetActiveChat(ctx)
	if err != nil {
		return fmt.Errorf("could not load active chat id: %w", err)
	}
	if chatID == "" || !model.ValidChatID(chatID) {
		return nil
	}

	messages, err := s.repo.GetSession(ctx, chatID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("could not load active session: %w", err)
	}
	s.sessions.Load(chatID, messages)
	s.index.SetActive(chatID)
	return nil
}

// SubmitMessage runs the full exchange for one prompt: the user message is
// appended before the generation call starts, and exactly one assistant
// message, either the normalized result or the apology placeholder, is
// appended after it. The session is never left mid-mutation.
func (s *ChatService) SubmitMessage(ctx context.Context, req *SubmitMessageRequest) (*model.FullChat, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", app_errors.ErrValidation)
	}

	chatID, err := s.ensureSession(ctx, req.ChatID)
	if err != nil {
		return nil, err
	}

	// One in-flight generation per chat from the interactive submit path.
	if !s.sessions.TryBegin(chatID) {
		return nil, fmt.Errorf("%w: a generation for this chat is already in progress", app_errors.ErrConflict)
	}
	defer s.sessions.End(chatID)

	kind := session.Classify(content)
	s.appendAndPersist(ctx, chatID, model.NewMessage(model.RoleUser, content, kind))

	assistant := s.generate(ctx, content, kind)
	s.appendAndPersist(ctx, chatID, assistant)

	s.publishUpdate(chatID)

	return &model.FullChat{ChatID: chatID, Messages: s.sessions.Messages()}, nil
}

// AnalyzeFile runs the same exchange shape as SubmitMessage for an uploaded
// file question.
func (s *ChatService) AnalyzeFile(ctx context.Context, req *AnalyzeFileRequest) (*model.FullChat, error) {
	if req.FileURL == "" {
		return nil, fmt.Errorf("%w: fileUrl is required", app_errors.ErrValidation)
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = "Describe this file in detail"
	}

	chatID, err := s.ensureSession(ctx, req.ChatID)
	if err != nil {
		return nil, err
	}

	if !s.sessions.TryBegin(chatID) {
		return nil, fmt.Errorf("%w: a generation for this chat is already in progress", app_errors.ErrConflict)
	}
	defer s.sessions.End(chatID)

	userMsg := model.NewMessage(model.RoleUser, prompt, model.TypeText)
	userMsg.MediaURL = req.FileURL
	userMsg.FileName = req.FileName
	userMsg.FileType = req.FileType
	s.appendAndPersist(ctx, chatID, userMsg)

	var assistant model.Message
	result, err := s.generator.Analyze(ctx, &gen.AnalyzeRequest{
		FileURL:  req.FileURL,
		FileName: req.FileName,
		FileType: req.FileType,
		Prompt:   prompt,
	})
	if err != nil {
		assistant = model.NewMessage(model.RoleAssistant, apologyMessage, model.TypeText)
	} else {
		assistant = messageFromResult(result)
	}
	s.appendAndPersist(ctx, chatID, assistant)

	s.publishUpdate(chatID)

	return &model.FullChat{ChatID: chatID, Messages: s.sessions.Messages()}, nil
}

// ListChats returns all known summaries in history order.
func (s *ChatService) ListChats(ctx context.Context) []model.ChatSummary {
	return s.index.All()
}

// SearchChats filters summaries by case-insensitive substring match on title
// or preview, preserving list order.
func (s *ChatService) SearchChats(ctx context.Context, query string) []model.ChatSummary {
	return s.index.Search(query)
}

// GetChat returns the stored session for chatID. A malformed id and a chat
// that was never created both resolve to not-found; an empty chat is only
// rendered for ids that actually exist.
func (s *ChatService) GetChat(ctx context.Context, chatID string) (*model.FullChat, error) {
	if !model.ValidChatID(chatID) {
		return nil, fmt.Errorf("%w: invalid chat id %q", app_errors.ErrNotFound, chatID)
	}

	if s.sessions.ActiveChat() == chatID {
		return &model.FullChat{ChatID: chatID, Messages: s.sessions.Messages()}, nil
	}

	messages, err := s.repo.GetSession(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return nil, fmt.Errorf("could not load chat %s: %w", chatID, err)
	}
	return &model.FullChat{ChatID: chatID, Messages: messages}, nil
}

// SelectChat makes chatID the active session and returns its log. A summary
// whose message log is gone is tolerated: selection yields an empty session
// rather than an error.
func (s *ChatService) SelectChat(ctx context.Context, chatID string) (*model.FullChat, error) {
	if !model.ValidChatID(chatID) {
		return nil, fmt.Errorf("%w: invalid chat id %q", app_errors.ErrNotFound, chatID)
	}

	messages, err := s.repo.GetSession(ctx, chatID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("could not load chat %s: %w", chatID, err)
	}

	s.sessions.Load(chatID, messages)
	if err := s.repo.SetActiveChat(ctx, chatID); err != nil {
		slog.Warn("Could not persist active chat id", "chat_id", chatID, "error", err)
	}
	s.events.Publish(bus.ChatSelected{ChatID: chatID})

	return &model.FullChat{ChatID: chatID, Messages: s.sessions.Messages()}, nil
}

// DeleteChat removes the summary and the stored session. Deleting the active
// chat creates a replacement session and reports its fresh id.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) (*DeleteResult, error) {
	if !model.ValidChatID(chatID) {
		return nil, fmt.Errorf("%w: invalid chat id %q", app_errors.ErrNotFound, chatID)
	}

	wasActive := s.sessions.ActiveChat() == chatID
	removed := s.index.Delete(chatID)

	if err := s.repo.DeleteSession(ctx, chatID); err != nil {
		return nil, fmt.Errorf("could not delete session %s: %w", chatID, err)
	}
	if err := s.repo.SaveSummaries(ctx, s.index.All()); err != nil {
		slog.Warn("Could not persist summary list after delete", "chat_id", chatID, "error", err)
	}

	result := &DeleteResult{Deleted: removed}
	if wasActive {
		newID := s.sessions.CreateSession()
		if err := s.repo.SetActiveChat(ctx, newID); err != nil {
			slog.Warn("Could not persist active chat id", "chat_id", newID, "error", err)
		}
		s.events.Publish(bus.NewChat{})
		result.NewChatID = newID
	}
	return result, nil
}

// ToggleFeedback applies the tri-state feedback toggle to a message and
// persists the updated log. Returns the resulting feedback state.
func (s *ChatService) ToggleFeedback(ctx context.Context, chatID, messageID string, kind model.Feedback) (model.Feedback, error) {
	if !kind.Valid() {
		return model.FeedbackNone, fmt.Errorf("%w: feedback must be liked or disliked", app_errors.ErrValidation)
	}
	if !model.ValidChatID(chatID) {
		return model.FeedbackNone, fmt.Errorf("%w: invalid chat id %q", app_errors.ErrNotFound, chatID)
	}

	if s.sessions.ActiveChat() == chatID {
		fb, ok := s.sessions.ToggleFeedback(messageID, kind)
		if !ok {
			return model.FeedbackNone, fmt.Errorf("%w: message %s", app_errors.ErrNotFound, messageID)
		}
		if err := s.repo.SaveSession(ctx, chatID, s.sessions.Messages()); err != nil {
			return model.FeedbackNone, fmt.Errorf("could not persist feedback: %w", err)
		}
		return fb, nil
	}

	messages, err := s.repo.GetSession(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.FeedbackNone, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return model.FeedbackNone, fmt.Errorf("could not load chat %s: %w", chatID, err)
	}
	fb, ok := session.Toggle(messages, messageID, kind)
	if !ok {
		return model.FeedbackNone, fmt.Errorf("%w: message %s", app_errors.ErrNotFound, messageID)
	}
	if err := s.repo.SaveSession(ctx, chatID, messages); err != nil {
		return model.FeedbackNone, fmt.Errorf("could not persist feedback: %w", err)
	}
	return fb, nil
}

// PruneHistory drops summaries whose session record no longer exists and
// persists the shrunken list. Returns the number of summaries removed.
func (s *ChatService) PruneHistory(ctx context.Context) (int, error) {
	removed := s.index.Prune(func(chatID string) bool {
		exists, err := s.repo.SessionExists(ctx, chatID)
		if err != nil {
			// Uncertainty keeps the summary; only a definitive miss prunes.
			slog.Warn("Could not check session existence during prune", "chat_id", chatID, "error", err)
			return true
		}
		return exists
	})
	if removed == 0 {
		return 0, nil
	}

	if err := s.repo.SaveSummaries(ctx, s.index.All()); err != nil {
		return removed, fmt.Errorf("could not persist summaries after prune: %w", err)
	}
	slog.Info("Pruned orphaned chat summaries", "removed", removed)
	return removed, nil
}

// ToggleSidebar broadcasts the shell's sidebar toggle.
func (s *ChatService) ToggleSidebar() {
	s.events.Publish(bus.SidebarToggled{})
}

// ensureSession resolves the target chat for a submit: an empty id creates a
// fresh session, a known id that is not active is loaded from storage, and a
// malformed id is rejected as not-found before anything is touched. Switching
// away from an active chat whose generation is still in flight is refused, so
// the in-flight exchange always lands in the log it started in.
func (s *ChatService) ensureSession(ctx context.Context, chatID string) (string, error) {
	if active := s.sessions.ActiveChat(); active != "" && active != chatID && s.sessions.Busy(active) {
		return "", fmt.Errorf("%w: a generation for the active chat is still in progress", app_errors.ErrConflict)
	}

	if chatID == "" {
		newID := s.sessions.CreateSession()
		if err := s.repo.SetActiveChat(ctx, newID); err != nil {
			slog.Warn("Could not persist active chat id", "chat_id", newID, "error", err)
		}
		return newID, nil
	}

	if !model.ValidChatID(chatID) {
		return "", fmt.Errorf("%w: invalid chat id %q", app_errors.ErrNotFound, chatID)
	}

	if s.sessions.ActiveChat() != chatID {
		messages, err := s.repo.GetSession(ctx, chatID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("could not load chat %s: %w", chatID, err)
		}
		s.sessions.Load(chatID, messages)
		if err := s.repo.SetActiveChat(ctx, chatID); err != nil {
			slog.Warn("Could not persist active chat id", "chat_id", chatID, "error", err)
		}
	}
	return chatID, nil
}

// generate dispatches the prompt and converts the outcome into the assistant
// message: the normalized result on success, the apology placeholder on any
// failure.
func (s *ChatService) generate(ctx context.Context, content string, kind model.MessageType) model.Message {
	result, err := s.generator.Dispatch(ctx, content, kind)
	if err != nil {
		return model.NewMessage(model.RoleAssistant, apologyMessage, model.TypeText)
	}
	return messageFromResult(result)
}

func messageFromResult(result *model.GenerationResult) model.Message {
	msg := model.NewMessage(model.RoleAssistant, result.Text, result.Type)
	msg.MediaURL = result.MediaURL
	msg.CodeBlocks = result.CodeBlocks
	return msg
}

// appendAndPersist adds msg to the active log and writes the full log back.
// Persistence failures are logged, never allowed to break the session.
func (s *ChatService) appendAndPersist(ctx context.Context, chatID string, msg model.Message) {
	s.sessions.AppendMessage(msg)
	if err := s.repo.SaveSession(ctx, chatID, s.sessions.Messages()); err != nil {
		slog.Error("Could not persist session", "chat_id", chatID, "error", err)
	}
}

// publishUpdate recomputes the chat's derived summary fields and broadcasts
// them; the history index picks the event up and merges it.
func (s *ChatService) publishUpdate(chatID string) {
	var title, preview string
	for _, msg := range s.sessions.Messages() {
		if title == "" && msg.Role == model.RoleUser {
			title = truncate(msg.Content, titleLimit)
		}
		if msg.Role == model.RoleAssistant {
			preview = truncate(msg.Content, previewLimit)
		}
	}

	s.events.Publish(bus.ChatUpdated{
		ChatID:    chatID,
		Title:     title,
		Preview:   preview,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
