package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/0xshariq/ai-powered-chatbot/internal/config"
	app_errors "github.com/0xshariq/ai-powered-chatbot/internal/errors"
	"github.com/0xshariq/ai-powered-chatbot/internal/interfaces"
	"github.com/0xshariq/ai-powered-chatbot/internal/model"
	"github.com/0xshariq/ai-powered-chatbot/internal/service"
)

const maxUploadBytes = 32 << 20 // 32 MiB

// ChatHandler handles the HTTP surface for chat sessions, history, feedback,
// and file uploads.
type ChatHandler struct {
	service interfaces.ChatService
	cfg     *config.Config
}

func NewChatHandler(svc interfaces.ChatService, cfg *config.Config) *ChatHandler {
	return &ChatHandler{service: svc, cfg: cfg}
}

// FeedbackRequest is the DTO for the feedback toggle endpoint.
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,oneof=liked disliked"`
}

// FeedbackResponse reports the feedback state after the toggle was applied.
type FeedbackResponse struct {
	Success  bool           `json:"success"`
	Feedback model.Feedback `json:"feedback"`
}

// PruneResponse reports how many orphaned summaries a prune removed.
type PruneResponse struct {
	Removed int `json:"removed"`
}

// UploadResponse describes a stored upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// HandleSubmitMessage godoc
// @Summary      Submit a prompt
// @Description  Appends the user message, dispatches the classified prompt to the generation gateway, and returns the updated session. An empty chat_id creates a new session.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        message  body      service.SubmitMessageRequest  true  "Prompt"
// @Success      200      {object}  model.FullChat
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse "A generation for this chat is already in flight"
// @Router       /v1/chats/messages [post]
func (h *ChatHandler) HandleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	fullChat, err := h.service.SubmitMessage(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullChat)
}

// HandleGetChats godoc
// @Summary      List chat history
// @Description  Returns all chat summaries in history order.
// @Tags         Chats
// @Produce      json
// @Success      200  {array}  model.ChatSummary
// @Router       /v1/chats [get]
func (h *ChatHandler) HandleGetChats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.ListChats(r.Context()))
}

// HandleSearchChats godoc
// @Summary      Search chat history
// @Description  Case-insensitive substring match over summary titles and previews, preserving list order.
// @Tags         Chats
// @Produce      json
// @Param        q    query    string  false  "Search query"
// @Success      200  {array}  model.ChatSummary
// @Router       /v1/chats/search [get]
func (h *ChatHandler) HandleSearchChats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	respondWithJSON(w, http.StatusOK, h.service.SearchChats(r.Context(), query))
}

// HandleGetChat godoc
// @Summary      Get a chat
// @Description  Returns the chat's full message log. Malformed or unknown chat ids yield 404.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.FullChat
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID} [get]
func (h *ChatHandler) HandleGetChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	fullChat, err := h.service.GetChat(r.Context(), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullChat)
}

// HandleSelectChat godoc
// @Summary      Select a chat
// @Description  Makes the chat the active session and returns its log. A summary whose log was cleared selects as an empty session.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.FullChat
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/select [post]
func (h *ChatHandler) HandleSelectChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	fullChat, err := h.service.SelectChat(r.Context(), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullChat)
}

// HandleDeleteChat godoc
// @Summary      Delete a chat
// @Description  Removes the chat's summary and stored session. Deleting the active chat creates a replacement session and returns its id.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  service.DeleteResult
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID} [delete]
func (h *ChatHandler) HandleDeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	result, err := h.service.DeleteChat(r.Context(), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandlePruneHistory godoc
// @Summary      Prune orphaned chat summaries
// @Description  Removes history entries whose session record no longer exists and persists the shrunken list.
// @Tags         Chats
// @Produce      json
// @Success      200  {object}  PruneResponse
// @Router       /v1/chats/prune [post]
func (h *ChatHandler) HandlePruneHistory(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.PruneHistory(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, PruneResponse{Removed: removed})
}

// HandleToggleFeedback godoc
// @Summary      Toggle message feedback
// @Description  Tri-state toggle: re-applying the current kind clears it, the other kind replaces it.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatID     path      string           true  "Chat ID"
// @Param        messageID  path      string           true  "Message ID"
// @Param        feedback   body      FeedbackRequest  true  "Feedback kind"
// @Success      200        {object}  FeedbackResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/messages/{messageID}/feedback [post]
func (h *ChatHandler) HandleToggleFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	chatID := chi.URLParam(r, "chatID")
	messageID := chi.URLParam(r, "messageID")
	fb, err := h.service.ToggleFeedback(r.Context(), chatID, messageID, model.Feedback(req.Feedback))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, FeedbackResponse{Success: true, Feedback: fb})
}

// HandleUpload godoc
// @Summary      Upload a file
// @Description  Stores a multipart file under a generated name and returns its URL and metadata.
// @Tags         Files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      200   {object}  UploadResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /v1/upload [post]
func (h *ChatHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid multipart form", app_errors.ErrValidation))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: no file provided", app_errors.ErrValidation))
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.cfg.UploadDir, 0750); err != nil {
		respondWithError(w, fmt.Errorf("could not create upload directory: %w", err))
		return
	}

	// Stored name is generated; the original name only travels in metadata.
	storedName := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.cfg.UploadDir, storedName))
	if err != nil {
		respondWithError(w, fmt.Errorf("could not create upload file: %w", err))
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		respondWithError(w, fmt.Errorf("could not store upload: %w", err))
		return
	}
	slog.Info("Stored upload", "file", header.Filename, "stored_as", storedName)

	respondWithJSON(w, http.StatusOK, UploadResponse{
		Success:  true,
		FileURL:  "/uploads/" + storedName,
		FileName: header.Filename,
		FileType: header.Header.Get("Content-Type"),
	})
}

// HandleAnalyzeFile godoc
// @Summary      Analyze an uploaded file
// @Description  Asks the generation gateway a question about a previously uploaded file and appends the exchange to the session.
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        request  body      service.AnalyzeFileRequest  true  "File reference and prompt"
// @Success      200      {object}  model.FullChat
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/analyze [post]
func (h *ChatHandler) HandleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	fullChat, err := h.service.AnalyzeFile(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullChat)
}

// HandleToggleSidebar godoc
// @Summary      Toggle the sidebar
// @Description  Broadcasts the sidebar toggle to all connected shells.
// @Tags         Shell
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/sidebar/toggle [post]
func (h *ChatHandler) HandleToggleSidebar(w http.ResponseWriter, r *http.Request) {
	h.service.ToggleSidebar()
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
