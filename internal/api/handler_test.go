// The `_test` suffix creates a "black box" test package.
// This means the test code lives outside the `api` package and can only access
// its exported identifiers (functions, types, etc.). This is the preferred
// approach for testing the public API of a package.
package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/0xshariq/ai-powered-chatbot/internal/api"
	"github.com/0xshariq/ai-powered-chatbot/internal/config"
	app_errors "github.com/0xshariq/ai-powered-chatbot/internal/errors"
	"github.com/0xshariq/ai-powered-chatbot/internal/interfaces/mocks"
	"github.com/0xshariq/ai-powered-chatbot/internal/model"
	"github.com/0xshariq/ai-powered-chatbot/internal/service"
)

// setupChatHandler encapsulates the repetitive setup logic for creating a
// handler with its service dependency mocked. This keeps the test cases
// focused on the behavior being tested.
func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService) {
	mockSvc := mocks.NewMockChatService(t)
	cfg := &config.Config{UploadDir: t.TempDir()}
	handler := api.NewChatHandler(mockSvc, cfg)
	return handler, mockSvc
}

// addChiURLParams simulates how the chi router injects URL parameters
// (e.g. `{chatID}`) into the request's context. Without it, `chi.URLParam`
// would return an empty string in handler-level tests.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestChatHandler_HandleSubmitMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		expected := &model.FullChat{ChatID: "chat-abc12345"}
		mockSvc.On("SubmitMessage", mock.Anything, mock.MatchedBy(func(req *service.SubmitMessageRequest) bool {
			return req.Content == "hello"
		})).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chats/messages", strings.NewReader(`{"content":"hello"}`))
		rr := httptest.NewRecorder()
		handler.HandleSubmitMessage(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned model.FullChat
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, expected.ChatID, returned.ChatID)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/chats/messages", strings.NewReader(`{"content":`))
		rr := httptest.NewRecorder()
		handler.HandleSubmitMessage(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Validation Error (empty content)", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/chats/messages", strings.NewReader(`{"content":""}`))
		rr := httptest.NewRecorder()
		handler.HandleSubmitMessage(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'Content' failed on the 'required' tag")
	})

	t.Run("Failure - Generation in progress maps to 409", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("SubmitMessage", mock.Anything, mock.Anything).
			Return(nil, app_errors.ErrConflict).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chats/messages", strings.NewReader(`{"content":"hello"}`))
		rr := httptest.NewRecorder()
		handler.HandleSubmitMessage(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestChatHandler_HandleGetChats(t *testing.T) {
	handler, mockSvc := setupChatHandler(t)
	expected := []model.ChatSummary{{ID: "chat-abc12345", Title: "Test Chat"}}
	mockSvc.On("ListChats", mock.Anything).Return(expected).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/chats", nil)
	rr := httptest.NewRecorder()
	handler.HandleGetChats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var returned []model.ChatSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
	assert.Equal(t, expected, returned)
}

func TestChatHandler_HandleSearchChats(t *testing.T) {
	handler, mockSvc := setupChatHandler(t)
	expected := []model.ChatSummary{{ID: "chat-abc12345", Title: "Go questions"}}
	mockSvc.On("SearchChats", mock.Anything, "go").Return(expected).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/chats/search?q=go", nil)
	rr := httptest.NewRecorder()
	handler.HandleSearchChats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var returned []model.ChatSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
	assert.Equal(t, expected, returned)
}

func TestChatHandler_HandleGetChat(t *testing.T) {
	chatID := "chat-abc12345"

	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		expected := &model.FullChat{ChatID: chatID}
		mockSvc.On("GetChat", mock.Anything, chatID).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/chats/"+chatID, nil)
		req = addChiURLParams(req, map[string]string{"chatID": chatID})
		rr := httptest.NewRecorder()
		handler.HandleGetChat(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("GetChat", mock.Anything, chatID).Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/chats/"+chatID, nil)
		req = addChiURLParams(req, map[string]string{"chatID": chatID})
		rr := httptest.NewRecorder()
		handler.HandleGetChat(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestChatHandler_HandleSelectChat(t *testing.T) {
	chatID := "chat-abc12345"
	handler, mockSvc := setupChatHandler(t)
	expected := &model.FullChat{ChatID: chatID}
	mockSvc.On("SelectChat", mock.Anything, chatID).Return(expected, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/chats/"+chatID+"/select", nil)
	req = addChiURLParams(req, map[string]string{"chatID": chatID})
	rr := httptest.NewRecorder()
	handler.HandleSelectChat(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestChatHandler_HandleDeleteChat(t *testing.T) {
	chatID := "chat-abc12345"

	t.Run("Success - active chat reports replacement id", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("DeleteChat", mock.Anything, chatID).
			Return(&service.DeleteResult{Deleted: true, NewChatID: "chat-def67890"}, nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/chats/"+chatID, nil)
		req = addChiURLParams(req, map[string]string{"chatID": chatID})
		rr := httptest.NewRecorder()
		handler.HandleDeleteChat(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "chat-def67890")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("DeleteChat", mock.Anything, chatID).Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/chats/"+chatID, nil)
		req = addChiURLParams(req, map[string]string{"chatID": chatID})
		rr := httptest.NewRecorder()
		handler.HandleDeleteChat(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestChatHandler_HandlePruneHistory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("PruneHistory", mock.Anything).Return(2, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chats/prune", nil)
		rr := httptest.NewRecorder()
		handler.HandlePruneHistory(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.PruneResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Removed)
	})

	t.Run("Failure - persistence error maps to 500", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("PruneHistory", mock.Anything).Return(0, assert.AnError).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chats/prune", nil)
		rr := httptest.NewRecorder()
		handler.HandlePruneHistory(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestChatHandler_HandleToggleFeedback(t *testing.T) {
	chatID := "chat-abc12345"
	messageID := "msg1"

	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("ToggleFeedback", mock.Anything, chatID, messageID, model.FeedbackLiked).
			Return(model.FeedbackLiked, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chats/"+chatID+"/messages/"+messageID+"/feedback",
			strings.NewReader(`{"feedback":"liked"}`))
		req = addChiURLParams(req, map[string]string{"chatID": chatID, "messageID": messageID})
		rr := httptest.NewRecorder()
		handler.HandleToggleFeedback(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.FeedbackResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, model.FeedbackLiked, resp.Feedback)
	})

	t.Run("Failure - invalid feedback kind", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/chats/"+chatID+"/messages/"+messageID+"/feedback",
			strings.NewReader(`{"feedback":"loved"}`))
		req = addChiURLParams(req, map[string]string{"chatID": chatID, "messageID": messageID})
		rr := httptest.NewRecorder()
		handler.HandleToggleFeedback(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'Feedback' failed on the 'oneof' tag")
	})
}

func TestChatHandler_HandleUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "notes.txt")
		require.NoError(t, err)
		_, err = part.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/upload", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.UploadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "notes.txt", resp.FileName)
		assert.True(t, strings.HasPrefix(resp.FileURL, "/uploads/"))
		assert.True(t, strings.HasSuffix(resp.FileURL, ".txt"))
	})

	t.Run("Failure - no file field", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("other", "value"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/upload", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()
		handler.HandleUpload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestChatHandler_HandleAnalyzeFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		expected := &model.FullChat{ChatID: "chat-abc12345"}
		mockSvc.On("AnalyzeFile", mock.Anything, mock.MatchedBy(func(req *service.AnalyzeFileRequest) bool {
			return req.FileURL == "/uploads/a.png"
		})).Return(expected, nil).Once()

		reqBody := `{"fileUrl":"/uploads/a.png","fileName":"a.png","fileType":"image/png"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(reqBody))
		rr := httptest.NewRecorder()
		handler.HandleAnalyzeFile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - missing fileUrl", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{"prompt":"what is this"}`))
		rr := httptest.NewRecorder()
		handler.HandleAnalyzeFile(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'FileURL' failed on the 'required' tag")
	})
}

func TestChatHandler_HandleToggleSidebar(t *testing.T) {
	handler, mockSvc := setupChatHandler(t)
	mockSvc.On("ToggleSidebar").Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/sidebar/toggle", nil)
	rr := httptest.NewRecorder()
	handler.HandleToggleSidebar(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}
