package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

func TestNewChatID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := model.NewChatID()
		assert.True(t, model.ValidChatID(id), "generated id %q must match the chat id format", id)
		assert.False(t, seen[id], "generated id %q must be unique", id)
		seen[id] = true
	}
}

func TestValidChatID(t *testing.T) {
	testCases := []struct {
		name  string
		id    string
		valid bool
	}{
		{"standard 8 char suffix", "chat-abc12345", true},
		{"minimum 6 char suffix", "chat-abc123", true},
		{"maximum 10 char suffix", "chat-abc1234567", true},
		{"mixed case suffix", "chat-AbC123xY", true},
		{"empty string", "", false},
		{"missing prefix", "abc12345", false},
		{"wrong prefix", "session-abc12345", false},
		{"suffix too short", "chat-abc12", false},
		{"suffix too long", "chat-abc12345678", false},
		{"special characters", "chat-abc!2345", false},
		{"path traversal", "../../etc/passwd", false},
		{"embedded match", "xchat-abc12345", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, model.ValidChatID(tc.id))
		})
	}
}

func TestFeedback_Valid(t *testing.T) {
	assert.True(t, model.FeedbackLiked.Valid())
	assert.True(t, model.FeedbackDisliked.Valid())
	assert.False(t, model.FeedbackNone.Valid())
	assert.False(t, model.Feedback("loved").Valid())
}

func TestNewMessage(t *testing.T) {
	msg := model.NewMessage(model.RoleUser, "hello", model.TypeText)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, model.RoleUser, msg.Role)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, model.TypeText, msg.Type)
	assert.NotEmpty(t, msg.Timestamp)
	assert.Equal(t, model.FeedbackNone, msg.Feedback)

	other := model.NewMessage(model.RoleAssistant, "hi", model.TypeText)
	assert.NotEqual(t, msg.ID, other.ID)
}
