package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
	"github.com/0xshariq/ai-powered-chatbot/internal/session"
)

func TestManager_CreateSession(t *testing.T) {
	m := session.NewManager()

	chatID := m.CreateSession()

	assert.True(t, model.ValidChatID(chatID), "generated id %q must match the chat id format", chatID)
	assert.Equal(t, chatID, m.ActiveChat())
	assert.Empty(t, m.Messages())

	// A second session replaces the first and starts empty again.
	m.AppendMessage(model.NewMessage(model.RoleUser, "hello", model.TypeText))
	second := m.CreateSession()
	assert.NotEqual(t, chatID, second)
	assert.Empty(t, m.Messages())
}

func TestManager_AppendPreservesInsertionOrder(t *testing.T) {
	m := session.NewManager()
	m.CreateSession()

	for i := 0; i < 10; i++ {
		m.AppendMessage(model.NewMessage(model.RoleUser, fmt.Sprintf("message %d", i), model.TypeText))
	}

	messages := m.Messages()
	require.Len(t, messages, 10)
	for i, msg := range messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
	}
}

func TestManager_LoadReplacesLog(t *testing.T) {
	m := session.NewManager()
	m.CreateSession()
	m.AppendMessage(model.NewMessage(model.RoleUser, "old", model.TypeText))

	stored := []model.Message{
		model.NewMessage(model.RoleUser, "restored question", model.TypeText),
		model.NewMessage(model.RoleAssistant, "restored answer", model.TypeText),
	}
	m.Load("chat-deadbeef", stored)

	assert.Equal(t, "chat-deadbeef", m.ActiveChat())
	require.Len(t, m.Messages(), 2)
	assert.Equal(t, "restored question", m.Messages()[0].Content)

	// Loading a chat with nothing stored is a valid empty state.
	m.Load("chat-00000000", nil)
	assert.Equal(t, "chat-00000000", m.ActiveChat())
	assert.Empty(t, m.Messages())
}

func TestToggle_TriState(t *testing.T) {
	msg := model.NewMessage(model.RoleAssistant, "answer", model.TypeText)
	messages := []model.Message{msg}

	// Applying once sets it.
	fb, ok := session.Toggle(messages, msg.ID, model.FeedbackLiked)
	require.True(t, ok)
	assert.Equal(t, model.FeedbackLiked, fb)

	// Re-applying the same kind clears it.
	fb, ok = session.Toggle(messages, msg.ID, model.FeedbackLiked)
	require.True(t, ok)
	assert.Equal(t, model.FeedbackNone, fb)

	// Disliked after liked replaces it; never both set.
	_, _ = session.Toggle(messages, msg.ID, model.FeedbackLiked)
	fb, ok = session.Toggle(messages, msg.ID, model.FeedbackDisliked)
	require.True(t, ok)
	assert.Equal(t, model.FeedbackDisliked, fb)
	assert.Equal(t, model.FeedbackDisliked, messages[0].Feedback)
}

func TestToggle_UnknownMessage(t *testing.T) {
	messages := []model.Message{model.NewMessage(model.RoleAssistant, "answer", model.TypeText)}

	_, ok := session.Toggle(messages, "missing-id", model.FeedbackLiked)
	assert.False(t, ok)
}

func TestManager_InflightGate(t *testing.T) {
	m := session.NewManager()

	require.True(t, m.TryBegin("chat-abc12345"))
	assert.False(t, m.TryBegin("chat-abc12345"), "second claim for the same chat must be refused")
	assert.True(t, m.Busy("chat-abc12345"))
	assert.True(t, m.TryBegin("chat-def67890"), "other chats are unaffected")

	m.End("chat-abc12345")
	assert.False(t, m.Busy("chat-abc12345"))
	assert.True(t, m.TryBegin("chat-abc12345"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		prompt string
		want   model.MessageType
	}{
		{"generate an image of a cat", model.TypeImage},
		{"write code to reverse a string", model.TypeCode},
		{"what is the capital of France", model.TypeText},
		{"create a video of a sunset", model.TypeVideo},
		{"draw me a castle", model.TypeImage},
		{"", model.TypeText},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, session.Classify(tt.prompt))
		})
	}
}

// The priority order is fixed: image before video before code before text.
// A multi-intent prompt must resolve to the first matching category.
func TestClassify_PriorityOrder(t *testing.T) {
	assert.Equal(t, model.TypeImage,
		session.Classify("generate an image and write code to render it"))
	assert.Equal(t, model.TypeImage,
		session.Classify("make an image from this video of a dog"))
	assert.Equal(t, model.TypeVideo,
		session.Classify("create a video and write code for the encoder"))
}
