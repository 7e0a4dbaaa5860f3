// Package session owns the authoritative in-memory message log for the
// active chat and mediates all mutations to it. Persistence and history
// notifications are the orchestration layer's job; the manager itself is a
// small state machine that is easy to test in isolation.
package session

import (
	"sync"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

// Manager holds the active chat's identity and ordered message log, plus the
// per-chat in-flight gate that backs the submit admission policy.
type Manager struct {
	mu       sync.Mutex
	chatID   string
	messages []model.Message
	inflight map[string]bool
}

func NewManager() *Manager {
	return &Manager{inflight: make(map[string]bool)}
}

// CreateSession generates a fresh chat id, resets the log to empty, and marks
// the new session active. It cannot fail.
func (m *Manager) CreateSession() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatID = model.NewChatID()
	m.messages = nil
	return m.chatID
}

// ActiveChat returns the active chat id, or "" before the first session.
func (m *Manager) ActiveChat() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chatID
}

// Messages returns a copy of the active log in insertion order.
func (m *Manager) Messages() []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// AppendMessage inserts msg at the tail. It never reorders or deduplicates.
func (m *Manager) AppendMessage(msg model.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

// Load replaces the in-memory log with the stored messages for chatID and
// marks it active. A nil messages slice is the valid empty state for a chat
// with nothing stored.
func (m *Manager) Load(chatID string, messages []model.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatID = chatID
	m.messages = make([]model.Message, len(messages))
	copy(m.messages, messages)
}

// ToggleFeedback applies the tri-state feedback toggle to the identified
// message in the active log and returns the resulting state. The second
// return value is false when no such message exists.
func (m *Manager) ToggleFeedback(messageID string, kind model.Feedback) (model.Feedback, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Toggle(m.messages, messageID, kind)
}

// Toggle applies the feedback rules in place: re-applying the current kind
// clears it, anything else replaces it, so liked and disliked are never both
// set. Returns the resulting state and whether the message was found.
func Toggle(messages []model.Message, messageID string, kind model.Feedback) (model.Feedback, bool) {
	for i := range messages {
		if messages[i].ID != messageID {
			continue
		}
		if messages[i].Feedback == kind {
			messages[i].Feedback = model.FeedbackNone
		} else {
			messages[i].Feedback = kind
		}
		return messages[i].Feedback, true
	}
	return model.FeedbackNone, false
}

// TryBegin claims the in-flight slot for chatID. It returns false when a
// generation for that chat is already outstanding. This is admission control
// mirroring a disabled submit button, not a hard lock.
func (m *Manager) TryBegin(chatID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inflight[chatID] {
		return false
	}
	m.inflight[chatID] = true
	return true
}

// Busy reports whether a generation for chatID is in flight.
func (m *Manager) Busy(chatID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight[chatID]
}

// End releases the in-flight slot for chatID.
func (m *Manager) End(chatID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, chatID)
}
