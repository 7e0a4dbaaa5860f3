package model

import (
	"time"

	"github.com/google/uuid"
)

// NewMessage builds a message with a fresh id and the current timestamp.
func NewMessage(role Role, content string, kind MessageType) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Type:      kind,
	}
}
