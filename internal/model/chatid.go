package model

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Chat ids are minted lazily on the first message of a session and are
// immutable afterwards. The format is "<prefix>-<alphanumeric suffix>"; ids
// arriving over the API that do not match the pattern are treated as
// not-found, never as an empty chat.

const chatIDPrefix = "chat"

var chatIDPattern = regexp.MustCompile(`^chat-[A-Za-z0-9]{6,10}$`)

// NewChatID generates a fresh chat id with an 8-character random suffix.
func NewChatID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return chatIDPrefix + "-" + suffix
}

// ValidChatID reports whether id matches the expected chat id format.
func ValidChatID(id string) bool {
	return chatIDPattern.MatchString(id)
}
