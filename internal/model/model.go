package model

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// MessageType is the kind of content a message carries. It doubles as the
// generation category a prompt is classified into.
type MessageType string

const (
	TypeText  MessageType = "text"
	TypeImage MessageType = "image"
	TypeVideo MessageType = "video"
	TypeCode  MessageType = "code"
)

// Feedback is the tri-state like/dislike annotation on an assistant message.
// The empty string means no feedback is set.
type Feedback string

const (
	FeedbackLiked    Feedback = "liked"
	FeedbackDisliked Feedback = "disliked"
	FeedbackNone     Feedback = ""
)

// Valid reports whether f is one of the two settable feedback kinds.
func (f Feedback) Valid() bool {
	return f == FeedbackLiked || f == FeedbackDisliked
}

// CodeBlock is a single fenced code region extracted from generated text.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Message is one entry in a chat's log. Everything except Feedback is
// immutable once the message has been appended.
type Message struct {
	ID         string      `json:"id"`
	Role       Role        `json:"role"`
	Content    string      `json:"content"`
	Timestamp  string      `json:"timestamp"`
	Type       MessageType `json:"type"`
	MediaURL   string      `json:"mediaUrl,omitempty"`
	FileName   string      `json:"fileName,omitempty"`
	FileType   string      `json:"fileType,omitempty"`
	Feedback   Feedback    `json:"feedback,omitempty"`
	CodeBlocks []CodeBlock `json:"codeBlocks,omitempty"`
}

// FullChat is a chat's identity plus its ordered message log.
type FullChat struct {
	ChatID   string    `json:"chatId"`
	Messages []Message `json:"messages"`
}

// ChatSummary is the derived history entry for one chat: the title comes from
// the first user message, the preview from the latest assistant message.
type ChatSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Preview   string `json:"preview"`
	Timestamp string `json:"timestamp"`
}

// GenerationResult is the normalized provider response, one variant per
// MessageType. The Dispatcher validates it at the boundary so nothing
// downstream has to inspect raw provider shapes.
type GenerationResult struct {
	Type         MessageType `json:"type"`
	Text         string      `json:"text"`
	MediaURL     string      `json:"mediaUrl,omitempty"`
	CodeBlocks   []CodeBlock `json:"codeBlocks,omitempty"`
	IsStructured bool        `json:"isStructured,omitempty"`
}
