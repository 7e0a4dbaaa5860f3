package session

import (
	"strings"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

// Intent phrase tables, checked in a fixed priority order: image before video
// before code, with text as the default. Classification is a best-effort
// heuristic; a prompt containing phrases from several tables resolves to the
// first matching category. The tables are data so the order and wording can
// change without touching the logic.
var (
	imagePhrases = []string{
		"generate an image",
		"create an image",
		"make an image",
		"image of",
		"picture of",
		"photo of",
		"draw a",
		"draw me",
		"illustration of",
	}

	videoPhrases = []string{
		"generate a video",
		"create a video",
		"make a video",
		"video of",
		"animate",
		"animation of",
		"clip of",
	}

	codePhrases = []string{
		"write code",
		"write a function",
		"write a program",
		"write a script",
		"code to",
		"code for",
		"code that",
		"function to",
		"script to",
		"program to",
		"implement a",
		"algorithm for",
		"code snippet",
	}
)

// Classify maps free-text input to a generation category.
func Classify(prompt string) model.MessageType {
	p := strings.ToLower(prompt)
	switch {
	case containsAny(p, imagePhrases):
		return model.TypeImage
	case containsAny(p, videoPhrases):
		return model.TypeVideo
	case containsAny(p, codePhrases):
		return model.TypeCode
	default:
		return model.TypeText
	}
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
