package gen

import (
	"regexp"
	"strings"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

// Fenced code regions: triple backticks with an optional language tag on the
// opening fence.
var codeBlockPattern = regexp.MustCompile("(?s)```(\\w+)?\\s*\\n(.*?)\\n```")

// ExtractCodeBlocks scans text for fenced code regions and returns them in
// order of appearance. The language defaults to "text" when the fence has no
// tag and the code is trimmed of surrounding whitespace.
//
// Each call is a fresh scan over the full input. There is no shared cursor
// between calls, so repeated invocations can never skip matches.
func ExtractCodeBlocks(text string) []model.CodeBlock {
	matches := codeBlockPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]model.CodeBlock, 0, len(matches))
	for _, m := range matches {
		language := m[1]
		if language == "" {
			language = "text"
		}
		blocks = append(blocks, model.CodeBlock{
			Language: language,
			Code:     strings.TrimSpace(m[2]),
		})
	}
	return blocks
}
