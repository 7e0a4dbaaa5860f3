// Package gen routes classified prompts to the external generation gateway
// and normalizes the heterogeneous provider shapes into one tagged result.
package gen

import (
	"context"
	"fmt"
	"log/slog"

	app_errors "github.com/0xshariq/ai-powered-chatbot/internal/errors"
	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

// defaultMediaText fills in for providers that return a media URL without
// accompanying text.
const defaultMediaText = "Generated content"

// Generator is the contract the chat service depends on.
type Generator interface {
	Dispatch(ctx context.Context, prompt string, kind model.MessageType) (*model.GenerationResult, error)
	Analyze(ctx context.Context, req *AnalyzeRequest) (*model.GenerationResult, error)
}

// Dispatcher maps a detected content type to the matching gateway call and
// validates the response at this boundary, so nothing downstream has to trust
// provider-specific shapes. Any transport or provider failure surfaces as the
// uniform ErrGeneration signal; the raw error is logged here and goes no
// further.
type Dispatcher struct {
	gateway Gateway
}

func NewDispatcher(gateway Gateway) *Dispatcher {
	return &Dispatcher{gateway: gateway}
}

func (d *Dispatcher) Dispatch(ctx context.Context, prompt string, kind model.MessageType) (*model.GenerationResult, error) {
	resp, err := d.gateway.Generate(ctx, kind, prompt)
	if err != nil {
		slog.Error("Generation request failed", "type", kind, "error", err)
		return nil, app_errors.ErrGeneration
	}

	result, err := normalize(resp, kind)
	if err != nil {
		slog.Error("Generation response failed validation", "type", kind, "error", err)
		return nil, app_errors.ErrGeneration
	}
	return result, nil
}

func (d *Dispatcher) Analyze(ctx context.Context, req *AnalyzeRequest) (*model.GenerationResult, error) {
	resp, err := d.gateway.Analyze(ctx, req)
	if err != nil {
		slog.Error("File analysis request failed", "file", req.FileName, "error", err)
		return nil, app_errors.ErrGeneration
	}

	// Analysis answers are always plain text.
	result, err := normalize(resp, model.TypeText)
	if err != nil {
		slog.Error("File analysis response failed validation", "file", req.FileName, "error", err)
		return nil, app_errors.ErrGeneration
	}
	return result, nil
}

// normalize turns the raw envelope into a validated GenerationResult variant.
func normalize(resp *GatewayResponse, kind model.MessageType) (*model.GenerationResult, error) {
	result := &model.GenerationResult{
		Type:         kind,
		Text:         resp.Text,
		IsStructured: resp.IsStructured,
	}

	switch kind {
	case model.TypeImage, model.TypeVideo:
		if resp.MediaURL == "" {
			return nil, fmt.Errorf("%s response is missing mediaUrl", kind)
		}
		result.MediaURL = resp.MediaURL
		if result.Text == "" {
			result.Text = defaultMediaText
		}

	case model.TypeCode:
		if resp.Text == "" {
			return nil, fmt.Errorf("code response is missing text")
		}
		result.CodeBlocks = resp.CodeBlocks
		if len(result.CodeBlocks) == 0 {
			result.CodeBlocks = ExtractCodeBlocks(resp.Text)
		}

	default:
		if resp.Text == "" {
			return nil, fmt.Errorf("text response is missing text")
		}
	}

	return result, nil
}
