package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

// Gateway is the transport to the external generation collaborators. Every
// endpoint answers the same envelope; on failure it returns a non-2xx status
// with an {error} body.
type Gateway interface {
	Generate(ctx context.Context, kind model.MessageType, prompt string) (*GatewayResponse, error)
	Analyze(ctx context.Context, req *AnalyzeRequest) (*GatewayResponse, error)
}

// GatewayResponse is the raw provider envelope before normalization.
type GatewayResponse struct {
	Text         string            `json:"text"`
	Type         model.MessageType `json:"type"`
	MediaURL     string            `json:"mediaUrl"`
	CodeBlocks   []model.CodeBlock `json:"codeBlocks"`
	IsStructured bool              `json:"isStructured"`
	Error        string            `json:"error"`
}

// AnalyzeRequest asks the gateway to answer a question about an uploaded file.
type AnalyzeRequest struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Prompt   string `json:"prompt"`
}

type gatewayClient struct {
	client *http.Client
	url    string
}

// NewGatewayClient returns a Gateway talking HTTP to the given base URL.
func NewGatewayClient(url string) Gateway {
	return &gatewayClient{
		client: &http.Client{Timeout: 120 * time.Second},
		url:    url,
	}
}

func (g *gatewayClient) Generate(ctx context.Context, kind model.MessageType, prompt string) (*GatewayResponse, error) {
	payload := map[string]string{"prompt": prompt}
	return g.post(ctx, "/generate/"+string(kind), payload)
}

func (g *gatewayClient) Analyze(ctx context.Context, req *AnalyzeRequest) (*GatewayResponse, error) {
	return g.post(ctx, "/analyze", req)
}

func (g *gatewayClient) post(ctx context.Context, path string, payload any) (*GatewayResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	// Any non-2xx is a uniform failure signal; the {error} body is kept for
	// the server log only.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(bodyBytes, &e)
		if e.Error != "" {
			return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, e.Error)
		}
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var gr GatewayResponse
	if err := json.Unmarshal(bodyBytes, &gr); err != nil {
		return nil, fmt.Errorf("could not decode gateway response: %w", err)
	}
	return &gr, nil
}
