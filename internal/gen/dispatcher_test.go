package gen_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "github.com/0xshariq/ai-powered-chatbot/internal/errors"
	"github.com/0xshariq/ai-powered-chatbot/internal/gen"
	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

// The dispatcher is tested against a mock HTTP server standing in for the
// generation gateway, so the routing and normalization logic is exercised in
// isolation, without real network calls.
func TestDispatcher_RoutesByType(t *testing.T) {
	var capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/generate/text":
			_, _ = w.Write([]byte(`{"text":"Paris.","type":"text"}`))
		case "/generate/image":
			_, _ = w.Write([]byte(`{"text":"Generated image for: \"a cat\"","mediaUrl":"https://cdn.example/cat.png","type":"image"}`))
		case "/generate/video":
			_, _ = w.Write([]byte(`{"mediaUrl":"https://cdn.example/clip.mp4","type":"video"}`))
		case "/generate/code":
			_, _ = w.Write([]byte("{\"text\":\"Here you go.\\n```go\\nfunc main() {}\\n```\",\"type\":\"code\"}"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	d := gen.NewDispatcher(gen.NewGatewayClient(server.URL))
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		result, err := d.Dispatch(ctx, "what is the capital of France", model.TypeText)
		require.NoError(t, err)
		assert.Equal(t, "/generate/text", capturedPath)
		assert.Equal(t, model.TypeText, result.Type)
		assert.Equal(t, "Paris.", result.Text)
	})

	t.Run("image", func(t *testing.T) {
		result, err := d.Dispatch(ctx, "generate an image of a cat", model.TypeImage)
		require.NoError(t, err)
		assert.Equal(t, "/generate/image", capturedPath)
		assert.Equal(t, model.TypeImage, result.Type)
		assert.Equal(t, "https://cdn.example/cat.png", result.MediaURL)
	})

	t.Run("video with missing text gets the default", func(t *testing.T) {
		result, err := d.Dispatch(ctx, "create a video of a sunset", model.TypeVideo)
		require.NoError(t, err)
		assert.Equal(t, "/generate/video", capturedPath)
		assert.Equal(t, "Generated content", result.Text)
		assert.Equal(t, "https://cdn.example/clip.mp4", result.MediaURL)
	})

	t.Run("code blocks are extracted when the provider sends none", func(t *testing.T) {
		result, err := d.Dispatch(ctx, "write code for a main function", model.TypeCode)
		require.NoError(t, err)
		assert.Equal(t, "/generate/code", capturedPath)
		require.Len(t, result.CodeBlocks, 1)
		assert.Equal(t, "go", result.CodeBlocks[0].Language)
		assert.Equal(t, "func main() {}", result.CodeBlocks[0].Code)
	})
}

func TestDispatcher_UniformFailureSignal(t *testing.T) {
	ctx := context.Background()

	t.Run("provider error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
		}))
		defer server.Close()

		d := gen.NewDispatcher(gen.NewGatewayClient(server.URL))
		_, err := d.Dispatch(ctx, "hello", model.TypeText)

		// The provider's raw error must not leak; only the sentinel comes out.
		require.Error(t, err)
		assert.True(t, errors.Is(err, app_errors.ErrGeneration))
		assert.NotContains(t, err.Error(), "quota")
	})

	t.Run("transport failure", func(t *testing.T) {
		d := gen.NewDispatcher(gen.NewGatewayClient("http://127.0.0.1:1"))
		_, err := d.Dispatch(ctx, "hello", model.TypeText)
		assert.True(t, errors.Is(err, app_errors.ErrGeneration))
	})

	t.Run("media response missing mediaUrl fails validation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"text":"no url here","type":"image"}`))
		}))
		defer server.Close()

		d := gen.NewDispatcher(gen.NewGatewayClient(server.URL))
		_, err := d.Dispatch(ctx, "generate an image of a cat", model.TypeImage)
		assert.True(t, errors.Is(err, app_errors.ErrGeneration))
	})
}

func TestDispatcher_Analyze(t *testing.T) {
	var capturedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		_, _ = w.Write([]byte(`{"text":"The document is an invoice.","type":"text"}`))
	}))
	defer server.Close()

	d := gen.NewDispatcher(gen.NewGatewayClient(server.URL))
	result, err := d.Analyze(context.Background(), &gen.AnalyzeRequest{
		FileURL:  "/uploads/doc.pdf",
		FileName: "doc.pdf",
		FileType: "application/pdf",
		Prompt:   "what is this file",
	})

	require.NoError(t, err)
	assert.Equal(t, "/analyze", capturedPath)
	assert.Equal(t, model.TypeText, result.Type)
	assert.Equal(t, "The document is an invoice.", result.Text)
}
