package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"swadesh-ai-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsSystemUserAndImages(t *testing.T) {
	var got ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Role: "assistant", Content: "namaste"}, Done: true})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "")
	out, err := p.Generate(context.Background(), llm.Request{
		SystemInstruction: "sys",
		Content:           "hello",
		Attachments:       []llm.Attachment{{MimeType: "image/png", Data: []byte("abc")}},
	}, llm.WithMaxTokens(64))

	require.NoError(t, err)
	assert.Equal(t, "namaste", out)
	assert.Equal(t, DefaultModel, got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "sys", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, []string{"YWJj"}, got.Messages[1].Images)
	assert.Equal(t, 64, got.Options.NumPredict)
}

func TestGenerateOmitsEmptySystemInstruction(t *testing.T) {
	var got ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Content: "ok"}})
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "mistral").Generate(context.Background(), llm.Request{Content: "x"})
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "mistral", got.Model)
}

func TestGenerateSurfacesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "").Generate(context.Background(), llm.Request{Content: "x"})
	assert.ErrorContains(t, err, "status 404")
}
