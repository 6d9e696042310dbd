package aivideo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipcraft/shortvid-backend/internal/config"
)

func TestOpenAIEnhancerRewritesPrompt(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  A lone cat surfs golden waves at dusk, slow dolly shot.  "}},
			},
		})
	}))
	defer srv.Close()

	e := NewOpenAIEnhancer("test-key", srv.URL, newTestLogger())
	enhanced, err := e.EnhancePrompt(context.Background(), "a cat surfing")
	if err != nil {
		t.Fatalf("EnhancePrompt returned error: %v", err)
	}
	if enhanced != "A lone cat surfs golden waves at dusk, slow dolly shot." {
		t.Errorf("enhanced = %q, want trimmed completion content", enhanced)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q, want Bearer test-key", gotAuth)
	}
	if gotReq.Model != openAIEnhanceModel {
		t.Errorf("model = %q, want %q", gotReq.Model, openAIEnhanceModel)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "a cat surfing" {
		t.Errorf("messages = %+v, want system prompt plus user prompt", gotReq.Messages)
	}
}

func TestOpenAIEnhancerErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"http error status",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
			},
		},
		{
			"no choices",
			func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
			},
		},
		{
			"empty content",
			func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]interface{}{
					"choices": []map[string]interface{}{
						{"message": map[string]string{"role": "assistant", "content": "   "}},
					},
				})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			e := NewOpenAIEnhancer("test-key", srv.URL, newTestLogger())
			if _, err := e.EnhancePrompt(context.Background(), "a cat surfing"); err == nil {
				t.Error("EnhancePrompt returned nil error")
			}
		})
	}
}

func TestNoopEnhancerPassthrough(t *testing.T) {
	enhanced, err := NoopEnhancer{}.EnhancePrompt(context.Background(), "a cat surfing")
	if err != nil {
		t.Fatalf("EnhancePrompt returned error: %v", err)
	}
	if enhanced != "a cat surfing" {
		t.Errorf("enhanced = %q, want prompt unchanged", enhanced)
	}
}

func TestNewPromptEnhancerSelection(t *testing.T) {
	e := NewPromptEnhancer(&config.AIConfig{OpenAIKey: "secret"}, newTestLogger())
	if e.Name() != "openai" {
		t.Errorf("enhancer = %q, want openai when a key is configured", e.Name())
	}

	e = NewPromptEnhancer(&config.AIConfig{}, newTestLogger())
	if e.Name() != "noop" {
		t.Errorf("enhancer = %q, want noop without a key", e.Name())
	}
}
