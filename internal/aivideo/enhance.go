package aivideo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clipcraft/shortvid-backend/internal/config"
	"github.com/clipcraft/shortvid-backend/pkg/logger"
	"github.com/pkg/errors"
)

const (
	openAIDefaultBaseURL = "https://api.openai.com/v1"
	openAIRequestTimeout = 30 * time.Second
	openAIEnhanceModel   = "gpt-4o"
	openAIEnhanceMaxTok  = 150
	openAIEnhanceTemp    = 0.7
	openAIEnhanceSystem  = "You are a professional cinematic video director and prompt engineer. Your task is to take a simple video generation prompt and enhance it into a highly detailed, cinematic, and visually stunning description. Focus on lighting, camera movement, textures, and atmosphere. Keep the result under 70 words. Output ONLY the enhanced prompt text."
)

// PromptEnhancer rewrites a user prompt into a richer one before it is
// submitted to a generation provider. Enhancement is best-effort sugar: a
// generation must never depend on it.
type PromptEnhancer interface {
	Name() string
	EnhancePrompt(ctx context.Context, prompt string) (string, error)
}

// NewPromptEnhancer selects an enhancer from configuration. Without an
// OpenAI key the passthrough enhancer is used, so the endpoint stays up
// and simply returns the prompt unchanged.
func NewPromptEnhancer(cfg *config.AIConfig, log logger.Logger) PromptEnhancer {
	if cfg.OpenAIKey != "" {
		return NewOpenAIEnhancer(cfg.OpenAIKey, cfg.OpenAIBaseURL, log)
	}
	log.Warnf("no openai api key configured, prompt enhancement is a passthrough")
	return NoopEnhancer{}
}

// NoopEnhancer returns prompts unchanged.
type NoopEnhancer struct{}

func (NoopEnhancer) Name() string {
	return "noop"
}

func (NoopEnhancer) EnhancePrompt(_ context.Context, prompt string) (string, error) {
	return prompt, nil
}

// OpenAIEnhancer rewrites prompts through the chat completions API.
type OpenAIEnhancer struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

func NewOpenAIEnhancer(apiKey, baseURL string, log logger.Logger) *OpenAIEnhancer {
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	return &OpenAIEnhancer{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: openAIRequestTimeout},
		logger:  log,
	}
}

func (e *OpenAIEnhancer) Name() string {
	return "openai"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (e *OpenAIEnhancer) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: openAIEnhanceModel,
		Messages: []chatMessage{
			{Role: "system", Content: openAIEnhanceSystem},
			{Role: "user", Content: prompt},
		},
		Temperature: openAIEnhanceTemp,
		MaxTokens:   openAIEnhanceMaxTok,
	}
	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "openai: failed to encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/chat/completions", bytes.NewReader(encoded))
	if err != nil {
		return "", errors.Wrap(err, "openai: failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "openai: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", errors.Errorf("openai: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var completion chatCompletionResponse
	if err = json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", errors.Wrap(err, "openai: failed to decode response")
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai: completion returned no choices")
	}

	enhanced := strings.TrimSpace(completion.Choices[0].Message.Content)
	if enhanced == "" {
		return "", errors.New("openai: completion returned empty content")
	}
	return enhanced, nil
}
