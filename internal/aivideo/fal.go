package aivideo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/clipcraft/shortvid-backend/pkg/logger"
	"github.com/pkg/errors"
)

const (
	falDefaultBaseURL = "https://queue.fal.run"
	falRequestTimeout = 30 * time.Second

	falModelText2Video  = "fal-ai/luma-dream-machine"
	falModelImage2Video = "fal-ai/luma-dream-machine/image-to-video"

	// Composite job id: "<modelID>:<requestID>". Poll has to be routed
	// back through the same model endpoint, so the id carries it.
	falJobIDSeparator = ":"

	falEstimatedSeconds = 60
)

// FalProvider adapts the fal.ai queue API to the Provider contract.
type FalProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

func NewFalProvider(apiKey, baseURL string, log logger.Logger) *FalProvider {
	if baseURL == "" {
		baseURL = falDefaultBaseURL
	}
	return &FalProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: falRequestTimeout},
		logger:  log,
	}
}

func (p *FalProvider) Name() string {
	return "fal"
}

func falModelForMode(mode models.GenerationMode) string {
	switch mode {
	case models.ModeImage2Video:
		return falModelImage2Video
	case models.ModeText2Video, models.ModeVideo2Video:
		return falModelText2Video
	default:
		return falModelText2Video
	}
}

func falAspectRatio(aspectRatio string) string {
	switch aspectRatio {
	case "9:16", "16:9":
		return aspectRatio
	default:
		return "1:1"
	}
}

type falSubmitInput struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	Loop        bool   `json:"loop"`
	ImageURL    string `json:"image_url,omitempty"`
}

type falSubmitResponse struct {
	RequestID string `json:"request_id"`
}

type falStatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (p *FalProvider) StartJob(ctx context.Context, req *GenerationRequest) (*JobStartResult, error) {
	modelID := falModelForMode(req.Mode)

	input := falSubmitInput{
		Prompt:      req.Prompt,
		AspectRatio: falAspectRatio(req.AspectRatio),
		Loop:        false,
	}
	if req.Mode == models.ModeImage2Video && req.InputAssetURL != "" {
		input.ImageURL = req.InputAssetURL
	}

	var submitted falSubmitResponse
	if err := p.doJSON(ctx, http.MethodPost, p.baseURL+"/"+modelID, input, &submitted); err != nil {
		return nil, errors.Wrap(err, "fal: failed to submit job")
	}
	if submitted.RequestID == "" {
		return nil, errors.New("fal: submit response missing request_id")
	}

	return &JobStartResult{
		JobID:            modelID + falJobIDSeparator + submitted.RequestID,
		EstimatedSeconds: falEstimatedSeconds,
	}, nil
}

func (p *FalProvider) PollJob(ctx context.Context, jobID string) *JobPollResult {
	modelID, requestID, ok := splitFalJobID(jobID)
	if !ok {
		return failedPoll("invalid job id format, expected modelId:requestId")
	}

	statusURL := fmt.Sprintf("%s/%s/requests/%s/status", p.baseURL, modelID, requestID)
	var status falStatusResponse
	if err := p.doJSON(ctx, http.MethodGet, statusURL, nil, &status); err != nil {
		return failedPoll(err.Error())
	}

	result := &JobPollResult{Status: mapFalStatus(status.Status)}

	switch result.Status {
	case JobRunning:
		// fal does not expose percentage, halfway is the best available hint
		result.Progress = 50
	case JobFailed:
		result.ErrorMessage = status.Error
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("fal: job ended with status %q", status.Status)
		}
	case JobSucceeded:
		result.Progress = 100
		resultURL := fmt.Sprintf("%s/%s/requests/%s", p.baseURL, modelID, requestID)
		var payload map[string]interface{}
		if err := p.doJSON(ctx, http.MethodGet, resultURL, nil, &payload); err != nil {
			return failedPoll(err.Error())
		}
		videoURL, found := extractVideoURL(payload)
		if !found {
			p.logger.Warnf("fal: no video url in result payload for request %s", requestID)
		}
		result.OutputVideoURL = videoURL
		result.OutputThumbnailURL = extractThumbnailURL(payload)
	}

	return result
}

func splitFalJobID(jobID string) (modelID, requestID string, ok bool) {
	idx := strings.LastIndex(jobID, falJobIDSeparator)
	if idx <= 0 || idx == len(jobID)-1 {
		return "", "", false
	}
	return jobID[:idx], jobID[idx+1:], true
}

// Unrecognized vendor tokens map to failed: fail closed, not open.
func mapFalStatus(falStatus string) JobStatus {
	switch falStatus {
	case "IN_QUEUE":
		return JobQueued
	case "IN_PROGRESS":
		return JobRunning
	case "COMPLETED":
		return JobSucceeded
	default:
		return JobFailed
	}
}

// extractVideoURL digs the output video url out of the result payload. The
// vendor response shape is not stable across API versions, so every known
// shape is tried here and nowhere else.
func extractVideoURL(payload map[string]interface{}) (string, bool) {
	if video, ok := payload["video"].(map[string]interface{}); ok {
		if url, ok := video["url"].(string); ok && url != "" {
			return url, true
		}
	}
	if url, ok := payload["video_url"].(string); ok && url != "" {
		return url, true
	}
	return "", false
}

func extractThumbnailURL(payload map[string]interface{}) string {
	if thumb, ok := payload["thumbnail"].(map[string]interface{}); ok {
		if url, ok := thumb["url"].(string); ok {
			return url
		}
	}
	if url, ok := payload["thumbnail_url"].(string); ok {
		return url
	}
	return ""
}

func (p *FalProvider) doJSON(ctx context.Context, method, url string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "fal: failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return errors.Wrap(err, "fal: failed to build request")
	}
	req.Header.Set("Authorization", "Key "+p.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "fal: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Errorf("fal: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "fal: failed to decode response")
	}
	return nil
}
