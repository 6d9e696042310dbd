package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type GenerationStatus string

const (
	GenerationPending    GenerationStatus = "pending"
	GenerationProcessing GenerationStatus = "processing"
	GenerationSucceeded  GenerationStatus = "succeeded"
	GenerationFailed     GenerationStatus = "failed"
)

// IsTerminal reports whether the generation can no longer change state.
func (s GenerationStatus) IsTerminal() bool {
	return s == GenerationSucceeded || s == GenerationFailed
}

type GenerationMode string

const (
	ModeText2Video  GenerationMode = "text2video"
	ModeImage2Video GenerationMode = "image2video"
	ModeVideo2Video GenerationMode = "video2video"
)

func (m GenerationMode) Valid() bool {
	switch m {
	case ModeText2Video, ModeImage2Video, ModeVideo2Video:
		return true
	}
	return false
}

// RequiresInputAsset reports whether the mode needs a source image/video.
func (m GenerationMode) RequiresInputAsset() bool {
	return m == ModeImage2Video || m == ModeVideo2Video
}

// GenerationSettings is the snapshot of everything the client submitted
// alongside the prompt. The creative-studio fields are stored untouched,
// the orchestrator does not interpret them.
type GenerationSettings struct {
	Duration    int    `json:"duration"`
	Style       string `json:"style,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
	Intensity   string `json:"intensity,omitempty"`
	AudioID     string `json:"audio_id,omitempty"`
	OverlayID   string `json:"overlay_id,omitempty"`
	TextOverlay string `json:"text_overlay,omitempty"`
	TextStyleID string `json:"text_style_id,omitempty"`
}

// Value implements driver.Valuer so settings persist as jsonb.
func (s GenerationSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *GenerationSettings) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = GenerationSettings{}
		return nil
	}
	return fmt.Errorf("unsupported settings type %T", src)
}

type Generation struct {
	GenerationID       uuid.UUID          `json:"generation_id" db:"generation_id" validate:"omitempty"`
	UserID             uuid.UUID          `json:"user_id" db:"user_id" validate:"omitempty"`
	Mode               GenerationMode     `json:"mode" db:"mode" validate:"required"`
	Prompt             string             `json:"prompt" db:"prompt" validate:"required,lte=1000"`
	TemplateID         string             `json:"template_id,omitempty" db:"template_id"`
	InputAssetURL      string             `json:"input_asset_url,omitempty" db:"input_asset_url"`
	Status             GenerationStatus   `json:"status" db:"status"`
	Progress           int                `json:"progress" db:"progress"`
	ProviderJobID      string             `json:"provider_job_id,omitempty" db:"provider_job_id"`
	OutputVideoURL     string             `json:"output_video_url,omitempty" db:"output_video_url"`
	OutputThumbnailURL string             `json:"output_thumbnail_url,omitempty" db:"output_thumbnail_url"`
	ErrorMessage       string             `json:"error_message,omitempty" db:"error_message"`
	Settings           GenerationSettings `json:"settings" db:"settings"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

// StartGenerationInput is the POST /generations/start request body.
type StartGenerationInput struct {
	Mode          GenerationMode `json:"mode" validate:"required"`
	Prompt        string         `json:"prompt" validate:"required,lte=1000"`
	Duration      int            `json:"duration" validate:"required"`
	Style         string         `json:"style" validate:"omitempty,lte=50"`
	AspectRatio   string         `json:"aspectRatio" validate:"omitempty,lte=10"`
	Intensity     string         `json:"intensity" validate:"omitempty,lte=20"`
	TemplateID    string         `json:"templateId" validate:"omitempty,lte=100"`
	InputAssetURL string         `json:"inputAssetUrl" validate:"omitempty,url"`
	AudioID       string         `json:"audioId" validate:"omitempty,lte=100"`
	OverlayID     string         `json:"overlayId" validate:"omitempty,lte=100"`
	TextOverlay   string         `json:"textOverlay" validate:"omitempty,lte=200"`
	TextStyleID   string         `json:"textStyleId" validate:"omitempty,lte=100"`
}

// EnhancePromptInput is the POST /ai/enhance request body.
type EnhancePromptInput struct {
	Prompt string `json:"prompt" validate:"required,lte=1000"`
}

type EnhancePromptResult struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
}

type StartGenerationResult struct {
	GenerationID     uuid.UUID `json:"generationId"`
	JobID            string    `json:"jobId"`
	EstimatedSeconds int       `json:"estimatedSeconds,omitempty"`
}

// GenerationPollView is the GET /generations/poll response body. The shape
// is identical whether it came from persisted terminal state or a fresh
// provider poll.
type GenerationPollView struct {
	Status             GenerationStatus `json:"status"`
	Progress           int              `json:"progress"`
	OutputVideoURL     string           `json:"outputVideoUrl,omitempty"`
	OutputThumbnailURL string           `json:"outputThumbnailUrl,omitempty"`
	ErrorMessage       string           `json:"errorMessage,omitempty"`
}

type GenerationList struct {
	Generations []*Generation `json:"generations"`
	TotalCount  int           `json:"total_count"`
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	HasMore     bool          `json:"has_more"`
}
