package aivideo

import (
	"context"

	"github.com/clipcraft/shortvid-backend/internal/models"
)

// JobStatus is the provider-side status vocabulary. It is narrower than
// models.GenerationStatus: "pending" exists only before first provider
// contact and "running" persists as "processing".
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

type GenerationRequest struct {
	Mode          models.GenerationMode
	Prompt        string
	Duration      int
	Style         string
	AspectRatio   string
	Intensity     string
	TemplateID    string
	InputAssetURL string
}

type JobStartResult struct {
	JobID            string
	EstimatedSeconds int
}

type JobPollResult struct {
	Status             JobStatus
	Progress           int
	OutputVideoURL     string
	OutputThumbnailURL string
	ErrorMessage       string
}

// Provider is an interchangeable video-generation backend. PollJob is
// total: a malformed or unknown job id yields a structured failed result,
// never an error, so a polling loop always terminates.
type Provider interface {
	Name() string
	StartJob(ctx context.Context, req *GenerationRequest) (*JobStartResult, error)
	PollJob(ctx context.Context, jobID string) *JobPollResult
}

// JobCanceler is the optional cancellation capability. Callers detect it
// with a type assertion; providers that cannot cancel simply do not
// implement it.
type JobCanceler interface {
	CancelJob(ctx context.Context, jobID string) error
}

func failedPoll(errMsg string) *JobPollResult {
	return &JobPollResult{
		Status:       JobFailed,
		Progress:     0,
		ErrorMessage: errMsg,
	}
}
