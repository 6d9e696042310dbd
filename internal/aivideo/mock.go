package aivideo

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	mockIDPrefix  = "mock"
	mockIDVersion = "v1"

	// Fixed simulated generation time.
	mockJobDuration = 15 * time.Second
)

var sampleVideos = []string{
	"/static/samples/sample-0.mp4",
	"/static/samples/sample-1.mp4",
	"/static/samples/sample-2.mp4",
	"/static/samples/sample-3.mp4",
	"/static/samples/sample-4.mp4",
}

var sampleThumbnails = []string{
	"/static/samples/thumb-0.png",
	"/static/samples/thumb-1.png",
	"/static/samples/thumb-2.png",
	"/static/samples/thumb-3.png",
	"/static/samples/thumb-4.png",
}

// mockJob is the decoded form of a mock job id. All job state lives in the
// id string itself (mock_v1_<startMillis>_<durationMillis>_<seed>), so the
// provider survives restarts and multiple instances without a side store.
type mockJob struct {
	StartTime time.Time
	Duration  time.Duration
	Seed      string
}

func (j mockJob) Encode() string {
	return fmt.Sprintf("%s_%s_%d_%d_%s",
		mockIDPrefix,
		mockIDVersion,
		j.StartTime.UnixMilli(),
		j.Duration.Milliseconds(),
		j.Seed,
	)
}

func parseMockJobID(jobID string) (mockJob, error) {
	parts := strings.Split(jobID, "_")
	if len(parts) != 5 || parts[0] != mockIDPrefix || parts[1] != mockIDVersion {
		return mockJob{}, fmt.Errorf("unrecognized job id %q", jobID)
	}
	startMillis, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return mockJob{}, fmt.Errorf("invalid start time in job id %q", jobID)
	}
	durationMillis, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || durationMillis <= 0 {
		return mockJob{}, fmt.Errorf("invalid duration in job id %q", jobID)
	}
	if parts[4] == "" {
		return mockJob{}, fmt.Errorf("missing seed in job id %q", jobID)
	}
	return mockJob{
		StartTime: time.UnixMilli(startMillis),
		Duration:  time.Duration(durationMillis) * time.Millisecond,
		Seed:      parts[4],
	}, nil
}

// MockProvider simulates an asynchronous generation backend with no
// network calls and no shared mutable state.
type MockProvider struct {
	now func() time.Time
}

func NewMockProvider() *MockProvider {
	return &MockProvider{now: time.Now}
}

func (p *MockProvider) Name() string {
	return "mock"
}

func (p *MockProvider) StartJob(_ context.Context, _ *GenerationRequest) (*JobStartResult, error) {
	job := mockJob{
		StartTime: p.now(),
		Duration:  mockJobDuration,
		Seed:      strconv.FormatInt(rand.Int63(), 36),
	}
	return &JobStartResult{
		JobID:            job.Encode(),
		EstimatedSeconds: int(job.Duration / time.Second),
	}, nil
}

func (p *MockProvider) PollJob(_ context.Context, jobID string) *JobPollResult {
	job, err := parseMockJobID(jobID)
	if err != nil {
		return failedPoll("job not found: " + err.Error())
	}

	elapsed := p.now().Sub(job.StartTime)
	progress := int(math.Round(100 * float64(elapsed) / float64(job.Duration)))
	if progress < 0 {
		progress = 0
	}

	if progress >= 100 {
		// Sample selection keyed off the start time so repeated polls on
		// the same id always return the identical asset pair.
		idx := int(job.StartTime.UnixMilli() % int64(len(sampleVideos)))
		if idx < 0 {
			idx = -idx
		}
		return &JobPollResult{
			Status:             JobSucceeded,
			Progress:           100,
			OutputVideoURL:     sampleVideos[idx],
			OutputThumbnailURL: sampleThumbnails[idx],
		}
	}

	status := JobRunning
	if progress == 0 {
		status = JobQueued
	}
	return &JobPollResult{
		Status:   status,
		Progress: progress,
	}
}

// CancelJob is a no-op: there is no state to discard for a self-encoded job.
func (p *MockProvider) CancelJob(_ context.Context, _ string) error {
	return nil
}
