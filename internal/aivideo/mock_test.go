package aivideo

import (
	"context"
	"strings"
	"testing"
	"time"
)

func mockAt(now time.Time) *MockProvider {
	p := NewMockProvider()
	p.now = func() time.Time { return now }
	return p
}

func TestMockProviderStartJobEncodesState(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	p := mockAt(start)

	res, err := p.StartJob(context.Background(), &GenerationRequest{Prompt: "a cat dancing"})
	if err != nil {
		t.Fatalf("StartJob: %v", err)
	}
	if !strings.HasPrefix(res.JobID, "mock_v1_") {
		t.Fatalf("job id = %q, want mock_v1_ prefix", res.JobID)
	}
	if res.EstimatedSeconds != 15 {
		t.Fatalf("estimated = %d, want 15", res.EstimatedSeconds)
	}

	job, err := parseMockJobID(res.JobID)
	if err != nil {
		t.Fatalf("parseMockJobID: %v", err)
	}
	if !job.StartTime.Equal(start) {
		t.Fatalf("start time = %v, want %v", job.StartTime, start)
	}
	if job.Duration != mockJobDuration {
		t.Fatalf("duration = %v, want %v", job.Duration, mockJobDuration)
	}
}

func TestMockProviderLifecycle(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	p := mockAt(start)
	res, err := p.StartJob(context.Background(), &GenerationRequest{Prompt: "test"})
	if err != nil {
		t.Fatalf("StartJob: %v", err)
	}

	// t+0: queued at zero progress
	poll := p.PollJob(context.Background(), res.JobID)
	if poll.Status != JobQueued || poll.Progress != 0 {
		t.Fatalf("at t0: status=%s progress=%d, want queued/0", poll.Status, poll.Progress)
	}

	// halfway: running with partial progress
	p.now = func() time.Time { return start.Add(mockJobDuration / 2) }
	poll = p.PollJob(context.Background(), res.JobID)
	if poll.Status != JobRunning {
		t.Fatalf("at t/2: status=%s, want running", poll.Status)
	}
	if poll.Progress <= 0 || poll.Progress >= 100 {
		t.Fatalf("at t/2: progress=%d, want 0<p<100", poll.Progress)
	}

	// done: succeeded, pinned at 100, with an asset pair
	p.now = func() time.Time { return start.Add(mockJobDuration) }
	poll = p.PollJob(context.Background(), res.JobID)
	if poll.Status != JobSucceeded || poll.Progress != 100 {
		t.Fatalf("at t: status=%s progress=%d, want succeeded/100", poll.Status, poll.Progress)
	}
	if poll.OutputVideoURL == "" || poll.OutputThumbnailURL == "" {
		t.Fatal("succeeded poll must carry an output asset pair")
	}

	// well past done: identical asset selection, no flapping
	p.now = func() time.Time { return start.Add(10 * mockJobDuration) }
	again := p.PollJob(context.Background(), res.JobID)
	if again.OutputVideoURL != poll.OutputVideoURL || again.OutputThumbnailURL != poll.OutputThumbnailURL {
		t.Fatalf("asset pair changed across polls: %q/%q vs %q/%q",
			poll.OutputVideoURL, poll.OutputThumbnailURL, again.OutputVideoURL, again.OutputThumbnailURL)
	}
}

func TestMockProviderProgressMonotonic(t *testing.T) {
	start := time.UnixMilli(1700000000000)
	p := mockAt(start)
	res, _ := p.StartJob(context.Background(), &GenerationRequest{Prompt: "test"})

	last := -1
	for _, elapsed := range []time.Duration{0, time.Second, 4 * time.Second, 9 * time.Second, 14 * time.Second, 20 * time.Second} {
		p.now = func() time.Time { return start.Add(elapsed) }
		poll := p.PollJob(context.Background(), res.JobID)
		if poll.Progress < last {
			t.Fatalf("progress regressed: %d after %d", poll.Progress, last)
		}
		last = poll.Progress
	}
	if last != 100 {
		t.Fatalf("final progress = %d, want 100", last)
	}
}

func TestMockProviderPollInvalidID(t *testing.T) {
	p := NewMockProvider()
	for _, jobID := range []string{
		"",
		"garbage",
		"mock_v2_1000_2000_abc",       // wrong version
		"mock_v1_notanumber_2000_abc", // bad start time
		"mock_v1_1000_zero_abc",       // bad duration
		"mock_v1_1000_2000_",          // empty seed
		"fal-ai/luma-dream-machine:xyz",
	} {
		poll := p.PollJob(context.Background(), jobID)
		if poll.Status != JobFailed {
			t.Errorf("jobID %q: status=%s, want failed", jobID, poll.Status)
		}
		if poll.ErrorMessage == "" {
			t.Errorf("jobID %q: failed result must carry an error message", jobID)
		}
	}
}

func TestMockProviderCancelIsNoop(t *testing.T) {
	var p Provider = NewMockProvider()
	canceler, ok := p.(JobCanceler)
	if !ok {
		t.Fatal("mock provider should expose the cancel capability")
	}
	if err := canceler.CancelJob(context.Background(), "mock_v1_1_2_x"); err != nil {
		t.Fatalf("CancelJob: %v", err)
	}
}
