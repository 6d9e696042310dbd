package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/clipcraft/shortvid-backend/internal/aivideo"
	"github.com/clipcraft/shortvid-backend/internal/config"
	"github.com/clipcraft/shortvid-backend/internal/generations"
	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/clipcraft/shortvid-backend/pkg/logger"
	"github.com/clipcraft/shortvid-backend/pkg/utils"
	"github.com/google/uuid"
)

func newTestLogger() logger.Logger {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "Development"},
		Logger: config.Logger{Level: "error", Encoding: "console"},
	}
	log := logger.NewApiLogger(cfg)
	log.InitLogger()
	return log
}

type fakeGenRepo struct {
	created       *models.Generation
	createCalls   int
	getByID       *models.Generation
	getByIDErr    error
	markFailedMsg string
	markFailed    int
	startResults  int
	pollUpdates   []*models.Generation
	deleteErr     error
}

func (f *fakeGenRepo) CreateGeneration(ctx context.Context, gen *models.Generation) (*models.Generation, error) {
	f.createCalls++
	created := *gen
	if created.GenerationID == uuid.Nil {
		created.GenerationID = uuid.New()
	}
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeGenRepo) GetGenerationByID(ctx context.Context, generationID uuid.UUID) (*models.Generation, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	if f.getByID == nil {
		return nil, sql.ErrNoRows
	}
	return f.getByID, nil
}

func (f *fakeGenRepo) UpdateStartResult(ctx context.Context, generationID uuid.UUID, providerJobID string, status models.GenerationStatus) error {
	f.startResults++
	if f.created != nil {
		f.created.ProviderJobID = providerJobID
		f.created.Status = status
	}
	return nil
}

func (f *fakeGenRepo) UpdateFromPoll(ctx context.Context, gen *models.Generation) error {
	f.pollUpdates = append(f.pollUpdates, gen)
	return nil
}

func (f *fakeGenRepo) MarkFailed(ctx context.Context, generationID uuid.UUID, errorMessage string) error {
	f.markFailed++
	f.markFailedMsg = errorMessage
	return nil
}

func (f *fakeGenRepo) GetGenerations(ctx context.Context, userID uuid.UUID, pagination *utils.Pagination) (*models.GenerationList, error) {
	return &models.GenerationList{Generations: []*models.Generation{}}, nil
}

func (f *fakeGenRepo) DeleteGeneration(ctx context.Context, userID uuid.UUID, generationID uuid.UUID) error {
	return f.deleteErr
}

type fakeRedisRepo struct {
	cached   *models.Generation
	sets     int
	setTTL   time.Duration
	deletes  int
	getCalls int
}

func (f *fakeRedisRepo) GetGeneration(ctx context.Context, generationID uuid.UUID) (*models.Generation, error) {
	f.getCalls++
	if f.cached == nil {
		return nil, errors.New("cache miss")
	}
	return f.cached, nil
}

func (f *fakeRedisRepo) SetGeneration(ctx context.Context, gen *models.Generation, ttl time.Duration) error {
	f.sets++
	f.setTTL = ttl
	f.cached = gen
	return nil
}

func (f *fakeRedisRepo) DeleteGeneration(ctx context.Context, generationID uuid.UUID) error {
	f.deletes++
	f.cached = nil
	return nil
}

type fakeAWSRepo struct {
	lastInput     *models.AssetUploadInput
	removeCalls   int
	removedBucket string
	removedKey    string
}

func (f *fakeAWSRepo) GetPresignedPutURL(ctx context.Context, input *models.AssetUploadInput) (string, error) {
	f.lastInput = input
	return "https://s3.example.com/presigned", nil
}

func (f *fakeAWSRepo) RemoveObject(ctx context.Context, bucket, key string) error {
	f.removeCalls++
	f.removedBucket = bucket
	f.removedKey = key
	return nil
}

type fakeEnhancer struct {
	calls    int
	result   string
	err      error
	lastSeen string
}

func (f *fakeEnhancer) Name() string { return "fake" }

func (f *fakeEnhancer) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastSeen = prompt
	if f.err != nil {
		return "", f.err
	}
	if f.result != "" {
		return f.result, nil
	}
	return prompt, nil
}

type fakeProvider struct {
	startCalls int
	startErr   error
	startJobID string
	pollCalls  int
	pollResult *aivideo.JobPollResult
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) StartJob(ctx context.Context, req *aivideo.GenerationRequest) (*aivideo.JobStartResult, error) {
	f.startCalls++
	if f.startErr != nil {
		return nil, f.startErr
	}
	jobID := f.startJobID
	if jobID == "" {
		jobID = "job-1"
	}
	return &aivideo.JobStartResult{JobID: jobID, EstimatedSeconds: 30}, nil
}

func (f *fakeProvider) PollJob(ctx context.Context, jobID string) *aivideo.JobPollResult {
	f.pollCalls++
	if f.pollResult != nil {
		return f.pollResult
	}
	return &aivideo.JobPollResult{Status: aivideo.JobRunning, Progress: 50}
}

func testConfig() *config.Config {
	return &config.Config{
		Redis: config.RedisConfig{GenCacheTTL: time.Minute},
		S3:    config.S3Config{Endpoint: "https://s3.example.com", AssetBucket: "assets"},
	}
}

func newTestUC(genRepo *fakeGenRepo, redisRepo *fakeRedisRepo, awsRepo *fakeAWSRepo, provider *fakeProvider) generations.UseCase {
	return NewGenerationUseCase(testConfig(), genRepo, redisRepo, awsRepo, provider, &fakeEnhancer{}, newTestLogger())
}

func newTestUCWithEnhancer(genRepo *fakeGenRepo, enhancer *fakeEnhancer) generations.UseCase {
	return NewGenerationUseCase(testConfig(), genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, &fakeProvider{}, enhancer, newTestLogger())
}

func userCtx(user *models.User) context.Context {
	return context.WithValue(context.Background(), utils.UserCtxKey{}, user)
}

func testUser() *models.User {
	return &models.User{UserID: uuid.New()}
}

func validStartInput() *models.StartGenerationInput {
	return &models.StartGenerationInput{
		Mode:     models.ModeText2Video,
		Prompt:   "a golden retriever surfing at sunset",
		Duration: 5,
	}
}

func TestStartGenerationHappyPath(t *testing.T) {
	genRepo := &fakeGenRepo{}
	provider := &fakeProvider{startJobID: "mock_v1_1_2_3"}
	uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, provider)

	user := testUser()
	res, err := uc.StartGeneration(userCtx(user), validStartInput())
	if err != nil {
		t.Fatalf("StartGeneration returned error: %v", err)
	}
	if res.JobID != "mock_v1_1_2_3" {
		t.Errorf("JobID = %q, want mock_v1_1_2_3", res.JobID)
	}
	if genRepo.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", genRepo.createCalls)
	}
	if genRepo.startResults != 1 {
		t.Errorf("UpdateStartResult calls = %d, want 1", genRepo.startResults)
	}
	if genRepo.created.Status != models.GenerationProcessing {
		t.Errorf("final status = %q, want processing", genRepo.created.Status)
	}
	if genRepo.created.UserID != user.UserID {
		t.Errorf("record owner = %s, want %s", genRepo.created.UserID, user.UserID)
	}
}

func TestStartGenerationRequiresAuth(t *testing.T) {
	genRepo := &fakeGenRepo{}
	uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, &fakeProvider{})

	_, err := uc.StartGeneration(context.Background(), validStartInput())
	if !errors.Is(err, generations.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if genRepo.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", genRepo.createCalls)
	}
}

func TestStartGenerationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.StartGenerationInput)
	}{
		{"empty prompt", func(in *models.StartGenerationInput) { in.Prompt = "   " }},
		{"missing mode", func(in *models.StartGenerationInput) { in.Mode = "" }},
		{"unknown mode", func(in *models.StartGenerationInput) { in.Mode = "morph" }},
		{"bad duration", func(in *models.StartGenerationInput) { in.Duration = 7 }},
		{"image2video without asset", func(in *models.StartGenerationInput) { in.Mode = models.ModeImage2Video }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genRepo := &fakeGenRepo{}
			provider := &fakeProvider{}
			uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, provider)

			input := validStartInput()
			tt.mutate(input)

			_, err := uc.StartGeneration(userCtx(testUser()), input)
			var vErr *generations.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if genRepo.createCalls != 0 {
				t.Errorf("createCalls = %d, want 0: invalid input must not create a record", genRepo.createCalls)
			}
			if provider.startCalls != 0 {
				t.Errorf("startCalls = %d, want 0", provider.startCalls)
			}
		})
	}
}

func TestStartGenerationBlockedPrompt(t *testing.T) {
	genRepo := &fakeGenRepo{}
	uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, &fakeProvider{})

	input := validStartInput()
	input.Prompt = "extremely violent gore scene"
	_, err := uc.StartGeneration(userCtx(testUser()), input)

	var sErr *generations.SafetyError
	if !errors.As(err, &sErr) {
		t.Fatalf("error = %v, want SafetyError", err)
	}
	if genRepo.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0: blocked prompt must not create a record", genRepo.createCalls)
	}
}

func TestStartGenerationProviderFailureMarksFailed(t *testing.T) {
	genRepo := &fakeGenRepo{}
	provider := &fakeProvider{startErr: errors.New("quota exhausted")}
	uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, provider)

	_, err := uc.StartGeneration(userCtx(testUser()), validStartInput())

	var pErr *generations.ProviderStartError
	if !errors.As(err, &pErr) {
		t.Fatalf("error = %v, want ProviderStartError", err)
	}
	if genRepo.markFailed != 1 {
		t.Fatalf("MarkFailed calls = %d, want 1", genRepo.markFailed)
	}
	if genRepo.markFailedMsg != "quota exhausted" {
		t.Errorf("failure message = %q, want provider error text", genRepo.markFailedMsg)
	}
	if genRepo.startResults != 0 {
		t.Errorf("UpdateStartResult calls = %d, want 0", genRepo.startResults)
	}
}

func TestPollGenerationTerminalShortCircuit(t *testing.T) {
	user := testUser()
	gen := &models.Generation{
		GenerationID:   uuid.New(),
		UserID:         user.UserID,
		Status:         models.GenerationSucceeded,
		Progress:       100,
		ProviderJobID:  "job-1",
		OutputVideoURL: "https://cdn.example.com/out.mp4",
	}
	genRepo := &fakeGenRepo{getByID: gen}
	redisRepo := &fakeRedisRepo{}
	provider := &fakeProvider{}
	uc := newTestUC(genRepo, redisRepo, &fakeAWSRepo{}, provider)

	view, err := uc.PollGeneration(userCtx(user), gen.GenerationID)
	if err != nil {
		t.Fatalf("PollGeneration returned error: %v", err)
	}
	if provider.pollCalls != 0 {
		t.Errorf("pollCalls = %d, want 0: terminal records must not hit the provider", provider.pollCalls)
	}
	if view.Status != models.GenerationSucceeded || view.Progress != 100 {
		t.Errorf("view = %+v, want succeeded/100", view)
	}
	if view.OutputVideoURL != gen.OutputVideoURL {
		t.Errorf("OutputVideoURL = %q, want %q", view.OutputVideoURL, gen.OutputVideoURL)
	}
	if redisRepo.sets != 1 {
		t.Errorf("cache sets = %d, want 1: terminal result fetched from DB should be cached", redisRepo.sets)
	}

	// Second poll served from cache, still no provider call and no re-cache.
	if _, err := uc.PollGeneration(userCtx(user), gen.GenerationID); err != nil {
		t.Fatalf("second PollGeneration returned error: %v", err)
	}
	if provider.pollCalls != 0 {
		t.Errorf("pollCalls = %d after cached poll, want 0", provider.pollCalls)
	}
	if redisRepo.sets != 1 {
		t.Errorf("cache sets = %d after cached poll, want 1", redisRepo.sets)
	}
}

func TestPollGenerationMissingProviderJobID(t *testing.T) {
	user := testUser()
	gen := &models.Generation{
		GenerationID: uuid.New(),
		UserID:       user.UserID,
		Status:       models.GenerationPending,
	}
	genRepo := &fakeGenRepo{getByID: gen}
	provider := &fakeProvider{}
	uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, provider)

	view, err := uc.PollGeneration(userCtx(user), gen.GenerationID)
	if err != nil {
		t.Fatalf("PollGeneration returned error: %v", err)
	}
	if view.Status != models.GenerationPending || view.Progress != 0 {
		t.Errorf("view = %+v, want pending/0", view)
	}
	if provider.pollCalls != 0 {
		t.Errorf("pollCalls = %d, want 0", provider.pollCalls)
	}
	if len(genRepo.pollUpdates) != 0 {
		t.Errorf("pollUpdates = %d, want 0", len(genRepo.pollUpdates))
	}
}

func TestPollGenerationStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		jobStatus  aivideo.JobStatus
		wantStatus models.GenerationStatus
	}{
		{"queued maps to pending", aivideo.JobQueued, models.GenerationPending},
		{"running maps to processing", aivideo.JobRunning, models.GenerationProcessing},
		{"succeeded passes through", aivideo.JobSucceeded, models.GenerationSucceeded},
		{"failed passes through", aivideo.JobFailed, models.GenerationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testUser()
			gen := &models.Generation{
				GenerationID:  uuid.New(),
				UserID:        user.UserID,
				Status:        models.GenerationProcessing,
				ProviderJobID: "job-1",
			}
			genRepo := &fakeGenRepo{getByID: gen}
			provider := &fakeProvider{pollResult: &aivideo.JobPollResult{Status: tt.jobStatus, Progress: 10}}
			uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, provider)

			view, err := uc.PollGeneration(userCtx(user), gen.GenerationID)
			if err != nil {
				t.Fatalf("PollGeneration returned error: %v", err)
			}
			if view.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", view.Status, tt.wantStatus)
			}
		})
	}
}

func TestPollGenerationNeverClearsOutputs(t *testing.T) {
	user := testUser()
	gen := &models.Generation{
		GenerationID:       uuid.New(),
		UserID:             user.UserID,
		Status:             models.GenerationProcessing,
		Progress:           80,
		ProviderJobID:      "job-1",
		OutputVideoURL:     "https://cdn.example.com/out.mp4",
		OutputThumbnailURL: "https://cdn.example.com/thumb.jpg",
	}
	genRepo := &fakeGenRepo{getByID: gen}
	provider := &fakeProvider{pollResult: &aivideo.JobPollResult{Status: aivideo.JobRunning, Progress: 90}}
	uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, provider)

	view, err := uc.PollGeneration(userCtx(user), gen.GenerationID)
	if err != nil {
		t.Fatalf("PollGeneration returned error: %v", err)
	}
	if view.OutputVideoURL != gen.OutputVideoURL {
		t.Errorf("OutputVideoURL = %q, want preserved %q", view.OutputVideoURL, gen.OutputVideoURL)
	}
	if view.OutputThumbnailURL != gen.OutputThumbnailURL {
		t.Errorf("OutputThumbnailURL = %q, want preserved %q", view.OutputThumbnailURL, gen.OutputThumbnailURL)
	}
	if view.Progress != 90 {
		t.Errorf("Progress = %d, want 90", view.Progress)
	}
}

func TestPollGenerationOwnership(t *testing.T) {
	owner := testUser()
	gen := &models.Generation{
		GenerationID:  uuid.New(),
		UserID:        owner.UserID,
		Status:        models.GenerationProcessing,
		ProviderJobID: "job-1",
	}
	genRepo := &fakeGenRepo{getByID: gen}
	uc := newTestUC(genRepo, &fakeRedisRepo{}, &fakeAWSRepo{}, &fakeProvider{})

	_, err := uc.PollGeneration(userCtx(testUser()), gen.GenerationID)
	if !errors.Is(err, generations.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound for foreign generation", err)
	}
}

func TestPollGenerationNotFound(t *testing.T) {
	uc := newTestUC(&fakeGenRepo{}, &fakeRedisRepo{}, &fakeAWSRepo{}, &fakeProvider{})

	_, err := uc.PollGeneration(userCtx(testUser()), uuid.New())
	if !errors.Is(err, generations.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteGenerationEvictsCache(t *testing.T) {
	user := testUser()
	gen := &models.Generation{
		GenerationID: uuid.New(),
		UserID:       user.UserID,
		Status:       models.GenerationSucceeded,
	}
	redisRepo := &fakeRedisRepo{}
	awsRepo := &fakeAWSRepo{}
	uc := newTestUC(&fakeGenRepo{getByID: gen}, redisRepo, awsRepo, &fakeProvider{})

	if err := uc.DeleteGeneration(userCtx(user), gen.GenerationID); err != nil {
		t.Fatalf("DeleteGeneration returned error: %v", err)
	}
	if redisRepo.deletes != 1 {
		t.Errorf("cache deletes = %d, want 1", redisRepo.deletes)
	}
	if awsRepo.removeCalls != 0 {
		t.Errorf("removeCalls = %d, want 0 for a generation without an input asset", awsRepo.removeCalls)
	}
}

func TestDeleteGenerationRemovesOwnedInputAsset(t *testing.T) {
	user := testUser()
	gen := &models.Generation{
		GenerationID:  uuid.New(),
		UserID:        user.UserID,
		Status:        models.GenerationSucceeded,
		InputAssetURL: "https://s3.example.com/assets/" + user.UserID.String() + "/clip.mp4",
	}
	awsRepo := &fakeAWSRepo{}
	uc := newTestUC(&fakeGenRepo{getByID: gen}, &fakeRedisRepo{}, awsRepo, &fakeProvider{})

	if err := uc.DeleteGeneration(userCtx(user), gen.GenerationID); err != nil {
		t.Fatalf("DeleteGeneration returned error: %v", err)
	}
	if awsRepo.removeCalls != 1 {
		t.Fatalf("removeCalls = %d, want 1", awsRepo.removeCalls)
	}
	if awsRepo.removedBucket != "assets" {
		t.Errorf("removed bucket = %q, want assets", awsRepo.removedBucket)
	}
	wantKey := "assets/" + user.UserID.String() + "/clip.mp4"
	if awsRepo.removedKey != wantKey {
		t.Errorf("removed key = %q, want %q", awsRepo.removedKey, wantKey)
	}
}

func TestDeleteGenerationLeavesForeignAssets(t *testing.T) {
	user := testUser()
	gen := &models.Generation{
		GenerationID:  uuid.New(),
		UserID:        user.UserID,
		Status:        models.GenerationSucceeded,
		InputAssetURL: "https://other-cdn.example.com/clip.mp4",
	}
	awsRepo := &fakeAWSRepo{}
	uc := newTestUC(&fakeGenRepo{getByID: gen}, &fakeRedisRepo{}, awsRepo, &fakeProvider{})

	if err := uc.DeleteGeneration(userCtx(user), gen.GenerationID); err != nil {
		t.Fatalf("DeleteGeneration returned error: %v", err)
	}
	if awsRepo.removeCalls != 0 {
		t.Errorf("removeCalls = %d, want 0 for a third-party asset URL", awsRepo.removeCalls)
	}
}

func TestDeleteGenerationOwnership(t *testing.T) {
	gen := &models.Generation{
		GenerationID: uuid.New(),
		UserID:       testUser().UserID,
		Status:       models.GenerationSucceeded,
	}
	uc := newTestUC(&fakeGenRepo{getByID: gen}, &fakeRedisRepo{}, &fakeAWSRepo{}, &fakeProvider{})

	err := uc.DeleteGeneration(userCtx(testUser()), gen.GenerationID)
	if !errors.Is(err, generations.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound for foreign generation", err)
	}
}

func TestEnhancePrompt(t *testing.T) {
	enhancer := &fakeEnhancer{result: "a cinematic cat, golden hour, slow dolly"}
	uc := newTestUCWithEnhancer(&fakeGenRepo{}, enhancer)

	res, err := uc.EnhancePrompt(userCtx(testUser()), &models.EnhancePromptInput{Prompt: "a cat"})
	if err != nil {
		t.Fatalf("EnhancePrompt returned error: %v", err)
	}
	if res.EnhancedPrompt != "a cinematic cat, golden hour, slow dolly" {
		t.Errorf("EnhancedPrompt = %q", res.EnhancedPrompt)
	}
	if enhancer.calls != 1 || enhancer.lastSeen != "a cat" {
		t.Errorf("enhancer calls = %d lastSeen = %q", enhancer.calls, enhancer.lastSeen)
	}
}

func TestEnhancePromptRequiresAuth(t *testing.T) {
	enhancer := &fakeEnhancer{}
	uc := newTestUCWithEnhancer(&fakeGenRepo{}, enhancer)

	_, err := uc.EnhancePrompt(context.Background(), &models.EnhancePromptInput{Prompt: "a cat"})
	if !errors.Is(err, generations.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if enhancer.calls != 0 {
		t.Errorf("enhancer calls = %d, want 0", enhancer.calls)
	}
}

func TestEnhancePromptEmptyPrompt(t *testing.T) {
	enhancer := &fakeEnhancer{}
	uc := newTestUCWithEnhancer(&fakeGenRepo{}, enhancer)

	_, err := uc.EnhancePrompt(userCtx(testUser()), &models.EnhancePromptInput{Prompt: "   "})
	var vErr *generations.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if enhancer.calls != 0 {
		t.Errorf("enhancer calls = %d, want 0", enhancer.calls)
	}
}

func TestEnhancePromptEnhancerFailure(t *testing.T) {
	enhancer := &fakeEnhancer{err: errors.New("upstream unavailable")}
	uc := newTestUCWithEnhancer(&fakeGenRepo{}, enhancer)

	if _, err := uc.EnhancePrompt(userCtx(testUser()), &models.EnhancePromptInput{Prompt: "a cat"}); err == nil {
		t.Fatal("EnhancePrompt returned nil error")
	}
}

func TestGetAssetUploadURL(t *testing.T) {
	user := testUser()
	awsRepo := &fakeAWSRepo{}
	uc := newTestUC(&fakeGenRepo{}, &fakeRedisRepo{}, awsRepo, &fakeProvider{})

	res, err := uc.GetAssetUploadURL(userCtx(user), &models.AssetUploadInput{
		Name:     "clip.mp4",
		MimeType: "video/mp4",
		Size:     1024,
	})
	if err != nil {
		t.Fatalf("GetAssetUploadURL returned error: %v", err)
	}
	if res.UploadURL != "https://s3.example.com/presigned" {
		t.Errorf("UploadURL = %q", res.UploadURL)
	}
	wantKey := "assets/" + user.UserID.String() + "/clip.mp4"
	if res.Key != wantKey {
		t.Errorf("Key = %q, want %q", res.Key, wantKey)
	}
	if awsRepo.lastInput.BucketName != "assets" {
		t.Errorf("BucketName = %q, want assets", awsRepo.lastInput.BucketName)
	}
}
