package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clipcraft/shortvid-backend/internal/aivideo"
	"github.com/clipcraft/shortvid-backend/internal/config"
	"github.com/clipcraft/shortvid-backend/internal/generations"
	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/clipcraft/shortvid-backend/pkg/logger"
	"github.com/clipcraft/shortvid-backend/pkg/utils"
	"github.com/google/uuid"
)

const defaultTerminalCacheTTL = time.Hour

// Durations the generation backends accept, in seconds.
var allowedDurations = map[int]bool{
	5:  true,
	8:  true,
	10: true,
	15: true,
}

type generationUC struct {
	cfg       *config.Config
	genRepo   generations.Repository
	redisRepo generations.RedisRepository
	awsRepo   generations.AWSRepository
	provider  aivideo.Provider
	enhancer  aivideo.PromptEnhancer
	logger    logger.Logger
}

func NewGenerationUseCase(
	cfg *config.Config,
	genRepo generations.Repository,
	redisRepo generations.RedisRepository,
	awsRepo generations.AWSRepository,
	provider aivideo.Provider,
	enhancer aivideo.PromptEnhancer,
	log logger.Logger,
) generations.UseCase {
	return &generationUC{
		cfg:       cfg,
		genRepo:   genRepo,
		redisRepo: redisRepo,
		awsRepo:   awsRepo,
		provider:  provider,
		enhancer:  enhancer,
		logger:    log,
	}
}

// StartGeneration drives the record through
// (none) -> pending -> processing, or pending -> failed when the provider
// rejects the job. A record never leaves this method in pending state.
func (g *generationUC) StartGeneration(ctx context.Context, input *models.StartGenerationInput) (*models.StartGenerationResult, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		g.logger.Errorf("StartGeneration - GetUserFromCtx error: %v", err)
		return nil, generations.ErrUnauthorized
	}

	if input.Mode == "" || strings.TrimSpace(input.Prompt) == "" || input.Duration == 0 {
		return nil, &generations.ValidationError{Reason: "Missing required fields: mode, prompt and duration are required"}
	}
	if !input.Mode.Valid() {
		return nil, &generations.ValidationError{Reason: fmt.Sprintf("Invalid mode %q", input.Mode)}
	}
	if !allowedDurations[input.Duration] {
		return nil, &generations.ValidationError{Reason: "Invalid duration: must be one of 5, 8, 10 or 15 seconds"}
	}
	if input.Mode.RequiresInputAsset() && input.InputAssetURL == "" {
		return nil, &generations.ValidationError{Reason: fmt.Sprintf("Mode %q requires inputAssetUrl", input.Mode)}
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		return nil, &generations.ValidationError{Reason: fmt.Sprintf("Invalid request: %v", err)}
	}

	if safety := aivideo.CheckPromptSafety(input.Prompt); !safety.Safe {
		return nil, &generations.SafetyError{Reason: safety.Reason}
	}

	gen := &models.Generation{
		UserID:        user.UserID,
		Mode:          input.Mode,
		Prompt:        input.Prompt,
		TemplateID:    input.TemplateID,
		InputAssetURL: input.InputAssetURL,
		Status:        models.GenerationPending,
		Progress:      0,
		Settings: models.GenerationSettings{
			Duration:    input.Duration,
			Style:       input.Style,
			AspectRatio: input.AspectRatio,
			Intensity:   input.Intensity,
			AudioID:     input.AudioID,
			OverlayID:   input.OverlayID,
			TextOverlay: input.TextOverlay,
			TextStyleID: input.TextStyleID,
		},
	}
	created, err := g.genRepo.CreateGeneration(ctx, gen)
	if err != nil {
		g.logger.Errorf("StartGeneration - CreateGeneration error: %v", err)
		return nil, fmt.Errorf("failed to create generation record: %w", err)
	}

	startResult, err := g.provider.StartJob(ctx, &aivideo.GenerationRequest{
		Mode:          input.Mode,
		Prompt:        input.Prompt,
		Duration:      input.Duration,
		Style:         input.Style,
		AspectRatio:   input.AspectRatio,
		Intensity:     input.Intensity,
		TemplateID:    input.TemplateID,
		InputAssetURL: input.InputAssetURL,
	})
	if err != nil {
		g.logger.Errorf("StartGeneration - provider %s StartJob error: %v", g.provider.Name(), err)
		if markErr := g.genRepo.MarkFailed(ctx, created.GenerationID, err.Error()); markErr != nil {
			g.logger.Errorf("StartGeneration - MarkFailed error: %v", markErr)
		}
		return nil, &generations.ProviderStartError{Cause: err}
	}

	if err = g.genRepo.UpdateStartResult(ctx, created.GenerationID, startResult.JobID, models.GenerationProcessing); err != nil {
		g.logger.Errorf("StartGeneration - UpdateStartResult error: %v", err)
		return nil, fmt.Errorf("failed to persist provider job id: %w", err)
	}

	return &models.StartGenerationResult{
		GenerationID:     created.GenerationID,
		JobID:            startResult.JobID,
		EstimatedSeconds: startResult.EstimatedSeconds,
	}, nil
}

// PollGeneration reconciles client-visible progress with the provider.
// Terminal records are returned verbatim without contacting the provider:
// terminal states are sticky and polling after completion is free.
func (g *generationUC) PollGeneration(ctx context.Context, generationID uuid.UUID) (*models.GenerationPollView, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, generations.ErrUnauthorized
	}

	gen, fromCache, err := g.loadGeneration(ctx, generationID)
	if err != nil {
		return nil, err
	}
	if gen.UserID != user.UserID {
		g.logger.Warnf("user %s polled generation %s owned by %s", user.UserID, generationID, gen.UserID)
		return nil, generations.ErrNotFound
	}

	if gen.Status.IsTerminal() {
		if !fromCache {
			g.cacheTerminal(ctx, gen)
		}
		return pollView(gen), nil
	}

	// Race window: the client can poll between record creation and the
	// provider accepting the job.
	if gen.ProviderJobID == "" {
		return &models.GenerationPollView{
			Status:   models.GenerationPending,
			Progress: 0,
		}, nil
	}

	poll := g.provider.PollJob(ctx, gen.ProviderJobID)
	merged := mergePollResult(gen, poll)

	if err = g.genRepo.UpdateFromPoll(ctx, merged); err != nil {
		g.logger.Errorf("PollGeneration - UpdateFromPoll error: %v", err)
		return nil, fmt.Errorf("failed to persist poll result: %w", err)
	}
	if merged.Status.IsTerminal() {
		g.cacheTerminal(ctx, merged)
	}

	return pollView(merged), nil
}

func (g *generationUC) loadGeneration(ctx context.Context, generationID uuid.UUID) (*models.Generation, bool, error) {
	if cached, err := g.redisRepo.GetGeneration(ctx, generationID); err == nil && cached != nil {
		return cached, true, nil
	}

	gen, err := g.genRepo.GetGenerationByID(ctx, generationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, generations.ErrNotFound
		}
		g.logger.Errorf("loadGeneration - GetGenerationByID error: %v", err)
		return nil, false, fmt.Errorf("failed to fetch generation: %w", err)
	}
	return gen, false, nil
}

func (g *generationUC) cacheTerminal(ctx context.Context, gen *models.Generation) {
	ttl := g.cfg.Redis.GenCacheTTL
	if ttl <= 0 {
		ttl = defaultTerminalCacheTTL
	}
	if err := g.redisRepo.SetGeneration(ctx, gen, ttl); err != nil {
		g.logger.Warnf("failed to cache generation %s: %v", gen.GenerationID, err)
	}
}

// Provider statuses {queued, running} persist as {pending, processing};
// terminal statuses pass through unchanged.
func mapJobStatus(status aivideo.JobStatus) models.GenerationStatus {
	switch status {
	case aivideo.JobQueued:
		return models.GenerationPending
	case aivideo.JobRunning:
		return models.GenerationProcessing
	case aivideo.JobSucceeded:
		return models.GenerationSucceeded
	default:
		return models.GenerationFailed
	}
}

// mergePollResult folds a provider poll into the record. A previously-set
// output field is never overwritten by an absent one.
func mergePollResult(gen *models.Generation, poll *aivideo.JobPollResult) *models.Generation {
	merged := *gen
	merged.Status = mapJobStatus(poll.Status)
	merged.Progress = poll.Progress
	if poll.OutputVideoURL != "" {
		merged.OutputVideoURL = poll.OutputVideoURL
	}
	if poll.OutputThumbnailURL != "" {
		merged.OutputThumbnailURL = poll.OutputThumbnailURL
	}
	if poll.ErrorMessage != "" {
		merged.ErrorMessage = poll.ErrorMessage
	}
	return &merged
}

func pollView(gen *models.Generation) *models.GenerationPollView {
	return &models.GenerationPollView{
		Status:             gen.Status,
		Progress:           gen.Progress,
		OutputVideoURL:     gen.OutputVideoURL,
		OutputThumbnailURL: gen.OutputThumbnailURL,
		ErrorMessage:       gen.ErrorMessage,
	}
}

func (g *generationUC) GetGeneration(ctx context.Context, generationID uuid.UUID) (*models.Generation, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, generations.ErrUnauthorized
	}
	gen, _, err := g.loadGeneration(ctx, generationID)
	if err != nil {
		return nil, err
	}
	if gen.UserID != user.UserID {
		return nil, generations.ErrNotFound
	}
	return gen, nil
}

func (g *generationUC) ListGenerations(ctx context.Context, pagination *utils.Pagination) (*models.GenerationList, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, generations.ErrUnauthorized
	}
	if pagination == nil {
		pagination = &utils.Pagination{Page: 1, Size: 10}
	}
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Size < 1 || pagination.Size > 100 {
		pagination.Size = 10
	}
	list, err := g.genRepo.GetGenerations(ctx, user.UserID, pagination)
	if err != nil {
		g.logger.Errorf("ListGenerations - GetGenerations error: %v", err)
		return nil, fmt.Errorf("failed to fetch generations: %w", err)
	}
	return list, nil
}

func (g *generationUC) DeleteGeneration(ctx context.Context, generationID uuid.UUID) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return generations.ErrUnauthorized
	}
	gen, _, err := g.loadGeneration(ctx, generationID)
	if err != nil {
		return err
	}
	if gen.UserID != user.UserID {
		return generations.ErrNotFound
	}
	if err = g.genRepo.DeleteGeneration(ctx, user.UserID, generationID); err != nil {
		g.logger.Errorf("DeleteGeneration - delete error: %v", err)
		return generations.ErrNotFound
	}
	if err = g.redisRepo.DeleteGeneration(ctx, generationID); err != nil {
		g.logger.Warnf("failed to evict cached generation %s: %v", generationID, err)
	}
	if key, ok := g.assetKey(gen.InputAssetURL); ok {
		if err = g.awsRepo.RemoveObject(ctx, g.cfg.S3.AssetBucket, key); err != nil {
			g.logger.Warnf("failed to remove input asset %s: %v", key, err)
		}
	}
	return nil
}

// assetKey maps an input asset URL back to its object key, but only for
// URLs under our own asset bucket. Third-party URLs are left alone.
func (g *generationUC) assetKey(assetURL string) (string, bool) {
	if assetURL == "" {
		return "", false
	}
	prefix := fmt.Sprintf("%s/%s/", strings.TrimRight(g.cfg.S3.Endpoint, "/"), g.cfg.S3.AssetBucket)
	if !strings.HasPrefix(assetURL, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(assetURL, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

func (g *generationUC) GetAssetUploadURL(ctx context.Context, input *models.AssetUploadInput) (*models.AssetUploadResult, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, generations.ErrUnauthorized
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		return nil, &generations.ValidationError{Reason: fmt.Sprintf("Invalid request: %v", err)}
	}

	input.BucketName = g.cfg.S3.AssetBucket
	input.Key = fmt.Sprintf("assets/%s/%s", user.UserID, input.Name)

	uploadURL, err := g.awsRepo.GetPresignedPutURL(ctx, input)
	if err != nil {
		g.logger.Errorf("GetAssetUploadURL - GetPresignedPutURL error: %v", err)
		return nil, fmt.Errorf("failed to generate upload URL: %v", err)
	}

	return &models.AssetUploadResult{
		UploadURL: uploadURL,
		AssetURL:  fmt.Sprintf("%s/%s/%s", strings.TrimRight(g.cfg.S3.Endpoint, "/"), input.BucketName, input.Key),
		Key:       input.Key,
	}, nil
}

func (g *generationUC) EnhancePrompt(ctx context.Context, input *models.EnhancePromptInput) (*models.EnhancePromptResult, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, generations.ErrUnauthorized
	}
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, &generations.ValidationError{Reason: "Prompt is required"}
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		return nil, &generations.ValidationError{Reason: fmt.Sprintf("Invalid request: %v", err)}
	}

	enhanced, err := g.enhancer.EnhancePrompt(ctx, input.Prompt)
	if err != nil {
		g.logger.Errorf("EnhancePrompt - user %s enhancer %s error: %v", user.UserID, g.enhancer.Name(), err)
		return nil, fmt.Errorf("failed to enhance prompt: %w", err)
	}
	return &models.EnhancePromptResult{EnhancedPrompt: enhanced}, nil
}
