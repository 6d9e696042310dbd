package generations

import (
	"context"

	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/clipcraft/shortvid-backend/pkg/utils"
	"github.com/google/uuid"
)

type UseCase interface {
	StartGeneration(ctx context.Context, input *models.StartGenerationInput) (*models.StartGenerationResult, error)
	PollGeneration(ctx context.Context, generationID uuid.UUID) (*models.GenerationPollView, error)

	GetGeneration(ctx context.Context, generationID uuid.UUID) (*models.Generation, error)
	ListGenerations(ctx context.Context, pagination *utils.Pagination) (*models.GenerationList, error)
	DeleteGeneration(ctx context.Context, generationID uuid.UUID) error

	GetAssetUploadURL(ctx context.Context, input *models.AssetUploadInput) (*models.AssetUploadResult, error)

	EnhancePrompt(ctx context.Context, input *models.EnhancePromptInput) (*models.EnhancePromptResult, error)
}
