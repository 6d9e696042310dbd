package generations

import (
	"context"

	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/clipcraft/shortvid-backend/pkg/utils"
	"github.com/google/uuid"
)

type Repository interface {
	CreateGeneration(ctx context.Context, gen *models.Generation) (*models.Generation, error)
	GetGenerationByID(ctx context.Context, generationID uuid.UUID) (*models.Generation, error)
	UpdateStartResult(ctx context.Context, generationID uuid.UUID, providerJobID string, status models.GenerationStatus) error
	UpdateFromPoll(ctx context.Context, gen *models.Generation) error
	MarkFailed(ctx context.Context, generationID uuid.UUID, errorMessage string) error
	GetGenerations(ctx context.Context, userID uuid.UUID, pagination *utils.Pagination) (*models.GenerationList, error)
	DeleteGeneration(ctx context.Context, userID uuid.UUID, generationID uuid.UUID) error
}
