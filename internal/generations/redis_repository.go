package generations

import (
	"context"
	"time"

	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/google/uuid"
)

// RedisRepository caches generation records by id. Terminal records get a
// long TTL so repeated polls after completion skip Postgres entirely.
type RedisRepository interface {
	GetGeneration(ctx context.Context, generationID uuid.UUID) (*models.Generation, error)
	SetGeneration(ctx context.Context, gen *models.Generation, ttl time.Duration) error
	DeleteGeneration(ctx context.Context, generationID uuid.UUID) error
}
