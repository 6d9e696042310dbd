package generations

import (
	"context"

	"github.com/clipcraft/shortvid-backend/internal/models"
)

type AWSRepository interface {
	GetPresignedPutURL(ctx context.Context, input *models.AssetUploadInput) (string, error)
	RemoveObject(ctx context.Context, bucket, key string) error
}
