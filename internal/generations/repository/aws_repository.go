package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/clipcraft/shortvid-backend/internal/generations"
	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Source assets for image2video / video2video generations.
var allowedAssetPattern = regexp.MustCompile(`.+\.(mp4|mov|webm|m4v|png|jpg|jpeg|webp|gif)$`)

type awsRepository struct {
	client        *s3.Client
	preSignClient *s3.PresignClient
}

func NewAwsRepository(awsClient *s3.Client, preSignClient *s3.PresignClient) generations.AWSRepository {
	return &awsRepository{
		preSignClient: preSignClient,
		client:        awsClient,
	}
}

func (a *awsRepository) GetPresignedPutURL(ctx context.Context, input *models.AssetUploadInput) (string, error) {
	if !allowedAssetPattern.MatchString(input.Name) {
		return "", fmt.Errorf("invalid file format: %s", input.Name)
	}
	putObjectReq, err := a.preSignClient.PresignPutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &input.BucketName,
			Key:           &input.Key,
			ContentLength: &input.Size,
			ContentType:   &input.MimeType,
		},
		s3.WithPresignExpires(60*time.Minute),
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign put object : %w", err)
	}
	return putObjectReq.URL, nil
}

func (a *awsRepository) RemoveObject(ctx context.Context, bucket, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to remove file : %w", err)
	}
	return nil
}
