package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clipcraft/shortvid-backend/internal/generations"
	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type generationRedisRepo struct {
	redisClient *redis.Client
	prefix      string
}

func NewGenerationRedisRepo(redisClient *redis.Client, prefix string) generations.RedisRepository {
	if prefix == "" {
		prefix = "generation:"
	}
	return &generationRedisRepo{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (g *generationRedisRepo) key(generationID uuid.UUID) string {
	return g.prefix + generationID.String()
}

func (g *generationRedisRepo) GetGeneration(ctx context.Context, generationID uuid.UUID) (*models.Generation, error) {
	data, err := g.redisClient.Get(ctx, g.key(generationID)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get cached generation: %w", err)
	}
	gen := &models.Generation{}
	if err = json.Unmarshal(data, gen); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached generation: %w", err)
	}
	return gen, nil
}

func (g *generationRedisRepo) SetGeneration(ctx context.Context, gen *models.Generation, ttl time.Duration) error {
	data, err := json.Marshal(gen)
	if err != nil {
		return fmt.Errorf("failed to marshal generation: %w", err)
	}
	if err = g.redisClient.Set(ctx, g.key(gen.GenerationID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache generation: %w", err)
	}
	return nil
}

func (g *generationRedisRepo) DeleteGeneration(ctx context.Context, generationID uuid.UUID) error {
	if err := g.redisClient.Del(ctx, g.key(generationID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached generation: %w", err)
	}
	return nil
}
