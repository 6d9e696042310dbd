package repository

import (
	"context"
	"fmt"

	"github.com/clipcraft/shortvid-backend/internal/generations"
	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/clipcraft/shortvid-backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type generationRepo struct {
	db *sqlx.DB
}

func NewGenerationRepo(db *sqlx.DB) generations.Repository {
	return &generationRepo{
		db: db,
	}
}

func (g *generationRepo) CreateGeneration(ctx context.Context, gen *models.Generation) (*models.Generation, error) {
	created := &models.Generation{}
	if err := g.db.QueryRowxContext(
		ctx,
		createGenerationQuery,
		gen.UserID,
		gen.Mode,
		gen.Prompt,
		gen.TemplateID,
		gen.InputAssetURL,
		gen.Status,
		gen.Progress,
		gen.Settings,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create generation: %w", err)
	}
	return created, nil
}

func (g *generationRepo) GetGenerationByID(ctx context.Context, generationID uuid.UUID) (*models.Generation, error) {
	gen := &models.Generation{}
	if err := g.db.QueryRowxContext(
		ctx,
		getGenerationByIDQuery,
		generationID,
	).StructScan(gen); err != nil {
		return nil, fmt.Errorf("failed to get generation by id: %w", err)
	}
	return gen, nil
}

func (g *generationRepo) UpdateStartResult(ctx context.Context, generationID uuid.UUID, providerJobID string, status models.GenerationStatus) error {
	res, err := g.db.ExecContext(
		ctx,
		updateStartResultQuery,
		providerJobID,
		status,
		generationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update generation start result: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return fmt.Errorf("no generation found to update")
	}
	return nil
}

func (g *generationRepo) UpdateFromPoll(ctx context.Context, gen *models.Generation) error {
	if _, err := g.db.ExecContext(
		ctx,
		updateFromPollQuery,
		gen.Status,
		gen.Progress,
		gen.OutputVideoURL,
		gen.OutputThumbnailURL,
		gen.ErrorMessage,
		gen.GenerationID,
	); err != nil {
		return fmt.Errorf("failed to update generation from poll: %w", err)
	}
	return nil
}

func (g *generationRepo) MarkFailed(ctx context.Context, generationID uuid.UUID, errorMessage string) error {
	if _, err := g.db.ExecContext(
		ctx,
		markFailedQuery,
		errorMessage,
		generationID,
	); err != nil {
		return fmt.Errorf("failed to mark generation failed: %w", err)
	}
	return nil
}

func (g *generationRepo) GetGenerations(ctx context.Context, userID uuid.UUID, pagination *utils.Pagination) (*models.GenerationList, error) {
	var totalCount int
	if err := g.db.GetContext(
		ctx,
		&totalCount,
		getTotalGenerationsByUserIDQuery,
		userID,
	); err != nil {
		return nil, fmt.Errorf("failed to get total generations count: %w", err)
	}
	if totalCount == 0 {
		return &models.GenerationList{
			Generations: make([]*models.Generation, 0),
			TotalCount:  0,
			Page:        pagination.GetPage(),
			PageSize:    pagination.GetSize(),
			HasMore:     false,
		}, nil
	}
	rows, err := g.db.QueryxContext(
		ctx,
		getGenerationsByUserIDQuery,
		userID,
		pagination.GetOffset(),
		pagination.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get generations by user id: %w", err)
	}
	defer rows.Close()
	var gens = make([]*models.Generation, 0, pagination.GetSize())
	for rows.Next() {
		var gen models.Generation
		if err = rows.StructScan(&gen); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		gens = append(gens, &gen)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan generations: %w", err)
	}
	return &models.GenerationList{
		Generations: gens,
		TotalCount:  totalCount,
		Page:        pagination.GetPage(),
		PageSize:    pagination.GetSize(),
		HasMore:     utils.GetHasMore(pagination.GetPage(), totalCount, pagination.GetSize()),
	}, nil
}

func (g *generationRepo) DeleteGeneration(ctx context.Context, userID uuid.UUID, generationID uuid.UUID) error {
	res, err := g.db.ExecContext(
		ctx,
		deleteGenerationQuery,
		generationID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete generation: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return fmt.Errorf("no generation found to delete")
	}
	return nil
}
