package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clipcraft/shortvid-backend/internal/auth"
	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type authRepo struct {
	db *sqlx.DB
}

func NewAuthRepo(db *sqlx.DB) auth.Repository {
	return &authRepo{
		db: db,
	}
}

func (a *authRepo) Register(ctx context.Context, user *models.User) (*models.User, error) {
	u := &models.User{}
	err := a.db.QueryRowxContext(
		ctx,
		createUser,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.DisplayName,
		&user.AvatarURL,
		&user.Role,
	).StructScan(u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	return u, nil
}

func (a *authRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	u := &models.User{}
	if err := a.db.GetContext(
		ctx,
		u,
		updateUser,
		&user.DisplayName,
		&user.AvatarURL,
		&user.Email,
		&user.UserID,
	); err != nil {
		return nil, fmt.Errorf("failed to update user : %v", err)
	}
	return u, nil
}

func (a *authRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	result, err := a.db.ExecContext(
		ctx,
		deleteUserQuery,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete user %v : ", err)
	}
	rowsEffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rowsaffected %v", err)
	}
	if rowsEffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (a *authRepo) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u := &models.User{}
	if err := a.db.QueryRowxContext(
		ctx,
		getUserQuery,
		userID,
	).StructScan(u); err != nil {
		return nil, fmt.Errorf("failed to get user : %v", err)
	}
	return u, nil
}

func (a *authRepo) FindByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	u := &models.User{}

	if err := a.db.QueryRowxContext(
		ctx,
		getUserByEmail,
		&user.Email,
	).StructScan(u); err != nil {
		return nil, fmt.Errorf("failed to get user :%v", err)
	}
	return u, nil
}
