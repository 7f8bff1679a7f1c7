package repository

import (
	"context"

	"event-booking/internal/domain/user"
	"event-booking/internal/infra"
	"event-booking/internal/infra/repository/converter"
	sqlc "event-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

// Create reports a taken email (case-insensitive) as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	created, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user row", err)
	}
	return created, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, role user.Role) error {
	affected, err := r.queries.UpdateUserRole(ctx, tx, sqlc.UpdateUserRoleParams{ID: userID, Role: role.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
