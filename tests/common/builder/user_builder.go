//go:build unit || e2e

package builder

import (
	"time"

	"event-booking/internal/domain/user"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
	"event-booking/internal/usecase/queries"
	"event-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "member",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(name, email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:           uuid.New(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgconv.TimeToPgtype(now),
		UpdatedAt:    pgconv.TimeToPgtype(now),
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	now := time.Now()
	return &queries.UserView{
		ID:        uuid.New(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           uuid.New(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
