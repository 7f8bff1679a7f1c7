package converter

import (
	"event-booking/internal/domain/user"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

// UserFromRow rebuilds value objects, so a corrupted row surfaces as an error.
func UserFromRow(row sqlc.Users) (*user.User, error) {
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		name,
		email,
		row.PasswordHash,
		role,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
