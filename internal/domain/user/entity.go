package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

// NewMember is the only constructor reachable from self-registration.
func NewMember(name Name, email Email, passwordHash string) *User {
	return NewUser(name, email, passwordHash, RoleMember)
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() Name            { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) IsAdmin() bool         { return u.role == RoleAdmin }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func ReconstructUser(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
