package commands

import (
	"context"
	"log/slog"
	"time"

	"event-booking/internal/domain/auth"
	"event-booking/internal/domain/user"
	"event-booking/internal/infra"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/pkg/jwt"
	"event-booking/internal/pkg/password"
	"event-booking/internal/usecase/shared"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrPasswordHashing = errs.New("password hashing failed")
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *shared.UserSnapshot
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	EnsureAdmin(ctx context.Context, req RegisterRequest) error
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	jwtService  *jwt.Service
	revocations shared.TokenRevocationStore
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, revocations shared.TokenRevocationStore) AuthCommands {
	return &authCommandsImpl{
		uow:         uow,
		jwtService:  jwtService,
		revocations: revocations,
	}
}

// Register always creates a member; admins only come from EnsureAdmin.
func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	reg, err := auth.NewRegistration(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(reg.Credentials().Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	member := user.NewMember(reg.Name(), reg.Credentials().Email(), hash)

	var created *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, cerr := tx.Users().Create(ctx, tx.DB(), member)
		if cerr != nil {
			return cerr
		}
		created = u
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, err
	}

	return a.issue(snapshotOf(created))
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := password.ComparePassword(snap.PasswordHash, credentials.Password().Value()); err != nil {
		slog.Warn("login failed", "user_id", snap.ID)
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	result, err := a.issue(snap)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID)
	})
	if err != nil {
		// Login already succeeded; only the last_login stamp is lost
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return result, nil
}

// Logout revokes the presented token until it would have expired.
func (a *authCommandsImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return errs.ErrUnauthenticated
	}
	if err := a.revocations.Revoke(ctx, tokenID, expiresAt); err != nil {
		return errs.Wrap(err, "failed to revoke token")
	}
	return nil
}

// EnsureAdmin creates the configured administrator or promotes an existing account with that email.
func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, req RegisterRequest) error {
	reg, err := auth.NewRegistration(req.Name, req.Email, req.Password)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	email := reg.Credentials().Email()

	snap, err := a.uow.CommandReads().UserByEmail(ctx, email.Value())
	switch {
	case err == nil:
		if snap.Role == user.RoleAdmin.String() {
			return nil
		}
		slog.Info("promoting existing account to admin", "user_id", snap.ID)
		return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().UpdateRole(ctx, tx.DB(), snap.ID, user.RoleAdmin)
		})
	case !infra.IsKind(err, infra.KindNotFound):
		return err
	}

	hash, err := password.HashPassword(reg.Credentials().Password().Value())
	if err != nil {
		return errs.Mark(err, ErrPasswordHashing)
	}
	admin := user.NewUser(reg.Name(), email, hash, user.RoleAdmin)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, cerr := tx.Users().Create(ctx, tx.DB(), admin)
		return cerr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Another instance seeded it concurrently
			return nil
		}
		return err
	}
	slog.Info("admin account created", "user_id", admin.ID())
	return nil
}

func (a *authCommandsImpl) issue(snap *shared.UserSnapshot) (*AuthResult, error) {
	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	public := *snap
	public.PasswordHash = ""
	return &AuthResult{
		Token:     token,
		ExpiresAt: time.Now().Add(a.jwtService.TokenDuration()),
		User:      &public,
	}, nil
}

func snapshotOf(u *user.User) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		LastLogin: u.LastLogin(),
		CreatedAt: u.CreatedAt(),
	}
}
