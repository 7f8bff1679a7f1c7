package usecase

import (
	"context"
	"time"

	"event-booking/internal/domain/user"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/pkg/jwt"
	"event-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenRevoked = errs.New("token revoked")
	// ErrRevocationCheckFailed means the token could not be checked, not that it is bad.
	ErrRevocationCheckFailed = errs.New("token revocation check failed")
)

// Identity is what a verified bearer token says about its holder.
type Identity struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenID   string
	ExpiresAt time.Time
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*Identity, error)
}

type tokenValidatorImpl struct {
	jwtService  *jwt.Service
	revocations shared.TokenRevocationStore
}

func NewTokenValidator(jwtService *jwt.Service, revocations shared.TokenRevocationStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService:  jwtService,
		revocations: revocations,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (*Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, jwt.ErrInvalidToken)
	}

	revoked, err := t.revocations.IsRevoked(ctx, claims.TokenID())
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrRevocationCheckFailed), errs.ErrDatabaseOperationFailed)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return &Identity{
		UserID:    claims.UserID,
		Role:      role,
		TokenID:   claims.TokenID(),
		ExpiresAt: claims.ExpiresAtTime(),
	}, nil
}
