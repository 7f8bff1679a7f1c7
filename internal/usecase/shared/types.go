package shared

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// UserSnapshot is the write-side view of an account, including its password hash.
type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	LastLogin    *time.Time
	CreatedAt    time.Time
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ImageStore persists event images and hands back their public reference.
type ImageStore interface {
	Save(ctx context.Context, img ImageUpload) (string, error)
	Remove(ctx context.Context, ref string) error
}

// TokenRevocationStore remembers revoked token ids until they would have expired anyway.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
