package shared

import (
	"context"

	"event-booking/internal/domain/booking"
	"event-booking/internal/domain/event"
	"event-booking/internal/domain/user"
	sqlc "event-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Events() EventRepository
	Bookings() BookingRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	EventExists(ctx context.Context, id uuid.UUID) (bool, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type EventRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, e *event.Event) (*event.Event, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*event.Event, error)
	Update(ctx context.Context, tx sqlc.DBTX, e *event.Event) (*event.Event, error)
	// Delete returns the image reference the deleted row held.
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*string, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdateRole(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, role user.Role) error
}
