package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingUser  = errors.New("booking requires a user")
	ErrMissingEvent = errors.New("booking requires an event")
	ErrNotOwner     = errors.New("booking belongs to another user")
)

// Booking records that a user reserved a spot at an event. It is never updated.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	eventID   uuid.UUID
	createdAt time.Time
}

func NewBooking(userID, eventID uuid.UUID) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if eventID == uuid.Nil {
		return nil, ErrMissingEvent
	}
	return &Booking{
		id:      uuid.New(),
		userID:  userID,
		eventID: eventID,
	}, nil
}

func ReconstructBooking(id, userID, eventID uuid.UUID, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		eventID:   eventID,
		createdAt: createdAt,
	}
}

// EnsureOwnedBy returns ErrNotOwner unless userID made the booking.
func (b *Booking) EnsureOwnedBy(userID uuid.UUID) error {
	if b.userID != userID {
		return ErrNotOwner
	}
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) EventID() uuid.UUID   { return b.eventID }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
