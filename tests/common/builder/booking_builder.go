//go:build unit || e2e

package builder

import (
	"time"

	"event-booking/internal/domain/booking"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EventID   uuid.UUID
	CreatedAt time.Time
	Event     *EventBuilder
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		EventID:   uuid.New(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		Event:     NewEventBuilder(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.UserID, b.EventID, b.CreatedAt)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:        b.ID,
		UserID:    b.UserID,
		EventID:   b.EventID,
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	ev := b.Event
	return &queries.BookingView{
		ID:      b.ID,
		UserID:  b.UserID,
		EventID: b.EventID,
		Event: queries.EventSummary{
			ID:          b.EventID,
			Name:        ev.Name,
			Description: ev.Description,
			Category:    ev.Category,
			Date:        ev.Date,
			Venue:       ev.Venue,
			Price:       ev.Price,
			Image:       ev.Image,
		},
		CreatedAt: b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithEventID(id uuid.UUID) *BookingBuilder {
	b.EventID = id
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}
