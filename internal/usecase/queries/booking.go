package queries

import (
	"context"

	"event-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
}

type BookingQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	IsReserved(ctx context.Context, userID uuid.UUID, eventRef string) (bool, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// ListForUser returns the user's bookings newest first.
func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	items, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if items == nil {
		items = []*BookingView{}
	}
	return items, nil
}

func (q *bookingQueriesImpl) IsReserved(ctx context.Context, userID uuid.UUID, eventRef string) (bool, error) {
	eventID, err := uuid.Parse(eventRef)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidReference)
	}
	ok, err := q.store.Exists(ctx, userID, eventID)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ok, nil
}
