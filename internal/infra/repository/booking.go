package repository

import (
	"context"

	"event-booking/internal/domain/booking"
	"event-booking/internal/infra"
	"event-booking/internal/infra/repository/converter"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

// Create relies on bookings_user_event_key; a duplicate surfaces as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
