package converter

import (
	"event-booking/internal/domain/booking"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:      b.ID(),
		UserID:  b.UserID(),
		EventID: b.EventID(),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(row.ID, row.UserID, row.EventID, pgconv.TimeFromPgtype(row.CreatedAt))
}
