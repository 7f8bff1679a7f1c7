package readstore

import (
	"context"

	"event-booking/internal/infra"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListBookingsByUserRow, error)
	BookingExists(ctx context.Context, db sqlc.DBTX, arg sqlc.BookingExistsParams) (bool, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.Float64FromNumeric(row.EventPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert event price", err)
		}
		views = append(views, &queries.BookingView{
			ID:      row.ID,
			UserID:  row.UserID,
			EventID: row.EventID,
			Event: queries.EventSummary{
				ID:          row.EventID,
				Name:        row.EventName,
				Description: row.EventDescription,
				Category:    row.EventCategory,
				Date:        pgconv.TimeFromPgtype(row.EventDate),
				Venue:       row.EventVenue,
				Price:       price,
				Image:       pgconv.StringPtrFromPgtype(row.EventImage),
			},
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *BookingReadStore) Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	ok, err := r.queries.BookingExists(ctx, r.db, sqlc.BookingExistsParams{UserID: userID, EventID: eventID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking existence", err)
	}
	return ok, nil
}
