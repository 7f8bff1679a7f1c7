package readstore

import (
	"context"
	"time"

	"event-booking/internal/domain/user"
	"event-booking/internal/infra"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
	"event-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AdminReadQueries interface {
	CountEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.CountEventsParams) (int64, error)
	CountUpcomingEvents(ctx context.Context, db sqlc.DBTX, date pgtype.Timestamptz) (int64, error)
	CountBookings(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountUsersByRole(ctx context.Context, db sqlc.DBTX, role string) (int64, error)
	ListAdminEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAdminEventsParams) ([]sqlc.ListAdminEventsRow, error)
	ListAdminBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAdminBookingsParams) ([]sqlc.ListAdminBookingsRow, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.ListUsersRow, error)
}

type AdminReadStore struct {
	queries AdminReadQueries
}

func NewAdminReadStore(queries AdminReadQueries) *AdminReadStore {
	return &AdminReadStore{queries: queries}
}

// Dashboard issues every count on db; callers pass a read-only transaction for a shared snapshot.
func (r *AdminReadStore) Dashboard(ctx context.Context, db sqlc.DBTX, now time.Time) (*queries.DashboardView, error) {
	totalEvents, err := r.queries.CountEvents(ctx, db, sqlc.CountEventsParams{})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count events", err)
	}
	upcoming, err := r.queries.CountUpcomingEvents(ctx, db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count upcoming events", err)
	}
	bookings, err := r.queries.CountBookings(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	members, err := r.queries.CountUsersByRole(ctx, db, user.RoleMember.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count members", err)
	}

	return &queries.DashboardView{
		TotalEvents:    totalEvents,
		UpcomingEvents: upcoming,
		TotalBookings:  bookings,
		TotalUsers:     members,
	}, nil
}

func (r *AdminReadStore) ListEvents(ctx context.Context, db sqlc.DBTX, after *queries.CursorKey, limit int32) ([]*queries.AdminEventView, error) {
	createdAt, id := cursorParams(after)
	rows, err := r.queries.ListAdminEvents(ctx, db, sqlc.ListAdminEventsParams{
		AfterCreatedAt: createdAt,
		AfterID:        id,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admin events", err)
	}

	views := make([]*queries.AdminEventView, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.Float64FromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert event price", err)
		}
		views = append(views, &queries.AdminEventView{
			ID:           row.ID,
			Name:         row.Name,
			Description:  row.Description,
			Category:     row.Category,
			Date:         pgconv.TimeFromPgtype(row.Date),
			Venue:        row.Venue,
			Price:        price,
			Image:        pgconv.StringPtrFromPgtype(row.Image),
			BookingCount: row.BookingCount,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

func (r *AdminReadStore) ListBookings(ctx context.Context, db sqlc.DBTX, after *queries.CursorKey, limit int32) ([]*queries.AdminBookingView, error) {
	createdAt, id := cursorParams(after)
	rows, err := r.queries.ListAdminBookings(ctx, db, sqlc.ListAdminBookingsParams{
		AfterCreatedAt: createdAt,
		AfterID:        id,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admin bookings", err)
	}

	views := make([]*queries.AdminBookingView, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.Float64FromNumeric(row.EventPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert event price", err)
		}
		views = append(views, &queries.AdminBookingView{
			ID:            row.ID,
			UserID:        row.UserID,
			UserName:      row.UserName,
			UserEmail:     row.UserEmail,
			EventID:       row.EventID,
			EventName:     row.EventName,
			EventCategory: row.EventCategory,
			EventDate:     pgconv.TimeFromPgtype(row.EventDate),
			EventVenue:    row.EventVenue,
			EventPrice:    price,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *AdminReadStore) ListUsers(ctx context.Context, db sqlc.DBTX, after *queries.CursorKey, limit int32) ([]*queries.UserView, error) {
	createdAt, id := cursorParams(after)
	rows, err := r.queries.ListUsers(ctx, db, sqlc.ListUsersParams{
		AfterCreatedAt: createdAt,
		AfterID:        id,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.UserView{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Role:      row.Role,
			LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

func cursorParams(after *queries.CursorKey) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}
