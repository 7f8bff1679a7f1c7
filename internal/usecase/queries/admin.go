package queries

import (
	"context"
	"time"

	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/clock"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AdminReadStore takes the executor explicitly so that the dashboard counts can share one snapshot.
type AdminReadStore interface {
	Dashboard(ctx context.Context, db sqlc.DBTX, now time.Time) (*DashboardView, error)
	ListEvents(ctx context.Context, db sqlc.DBTX, after *CursorKey, limit int32) ([]*AdminEventView, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, after *CursorKey, limit int32) ([]*AdminBookingView, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, after *CursorKey, limit int32) ([]*UserView, error)
}

type AdminQueries interface {
	Dashboard(ctx context.Context) (*DashboardView, error)
	ListEvents(ctx context.Context, cursor *Cursor, limit int) ([]*AdminEventView, *Cursor, error)
	ListBookings(ctx context.Context, cursor *Cursor, limit int) ([]*AdminBookingView, *Cursor, error)
	ListUsers(ctx context.Context, cursor *Cursor, limit int) ([]*UserView, *Cursor, error)
}

type adminQueriesImpl struct {
	uow   shared.UnitOfWork
	store AdminReadStore
	clock clock.Clock
}

func NewAdminQueries(uow shared.UnitOfWork, store AdminReadStore, clk clock.Clock) AdminQueries {
	return &adminQueriesImpl{uow: uow, store: store, clock: clk}
}

// Dashboard is recomputed on every call.
func (q *adminQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	now := q.clock.Now()

	var view *DashboardView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.store.Dashboard(ctx, db, now)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *adminQueriesImpl) ListEvents(ctx context.Context, cursor *Cursor, limit int) ([]*AdminEventView, *Cursor, error) {
	return listWithCursor(ctx, q.uow, cursor, limit,
		q.store.ListEvents,
		func(v *AdminEventView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
}

func (q *adminQueriesImpl) ListBookings(ctx context.Context, cursor *Cursor, limit int) ([]*AdminBookingView, *Cursor, error) {
	return listWithCursor(ctx, q.uow, cursor, limit,
		q.store.ListBookings,
		func(v *AdminBookingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
}

func (q *adminQueriesImpl) ListUsers(ctx context.Context, cursor *Cursor, limit int) ([]*UserView, *Cursor, error) {
	return listWithCursor(ctx, q.uow, cursor, limit,
		q.store.ListUsers,
		func(v *UserView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
}

type keysetLister[T any] func(ctx context.Context, db sqlc.DBTX, after *CursorKey, limit int32) ([]T, error)

func listWithCursor[T any](
	ctx context.Context,
	uow shared.UnitOfWork,
	cursor *Cursor,
	limit int,
	list keysetLister[T],
	key func(T) (time.Time, uuid.UUID),
) ([]T, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidCursor)
	}

	var rows []T
	err = uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var lerr error
		rows, lerr = list(ctx, db, after, int32(limit+1)) // #nosec G115 -- bounded by ValidateLimit
		return lerr
	})
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items, next := paginate(rows, limit, key)
	if items == nil {
		items = []T{}
	}
	return items, next, nil
}
