package readstore

import (
	"context"

	"event-booking/internal/infra"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventReadQueries interface {
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	ListEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEventsParams) ([]sqlc.Events, error)
	CountEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.CountEventsParams) (int64, error)
	EventExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event by id", err)
	}
	return toEventView(row)
}

func (r *EventReadStore) List(ctx context.Context, filter queries.EventFilter, limit, offset int32) ([]*queries.EventView, error) {
	params := sqlc.ListEventsParams{
		Category: pgconv.StringPtrToPgtype(filter.Category),
		Search:   searchPattern(filter.Search),
		Limit:    limit,
		Offset:   offset,
	}
	rows, err := r.queries.ListEvents(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}

	views := make([]*queries.EventView, 0, len(rows))
	for _, row := range rows {
		v, err := toEventView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *EventReadStore) Count(ctx context.Context, filter queries.EventFilter) (int64, error) {
	params := sqlc.CountEventsParams{
		Category: pgconv.StringPtrToPgtype(filter.Category),
		Search:   searchPattern(filter.Search),
	}
	total, err := r.queries.CountEvents(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count events", err)
	}
	return total, nil
}

func (r *EventReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.EventExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check event existence", err)
	}
	return ok, nil
}

func toEventView(row sqlc.Events) (*queries.EventView, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert event price", err)
	}
	return &queries.EventView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		Date:        pgconv.TimeFromPgtype(row.Date),
		Venue:       row.Venue,
		Price:       price,
		Image:       pgconv.StringPtrFromPgtype(row.Image),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
