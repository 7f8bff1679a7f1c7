package repository

import (
	"context"

	"event-booking/internal/domain/event"
	"event-booking/internal/infra"
	"event-booking/internal/infra/repository/converter"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventWriteQueries interface {
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) (sqlc.Events, error)
	GetEventByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	UpdateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventParams) (sqlc.Events, error)
	DeleteEvent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (pgtype.Text, error)
}

type EventRepository struct {
	queries EventWriteQueries
}

func NewEventRepository(queries EventWriteQueries) *EventRepository {
	return &EventRepository{
		queries: queries,
	}
}

func (r *EventRepository) Create(ctx context.Context, tx sqlc.DBTX, e *event.Event) (*event.Event, error) {
	params, err := converter.EventToCreateParams(e)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert event", err)
	}
	row, err := r.queries.CreateEvent(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create event", err)
	}
	return r.toDomain(row)
}

func (r *EventRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*event.Event, error) {
	row, err := r.queries.GetEventByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}
	return r.toDomain(row)
}

func (r *EventRepository) Update(ctx context.Context, tx sqlc.DBTX, e *event.Event) (*event.Event, error) {
	params, err := converter.EventToUpdateParams(e)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert event", err)
	}
	row, err := r.queries.UpdateEvent(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update event", err)
	}
	return r.toDomain(row)
}

func (r *EventRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*string, error) {
	image, err := r.queries.DeleteEvent(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete event", err)
	}
	return pgconv.StringPtrFromPgtype(image), nil
}

func (r *EventRepository) toDomain(row sqlc.Events) (*event.Event, error) {
	e, err := converter.EventFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert event row", err)
	}
	return e, nil
}
