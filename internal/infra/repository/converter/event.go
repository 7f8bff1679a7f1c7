package converter

import (
	"event-booking/internal/domain/event"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
)

func EventToCreateParams(e *event.Event) (sqlc.CreateEventParams, error) {
	price, err := pgconv.Float64ToNumeric(e.Price().Value())
	if err != nil {
		return sqlc.CreateEventParams{}, err
	}
	return sqlc.CreateEventParams{
		ID:          e.ID(),
		Name:        e.Name(),
		Description: e.Description(),
		Category:    e.Category(),
		Date:        pgconv.TimeToPgtype(e.Date()),
		Venue:       e.Venue(),
		Price:       price,
		Image:       pgconv.StringPtrToPgtype(e.Image()),
	}, nil
}

func EventToUpdateParams(e *event.Event) (sqlc.UpdateEventParams, error) {
	price, err := pgconv.Float64ToNumeric(e.Price().Value())
	if err != nil {
		return sqlc.UpdateEventParams{}, err
	}
	return sqlc.UpdateEventParams{
		ID:          e.ID(),
		Name:        e.Name(),
		Description: e.Description(),
		Category:    e.Category(),
		Date:        pgconv.TimeToPgtype(e.Date()),
		Venue:       e.Venue(),
		Price:       price,
		Image:       pgconv.StringPtrToPgtype(e.Image()),
	}, nil
}

func EventFromRow(row sqlc.Events) (*event.Event, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return event.ReconstructEvent(
		row.ID,
		row.Name,
		row.Description,
		row.Category,
		pgconv.TimeFromPgtype(row.Date),
		row.Venue,
		price,
		pgconv.StringPtrFromPgtype(row.Image),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
