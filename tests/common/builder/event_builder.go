//go:build unit || e2e

package builder

import (
	"time"

	"event-booking/internal/domain/event"
	reqdto "event-booking/internal/handler/dto/request"
	sqlc "event-booking/internal/infra/sqlc/generated"
	"event-booking/internal/pkg/pgconv"
	"event-booking/internal/pkg/ptr"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventBuilder struct {
	Name        string
	Description string
	Category    string
	Venue       string
	Date        time.Time
	Price       float64
	Image       *string
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		Name:        "Jazz Night",
		Description: "An evening of live jazz",
		Category:    "Music",
		Venue:       "Blue Note Hall",
		Date:        time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Microsecond),
		Price:       25.0,
	}
}

func (e *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(e)
	return e
}

// Build methods
func (e *EventBuilder) BuildDomain() (*event.Event, error) {
	return event.NewEvent(e.draft(), e.Image)
}

func (e *EventBuilder) BuildInfra() sqlc.Events {
	now := time.Now()
	price, err := pgconv.Float64ToNumeric(e.Price)
	if err != nil {
		panic(err)
	}
	return sqlc.Events{
		ID:          uuid.New(),
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Date:        pgconv.TimeToPgtype(e.Date),
		Venue:       e.Venue,
		Price:       price,
		Image:       pgconv.StringPtrToPgtype(e.Image),
		CreatedAt:   pgconv.TimeToPgtype(now),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}

func (e *EventBuilder) BuildView() *queries.EventView {
	now := time.Now()
	return &queries.EventView{
		ID:          uuid.New(),
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		Venue:       e.Venue,
		Price:       e.Price,
		Image:       e.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (e *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	return reqdto.CreateEventRequest{
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		Venue:       e.Venue,
		Price:       ptr.Of(e.Price),
	}
}

func (e *EventBuilder) draft() event.Draft {
	return event.Draft{
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		Venue:       e.Venue,
		Price:       e.Price,
	}
}

// Fluent builder methods
func (e *EventBuilder) WithName(name string) *EventBuilder {
	e.Name = name
	return e
}

func (e *EventBuilder) WithCategory(category string) *EventBuilder {
	e.Category = category
	return e
}

func (e *EventBuilder) WithDate(date time.Time) *EventBuilder {
	e.Date = date
	return e
}

func (e *EventBuilder) WithPrice(price float64) *EventBuilder {
	e.Price = price
	return e
}

func (e *EventBuilder) WithImage(ref string) *EventBuilder {
	e.Image = &ref
	return e
}

func (e *EventBuilder) AsPast() *EventBuilder {
	e.Date = time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Microsecond)
	return e
}
