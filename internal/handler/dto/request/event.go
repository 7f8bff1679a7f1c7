package request

import (
	"time"

	"event-booking/internal/domain/event"
	"event-booking/internal/pkg/patch"
)

// CreateEventRequest binds from JSON or from multipart form fields.
type CreateEventRequest struct {
	Name        string    `json:"name" form:"name" binding:"required,max=255"`
	Description string    `json:"description" form:"description" binding:"required,max=5000"`
	Category    string    `json:"category" form:"category" binding:"required,max=100"`
	Date        time.Time `json:"date" form:"date" binding:"required"`
	Venue       string    `json:"venue" form:"venue" binding:"required,max=255"`
	Price       *float64  `json:"price" form:"price" binding:"required,gte=0"`
}

func (r *CreateEventRequest) ToDraft() event.Draft {
	return event.Draft{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		Venue:       r.Venue,
		Price:       patch.Coalesce(r.Price, 0),
	}
}

type UpdateEventRequest struct {
	Name        *string    `json:"name" form:"name" binding:"omitempty,max=255"`
	Description *string    `json:"description" form:"description" binding:"omitempty,max=5000"`
	Category    *string    `json:"category" form:"category" binding:"omitempty,max=100"`
	Date        *time.Time `json:"date" form:"date"`
	Venue       *string    `json:"venue" form:"venue" binding:"omitempty,max=255"`
	Price       *float64   `json:"price" form:"price" binding:"omitempty,gte=0"`
}

// ToPatch ignores blank text fields; only non-blank values overwrite.
func (r *UpdateEventRequest) ToPatch() event.Patch {
	return event.Patch{
		Name:        patch.NonBlank(r.Name),
		Description: patch.NonBlank(r.Description),
		Category:    patch.NonBlank(r.Category),
		Date:        r.Date,
		Venue:       patch.NonBlank(r.Venue),
		Price:       r.Price,
	}
}

type ListEventsQuery struct {
	Category *string `form:"category"`
	Search   *string `form:"search"`
	Page     *int    `form:"page"`
	Limit    *int    `form:"limit"`
}

type AdminListQuery struct {
	After string `form:"after"`
	Limit *int   `form:"limit" binding:"omitempty,min=1,max=100"`
}
