package response

import (
	"time"

	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Price       float64   `json:"price"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	resp := copyInto[EventResponse](v)
	return &resp
}

func FromEventList(items []*queries.EventView) []*EventResponse {
	res := make([]*EventResponse, len(items))
	for i, it := range items {
		res[i] = FromEventView(it)
	}
	return res
}

type AdminEventResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date"`
	Venue        string    `json:"venue"`
	Price        float64   `json:"price"`
	Image        *string   `json:"image"`
	BookingCount int64     `json:"bookingCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
