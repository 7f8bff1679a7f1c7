package response

import (
	"time"

	"event-booking/internal/domain/booking"
	"event-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Price       float64   `json:"price"`
	Image       *string   `json:"image"`
}

type BookingResponse struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"userId"`
	EventID   uuid.UUID            `json:"eventId"`
	Event     EventSummaryResponse `json:"event"`
	CreatedAt time.Time            `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := copyInto[BookingResponse](v)
	resp.Event = copyInto[EventSummaryResponse](&v.Event)
	return &resp
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}

// CreatedBookingResponse is the bare booking row returned by create, without the event.
type CreatedBookingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	EventID   uuid.UUID `json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingCreatedResponse struct {
	Message string                 `json:"message"`
	Booking CreatedBookingResponse `json:"booking"`
}

func FromCreatedBooking(b *booking.Booking) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		Message: "Event booked successfully",
		Booking: CreatedBookingResponse{
			ID:        b.ID(),
			UserID:    b.UserID(),
			EventID:   b.EventID(),
			CreatedAt: b.CreatedAt(),
		},
	}
}

type BookingCheckResponse struct {
	IsReserved bool `json:"isReserved"`
}

type AdminBookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	UserName      string    `json:"userName"`
	UserEmail     string    `json:"userEmail"`
	EventID       uuid.UUID `json:"eventId"`
	EventName     string    `json:"eventName"`
	EventCategory string    `json:"eventCategory"`
	EventDate     time.Time `json:"eventDate"`
	EventVenue    string    `json:"eventVenue"`
	EventPrice    float64   `json:"eventPrice"`
	CreatedAt     time.Time `json:"createdAt"`
}
