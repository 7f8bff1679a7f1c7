package request

// CreateBookingRequest keeps the event id as text; malformed ids are rejected by the booking command.
type CreateBookingRequest struct {
	EventID string `json:"eventId" binding:"required"`
}
