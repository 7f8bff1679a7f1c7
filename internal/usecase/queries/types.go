package queries

import (
	"time"

	"github.com/google/uuid"
)

// EventView represents read-optimized event data
type EventView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Price       float64   `json:"price"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdminEventView is an event row on the admin listing, with its live booking count
type AdminEventView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date"`
	Venue        string    `json:"venue"`
	Price        float64   `json:"price"`
	Image        *string   `json:"image,omitempty"`
	BookingCount int64     `json:"booking_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EventSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Price       float64   `json:"price"`
	Image       *string   `json:"image,omitempty"`
}

// BookingView is a booking enriched with the booked event
type BookingView struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	EventID   uuid.UUID    `json:"event_id"`
	Event     EventSummary `json:"event"`
	CreatedAt time.Time    `json:"created_at"`
}

type AdminBookingView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	EventID       uuid.UUID `json:"event_id"`
	EventName     string    `json:"event_name"`
	EventCategory string    `json:"event_category"`
	EventDate     time.Time `json:"event_date"`
	EventVenue    string    `json:"event_venue"`
	EventPrice    float64   `json:"event_price"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserView never carries the password hash
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type DashboardView struct {
	TotalEvents    int64 `json:"total_events"`
	UpcomingEvents int64 `json:"upcoming_events"`
	TotalBookings  int64 `json:"total_bookings"`
	TotalUsers     int64 `json:"total_users"`
}
