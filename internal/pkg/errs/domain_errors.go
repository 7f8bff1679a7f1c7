package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidImage  = errors.New("invalid event image")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyBooked    = errors.New("event already booked by user")
	ErrBookingNotOwned  = errors.New("booking not owned by user")
	ErrInvalidReference = errors.New("invalid reference format")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")

	// Query errors
	ErrInvalidCursor = errors.New("invalid cursor")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
