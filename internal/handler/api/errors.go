package api

import (
	"net/http"

	"event-booking/internal/handler/httperr"
	"event-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first sentinel found in the chain decides the response.
var errorMappings = []errorMapping{
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrInvalidImage, http.StatusBadRequest, "Invalid image"},
	{errs.ErrInvalidReference, http.StatusBadRequest, "Invalid event reference"},
	{errs.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
	{errs.ErrBookingNotOwned, http.StatusForbidden, "Not authorized to cancel this booking"},
	{errs.ErrEventNotFound, http.StatusNotFound, "Event not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrAlreadyBooked, http.StatusConflict, "You have already booked this event"},
	{errs.ErrEmailTaken, http.StatusConflict, "Email already registered"},
}

// respondError translates use case errors into the JSON error envelope.
// Anything unclassified is reported as an opaque 500.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
