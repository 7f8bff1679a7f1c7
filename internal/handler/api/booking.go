package api

import (
	"net/http"

	reqdto "event-booking/internal/handler/dto/request"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/handler/httperr"
	"event-booking/internal/handler/middleware"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/commands"
	"event-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book an event
// @Description Reserve a seat at an event. A second booking of the same event is rejected.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), userID, req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreatedBooking(created))
}

// @Summary My bookings
// @Description List the caller's bookings, newest first, each with its event
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/user [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.q.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Check booking
// @Description Report whether the caller has booked the event
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} resdto.BookingCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings/check/{eventId} [get]
func (h *BookingHandler) Check(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	reserved, err := h.q.IsReserved(c.Request.Context(), userID, c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingCheckResponse{IsReserved: reserved})
}

// @Summary Cancel booking
// @Description Cancel one of the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Booking cancelled successfully"})
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Authentication required", nil)
		return uuid.Nil, false
	}
	return userID, true
}
