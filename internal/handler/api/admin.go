package api

import (
	"net/http"

	reqdto "event-booking/internal/handler/dto/request"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/pkg/patch"
	"event-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q queries.AdminQueries
}

func NewAdminHandler(q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{q: q}
}

// @Summary Dashboard
// @Description Event, booking and member counts, computed on every request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.q.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(view))
}

// @Summary Admin event list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor for keyset pagination"
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.AdminEventResponse]
// @Failure 400 {object} httperr.Response
// @Router /admin/events [get]
func (h *AdminHandler) ListEvents(c *gin.Context) {
	cursor, limit, ok := adminPageParams(c)
	if !ok {
		return
	}
	items, next, err := h.q.ListEvents(c.Request.Context(), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage[resdto.AdminEventResponse](items, next))
}

// @Summary Admin booking list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor for keyset pagination"
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.AdminBookingResponse]
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	cursor, limit, ok := adminPageParams(c)
	if !ok {
		return
	}
	items, next, err := h.q.ListBookings(c.Request.Context(), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage[resdto.AdminBookingResponse](items, next))
}

// @Summary Admin user list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor for keyset pagination"
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.UserResponse]
// @Failure 400 {object} httperr.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	cursor, limit, ok := adminPageParams(c)
	if !ok {
		return
	}
	items, next, err := h.q.ListUsers(c.Request.Context(), cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage[resdto.UserResponse](items, next))
}

func adminPageParams(c *gin.Context) (*queries.Cursor, int, bool) {
	var query reqdto.AdminListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return nil, 0, false
	}
	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}
	return cursor, patch.Coalesce(query.Limit, queries.DefaultListLimit), true
}
