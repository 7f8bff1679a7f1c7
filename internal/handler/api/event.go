package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "event-booking/internal/handler/dto/request"
	resdto "event-booking/internal/handler/dto/response"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/pkg/patch"
	"event-booking/internal/usecase/commands"
	"event-booking/internal/usecase/queries"
	"event-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const imageFormField = "image"

type EventHandler struct {
	cmds commands.EventCommands
	q    queries.EventQueries
}

func NewEventHandler(cmds commands.EventCommands, q queries.EventQueries) *EventHandler {
	return &EventHandler{cmds: cmds, q: q}
}

// @Summary List events
// @Description List events ordered by date, optionally filtered by category and free text
// @Tags events
// @Produce json
// @Param category query string false "Exact category"
// @Param search query string false "Case-insensitive text search"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {array} resdto.EventResponse
// @Header 200 {integer} X-Total-Count "Total number of matching events"
// @Failure 400 {object} httperr.Response
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	var query reqdto.ListEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	page := patch.Coalesce(query.Page, 1)
	limit := patch.Coalesce(query.Limit, queries.DefaultEventPageSize)
	filter := queries.EventFilter{Category: query.Category, Search: query.Search}

	result, err := h.q.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.JSON(http.StatusOK, resdto.FromEventList(result.Items))
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Create event
// @Description Create an event from JSON or multipart form data with an optional image
// @Tags events
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	image, closeImage, err := imageFromRequest(c)
	if err != nil {
		badRequest(c, err, "Invalid image upload")
		return
	}
	defer closeImage()

	id, err := h.cmds.Create(c.Request.Context(), req.ToDraft(), image)
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Update event
// @Description Overwrite the supplied fields of an event; a new image replaces the old one
// @Tags events
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UpdateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	image, closeImage, err := imageFromRequest(c)
	if err != nil {
		badRequest(c, err, "Invalid image upload")
		return
	}
	defer closeImage()

	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch(), image); err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Delete event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Event deleted successfully"})
}

// eventIDParam treats a malformed id like an unknown one.
func eventIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.Mark(err, errs.ErrEventNotFound))
		return uuid.Nil, false
	}
	return id, true
}

// imageFromRequest returns the optional multipart image. The returned func closes it.
func imageFromRequest(c *gin.Context) (*shared.ImageUpload, func(), error) {
	noop := func() {}
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, nil
	}

	fh, err := c.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &shared.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, func() { _ = f.Close() }, nil
}
