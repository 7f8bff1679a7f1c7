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
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register
// @Description Create a member account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary User logout
// @Description Revoke the presented token until it expires
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID, expiresAt, ok := middleware.GetToken(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Authentication required", nil)
		return
	}
	if err := h.cmds.Logout(c.Request.Context(), tokenID, expiresAt); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
