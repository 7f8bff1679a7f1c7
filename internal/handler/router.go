package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-booking/internal/domain/user"
	"event-booking/internal/handler/api"
	"event-booking/internal/handler/middleware"
	"event-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth    *api.AuthHandler
	Event   *api.EventHandler
	Booking *api.BookingHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	// typed request structs reject fields they do not declare
	gin.EnableJsonDecoderDisallowUnknownFields()

	engine.MaxMultipartMemory = cfg.Upload.MaxBytes

	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireRole(user.RoleAdmin)
	requireMember := authMiddleware.RequireRole(user.RoleMember)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		events := apiGroup.Group("/events")
		{
			adminOnly := []gin.HandlerFunc{requireAuth, requireAdmin}
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Event.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Event.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Event.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Event.Delete, Mw: adminOnly},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{requireMember}},
				{Method: http.MethodGet, Path: "/user", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/check/:eventId", Handler: h.Booking.Check},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.Dashboard},
				{Method: http.MethodGet, Path: "/events", Handler: h.Admin.ListEvents},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
