package components

import (
	"event-booking/internal/handler"
	"event-booking/internal/handler/api"
	"event-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEventHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, event *api.EventHandler, booking *api.BookingHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Event:   event,
		Booking: booking,
		Admin:   admin,
	}
}
