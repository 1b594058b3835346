package components

import (
	"fleet-dispatch/internal/handler"
	"fleet-dispatch/internal/handler/api"
	"fleet-dispatch/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewCapabilityHandler,
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewRatingHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	capability *api.CapabilityHandler,
	booking *api.BookingHandler,
	reservation *api.ReservationHandler,
	rating *api.RatingHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Capability:   capability,
		Booking:      booking,
		Reservation:  reservation,
		Rating:       rating,
	}
}
