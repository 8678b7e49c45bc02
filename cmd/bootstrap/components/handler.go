package components

import (
	"venue-booking/internal/handler"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewRefreshHandler,
		func(cfg config.Config) config.CORSConfig { return cfg.CORS },
		func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
		api.NewStreamHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Refresh      *api.RefreshHandler
	Stream       *api.StreamHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Availability: p.Availability,
		Reservation:  p.Reservation,
		Refresh:      p.Refresh,
		Stream:       p.Stream,
	}
}
