package bootstrap

import (
	"time"

	"venue-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewVenueLocation,
	),
)

func NewVenueLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
