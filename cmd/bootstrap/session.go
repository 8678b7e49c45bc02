package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/infra/layout"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/scheduler"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/session"
	"venue-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

const hubBuffer = 16

var SessionModule = fx.Module("session",
	fx.Provide(
		NewVenue,
		clock.NewRealClock,
		NewBookingContext,
		func() *session.Hub { return session.NewHub(hubBuffer) },
		fx.Annotate(
			NewSession,
			fx.As(fx.Self()),
			fx.As(new(queries.OccupancyReader)),
			fx.As(new(commands.ReservationEngine)),
			fx.As(new(commands.Rebuilder)),
			fx.As(new(scheduler.Rebuilder)),
			fx.As(new(api.ChangeFeed)),
		),
	),
)

func NewVenue(cfg config.Config, logger *slog.Logger) (*venue.Venue, error) {
	v, err := layout.Load(cfg.Booking.VenueLayout)
	if err != nil {
		return nil, err
	}
	logger.Info("Venue layout loaded",
		slog.String("name", v.Name()),
		slog.Int("tables", len(v.Tables())),
		slog.String("opening", v.Opening().String()),
		slog.String("closing", v.Closing().String()))
	return v, nil
}

func NewBookingContext(cfg config.Config, v *venue.Venue, src shared.RecordSource, store shared.ReservationStore, clk clock.Clock) shared.BookingContext {
	return shared.NewBookingContext(v, cfg.Booking.HorizonDays, src, store, clk)
}

// NewSession starts the first rebuild in the background on start so the
// server can come up while the record store is slow.
func NewSession(lc fx.Lifecycle, cfg config.Config, bc shared.BookingContext, hub *session.Hub, logger *slog.Logger) *session.Session {
	s := session.New(bc, hub, logger, session.Options{FetchTimeout: cfg.Booking.FetchTimeout})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.RebuildInBackground("startup")
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Close()
			return nil
		},
	})
	return s
}

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		scheduler.New,
	),
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, svc *scheduler.Service, r scheduler.Rebuilder, logger *slog.Logger) error {
	// a scheduled rebuild gets twice the fetch budget to also cover install
	timeout := 2 * cfg.Booking.FetchTimeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	if err := scheduler.RegisterOccupancyJobs(svc, r, cfg.Booking.RefreshCron, timeout, logger); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			svc.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return svc.Stop()
		},
	})
	return nil
}
