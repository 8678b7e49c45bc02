package components

import (
	"log/slog"

	"venue-booking/internal/infra/recordapi"
	"venue-booking/internal/infra/repository"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewRecordBackend,
	),
)

// RecordBackend exposes one record store under both ports.
type RecordBackend struct {
	fx.Out

	Source shared.RecordSource
	Store  shared.ReservationStore
}

func NewRecordBackend(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (RecordBackend, error) {
	switch cfg.Booking.RecordSource {
	case config.RecordSourceHTTP:
		client, err := recordapi.NewClient(cfg.Booking.RecordAPIURL, cfg.Booking.FetchTimeout, logger)
		if err != nil {
			return RecordBackend{}, err
		}
		logger.Info("Using HTTP record store", slog.String("url", cfg.Booking.RecordAPIURL))
		return RecordBackend{Source: client, Store: client}, nil
	default:
		store := repository.NewRecordStore(pool, logger)
		logger.Info("Using PostgreSQL record store")
		return RecordBackend{Source: store, Store: store}, nil
	}
}
