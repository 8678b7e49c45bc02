package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/session"
)

const (
	JobOccupancyRefresh = "occupancy_refresh"
	JobHorizonRoll      = "horizon_roll"

	// midnight in the scheduler's location
	horizonRollCron = "0 0 * * *"
)

type Rebuilder interface {
	Rebuild(ctx context.Context) (session.View, error)
}

// RegisterOccupancyJobs schedules the periodic re-fetch and the midnight
// horizon roll. Both rebuild the occupancy map from the record store.
func RegisterOccupancyJobs(s *Service, r Rebuilder, refreshCron string, timeout time.Duration, logger *slog.Logger) error {
	jobs := []struct {
		name string
		cron string
	}{
		{name: JobOccupancyRefresh, cron: refreshCron},
		{name: JobHorizonRoll, cron: horizonRollCron},
	}
	for _, j := range jobs {
		task := rebuildTask(r, timeout, logger.With(slog.String("job_name", j.name)))
		if _, err := s.AddJob(j.name, j.cron, task); err != nil {
			return fmt.Errorf("add %s job: %w", j.name, err)
		}
	}
	return nil
}

func rebuildTask(r Rebuilder, timeout time.Duration, logger *slog.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		view, err := r.Rebuild(ctx)
		switch {
		case err == nil:
			logger.Info("Occupancy rebuilt",
				slog.Uint64("generation", view.Generation),
				slog.String("horizon", view.Horizon.String()))
		case errs.Is(err, session.ErrRebuildSuperseded):
			logger.Debug("Scheduled rebuild superseded")
		default:
			logger.Error("Scheduled rebuild failed", slog.String("error", err.Error()))
		}
	}
}
