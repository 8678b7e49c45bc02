package commands

//go:generate mockgen -source=refresh.go -destination=../../../tests/mock/commands/refresh.go -package=commandsmock

import (
	"context"
	"time"

	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/usecase/session"
)

type Rebuilder interface {
	Rebuild(ctx context.Context) (session.View, error)
}

type RefreshResult struct {
	Generation uint64
	HorizonMin timegrid.Date
	HorizonMax timegrid.Date
	Dates      int
	BuiltAt    time.Time
}

type RefreshCommands interface {
	Refresh(ctx context.Context) (*RefreshResult, error)
}

type refreshCommandsImpl struct {
	rebuilder Rebuilder
}

func NewRefreshCommands(rebuilder Rebuilder) RefreshCommands {
	return &refreshCommandsImpl{rebuilder: rebuilder}
}

func (uc *refreshCommandsImpl) Refresh(ctx context.Context) (*RefreshResult, error) {
	view, err := uc.rebuilder.Rebuild(ctx)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{
		Generation: view.Generation,
		HorizonMin: view.Horizon.Min(),
		HorizonMax: view.Horizon.Max(),
		Dates:      len(view.Map.Dates()),
		BuiltAt:    view.BuiltAt,
	}, nil
}
