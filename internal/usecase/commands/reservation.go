package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/phone"
	"venue-booking/internal/usecase/session"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrInvalidInput      = errs.New("invalid reservation input")
	ErrPersistenceFailed = errs.New("failed to persist reservation")
	ErrTableBooked       = session.ErrTableBooked
)

// ReservationEngine is the write side of session.Session.
type ReservationEngine interface {
	Venue() *venue.Venue
	Reserve(req reservation.Request) (reservation.Outcome, session.Ticket, error)
	Settle(t session.Ticket)
	Discard(t session.Ticket)
	RebuildInBackground(reason string)
}

type CreateReservationInput struct {
	Date      string
	Hour      string
	Table     occupancy.TableID
	Duration  float64
	PartySize int
	Starters  []string
	Phone     string
	Address   string
}

type CreateReservationResult struct {
	Reservation *reservation.Descriptor
	Ack         shared.Ack
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
}

type reservationCommandsImpl struct {
	engine ReservationEngine
	store  shared.ReservationStore
	phones *phone.Normalizer
	logger *slog.Logger
}

func NewReservationCommands(
	engine ReservationEngine,
	store shared.ReservationStore,
	phones *phone.Normalizer,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{engine: engine, store: store, phones: phones, logger: logger}
}

// Create validates the request against the current map, folds it in and
// persists it. When the store refuses, the fold is dropped on the next
// rebuild, which is started right away.
func (uc *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	req, err := uc.toRequest(in)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	out, ticket, err := uc.engine.Reserve(req)
	if err != nil {
		return nil, err
	}
	if !out.Accepted() {
		uc.logger.Info("reservation rejected",
			slog.String("date", req.Date.String()),
			slog.String("hour", req.Start.String()),
			slog.String("table", req.Table.String()),
			slog.Float64("duration", req.Duration),
			slog.String("reason", out.Err().Error()))
		return nil, out.Err()
	}

	ack, err := uc.store.Save(ctx, out.Descriptor)
	if err != nil {
		uc.engine.Discard(ticket)
		uc.engine.RebuildInBackground("reservation not persisted")
		return nil, errs.Mark(errs.Wrap(err, "save reservation"), ErrPersistenceFailed)
	}
	uc.engine.Settle(ticket)

	uc.logger.Info("reservation accepted",
		slog.String("id", out.Descriptor.ID.String()),
		slog.String("ack", ack.ID),
		slog.String("date", req.Date.String()),
		slog.String("hour", req.Start.String()),
		slog.String("table", req.Table.String()),
		slog.Float64("margin", out.Descriptor.Margin))
	return &CreateReservationResult{Reservation: out.Descriptor, Ack: ack}, nil
}

func (uc *reservationCommandsImpl) toRequest(in CreateReservationInput) (reservation.Request, error) {
	date, err := timegrid.ParseDate(in.Date)
	if err != nil {
		return reservation.Request{}, err
	}
	start, err := timegrid.ParseHour(in.Hour)
	if err != nil {
		return reservation.Request{}, err
	}
	tel, err := uc.phones.Normalize(in.Phone)
	if err != nil {
		return reservation.Request{}, err
	}
	return reservation.NewRequest(uc.engine.Venue(), reservation.RequestParams{
		Date:      date,
		Start:     start,
		Table:     in.Table,
		Duration:  in.Duration,
		PartySize: in.PartySize,
		Starters:  in.Starters,
		Contact:   reservation.Contact{Phone: tel, Address: in.Address},
	})
}
