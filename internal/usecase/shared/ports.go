package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"
)

// RecordSource reads the three record collections the occupancy map is
// built from. Implementations must honour ctx cancellation.
type RecordSource interface {
	Bookings(ctx context.Context, h timegrid.Horizon) ([]occupancy.BookingRecord, error)
	CurrentEvents(ctx context.Context, h timegrid.Horizon) ([]occupancy.EventRecord, error)
	RepeatingEvents(ctx context.Context, h timegrid.Horizon) ([]occupancy.EventRecord, error)
}

// Ack is the store's acknowledgement of a persisted reservation.
type Ack struct {
	ID       string
	StoredAt time.Time
}

type ReservationStore interface {
	Save(ctx context.Context, d *reservation.Descriptor) (Ack, error)
}

// BookingContext is everything the session needs about the venue and its
// record store.
type BookingContext struct {
	Venue       *venue.Venue
	HorizonDays int
	Source      RecordSource
	Store       ReservationStore
	Clock       clock.Clock
}

func NewBookingContext(v *venue.Venue, horizonDays int, src RecordSource, store ReservationStore, clk clock.Clock) BookingContext {
	return BookingContext{
		Venue:       v,
		HorizonDays: horizonDays,
		Source:      src,
		Store:       store,
		Clock:       clk,
	}
}

// Horizon is today (venue time) plus HorizonDays.
func (b BookingContext) Horizon() (timegrid.Horizon, error) {
	return timegrid.HorizonFrom(timegrid.Today(b.Clock), b.HorizonDays)
}

func (b BookingContext) Closing() timegrid.Slot {
	return b.Venue.Closing()
}
