//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Date      timegrid.Date
	Start     timegrid.Slot
	Table     occupancy.TableID
	Duration  float64
	PartySize int
	Starters  []string
	Phone     string
	Address   string
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Date:      "2024-06-01",
		Start:     18,
		Table:     "5",
		Duration:  2,
		PartySize: 2,
		Starters:  []string{"bruschetta"},
		Phone:     "+48 600 100 200",
		Address:   "ul. Długa 1, Gdańsk",
		CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildParams() reservation.RequestParams {
	return reservation.RequestParams{
		Date:      r.Date,
		Start:     r.Start,
		Table:     r.Table,
		Duration:  r.Duration,
		PartySize: r.PartySize,
		Starters:  append([]string(nil), r.Starters...),
		Contact:   reservation.Contact{Phone: r.Phone, Address: r.Address},
	}
}

func (r *ReservationBuilder) BuildDomain(v *venue.Venue) (reservation.Request, error) {
	return reservation.NewRequest(v, r.BuildParams())
}

func (r *ReservationBuilder) BuildDescriptor() *reservation.Descriptor {
	return &reservation.Descriptor{
		ID:        uuid.New(),
		Date:      r.Date,
		Start:     r.Start,
		Table:     r.Table,
		Duration:  r.Duration,
		PartySize: r.PartySize,
		Starters:  append([]string(nil), r.Starters...),
		Contact:   reservation.Contact{Phone: r.Phone, Address: r.Address},
		Margin:    r.Duration,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildBookingRecord() occupancy.BookingRecord {
	return occupancy.BookingRecord{
		Date:     r.Date,
		Start:    r.Start,
		Duration: r.Duration,
		Table:    r.Table,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Date:      r.Date.String(),
		Hour:      r.Start.String(),
		Table:     r.Table,
		Duration:  r.Duration,
		PartySize: r.PartySize,
		Starters:  append([]string(nil), r.Starters...),
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

func (r *ReservationBuilder) BuildCommandInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		Date:      r.Date.String(),
		Hour:      r.Start.String(),
		Table:     r.Table,
		Duration:  r.Duration,
		PartySize: r.PartySize,
		Starters:  append([]string(nil), r.Starters...),
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithDate(date timegrid.Date) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithStart(start timegrid.Slot) *ReservationBuilder {
	r.Start = start
	return r
}

func (r *ReservationBuilder) WithTable(table occupancy.TableID) *ReservationBuilder {
	r.Table = table
	return r
}

func (r *ReservationBuilder) WithDuration(duration float64) *ReservationBuilder {
	r.Duration = duration
	return r
}

func (r *ReservationBuilder) WithPartySize(n int) *ReservationBuilder {
	r.PartySize = n
	return r
}

func (r *ReservationBuilder) WithStarters(starters ...string) *ReservationBuilder {
	r.Starters = starters
	return r
}

func (r *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	r.Phone = phone
	return r
}

func (r *ReservationBuilder) AsLateEvening() *ReservationBuilder {
	r.Start = 22
	r.Duration = 1.5
	return r
}
