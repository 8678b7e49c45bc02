package reservation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration     = errors.New("duration must be a positive multiple of half an hour")
	ErrInvalidPartySize    = errors.New("party size must be at least one")
	ErrPartyTooLarge       = errors.New("party does not fit the table")
	ErrOutsideOpeningHours = errors.New("start is outside opening hours")
	ErrNotAccepted         = errors.New("reservation was not accepted")
)

type RequestParams struct {
	Date      timegrid.Date
	Start     timegrid.Slot
	Table     occupancy.TableID
	Duration  float64
	PartySize int
	Starters  []string
	Contact   Contact
}

// Request is a candidate reservation. It only lives for one validation.
type Request struct {
	Date      timegrid.Date
	Start     timegrid.Slot
	Table     occupancy.TableID
	Duration  float64
	PartySize int
	Extras    Extras
	Contact   Contact
}

// NewRequest checks the request against the venue layout. Occupancy is not
// consulted here; see Validate.
func NewRequest(v *venue.Venue, p RequestParams) (Request, error) {
	if p.Duration <= 0 || math.IsNaN(p.Duration) || !timegrid.IsHalfHourMultiple(p.Duration) {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidDuration, p.Duration)
	}
	if p.PartySize < 1 {
		return Request{}, fmt.Errorf("%w: %d", ErrInvalidPartySize, p.PartySize)
	}

	table, err := v.Table(p.Table)
	if err != nil {
		return Request{}, err
	}
	if table.Seats > 0 && p.PartySize > table.Seats {
		return Request{}, fmt.Errorf("%w: %d guests, %d seats at %s", ErrPartyTooLarge, p.PartySize, table.Seats, table.ID)
	}
	if !v.IsOpenAt(p.Start) {
		return Request{}, fmt.Errorf("%w: %s not in %s-%s", ErrOutsideOpeningHours, p.Start, v.Opening(), v.Closing())
	}

	return Request{
		Date:      p.Date,
		Start:     p.Start,
		Table:     p.Table,
		Duration:  p.Duration,
		PartySize: p.PartySize,
		Extras:    NewExtras(p.Starters...),
		Contact: Contact{
			Phone:   strings.TrimSpace(p.Contact.Phone),
			Address: strings.TrimSpace(p.Contact.Address),
		},
	}, nil
}

// Descriptor is an accepted reservation, ready to be persisted and folded
// into the occupancy map.
type Descriptor struct {
	ID        uuid.UUID
	Date      timegrid.Date
	Start     timegrid.Slot
	Table     occupancy.TableID
	Duration  float64
	PartySize int
	Starters  []string
	Contact   Contact
	Margin    float64
	CreatedAt time.Time
}

func (d *Descriptor) Hour() string {
	return d.Start.String()
}

// MarkInto folds the reservation into m with the same routine used to build it.
func (d *Descriptor) MarkInto(m *occupancy.Map) {
	m.Mark(d.Date, d.Start, d.Duration, d.Table)
}

// Outcome is the terminal state of one reservation attempt.
type Outcome struct {
	Status     Status
	Descriptor *Descriptor
	Reason     error
}

func (o Outcome) Accepted() bool {
	return o.Status == StatusAccepted
}

func (o Outcome) Err() error {
	if o.Accepted() {
		return nil
	}
	if o.Reason != nil {
		return o.Reason
	}
	return ErrNotAccepted
}

// Decide runs Validate and moves the attempt from pending to a terminal state.
func Decide(m *occupancy.Map, req Request, closing timegrid.Slot, id uuid.UUID, now time.Time) Outcome {
	margin, err := Validate(m, req, closing)
	if err != nil {
		return Outcome{Status: StatusRejected, Reason: err}
	}
	return Outcome{
		Status: StatusAccepted,
		Descriptor: &Descriptor{
			ID:        id,
			Date:      req.Date,
			Start:     req.Start,
			Table:     req.Table,
			Duration:  req.Duration,
			PartySize: req.PartySize,
			Starters:  req.Extras.Starters(),
			Contact:   req.Contact,
			Margin:    margin,
			CreatedAt: now,
		},
	}
}
