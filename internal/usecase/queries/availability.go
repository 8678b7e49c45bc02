package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"maps"
	"slices"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/session"
)

// OccupancyReader is the read side of session.Session.
type OccupancyReader interface {
	Read(fn func(session.View) error) error
	Venue() *venue.Venue
	Horizon() timegrid.Horizon
	Ready() bool
}

type AvailabilityQueries interface {
	Venue(ctx context.Context) (*VenueView, error)
	Slot(ctx context.Context, date timegrid.Date, hour timegrid.Slot) (*SlotAvailability, error)
	Probe(ctx context.Context, date timegrid.Date, hour timegrid.Slot, table occupancy.TableID, duration float64) (*TableProbe, error)
	Day(ctx context.Context, date timegrid.Date) (*DayOccupancy, error)
}

type availabilityQueriesImpl struct {
	reader OccupancyReader
}

func NewAvailabilityQueries(reader OccupancyReader) AvailabilityQueries {
	return &availabilityQueriesImpl{reader: reader}
}

func (q *availabilityQueriesImpl) Venue(_ context.Context) (*VenueView, error) {
	v := q.reader.Venue()
	view := &VenueView{
		Name:    v.Name(),
		Opening: v.Opening(),
		Closing: v.Closing(),
		Ready:   q.reader.Ready(),
	}
	for _, t := range v.Tables() {
		view.Tables = append(view.Tables, TableView{ID: t.ID, Label: t.Label, Seats: t.Seats})
	}
	if h := q.reader.Horizon(); !h.IsZero() {
		view.HorizonMin = h.Min()
		view.HorizonMax = h.Max()
	}
	return view, nil
}

func (q *availabilityQueriesImpl) Slot(_ context.Context, date timegrid.Date, hour timegrid.Slot) (*SlotAvailability, error) {
	var out *SlotAvailability
	err := q.reader.Read(func(v session.View) error {
		if err := inHorizon(v, date); err != nil {
			return err
		}
		booked := v.Map.Occupied(date, hour)
		if booked == nil {
			booked = []occupancy.TableID{}
		}
		out = &SlotAvailability{
			Date:       date,
			Hour:       hour,
			Booked:     booked,
			Free:       occupancy.FreeTables(v.Map, date, hour, v.Venue.TableIDs()),
			Generation: v.Generation,
		}
		return nil
	})
	return out, err
}

func (q *availabilityQueriesImpl) Probe(_ context.Context, date timegrid.Date, hour timegrid.Slot, table occupancy.TableID, duration float64) (*TableProbe, error) {
	if duration <= 0 || !timegrid.IsHalfHourMultiple(duration) {
		return nil, errs.Wrapf(reservation.ErrInvalidDuration, "duration %v", duration)
	}

	var out *TableProbe
	err := q.reader.Read(func(v session.View) error {
		if err := inHorizon(v, date); err != nil {
			return err
		}
		if _, err := v.Venue.Table(table); err != nil {
			return err
		}

		out = &TableProbe{Date: date, Hour: hour, Table: table, Requested: duration}
		if !occupancy.IsFree(v.Map, date, hour, table) {
			out.Reason = ReasonBooked
			return nil
		}
		out.Margin = reservation.Margin(v.Map, date, hour, table, v.Venue.Closing().Hours()-hour.Hours())

		req := reservation.Request{Date: date, Start: hour, Table: table, Duration: duration}
		_, verr := reservation.Validate(v.Map, req, v.Venue.Closing())
		switch {
		case verr == nil:
			out.Available = true
		case errs.Is(verr, reservation.ErrPastClosing):
			out.Reason = ReasonPastClosing
		default:
			out.Reason = ReasonInsufficient
		}
		return nil
	})
	return out, err
}

func (q *availabilityQueriesImpl) Day(_ context.Context, date timegrid.Date) (*DayOccupancy, error) {
	var out *DayOccupancy
	err := q.reader.Read(func(v session.View) error {
		if err := inHorizon(v, date); err != nil {
			return err
		}
		day := v.Map.Day(date)
		out = &DayOccupancy{
			Date:       date,
			Slots:      make([]SlotOccupancy, 0, len(day)),
			Generation: v.Generation,
			BuiltAt:    v.BuiltAt,
		}
		for _, slot := range slices.Sorted(maps.Keys(day)) {
			out.Slots = append(out.Slots, SlotOccupancy{Hour: slot, Tables: day[slot]})
		}
		return nil
	})
	return out, err
}

func inHorizon(v session.View, date timegrid.Date) error {
	if !v.Horizon.Contains(date) {
		return errs.Mark(errs.Newf("%s is not within %s", date, v.Horizon), session.ErrOutsideHorizon)
	}
	return nil
}
