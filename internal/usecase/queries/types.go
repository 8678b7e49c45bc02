package queries

import (
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
)

// Read models returned to the handler layer.

type TableView struct {
	ID    occupancy.TableID
	Label string
	Seats int
}

type VenueView struct {
	Name       string
	Opening    timegrid.Slot
	Closing    timegrid.Slot
	Tables     []TableView
	HorizonMin timegrid.Date
	HorizonMax timegrid.Date
	Ready      bool
}

type SlotAvailability struct {
	Date       timegrid.Date
	Hour       timegrid.Slot
	Booked     []occupancy.TableID
	Free       []occupancy.TableID
	Generation uint64
}

// TableProbe answers "can this table host this stay".
type TableProbe struct {
	Date      timegrid.Date
	Hour      timegrid.Slot
	Table     occupancy.TableID
	Requested float64
	// Margin is the longest contiguous free stay from Hour, capped at closing.
	Margin    float64
	Available bool
	Reason    string
}

type SlotOccupancy struct {
	Hour   timegrid.Slot
	Tables []occupancy.TableID
}

type DayOccupancy struct {
	Date       timegrid.Date
	Slots      []SlotOccupancy
	Generation uint64
	BuiltAt    time.Time
}

const (
	ReasonBooked       = "booked"
	ReasonPastClosing  = "past_closing"
	ReasonInsufficient = "insufficient_duration"
)
