package venue

import (
	"errors"
	"fmt"
	"strings"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
)

var (
	ErrInvalidHours   = errors.New("opening hour must be before closing hour")
	ErrNoTables       = errors.New("venue has no tables")
	ErrDuplicateTable = errors.New("duplicate table id")
	ErrUnknownTable   = errors.New("unknown table")
	ErrInvalidSeats   = errors.New("table seats cannot be negative")
)

type Table struct {
	ID    occupancy.TableID
	Label string
	Seats int // 0 means unspecified
}

// Venue is the static layout: which tables exist and when the venue is open.
type Venue struct {
	name    string
	opening timegrid.Slot
	closing timegrid.Slot
	tables  []Table
	byID    map[occupancy.TableID]int
}

func NewVenue(name string, opening, closing timegrid.Slot, tables []Table) (*Venue, error) {
	if opening >= closing {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidHours, opening, closing)
	}
	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	byID := make(map[occupancy.TableID]int, len(tables))
	out := make([]Table, 0, len(tables))
	for i, t := range tables {
		if strings.TrimSpace(t.ID.String()) == "" {
			return nil, fmt.Errorf("%w: table #%d has an empty id", occupancy.ErrInvalidTableID, i+1)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTable, t.ID)
		}
		if t.Seats < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSeats, t.ID)
		}
		if t.Label == "" {
			t.Label = "Table " + t.ID.String()
		}
		byID[t.ID] = i
		out = append(out, t)
	}

	return &Venue{
		name:    strings.TrimSpace(name),
		opening: opening,
		closing: closing,
		tables:  out,
		byID:    byID,
	}, nil
}

func (v *Venue) Name() string { return v.name }
func (v *Venue) Opening() timegrid.Slot { return v.opening }
func (v *Venue) Closing() timegrid.Slot { return v.closing }

func (v *Venue) Tables() []Table {
	out := make([]Table, len(v.tables))
	copy(out, v.tables)
	return out
}

func (v *Venue) TableIDs() []occupancy.TableID {
	ids := make([]occupancy.TableID, len(v.tables))
	for i, t := range v.tables {
		ids[i] = t.ID
	}
	return ids
}

func (v *Venue) Table(id occupancy.TableID) (Table, error) {
	i, ok := v.byID[id]
	if !ok {
		return Table{}, fmt.Errorf("%w: %s", ErrUnknownTable, id)
	}
	return v.tables[i], nil
}

// IsOpenAt reports whether a reservation may start at slot.
func (v *Venue) IsOpenAt(slot timegrid.Slot) bool {
	return slot >= v.opening && slot < v.closing
}
