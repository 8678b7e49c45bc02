package occupancy

import (
	"iter"
	"strings"

	"venue-booking/internal/domain/timegrid"
)

type RecurrenceKind string

const (
	RecurrenceNone  RecurrenceKind = "none"
	RecurrenceDaily RecurrenceKind = "daily"
)

// Recurrence turns one event definition into the dates it occupies.
// New kinds are added as new implementations.
type Recurrence interface {
	Kind() RecurrenceKind
	Occurrences(anchor *timegrid.Date, h timegrid.Horizon) iter.Seq[timegrid.Date]
	sealed()
}

// NoRecurrence occurs once, on the record's own date.
type NoRecurrence struct{}

func (NoRecurrence) Kind() RecurrenceKind { return RecurrenceNone }

func (NoRecurrence) Occurrences(anchor *timegrid.Date, _ timegrid.Horizon) iter.Seq[timegrid.Date] {
	return func(yield func(timegrid.Date) bool) {
		if anchor == nil {
			return
		}
		yield(*anchor)
	}
}

func (NoRecurrence) sealed() {}

// Daily occurs on every date of the horizon.
type Daily struct{}

func (Daily) Kind() RecurrenceKind { return RecurrenceDaily }

func (Daily) Occurrences(_ *timegrid.Date, h timegrid.Horizon) iter.Seq[timegrid.Date] {
	return ExpandDaily(h)
}

func (Daily) sealed() {}

// ParseRecurrence maps a store tag to a variant. Unknown tags, "" and
// "false" fall back to NoRecurrence.
func ParseRecurrence(tag string) Recurrence {
	switch RecurrenceKind(strings.ToLower(strings.TrimSpace(tag))) {
	case RecurrenceDaily:
		return Daily{}
	default:
		return NoRecurrence{}
	}
}

// ExpandDaily yields every date of h, see Horizon.ExpandDaily.
func ExpandDaily(h timegrid.Horizon) iter.Seq[timegrid.Date] {
	return h.ExpandDaily()
}
