package occupancy

import "venue-booking/internal/domain/timegrid"

// Build marks every booking and event into a fresh map. Overlapping records
// are unioned, never rejected; conflicts only matter for new requests.
func Build(bookings []BookingRecord, currentEvents, repeatingEvents []EventRecord, h timegrid.Horizon) *Map {
	m := NewMap()
	for _, b := range bookings {
		m.Mark(b.Date, b.Start, b.Duration, b.Table)
	}
	markEvents(m, currentEvents, h)
	markEvents(m, repeatingEvents, h)
	return m
}

func markEvents(m *Map, events []EventRecord, h timegrid.Horizon) {
	for _, e := range events {
		for date := range e.recurrence().Occurrences(e.Date, h) {
			m.Mark(date, e.Start, e.Duration, e.Table)
		}
	}
}
