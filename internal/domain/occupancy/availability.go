package occupancy

import "venue-booking/internal/domain/timegrid"

// IsFree reports whether table is absent from the map at date/slot.
// Unknown dates or slots, malformed ones included, count as free.
func IsFree(m *Map, date timegrid.Date, slot timegrid.Slot, table TableID) bool {
	return !m.Has(date, slot, table)
}

// FreeTables returns the tables of all that are free at date/slot, in the
// order given.
func FreeTables(m *Map, date timegrid.Date, slot timegrid.Slot, all []TableID) []TableID {
	free := make([]TableID, 0, len(all))
	for _, table := range all {
		if IsFree(m, date, slot, table) {
			free = append(free, table)
		}
	}
	return free
}

// Occupied lists the tables taken at date/slot, sorted, for highlighting.
func Occupied(m *Map, date timegrid.Date, slot timegrid.Slot) []TableID {
	return m.Occupied(date, slot)
}
