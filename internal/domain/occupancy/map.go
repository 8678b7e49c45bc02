package occupancy

import (
	"maps"
	"slices"

	"venue-booking/internal/domain/timegrid"
)

type tableSet map[TableID]struct{}

// Map records which tables are taken at each date and slot. Missing dates
// and slots are free. A nil *Map reads as empty.
type Map struct {
	dates map[timegrid.Date]map[timegrid.Slot]tableSet
}

func NewMap() *Map {
	return &Map{dates: make(map[timegrid.Date]map[timegrid.Slot]tableSet)}
}

// Mark occupies [start, start+duration) for table on date. Marking an
// already taken slot is a no-op.
func (m *Map) Mark(date timegrid.Date, start timegrid.Slot, duration float64, table TableID) {
	if m.dates == nil {
		m.dates = make(map[timegrid.Date]map[timegrid.Slot]tableSet)
	}
	day, ok := m.dates[date]
	if !ok {
		day = make(map[timegrid.Slot]tableSet)
		m.dates[date] = day
	}
	for slot := range timegrid.Slots(start, duration) {
		set, ok := day[slot]
		if !ok {
			set = make(tableSet)
			day[slot] = set
		}
		set[table] = struct{}{}
	}
}

func (m *Map) Has(date timegrid.Date, slot timegrid.Slot, table TableID) bool {
	if m == nil {
		return false
	}
	_, ok := m.dates[date][slot][table]
	return ok
}

// Occupied lists the tables taken at date/slot, sorted.
func (m *Map) Occupied(date timegrid.Date, slot timegrid.Slot) []TableID {
	if m == nil {
		return nil
	}
	set := m.dates[date][slot]
	if len(set) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// Dates lists the dates with at least one marked slot, ascending.
func (m *Map) Dates() []timegrid.Date {
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(m.dates))
}

// Day copies one date's occupancy as slot -> sorted tables.
func (m *Map) Day(date timegrid.Date) map[timegrid.Slot][]TableID {
	out := make(map[timegrid.Slot][]TableID)
	if m == nil {
		return out
	}
	for slot, set := range m.dates[date] {
		out[slot] = slices.Sorted(maps.Keys(set))
	}
	return out
}

// Snapshot copies the whole map into plain values.
func (m *Map) Snapshot() map[timegrid.Date]map[timegrid.Slot][]TableID {
	out := make(map[timegrid.Date]map[timegrid.Slot][]TableID)
	for _, date := range m.Dates() {
		out[date] = m.Day(date)
	}
	return out
}

func (m *Map) Clone() *Map {
	clone := NewMap()
	if m == nil {
		return clone
	}
	for date, day := range m.dates {
		cday := make(map[timegrid.Slot]tableSet, len(day))
		for slot, set := range day {
			cday[slot] = maps.Clone(set)
		}
		clone.dates[date] = cday
	}
	return clone
}
