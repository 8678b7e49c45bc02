package occupancy

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"venue-booking/internal/domain/timegrid"
)

var ErrInvalidTableID = errors.New("invalid table id")

// TableID labels a physical table. Record stores send integers or strings.
type TableID string

func (t TableID) String() string {
	return string(t)
}

func (t *TableID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return ErrInvalidTableID
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			return ErrInvalidTableID
		}
		*t = TableID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidTableID
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return ErrInvalidTableID
	}
	*t = TableID(n.String())
	return nil
}

// MarshalJSON writes numeric labels back as numbers so the record store
// sees the same shape it sent.
func (t TableID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(t), 10, 64); err == nil {
		return []byte(t), nil
	}
	return json.Marshal(string(t))
}

// BookingRecord is a one-off reservation read from the store.
type BookingRecord struct {
	Date     timegrid.Date
	Start    timegrid.Slot
	Duration float64
	Table    TableID
}

// EventRecord is a venue-blocking event. Date is nil for daily events.
type EventRecord struct {
	Date       *timegrid.Date
	Start      timegrid.Slot
	Duration   float64
	Table      TableID
	Recurrence Recurrence
}

func (e EventRecord) recurrence() Recurrence {
	if e.Recurrence == nil {
		return NoRecurrence{}
	}
	return e.Recurrence
}
