package recordapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
)

// flexNumber accepts 2, 2.5 and "2.5".
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("duration %q is not a number", s)
		}
		*f = flexNumber(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexNumber(v)
	return nil
}

// repeatTag is false, absent, or a recurrence name such as "daily".
type repeatTag string

func (r *repeatTag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*r = ""
		return nil
	case bytes.Equal(b, []byte("true")):
		*r = repeatTag(occupancy.RecurrenceDaily)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = repeatTag(s)
	return nil
}

type wireRecord struct {
	ID       json.RawMessage   `json:"id,omitempty"`
	Date     *string           `json:"date,omitempty"`
	Hour     string            `json:"hour"`
	Duration flexNumber        `json:"duration"`
	Table    occupancy.TableID `json:"table"`
	Repeat   repeatTag         `json:"repeat,omitempty"`
}

func (w wireRecord) common() (timegrid.Slot, float64, error) {
	start, err := timegrid.ParseHour(w.Hour)
	if err != nil {
		return 0, 0, err
	}
	d := float64(w.Duration)
	if d <= 0 || !timegrid.IsHalfHourMultiple(d) {
		return 0, 0, fmt.Errorf("duration %v is not a positive multiple of half an hour", d)
	}
	return start, d, nil
}

func (w wireRecord) toBooking() (occupancy.BookingRecord, error) {
	start, d, err := w.common()
	if err != nil {
		return occupancy.BookingRecord{}, err
	}
	if w.Date == nil {
		return occupancy.BookingRecord{}, fmt.Errorf("booking at %s has no date", w.Hour)
	}
	date, err := timegrid.ParseDate(*w.Date)
	if err != nil {
		return occupancy.BookingRecord{}, err
	}
	return occupancy.BookingRecord{Date: date, Start: start, Duration: d, Table: w.Table}, nil
}

func (w wireRecord) toEvent() (occupancy.EventRecord, error) {
	start, d, err := w.common()
	if err != nil {
		return occupancy.EventRecord{}, err
	}
	rec := occupancy.EventRecord{
		Start:      start,
		Duration:   d,
		Table:      w.Table,
		Recurrence: occupancy.ParseRecurrence(string(w.Repeat)),
	}
	if w.Date != nil && *w.Date != "" {
		date, err := timegrid.ParseDate(*w.Date)
		if err != nil {
			return occupancy.EventRecord{}, err
		}
		rec.Date = &date
	}
	return rec, nil
}

// bookingPayload is the body of POST /booking.
type bookingPayload struct {
	Date     string            `json:"date"`
	Hour     string            `json:"hour"`
	Table    occupancy.TableID `json:"table"`
	Repeat   bool              `json:"repeat"`
	Duration float64           `json:"duration"`
	People   int               `json:"ppl"`
	Starters []string          `json:"starters"`
	Address  string            `json:"address"`
	Phone    string            `json:"phone"`
}

func newBookingPayload(d *reservation.Descriptor) bookingPayload {
	starters := d.Starters
	if starters == nil {
		starters = []string{}
	}
	return bookingPayload{
		Date:     d.Date.String(),
		Hour:     d.Hour(),
		Table:    d.Table,
		Duration: d.Duration,
		People:   d.PartySize,
		Starters: starters,
		Address:  d.Contact.Address,
		Phone:    d.Contact.Phone,
	}
}

// rawID renders a JSON id (number or string) as plain text.
func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
