package repository

import (
	"fmt"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type bookingRow struct {
	Date     time.Time      `db:"date"`
	Hour     string         `db:"hour"`
	Duration pgtype.Numeric `db:"duration"`
	TableID  string         `db:"table_id"`
}

type eventRow struct {
	Date     pgtype.Date    `db:"date"`
	Hour     string         `db:"hour"`
	Duration pgtype.Numeric `db:"duration"`
	TableID  string         `db:"table_id"`
	Repeat   pgtype.Text    `db:"repeat"`
}

func (r bookingRow) toRecord() (occupancy.BookingRecord, error) {
	start, duration, err := slotSpan(r.Hour, r.Duration)
	if err != nil {
		return occupancy.BookingRecord{}, err
	}
	return occupancy.BookingRecord{
		Date:     timegrid.DateOf(r.Date),
		Start:    start,
		Duration: duration,
		Table:    occupancy.TableID(r.TableID),
	}, nil
}

func (r eventRow) toRecord() (occupancy.EventRecord, error) {
	start, duration, err := slotSpan(r.Hour, r.Duration)
	if err != nil {
		return occupancy.EventRecord{}, err
	}
	rec := occupancy.EventRecord{
		Start:      start,
		Duration:   duration,
		Table:      occupancy.TableID(r.TableID),
		Recurrence: occupancy.NoRecurrence{},
	}
	if date := pgconv.DatePtrFromPgtype(r.Date); date != nil {
		d := timegrid.DateOf(*date)
		rec.Date = &d
	}
	if repeat := pgconv.StringPtrFromPgtype(r.Repeat); repeat != nil {
		rec.Recurrence = occupancy.ParseRecurrence(*repeat)
	}
	return rec, nil
}

func slotSpan(hour string, duration pgtype.Numeric) (timegrid.Slot, float64, error) {
	start, err := timegrid.ParseHour(hour)
	if err != nil {
		return 0, 0, err
	}
	d, err := pgconv.Float64FromNumeric(duration)
	if err != nil {
		return 0, 0, fmt.Errorf("duration: %w", err)
	}
	if d <= 0 || !timegrid.IsHalfHourMultiple(d) {
		return 0, 0, fmt.Errorf("duration %v is not a positive multiple of half an hour", d)
	}
	return start, d, nil
}
