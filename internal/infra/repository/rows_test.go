//go:build unit

package repository

import (
	"math/big"
	"testing"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hours builds a NUMERIC(4,1) value from tenths of an hour.
func hours(tenths int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(tenths), Exp: -1, Valid: true}
}

func TestBookingRowToRecord(t *testing.T) {
	row := bookingRow{
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Hour:     "18:30",
		Duration: hours(20),
		TableID:  "5",
	}

	rec, err := row.toRecord()
	require.NoError(t, err)
	assert.Equal(t, occupancy.BookingRecord{Date: "2024-06-01", Start: 18.5, Duration: 2, Table: "5"}, rec)

	row.Hour = "18:45"
	_, err = row.toRecord()
	assert.ErrorIs(t, err, timegrid.ErrMalformedTime)

	row.Hour = "18:30"
	row.Duration = hours(7)
	_, err = row.toRecord()
	assert.Error(t, err)

	row.Duration = pgtype.Numeric{}
	_, err = row.toRecord()
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
}

func TestEventRowToRecord(t *testing.T) {
	daily := pgtype.Text{String: "daily", Valid: true}
	date := pgconv.DateToPgtype(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))

	t.Run("daily without date", func(t *testing.T) {
		rec, err := eventRow{Hour: "12:00", Duration: hours(10), TableID: "3", Repeat: daily}.toRecord()
		require.NoError(t, err)
		assert.Nil(t, rec.Date)
		assert.Equal(t, occupancy.RecurrenceDaily, rec.Recurrence.Kind())
	})

	t.Run("one-off with date", func(t *testing.T) {
		rec, err := eventRow{Date: date, Hour: "14:00", Duration: hours(15), TableID: "2"}.toRecord()
		require.NoError(t, err)
		require.NotNil(t, rec.Date)
		assert.Equal(t, timegrid.Date("2024-06-02"), *rec.Date)
		assert.Equal(t, 1.5, rec.Duration)
		assert.Equal(t, occupancy.RecurrenceNone, rec.Recurrence.Kind())
	})
}
