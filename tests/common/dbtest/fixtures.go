//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertBooking(t *testing.T, db shared.DBTX, rec occupancy.BookingRecord) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, date, hour, duration, table_id) VALUES ($1, $2::date, $3, $4, $5)",
		id, rec.Date.String(), rec.Start.String(), rec.Duration, rec.Table.String())
	require.NoError(t, err)
	return id
}

// InsertEvent stores rec; a Daily recurrence is written as repeat = 'daily'.
func InsertEvent(t *testing.T, db shared.DBTX, name string, rec occupancy.EventRecord) uuid.UUID {
	t.Helper()

	var date, repeat *string
	if rec.Date != nil {
		d := rec.Date.String()
		date = &d
	}
	if rec.Recurrence != nil && rec.Recurrence.Kind() == occupancy.RecurrenceDaily {
		r := string(occupancy.RecurrenceDaily)
		repeat = &r
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO events (id, name, date, hour, duration, table_id, repeat) VALUES ($1, $2, $3::date, $4, $5, $6, $7)",
		id, name, date, rec.Start.String(), rec.Duration, rec.Table.String(), repeat)
	require.NoError(t, err)
	return id
}

func CountBookings(t *testing.T, db shared.DBTX) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM bookings").Scan(&n))
	return n
}

// ResetDB empties the record tables between tests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings, events")
	return err
}
