package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/reservation"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectBookings = `
SELECT date, hour, duration, table_id
FROM bookings
WHERE date BETWEEN $1::date AND $2::date`

	selectCurrentEvents = `
SELECT date, hour, duration, table_id, repeat
FROM events
WHERE repeat IS NULL AND date BETWEEN $1::date AND $2::date`

	selectRepeatingEvents = `
SELECT date, hour, duration, table_id, repeat
FROM events
WHERE repeat IS NOT NULL AND (date IS NULL OR date <= $1::date)`

	insertBooking = `
INSERT INTO bookings (id, date, hour, duration, table_id, ppl, starters, phone, address, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id::text, created_at`

	uniqueViolation = "23505"
)

// RecordStore reads records from and writes reservations to PostgreSQL.
type RecordStore struct {
	db     shared.DBTX
	tx     shared.TxBeginner
	logger *slog.Logger
}

func NewRecordStore(pool *pgxpool.Pool, logger *slog.Logger) *RecordStore {
	return &RecordStore{db: pool, tx: pool, logger: logger}
}

func (r *RecordStore) Bookings(ctx context.Context, h timegrid.Horizon) ([]occupancy.BookingRecord, error) {
	rows, err := r.db.Query(ctx, selectBookings, h.Min().String(), h.Max().String())
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, infra.KindDBFailure, "failed to query bookings", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookingRow])
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, infra.KindDBFailure, "failed to scan bookings", err)
	}

	out := make([]occupancy.BookingRecord, 0, len(raw))
	for _, row := range raw {
		rec, err := row.toRecord()
		if err != nil {
			return nil, infra.WrapStoreErr(r.logger, infra.KindDecodeFailure, "invalid booking row", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *RecordStore) CurrentEvents(ctx context.Context, h timegrid.Horizon) ([]occupancy.EventRecord, error) {
	return r.events(ctx, "current events", selectCurrentEvents, h.Min().String(), h.Max().String())
}

func (r *RecordStore) RepeatingEvents(ctx context.Context, h timegrid.Horizon) ([]occupancy.EventRecord, error) {
	return r.events(ctx, "repeating events", selectRepeatingEvents, h.Max().String())
}

func (r *RecordStore) events(ctx context.Context, what, query string, args ...any) ([]occupancy.EventRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, infra.KindDBFailure, "failed to query "+what, err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByName[eventRow])
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, infra.KindDBFailure, "failed to scan "+what, err)
	}

	out := make([]occupancy.EventRecord, 0, len(raw))
	for _, row := range raw {
		rec, err := row.toRecord()
		if err != nil {
			return nil, infra.WrapStoreErr(r.logger, infra.KindDecodeFailure, "invalid event row", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *RecordStore) Save(ctx context.Context, d *reservation.Descriptor) (shared.Ack, error) {
	starters := d.Starters
	if starters == nil {
		starters = []string{}
	}
	day, err := d.Date.Time()
	if err != nil {
		return shared.Ack{}, infra.WrapStoreErr(r.logger, infra.KindDecodeFailure, "invalid reservation date", err)
	}
	ack, err := shared.InTxWithRetry(ctx, r.tx, shared.DefaultRetry, func(tx shared.DBTX) (shared.Ack, error) {
		var ack shared.Ack
		err := tx.QueryRow(ctx, insertBooking,
			pgconv.UUIDToPgtype(d.ID), pgconv.DateToPgtype(day), d.Hour(), d.Duration, d.Table.String(),
			d.PartySize, starters, d.Contact.Phone, d.Contact.Address, pgconv.TimeToPgtype(createdAt(d)),
		).Scan(&ack.ID, &ack.StoredAt)
		return ack, err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return shared.Ack{}, infra.WrapStoreErr(r.logger, infra.KindDuplicateKey, "booking already stored", err)
		}
		return shared.Ack{}, infra.WrapStoreErr(r.logger, infra.KindDBFailure, "failed to insert booking", err)
	}
	return ack, nil
}

func createdAt(d *reservation.Descriptor) time.Time {
	if d.CreatedAt.IsZero() {
		return time.Now()
	}
	return d.CreatedAt
}
