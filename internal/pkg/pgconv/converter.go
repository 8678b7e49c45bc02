package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidNumeric = errors.New("invalid numeric value")

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func DatePtrFromPgtype(pd pgtype.Date) *time.Time {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return nil
	}
	return &pd.Time
}

// Float64FromNumeric reads a NOT NULL numeric column.
func Float64FromNumeric(pn pgtype.Numeric) (float64, error) {
	if !pn.Valid {
		return 0, ErrInvalidNumeric
	}
	value, err := pn.Float64Value()
	if err != nil || !value.Valid {
		return 0, ErrInvalidNumeric
	}
	return value.Float64, nil
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
