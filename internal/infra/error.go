package infra

import (
	"context"
	"log/slog"

	"venue-booking/internal/pkg/errs"
)

// Kind classifies a failure of a record store so callers and logs can
// tell a dead upstream from a bad record.
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindDBFailure       Kind = "DB_FAILURE"
	KindDuplicateKey    Kind = "DUPLICATE_KEY"
	KindUpstreamFailure Kind = "UPSTREAM_FAILURE"
	KindDecodeFailure   Kind = "DECODE_FAILURE"
)

type StoreError struct {
	Kind  Kind
	msg   string
	cause error
}

func (e StoreError) Error() string {
	if e.cause == nil {
		return string(e.Kind) + ": " + e.msg
	}
	return string(e.Kind) + ": " + e.msg + ": " + e.cause.Error()
}

func (e StoreError) Unwrap() error {
	return e.cause
}

// WrapStoreErr logs the failure and returns it as a StoreError of kind.
// err may be nil when the failure has no lower level cause.
func WrapStoreErr(logger *slog.Logger, kind Kind, msg string, err error) error {
	attrs := []any{slog.String("kind", string(kind))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}
	level := slog.LevelError
	if kind == KindNotFound {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, "record store: "+msg, attrs...)

	return StoreError{Kind: kind, msg: msg, cause: err}
}

func KindOf(err error) (Kind, bool) {
	var e StoreError
	if errs.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
