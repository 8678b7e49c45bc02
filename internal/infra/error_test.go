//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"venue-booking/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapStoreErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cause := errors.New("connection reset")

	err := infra.WrapStoreErr(logger, infra.KindUpstreamFailure, "fetch bookings", cause)

	assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "UPSTREAM_FAILURE: fetch bookings")
	assert.False(t, infra.IsKind(cause, infra.KindUpstreamFailure))
}

func TestKindOf(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kind, ok := infra.KindOf(fmt.Errorf("rebuild: %w", infra.WrapStoreErr(logger, infra.KindNotFound, "/booking not found", nil)))
	assert.True(t, ok)
	assert.Equal(t, infra.KindNotFound, kind)

	_, ok = infra.KindOf(errors.New("plain"))
	assert.False(t, ok)
}
