//go:build unit

package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"venue-booking/internal/usecase/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRebuilder struct {
	calls atomic.Int32
	err   error
	ctx   context.Context
}

func (s *stubRebuilder) Rebuild(ctx context.Context) (session.View, error) {
	s.calls.Add(1)
	s.ctx = ctx
	return session.View{Generation: uint64(s.calls.Load())}, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T) *Service {
	t.Helper()
	s, err := New(time.UTC, discardLogger())
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() { _ = s.Stop() })
	return s
}

func TestAddJobValidation(t *testing.T) {
	s := newService(t)

	_, err := s.AddJob(" ", "* * * * *", func() {})
	assert.ErrorIs(t, err, ErrEmptyJobName)

	_, err = s.AddJob("job", "", func() {})
	assert.ErrorIs(t, err, ErrEmptyCronExpr)

	_, err = s.AddJob("job", "not a cron", func() {})
	assert.Error(t, err)
}

func TestRegisterOccupancyJobs(t *testing.T) {
	s := newService(t)

	err := RegisterOccupancyJobs(s, &stubRebuilder{}, "*/5 * * * *", time.Second, discardLogger())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{JobOccupancyRefresh, JobHorizonRoll}, s.JobNames())

	err = RegisterOccupancyJobs(newService(t), &stubRebuilder{}, "bogus", time.Second, discardLogger())
	assert.Error(t, err)
}

func TestRebuildTask(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "success"},
		{name: "superseded", err: session.ErrRebuildSuperseded},
		{name: "failure", err: errors.New("store down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &stubRebuilder{err: tt.err}
			rebuildTask(r, time.Second, discardLogger())()

			assert.Equal(t, int32(1), r.calls.Load())
			_, hasDeadline := r.ctx.Deadline()
			assert.True(t, hasDeadline)
		})
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s, err := New(time.UTC, discardLogger())
	require.NoError(t, err)
	s.Start()

	assert.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}
