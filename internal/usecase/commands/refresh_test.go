//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/occupancy"
	"venue-booking/internal/domain/timegrid"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/session"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRefreshCommands_Refresh(t *testing.T) {
	ctx := context.Background()
	builtAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("reports the installed map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rebuilder := commandsmock.NewMockRebuilder(ctrl)

		h, err := timegrid.HorizonFrom("2024-06-01", 14)
		require.NoError(t, err)
		m := occupancy.NewMap()
		m.Mark("2024-06-01", 18, 1, "1")
		m.Mark("2024-06-03", 20, 1, "2")
		rebuilder.EXPECT().Rebuild(ctx).Return(session.View{Map: m, Horizon: h, Generation: 4, BuiltAt: builtAt}, nil)

		got, err := commands.NewRefreshCommands(rebuilder).Refresh(ctx)
		require.NoError(t, err)

		want := &commands.RefreshResult{
			Generation: 4,
			HorizonMin: "2024-06-01",
			HorizonMax: "2024-06-15",
			Dates:      2,
			BuiltAt:    builtAt,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("refresh mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fetch failure is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rebuilder := commandsmock.NewMockRebuilder(ctrl)
		rebuilder.EXPECT().Rebuild(ctx).Return(session.View{}, errs.Mark(errs.New("timeout"), session.ErrFetchFailed))

		_, err := commands.NewRefreshCommands(rebuilder).Refresh(ctx)
		assert.True(t, errs.Is(err, session.ErrFetchFailed))
	})
}
