package jobs

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

type stubSweeper struct{}

func (stubSweeper) Sweep() int { return 0 }

func TestNewJobManager(t *testing.T) {
	t.Run("should schedule reconciliation when the engine settles on completion", func(t *testing.T) {
		jm := NewJobManager(new(MockSettlementUoWFactory), nil, stubSweeper{},
			commands.SettleOnCompletion, testLogger())

		require.NotNil(t, jm.settlementJob)
		require.NotNil(t, jm.codeSweepJob)
	})

	t.Run("should leave settlement to the payment collaborator", func(t *testing.T) {
		jm := NewJobManager(new(MockSettlementUoWFactory), nil, stubSweeper{},
			commands.SettleOnPayment, testLogger())

		require.Nil(t, jm.settlementJob)
		require.NotNil(t, jm.codeSweepJob)

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}
