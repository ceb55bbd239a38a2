package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ebayMocks "github.com/bookmint/bookmint/internal/ebay/mocks"
	storeMocks "github.com/bookmint/bookmint/internal/store/mocks"
)

func newSchedulerTestSyncer(t *testing.T) *Syncer {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	sell := ebayMocks.NewMockSellAPI(t)
	return newTestSyncer(ms, sell)
}

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	sched, err := NewScheduler(newSchedulerTestSyncer(t), 6*time.Hour, quietLogger())
	require.NoError(t, err)

	entries := sched.Entries()
	assert.Len(t, entries, 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, err := NewScheduler(newSchedulerTestSyncer(t), 1*time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_NextRunScheduled(t *testing.T) {
	t.Parallel()

	sched, err := NewScheduler(newSchedulerTestSyncer(t), 15*time.Minute, quietLogger())
	require.NoError(t, err)

	sched.Start()
	defer sched.Stop()

	entries := sched.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Next.IsZero())
}
