package bench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/FilaCo/ads/collection/mocks"
	"github.com/FilaCo/ads/testutils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewRunnerRejectsInvalidWorkload(t *testing.T) {
	cfg := DefaultWorkload()
	cfg.Ops = -1

	_, err := NewRunner(cfg, nil, testutils.NewTestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid workload")
}

func TestRunnerCompletesAllOps(t *testing.T) {
	cfg := DefaultWorkload()
	cfg.Ops = 2000
	cfg.KeySpace = 64
	cfg.Seed = 99

	r, err := NewRunner(cfg, nil, testutils.NewTestLogger())
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cfg.Ops, res.Ops)
	assert.Equal(t, res.Ops, res.Reads+res.Inserts+res.Erases,
		"every op must be counted exactly once")
	assert.LessOrEqual(t, res.Hits, res.Reads)
	assert.Positive(t, res.Elapsed)
	assert.Positive(t, res.Throughput())
}

func TestRunnerIsReproducible(t *testing.T) {
	cfg := DefaultWorkload()
	cfg.Ops = 1000
	cfg.KeySpace = 32
	cfg.Seed = 7

	run := func() *Result {
		r, err := NewRunner(cfg, nil, testutils.NewTestLogger())
		require.NoError(t, err)
		res, err := r.Run(context.Background())
		require.NoError(t, err)
		return res
	}

	first, second := run(), run()
	assert.Equal(t, first.Reads, second.Reads)
	assert.Equal(t, first.Hits, second.Hits)
	assert.Equal(t, first.Inserts, second.Inserts)
	assert.Equal(t, first.Erases, second.Erases)
}

func TestRunnerConcurrentSyncMap(t *testing.T) {
	cfg := DefaultWorkload()
	cfg.Structure = StructureSyncMap
	cfg.Workers = 4
	cfg.Ops = 4000
	cfg.KeySpace = 128

	r, err := NewRunner(cfg, nil, testutils.NewTestLogger())
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Ops, res.Ops, "worker op shares must add up to the configured total")
}

func TestRunnerDrivesProvidedTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mocks.NewMockMap[uint64, uint64](ctrl)
	target.EXPECT().Get(gomock.Any()).Return(uint64(0), false).AnyTimes()
	target.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(0), false).AnyTimes()
	target.EXPECT().Erase(gomock.Any()).Return(uint64(0), false).AnyTimes()
	target.EXPECT().Len().Return(0).AnyTimes()

	cfg := DefaultWorkload()
	cfg.Ops = 300
	cfg.KeySpace = 16

	r, err := NewRunner(cfg, target, testutils.NewTestLogger())
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 300, res.Ops)
	assert.Zero(t, res.Hits, "a target that always misses must yield zero hits")
}

func TestRunnerHonorsContextCancellation(t *testing.T) {
	cfg := DefaultWorkload()
	cfg.Ops = 10000
	// One op per second guarantees the deadline fires first.
	cfg.Rate = 1

	r, err := NewRunner(cfg, nil, testutils.NewTestLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = r.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload aborted")
}

func TestRunnerRateLimiting(t *testing.T) {
	cfg := DefaultWorkload()
	cfg.Ops = 10
	cfg.Rate = 100 // 10 ops at 100 ops/s needs roughly 90ms of pacing.

	r, err := NewRunner(cfg, nil, testutils.NewTestLogger())
	require.NoError(t, err)

	start := time.Now()
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, res.Ops)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond,
		"the limiter must actually pace the run")
}
