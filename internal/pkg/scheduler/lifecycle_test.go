package scheduler

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takerapp/taker-go/internal/pkg/database"
	"github.com/takerapp/taker-go/internal/pkg/models"
)

func newStoreBackedQueue(t *testing.T, cfg models.SchedulerConfig) *Queue {
	t.Helper()

	srv := miniredis.RunT(t)
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)

	client, err := database.NewRedisClient(models.RedisConfig{Host: srv.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewQueue("test", client, cfg)
}

func TestEnqueue_DeduplicatesJobID(t *testing.T) {
	q := newStoreBackedQueue(t, models.SchedulerConfig{})
	ctx := context.Background()

	id, err := q.Enqueue(ctx, "find-closest-shoemakers",
		models.TripRequestJob{TripID: "trip-1"}, WithJobID("QUEUE-trip-1"))
	require.NoError(t, err)
	assert.Equal(t, "QUEUE-trip-1", id)

	_, err = q.Enqueue(ctx, "find-closest-shoemakers",
		models.TripRequestJob{TripID: "trip-1"}, WithJobID("QUEUE-trip-1"))
	assert.ErrorIs(t, err, ErrDuplicateJob)
}

func TestPromoteDue_MovesDelayedJobToWaiting(t *testing.T) {
	q := newStoreBackedQueue(t, models.SchedulerConfig{})
	ctx := context.Background()

	id, err := q.Enqueue(ctx, "find-closest-shoemakers",
		models.TripRequestJob{TripID: "trip-1"},
		WithJobID("QUEUE-trip-1"), WithDelay(10*time.Millisecond))
	require.NoError(t, err)

	job, err := q.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, StateDelayed, job.State)

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, q.promoteDue(ctx))

	job, err = q.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, StateWaiting, job.State)

	popped, err := q.redis.RPop(ctx, q.waitingKey())
	require.NoError(t, err)
	assert.Equal(t, id, popped)
}

func TestCancel_WhileDelayedDropsJob(t *testing.T) {
	q := newStoreBackedQueue(t, models.SchedulerConfig{})
	ctx := context.Background()

	id, err := q.Enqueue(ctx, "find-closest-shoemakers",
		models.TripRequestJob{TripID: "trip-1"},
		WithJobID("QUEUE-trip-1"), WithDelay(10*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, q.Cancel(ctx, id))

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, q.promoteDue(ctx))

	job, err := q.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, job)

	_, err = q.redis.RPop(ctx, q.waitingKey())
	assert.True(t, database.IsNil(err))
}

func TestExecute_RetriesThenParksDead(t *testing.T) {
	q := newStoreBackedQueue(t, models.SchedulerConfig{MaxAttempts: 2, BackoffBaseSec: 1})
	ctx := context.Background()

	runs := 0
	q.Handle("find-closest-shoemakers", func(context.Context, *Job) error {
		runs++
		return errors.New("no database")
	})

	id, err := q.Enqueue(ctx, "find-closest-shoemakers",
		models.TripRequestJob{TripID: "trip-1"}, WithJobID("QUEUE-trip-1"))
	require.NoError(t, err)

	q.execute(ctx, id)

	job, err := q.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, StateDelayed, job.State)
	assert.Equal(t, 1, job.Attempts)
	assert.Contains(t, job.LastError, "no database")

	q.execute(ctx, id)

	job, err = q.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, StateDead, job.State)
	assert.Equal(t, 2, job.Attempts)
	assert.Equal(t, 2, runs)

	dead, err := q.redis.SIsMember(ctx, q.deadKey(), id)
	require.NoError(t, err)
	assert.True(t, dead)
}

// A handler may cancel its own job and enqueue a replacement under the
// same deterministic ID, the way a scheduled trip requeues its search.
// The replacement must survive the finished run's cleanup and execute
// once due.
func TestExecute_RequeueUnderSameIDSurvivesCompletion(t *testing.T) {
	q := newStoreBackedQueue(t, models.SchedulerConfig{})
	ctx := context.Background()

	runs := 0
	q.Handle("find-closest-shoemakers", func(ctx context.Context, job *Job) error {
		runs++
		if runs == 1 {
			require.NoError(t, q.Cancel(ctx, job.ID))
			_, err := q.Enqueue(ctx, job.Name,
				models.TripRequestJob{TripID: "trip-1"},
				WithJobID(job.ID), WithDelay(10*time.Millisecond))
			require.NoError(t, err)
		}
		return nil
	})

	id, err := q.Enqueue(ctx, "find-closest-shoemakers",
		models.TripRequestJob{TripID: "trip-1"}, WithJobID("QUEUE-trip-1"))
	require.NoError(t, err)

	popped, err := q.redis.RPop(ctx, q.waitingKey())
	require.NoError(t, err)
	q.execute(ctx, popped)

	job, err := q.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, job, "requeued job must survive the first run's cleanup")
	assert.Equal(t, StateDelayed, job.State)
	assert.Equal(t, 0, job.Attempts)

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, q.promoteDue(ctx))

	popped, err = q.redis.RPop(ctx, q.waitingKey())
	require.NoError(t, err)
	q.execute(ctx, popped)

	assert.Equal(t, 2, runs)

	job, err = q.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestExecute_CancelWhileActiveSkipsRetry(t *testing.T) {
	q := newStoreBackedQueue(t, models.SchedulerConfig{MaxAttempts: 3})
	ctx := context.Background()

	q.Handle("find-closest-shoemakers", func(ctx context.Context, job *Job) error {
		require.NoError(t, q.Cancel(ctx, job.ID))
		return errors.New("boom")
	})

	id, err := q.Enqueue(ctx, "find-closest-shoemakers",
		models.TripRequestJob{TripID: "trip-1"}, WithJobID("QUEUE-trip-1"))
	require.NoError(t, err)

	q.execute(ctx, id)

	job, err := q.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, job, "canceled job must not be rescheduled")

	due, err := q.redis.ZRangeByScore(ctx, q.delayedKey(), "-inf", "+inf")
	require.NoError(t, err)
	assert.Empty(t, due)
}
