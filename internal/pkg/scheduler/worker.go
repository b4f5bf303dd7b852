package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/takerapp/taker-go/internal/pkg/database"
	"github.com/takerapp/taker-go/internal/pkg/logger"
)

// Run starts the worker loop and blocks until ctx is canceled. Due
// delayed jobs are promoted to the waiting list, then waiting jobs are
// executed on the configured number of goroutines.
func (q *Queue) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(q.cfg.PollIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	logger.Info("Scheduler worker started",
		logger.String("queue", q.name),
		logger.Int("concurrency", q.cfg.Concurrency))

	for {
		select {
		case <-ctx.Done():
			q.wg.Wait()
			logger.Info("Scheduler worker stopped", logger.String("queue", q.name))
			return nil
		case <-ticker.C:
			if err := q.promoteDue(ctx); err != nil && ctx.Err() == nil {
				logger.Error("Failed to promote delayed jobs",
					logger.String("queue", q.name),
					logger.Err(err))
			}
			q.drainWaiting(ctx)
		}
	}
}

// promoteDue moves delayed jobs whose run time has passed onto the
// waiting list.
func (q *Queue) promoteDue(ctx context.Context) error {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	due, err := q.redis.ZRangeByScore(ctx, q.delayedKey(), "-inf", now)
	if err != nil {
		return err
	}

	for _, id := range due {
		if err := q.redis.ZRem(ctx, q.delayedKey(), id); err != nil {
			return err
		}

		job, err := q.Get(ctx, id)
		if err != nil {
			return err
		}
		if job == nil {
			// canceled while delayed
			continue
		}

		job.State = StateWaiting
		if err := q.save(ctx, job); err != nil {
			return err
		}
		if err := q.redis.LPush(ctx, q.waitingKey(), id); err != nil {
			return err
		}
	}
	return nil
}

// drainWaiting pops waiting jobs and runs them until the list is empty
// or all workers are busy.
func (q *Queue) drainWaiting(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case q.sem <- struct{}{}:
		}

		id, err := q.redis.RPop(ctx, q.waitingKey())
		if err != nil {
			<-q.sem
			if !database.IsNil(err) && ctx.Err() == nil {
				logger.Error("Failed to pop waiting job",
					logger.String("queue", q.name),
					logger.Err(err))
			}
			return
		}

		q.wg.Add(1)
		go func(jobID string) {
			defer q.wg.Done()
			defer func() { <-q.sem }()
			q.execute(ctx, jobID)
		}(id)
	}
}

func (q *Queue) execute(ctx context.Context, id string) {
	// bookkeeping must outlive a worker shutdown, otherwise a job
	// interrupted mid-run is stranded in the active state
	store := context.WithoutCancel(ctx)

	job, err := q.Get(store, id)
	if err != nil {
		logger.Error("Failed to load job for execution",
			logger.String("queue", q.name),
			logger.String("job_id", id),
			logger.Err(err))
		return
	}
	if job == nil {
		// canceled between promotion and execution
		return
	}

	q.mu.RLock()
	handler, ok := q.handlers[job.Name]
	q.mu.RUnlock()
	if !ok {
		logger.Error("No handler registered for job",
			logger.String("queue", q.name),
			logger.String("job_name", job.Name),
			logger.String("job_id", id))
		return
	}

	job.State = StateActive
	job.Attempts++
	job.RunToken = uuid.New().String()
	if err := q.save(store, job); err != nil {
		logger.Error("Failed to mark job active",
			logger.String("job_id", id),
			logger.Err(err))
		return
	}

	if err := q.runHandler(ctx, handler, job); err != nil {
		q.fail(store, job, err)
		return
	}
	q.complete(store, job)
}

// complete removes the finished job, keeping Get a liveness check. A
// handler may cancel its own job and enqueue a fresh one under the
// same deterministic ID; that job carries a different run token and is
// left alone.
func (q *Queue) complete(ctx context.Context, job *Job) {
	current, err := q.Get(ctx, job.ID)
	if err != nil {
		logger.Error("Failed to check completed job",
			logger.String("job_id", job.ID),
			logger.Err(err))
		return
	}
	if current == nil || current.RunToken != job.RunToken {
		return
	}
	if err := q.redis.Delete(ctx, q.jobKey(job.ID)); err != nil {
		logger.Error("Failed to remove completed job",
			logger.String("job_id", job.ID),
			logger.Err(err))
	}
}

func (q *Queue) runHandler(ctx context.Context, handler Handler, job *Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return handler(ctx, job)
}

// fail records a failed attempt, rescheduling the job with backoff or
// parking it on the dead set once its attempts are exhausted. A job
// canceled or replaced while it ran is not retried.
func (q *Queue) fail(ctx context.Context, job *Job, cause error) {
	current, err := q.Get(ctx, job.ID)
	if err != nil {
		logger.Error("Failed to check failed job",
			logger.String("job_id", job.ID),
			logger.Err(err))
		return
	}
	if current == nil || current.RunToken != job.RunToken {
		return
	}

	job.LastError = cause.Error()

	if job.Attempts >= job.MaxAttempts {
		job.State = StateDead
		if err := q.save(ctx, job); err != nil {
			logger.Error("Failed to persist dead job", logger.String("job_id", job.ID), logger.Err(err))
			return
		}
		if err := q.redis.SAdd(ctx, q.deadKey(), job.ID); err != nil {
			logger.Error("Failed to park dead job", logger.String("job_id", job.ID), logger.Err(err))
		}
		logger.Error("Job exhausted attempts",
			logger.String("queue", q.name),
			logger.String("job_name", job.Name),
			logger.String("job_id", job.ID),
			logger.Int("attempts", job.Attempts),
			logger.Err(cause))
		return
	}

	delay := q.backoff(job.Attempts)
	job.State = StateDelayed
	job.RunAt = time.Now().Add(delay)
	if err := q.save(ctx, job); err != nil {
		logger.Error("Failed to persist failed job", logger.String("job_id", job.ID), logger.Err(err))
		return
	}
	if err := q.redis.ZAdd(ctx, q.delayedKey(), float64(job.RunAt.UnixMilli()), job.ID); err != nil {
		logger.Error("Failed to reschedule job", logger.String("job_id", job.ID), logger.Err(err))
		return
	}

	logger.Warn("Job failed, retrying",
		logger.String("queue", q.name),
		logger.String("job_name", job.Name),
		logger.String("job_id", job.ID),
		logger.Int("attempt", job.Attempts),
		logger.Duration("retry_in", delay),
		logger.Err(cause))
}

// backoff returns the retry delay after the given number of attempts,
// doubling the base per attempt.
func (q *Queue) backoff(attempts int) time.Duration {
	delay := time.Duration(q.cfg.BackoffBaseSec) * time.Second
	for i := 1; i < attempts; i++ {
		delay *= 2
	}
	return delay
}
