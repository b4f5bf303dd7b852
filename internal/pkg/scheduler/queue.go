package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/takerapp/taker-go/internal/pkg/constants"
	"github.com/takerapp/taker-go/internal/pkg/database"
	"github.com/takerapp/taker-go/internal/pkg/models"
)

// Handler processes a job. A non-nil error triggers a retry with
// backoff until the job's attempt limit is reached.
type Handler func(ctx context.Context, job *Job) error

// Queue is a Redis-backed delayed job queue. Jobs survive process
// restarts; delayed jobs are promoted to the waiting list when due and
// executed by the worker loop started with Run.
type Queue struct {
	name  string
	redis *database.RedisClient
	cfg   models.SchedulerConfig

	mu       sync.RWMutex
	handlers map[string]Handler

	sem chan struct{}
	wg  sync.WaitGroup
}

// NewQueue creates a queue with the given name
func NewQueue(name string, redisClient *database.RedisClient, cfg models.SchedulerConfig) *Queue {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 10
	}
	if cfg.PollIntervalMs <= 0 {
		cfg.PollIntervalMs = 500
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBaseSec <= 0 {
		cfg.BackoffBaseSec = 2
	}
	return &Queue{
		name:     name,
		redis:    redisClient,
		cfg:      cfg,
		handlers: make(map[string]Handler),
		sem:      make(chan struct{}, cfg.Concurrency),
	}
}

// Handle registers the handler for jobs enqueued under name
func (q *Queue) Handle(name string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[name] = h
}

// Enqueue adds a job to the queue and returns its ID
func (q *Queue) Enqueue(ctx context.Context, name string, payload interface{}, opts ...Option) (string, error) {
	options := jobOptions{maxAttempts: q.cfg.MaxAttempts}
	for _, opt := range opts {
		opt(&options)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job payload: %w", err)
	}

	job := &Job{
		ID:          options.jobID,
		Name:        name,
		Payload:     data,
		Attempts:    0,
		MaxAttempts: options.maxAttempts,
		RunAt:       time.Now().Add(options.delay),
		CreatedAt:   time.Now(),
	}
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if options.delay > 0 {
		job.State = StateDelayed
	} else {
		job.State = StateWaiting
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job: %w", err)
	}

	created, err := q.redis.SetNX(ctx, q.jobKey(job.ID), raw, 0)
	if err != nil {
		return "", fmt.Errorf("failed to store job: %w", err)
	}
	if !created {
		return job.ID, ErrDuplicateJob
	}

	if job.State == StateDelayed {
		err = q.redis.ZAdd(ctx, q.delayedKey(), float64(job.RunAt.UnixMilli()), job.ID)
	} else {
		err = q.redis.LPush(ctx, q.waitingKey(), job.ID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to queue job: %w", err)
	}

	return job.ID, nil
}

// Get returns a job by ID, or nil when it no longer exists
func (q *Queue) Get(ctx context.Context, id string) (*Job, error) {
	raw, err := q.redis.Get(ctx, q.jobKey(id))
	if err != nil {
		if database.IsNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}

// Cancel removes a job from the queue. Canceling an unknown or already
// finished job is a no-op. An active job finishes its current run but
// is not retried.
func (q *Queue) Cancel(ctx context.Context, id string) error {
	if err := q.redis.Delete(ctx, q.jobKey(id)); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if err := q.redis.ZRem(ctx, q.delayedKey(), id); err != nil {
		return err
	}
	if err := q.redis.LRem(ctx, q.waitingKey(), 0, id); err != nil {
		return err
	}
	return q.redis.SRem(ctx, q.deadKey(), id)
}

func (q *Queue) save(ctx context.Context, job *Job) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	return q.redis.Set(ctx, q.jobKey(job.ID), raw, 0)
}

func (q *Queue) jobKey(id string) string {
	return fmt.Sprintf(constants.KeyJob, q.name, id)
}

func (q *Queue) waitingKey() string {
	return fmt.Sprintf(constants.KeyJobWaiting, q.name)
}

func (q *Queue) delayedKey() string {
	return fmt.Sprintf(constants.KeyJobDelayed, q.name)
}

func (q *Queue) deadKey() string {
	return fmt.Sprintf(constants.KeyJobDead, q.name)
}
