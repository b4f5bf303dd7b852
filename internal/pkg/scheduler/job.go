package scheduler

import (
	"encoding/json"
	"errors"
	"time"
)

// State represents the lifecycle state of a job
type State string

const (
	StateWaiting   State = "waiting"
	StateDelayed   State = "delayed"
	StateActive    State = "active"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
	StateDead      State = "dead"
)

// ErrDuplicateJob is returned when a job with the same ID already exists
var ErrDuplicateJob = errors.New("scheduler: duplicate job id")

// Job represents a unit of deferred work on a queue
type Job struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Payload     json.RawMessage `json:"payload"`
	State       State           `json:"state"`
	Attempts    int             `json:"attempts"`
	MaxAttempts int             `json:"max_attempts"`
	RunAt       time.Time       `json:"run_at"`
	CreatedAt   time.Time       `json:"created_at"`
	LastError   string          `json:"last_error,omitempty"`

	// RunToken identifies the active run. A job stored under the same
	// ID with a different token belongs to a newer enqueue and must not
	// be touched by this run's cleanup.
	RunToken string `json:"run_token,omitempty"`
}

// UnmarshalPayload decodes the job payload into v
func (j *Job) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(j.Payload, v)
}

// Option customizes a job at enqueue time
type Option func(*jobOptions)

type jobOptions struct {
	jobID       string
	delay       time.Duration
	maxAttempts int
}

// WithJobID sets a deterministic job ID. Enqueueing a second job with
// the same ID fails with ErrDuplicateJob while the first is still live.
func WithJobID(id string) Option {
	return func(o *jobOptions) { o.jobID = id }
}

// WithDelay delays the first execution of the job
func WithDelay(d time.Duration) Option {
	return func(o *jobOptions) { o.delay = d }
}

// WithMaxAttempts overrides the queue default attempt limit
func WithMaxAttempts(n int) Option {
	return func(o *jobOptions) { o.maxAttempts = n }
}
