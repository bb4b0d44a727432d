package catalyst

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Defaults for the [Client.Simulate] polling loop.
const (
	defaultPollInterval = 500 * time.Millisecond
	defaultMaxWait      = 5 * time.Minute
)

// SubmitJob submits a simulation job without waiting for it to run.
//
// The returned [Job] carries the job ID and its initial status, normally
// [JobStatusQueued]. Poll it with [Client.GetJob], or use
// [Client.Simulate] to submit and wait in one call.
func (c *Client) SubmitJob(ctx context.Context, req *JobRequest) (*Job, error) {
	// The API expects the stimulus and reward lists present, empty
	// rather than null.
	body := *req
	if body.Stimuli == nil {
		body.Stimuli = []Stimulus{}
	}
	if body.Rewards == nil {
		body.Rewards = []Reward{}
	}

	var out Job
	if err := c.do(ctx, http.MethodPost, "/v1/jobs", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJob fetches the current status of a job and, once available, its
// summary results.
func (c *Client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	var out Job
	if err := c.do(ctx, http.MethodGet, "/v1/jobs/"+url.PathEscape(jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSpikes fetches the full per-population spike train data of a
// completed job.
func (c *Client) GetSpikes(ctx context.Context, jobID string) (*SpikeData, error) {
	var out SpikeData
	if err := c.do(ctx, http.MethodGet, "/v1/jobs/"+url.PathEscape(jobID)+"/spikes", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SimulateOption configures a single [Client.Simulate] call.
type SimulateOption func(*simulateConfig)

type simulateConfig struct {
	pollInterval time.Duration
	maxWait      time.Duration
}

// WithPollInterval sets the pause between status checks. Default 500ms.
func WithPollInterval(d time.Duration) SimulateOption {
	return func(cfg *simulateConfig) {
		cfg.pollInterval = d
	}
}

// WithMaxWait sets the maximum wall-clock time to wait for the job to
// reach a terminal state. Default 5 minutes.
func WithMaxWait(d time.Duration) SimulateOption {
	return func(cfg *simulateConfig) {
		cfg.maxWait = d
	}
}

// Simulate submits a job and blocks until it finishes.
//
// It calls [Client.SubmitJob], then polls [Client.GetJob] until the job
// reports completed or failed. A completed job is returned as-is. A failed
// job becomes an *APIError with status 500 carrying the server's error
// message. Every other status, including ones introduced by future server
// versions, counts as still pending and keeps the loop going.
//
// If the job is still pending when the maximum wait elapses, Simulate
// returns a *TimeoutError; the job itself keeps running server-side.
// Cancelling the context stops the loop between polls.
func (c *Client) Simulate(ctx context.Context, req *JobRequest, opts ...SimulateOption) (*Job, error) {
	cfg := simulateConfig{
		pollInterval: defaultPollInterval,
		maxWait:      defaultMaxWait,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	submitted, err := c.SubmitJob(ctx, req)
	if err != nil {
		return nil, err
	}
	jobID := submitted.JobID

	start := time.Now()
	for {
		job, err := c.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}

		switch job.Status {
		case JobStatusCompleted:
			return job, nil
		case JobStatusFailed:
			detail := job.ErrorMessage
			if detail == "" {
				detail = "Job failed"
			}
			return nil, &APIError{StatusCode: http.StatusInternalServerError, Detail: detail}
		}

		if time.Since(start) > cfg.maxWait {
			return nil, &TimeoutError{JobID: jobID, MaxWait: cfg.maxWait}
		}

		select {
		case <-time.After(cfg.pollInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
