package outscraper

import (
	"context"
	"time"
)

// poll drives a deferred job to a terminal state. States: submitted →
// pending → {completed, failed, timed-out}. A job still pending when the
// budget elapses is returned as a pending Outcome carrying the job id so
// the caller can come back later instead of blocking.
func (c *Client) poll(ctx context.Context, submitted *envelope) (*Outcome, error) {
	jobID := submitted.ID
	location := submitted.ResultsLocation
	if location == "" {
		location = c.endpoint("/requests/" + jobID)
	}

	c.log.Info().Str("job_id", jobID).Msg("Request deferred, polling for results")

	deadline := time.Now().Add(c.cfg.pollBudget())
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			c.log.Info().Str("job_id", jobID).Msg("Poll budget elapsed, job still processing")
			return &Outcome{Status: StatusPending, JobID: jobID}, nil
		}

		wait := c.cfg.pollInterval()
		if wait > remaining {
			wait = remaining
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		env, err := c.get(ctx, location, nil)
		if err != nil {
			return nil, err
		}

		switch env.Status {
		case jobStatusSuccess:
			records, err := decodeRecords(env.Data)
			if err != nil {
				return nil, err
			}
			return &Outcome{Status: StatusCompleted, Records: records, JobID: jobID}, nil
		case jobStatusPending, jobStatusInProgress:
			continue
		default:
			return nil, &JobFailedError{JobID: jobID, Status: env.Status}
		}
	}
}
