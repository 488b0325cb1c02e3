package outscraper

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any network call when no credential
// is configured. Not retryable; set OUTSCRAPER_API_KEY.
var ErrMissingAPIKey = errors.New("outscraper: missing API key (set OUTSCRAPER_API_KEY)")

// RemoteError is a 4xx rejection from the Outscraper API: bad query,
// invalid credential, or exceeded quota. Never retried.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("outscraper: request rejected (http %d): %s", e.StatusCode, e.Body)
}

// TransientError reports a network failure or 5xx that persisted through
// the whole retry budget. The caller may retry the operation later.
type TransientError struct {
	Attempts int
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("outscraper: transient failure after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// JobFailedError reports a deferred extraction job that reached a failed
// terminal state.
type JobFailedError struct {
	JobID  string
	Status string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("outscraper: extraction job %s failed with status %q", e.JobID, e.Status)
}
