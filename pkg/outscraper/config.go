package outscraper

import (
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production Outscraper API host.
	DefaultBaseURL = "https://api.app.outscraper.com"

	DefaultTimeoutSecs  = 30
	DefaultMaxAttempts  = 3
	DefaultRetryBaseMS  = 500
	DefaultPollInterval = 5000
	DefaultPollBudgetMS = 60000

	// DefaultAsyncReviewsLimit is the reviews count at which the API stops
	// answering inline and hands back a job. A requested limit of 0 means
	// "all reviews" and is always deferred.
	DefaultAsyncReviewsLimit = 500

	// DefaultAsyncQueryThreshold is the number of batched queries above
	// which a request is submitted as a deferred job.
	DefaultAsyncQueryThreshold = 10

	// DefaultMaxInlineReviews caps how many review records the formatter
	// includes before truncating with a notice.
	DefaultMaxInlineReviews = 50
)

// Config controls the Outscraper API client. Construct once in main and
// pass by reference; there is no package-level singleton.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`

	TimeoutSecs int `yaml:"timeout_seconds"`
	MaxAttempts int `yaml:"max_attempts"`
	RetryBaseMS int `yaml:"retry_base_ms"`

	PollIntervalMS int `yaml:"poll_interval_ms"`
	PollBudgetMS   int `yaml:"poll_budget_ms"`

	AsyncReviewsLimit   int `yaml:"async_reviews_limit"`
	AsyncQueryThreshold int `yaml:"async_query_threshold"`
	MaxInlineReviews    int `yaml:"max_inline_reviews"`
}

// WithDefaults fills unset fields with documented defaults.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.RetryBaseMS <= 0 {
		c.RetryBaseMS = DefaultRetryBaseMS
	}
	if c.PollIntervalMS <= 0 {
		c.PollIntervalMS = DefaultPollInterval
	}
	if c.PollBudgetMS <= 0 {
		c.PollBudgetMS = DefaultPollBudgetMS
	}
	if c.AsyncReviewsLimit <= 0 {
		c.AsyncReviewsLimit = DefaultAsyncReviewsLimit
	}
	if c.AsyncQueryThreshold <= 0 {
		c.AsyncQueryThreshold = DefaultAsyncQueryThreshold
	}
	if c.MaxInlineReviews <= 0 {
		c.MaxInlineReviews = DefaultMaxInlineReviews
	}
	return c
}

func (c *Config) timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

func (c *Config) pollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func (c *Config) pollBudget() time.Duration {
	return time.Duration(c.PollBudgetMS) * time.Millisecond
}

// retryDelay returns the backoff before the given attempt (1-based),
// doubling from the configured base.
func (c *Config) retryDelay(attempt int) time.Duration {
	delay := time.Duration(c.RetryBaseMS) * time.Millisecond
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	return delay
}
