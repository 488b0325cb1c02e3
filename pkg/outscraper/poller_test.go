package outscraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

// deferringServer answers the submit endpoint with a job handle and serves
// the scripted poll responses in order from /requests/{id}.
func deferringServer(t *testing.T, jobID string, pollResponses []string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var polls atomic.Int64
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/requests/") {
			idx := polls.Add(1) - 1
			if int(idx) >= len(pollResponses) {
				idx = int64(len(pollResponses) - 1)
			}
			_, _ = w.Write([]byte(pollResponses[idx]))
			return
		}
		_, _ = fmt.Fprintf(w, `{"id":%q,"status":"Pending","results_location":"%s/requests/%s"}`,
			jobID, server.URL, jobID)
	}))
	return server, &polls
}

func TestPollCompletesAfterPending(t *testing.T) {
	server, polls := deferringServer(t, "job-1", []string{
		`{"id":"job-1","status":"Pending"}`,
		`{"id":"job-1","status":"Pending"}`,
		`{"id":"job-1","status":"Success","data":[{"name":"done"}]}`,
	})
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	outcome, err := client.Run(context.Background(), "/maps/reviews-v3", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusCompleted {
		t.Fatalf("expected completed outcome, got %s", outcome.Status)
	}
	if outcome.JobID != "job-1" {
		t.Fatalf("expected job id preserved, got %q", outcome.JobID)
	}
	if len(outcome.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(outcome.Records))
	}
	if polls.Load() != 3 {
		t.Fatalf("expected 3 polls, got %d", polls.Load())
	}
}

func TestPollJobFailure(t *testing.T) {
	server, _ := deferringServer(t, "job-2", []string{
		`{"id":"job-2","status":"Error"}`,
	})
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	_, err := client.Run(context.Background(), "/maps/reviews-v3", nil)

	var failed *JobFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected JobFailedError, got %v", err)
	}
	if failed.JobID != "job-2" {
		t.Fatalf("expected job id in error, got %q", failed.JobID)
	}
}

func TestPollBudgetElapsedReturnsPendingOutcome(t *testing.T) {
	server, _ := deferringServer(t, "job-3", []string{
		`{"id":"job-3","status":"Pending"}`,
	})
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.PollIntervalMS = 5
	cfg.PollBudgetMS = 20
	client := NewClient(cfg, zerolog.Nop())

	outcome, err := client.Run(context.Background(), "/maps/reviews-v3", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusPending {
		t.Fatalf("expected pending outcome, got %s", outcome.Status)
	}
	if outcome.JobID != "job-3" {
		t.Fatalf("expected stable job id, got %q", outcome.JobID)
	}
}

func TestPollRepeatedRunsKeepStableJobID(t *testing.T) {
	server, _ := deferringServer(t, "job-4", []string{
		`{"id":"job-4","status":"Pending"}`,
	})
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.PollIntervalMS = 5
	cfg.PollBudgetMS = 15
	client := NewClient(cfg, zerolog.Nop())

	for i := 0; i < 2; i++ {
		outcome, err := client.Run(context.Background(), "/maps/reviews-v3", nil)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if outcome.Status != StatusPending || outcome.JobID != "job-4" {
			t.Fatalf("run %d: expected pending job-4, got %s %q", i, outcome.Status, outcome.JobID)
		}
	}
}

func TestPollFallsBackToRequestsEndpoint(t *testing.T) {
	var polledPath string
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/requests/") {
			polledPath = r.URL.Path
			_, _ = w.Write([]byte(`{"id":"job-5","status":"Success","data":[]}`))
			return
		}
		// No results_location in the submit response.
		_, _ = w.Write([]byte(`{"id":"job-5","status":"Pending"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zerolog.Nop())
	outcome, err := client.Run(context.Background(), "/maps/reviews-v3", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Status != StatusCompleted {
		t.Fatalf("expected completed outcome, got %s", outcome.Status)
	}
	if polledPath != "/requests/job-5" {
		t.Fatalf("expected poll against /requests/job-5, got %q", polledPath)
	}
}

func TestPollCancelledContext(t *testing.T) {
	server, _ := deferringServer(t, "job-6", []string{
		`{"id":"job-6","status":"Pending"}`,
	})
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.PollIntervalMS = 50
	cfg.PollBudgetMS = 10000
	client := NewClient(cfg, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Run(ctx, "/maps/reviews-v3", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
