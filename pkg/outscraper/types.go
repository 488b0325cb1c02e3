package outscraper

import (
	"encoding/json"
	"fmt"
)

// Record is one raw result row from the API. Rows are schemaless; the
// formatter in pkg/tools flattens them into stable shapes.
type Record = map[string]any

// Status tags an Outcome.
type Status string

const (
	// StatusCompleted means Records holds the full result set.
	StatusCompleted Status = "completed"
	// StatusPending means the job did not finish within the poll budget;
	// JobID identifies the remote job for a later retry.
	StatusPending Status = "pending"
)

// Outcome is the tagged result of one API operation. Failed jobs are
// reported on the error channel as *JobFailedError rather than as a third
// tag, so callers switch on Status and errors.As on the error.
type Outcome struct {
	Status  Status
	Records []Record
	JobID   string
}

// envelope is the wire shape of every Outscraper response. Synchronous
// answers carry data; deferred ones carry a job id and results location.
type envelope struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	Data            json.RawMessage `json:"data"`
	ResultsLocation string          `json:"results_location"`
}

// Remote job status literals.
const (
	jobStatusPending    = "Pending"
	jobStatusInProgress = "In progress"
	jobStatusSuccess    = "Success"
)

func (e *envelope) deferred() bool {
	if e.Status == jobStatusPending || e.Status == jobStatusInProgress {
		return true
	}
	return len(e.Data) == 0 && e.ResultsLocation != ""
}

// decodeRecords unwraps the data array. The API nests one result array per
// submitted query; a single-query response may arrive either nested or
// flat, so one level of nesting is flattened away.
func decodeRecords(data json.RawMessage) ([]Record, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var nested [][]Record
	if err := json.Unmarshal(data, &nested); err == nil {
		var records []Record
		for _, group := range nested {
			records = append(records, group...)
		}
		return records, nil
	}
	var flat []Record
	if err := json.Unmarshal(data, &flat); err == nil {
		return flat, nil
	}
	var single Record
	if err := json.Unmarshal(data, &single); err == nil {
		return []Record{single}, nil
	}
	return nil, fmt.Errorf("outscraper: unexpected data shape: %s", truncateForError(data))
}

func truncateForError(data []byte) string {
	const max = 120
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
