package storage

import (
	"context"
	"time"
)

// Outcome is how a submission attempt ended.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

// SubmissionRecord is one line of the submission log. It never holds form
// field values.
type SubmissionRecord struct {
	Form        string    `json:"form"`
	Outcome     Outcome   `json:"outcome"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type Store interface {
	RecordSubmission(ctx context.Context, record SubmissionRecord) error
}

// NopStore discards records. It is used when no log backend is configured.
type NopStore struct{}

func (NopStore) RecordSubmission(context.Context, SubmissionRecord) error {
	return nil
}
