package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	supabase "github.com/nedpals/supabase-go"
)

// submissionTable is the supabase table the log is written to.
const submissionTable = "submission_log"

// SupabaseStore uses the nedpals/supabase-go SDK to persist the submission log.
type SupabaseStore struct {
	client *supabase.Client
	table  string
}

// NewSupabaseStore creates a SupabaseStore. It reads SUPABASE_URL and SUPABASE_KEY
// from environment variables if empty values are provided.
func NewSupabaseStore(supabaseURL, supabaseKey string) (*SupabaseStore, error) {
	if supabaseURL == "" {
		supabaseURL = os.Getenv("SUPABASE_URL")
	}
	if supabaseKey == "" {
		supabaseKey = os.Getenv("SUPABASE_KEY")
	}
	switch {
	case supabaseURL == "" && supabaseKey == "":
		return nil, errors.New("supabase URL and key must be provided via args or SUPABASE_URL / SUPABASE_KEY env vars")
	case supabaseURL == "":
		return nil, errors.New("supabase key is set but SUPABASE_URL (storage.supabase_url) is missing")
	case supabaseKey == "":
		return nil, errors.New("supabase URL is set but SUPABASE_KEY (storage.supabase_key) is missing")
	}

	client := supabase.CreateClient(supabaseURL, supabaseKey)
	return &SupabaseStore{client: client, table: submissionTable}, nil
}

func (s *SupabaseStore) RecordSubmission(ctx context.Context, record SubmissionRecord) error {
	if record.SubmittedAt.IsZero() {
		record.SubmittedAt = time.Now()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// The SDK's query builder takes no context.
	var results []SubmissionRecord
	if err := s.client.DB.From(s.table).Insert(record).Execute(&results); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", s.table, err)
	}
	return nil
}

// Open picks the supabase store when credentials are available and the
// no-op store otherwise.
func Open(supabaseURL, supabaseKey string) (Store, error) {
	if supabaseURL == "" && supabaseKey == "" && os.Getenv("SUPABASE_URL") == "" {
		return NopStore{}, nil
	}
	return NewSupabaseStore(supabaseURL, supabaseKey)
}

// OpenOrNop is Open for binaries that keep running without the submission
// log when its credentials are incomplete. The failure is logged.
func OpenOrNop(supabaseURL, supabaseKey string, logger *slog.Logger) Store {
	store, err := Open(supabaseURL, supabaseKey)
	if err != nil {
		logger.Warn("submission log disabled", "error", err)
		return NopStore{}
	}
	return store
}
