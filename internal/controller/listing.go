package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"job-board-web/internal/models"
)

// ListingState is the display state of the job listing.
type ListingState int

const (
	ListingLoading ListingState = iota
	ListingError
	ListingPopulated
)

func (s ListingState) String() string {
	switch s {
	case ListingLoading:
		return "loading"
	case ListingError:
		return "error"
	case ListingPopulated:
		return "populated"
	}
	return fmt.Sprintf("ListingState(%d)", int(s))
}

// JobFeed is the read side of the job service.
type JobFeed interface {
	SortedByDeadline(ctx context.Context) ([]models.JobAdvertisement, error)
	All(ctx context.Context) ([]models.JobAdvertisement, error)
	Active(ctx context.Context) ([]models.JobAdvertisement, error)
	ActiveByEmployer(ctx context.Context, employerID int) ([]models.JobAdvertisement, error)
}

// Feed selects which listing endpoint the controller reads.
type Feed string

const (
	FeedSortedByDeadline Feed = "sorted"
	FeedAll              Feed = "all"
	FeedActive           Feed = "active"
	FeedByEmployer       Feed = "employer"
)

// ParseFeed maps a feed name to a Feed; the empty name is the default feed.
func ParseFeed(name string) (Feed, error) {
	switch Feed(name) {
	case "":
		return FeedSortedByDeadline, nil
	case FeedSortedByDeadline, FeedAll, FeedActive, FeedByEmployer:
		return Feed(name), nil
	}
	return "", fmt.Errorf("unknown feed %q (want sorted, all, active or employer)", name)
}

// loadFailureMessage is used when the server rejects the listing without a message.
const loadFailureMessage = "Failed to load jobs"

// Listing drives the home page: it fetches jobs and derives the filtered view.
type Listing struct {
	mu         sync.RWMutex
	feed       JobFeed
	source     Feed
	employerID int
	state      ListingState
	jobs       []models.JobAdvertisement
	message    string
	now        func() time.Time
	logger     *slog.Logger
}

// ListingOption customises a Listing.
type ListingOption func(*Listing)

// WithFeed reads from another listing endpoint. employerID is only used by
// FeedByEmployer.
func WithFeed(source Feed, employerID int) ListingOption {
	return func(l *Listing) {
		l.source = source
		l.employerID = employerID
	}
}

// WithClock overrides the time source used for deadline flags.
func WithClock(now func() time.Time) ListingOption {
	return func(l *Listing) {
		l.now = now
	}
}

func NewListing(feed JobFeed, logger *slog.Logger, opts ...ListingOption) *Listing {
	l := &Listing{
		feed:   feed,
		source: FeedSortedByDeadline,
		state:  ListingLoading,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the listing. It is used on mount and for "Try Again"; there
// is no automatic retry.
func (l *Listing) Load(ctx context.Context) ListingState {
	l.mu.Lock()
	l.state = ListingLoading
	l.message = ""
	l.mu.Unlock()

	jobs, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.jobs = nil
		l.state = ListingError
		if isTransport(err) {
			l.logger.Error("failed to load jobs", "feed", l.source, "error", err)
			l.message = UserMessage(err, loadFailureMessage, connectFailureMessage)
		} else {
			l.logger.Warn("job listing rejected", "feed", l.source, "error", err)
			l.message = UserMessage(err, loadFailureMessage, loadFailureMessage)
		}
		return l.state
	}

	l.jobs = jobs
	l.state = ListingPopulated
	l.logger.Debug("jobs loaded", "feed", l.source, "count", len(jobs))
	return l.state
}

func (l *Listing) fetch(ctx context.Context) ([]models.JobAdvertisement, error) {
	switch l.source {
	case FeedAll:
		return l.feed.All(ctx)
	case FeedActive:
		return l.feed.Active(ctx)
	case FeedByEmployer:
		return l.feed.ActiveByEmployer(ctx, l.employerID)
	default:
		return l.feed.SortedByDeadline(ctx)
	}
}

func (l *Listing) State() ListingState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Message is the error text shown in the error state.
func (l *Listing) Message() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.message
}

// Jobs returns a copy of the unfiltered listing.
func (l *Listing) Jobs() []models.JobAdvertisement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.JobAdvertisement(nil), l.jobs...)
}

// JobCard is one rendered entry of the listing.
type JobCard struct {
	Job          models.JobAdvertisement
	DeadlineSoon bool
}

// ListingView is everything the listing page displays.
type ListingView struct {
	State      ListingState
	Message    string
	Term       string
	ActiveOnly bool
	Cards      []JobCard
}

// Empty reports the populated-empty state ("no jobs found").
func (v ListingView) Empty() bool {
	return v.State == ListingPopulated && len(v.Cards) == 0
}

func (v ListingView) Heading() string {
	if v.ActiveOnly {
		return "Active Jobs"
	}
	return "All Jobs"
}

func (v ListingView) CountLabel() string {
	if len(v.Cards) == 1 {
		return "1 job available"
	}
	return fmt.Sprintf("%d jobs available", len(v.Cards))
}

// View derives the displayed subset. It never touches the network.
func (l *Listing) View(term string, activeOnly bool) ListingView {
	l.mu.RLock()
	defer l.mu.RUnlock()

	view := ListingView{
		State:      l.state,
		Message:    l.message,
		Term:       term,
		ActiveOnly: activeOnly,
	}
	if l.state != ListingPopulated {
		return view
	}

	now := l.now()
	for _, job := range FilterJobs(l.jobs, term, activeOnly) {
		view.Cards = append(view.Cards, JobCard{
			Job:          job,
			DeadlineSoon: DeadlineSoon(job.ApplicationDeadline, now),
		})
	}
	return view
}
