package api

import (
	"context"
	"net/url"
	"strconv"

	"job-board-web/internal/models"
)

// JobService wraps the job advertisement and lookup endpoints. The listing
// reads treat a missing payload as a rejection; the lookups return nil.
type JobService struct {
	client Doer
}

func NewJobService(client Doer) *JobService {
	return &JobService{client: client}
}

// All returns every job advertisement.
func (s *JobService) All(ctx context.Context) ([]models.JobAdvertisement, error) {
	return fetchRequired[[]models.JobAdvertisement](ctx, s.client, "/jobPost/getAll", nil)
}

// Active returns advertisements that are still open.
func (s *JobService) Active(ctx context.Context) ([]models.JobAdvertisement, error) {
	return fetchRequired[[]models.JobAdvertisement](ctx, s.client, "/jobPost/active", nil)
}

// SortedByDeadline returns advertisements ordered by application deadline.
func (s *JobService) SortedByDeadline(ctx context.Context) ([]models.JobAdvertisement, error) {
	return fetchRequired[[]models.JobAdvertisement](ctx, s.client, "/jobPost/sorted-by-deadline", nil)
}

// ActiveByEmployer returns one employer's open advertisements.
func (s *JobService) ActiveByEmployer(ctx context.Context, employerID int) ([]models.JobAdvertisement, error) {
	query := url.Values{"employerId": {strconv.Itoa(employerID)}}
	return fetchRequired[[]models.JobAdvertisement](ctx, s.client, "/jobPost/active/by-employer", query)
}

// Create publishes a new advertisement.
func (s *JobService) Create(ctx context.Context, req models.CreateJobAdvertisementRequest) (string, error) {
	return send(ctx, s.client, "/jobPost/add", req)
}

func (s *JobService) Positions(ctx context.Context) ([]models.JobPosition, error) {
	return fetch[[]models.JobPosition](ctx, s.client, "/jobPosition/getAll", nil)
}

func (s *JobService) Cities(ctx context.Context) ([]models.City, error) {
	return fetch[[]models.City](ctx, s.client, "/cities/getAll", nil)
}
