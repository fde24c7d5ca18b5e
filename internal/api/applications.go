package api

import (
	"context"
	"fmt"

	"job-board-web/internal/models"
)

// ApplicationService wraps the job application endpoints.
type ApplicationService struct {
	client Doer
}

func NewApplicationService(client Doer) *ApplicationService {
	return &ApplicationService{client: client}
}

// Apply submits a job seeker's application to an advertisement.
func (s *ApplicationService) Apply(ctx context.Context, req models.ApplyJobRequest) (string, error) {
	return send(ctx, s.client, "/applications/apply", req)
}

// UpdateStatus moves an application to another status. The server decides
// which transitions are allowed.
func (s *ApplicationService) UpdateStatus(ctx context.Context, req models.UpdateApplicationStatusRequest) (string, error) {
	return send(ctx, s.client, "/applications/update-status", req)
}

func (s *ApplicationService) ByJobSeeker(ctx context.Context, jobSeekerID int) ([]models.JobApplication, error) {
	return fetch[[]models.JobApplication](ctx, s.client, fmt.Sprintf("/applications/by-jobseeker/%d", jobSeekerID), nil)
}

func (s *ApplicationService) ByAdvertisement(ctx context.Context, advertisementID int) ([]models.JobApplication, error) {
	return fetch[[]models.JobApplication](ctx, s.client, fmt.Sprintf("/applications/by-advertisement/%d", advertisementID), nil)
}
