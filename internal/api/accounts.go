package api

import (
	"context"

	"job-board-web/internal/models"
)

// AccountService wraps registration and account listing endpoints.
type AccountService struct {
	client Doer
}

func NewAccountService(client Doer) *AccountService {
	return &AccountService{client: client}
}

func (s *AccountService) RegisterJobSeeker(ctx context.Context, req models.JobSeekerRegisterRequest) (string, error) {
	return send(ctx, s.client, "/candidateController/register", req)
}

func (s *AccountService) RegisterEmployer(ctx context.Context, req models.EmployerRegisterRequest) (string, error) {
	return send(ctx, s.client, "/employers/register", req)
}

func (s *AccountService) JobSeekers(ctx context.Context) ([]models.JobSeeker, error) {
	return fetch[[]models.JobSeeker](ctx, s.client, "/candidateController/getAll", nil)
}

func (s *AccountService) Employers(ctx context.Context) ([]models.Employer, error) {
	return fetch[[]models.Employer](ctx, s.client, "/employers/getAll", nil)
}
