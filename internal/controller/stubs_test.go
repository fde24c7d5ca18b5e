package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"job-board-web/internal/api"
	"job-board-web/internal/models"
	"job-board-web/internal/storage"
	"job-board-web/pkg/httpclient"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")

type stubFeed struct {
	mu    sync.Mutex
	jobs  []models.JobAdvertisement
	err   error
	calls map[string]int
	byEmp int
}

func (s *stubFeed) hit(name string) ([]models.JobAdvertisement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[name]++
	return s.jobs, s.err
}

func (s *stubFeed) SortedByDeadline(ctx context.Context) ([]models.JobAdvertisement, error) {
	return s.hit("sorted")
}

func (s *stubFeed) All(ctx context.Context) ([]models.JobAdvertisement, error) {
	return s.hit("all")
}

func (s *stubFeed) Active(ctx context.Context) ([]models.JobAdvertisement, error) {
	return s.hit("active")
}

func (s *stubFeed) ActiveByEmployer(ctx context.Context, employerID int) ([]models.JobAdvertisement, error) {
	s.byEmp = employerID
	return s.hit("employer")
}

// stubAPI implements every write-side interface the forms use.
type stubAPI struct {
	mu      sync.Mutex
	calls   int
	reply   string
	err     error
	block   chan struct{}
	started chan struct{}

	lastSeeker   models.JobSeekerRegisterRequest
	lastEmployer models.EmployerRegisterRequest
	lastJob      models.CreateJobAdvertisementRequest

	positions    []models.JobPosition
	positionsErr error
	cities       []models.City
	citiesErr    error
}

func (s *stubAPI) respond() (string, error) {
	s.mu.Lock()
	s.calls++
	block, started := s.block, s.started
	s.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	return s.reply, s.err
}

func (s *stubAPI) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubAPI) RegisterJobSeeker(ctx context.Context, req models.JobSeekerRegisterRequest) (string, error) {
	s.mu.Lock()
	s.lastSeeker = req
	s.mu.Unlock()
	return s.respond()
}

func (s *stubAPI) RegisterEmployer(ctx context.Context, req models.EmployerRegisterRequest) (string, error) {
	s.mu.Lock()
	s.lastEmployer = req
	s.mu.Unlock()
	return s.respond()
}

func (s *stubAPI) Create(ctx context.Context, req models.CreateJobAdvertisementRequest) (string, error) {
	s.mu.Lock()
	s.lastJob = req
	s.mu.Unlock()
	return s.respond()
}

func (s *stubAPI) Positions(ctx context.Context) ([]models.JobPosition, error) {
	return s.positions, s.positionsErr
}

func (s *stubAPI) Cities(ctx context.Context) ([]models.City, error) {
	return s.cities, s.citiesErr
}

// fakeTimer captures the post-success delay instead of sleeping.
type fakeTimer struct {
	delay time.Duration
	fn    func()
}

func (f *fakeTimer) AfterFunc(d time.Duration, fn func()) {
	f.delay, f.fn = d, fn
}

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.paths = append(n.paths, path)
}

type memoryRecorder struct {
	records []storage.SubmissionRecord
	err     error
}

func (m *memoryRecorder) RecordSubmission(ctx context.Context, r storage.SubmissionRecord) error {
	m.records = append(m.records, r)
	return m.err
}

func serverRejection(msg string) error {
	return &api.ServerError{Path: "/test", Message: msg}
}

func statusFailure(msg string) error {
	return &httpclient.StatusError{Method: "POST", Path: "/test", StatusCode: 400, Message: msg}
}
