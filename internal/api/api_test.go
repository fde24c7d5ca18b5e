package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-board-web/internal/config"
	"job-board-web/internal/models"
	"job-board-web/pkg/httpclient"
)

// fakeAPI serves canned bodies keyed by request path.
func fakeAPI(t *testing.T, routes map[string]string) *httpclient.HttpClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return httpclient.NewHttpClient(srv.URL, time.Second)
}

func TestJobService_SortedByDeadline(t *testing.T) {
	client := fakeAPI(t, map[string]string{
		"/jobPost/sorted-by-deadline": `{"succes":true,"message":"listed","data":[
			{"id":1,"jobTitle":"Go Developer","companyName":"Acme","city":"Ankara","openPositionCount":1,"applicationDeadline":"2026-11-01","active":true},
			{"id":2,"jobTitle":"QA Engineer","companyName":"Globex","city":"Izmir","openPositionCount":3,"applicationDeadline":"2026-12-01","active":false}
		]}`,
	})

	jobs, err := NewJobService(client).SortedByDeadline(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Go Developer", jobs[0].Title)
	assert.False(t, jobs[1].Active)
}

func TestJobService_EmptyAndNullPayloads(t *testing.T) {
	client := fakeAPI(t, map[string]string{
		"/jobPost/getAll":     `{"success":true,"message":"","data":[]}`,
		"/jobPost/active":     `{"success":true,"message":"","data":null}`,
		"/jobPosition/getAll": `{"success":true,"message":"","data":null}`,
	})
	svc := NewJobService(client)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = svc.Active(context.Background())
	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Empty(t, serverErr.Message)

	positions, err := svc.Positions(context.Background())
	require.NoError(t, err)
	assert.Nil(t, positions)
}

func TestJobService_ServerFailure(t *testing.T) {
	client := fakeAPI(t, map[string]string{
		"/cities/getAll": `{"succes":false,"message":"database unavailable"}`,
	})

	_, err := NewJobService(client).Cities(context.Background())

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, "database unavailable", serverErr.Message)
}

func TestJobService_MissingSuccessFlagIsMalformed(t *testing.T) {
	client := fakeAPI(t, map[string]string{
		"/jobPosition/getAll": `{"data":[{"id":1,"title":"Developer"}]}`,
	})

	_, err := NewJobService(client).Positions(context.Background())

	var decodeErr *httpclient.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestJobService_WrongPayloadShape(t *testing.T) {
	client := fakeAPI(t, map[string]string{
		"/jobPosition/getAll": `{"success":true,"data":{"id":1}}`,
	})

	_, err := NewJobService(client).Positions(context.Background())

	var decodeErr *httpclient.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

type recordingDoer struct {
	method string
	path   string
	query  url.Values
	body   any
	reply  string
}

func (d *recordingDoer) Do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	d.method, d.path, d.query, d.body = method, path, query, body
	return json.Unmarshal([]byte(d.reply), out)
}

func TestServices_EndpointPaths(t *testing.T) {
	ctx := context.Background()
	d := &recordingDoer{reply: `{"success":true,"message":"done","data":[]}`}

	_, err := NewJobService(d).ActiveByEmployer(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, "/jobPost/active/by-employer", d.path)
	assert.Equal(t, []string{"12"}, d.query["employerId"])

	msg, err := NewJobService(d).Create(ctx, models.CreateJobAdvertisementRequest{JobPositionID: 1})
	require.NoError(t, err)
	assert.Equal(t, "done", msg)
	assert.Equal(t, http.MethodPost, d.method)
	assert.Equal(t, "/jobPost/add", d.path)

	_, err = NewAccountService(d).RegisterJobSeeker(ctx, models.JobSeekerRegisterRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/candidateController/register", d.path)

	_, err = NewAccountService(d).RegisterEmployer(ctx, models.EmployerRegisterRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/employers/register", d.path)

	_, err = NewApplicationService(d).Apply(ctx, models.ApplyJobRequest{JobAdvertisementID: 1, JobSeekerID: 2})
	require.NoError(t, err)
	assert.Equal(t, "/applications/apply", d.path)

	_, err = NewApplicationService(d).UpdateStatus(ctx, models.UpdateApplicationStatusRequest{ApplicationID: 3, Status: models.StatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, "/applications/update-status", d.path)

	_, err = NewApplicationService(d).ByJobSeeker(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "/applications/by-jobseeker/9", d.path)
	assert.Equal(t, http.MethodGet, d.method)
}

func TestServices_AdapterErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"success":false,"message":"already applied"}`)
	}))
	defer srv.Close()

	_, err := NewApplicationService(httpclient.NewHttpClient(srv.URL, time.Second)).
		Apply(context.Background(), models.ApplyJobRequest{JobAdvertisementID: 1, JobSeekerID: 2})

	var statusErr *httpclient.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "already applied", statusErr.Message)
}

func TestNewClient_SendsConfiguredHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "web", r.Header.Get("X-Client"))
		_, _ = io.WriteString(w, `{"success":true,"data":[{"id":3,"companyName":"Acme"}]}`)
	}))
	defer srv.Close()

	client := NewClient(config.APIConfig{
		BaseURL: srv.URL,
		Timeout: time.Second,
		Headers: map[string]string{"X-Client": "web"},
	})

	employers, err := NewAccountService(client).Employers(context.Background())
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, "Acme", employers[0].CompanyName)
}
