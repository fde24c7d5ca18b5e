package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reply struct {
	status int
	body   string
}

// fakeAPI plays the job-board API for the commands.
type fakeAPI struct {
	mu      sync.Mutex
	routes  map[string]reply
	posted  map[string]string
	queries map[string]string
	hits    map[string]int
}

func newFakeAPI(t *testing.T, routes map[string]reply) (*fakeAPI, string) {
	t.Helper()
	f := &fakeAPI{routes: routes, posted: map[string]string{}, queries: map[string]string{}, hits: map[string]int{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv.URL
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.hits[r.URL.Path]++
	f.queries[r.URL.Path] = r.URL.RawQuery
	if r.Method == http.MethodPost {
		body, _ := io.ReadAll(r.Body)
		f.posted[r.URL.Path] = string(body)
	}

	rep, ok := f.routes[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if rep.status != 0 {
		w.WriteHeader(rep.status)
	}
	_, _ = io.WriteString(w, rep.body)
}

func (f *fakeAPI) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeAPI) Query(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[path]
}

func (f *fakeAPI) Posted(t *testing.T, path string) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(f.posted[path]), &body))
	return body
}

// run executes the CLI against apiURL with no env or config file.
func run(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"JOBBOARD_API_URL", "JOBBOARD_PORT", "JOBBOARD_EMPLOYER_ID", "JOBBOARD_LOG_LEVEL", "SUPABASE_URL", "SUPABASE_KEY"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	var stdout bytes.Buffer
	app := NewApp()
	app.Writer = &stdout
	app.ErrWriter = io.Discard

	base := []string{
		"jobboard-cli",
		"--env", filepath.Join(dir, "missing.env"),
		"--config", filepath.Join(dir, "missing.json"),
		"--api-url", apiURL,
	}
	err := app.Run(context.Background(), append(base, args...))
	return stdout.String(), err
}

const jobsBody = `{"succes":true,"message":"ok","data":[
	{"id":1,"jobTitle":"Go Developer","companyName":"Acme","city":"Ankara","openPositionCount":2,"minSalary":40000,"applicationDeadline":"2099-01-01","active":true},
	{"id":2,"jobTitle":"Designer","companyName":"Globex","city":"Izmir","openPositionCount":1,"applicationDeadline":"2099-02-01","active":false}
]}`

func TestJobsList(t *testing.T) {
	_, url := newFakeAPI(t, map[string]reply{"/jobPost/sorted-by-deadline": {body: jobsBody}})

	output, err := run(t, url, "jobs", "list", "--q", "acme")
	require.NoError(t, err)
	assert.Contains(t, output, "All Jobs: 1 job available")
	assert.Contains(t, output, "Go Developer")
	assert.Contains(t, output, "From $40,000")
	assert.NotContains(t, output, "Designer")

	output, err = run(t, url, "jobs", "list", "--active", "--q", "izmir")
	require.NoError(t, err)
	assert.Contains(t, output, "Active Jobs: 0 jobs available")
	assert.Contains(t, output, "No jobs found")
}

func TestJobsList_Failure(t *testing.T) {
	_, url := newFakeAPI(t, map[string]reply{"/jobPost/getAll": {body: `{"success":false,"message":"Maintenance"}`}})

	_, err := run(t, url, "jobs", "list", "--feed", "all")
	require.EqualError(t, err, "Maintenance")

	_, err = run(t, url, "jobs", "list")
	require.EqualError(t, err, "Failed to connect to the server")

	_, err = run(t, url, "jobs", "list", "--feed", "newest")
	require.Error(t, err)
}

func TestJobsList_EmployerFeed(t *testing.T) {
	api, url := newFakeAPI(t, map[string]reply{"/jobPost/active/by-employer": {body: jobsBody}})

	_, err := run(t, url, "jobs", "list", "--feed", "employer")
	require.Error(t, err)
	assert.Zero(t, api.Hits("/jobPost/active/by-employer"))

	_, err = run(t, url, "jobs", "list", "--feed", "employer", "--employer-id", "3")
	require.NoError(t, err)
	assert.Equal(t, "employerId=3", api.Query("/jobPost/active/by-employer"))
}

func TestLookups_PartialFailure(t *testing.T) {
	_, url := newFakeAPI(t, map[string]reply{
		"/jobPosition/getAll": {status: http.StatusServiceUnavailable},
		"/cities/getAll":      {body: `{"success":true,"data":[{"id":34,"cityName":"Istanbul"}]}`},
	})

	output, err := run(t, url, "jobs", "lookups")
	require.NoError(t, err)
	assert.Contains(t, output, "unavailable: Failed to connect to the server")
	assert.Contains(t, output, "Istanbul")
}

func TestRegisterSeeker_MismatchStaysLocal(t *testing.T) {
	api, url := newFakeAPI(t, map[string]reply{"/candidateController/register": {body: `{"success":true}`}})

	_, err := run(t, url, "register", "seeker",
		"--name", "Ayse", "--last-name", "Yilmaz", "--national-id", "12345678901",
		"--birth-date", "1994-03-12", "--email", "ayse@example.com",
		"--password", "secret1", "--confirm-password", "secret2")

	require.EqualError(t, err, "Passwords do not match")
	assert.Zero(t, api.Hits("/candidateController/register"))
}

func TestRegisterEmployer(t *testing.T) {
	api, url := newFakeAPI(t, map[string]reply{"/employers/register": {body: `{"succes":true,"message":"Employer registered"}`}})

	output, err := run(t, url, "register", "employer",
		"--company-name", "Acme Corp", "--web-page", "https://acme.example.com",
		"--email", "hr@acme.example.com", "--phone", "5550101234",
		"--password", "secret1", "--confirm-password", "secret1")

	require.NoError(t, err)
	assert.Contains(t, output, "Registration Successful!")
	assert.Contains(t, output, "Employer registered")
	assert.Equal(t, "Acme Corp", api.Posted(t, "/employers/register")["companyName"])
}

func TestPostJob(t *testing.T) {
	api, url := newFakeAPI(t, map[string]reply{"/jobPost/add": {body: `{"success":true,"message":"Job advertisement added"}`}})
	args := []string{"jobs", "post",
		"--position-id", "1", "--city-id", "34",
		"--description", "Build and run our Go services.",
		"--max-salary", "90000", "--deadline", "2026-12-01"}

	_, err := run(t, url, args...)
	require.EqualError(t, err, "Sign in as an employer to post a job")
	assert.Zero(t, api.Hits("/jobPost/add"))

	output, err := run(t, url, append(args, "--employer-id", "17")...)
	require.NoError(t, err)
	assert.Contains(t, output, "Job Posted Successfully!")

	body := api.Posted(t, "/jobPost/add")
	assert.EqualValues(t, 17, body["employerId"])
	assert.EqualValues(t, 1, body["openPositionCount"])
	assert.EqualValues(t, 90000, body["maxSalary"])
	assert.NotContains(t, body, "minSalary")
}

func TestApplications(t *testing.T) {
	api, url := newFakeAPI(t, map[string]reply{
		"/applications/apply":          {body: `{"success":true,"message":"Applied"}`},
		"/applications/update-status":  {body: `{"success":false,"message":"Application already closed"}`},
		"/applications/by-jobseeker/9": {body: `{"success":true,"data":[{"id":5,"jobAdvertisementId":1,"jobSeekerId":9,"jobTitle":"Go Developer","employerCompanyName":"Acme","applicationDate":"2026-10-01","status":"PENDING"}]}`},
	})

	output, err := run(t, url, "applications", "apply", "--job-id", "1", "--seeker-id", "9")
	require.NoError(t, err)
	assert.Contains(t, output, "Applied")
	assert.EqualValues(t, 9, api.Posted(t, "/applications/apply")["jobSeekerId"])

	_, err = run(t, url, "applications", "apply", "--job-id", "0", "--seeker-id", "9")
	require.EqualError(t, err, "jobAdvertisementId is required")

	_, err = run(t, url, "applications", "status", "--application-id", "5", "--status", "done")
	require.Error(t, err)
	assert.Zero(t, api.Hits("/applications/update-status"))

	_, err = run(t, url, "applications", "status", "--application-id", "5", "--status", "accepted")
	require.EqualError(t, err, "Application already closed")
	assert.Equal(t, "ACCEPTED", api.Posted(t, "/applications/update-status")["status"])

	output, err = run(t, url, "applications", "list", "--seeker-id", "9")
	require.NoError(t, err)
	assert.Contains(t, output, "Go Developer")
	assert.Contains(t, output, "PENDING")

	_, err = run(t, url, "applications", "list", "--seeker-id", "9", "--job-id", "1")
	require.Error(t, err)
}

func TestConfigWrite(t *testing.T) {
	_, url := newFakeAPI(t, nil)
	path := filepath.Join(t.TempDir(), "config.json")

	output, err := run(t, url, "config", "--write", path)
	require.NoError(t, err)
	assert.Contains(t, output, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), url)

	output, err = run(t, url, "config")
	require.NoError(t, err)
	assert.Contains(t, output, `"base_url": "`+url+`"`)
}
