package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobAdvertisement_Decode(t *testing.T) {
	raw := `{
		"id": 4,
		"jobTitle": "Backend Developer",
		"companyName": "Acme",
		"city": "Izmir",
		"openPositionCount": 2,
		"minSalary": 45000,
		"maxSalary": null,
		"releaseDate": "2026-10-01",
		"applicationDeadline": "2026-10-20T00:00:00",
		"active": true
	}`

	var job JobAdvertisement
	require.NoError(t, json.Unmarshal([]byte(raw), &job))

	assert.Equal(t, "Backend Developer", job.Title)
	assert.Equal(t, mo.Some(45000.0), job.MinSalary)
	assert.True(t, job.MaxSalary.IsAbsent())
	assert.Equal(t, NewDate(2026, time.October, 1), job.ReleaseDate)
	assert.Equal(t, NewDate(2026, time.October, 20), job.ApplicationDeadline)
}

func TestCreateJobAdvertisementRequest_OmitsUnsetSalaries(t *testing.T) {
	req := CreateJobAdvertisementRequest{
		JobPositionID:       1,
		CityID:              34,
		EmployerID:          5,
		Description:         "Build and run our APIs",
		OpenPositionCount:   1,
		MaxSalary:           mo.Some(90000.0),
		ApplicationDeadline: NewDate(2026, time.December, 1),
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"jobPositionId": 1,
		"cityId": 34,
		"employerId": 5,
		"description": "Build and run our APIs",
		"openPositionCount": 1,
		"maxSalary": 90000,
		"applicationDeadline": "2026-12-01"
	}`, string(data))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-02-28")
	require.NoError(t, err)
	assert.Equal(t, "1990-02-28", d.String())

	_, err = ParseDate("28/02/1990")
	assert.Error(t, err)
}

func TestApplicationStatus(t *testing.T) {
	status, err := ParseApplicationStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, status)

	_, err = ParseApplicationStatus("WITHDRAWN")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PENDING, ACCEPTED, REJECTED")
	assert.Equal(t, "PENDING|ACCEPTED|REJECTED", StatusNames("|"))

	var app JobApplication
	err = json.Unmarshal([]byte(`{"id":1,"status":"MAYBE"}`), &app)
	assert.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"status":"REJECTED","applicationDate":"2026-09-30"}`), &app))
	assert.Equal(t, StatusRejected, app.Status)
}
