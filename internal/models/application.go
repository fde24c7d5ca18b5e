package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// ApplicationStatus is the server-owned state of a job application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// ApplicationStatuses lists every known status.
var ApplicationStatuses = []ApplicationStatus{StatusPending, StatusAccepted, StatusRejected}

// StatusNames joins the known statuses with sep.
func StatusNames(sep string) string {
	names := make([]string, len(ApplicationStatuses))
	for i, s := range ApplicationStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, sep)
}

// ParseApplicationStatus accepts a status name in any case.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	status := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown application status %q (want one of %s)", s, StatusNames(", "))
	}
	return status, nil
}

func (s ApplicationStatus) Valid() bool {
	return slices.Contains(ApplicationStatuses, s)
}

func (s ApplicationStatus) String() string {
	return string(s)
}

func (s *ApplicationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseApplicationStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// JobApplication links a job seeker to an advertisement.
type JobApplication struct {
	ID                  int               `json:"id"`
	JobAdvertisementID  int               `json:"jobAdvertisementId"`
	JobSeekerID         int               `json:"jobSeekerId"`
	JobTitle            string            `json:"jobTitle"`
	EmployerCompanyName string            `json:"employerCompanyName"`
	ApplicationDate     Date              `json:"applicationDate"`
	Status              ApplicationStatus `json:"status"`
}

// ApplyJobRequest is the body of POST /applications/apply.
type ApplyJobRequest struct {
	JobAdvertisementID int `json:"jobAdvertisementId" validate:"required,gt=0"`
	JobSeekerID        int `json:"jobSeekerId" validate:"required,gt=0"`
}

// UpdateApplicationStatusRequest is the body of POST /applications/update-status.
type UpdateApplicationStatusRequest struct {
	ApplicationID int               `json:"applicationId" validate:"required,gt=0"`
	Status        ApplicationStatus `json:"status" validate:"oneof=PENDING ACCEPTED REJECTED"`
}
