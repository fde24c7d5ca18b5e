package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/samber/mo"

	"job-board-web/internal/models"
)

const (
	minDescriptionLength = 10
	maxDescriptionLength = 5000
)

// JobPoster publishes advertisements and serves the form's lookups.
type JobPoster interface {
	ReferenceSource
	Create(ctx context.Context, req models.CreateJobAdvertisementRequest) (string, error)
}

// PostJobDraft holds the posting form's inputs. Numeric fields are unset
// until the user enters a value.
type PostJobDraft struct {
	JobPositionID       mo.Option[int]
	CityID              mo.Option[int]
	Description         string
	OpenPositionCount   mo.Option[int]
	MinSalary           mo.Option[float64]
	MaxSalary           mo.Option[float64]
	ApplicationDeadline string
}

// NewPostJobDraft returns the initial form values.
func NewPostJobDraft() PostJobDraft {
	return PostJobDraft{OpenPositionCount: mo.Some(1)}
}

// Request validates the draft and builds the API request posted as identity.
func (d PostJobDraft) Request(identity Identity) (models.CreateJobAdvertisementRequest, error) {
	var req models.CreateJobAdvertisementRequest

	positionID := d.JobPositionID.OrEmpty()
	cityID := d.CityID.OrEmpty()
	if positionID <= 0 || cityID <= 0 {
		return req, &ValidationError{Field: "jobPositionId", Message: "Please select job position and city"}
	}
	if utf8.RuneCountInString(d.Description) < minDescriptionLength {
		return req, &ValidationError{Field: "description", Message: fmt.Sprintf("Description must be at least %d characters", minDescriptionLength)}
	}
	if utf8.RuneCountInString(d.Description) > maxDescriptionLength {
		return req, &ValidationError{Field: "description", Message: fmt.Sprintf("Description must be at most %d characters", maxDescriptionLength)}
	}

	employerID, ok := identity.EmployerID.Get()
	if !ok {
		return req, &ValidationError{Field: "employerId", Message: "Sign in as an employer to post a job"}
	}

	count, ok := d.OpenPositionCount.Get()
	if !ok || count < 1 {
		return req, &ValidationError{Field: "openPositionCount", Message: "Number of open positions must be at least 1"}
	}
	if v, ok := d.MinSalary.Get(); ok && v < 0 {
		return req, &ValidationError{Field: "minSalary", Message: "Minimum salary cannot be negative"}
	}
	if v, ok := d.MaxSalary.Get(); ok && v < 0 {
		return req, &ValidationError{Field: "maxSalary", Message: "Maximum salary cannot be negative"}
	}

	if strings.TrimSpace(d.ApplicationDeadline) == "" {
		return req, &ValidationError{Field: "applicationDeadline", Message: "Application deadline is required"}
	}
	deadline, err := models.ParseDate(d.ApplicationDeadline)
	if err != nil {
		return req, &ValidationError{Field: "applicationDeadline", Message: "Application deadline must be a date (YYYY-MM-DD)"}
	}

	return models.CreateJobAdvertisementRequest{
		JobPositionID:       positionID,
		CityID:              cityID,
		EmployerID:          employerID,
		Description:         d.Description,
		OpenPositionCount:   count,
		MinSalary:           d.MinSalary,
		MaxSalary:           d.MaxSalary,
		ApplicationDeadline: deadline,
	}, nil
}

// PostJobForm is the job posting page.
type PostJobForm struct {
	*Form[PostJobDraft]

	poster JobPoster

	refMu     sync.RWMutex
	positions []models.JobPosition
	cities    []models.City
}

// NewPostJobForm builds the posting form acting as identity.
func NewPostJobForm(poster JobPoster, identity Identity, opts ...FormOption) *PostJobForm {
	validate := func(d PostJobDraft) error {
		_, err := d.Request(identity)
		return err
	}
	submit := func(ctx context.Context, d PostJobDraft) (string, error) {
		req, err := d.Request(identity)
		if err != nil {
			return "", err
		}
		return poster.Create(ctx, req)
	}

	return &PostJobForm{
		Form: newForm("post-job", NewPostJobDraft(), validate, submit,
			"Failed to post job", "Failed to post job. Please try again.", newFormConfig(opts)),
		poster: poster,
	}
}

// LoadReferenceData fills the position and city selectors. Failures are
// logged and leave the affected selector empty; the form stays usable.
func (f *PostJobForm) LoadReferenceData(ctx context.Context) ReferenceData {
	data := FetchReferenceData(ctx, f.poster, f.cfg.logger)

	f.refMu.Lock()
	defer f.refMu.Unlock()
	f.positions = data.Positions.OrEmpty()
	f.cities = data.Cities.OrEmpty()
	return data
}

func (f *PostJobForm) Positions() []models.JobPosition {
	f.refMu.RLock()
	defer f.refMu.RUnlock()
	return append([]models.JobPosition(nil), f.positions...)
}

func (f *PostJobForm) Cities() []models.City {
	f.refMu.RLock()
	defer f.refMu.RUnlock()
	return append([]models.City(nil), f.cities...)
}

// SetField updates one field by its wire name. Numeric fields are coerced;
// an empty value unsets them.
func (f *PostJobForm) SetField(name, value string) error {
	return f.edit(func(d *PostJobDraft) error {
		var err error
		switch name {
		case "jobPositionId":
			d.JobPositionID, err = parseOptionalInt(name, value)
		case "cityId":
			d.CityID, err = parseOptionalInt(name, value)
		case "openPositionCount":
			d.OpenPositionCount, err = parseOptionalInt(name, value)
		case "minSalary":
			d.MinSalary, err = parseOptionalFloat(name, value)
		case "maxSalary":
			d.MaxSalary, err = parseOptionalFloat(name, value)
		case "description":
			d.Description = value
		case "applicationDeadline":
			d.ApplicationDeadline = value
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		return err
	})
}

func parseOptionalInt(field, value string) (mo.Option[int], error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return mo.None[int](), nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return mo.None[int](), &ValidationError{Field: field, Message: fmt.Sprintf("%s must be a whole number", field)}
	}
	return mo.Some(n), nil
}

func parseOptionalFloat(field, value string) (mo.Option[float64], error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return mo.None[float64](), nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return mo.None[float64](), &ValidationError{Field: field, Message: fmt.Sprintf("%s must be a number", field)}
	}
	return mo.Some(n), nil
}
