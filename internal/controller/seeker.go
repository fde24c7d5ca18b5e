package controller

import (
	"context"
	"fmt"

	"job-board-web/internal/models"
)

// SeekerRegistrar registers job seekers.
type SeekerRegistrar interface {
	RegisterJobSeeker(ctx context.Context, req models.JobSeekerRegisterRequest) (string, error)
}

var seekerLabels = map[string]string{
	"name":       "First name",
	"lastName":   "Last name",
	"nationalId": "National ID",
	"birthDate":  "Birth date",
	"email":      "Email",
}

// JobSeekerForm is the job seeker registration page.
type JobSeekerForm struct {
	*Form[models.JobSeekerRegisterRequest]
}

func NewJobSeekerForm(registrar SeekerRegistrar, opts ...FormOption) *JobSeekerForm {
	validate := func(d models.JobSeekerRegisterRequest) error {
		return checkStruct(d, passwordRules, seekerLabels)
	}
	return &JobSeekerForm{
		Form: newForm("register-seeker", models.JobSeekerRegisterRequest{}, validate, registrar.RegisterJobSeeker,
			"Registration failed", "Failed to register. Please try again.", newFormConfig(opts)),
	}
}

// SetField updates one field by its wire name.
func (f *JobSeekerForm) SetField(name, value string) error {
	return f.edit(func(d *models.JobSeekerRegisterRequest) error {
		switch name {
		case "name":
			d.Name = value
		case "lastName":
			d.LastName = value
		case "nationalId":
			d.NationalID = value
		case "birthDate":
			d.BirthDate = value
		case "email":
			d.Email = value
		case "password":
			d.Password = value
		case "confirmPassword":
			d.ConfirmPassword = value
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		return nil
	})
}
