package controller

import (
	"context"
	"fmt"

	"job-board-web/internal/models"
)

// EmployerRegistrar registers employers.
type EmployerRegistrar interface {
	RegisterEmployer(ctx context.Context, req models.EmployerRegisterRequest) (string, error)
}

var employerLabels = map[string]string{
	"companyName":    "Company name",
	"companyWebPage": "Company web page",
	"email":          "Email",
	"phoneNumber":    "Phone number",
}

// EmployerForm is the employer registration page.
type EmployerForm struct {
	*Form[models.EmployerRegisterRequest]
}

func NewEmployerForm(registrar EmployerRegistrar, opts ...FormOption) *EmployerForm {
	validate := func(d models.EmployerRegisterRequest) error {
		return checkStruct(d, passwordRules, employerLabels)
	}
	return &EmployerForm{
		Form: newForm("register-employer", models.EmployerRegisterRequest{}, validate, registrar.RegisterEmployer,
			"Registration failed", "Failed to register. Please try again.", newFormConfig(opts)),
	}
}

// SetField updates one field by its wire name.
func (f *EmployerForm) SetField(name, value string) error {
	return f.edit(func(d *models.EmployerRegisterRequest) error {
		switch name {
		case "companyName":
			d.CompanyName = value
		case "companyWebPage":
			d.CompanyWebPage = value
		case "email":
			d.Email = value
		case "phoneNumber":
			d.PhoneNumber = value
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
