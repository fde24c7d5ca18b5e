package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/urfave/cli/v3"

	"job-board-web/internal/controller"
)

// formField binds a command flag to a form field.
type formField struct {
	flag   string
	field  string
	label  string
	secret bool
}

var seekerFields = []formField{
	{flag: "name", field: "name", label: "First name"},
	{flag: "last-name", field: "lastName", label: "Last name"},
	{flag: "national-id", field: "nationalId", label: "National ID"},
	{flag: "birth-date", field: "birthDate", label: "Birth date (YYYY-MM-DD)"},
	{flag: "email", field: "email", label: "Email"},
	{flag: "password", field: "password", label: "Password", secret: true},
	{flag: "confirm-password", field: "confirmPassword", label: "Confirm password", secret: true},
}

var employerFields = []formField{
	{flag: "company-name", field: "companyName", label: "Company name"},
	{flag: "web-page", field: "companyWebPage", label: "Company web page"},
	{flag: "email", field: "email", label: "Email"},
	{flag: "phone", field: "phoneNumber", label: "Phone number"},
	{flag: "password", field: "password", label: "Password", secret: true},
	{flag: "confirm-password", field: "confirmPassword", label: "Confirm password", secret: true},
}

// fieldFlags declares one string flag per form field.
func fieldFlags(fields []formField) []cli.Flag {
	flags := make([]cli.Flag, 0, len(fields)+1)
	for _, f := range fields {
		flags = append(flags, &cli.StringFlag{Name: f.flag, Usage: f.label})
	}
	return append(flags, &cli.BoolFlag{
		Name:  "interactive",
		Usage: "prompt for every field",
	})
}

// collect reads the field values from flags, or prompts for them with the
// flags as defaults when --interactive is set.
func collect(cmd *cli.Command, fields []formField) (map[string]string, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		value := cmd.String(f.flag)
		if cmd.Bool("interactive") {
			prompt := promptui.Prompt{
				Label:   f.label,
				Default: value,
			}
			if f.secret {
				prompt.Mask = '*'
				prompt.Default = ""
			}
			var err error
			if value, err = prompt.Run(); err != nil {
				return nil, fmt.Errorf("input error: %w", err)
			}
		}
		values[f.field] = value
	}
	return values, nil
}

// submitForm fills a form, submits it and prints the outcome.
func submitForm(ctx context.Context, cmd *cli.Command, fields []formField, set func(name, value string) error, submit func(context.Context) error, message, confirmation func() string, heading string) error {
	values, err := collect(cmd, fields)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := set(f.field, values[f.field]); err != nil {
			var validationErr *controller.ValidationError
			if errors.As(err, &validationErr) {
				return errors.New(validationErr.Message)
			}
			return err
		}
	}

	if err := submit(ctx); err != nil {
		return errors.New(message())
	}

	w := out(cmd)
	fmt.Fprintln(w, heading)
	if c := confirmation(); c != "" {
		fmt.Fprintln(w, c)
	}
	return nil
}

// RegisterSeekerAction registers a job seeker account.
func RegisterSeekerAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	form := controller.NewJobSeekerForm(appCtx.Accounts, appCtx.FormOptions()...)
	return submitForm(ctx, cmd, seekerFields, form.SetField, form.Submit, form.Message, form.Confirmation, "Registration Successful!")
}

// RegisterEmployerAction registers an employer account.
func RegisterEmployerAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	form := controller.NewEmployerForm(appCtx.Accounts, appCtx.FormOptions()...)
	return submitForm(ctx, cmd, employerFields, form.SetField, form.Submit, form.Message, form.Confirmation, "Registration Successful!")
}
