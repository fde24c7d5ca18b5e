package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"job-board-web/internal/controller"
)

var postJobFields = []formField{
	{flag: "position-id", field: "jobPositionId", label: "Job position id"},
	{flag: "city-id", field: "cityId", label: "City id"},
	{flag: "description", field: "description", label: "Description"},
	{flag: "open-positions", field: "openPositionCount", label: "Open positions"},
	{flag: "min-salary", field: "minSalary", label: "Minimum salary"},
	{flag: "max-salary", field: "maxSalary", label: "Maximum salary"},
	{flag: "deadline", field: "applicationDeadline", label: "Application deadline (YYYY-MM-DD)"},
}

func postJobFlags() []cli.Flag {
	flags := fieldFlags(postJobFields)
	for _, f := range flags {
		if sf, ok := f.(*cli.StringFlag); ok && sf.Name == "open-positions" {
			sf.Value = "1"
		}
	}
	return append(flags, &cli.IntFlag{
		Name:  "employer-id",
		Usage: "employer to post as (defaults to session.default_employer_id)",
	})
}

// PostJobAction publishes a job advertisement as the selected employer.
func PostJobAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	form := controller.NewPostJobForm(appCtx.Jobs, appCtx.Identity(cmd), appCtx.FormOptions()...)
	return submitForm(ctx, cmd, postJobFields, form.SetField, form.Submit, form.Message, form.Confirmation, "Job Posted Successfully!")
}
