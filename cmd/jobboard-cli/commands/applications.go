package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"job-board-web/internal/controller"
	"job-board-web/internal/format"
	"job-board-web/internal/models"
)

// ApplyAction applies a job seeker to an advertisement.
func ApplyAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	req := models.ApplyJobRequest{
		JobAdvertisementID: int(cmd.Int("job-id")),
		JobSeekerID:        int(cmd.Int("seeker-id")),
	}
	if err := controller.ValidateRequest(req); err != nil {
		return failure(err, "")
	}

	msg, err := appCtx.Applications.Apply(ctx, req)
	if err != nil {
		return failure(err, "Failed to apply")
	}

	appCtx.Logger.Info("application submitted", "job", req.JobAdvertisementID, "seeker", req.JobSeekerID)
	fmt.Fprintln(out(cmd), orDefault(msg, "Application submitted"))
	return nil
}

// ApplicationStatusAction moves an application to a new status. Whether the
// transition is allowed is up to the server.
func ApplicationStatusAction(ctx context.Context, cmd *cli.Command) error {
	status, err := models.ParseApplicationStatus(cmd.String("status"))
	if err != nil {
		return err
	}

	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	req := models.UpdateApplicationStatusRequest{
		ApplicationID: int(cmd.Int("application-id")),
		Status:        status,
	}
	if err := controller.ValidateRequest(req); err != nil {
		return failure(err, "")
	}

	msg, err := appCtx.Applications.UpdateStatus(ctx, req)
	if err != nil {
		return failure(err, "Failed to update application status")
	}
	fmt.Fprintln(out(cmd), orDefault(msg, "Application status updated"))
	return nil
}

// ApplicationsListAction lists the applications of a job seeker or of an
// advertisement.
func ApplicationsListAction(ctx context.Context, cmd *cli.Command) error {
	seekerID, jobID := cmd.Int("seeker-id"), cmd.Int("job-id")
	if (seekerID > 0) == (jobID > 0) {
		return errors.New("pass exactly one of --seeker-id or --job-id")
	}

	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	var applications []models.JobApplication
	if seekerID > 0 {
		applications, err = appCtx.Applications.ByJobSeeker(ctx, int(seekerID))
	} else {
		applications, err = appCtx.Applications.ByAdvertisement(ctx, int(jobID))
	}
	if err != nil {
		return failure(err, "Failed to load applications")
	}

	w := out(cmd)
	if len(applications) == 0 {
		fmt.Fprintln(w, "No applications found")
		return nil
	}
	renderApplicationsTable(w, applications)
	return nil
}

func renderApplicationsTable(w io.Writer, applications []models.JobApplication) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Job", "Company", "Seeker", "Applied", "Status")

	for _, a := range applications {
		table.Append(
			strconv.Itoa(a.ID),
			a.JobTitle,
			a.EmployerCompanyName,
			strconv.Itoa(a.JobSeekerID),
			format.Date(a.ApplicationDate),
			a.Status.String(),
		)
	}

	table.Render()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
