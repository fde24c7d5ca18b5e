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

// JobsListAction prints the job listing, filtered locally by --q and --active.
func JobsListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	feed, err := controller.ParseFeed(cmd.String("feed"))
	if err != nil {
		return err
	}

	employerID := 0
	if feed == controller.FeedByEmployer {
		id, ok := appCtx.Identity(cmd).EmployerID.Get()
		if !ok {
			return errors.New("the employer feed needs --employer-id")
		}
		employerID = id
	}

	listing := controller.NewListing(appCtx.Jobs, appCtx.Logger, controller.WithFeed(feed, employerID))
	if listing.Load(ctx) == controller.ListingError {
		return errors.New(listing.Message())
	}

	view := listing.View(cmd.String("q"), cmd.Bool("active"))
	w := out(cmd)
	fmt.Fprintf(w, "%s: %s\n", view.Heading(), view.CountLabel())
	if view.Empty() {
		fmt.Fprintln(w, "No jobs found")
		return nil
	}
	renderJobsTable(w, view.Cards)
	return nil
}

func renderJobsTable(w io.Writer, cards []controller.JobCard) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "Company", "City", "Positions", "Salary", "Deadline", "Status")

	for _, card := range cards {
		job := card.Job
		deadline := format.Date(job.ApplicationDeadline)
		if card.DeadlineSoon {
			deadline += " (soon)"
		}
		status := "closed"
		if job.Active {
			status = "active"
		}
		table.Append(
			strconv.Itoa(job.ID),
			job.Title,
			job.CompanyName,
			job.City,
			format.OpenPositions(job.OpenPositionCount),
			format.SalaryRange(job.MinSalary, job.MaxSalary),
			deadline,
			status,
		)
	}

	table.Render()
}

// LookupsAction prints the job positions and cities used when posting. A
// lookup that fails is reported and the other is still printed.
func LookupsAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	data := controller.FetchReferenceData(ctx, appCtx.Jobs, appCtx.Logger)
	w := out(cmd)

	fmt.Fprintln(w, "Job positions")
	if positions, err := data.Positions.Get(); err != nil {
		fmt.Fprintf(w, "  unavailable: %s\n", controller.UserMessage(err, "Failed to load job positions", "Failed to connect to the server"))
	} else {
		renderLookupTable(w, "Title", positions, func(p models.JobPosition) (int, string) { return p.ID, p.Title })
	}

	fmt.Fprintln(w, "Cities")
	if cities, err := data.Cities.Get(); err != nil {
		fmt.Fprintf(w, "  unavailable: %s\n", controller.UserMessage(err, "Failed to load cities", "Failed to connect to the server"))
	} else {
		renderLookupTable(w, "Name", cities, func(c models.City) (int, string) { return c.ID, c.Name })
	}

	if data.Positions.IsError() && data.Cities.IsError() {
		return errors.New("no lookups could be loaded")
	}
	return nil
}

func renderLookupTable[T any](w io.Writer, label string, items []T, row func(T) (int, string)) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", label)
	for _, item := range items {
		id, name := row(item)
		table.Append(strconv.Itoa(id), name)
	}
	table.Render()
}
