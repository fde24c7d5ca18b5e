package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"job-board-web/internal/format"
)

// EmployersListAction prints every registered employer.
func EmployersListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	employers, err := appCtx.Accounts.Employers(ctx)
	if err != nil {
		return failure(err, "Failed to load employers")
	}

	w := out(cmd)
	if len(employers) == 0 {
		fmt.Fprintln(w, "No employers found")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Company", "Web page", "Email", "Phone")
	for _, e := range employers {
		table.Append(strconv.Itoa(e.ID), e.CompanyName, e.CompanyWebPage, e.Email, e.PhoneNumber)
	}
	table.Render()
	return nil
}

// SeekersListAction prints every registered job seeker.
func SeekersListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	seekers, err := appCtx.Accounts.JobSeekers(ctx)
	if err != nil {
		return failure(err, "Failed to load job seekers")
	}

	w := out(cmd)
	if len(seekers) == 0 {
		fmt.Fprintln(w, "No job seekers found")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Email", "Birth date")
	for _, s := range seekers {
		table.Append(strconv.Itoa(s.ID), s.Name+" "+s.LastName, s.Email, format.Date(s.BirthDate))
	}
	table.Render()
	return nil
}
