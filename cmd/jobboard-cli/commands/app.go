package commands

import (
	"github.com/urfave/cli/v3"

	"job-board-web/internal/controller"
	"job-board-web/internal/models"
)

// NewApp builds the jobboard-cli command tree.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "jobboard-cli",
		Usage: "browse and post to the job board from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "environment file path",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "configuration file path",
				Value: "config.json",
			},
			&cli.StringFlag{
				Name:  "api-url",
				Usage: "job board API base URL (overrides config and JOBBOARD_API_URL)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "jobs",
				Usage: "job advertisement commands",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "list job advertisements",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "feed",
								Usage: "listing to read (sorted/all/active/employer)",
								Value: string(controller.FeedSortedByDeadline),
							},
							&cli.StringFlag{
								Name:  "q",
								Usage: "search title, company and city",
							},
							&cli.BoolFlag{
								Name:  "active",
								Usage: "only active advertisements",
							},
							&cli.IntFlag{
								Name:  "employer-id",
								Usage: "employer for --feed employer",
							},
						},
						Action: JobsListAction,
					},
					{
						Name:   "lookups",
						Usage:  "list job positions and cities",
						Action: LookupsAction,
					},
					{
						Name:   "post",
						Usage:  "post a job advertisement",
						Flags:  postJobFlags(),
						Action: PostJobAction,
					},
				},
			},
			{
				Name:  "register",
				Usage: "account registration commands",
				Commands: []*cli.Command{
					{
						Name:   "seeker",
						Usage:  "register as a job seeker",
						Flags:  fieldFlags(seekerFields),
						Action: RegisterSeekerAction,
					},
					{
						Name:   "employer",
						Usage:  "register as an employer",
						Flags:  fieldFlags(employerFields),
						Action: RegisterEmployerAction,
					},
				},
			},
			{
				Name:  "accounts",
				Usage: "account listing commands",
				Commands: []*cli.Command{
					{
						Name:   "employers",
						Usage:  "list employers",
						Action: EmployersListAction,
					},
					{
						Name:   "seekers",
						Usage:  "list job seekers",
						Action: SeekersListAction,
					},
				},
			},
			{
				Name:  "applications",
				Usage: "job application commands",
				Commands: []*cli.Command{
					{
						Name:  "apply",
						Usage: "apply to a job advertisement",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:     "job-id",
								Usage:    "job advertisement id",
								Required: true,
							},
							&cli.IntFlag{
								Name:     "seeker-id",
								Usage:    "job seeker id",
								Required: true,
							},
						},
						Action: ApplyAction,
					},
					{
						Name:  "status",
						Usage: "change the status of an application",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:     "application-id",
								Usage:    "application id",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "status",
								Usage:    "one of " + models.StatusNames(", "),
								Required: true,
							},
						},
						Action: ApplicationStatusAction,
					},
					{
						Name:  "list",
						Usage: "list applications of a job seeker or an advertisement",
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "seeker-id",
								Usage: "job seeker id",
							},
							&cli.IntFlag{
								Name:  "job-id",
								Usage: "job advertisement id",
							},
						},
						Action: ApplicationsListAction,
					},
				},
			},
			{
				Name:  "config",
				Usage: "show the effective configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "write",
						Usage: "write the configuration to this file instead",
					},
				},
				Action: ConfigAction,
			},
		},
	}
}
