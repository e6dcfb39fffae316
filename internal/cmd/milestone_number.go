package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/cli/go-gh/pkg/api"
	"github.com/spf13/cobra"
	"github.com/tmarback/gh-queries/internal/models"
)

const milestonePageSize = 100

func NewMilestoneNumberCmd(globalOpts *GlobalOptions, runFunc func(*milestoneNumberOptions) error) *cobra.Command {
	opts := milestoneNumberOptions{}
	cmd := &cobra.Command{
		Use:   "milestone-number <title> <state>",
		Short: "Resolve a milestone number from its title",
		Long: heredoc.Doc(`
			Scans the repository's milestones for one whose title matches the
			title argument exactly and prints its number.

			The state argument filters which milestones are scanned and must
			be one of "open", "closed", or "all". Milestones are scanned in
			ascending due date order; the first exact match wins. The command
			fails if no milestone matches.
		`),
		Example: heredoc.Doc(`
			# resolve the open milestone titled "v2.0"
			$ number=$(queries milestone-number v2.0 open)
		`),
		Args: TitleStateArgs(&opts.title, &opts.state),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = *globalOpts

			if err := requireRepo(globalOpts); err != nil {
				return err
			}

			if runFunc == nil {
				runFunc = milestoneNumber
			}

			return runFunc(&opts)
		},
	}

	return cmd
}

type milestoneNumberOptions struct {
	GlobalOptions

	title string
	state string
}

func milestoneNumber(opts *milestoneNumberOptions) (err error) {
	fmt.Fprintf(opts.Console.Stderr(), "Fetching number of milestone '%s' of repo '%s/%s'\n",
		opts.title, opts.Repo.Owner(), opts.Repo.Name())

	client, err := newRESTClient(&opts.GlobalOptions, v3Accept)
	if err != nil {
		return
	}

	opts.Console.StartProgress(fmt.Sprintf("Scanning %s milestones", opts.state))
	number, err := findMilestone(client, &opts.GlobalOptions, opts.title, opts.state)
	opts.Console.StopProgress()

	if err != nil {
		return
	}

	fmt.Fprintf(opts.Console.Stderr(), "Milestone number: %d\n", number)
	fmt.Fprintf(opts.Console.Stdout(), "%d\n", number)

	return
}

// findMilestone pages through the state-filtered milestone listing in
// ascending due date order until an exact title match is found. An empty page
// means the listing is exhausted.
func findMilestone(client api.RESTClient, opts *GlobalOptions, title, state string) (int, error) {
	for page := 1; ; page++ {
		path := fmt.Sprintf("repos/%s/%s/milestones?state=%s&sort=due_on&direction=asc&per_page=%d&page=%d",
			opts.Repo.Owner(), opts.Repo.Name(), state, milestonePageSize, page)

		var milestones []models.Milestone
		if err := client.Get(path, &milestones); err != nil {
			return 0, err
		}

		if len(milestones) == 0 {
			return 0, fmt.Errorf("milestone not found: %s", title)
		}

		for _, milestone := range milestones {
			if milestone.Title == title {
				return milestone.Number, nil
			}
		}
	}
}
