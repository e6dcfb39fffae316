package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmarback/gh-queries/internal/models"
)

func NewIssueMilestoneCmd(globalOpts *GlobalOptions, runFunc func(*issueMilestoneOptions) error) *cobra.Command {
	opts := issueMilestoneOptions{}
	cmd := &cobra.Command{
		Use:   "issue-milestone <url>",
		Short: "Look up the milestone of an issue",
		Long: heredoc.Doc(`
			Fetches an issue by its API URL and prints the number of the
			milestone it is assigned to.

			If the issue has no milestone, nothing is printed to stdout and
			the command still succeeds; the calling step should treat empty
			output as "no milestone".
		`),
		Example: heredoc.Doc(`
			# capture the milestone number of issue 17
			$ milestone=$(queries issue-milestone https://api.github.com/repos/tmarback/example/issues/17)
		`),
		Args: ResourceURLArg(&opts.url, "issue"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = *globalOpts

			if runFunc == nil {
				runFunc = issueMilestone
			}

			return runFunc(&opts)
		},
	}

	return cmd
}

type issueMilestoneOptions struct {
	GlobalOptions

	url string
}

func issueMilestone(opts *issueMilestoneOptions) (err error) {
	fmt.Fprintf(opts.Console.Stderr(), "Fetching milestone of issue at '%s'\n", opts.url)

	client, err := newRESTClient(&opts.GlobalOptions, previewAccept)
	if err != nil {
		return
	}

	var issue models.Issue
	err = client.Get(opts.url, &issue)
	if err != nil {
		return
	}

	if issue.Milestone == nil {
		fmt.Fprintln(opts.Console.Stderr(), "Issue not currently associated with a milestone.")
		return
	}

	fmt.Fprintf(opts.Console.Stderr(), "Current milestone: %d (%s)\n", issue.Milestone.Number, issue.Milestone.Title)
	fmt.Fprintf(opts.Console.Stdout(), "%d\n", issue.Milestone.Number)

	return
}
