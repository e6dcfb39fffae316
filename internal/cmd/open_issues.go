package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmarback/gh-queries/internal/models"
	"github.com/tmarback/gh-queries/internal/utils"
)

func NewOpenIssuesCmd(globalOpts *GlobalOptions, runFunc func(*openIssuesOptions) error) *cobra.Command {
	opts := openIssuesOptions{}
	cmd := &cobra.Command{
		Use:   "open-issues <number>",
		Short: "Count the open issues of a milestone",
		Long: heredoc.Doc(`
			Fetches a milestone by its number and prints how many of its
			issues are still open.

			The number argument can begin with a "#" symbol.
		`),
		Example: heredoc.Doc(`
			# count the issues remaining in milestone 7
			$ remaining=$(queries open-issues 7)
		`),
		Args: MilestoneNumberArg(&opts.number),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = *globalOpts

			if err := requireRepo(globalOpts); err != nil {
				return err
			}

			if runFunc == nil {
				runFunc = openIssues
			}

			return runFunc(&opts)
		},
	}

	return cmd
}

type openIssuesOptions struct {
	GlobalOptions

	number int
}

func openIssues(opts *openIssuesOptions) (err error) {
	fmt.Fprintf(opts.Console.Stderr(), "Fetching open issues of milestone %d of repo '%s/%s'\n",
		opts.number, opts.Repo.Owner(), opts.Repo.Name())

	client, err := newRESTClient(&opts.GlobalOptions, v3Accept)
	if err != nil {
		return
	}

	var milestone models.Milestone
	err = client.Get(fmt.Sprintf("repos/%s/%s/milestones/%d", opts.Repo.Owner(), opts.Repo.Name(), opts.number), &milestone)
	if err != nil {
		return
	}

	fmt.Fprintf(opts.Console.Stderr(), "%s remaining in %s\n", utils.Pluralize(milestone.OpenIssues, "open issue"), milestone.Title)
	fmt.Fprintf(opts.Console.Stdout(), "%d\n", milestone.OpenIssues)

	return
}
