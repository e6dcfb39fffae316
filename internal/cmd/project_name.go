package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/tmarback/gh-queries/internal/models"
)

func NewProjectNameCmd(globalOpts *GlobalOptions, runFunc func(*projectNameOptions) error) *cobra.Command {
	opts := projectNameOptions{}
	cmd := &cobra.Command{
		Use:   "project-name <url>",
		Short: "Look up the name of a project",
		Long: heredoc.Doc(`
			Fetches a project board by its API URL and prints its name.
		`),
		Example: heredoc.Doc(`
			# capture the name of project 3
			$ name=$(queries project-name https://api.github.com/projects/3)
		`),
		Args: ResourceURLArg(&opts.url, "project"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = *globalOpts

			if runFunc == nil {
				runFunc = projectName
			}

			return runFunc(&opts)
		},
	}

	return cmd
}

type projectNameOptions struct {
	GlobalOptions

	url string
}

func projectName(opts *projectNameOptions) (err error) {
	fmt.Fprintf(opts.Console.Stderr(), "Fetching name of project at '%s'\n", opts.url)

	client, err := newRESTClient(&opts.GlobalOptions, previewAccept)
	if err != nil {
		return
	}

	var project models.Project
	err = client.Get(opts.url, &project)
	if err != nil {
		return
	}

	fmt.Fprintf(opts.Console.Stderr(), "Project name: %s\n", project.Name)
	fmt.Fprintf(opts.Console.Stdout(), "%s\n", project.Name)

	return
}
