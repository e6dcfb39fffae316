package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/cli/go-gh/pkg/auth"
	"github.com/cli/go-gh/pkg/repository"
	"github.com/spf13/cobra"
	"github.com/tmarback/gh-queries/internal/logger"
)

func NewRootCmd(opts *GlobalOptions) *cobra.Command {
	var repoFlag string
	rootCmd := &cobra.Command{
		Use:   "queries",
		Short: "Query GitHub metadata for CI workflows",
		Long: heredoc.Doc(`
		One-shot queries against the GitHub issue tracker, meant to be called
		from workflow steps: look up the milestone of an issue, resolve a
		milestone number from its title, count a milestone's open issues, and
		fetch a project's name.

		Each command prints a single value to stdout so the calling step can
		capture it; progress is narrated on stderr.
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if opts.Verbose {
				opts.Log = logger.New(opts.Console, "black+h")
			}

			// The repository comes from the flag if given, otherwise from the
			// environment the workflow runner injects.
			var repo repository.Repository
			repoName := repoFlag
			if repoName == "" {
				repoName = os.Getenv("GITHUB_REPOSITORY")
			}
			if repoName != "" {
				repo, err = repository.Parse(repoName)
				if err != nil {
					return
				}
			}

			var host string
			if repo != nil {
				host = repo.Host()
			}
			if host == "" {
				host, _ = auth.DefaultHost()
			}

			token := os.Getenv("GITHUB_TOKEN")
			if token == "" {
				return fmt.Errorf("GITHUB_TOKEN environment variable is required")
			}

			opts.Repo = repo
			opts.authToken = token
			opts.host = host
			return
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&repoFlag, "repo", "R", "", "Select another repository to use using the [HOST/]OWNER/REPO format.")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show verbose output.")

	rootCmd.AddCommand(NewIssueMilestoneCmd(opts, nil))
	rootCmd.AddCommand(NewMilestoneNumberCmd(opts, nil))
	rootCmd.AddCommand(NewOpenIssuesCmd(opts, nil))
	rootCmd.AddCommand(NewProjectNameCmd(opts, nil))

	return rootCmd
}
