package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cli/go-gh"
	"github.com/cli/go-gh/pkg/api"
	"github.com/cli/go-gh/pkg/repository"
	"github.com/heaths/go-console"
	"github.com/spf13/cobra"
	"github.com/tmarback/gh-queries/internal/utils"
)

type GlobalOptions struct {
	Console console.Console
	Log     io.Writer

	Repo    repository.Repository
	Verbose bool

	authToken string
	host      string
}

// Accept media types for the endpoints this tool touches. Issue and project
// metadata exposing milestone and project-board associations is still gated
// behind the inertia preview type.
const (
	previewAccept = "application/vnd.github.inertia-preview+json"
	v3Accept      = "application/vnd.github.v3+json"
)

func newRESTClient(opts *GlobalOptions, accept string) (api.RESTClient, error) {
	clientOpts := &api.ClientOptions{
		AuthToken: opts.authToken,
		Host:      opts.host,
		Headers: map[string]string{
			"Accept": accept,
		},
		Log: opts.Log,
	}

	return gh.RESTClient(clientOpts)
}

func requireRepo(opts *GlobalOptions) error {
	if opts.Repo == nil {
		return fmt.Errorf("a repository is required; set GITHUB_REPOSITORY or use --repo")
	}

	return nil
}

func ResourceURLArg(url *string, thing string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("missing required %s URL", thing)
		}

		if !strings.HasPrefix(args[0], "https://") && !strings.HasPrefix(args[0], "http://") {
			return fmt.Errorf("invalid %s URL: %s", thing, args[0])
		}

		*url = args[0]
		return nil
	}
}

func MilestoneNumberArg(number *int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) (err error) {
		if len(args) == 0 {
			return fmt.Errorf("missing required milestone number")
		}

		*number, err = parseNumber(args[0], "invalid milestone number")
		return
	}
}

var milestoneStates = []string{"open", "closed", "all"}

func TitleStateArgs(title, state *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("missing required milestone title and state")
		}

		if !utils.StringSliceContains(args[1], milestoneStates) {
			return fmt.Errorf("valid states are {%s}", strings.Join(milestoneStates, "|"))
		}

		*title = args[0]
		*state = strings.ToLower(args[1])
		return nil
	}
}

func parseNumber(number, message string) (int, error) {
	num := strings.TrimPrefix(number, "#")
	if num, err := strconv.ParseUint(num, 10, 32); err != nil {
		return 0, fmt.Errorf("%s: %s", message, number)
	} else {
		return int(num), nil
	}
}
