package cmd

import (
	"testing"

	"github.com/heaths/go-console"
	"github.com/stretchr/testify/assert"
	"gopkg.in/h2non/gock.v1"
)

func TestNewRootCmd(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		token      string
		repository string
		mocks      func()
		wantStdout string
		wantErr    string
	}{
		{
			name:    "missing token",
			args:    []string{"open-issues", "7"},
			wantErr: "GITHUB_TOKEN environment variable is required",
		},
		{
			name:    "missing repository",
			args:    []string{"open-issues", "7"},
			token:   "***",
			wantErr: "a repository is required; set GITHUB_REPOSITORY or use --repo",
		},
		{
			name:       "repository from environment",
			args:       []string{"open-issues", "7"},
			token:      "***",
			repository: "tmarback/example",
			mocks: func() {
				gock.New("https://api.github.com").
					Get("/repos/tmarback/example/milestones/7").
					Reply(200).
					JSON(`{"number": 7, "title": "v2.0", "open_issues": 4}`)
			},
			wantStdout: "4\n",
		},
		{
			name:       "repository flag overrides environment",
			args:       []string{"open-issues", "7", "-R", "tmarback/other"},
			token:      "***",
			repository: "tmarback/example",
			mocks: func() {
				gock.New("https://api.github.com").
					Get("/repos/tmarback/other/milestones/7").
					Reply(200).
					JSON(`{"number": 7, "title": "v2.0", "open_issues": 0}`)
			},
			wantStdout: "0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(gock.Off)

			t.Setenv("GITHUB_TOKEN", tt.token)
			t.Setenv("GITHUB_REPOSITORY", tt.repository)
			t.Setenv("GH_HOST", "")

			fake := console.Fake()
			opts := &GlobalOptions{
				Console: fake,
			}

			rootCmd := NewRootCmd(opts)
			rootCmd.SetArgs(tt.args)

			if tt.mocks != nil {
				tt.mocks()
			}

			err := rootCmd.Execute()

			stdout, _, _ := fake.Buffers()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Empty(t, stdout.String())
				return
			}

			assert.NoError(t, err)
			assert.True(t, gock.IsDone(), pendingMocks(gock.Pending()))

			assert.Equal(t, tt.wantStdout, stdout.String())
		})
	}
}
