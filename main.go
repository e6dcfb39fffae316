package main

import (
	"os"

	"github.com/heaths/go-console"
	"github.com/tmarback/gh-queries/internal/cmd"
)

func main() {
	opts := &cmd.GlobalOptions{
		Console: console.System(),
	}

	rootCmd := cmd.NewRootCmd(opts)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
