package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/githubnext/timeout-lint/pkg/cli"
	"github.com/githubnext/timeout-lint/pkg/console"
	"github.com/githubnext/timeout-lint/pkg/logger"
)

var mainLog = logger.New("main")

var rootCmd = cli.NewRootCommand()

func main() {
	if err := rootCmd.Execute(); err != nil {
		mainLog.Printf("Command failed: %v", err)
		// Lint failures were already reported in the selected format.
		if !errors.Is(err, cli.ErrLintFailed) {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		os.Exit(1)
	}
}
