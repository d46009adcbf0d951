// Package cli contains the relbump command definitions.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raveheart1/relbump/internal/errors"
)

var (
	// configPathFlag overrides the project config file location.
	configPathFlag string

	// plainFlag disables colors, icons, and the spinner.
	plainFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "relbump",
	Short: "Bump the plugin version and rewrite the changelog for a release",
	Long: `relbump automates the version and changelog edits around a plugin release.

A pre-release bump aligns the plugin version with the upstream framework
and prunes empty subsections from the changelog's unreleased notes. A
post-release bump opens the next development cycle: the version gains a
-dev suffix and a fresh release template is prepended to the changelog.

Configuration is read from .relbump.yml and RELBUMP_* environment
variables; see 'relbump config' for the effective values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "",
		"Config file path (default: .relbump.yml)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false,
		"Plain output (no colors, icons, or spinner)")
}

// Execute runs the root command and maps the resulting error to a process
// exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if isUsageError(err) {
		printError(errors.NewArgumentError(err.Error(),
			"Run 'relbump --help' to see the accepted commands and flags"))
		return ExitInvalidArguments
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitTimeout
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		printError(cliErr)
		return exitCodeFor(cliErr.Category)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return ExitRuntimeError
}

// printError writes a structured error to stderr, without colors when
// --plain is set.
func printError(cliErr *errors.CLIError) {
	if plainFlag {
		fmt.Fprint(os.Stderr, errors.FormatErrorPlain(cliErr))
		return
	}
	errors.PrintError(cliErr)
}

// isUsageError reports whether err is a cobra argument-handling failure:
// an unknown command or flag, a bad flag value, a missing required flag,
// or a violated flag-group constraint. Cobra returns these as plain
// errors, so they are matched on message.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
		"invalid argument",
		"required flag(s)",
		"if any flags in the group",
		"accepts no args",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// exitCodeFor maps an error category to the process exit code.
func exitCodeFor(category errors.ErrorCategory) int {
	switch category {
	case errors.Argument, errors.Configuration:
		return ExitInvalidArguments
	case errors.Prerequisite:
		return ExitMissingPrerequisite
	default:
		return ExitRuntimeError
	}
}
