package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/relbump/internal/changelog"
	"github.com/raveheart1/relbump/internal/errors"
)

var (
	pruneChangelogPath string
	pruneDryRun        bool
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Changelog maintenance commands",
	Long:  `Commands that operate on the changelog without touching the version file.`,
}

var changelogPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove empty subsections from the unreleased notes",
	Long: `Remove empty subsections from the changelog's unreleased notes.

Subsections start at "### " headers; a subsection whose span holds only
blank lines is dropped. The release header, the first subsection, and
everything past the --- boundary are never touched.

Examples:
  relbump changelog prune --changelog-path CHANGELOG.md
  relbump changelog prune --changelog-path CHANGELOG.md --dry-run`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelogPrune(cmd)
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)
	changelogCmd.AddCommand(changelogPruneCmd)

	changelogPruneCmd.Flags().StringVar(&pruneChangelogPath, "changelog-path", "", "Path to the changelog file")
	changelogPruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Report removable lines without writing the file")
	_ = changelogPruneCmd.MarkFlagRequired("changelog-path")
}

func runChangelogPrune(cmd *cobra.Command) error {
	prune := changelog.PruneFile
	if pruneDryRun {
		prune = changelog.PrunePreview
	}

	removed, err := prune(pruneChangelogPath)
	if err != nil {
		if stderrors.Is(err, changelog.ErrNoSectionBoundary) {
			return errors.Wrap(err, errors.Prerequisite,
				"Add a --- line after the unreleased notes in the changelog")
		}
		return errors.Wrap(err, errors.Runtime)
	}

	out := cmd.OutOrStdout()
	switch {
	case removed == 0:
		fmt.Fprintln(out, "No empty subsections found.")
	case pruneDryRun:
		fmt.Fprintf(out, "Would remove %d lines of empty subsections from %s\n", removed, pruneChangelogPath)
	default:
		fmt.Fprintf(out, "Removed %d lines of empty subsections from %s\n", removed, pruneChangelogPath)
	}
	return nil
}
