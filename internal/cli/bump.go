package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/relbump/internal/bump"
	"github.com/raveheart1/relbump/internal/changelog"
	"github.com/raveheart1/relbump/internal/config"
	"github.com/raveheart1/relbump/internal/errors"
	"github.com/raveheart1/relbump/internal/gitstate"
	"github.com/raveheart1/relbump/internal/output"
	"github.com/raveheart1/relbump/internal/upstream"
	"github.com/raveheart1/relbump/internal/versionfile"
)

var (
	bumpVersionPath     string
	bumpChangelogPath   string
	bumpPreRelease      bool
	bumpPostRelease     bool
	bumpPostUpstream    bool
	bumpPreUpstream     bool
	bumpUpstreamVersion string
	bumpAllowDirty      bool
	bumpDryRun          bool
)

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Bump the version file and update the changelog",
	Long: `Bump the version file and update the changelog in one release step.

Pre-release (the default): the plugin version is derived from the upstream
framework's current version, the changelog release header is rewritten,
and empty subsections are pruned from the unreleased notes.

Post-release: the version's minor component is incremented and -dev is
appended, and a fresh release template is prepended to the changelog.

Examples:
  relbump bump --version-path _version.py --changelog-path CHANGELOG.md
  relbump bump --post-release --version-path _version.py --changelog-path CHANGELOG.md
  relbump bump --post-upstream-release --version-path _version.py --changelog-path CHANGELOG.md
  relbump bump --upstream-version 0.41.0 --dry-run --version-path _version.py --changelog-path CHANGELOG.md`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBump(cmd)
	},
}

func init() {
	rootCmd.AddCommand(bumpCmd)

	bumpCmd.Flags().StringVar(&bumpVersionPath, "version-path", "", "Path to the file containing the version assignment")
	bumpCmd.Flags().StringVar(&bumpChangelogPath, "changelog-path", "", "Path to the changelog file")
	bumpCmd.Flags().BoolVar(&bumpPreRelease, "pre-release", false, "Bump before tagging the release (default)")
	bumpCmd.Flags().BoolVar(&bumpPostRelease, "post-release", false, "Bump after the release is published")
	bumpCmd.Flags().BoolVar(&bumpPostUpstream, "post-upstream-release", false, "The upstream framework version is already published")
	bumpCmd.Flags().BoolVar(&bumpPreUpstream, "pre-upstream-release", false, "The upstream framework version is not yet published (default)")
	bumpCmd.Flags().StringVar(&bumpUpstreamVersion, "upstream-version", "", "Upstream framework version (skips the upstream command)")
	bumpCmd.Flags().BoolVar(&bumpAllowDirty, "allow-dirty", false, "Skip the clean-worktree preflight")
	bumpCmd.Flags().BoolVar(&bumpDryRun, "dry-run", false, "Compute the new version without writing any files")

	bumpCmd.MarkFlagsMutuallyExclusive("pre-release", "post-release")
	bumpCmd.MarkFlagsMutuallyExclusive("post-upstream-release", "pre-upstream-release")
	_ = bumpCmd.MarkFlagRequired("version-path")
	_ = bumpCmd.MarkFlagRequired("changelog-path")
}

// bumpRequest carries the resolved inputs of one bump run. Separated from
// the cobra flag variables so the flow is testable without flag parsing.
type bumpRequest struct {
	VersionPath     string
	ChangelogPath   string
	PreRelease      bool
	UpstreamDone    bool
	UpstreamVersion string
	AllowDirty      bool
	DryRun          bool
	Plain           bool
}

func runBump(cmd *cobra.Command) error {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	req := bumpRequest{
		VersionPath:     bumpVersionPath,
		ChangelogPath:   bumpChangelogPath,
		PreRelease:      !bumpPostRelease,
		UpstreamDone:    bumpPostUpstream,
		UpstreamVersion: bumpUpstreamVersion,
		AllowDirty:      bumpAllowDirty,
		DryRun:          bumpDryRun,
		Plain:           plainFlag,
	}
	return executeBump(cmd, cfg, req)
}

// executeBump runs the full flow: git preflight, upstream resolution,
// version file update, changelog update.
func executeBump(cmd *cobra.Command, cfg *config.Configuration, req bumpRequest) error {
	p := output.NewPrinter(cmd.OutOrStdout(), req.Plain)

	if cfg.GitCheck && !req.AllowDirty {
		st, err := gitstate.Check(filepath.Dir(req.VersionPath))
		if err != nil {
			return errors.WrapWithMessage(err, errors.Prerequisite,
				"git preflight failed",
				"Run inside the plugin repository",
				"Or re-run with --allow-dirty to skip this check")
		}
		if !st.Clean {
			return errors.DirtyWorktree(st.Branch)
		}
		p.StepSuccess(fmt.Sprintf("working tree clean on branch %s", st.Branch))
	} else {
		p.StepSkipped("git preflight skipped")
	}

	opts := bump.Options{
		PreRelease:       req.PreRelease,
		UpstreamReleased: req.UpstreamDone,
	}

	if req.PreRelease {
		resolver := upstream.Resolver{
			Override: firstNonEmpty(req.UpstreamVersion, cfg.UpstreamVersion),
			Command:  cfg.UpstreamCommand,
			Timeout:  cfg.UpstreamTimeout(),
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		stop := p.StartSpinner("resolving upstream version")
		version, err := resolver.Version(ctx)
		stop()
		if err != nil {
			return errors.UpstreamUnavailable(err)
		}
		opts.UpstreamVersion = version
		p.StepSuccess(fmt.Sprintf("upstream framework at %s", version))
	}

	if req.DryRun {
		newVersion, err := versionfile.Preview(req.VersionPath, cfg.VersionMarker, opts)
		if err != nil {
			return versionFileError(err, cfg, req)
		}
		p.StepSkipped(fmt.Sprintf("would update %s and %s", req.VersionPath, req.ChangelogPath))
		p.Rule()
		p.BumpSummary(newVersion, true)
		return nil
	}

	newVersion, err := versionfile.Update(req.VersionPath, cfg.VersionMarker, opts)
	if err != nil {
		return versionFileError(err, cfg, req)
	}
	p.StepSuccess(fmt.Sprintf("updated %s", req.VersionPath))

	if err := changelog.Update(req.ChangelogPath, newVersion, req.PreRelease, cfg.ChangelogTemplate); err != nil {
		return changelogError(err, cfg, req)
	}
	p.StepSuccess(fmt.Sprintf("updated %s", req.ChangelogPath))

	p.Rule()
	p.BumpSummary(newVersion, false)
	return nil
}

// versionFileError maps version-file failures to structured CLI errors.
func versionFileError(err error, cfg *config.Configuration, req bumpRequest) error {
	switch {
	case stderrors.Is(err, versionfile.ErrVersionLineNotFound):
		return errors.MissingVersionLine(req.VersionPath, cfg.VersionMarker)

	case stderrors.Is(err, fs.ErrNotExist):
		return errors.WrapWithMessage(err, errors.Prerequisite,
			"version file not found",
			"Check that --version-path points at an existing file")

	default:
		return errors.Wrap(err, errors.Runtime)
	}
}

// changelogError maps changelog failures to structured CLI errors.
func changelogError(err error, cfg *config.Configuration, req bumpRequest) error {
	switch {
	case !req.PreRelease && stderrors.Is(err, fs.ErrNotExist):
		// The changelog itself was readable by this point only if it
		// exists; a missing file on the post-release path is the template.
		if _, statErr := os.Stat(req.ChangelogPath); statErr == nil {
			return errors.MissingChangelogTemplate(cfg.ChangelogTemplate)
		}
		return errors.Wrap(err, errors.Prerequisite,
			"Check that --changelog-path points at an existing file")

	case stderrors.Is(err, fs.ErrNotExist):
		return errors.Wrap(err, errors.Prerequisite,
			"Check that --changelog-path points at an existing file")

	case stderrors.Is(err, changelog.ErrNoSectionBoundary):
		return errors.Wrap(err, errors.Prerequisite,
			"Add a --- line after the unreleased notes in the changelog")

	default:
		return errors.Wrap(err, errors.Runtime)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
