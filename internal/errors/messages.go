package errors

import "fmt"

// Common error messages for the relbump CLI.
// These templates ensure consistent, actionable error messages.

// MissingVersionLine creates an error for a version file without the
// assignment marker line.
func MissingVersionLine(path, marker string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("no line in %s contains the %s marker", path, marker),
		fmt.Sprintf("Check that --version-path points at the file declaring %s", marker),
		"Or set version_marker in .relbump.yml if the project uses a different token",
	)
}

// MissingChangelogTemplate creates an error for a missing post-release
// changelog template.
func MissingChangelogTemplate(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("changelog template not found at %s", path),
		"Create the template with a '# Release x.x.x-dev' first line",
		"Or point changelog_template in .relbump.yml at the right file",
	)
}

// UpstreamUnavailable creates an error when the upstream framework version
// cannot be resolved.
func UpstreamUnavailable(cause error) *CLIError {
	return WrapWithMessage(cause, Prerequisite,
		"could not resolve the upstream framework version",
		"Pass the version explicitly with --upstream-version",
		"Or set RELBUMP_UPSTREAM_VERSION in the environment",
		"Or check that upstream_command in .relbump.yml works in this shell",
	)
}

// DirtyWorktree creates an error for uncommitted changes before a bump.
func DirtyWorktree(branch string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("working tree on branch %q has uncommitted changes", branch),
		"Commit or stash your changes before running the release bump",
		"Or re-run with --allow-dirty to skip this check",
	)
}
