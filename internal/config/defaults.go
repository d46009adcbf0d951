package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# relbump Configuration
# All keys are optional; the values below are the defaults.
# Every key can also be set via a RELBUMP_* environment variable.

version_marker: __version__           # Token identifying the version-assignment line
changelog_template: ./.github/workflows/changelog_template.txt  # Template prepended on post-release
git_check: true                       # Require a clean worktree before bumping

# Upstream framework version source (used by pre-release bumps)
upstream_command: python -c "import pennylane; print(pennylane.version())"
upstream_timeout_seconds: 30          # Max upstream command duration (0 = no timeout)
# upstream_version: ""                # Pin the upstream version and skip the command
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"version_marker":     "__version__",
		"changelog_template": "./.github/workflows/changelog_template.txt",
		// git_check: Refuse to bump with uncommitted changes so a failed
		// release run never mixes with unrelated edits. Disable per-run
		// with --allow-dirty.
		"git_check": true,
		// upstream_command: Asks the installed upstream package for its
		// version. Overridden entirely when upstream_version is set.
		"upstream_command":         `python -c "import pennylane; print(pennylane.version())"`,
		"upstream_timeout_seconds": 30,
		"upstream_version":         "",
	}
}
