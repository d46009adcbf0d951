package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/relbump/internal/config"
	"github.com/raveheart1/relbump/internal/errors"
)

const testChangelog = "# Release 0.17.0-dev\n" +
	"\n" +
	"### New features since last release\n" +
	"\n" +
	"### Bug fixes\n" +
	"\n" +
	"* Fixed everything. [#7]\n" +
	"\n" +
	"---\n" +
	"\n" +
	"# Release 0.16.0\n"

const testTemplate = "# Release x.x.x-dev\n" +
	"\n" +
	"### New features since last release\n" +
	"\n" +
	"### Bug fixes\n" +
	"\n" +
	"---\n" +
	"\n"

// testCfg returns a configuration wired to a temp project layout.
func testCfg(t *testing.T) (*config.Configuration, string) {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "_version.py"),
		[]byte("__version__ = \"0.17.0-dev\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CHANGELOG.md"),
		[]byte(testChangelog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "changelog_template.txt"),
		[]byte(testTemplate), 0o644))

	return &config.Configuration{
		VersionMarker:     "__version__",
		ChangelogTemplate: filepath.Join(dir, "changelog_template.txt"),
		GitCheck:          false,
	}, dir
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func TestExecuteBump_PreRelease(t *testing.T) {
	cfg, dir := testCfg(t)
	cmd, out := testCommand()

	err := executeBump(cmd, cfg, bumpRequest{
		VersionPath:     filepath.Join(dir, "_version.py"),
		ChangelogPath:   filepath.Join(dir, "CHANGELOG.md"),
		PreRelease:      true,
		UpstreamVersion: "0.17.0",
	})
	require.NoError(t, err)

	version, readErr := os.ReadFile(filepath.Join(dir, "_version.py"))
	require.NoError(t, readErr)
	assert.Equal(t, "__version__ = \"0.18.0\"\n", string(version))

	cl, readErr := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, readErr)
	text := string(cl)
	assert.Contains(t, text, "# Release 0.18.0\n")
	assert.NotContains(t, text, "### New features since last release")
	assert.Contains(t, text, "* Fixed everything. [#7]\n")
	assert.Contains(t, text, "# Release 0.16.0\n")

	assert.Contains(t, out.String(), "0.18.0")
}

func TestExecuteBump_PreRelease_UpstreamAlreadyPublished(t *testing.T) {
	cfg, dir := testCfg(t)
	cmd, _ := testCommand()

	err := executeBump(cmd, cfg, bumpRequest{
		VersionPath:     filepath.Join(dir, "_version.py"),
		ChangelogPath:   filepath.Join(dir, "CHANGELOG.md"),
		PreRelease:      true,
		UpstreamDone:    true,
		UpstreamVersion: "0.18.0",
	})
	require.NoError(t, err)

	version, readErr := os.ReadFile(filepath.Join(dir, "_version.py"))
	require.NoError(t, readErr)
	assert.Equal(t, "__version__ = \"0.18.0\"\n", string(version))
}

func TestExecuteBump_PostRelease(t *testing.T) {
	cfg, dir := testCfg(t)
	cmd, _ := testCommand()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "_version.py"),
		[]byte("__version__ = \"0.17.0\"\n"), 0o644))

	err := executeBump(cmd, cfg, bumpRequest{
		VersionPath:   filepath.Join(dir, "_version.py"),
		ChangelogPath: filepath.Join(dir, "CHANGELOG.md"),
		PreRelease:    false,
	})
	require.NoError(t, err)

	version, readErr := os.ReadFile(filepath.Join(dir, "_version.py"))
	require.NoError(t, readErr)
	assert.Equal(t, "__version__ = \"0.18.0-dev\"\n", string(version))

	cl, readErr := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, readErr)
	text := string(cl)
	assert.Contains(t, text, "# Release 0.18.0-dev\n")
	// Template prepended, old content untouched at the tail.
	assert.Equal(t, testChangelog, text[len(text)-len(testChangelog):])
}

func TestExecuteBump_DryRunWritesNothing(t *testing.T) {
	cfg, dir := testCfg(t)
	cmd, out := testCommand()

	err := executeBump(cmd, cfg, bumpRequest{
		VersionPath:     filepath.Join(dir, "_version.py"),
		ChangelogPath:   filepath.Join(dir, "CHANGELOG.md"),
		PreRelease:      true,
		UpstreamVersion: "0.17.0",
		DryRun:          true,
	})
	require.NoError(t, err)

	version, readErr := os.ReadFile(filepath.Join(dir, "_version.py"))
	require.NoError(t, readErr)
	assert.Equal(t, "__version__ = \"0.17.0-dev\"\n", string(version))

	cl, readErr := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, readErr)
	assert.Equal(t, testChangelog, string(cl))

	assert.Contains(t, out.String(), "dry run")
}

func TestExecuteBump_MissingVersionLine(t *testing.T) {
	cfg, dir := testCfg(t)
	cmd, _ := testCommand()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "_version.py"),
		[]byte("# no marker here\n"), 0o644))

	err := executeBump(cmd, cfg, bumpRequest{
		VersionPath:   filepath.Join(dir, "_version.py"),
		ChangelogPath: filepath.Join(dir, "CHANGELOG.md"),
		PreRelease:    false,
	})
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
}

func TestExecuteBump_MissingTemplate(t *testing.T) {
	cfg, dir := testCfg(t)
	cmd, _ := testCommand()

	cfg.ChangelogTemplate = filepath.Join(dir, "nope.txt")

	err := executeBump(cmd, cfg, bumpRequest{
		VersionPath:   filepath.Join(dir, "_version.py"),
		ChangelogPath: filepath.Join(dir, "CHANGELOG.md"),
		PreRelease:    false,
	})
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
	assert.Contains(t, cliErr.Message, "template")
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitInvalidArguments, exitCodeFor(errors.Argument))
	assert.Equal(t, ExitInvalidArguments, exitCodeFor(errors.Configuration))
	assert.Equal(t, ExitMissingPrerequisite, exitCodeFor(errors.Prerequisite))
	assert.Equal(t, ExitRuntimeError, exitCodeFor(errors.Runtime))
}

func TestExecuteBump_PlainOutput(t *testing.T) {
	cfg, dir := testCfg(t)
	cmd, out := testCommand()

	err := executeBump(cmd, cfg, bumpRequest{
		VersionPath:     filepath.Join(dir, "_version.py"),
		ChangelogPath:   filepath.Join(dir, "CHANGELOG.md"),
		PreRelease:      true,
		UpstreamVersion: "0.17.0",
		Plain:           true,
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "[--] git preflight skipped\n")
	assert.Contains(t, text, "[OK] updated ")
	assert.Contains(t, text, "New version: 0.18.0\n")
	assert.NotContains(t, text, "─")
}
