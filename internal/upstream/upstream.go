// Package upstream resolves the current version of the upstream framework
// the plugin tracks. Pre-release bumps derive the plugin version from it.
//
// The version is an environmental input, not a file: it comes from an
// explicit override (flag or RELBUMP_UPSTREAM_VERSION) or from running a
// configured shell command against the installed upstream package.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion is returned when the resolved upstream version is not
// a valid semantic version.
var ErrInvalidVersion = errors.New("invalid upstream version")

// Resolver obtains the upstream framework version.
type Resolver struct {
	// Override short-circuits resolution when non-empty.
	Override string

	// Command is a shell command whose stdout is the upstream version,
	// e.g. `python -c "import pennylane; print(pennylane.version())"`.
	Command string

	// Timeout bounds the command's execution. Zero means no timeout.
	Timeout time.Duration
}

// Version resolves and validates the upstream version.
func (r Resolver) Version(ctx context.Context) (string, error) {
	if r.Override != "" {
		return validate(r.Override)
	}

	if r.Command == "" {
		return "", errors.New("no upstream version source: set --upstream-version or configure upstream_command")
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	out, err := exec.CommandContext(ctx, "sh", "-c", r.Command).Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("upstream version command timed out: %w", ctxErr)
		}
		return "", fmt.Errorf("running upstream version command: %w", err)
	}

	return validate(strings.TrimSpace(string(out)))
}

// validate checks the reported string is a bare semantic version with a
// full MAJOR.MINOR.PATCH triple (semver.IsValid alone accepts shortened
// forms like "1.2").
func validate(version string) (string, error) {
	version = strings.TrimSpace(version)
	if version == "" || strings.Count(version, ".") < 2 || !semver.IsValid("v"+version) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	return version, nil
}
