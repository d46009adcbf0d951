// Package bump implements the version arithmetic for release bumps.
// It operates on a single version-assignment line and never touches
// the filesystem; file handling lives in internal/versionfile.
package bump

import (
	"fmt"
	"strconv"
	"strings"
)

// Options selects which bump is performed.
type Options struct {
	// PreRelease is true for a bump made before tagging a release and
	// false for the post-release bump that opens the next dev cycle.
	PreRelease bool

	// UpstreamReleased reports whether the upstream framework version
	// this release tracks has itself already been published.
	// Only consulted when PreRelease is true.
	UpstreamReleased bool

	// UpstreamVersion is the upstream framework's current version
	// (e.g. "0.17.0"). Required for pre-release bumps.
	UpstreamVersion string
}

// Line rewrites a version-assignment line and returns the rewritten line
// together with the bare new version string.
//
// The line's last whitespace-delimited token is the current version,
// usually a quoted literal like `"0.17.0"`. Quoting style and a trailing
// newline are preserved in the rewritten line; the returned version is
// always bare.
//
// Bump rules:
//   - pre-release, upstream released: the upstream version is substituted
//     verbatim (already bumped upstream, no arithmetic here).
//   - pre-release, upstream not yet released: the upstream version's minor
//     component is incremented by one; patch is taken verbatim.
//   - post-release: the version parsed from the line has its minor
//     component incremented and "-dev" appended to the existing patch
//     component. The patch is not reset to zero.
func Line(line string, opts Options) (string, string, error) {
	tokens := strings.Split(line, " ")
	last := tokens[len(tokens)-1]

	hadNewline := strings.HasSuffix(last, "\n")
	current := strings.TrimSuffix(last, "\n")

	quoted := len(current) >= 2 && strings.HasPrefix(current, `"`) && strings.HasSuffix(current, `"`)
	if quoted {
		current = strings.Trim(current, `"`)
	}

	var newVersion string
	switch {
	case opts.PreRelease && opts.UpstreamReleased:
		newVersion = opts.UpstreamVersion

	case opts.PreRelease:
		bumped, err := bumpMinor(opts.UpstreamVersion, false)
		if err != nil {
			return "", "", err
		}
		newVersion = bumped

	default:
		bumped, err := bumpMinor(current, true)
		if err != nil {
			return "", "", err
		}
		newVersion = bumped
	}

	replacement := newVersion
	if quoted {
		replacement = `"` + newVersion + `"`
	}
	if hadNewline {
		replacement += "\n"
	}
	tokens[len(tokens)-1] = replacement

	return strings.Join(tokens, " "), newVersion, nil
}

// bumpMinor increments the minor component of a dotted version triple.
// With dev true, "-dev" is appended to the patch component as-is.
func bumpMinor(version string, dev bool) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < 3 {
		return "", fmt.Errorf("malformed version %q: expected MAJOR.MINOR.PATCH", version)
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("parsing minor component of %q: %w", version, err)
	}
	parts[1] = strconv.Itoa(minor + 1)

	if dev {
		parts[2] += "-dev"
	}

	return strings.Join(parts, "."), nil
}
