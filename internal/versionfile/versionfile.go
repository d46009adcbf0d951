// Package versionfile updates the version-assignment line in a project
// version file. The file is read fully into memory, the single line whose
// whitespace-split tokens include the assignment marker is rewritten via
// internal/bump, and the file is written back with all other lines intact.
package versionfile

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/raveheart1/relbump/internal/bump"
)

// ErrVersionLineNotFound is returned when no line in the version file
// contains the assignment marker.
var ErrVersionLineNotFound = errors.New("version line not found")

// Update bumps the version line in the file at path and writes the file
// back in full. marker identifies the assignment line (e.g. "__version__").
// Returns the bare new version string.
func Update(path, marker string, opts bump.Options) (string, error) {
	newVersion, lines, err := apply(path, marker, opts)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644); err != nil {
		return "", fmt.Errorf("writing version file %s: %w", path, err)
	}
	return newVersion, nil
}

// Preview computes the bumped version without modifying the file.
func Preview(path, marker string, opts bump.Options) (string, error) {
	newVersion, _, err := apply(path, marker, opts)
	return newVersion, err
}

// apply reads the file, rewrites the marker line, and returns the new
// version together with the full rewritten line set.
func apply(path, marker string, opts bump.Options) (string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading version file: %w", err)
	}

	lines := splitLines(string(data))
	newVersion := ""
	found := false

	for i, line := range lines {
		if !slices.Contains(strings.Split(line, " "), marker) {
			continue
		}
		newLine, version, err := bump.Line(line, opts)
		if err != nil {
			return "", nil, fmt.Errorf("bumping version in %s: %w", path, err)
		}
		lines[i] = newLine
		newVersion = version
		found = true
	}

	if !found {
		return "", nil, fmt.Errorf("%w: no line in %s contains %q", ErrVersionLineNotFound, path, marker)
	}
	return newVersion, lines, nil
}

// splitLines splits text into lines that keep their trailing newline,
// mirroring a full-file readlines. A final line without a newline is
// returned as-is.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
