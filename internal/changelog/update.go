package changelog

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// templatePlaceholder is the literal the new-release template carries in
// its first line; it is replaced by the bumped version on post-release.
const templatePlaceholder = "x.x.x-dev"

// ErrNoSectionBoundary is returned when the changelog has no usable "---"
// line terminating the unreleased-notes region, including the malformed
// case of a boundary on the first line with no release header before it.
var ErrNoSectionBoundary = errors.New("section boundary not found")

// ErrNoPlaceholder is returned when the template's first line does not
// contain the version placeholder.
var ErrNoPlaceholder = errors.New("template placeholder not found")

// Update rewrites the changelog at path for the given bump.
//
// Post-release: the template at templatePath is read, the placeholder in
// its first line replaced with newVersion, and the template prepended to
// the unchanged changelog content.
//
// Pre-release: the release header's last token is replaced with newVersion
// and empty subsections are pruned from the unreleased region; everything
// from the "---" boundary onward is preserved verbatim.
func Update(path, newVersion string, preRelease bool, templatePath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading changelog: %w", err)
	}
	lines := splitLines(string(data))

	var out []string
	if preRelease {
		out, err = pruneUnreleased(lines, newVersion, path)
	} else {
		out, err = prependTemplate(lines, newVersion, templatePath)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(strings.Join(out, "")), 0o644); err != nil {
		return fmt.Errorf("writing changelog %s: %w", path, err)
	}
	return nil
}

// PruneFile runs the empty-subsection pruning pass alone on the changelog
// at path, leaving the release header and everything past the boundary
// untouched. Returns the number of lines removed.
func PruneFile(path string) (int, error) {
	out, removed, err := pruneLines(path)
	if err != nil || removed == 0 {
		return removed, err
	}

	if err := os.WriteFile(path, []byte(strings.Join(out, "")), 0o644); err != nil {
		return 0, fmt.Errorf("writing changelog %s: %w", path, err)
	}
	return removed, nil
}

// PrunePreview reports how many lines the pruning pass would remove from
// the changelog at path without writing anything.
func PrunePreview(path string) (int, error) {
	_, removed, err := pruneLines(path)
	return removed, err
}

func pruneLines(path string) ([]string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading changelog: %w", err)
	}
	lines := splitLines(string(data))

	boundary, err := findBoundary(lines, path)
	if err != nil {
		return nil, 0, err
	}

	body := PruneEmptySections(lines[1:boundary])
	removed := (boundary - 1) - len(body)
	if removed == 0 {
		return lines, 0, nil
	}

	out := make([]string, 0, 1+len(body)+len(lines)-boundary)
	out = append(out, lines[0])
	out = append(out, body...)
	out = append(out, lines[boundary:]...)
	return out, removed, nil
}

// pruneUnreleased builds the pre-release rewrite: new header, pruned body,
// unchanged remainder.
func pruneUnreleased(lines []string, newVersion, path string) ([]string, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("changelog %s is empty", path)
	}

	boundary, err := findBoundary(lines, path)
	if err != nil {
		return nil, err
	}

	header := rewriteHeader(lines[0], newVersion)
	body := PruneEmptySections(lines[1:boundary])

	out := make([]string, 0, 1+len(body)+len(lines)-boundary)
	out = append(out, header)
	out = append(out, body...)
	out = append(out, lines[boundary:]...)
	return out, nil
}

// prependTemplate builds the post-release rewrite: template block with the
// version substituted in, followed by the entire original changelog.
func prependTemplate(lines []string, newVersion, templatePath string) ([]string, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("reading changelog template: %w", err)
	}
	tmpl := splitLines(string(data))
	if len(tmpl) == 0 {
		return nil, fmt.Errorf("changelog template %s is empty", templatePath)
	}
	if !strings.Contains(tmpl[0], templatePlaceholder) {
		return nil, fmt.Errorf("%w: first line of %s has no %q", ErrNoPlaceholder, templatePath, templatePlaceholder)
	}
	tmpl[0] = strings.ReplaceAll(tmpl[0], templatePlaceholder, newVersion)

	out := make([]string, 0, len(tmpl)+len(lines))
	out = append(out, tmpl...)
	out = append(out, lines...)
	return out, nil
}

// findBoundary locates the first line starting with "---", the end of the
// unreleased-notes region. A boundary on the first line is rejected: the
// release header has to precede it.
func findBoundary(lines []string, path string) (int, error) {
	for i, line := range lines {
		if strings.HasPrefix(line, "---") {
			if i == 0 {
				return 0, fmt.Errorf("%w: %s starts with a --- line, leaving no release header", ErrNoSectionBoundary, path)
			}
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no --- line in %s", ErrNoSectionBoundary, path)
}

// rewriteHeader replaces the last whitespace-delimited token of the release
// header with the new version.
func rewriteHeader(header, newVersion string) string {
	tokens := strings.Split(strings.TrimSuffix(header, "\n"), " ")
	tokens[len(tokens)-1] = newVersion
	return strings.Join(tokens, " ") + "\n"
}

// splitLines splits text into lines that keep their trailing newline.
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
