package changelog

import "strings"

// sectionHeaderPrefix marks the start of a changelog subsection.
const sectionHeaderPrefix = "### "

// PruneEmptySections removes subsections that contain no content from the
// lines of the unreleased-notes region. Lines keep their trailing newlines.
//
// A subsection spans its "### " header up to the next header (or end of
// input). It is empty when every line in its span, header excluded, is a
// blank line. Only exact blank lines count as ignorable; a line holding
// whitespace characters is content and keeps its subsection.
//
// The leading region, before the first header, is kept unconditionally
// even when empty. Empty subsections are dropped wherever they occur,
// including a trailing subsection with nothing after its header.
// The pass is idempotent.
func PruneEmptySections(lines []string) []string {
	cleaned := make([]string, 0, len(lines))
	start := 0
	empty := true

	flush := func(end int) {
		if start == 0 || !empty {
			cleaned = append(cleaned, lines[start:end]...)
		}
	}

	for i, line := range lines {
		if i == start {
			// The region's own lead line is not content.
			continue
		}
		if strings.HasPrefix(line, sectionHeaderPrefix) {
			flush(i)
			start = i
			empty = true
			continue
		}
		if !isBlank(line) {
			empty = false
		}
	}
	flush(len(lines))

	return cleaned
}

// isBlank reports whether a line carries no content. A final line with no
// trailing newline is still blank when it has no characters.
func isBlank(line string) bool {
	return line == "" || line == "\n"
}
