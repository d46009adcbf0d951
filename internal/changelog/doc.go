// Package changelog rewrites the project changelog during a release bump.
//
// The changelog layout is fixed and project-specific: line 0 is a release
// header of the form "# Release <version>", a "---" line terminates the
// unreleased-notes region, and "### " prefixed lines demarcate subsections
// within that region.
//
// This package implements:
//   - empty-subsection pruning for the unreleased region (pre-release)
//   - release-header rewriting (pre-release)
//   - template prepending with version substitution (post-release)
//
// It is deliberately not a general changelog parser; files are read fully
// into memory, transformed line-wise, and written back in full.
package changelog
