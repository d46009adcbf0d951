// Package gitstate inspects the release-relevant state of the working
// repository before any files are rewritten. It uses the go-git library,
// so no git CLI installation is required.
package gitstate

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// ErrNotARepository is returned when dir is not inside a git repository.
var ErrNotARepository = errors.New("not a git repository")

// Status is the repository state relevant to a release bump.
type Status struct {
	// Branch is the current branch name, empty in detached HEAD state.
	Branch string

	// Clean reports whether the working tree has no uncommitted changes.
	Clean bool
}

// Check opens the repository containing dir (walking up to find .git) and
// reports its branch and working-tree cleanliness.
func Check(dir string) (Status, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Status{}, fmt.Errorf("%w: %s", ErrNotARepository, dir)
		}
		return Status{}, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	var st Status

	head, err := repo.Head()
	if err != nil {
		return Status{}, fmt.Errorf("getting HEAD reference: %w", err)
	}
	if head.Name().IsBranch() {
		st.Branch = head.Name().Short()
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return Status{}, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return Status{}, fmt.Errorf("reading worktree status: %w", err)
	}
	st.Clean = status.IsClean()

	return st, nil
}
