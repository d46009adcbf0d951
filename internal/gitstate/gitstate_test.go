package gitstate

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a git repository with one committed file and returns
// its path.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test\n"), 0o644))
	_, err = worktree.Add("README.md")
	require.NoError(t, err)

	_, err = worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
		},
	})
	require.NoError(t, err)

	return dir
}

func TestCheck_CleanRepository(t *testing.T) {
	dir := initRepo(t)

	st, err := Check(dir)
	require.NoError(t, err)
	assert.True(t, st.Clean)
	assert.NotEmpty(t, st.Branch)
}

func TestCheck_DirtyRepository(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Changed\n"), 0o644))

	st, err := Check(dir)
	require.NoError(t, err)
	assert.False(t, st.Clean)
}

func TestCheck_UntrackedFileIsDirty(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("wip\n"), 0o644))

	st, err := Check(dir)
	require.NoError(t, err)
	assert.False(t, st.Clean)
}

func TestCheck_NotARepository(t *testing.T) {
	_, err := Check(t.TempDir())
	require.ErrorIs(t, err, ErrNotARepository)
}
