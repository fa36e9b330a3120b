package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSig = Signature{Name: "Test Author", Email: "test@example.com"}

func gitLog(t *testing.T, dir, format string) string {
	t.Helper()
	cmd := exec.Command("git", "log", "--format="+format, "-1")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return string(out)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")

	sub := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	assert.True(t, IsRepo(sub), "subdirectory of a repo")
}

func TestCommit_All(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger.beancount"), []byte("; ledger\n"), 0o644))

	hash, err := Commit(dir, "init: test commit", testSig)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.Contains(t, gitLog(t, dir, "%s"), "init: test commit")
	assert.Contains(t, gitLog(t, dir, "%an <%ae>"), "Test Author <test@example.com>")
	assert.Contains(t, gitLog(t, dir, "%cn"), "Test Author")

	head, err := Head(dir)
	require.NoError(t, err)
	assert.Equal(t, hash, head)
}

func TestCommit_Paths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger.beancount"), []byte("; ledger\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x"), 0o644))

	_, err := Commit(dir, "import: 1 file", testSig, "ledger.beancount")
	require.NoError(t, err)

	changed, err := HasChanges(dir, "ledger.beancount")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = HasChanges(dir, "scratch.txt")
	require.NoError(t, err)
	assert.True(t, changed, "unstaged path stays out of the commit")
}

func TestCommit_NothingToCommit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	_, err := Commit(dir, "first", testSig)
	require.NoError(t, err)

	_, err = Commit(dir, "second", testSig)
	assert.ErrorContains(t, err, "git commit")
}

func TestHasChanges_WholeTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	changed, err := HasChanges(dir)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	changed, err = HasChanges(dir)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestSignatureString(t *testing.T) {
	assert.Equal(t, "Beanport <import@beanport.dev>", Signature{Name: "Beanport", Email: "import@beanport.dev"}.String())
}
