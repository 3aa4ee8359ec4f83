package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureParentDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureParentDir(filepath.Join("data", "gophchat.db"))
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(tmp, "data"))
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, want, gotResolved)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}

	_, err = os.Stat(filepath.Join(got, "gophchat.db"))
	require.True(t, os.IsNotExist(err), "only the directory is created")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	first, err := EnsureParentDir(filepath.Join(tmp, "a", "b", "x.db"))
	require.NoError(t, err)

	second, err := EnsureParentDir(filepath.Join(tmp, "a", "b", "x.db"))
	require.NoError(t, err)

	require.Equal(t, first, second)
	fi, err := os.Stat(second)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_InMemory(t *testing.T) {
	for _, p := range []string{"", ":memory:", "file::memory:?cache=shared"} {
		got, err := EnsureParentDir(p)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestEnsureParentDir_FailsIfFileBlocksPath(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(blocker, "gophchat.db"))
	require.Error(t, err, "should fail when a file sits where the directory goes")
}
