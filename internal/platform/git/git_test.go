package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls [][]string
	err   error
}

func (r *recordingRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil, r.err
}

func TestCLI_Clone(t *testing.T) {
	t.Parallel()
	rec := &recordingRunner{}
	cli := NewCLIWithRunner(rec.run)

	dir := filepath.Join(t.TempDir(), "Kamodo")
	err := cli.Clone(context.Background(), "https://github.com/nasa/Kamodo.git", dir)

	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []string{"git", "clone", "https://github.com/nasa/Kamodo.git", dir}, rec.calls[0])
}

func TestCLI_Clone_RemovesExistingDir(t *testing.T) {
	t.Parallel()
	rec := &recordingRunner{}
	cli := NewCLIWithRunner(rec.run)

	dir := filepath.Join(t.TempDir(), "Kamodo")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "stale"), 0o750))

	err := cli.Clone(context.Background(), "https://github.com/nasa/Kamodo.git", dir)

	require.NoError(t, err)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "stale clone directory should have been removed")
	require.Len(t, rec.calls, 1)
}

func TestCLI_Clone_GitMissing(t *testing.T) {
	t.Parallel()
	rec := &recordingRunner{}
	cli := &CLI{
		run:      rec.run,
		lookPath: func(string) (string, error) { return "", os.ErrNotExist },
	}

	err := cli.Clone(context.Background(), "https://example.com/repo.git", t.TempDir())

	require.Error(t, err)
	assert.Empty(t, rec.calls, "clone should not be attempted without git")
}
