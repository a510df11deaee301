package commands

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	cmd := Version()

	require.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Print version information", cmd.Short)
	assert.NotNil(t, cmd.Run, "version command should have Run function")
}

func TestVersion_Output(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { SetVersionInfo(origVersion, origCommit, origDate) })
	SetVersionInfo("1.2.3", "abc1234", "2026-01-01")

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	Version().Run(nil, nil)

	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	assert.Contains(t, buf.String(), "kamodoctl 1.2.3")
	assert.Contains(t, buf.String(), "commit abc1234")
	assert.Contains(t, buf.String(), "built 2026-01-01")
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { SetVersionInfo(origVersion, origCommit, origDate) })

	SetVersionInfo("1.2.3", "abc1234", "2026-01-01")

	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-01-01", date)
}
