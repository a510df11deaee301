package logging

import (
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_CreatesTimestampedFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})

	file, path, err := Setup()
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.True(t, strings.HasPrefix(path, "logs/kamodoctl_"))
	assert.True(t, strings.HasSuffix(path, ".log"))

	log.Printf("pipeline started")
	require.NoError(t, file.Sync())

	// #nosec G304 - path was produced by Setup in a temp directory
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Log file created")
	assert.Contains(t, string(content), "pipeline started")
}
