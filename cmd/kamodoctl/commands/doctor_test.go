package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor(t *testing.T) {
	cmd := Doctor()

	require.NotNil(t, cmd)
	assert.Equal(t, "doctor", cmd.Use)
	assert.Equal(t, "Check that required external tools are installed", cmd.Short)
	assert.Contains(t, cmd.Long, "mamba")
	assert.Contains(t, cmd.Long, "jupyter")
	assert.NotNil(t, cmd.RunE, "doctor command should have RunE function")
}
