package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	cmd := Install()

	require.NotNil(t, cmd)
	assert.Equal(t, "install", cmd.Use)
	assert.Equal(t, "Create the environment and install Kamodo", cmd.Short)
	assert.Contains(t, cmd.Long, "install pipeline")
	assert.Contains(t, cmd.Long, "fail-fast")
	assert.NotNil(t, cmd.RunE, "install command should have RunE function")
}

func TestInstall_ConfigFlag(t *testing.T) {
	cmd := Install()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "config flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestInstall_PlainFlag(t *testing.T) {
	cmd := Install()

	flag := cmd.Flags().Lookup("plain")
	require.NotNil(t, flag, "plain flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}
