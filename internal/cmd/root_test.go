package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "todoscan", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)

	scan, _, err := cmd.Find([]string{"scan"})
	require.NoError(t, err)
	assert.Equal(t, "scan <directory>", scan.Use)
}

func TestNewScanCommandFlags(t *testing.T) {
	cmd := NewScanCommand()

	assert.NotNil(t, cmd.RunE)

	flags := []string{"quiet", "all", "user", "priority", "due", "config", "log-dir", "output", "format"}
	for _, flag := range flags {
		f := cmd.Flags().Lookup(flag)
		assert.NotNil(t, f, "flag %s should exist", flag)
	}
}
