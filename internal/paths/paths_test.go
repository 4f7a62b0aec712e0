package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoRootEnvOverride(t *testing.T) {
	t.Setenv(EnvRepoRoot, "/srv/tensorflow")

	root, err := RepoRoot()
	require.NoError(t, err)
	assert.Equal(t, "/srv/tensorflow", root)
}

func TestRepoRootFromBinaryLocation(t *testing.T) {
	t.Setenv(EnvRepoRoot, "")

	self, err := SelfDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(self))

	root, err := RepoRoot()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(root))
	// Root is two ancestor levels up from the binary's directory.
	assert.Equal(t, filepath.Dir(filepath.Dir(self)), root)
}
