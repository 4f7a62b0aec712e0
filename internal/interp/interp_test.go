package interp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeBinary(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755))
	return path
}

func TestSelectPrefersPython3(t *testing.T) {
	dir := t.TempDir()
	want := writeFakeBinary(t, dir, "python3")
	writeFakeBinary(t, dir, "python")
	t.Setenv("PATH", dir)

	got, err := Select()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelectFallsBackToPython(t *testing.T) {
	dir := t.TempDir()
	want := writeFakeBinary(t, dir, "python")
	t.Setenv("PATH", dir)

	got, err := Select()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelectNoneAvailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Select()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "python")
}
