// Package paths resolves the locations the docs build depends on. The
// wrapper binary is expected to live under <root>/tools/docs, so the
// repository root is derived from the binary's own location; this works when
// the tool is invoked through a symlink or a relative path.
package paths

import (
	"os"
	"path/filepath"
)

const (
	// EnvRepoRoot overrides repository root resolution (e.g. for isolated
	// testing).
	EnvRepoRoot = "TF_DOCS_ROOT"

	// GeneratorScript is the delegated documentation generator, at a fixed
	// path relative to the repository root.
	GeneratorScript = "tools/docs/build_comprehensive_java_api_docs.py"
)

// SelfDir returns the directory containing the running binary, with
// symlinks resolved.
func SelfDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(resolved), nil
}

// RepoRoot returns the repository root used as the working directory for the
// generator. Precedence: TF_DOCS_ROOT > two ancestor levels up from the
// binary's own directory.
func RepoRoot() (string, error) {
	if root := os.Getenv(EnvRepoRoot); root != "" {
		return root, nil
	}
	self, err := SelfDir()
	if err != nil {
		return "", err
	}
	return filepath.Dir(filepath.Dir(self)), nil
}
