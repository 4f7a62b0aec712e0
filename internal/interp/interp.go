// Package interp selects the Python interpreter used to run the generator.
package interp

import (
	"fmt"
	"os/exec"
)

// candidates in preference order.
var candidates = []string{"python3", "python"}

// Select returns the path of the first available Python interpreter,
// preferring python3 and falling back to python. No version or capability
// check is performed.
func Select() (string, error) {
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found in PATH (tried %v)", candidates)
}
