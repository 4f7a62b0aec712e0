package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/killerdevildog/tensorflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// A non-zero exit from the generator script becomes our own
		// exit code, unchanged.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
