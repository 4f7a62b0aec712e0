// Package runner drives the delegated documentation generator script.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/killerdevildog/tensorflow/internal/config"
	"github.com/killerdevildog/tensorflow/internal/interp"
	"github.com/killerdevildog/tensorflow/internal/paths"
)

// Args assembles the argument list passed to the generator script. The
// tensorflow_java_repo flag is omitted entirely when not supplied, so the
// generator falls back to cloning the repository itself.
func Args(cfg *config.Config) []string {
	args := []string{
		paths.GeneratorScript,
		"--output_dir", cfg.OutputDir,
		"--site_path", cfg.SitePath,
	}
	if cfg.TensorFlowJavaRepo != "" {
		args = append(args, "--tensorflow_java_repo", cfg.TensorFlowJavaRepo)
	}
	return args
}

// Run executes the generator: ensures the output directory exists, enters
// the repository root, and invokes the script with the selected interpreter.
// The child inherits stdout and stderr, and a non-zero exit status is
// returned unwrapped so callers can propagate it as the process exit code.
func Run(ctx context.Context, cfg *config.Config) error {
	root, err := paths.RepoRoot()
	if err != nil {
		return fmt.Errorf("resolving repository root: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	python, err := interp.Select()
	if err != nil {
		return err
	}

	// The root stays the working directory for the rest of the process.
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("entering repository root %s: %w", root, err)
	}

	args := Args(cfg)
	slog.Debug("resolved configuration",
		"root", root,
		"output_dir", cfg.OutputDir,
		"site_path", cfg.SitePath,
		"tensorflow_java_repo", cfg.TensorFlowJavaRepo,
		"interpreter", python,
	)
	slog.Debug("invoking generator", "interpreter", python, "args", args)

	cmd := exec.CommandContext(ctx, python, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		return fmt.Errorf("running generator: %w", err)
	}

	fmt.Printf("Java API docs generated in %s\n", cfg.OutputDir)
	return nil
}
