package cmd

import (
	"fmt"
	"log/slog"

	"github.com/killerdevildog/tensorflow/internal/updater"
	"github.com/spf13/cobra"
)

var dryRun bool

var updateCmd = &cobra.Command{
	Use:   "update-versions FILE...",
	Short: "Update TensorFlow Java version references in documentation files",
	Long: `update-versions rewrites outdated TensorFlow Java version references
(Maven and Gradle dependency snippets, plain version mentions, snapshot
versions, and Java runtime requirements) in the given documentation files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without modifying files")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fmt.Printf("Updating TensorFlow Java versions: %s -> %s, %s -> %s\n",
		updater.OldVersion, updater.NewVersion, updater.OldSnapshot, updater.NewSnapshot)
	if dryRun {
		fmt.Println("Dry run: no files will be modified")
	}

	updated := 0
	for _, path := range args {
		changed, changes, err := updater.ProcessFile(path, dryRun)
		if err != nil {
			slog.Error("Failed to process file", "file", path, "error", err)
			continue
		}
		if !changed {
			fmt.Printf("No changes needed for %s\n", path)
			continue
		}
		if dryRun {
			fmt.Printf("Would update %s\n", path)
		} else {
			fmt.Printf("Updated %s\n", path)
		}
		for _, c := range changes {
			fmt.Printf("  - %s\n", c)
		}
		updated++
	}

	fmt.Printf("Summary: %d of %d files updated\n", updated, len(args))
	return nil
}
