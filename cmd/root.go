package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/killerdevildog/tensorflow/internal/config"
	"github.com/killerdevildog/tensorflow/internal/runner"
	"github.com/killerdevildog/tensorflow/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg        config.Config
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "javadocs",
	Short: "Build the comprehensive TensorFlow Java API reference docs",
	Long: `javadocs wraps the TensorFlow Java documentation generator. It resolves
the repository root from its own location, ensures the output directory
exists, picks a Python interpreter (python3, falling back to python), and
runs tools/docs/build_comprehensive_java_api_docs.py with the supplied
options. The generator's exit status becomes this tool's exit status.`,
	Version:      version.Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cfg.Verbose)
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&cfg.OutputDir, "output-dir", config.DefaultOutputDir, "output directory for generated docs")
	rootCmd.Flags().StringVar(&cfg.SitePath, "site-path", config.DefaultSitePath, "path prefix in the site _toc.yaml")
	rootCmd.Flags().StringVar(&cfg.TensorFlowJavaRepo, "tensorflow-java-repo", "", "path to a local tensorflow/java checkout (cloned by the generator when omitted)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML file providing defaults for unset flags")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		f, err := config.Load(configFile)
		if err != nil {
			return err
		}
		applyFileDefaults(&cfg, f, cmd.Flags().Changed)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return runner.Run(ctx, &cfg)
}

// applyFileDefaults fills cfg from file values for flags the user did not
// set explicitly on the command line.
func applyFileDefaults(cfg *config.Config, f *config.File, changed func(string) bool) {
	if f.OutputDir != "" && !changed("output-dir") {
		cfg.OutputDir = f.OutputDir
	}
	if f.SitePath != "" && !changed("site-path") {
		cfg.SitePath = f.SitePath
	}
	if f.TensorFlowJavaRepo != "" && !changed("tensorflow-java-repo") {
		cfg.TensorFlowJavaRepo = f.TensorFlowJavaRepo
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
