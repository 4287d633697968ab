package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/localize/internal/logger"
	"github.com/oshokin/localize/internal/service/localize"
	"github.com/oshokin/localize/internal/version"
)

var (
	// configPath stores the path to an optional profile-table YAML file.
	configPath string
	// outputPath overrides the environment file destination.
	outputPath string
	// logLevel sets the logging verbosity.
	logLevel string
	// skipApply suppresses external tool invocations for debugging.
	skipApply bool

	// rootCmd represents the base command running the detection pipeline.
	rootCmd = &cobra.Command{
		Use:   "localize",
		Short: "Detect and apply the system locale from hardware signals.",
		Long: `Best-effort localization for first boot or session start.

Infers country, language and timezone from available hardware signals:
the Apple firmware "previous language" EFI variable and known regional
USB keyboard SKUs. When a signal resolves, the X11 keyboard layout and
system timezone are applied and a shell-sourceable environment file is
written for session-startup scripts. Without a signal the run is a no-op.

Requires root. A single invocation performs the whole pipeline.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// External tools can hang; allow the run to be interrupted.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if lvl, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(lvl)
			}

			options := &localize.Options{
				ConfigPath: configPath,
				OutputPath: outputPath,
				SkipApply:  skipApply,
			}

			return localize.Run(ctx, options)
		},
	}
)

// Execute runs the localize CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a profile-table YAML file (built-in table when omitted)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "override the environment file path")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "logging level (debug, info, warn, error)")

	// Hidden debug flag to trace the pipeline without touching the system.
	rootCmd.Flags().BoolVar(&skipApply, "skip-apply", false, "log apply commands instead of running them")

	if err := rootCmd.Flags().MarkHidden("skip-apply"); err != nil {
		panic(err)
	}
}
