package localize

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/localize/internal/config"
	"github.com/oshokin/localize/internal/domain/locale"
	"github.com/oshokin/localize/internal/logger"
	"github.com/oshokin/localize/internal/service/apply"
	"github.com/oshokin/localize/internal/service/detect"
	"github.com/oshokin/localize/internal/service/runner"
	"github.com/oshokin/localize/internal/service/session"
)

// Options controls a single localization run.
type Options struct {
	// ConfigPath is an optional path to a profile-table YAML file.
	// Empty means the built-in table.
	ConfigPath string
	// OutputPath overrides the environment file destination.
	OutputPath string
	// SkipApply suppresses the keyboard and timezone tool invocations
	// while still writing the environment file. Debug aid.
	SkipApply bool
}

// errElevatedPrivilegesRequired is returned when the tool runs without root.
var errElevatedPrivilegesRequired = errors.New("elevated privileges required, run as root")

// Run executes the whole detection pipeline once: privilege check, signal
// detection in source order, then apply. A run that resolves no signal is
// a successful no-op.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "localize")

	if err := checkPrivileges(); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("build profile table: %w", err)
	}

	detectors := []detect.Detector{
		detect.NewEFIDetector(table),
		detect.NewUSBDetector(table),
		detect.NewGeoIPDetector(),
	}

	resolved, hinted, appleKeyboard := resolve(ctx, detectors)
	if !hinted {
		logger.Info(ctx, "No locale signal found, leaving system state untouched")
		return nil
	}

	logger.InfoKV(ctx, "Locale resolved",
		"locale", resolved.Locale(), "timezone", resolved.Timezone, "apple_keyboard", appleKeyboard)

	envFile := cfg.EnvFile
	if opts.OutputPath != "" {
		envFile = opts.OutputPath
	}

	run := runner.Apply
	if opts.SkipApply {
		run = skipRun
	}

	return applyResolved(ctx, run, resolved, appleKeyboard, envFile)
}

// checkPrivileges verifies the tool runs with root privileges. Both the
// firmware dump and the apply tools need them.
func checkPrivileges() error {
	if os.Geteuid() != 0 {
		return errElevatedPrivilegesRequired
	}

	return nil
}

// resolve runs every detector in order and folds their detections into a
// single result. A later resolved signal overwrites an earlier one, so
// the last source to resolve wins. The Apple-keyboard flag is sticky:
// once any detector reports it, it stays set for the rest of the run.
func resolve(ctx context.Context, detectors []detect.Detector) (locale.Resolved, bool, bool) {
	var (
		resolved      = locale.DefaultResolved()
		hinted        bool
		appleKeyboard bool
	)

	for _, d := range detectors {
		detection := d.Detect(ctx)

		switch detection.Outcome {
		case detect.OutcomeResolved:
			resolved = locale.FromProfile(detection.Profile)
			hinted = true

			logger.InfoKV(ctx, "Signal resolved",
				"source", d.Name(), "detail", detection.Detail, "locale", resolved.Locale())
		case detect.OutcomeToolError:
			logger.WarnKV(ctx, "Signal source unavailable", "source", d.Name(), "detail", detection.Detail)
		case detect.OutcomeNoSignal:
			logger.InfoKV(ctx, "No signal", "source", d.Name(), "detail", detection.Detail)
		}

		if detection.AppleKeyboard {
			appleKeyboard = true
		}
	}

	return resolved, hinted, appleKeyboard
}

// applyResolved performs the apply step: keyboard layout inside a
// graphical session, system timezone, and the environment hand-off file.
// Tool failures are swallowed by the runner; only a failure to write the
// file is reported.
func applyResolved(
	ctx context.Context,
	run runner.ApplyFunc,
	resolved locale.Resolved,
	appleKeyboard bool,
	envFile string,
) error {
	if session.IsGraphical() {
		if server := session.DisplayServer(); server != "" {
			logger.Infof(ctx, "Graphical session detected, display server: %s", server)
		}

		apply.Keyboard(ctx, run, resolved, appleKeyboard)
	} else {
		logger.Info(ctx, "No graphical session, skipping keyboard layout")
	}

	apply.Timezone(ctx, run, resolved)

	if err := apply.WriteEnvFile(envFile, resolved); err != nil {
		return err
	}

	logger.Infof(ctx, "Environment file written: %s", envFile)

	return nil
}

// skipRun replaces the apply runner when --skip-apply is set: it logs the
// command that would have run and does nothing.
func skipRun(ctx context.Context, name string, args ...string) string {
	logger.InfoKV(ctx, "Skipping tool invocation", "command", name, "args", args)
	return ""
}
