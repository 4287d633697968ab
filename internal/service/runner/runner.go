package runner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/oshokin/localize/internal/logger"
)

// OutputFunc runs an external tool and returns its combined output.
// Detection readers hold one of these so tests can substitute canned
// tool output for real invocations.
type OutputFunc func(ctx context.Context, name string, args ...string) (string, error)

// ApplyFunc runs an external tool for its side effects and returns its
// combined output. Failures are swallowed by the implementation.
type ApplyFunc func(ctx context.Context, name string, args ...string) string

// Output invokes the named tool, echoes the invocation, and returns its
// combined stdout/stderr. The error is returned to the caller: signal
// readers downgrade it to "no signal" themselves.
func Output(ctx context.Context, name string, args ...string) (string, error) {
	logger.Infof(ctx, "Running: %s", render(name, args))

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s: %w", name, err)
	}

	return string(out), nil
}

// Apply invokes the named tool for its side effects. The invocation and
// its output are echoed; a failure is logged and swallowed, so a broken
// apply tool never aborts the run.
func Apply(ctx context.Context, name string, args ...string) string {
	out, err := Output(ctx, name, args...)
	if err != nil {
		logger.WarnKV(ctx, "Tool failed", "command", render(name, args), "output", strings.TrimSpace(out), "error", err)
		return out
	}

	if trimmed := strings.TrimSpace(out); trimmed != "" {
		logger.Infof(ctx, "Output: %s", trimmed)
	}

	return out
}

// render formats a command line for the trace.
func render(name string, args []string) string {
	if len(args) == 0 {
		return name
	}

	return name + " " + strings.Join(args, " ")
}
