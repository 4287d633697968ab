package apply

import (
	"context"
	"runtime"
	"strings"

	"github.com/oshokin/localize/internal/domain/locale"
	"github.com/oshokin/localize/internal/service/runner"
)

// Timezone sets the system timezone to the resolved IANA name using the
// platform tool:
//   - FreeBSD: `tzsetup <zone>`
//   - elsewhere: `timedatectl set-timezone <zone>`
func Timezone(ctx context.Context, run runner.ApplyFunc, resolved locale.Resolved) {
	if strings.Contains(strings.ToLower(runtime.GOOS), "freebsd") {
		run(ctx, "tzsetup", resolved.Timezone)
		return
	}

	run(ctx, "timedatectl", "set-timezone", resolved.Timezone)
}
