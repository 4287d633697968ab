package apply

import (
	"context"
	"strings"

	"github.com/oshokin/localize/internal/domain/locale"
	"github.com/oshokin/localize/internal/logger"
	"github.com/oshokin/localize/internal/service/runner"
)

const (
	// keyboardTool configures the X11 keyboard layout.
	keyboardTool = "setxkbmap"

	// noDeadKeysVariant avoids dead keys on ordinary PC keyboards, so
	// accent keys type immediately instead of composing.
	noDeadKeysVariant = "nodeadkeys"

	// macVariant and macModel match the layout conventions of
	// Apple-manufactured keyboards.
	macVariant = "mac"
	macModel   = "macintosh"
)

// Keyboard sets the X11 keyboard layout to the resolved country and picks
// the variant for the detected hardware: Apple keyboards get the mac
// variant and model, everything else gets the no-dead-keys variant.
// The resulting configuration is queried and logged. Failures are
// swallowed by the runner; a broken setxkbmap never aborts the run.
func Keyboard(ctx context.Context, run runner.ApplyFunc, resolved locale.Resolved, appleKeyboard bool) {
	run(ctx, keyboardTool, "-layout", resolved.Layout())

	if appleKeyboard {
		run(ctx, keyboardTool, "-variant", macVariant)
		run(ctx, keyboardTool, "-model", macModel)
	} else {
		run(ctx, keyboardTool, "-variant", noDeadKeysVariant)
	}

	state := run(ctx, keyboardTool, "-query")
	logger.InfoKV(ctx, "Keyboard configuration applied",
		"layout", resolved.Layout(), "apple_keyboard", appleKeyboard,
		"state", strings.TrimSpace(state))
}
