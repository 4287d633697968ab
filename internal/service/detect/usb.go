package detect

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/oshokin/localize/internal/domain/locale"
	"github.com/oshokin/localize/internal/logger"
	"github.com/oshokin/localize/internal/service/runner"
)

const (
	// appleVendorMarker and keyboardMarker together identify an
	// Apple-manufactured keyboard in the device listing.
	appleVendorMarker = "Apple"
	keyboardMarker    = "Keyboard"

	// regionalKeyboardMarker identifies the official Raspberry Pi
	// keyboard, whose product string ends with a regional variant number.
	regionalKeyboardMarker = "RPI Wired Keyboard"
)

// errEmptyDescriptor is returned when a matched line has no product descriptor.
var errEmptyDescriptor = errors.New("empty product descriptor")

// USBDetector scans the attached USB devices for known regional keyboard
// SKUs. It also notes Apple-manufactured keyboards, which changes the
// layout variant applied later regardless of which signal wins.
type USBDetector struct {
	// table resolves keyboard variant indices to locale profiles.
	table *locale.Table
	// run invokes the device listing tool; replaceable in tests.
	run runner.OutputFunc
	// tool is the platform device listing binary.
	tool string
}

// NewUSBDetector creates a detector using the platform's USB listing tool.
func NewUSBDetector(table *locale.Table) *USBDetector {
	return &USBDetector{
		table: table,
		run:   runner.Output,
		tool:  usbListTool(),
	}
}

// usbListTool picks the USB enumeration binary for the host platform.
func usbListTool() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "freebsd") {
		return "usbconfig"
	}

	return "lsusb"
}

// Name identifies the source in the trace.
func (d *USBDetector) Name() string {
	return "usb"
}

// Detect lists the attached USB devices and scans each line. A regional
// keyboard resolves a profile via its embedded variant index; an Apple
// keyboard sets the sticky AppleKeyboard flag. A malformed or
// out-of-range variant index degrades to no signal instead of aborting
// the run.
func (d *USBDetector) Detect(ctx context.Context) Detection {
	out, err := d.run(ctx, d.tool)
	if err != nil {
		return toolError(fmt.Sprintf("USB listing unavailable: %v", err))
	}

	var (
		resolved = noSignal("no known regional keyboard attached")
		apple    bool
	)

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, appleVendorMarker) && strings.Contains(line, keyboardMarker) {
			apple = true
		}

		if !strings.Contains(line, regionalKeyboardMarker) {
			continue
		}

		index, err := keyboardVariantIndex(line)
		if err != nil {
			logger.WarnKV(ctx, "Unusable regional keyboard product string",
				"line", strings.TrimSpace(line), "error", err)
			continue
		}

		profile, err := d.table.ByIndex(index)
		if err != nil {
			logger.WarnKV(ctx, "Regional keyboard variant not in profile table",
				"index", index, "error", err)
			continue
		}

		resolved = Detection{
			Outcome: OutcomeResolved,
			Profile: profile,
			Detail:  fmt.Sprintf("regional keyboard variant %d", index),
		}
	}

	resolved.AppleKeyboard = apple

	return resolved
}

// keyboardVariantIndex extracts the regional variant number from a device
// listing line: the last whitespace-delimited token of the product
// descriptor. usbconfig wraps the descriptor in angle brackets, lsusb
// prints it bare to the end of the line.
func keyboardVariantIndex(line string) (int, error) {
	descriptor := line

	if start := strings.IndexByte(line, '<'); start >= 0 {
		if end := strings.IndexByte(line[start:], '>'); end > 0 {
			descriptor = line[start+1 : start+end]
		}
	}

	fields := strings.Fields(descriptor)
	if len(fields) == 0 {
		return 0, errEmptyDescriptor
	}

	index, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, fmt.Errorf("variant token %q is not numeric: %w", fields[len(fields)-1], err)
	}

	return index, nil
}
