package detect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/localize/internal/domain/locale"
)

// TestUSBDetectorResolvesVariant parses the variant index from lsusb and
// usbconfig style product strings.
func TestUSBDetectorResolvesVariant(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"lsusb":     "Bus 001 Device 004: ID 04d9:0007 Holtek Semiconductor, Inc. RPI Wired Keyboard 2\n",
		"usbconfig": "ugen0.4: <RPI Wired Keyboard 2> at usbus0, cfg=0 md=HOST\n",
	}

	for name, listing := range cases {
		d := NewUSBDetector(locale.DefaultTable())
		d.run = fakeRun(listing, nil)

		detection := d.Detect(context.Background())
		require.Equal(t, OutcomeResolved, detection.Outcome, name)
		require.Equal(t, "DE", detection.Profile.Country, name)
		require.False(t, detection.AppleKeyboard, name)
	}
}

// TestUSBDetectorAppleKeyboard sets the Apple flag independently of
// whether a regional keyboard resolves.
func TestUSBDetectorAppleKeyboard(t *testing.T) {
	t.Parallel()

	d := NewUSBDetector(locale.DefaultTable())

	// Apple keyboard alone: flag set, no locale signal.
	d.run = fakeRun("Bus 001 Device 002: ID 05ac:024f Apple, Inc. Aluminium Keyboard\n", nil)

	detection := d.Detect(context.Background())
	require.Equal(t, OutcomeNoSignal, detection.Outcome)
	require.True(t, detection.AppleKeyboard)

	// Apple keyboard plus regional keyboard: both recorded, and the flag
	// survives the later non-Apple locale match.
	listing := "Bus 001 Device 002: ID 05ac:024f Apple, Inc. Aluminium Keyboard\n" +
		"Bus 001 Device 004: ID 04d9:0007 Holtek Semiconductor, Inc. RPI Wired Keyboard 1\n"
	d.run = fakeRun(listing, nil)

	detection = d.Detect(context.Background())
	require.Equal(t, OutcomeResolved, detection.Outcome)
	require.Equal(t, "FR", detection.Profile.Country)
	require.True(t, detection.AppleKeyboard)
}

// TestUSBDetectorMalformedIndex ensures a non-numeric or out-of-range
// variant index degrades to no signal instead of aborting the run.
func TestUSBDetectorMalformedIndex(t *testing.T) {
	t.Parallel()

	d := NewUSBDetector(locale.DefaultTable())

	for _, listing := range []string{
		"ID 04d9:0007 RPI Wired Keyboard X\n",
		"ID 04d9:0007 RPI Wired Keyboard 99\n",
		"ID 04d9:0007 RPI Wired Keyboard -1\n",
	} {
		d.run = fakeRun(listing, nil)

		detection := d.Detect(context.Background())
		require.Equal(t, OutcomeNoSignal, detection.Outcome, "listing: %q", listing)
	}
}

// TestUSBDetectorToolError ensures a missing listing tool is non-fatal.
func TestUSBDetectorToolError(t *testing.T) {
	t.Parallel()

	d := NewUSBDetector(locale.DefaultTable())
	d.run = fakeRun("", errors.New("lsusb: not found"))

	detection := d.Detect(context.Background())
	require.Equal(t, OutcomeToolError, detection.Outcome)
}

// TestGeoIPDetectorIsNoOp pins the placeholder behavior.
func TestGeoIPDetectorIsNoOp(t *testing.T) {
	t.Parallel()

	detection := NewGeoIPDetector().Detect(context.Background())
	require.Equal(t, OutcomeNoSignal, detection.Outcome)
}
