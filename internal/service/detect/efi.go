package detect

import (
	"context"
	"fmt"
	"strings"

	"github.com/oshokin/localize/internal/domain/locale"
	"github.com/oshokin/localize/internal/service/runner"
)

const (
	// efiTool dumps firmware variables as line-oriented text.
	efiTool = "efivar"
	// efiToolArg lists all variables with their values.
	efiToolArg = "-l"

	// prevLanguageMarker is the Apple firmware variable holding the
	// previously selected language; the line after the marker carries
	// the value.
	prevLanguageMarker = "prev-lang:kbd"

	// tagDelimiter separates the language tag from the keyboard part of
	// the stored value, e.g. "de:3".
	tagDelimiter = ":"
)

// EFIDetector extracts the previously selected language from Apple
// firmware variables. Machines that never ran macOS simply lack the
// variable, which is an ordinary no-signal result.
type EFIDetector struct {
	// table resolves Apple firmware tags to locale profiles.
	table *locale.Table
	// run invokes the firmware dump tool; replaceable in tests.
	run runner.OutputFunc
}

// NewEFIDetector creates a detector resolving firmware tags against the
// provided table.
func NewEFIDetector(table *locale.Table) *EFIDetector {
	return &EFIDetector{
		table: table,
		run:   runner.Output,
	}
}

// Name identifies the source in the trace.
func (d *EFIDetector) Name() string {
	return "efi"
}

// Detect dumps the firmware variables and looks for the previous-language
// marker. The line following the marker carries the value; its leading
// token up to the delimiter is the Apple language tag.
func (d *EFIDetector) Detect(ctx context.Context) Detection {
	out, err := d.run(ctx, efiTool, efiToolArg)
	if err != nil {
		return toolError(fmt.Sprintf("firmware dump unavailable: %v", err))
	}

	tag := previousLanguageTag(out)
	if tag == "" {
		return noSignal("no previous-language variable in firmware dump")
	}

	profile, ok := d.table.ByAppleTag(tag)
	if !ok {
		return noSignal(fmt.Sprintf("firmware language tag %q not in profile table", tag))
	}

	return Detection{
		Outcome: OutcomeResolved,
		Profile: profile,
		Detail:  fmt.Sprintf("firmware language tag %q", tag),
	}
}

// previousLanguageTag scans a firmware variable dump for the
// previous-language marker and extracts the tag from the following line.
// Returns empty when the marker or the value is absent.
func previousLanguageTag(dump string) string {
	lines := strings.Split(dump, "\n")

	for i, line := range lines {
		if !strings.Contains(line, prevLanguageMarker) {
			continue
		}

		if i+1 >= len(lines) {
			return ""
		}

		fields := strings.Fields(lines[i+1])
		if len(fields) == 0 {
			return ""
		}

		tag, _, _ := strings.Cut(fields[0], tagDelimiter)

		return tag
	}

	return ""
}
