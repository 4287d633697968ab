package detect

import (
	"context"

	"github.com/oshokin/localize/internal/domain/locale"
)

// Outcome classifies the result of one detection attempt.
type Outcome int

const (
	// OutcomeNoSignal means the source ran but produced no usable hint.
	OutcomeNoSignal Outcome = iota
	// OutcomeResolved means the source resolved a locale profile.
	OutcomeResolved
	// OutcomeToolError means the underlying tool could not be consulted.
	// Treated like no signal by the pipeline, but logged differently.
	OutcomeToolError
)

// String returns a human-readable outcome name for the trace.
func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeToolError:
		return "tool error"
	default:
		return "no signal"
	}
}

// Detection is the tagged result of a single detector run. No detector
// failure is fatal: tool errors and unparsable output both degrade to a
// non-resolved detection and the pipeline moves on.
type Detection struct {
	// Outcome tags the result.
	Outcome Outcome
	// Profile is the resolved locale profile, valid only when resolved.
	Profile locale.Profile
	// AppleKeyboard reports that an Apple-manufactured keyboard was seen,
	// independently of whether a locale profile resolved.
	AppleKeyboard bool
	// Detail carries a human-readable diagnostic for the trace.
	Detail string
}

// Detector is a single locale signal source.
type Detector interface {
	// Name identifies the source in the trace.
	Name() string
	// Detect runs the source once and reports what it found.
	Detect(ctx context.Context) Detection
}

// noSignal builds a non-resolved detection with a diagnostic.
func noSignal(detail string) Detection {
	return Detection{Outcome: OutcomeNoSignal, Detail: detail}
}

// toolError builds a tool-failure detection with a diagnostic.
func toolError(detail string) Detection {
	return Detection{Outcome: OutcomeToolError, Detail: detail}
}
