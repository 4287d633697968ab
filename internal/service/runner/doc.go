// Package runner wraps external tool invocation for the localizer.
//
// Every step of the pipeline is an external process followed by text
// parsing, so the wrapper echoes each invocation and its output for
// observability. Apply-side failures are swallowed: a missing or broken
// system tool must never abort the run.
package runner
