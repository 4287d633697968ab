// Package detect implements the locale signal sources.
//
// Each Detector consults one external source (Apple firmware variables,
// the USB device listing) and reports a tagged Detection. Detectors never
// fail the run: a missing tool, unparsable output or unknown tag all
// degrade to a non-resolved detection and the pipeline continues.
package detect
