// Package localize orchestrates the one-shot localization pipeline:
// privilege check, signal detection (EFI, USB, geoip placeholder) and the
// apply step. The last signal to resolve wins; a run without any signal
// exits successfully with no side effects.
package localize
