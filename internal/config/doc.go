// Package config defines the signal table and output settings used by the
// localizer and provides helpers to load, validate and save them in YAML
// format.
//
// The built-in defaults cover the known Raspberry Pi keyboard SKUs and
// Apple firmware language tags; a YAML file can replace the table to
// support additional regions without a rebuild.
package config
