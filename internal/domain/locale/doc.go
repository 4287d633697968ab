// Package locale defines the locale profile table and the resolved
// locale produced by the detection pipeline.
//
// A Profile ties together a country, a language, a timezone and the
// Apple firmware language tag for one supported region. The Table keeps
// profiles in keyboard-SKU order and resolves them either by numeric
// variant index or by Apple firmware tag.
package locale
